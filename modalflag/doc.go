// This file is part of emu6502.
//
// emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emu6502.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package of the standard library to allow
// different sets of flags for different program modes.
//
// Arguments are given once with NewArgs(). Each call to Parse() consumes the
// flags defined since the most recent call to NewMode() and, if sub-modes
// were defined, the name of the selected mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "OPCODES")
//	p, err := md.Parse()
//	if p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		hz := md.AddInt("hz", 1000000, "clock speed")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not a sub-mode name. Sub-mode names are case insensitive.
//
// The -help flag is handled by Parse(). Help text is written to the Output
// field.
package modalflag
