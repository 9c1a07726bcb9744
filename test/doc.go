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

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect functions report a failure with t.Errorf() and allow the test
// to continue. The Demand functions report in the same way and then stop the
// test. They should be used when later parts of the test depend on the value
// being correct.
//
// Success and failure values are decided by the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> always success
//
// The nil case is not obvious but because of how errors are usually returned
// (nil to indicate no error) it is the only useful interpretation.
//
// Tags can be added to any Expect or Demand call. They are printed before the
// failure message and are useful for identifying which iteration of a loop
// failed.
//
// CompareWriter and RingWriter implement io.Writer and are used to capture
// output for later comparison.
package test
