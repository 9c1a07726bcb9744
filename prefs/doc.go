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

// Package prefs holds the preference value types used by the emulator. Each
// type is safe to read from one goroutine while being set from another.
//
// Hook functions can be attached to a value and will be called either side
// of every Set(). The post hook is the usual way of pushing a new
// preference value into the live emulation.
//
// Preferences can also be specified as a group of key/value pairs, usually
// from the command line. See PushCommandLineStack() for the format.
package prefs
