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

// Package memory implements the RAM and ROM devices of the emulated machine.
//
// Both types satisfy the bus.Device contract and respond to any bus cycle
// that addresses their range. A ROM never responds to a write; the value put
// on the bus by the CPU is ignored.
//
// The contents of either type can be inspected and changed without a bus
// cycle with the Peek() and Poke() functions. Program() copies a binary
// image to the start of the memory area.
package memory
