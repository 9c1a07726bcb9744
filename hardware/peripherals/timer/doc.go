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

// Package timer implements a simple countdown timer that raises an IRQ when
// it expires.
//
// The timer has four registers, relative to its base address:
//
//	0 MODE     0 paused, 1 one-shot, 2 free-running
//	1 STATUS   bit 0 timer is interrupting, bit 1 timer is running
//	2 TIME_LO  low byte of the counter
//	3 TIME_HI  high byte of the counter
//
// Writing TIME_LO or TIME_HI sets both the counter and a latch. A one-shot
// timer pauses when it expires. A free-running timer is reloaded from the
// latches. Writing any value to STATUS reloads the counter from the latches.
//
// Reading STATUS acknowledges the interrupt. The interrupt bit in the value
// read is the state of the interrupt before it was acknowledged.
//
// The counter is decremented once per machine cycle by Tick(), whether or
// not the CPU is using the bus in that cycle.
package timer
