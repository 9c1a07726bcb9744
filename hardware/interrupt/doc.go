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

// Package interrupt implements the NMI, IRQ and RST lines of the 65C02.
//
// Any number of devices can hold a line at the same time. The line is
// triggered for as long as one of them is holding it. The CPU polls the line
// with ShouldInterrupt() once per cycle.
//
// Lines are not safe for concurrent use. Devices assert and clear lines
// during bus cycles, which all happen on the goroutine stepping the
// emulation. Other goroutines must hold the scheduler's state access permit
// (see emulation.Scheduler.PauseState()) before touching a line.
package interrupt
