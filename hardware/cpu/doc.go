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

// Package cpu emulates the 65C02 microprocessor one clock cycle at a time.
//
// Every call to Cycle() performs exactly one bus cycle, or no bus cycle at
// all if the CPU is idle because of a WAI or STP instruction. Instructions are
// broken into steps, one step per cycle, and the CPU remembers which step of
// which instruction it is on between calls. This means that the CPU can be
// inspected or interrupted at any cycle boundary, not only at instruction
// boundaries.
//
// The CPU requires a bus.Controller. Memory and peripherals are attached to
// the controller as bus.Device implementations. The CPU has no memory of its
// own.
//
//	bc := bus.NewController()
//	bc.Attach(ram)
//	bc.Attach(rom)
//
//	mc := cpu.NewCPU(bc)
//	mc.Reset(nil)
//
//	for {
//		if err := mc.Cycle(hz); err != nil {
//			return err
//		}
//	}
//
// A newly created (or reset) CPU begins with the reset sequence, so the first
// seven cycles load the program counter from the reset vector.
//
// The NMI, IRQ and RST fields are the CPU's interrupt lines. Devices hold and
// release the lines with Trigger() and Clear(). See the interrupt package.
//
// The CPU returns an error wrapping ContractViolation if it encounters a
// reserved opcode. There is no way to continue after such an error other
// than with Reset().
package cpu
