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

package cpu

import (
	"errors"
	"fmt"

	"github.com/emu6502/emu6502/hardware/cpu/instructions"
)

// ContractViolation is wrapped by errors returned by Cycle() when the CPU
// has been asked to do something it cannot do. It always indicates a fault
// in the emulation rather than in the emulated program.
var ContractViolation = errors.New("contract violation")

// the first contract violation is sticky until the next Reset()
func (mc *CPU) violation(format string, args ...any) {
	if mc.fault != nil {
		return
	}
	mc.fault = fmt.Errorf("cpu: %w: %s", ContractViolation, fmt.Sprintf(format, args...))
	mc.step = stopped
}

func (mc *CPU) badStep() {
	mc.violation("%s has no %s (PC=$%04x)", opcodeName(mc.opcode), mc.step, mc.PC)
}

func opcodeName(opcode uint16) string {
	switch opcode {
	case OpNMI:
		return "NMI"
	case OpRST:
		return "RST"
	case OpIRQ:
		return "IRQ"
	}
	return fmt.Sprintf("$%02x %s", opcode, instructions.Mnemonic(uint8(opcode)))
}
