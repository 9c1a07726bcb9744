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
	"fmt"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/cpu/registers"
	"github.com/emu6502/emu6502/hardware/interrupt"
	"github.com/emu6502/emu6502/random"
)

// The pseudo-opcodes of the interrupt sequences. They follow on from the 256
// real opcodes.
const (
	OpNMI uint16 = 256 + iota
	OpRST
	OpIRQ

	numOpcodes
)

// CPU implements the 65C02. The bus and the interrupt lines are supplied on
// creation and never change.
//
// The register fields can be read and written freely when the CPU is not
// being cycled. When the CPU is being cycled by the emulation package, the
// state access permit must be held.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	P  registers.Status
	PC uint16

	NMI *interrupt.Line
	IRQ *interrupt.Line
	RST *interrupt.Line

	bus *bus.Controller

	opcode uint16
	step   Step

	// scratch values. only valid during the instruction that set them
	ea      uint16
	indAddr uint8
	aluTmp  uint8

	// the low byte addition of an indexed address carried into the high
	// byte. the fixup step uses this to decide whether to adjust the high byte
	carried bool

	// first contract violation since the last reset
	fault error
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// will begin with the reset sequence.
func NewCPU(bc *bus.Controller) *CPU {
	mc := &CPU{
		bus: bc,
		NMI: interrupt.NewLine(true),
		IRQ: interrupt.NewLine(false),
		RST: interrupt.NewLine(false),
	}
	mc.Reset(nil)
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x S=%02x P=%s [%s %s]", mc.PC, mc.A, mc.X, mc.Y, mc.S, mc.P, opcodeName(mc.opcode), mc.step)
}

// Reset reinitialises the registers and puts the CPU at the start of the reset
// sequence. The program counter is loaded from the reset vector by the reset
// sequence, not by this function.
//
// If rnd is not nil the registers are given random values. Otherwise they
// are zeroed. The interrupt disable flag is always set.
func (mc *CPU) Reset(rnd *random.Random) {
	if rnd != nil {
		mc.PC = uint16(rnd.Intn(0x10000))
		mc.A = uint8(rnd.Intn(0x100))
		mc.X = uint8(rnd.Intn(0x100))
		mc.Y = uint8(rnd.Intn(0x100))
		mc.S = uint8(rnd.Intn(0x100))
		mc.P.Load(uint8(rnd.Intn(0x100)))
	} else {
		mc.PC = 0
		mc.A = 0
		mc.X = 0
		mc.Y = 0
		mc.S = 0
		mc.P.Load(0)
	}
	mc.P.SetI(true)

	mc.opcode = OpRST
	mc.step = Step{}
	mc.ea = 0
	mc.indAddr = 0
	mc.aluTmp = 0
	mc.carried = false
	mc.fault = nil
}

// Opcode returns the opcode of the instruction being executed. Will be one
// of OpNMI, OpRST or OpIRQ during an interrupt sequence.
func (mc *CPU) Opcode() uint16 {
	return mc.opcode
}

// Step returns the execution state of the CPU.
func (mc *CPU) Step() Step {
	return mc.step
}

// Boundary returns true if the CPU is between instructions. A CPU that is
// waiting for an interrupt or that has been stopped is also between
// instructions.
func (mc *CPU) Boundary() bool {
	return mc.step.Kind != Executing
}

// ExpandedS returns the address in memory the stack pointer points to.
func (mc *CPU) ExpandedS() uint16 {
	return bus.StackPage | uint16(mc.S)
}

// Cycle advances the CPU by one clock cycle. The hz argument is the rate at
// which the CPU is being clocked. It has no effect on the CPU but it allows
// the CPU to be cycled alongside other hardware with the same signature.
//
// Returns an error wrapping ContractViolation if the CPU can no longer
// continue. Also returns any bus fault raised by the bus controller during
// the cycle.
func (mc *CPU) Cycle(_ int) error {
	if mc.fault != nil {
		return mc.fault
	}

	if mc.RST.ShouldInterrupt() {
		mc.opcode = OpRST
		mc.step = Step{}
	}

	switch {
	case mc.step.Kind == Stopped:
		return nil

	// interrupts are only serviced between instructions
	case mc.step.Kind == Executing:
		mc.execute()

	case mc.NMI.ShouldInterrupt():
		mc.interrupt(OpNMI)

	case mc.IRQ.ShouldInterrupt() && (!mc.P.I() || mc.step.Kind == WaitingForInterrupt):
		if !mc.P.I() {
			mc.interrupt(OpIRQ)
		} else {
			// WAI with interrupts disabled. execution continues with the
			// instruction after the WAI
			mc.fetch()
		}

	case mc.step.Kind == WaitingForInterrupt:
		return nil

	case mc.step.Kind == AwaitFetch:
		mc.fetch()

	case mc.step.Kind == AwaitPipelinedFetch:
		mc.step = Step{N: 1}
		mc.execute()
	}

	if mc.fault != nil {
		return mc.fault
	}
	return mc.bus.Err()
}

func (mc *CPU) fetch() {
	mc.opcode = uint16(mc.bus.SyncCycle(mc.PC))
	mc.step = Step{}
	mc.execute()
}

// the fetch of the next opcode happens on the last cycle of the current
// instruction
func (mc *CPU) pipelinedFetch() {
	mc.opcode = uint16(mc.bus.SyncCycle(mc.PC))
	mc.PC++
	mc.step = awaitPipelinedFetch
}

func (mc *CPU) interrupt(opcode uint16) {
	// the pipelined opcode is discarded and will be fetched again on return
	// from the interrupt
	if mc.step.Kind == AwaitPipelinedFetch {
		mc.PC--
	}
	mc.opcode = opcode
	mc.step = Step{}
	mc.execute()
}

func (mc *CPU) execute() {
	h := handlers[mc.opcode]
	if h == nil {
		mc.violation("reserved opcode $%02x at $%04x", mc.opcode, mc.PC)
		return
	}
	h(mc)
}

// advance to the next step of the current instruction
func (mc *CPU) next() {
	mc.step.N++
}

func (mc *CPU) pcl(v uint8) {
	mc.PC = mc.PC&0xff00 | uint16(v)
}
