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

package cpu_test

import (
	"testing"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/test"
)

type requester struct {
	name string
}

func TestNMI(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)
	mem.putWord(bus.NMI, 0x3000)
	mem.putInstructions(0x0200, 0xa9, 0x01, 0xea)
	mc.P.SetI(true)
	s := mc.S

	dev := &requester{name: "dev"}

	// the NMI is asserted during LDA but is not serviced until LDA finishes
	test.DemandSuccess(t, mc.Cycle(0))
	mc.NMI.Trigger(dev)
	test.DemandSuccess(t, mc.Cycle(0))
	test.ExpectEquality(t, mc.A, uint8(0x01))

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.Opcode(), cpu.OpNMI)
	test.ExpectEquality(t, mc.PC, uint16(0x3000))
	test.ExpectEquality(t, mc.S, s-3)
	test.ExpectEquality(t, mc.P.I(), true)

	// return address is the instruction after LDA. break bit is not set
	mem.assert(t, bus.StackPage|uint16(s), 0x02)
	mem.assert(t, bus.StackPage|uint16(s-1), 0x02)
	mem.assert(t, bus.StackPage|uint16(s-2), 0x24)

	// the line is still held but the NMI is edge triggered
	mem.putInstructions(0x3000, 0xea)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC, uint16(0x3001))

	// release and assert again
	mc.NMI.Clear(dev)
	mc.NMI.Trigger(dev)
	step(t, mc)
	test.ExpectEquality(t, mc.Opcode(), cpu.OpNMI)
}

func TestIRQ(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)
	mem.putWord(bus.IRQ, 0x4000)
	mem.putInstructions(0x0200, 0xea, 0x58, 0xea)
	mem.putInstructions(0x4000, 0x40)

	dev := &requester{name: "dev"}
	mc.IRQ.Trigger(dev)

	// interrupts are disabled after reset
	test.ExpectEquality(t, mc.P.I(), true)
	step(t, mc)
	test.ExpectEquality(t, mc.Opcode(), uint16(0xea))

	// CLI
	step(t, mc)
	test.ExpectEquality(t, mc.P.I(), false)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.Opcode(), cpu.OpIRQ)
	test.ExpectEquality(t, mc.PC, uint16(0x4000))
	test.ExpectEquality(t, mc.P.I(), true)

	// the handler clears the device before returning
	mc.IRQ.Clear(dev)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x0202))
	test.ExpectEquality(t, mc.P.I(), false)

	step(t, mc)
	test.ExpectEquality(t, mc.Opcode(), uint16(0xea))
}

func TestIRQLevelTriggered(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)
	mem.putWord(bus.IRQ, 0x4000)

	// CLI at $4000 so the still-held line interrupts the handler
	mem.putInstructions(0x0200, 0x58)
	mem.putInstructions(0x4000, 0x58)

	dev := &requester{name: "dev"}
	mc.IRQ.Trigger(dev)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Opcode(), cpu.OpIRQ)
	step(t, mc)
	test.ExpectEquality(t, mc.Opcode(), uint16(0x58))
	step(t, mc)
	test.ExpectEquality(t, mc.Opcode(), cpu.OpIRQ)
}

func TestNMIPriority(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)
	mem.putWord(bus.NMI, 0x3000)
	mem.putWord(bus.IRQ, 0x4000)
	mc.P.SetI(false)

	dev := &requester{name: "dev"}
	mc.IRQ.Trigger(dev)
	mc.NMI.Trigger(dev)

	step(t, mc)
	test.ExpectEquality(t, mc.Opcode(), cpu.OpNMI)
	test.ExpectEquality(t, mc.PC, uint16(0x3000))
}

func TestWAI(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)
	mem.putWord(bus.IRQ, 0x4000)
	mem.putInstructions(0x0200, 0xcb, 0xa9, 0x55)

	// interrupts disabled. execution continues after the WAI without
	// servicing the interrupt
	mc.P.SetI(true)
	step(t, mc)
	test.ExpectEquality(t, mc.Step(), cpu.Step{Kind: cpu.WaitingForInterrupt})
	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, mc.Cycle(0))
	}
	test.ExpectEquality(t, mc.Step(), cpu.Step{Kind: cpu.WaitingForInterrupt})

	dev := &requester{name: "dev"}
	mc.IRQ.Trigger(dev)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.A, uint8(0x55))

	// interrupts enabled. the interrupt is serviced
	mc, mem = newTestCPU(t, 0x0200)
	mem.putWord(bus.IRQ, 0x4000)
	mem.putInstructions(0x0200, 0xcb)
	mc.P.SetI(false)
	step(t, mc)

	mc.IRQ.Trigger(dev)
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.Opcode(), cpu.OpIRQ)
	test.ExpectEquality(t, mc.PC, uint16(0x4000))
	mem.assert(t, bus.StackPage|uint16(mc.S+2), 0x01)
	mem.assert(t, bus.StackPage|uint16(mc.S+3), 0x02)

	// an NMI also ends the wait
	mc, mem = newTestCPU(t, 0x0200)
	mem.putWord(bus.NMI, 0x3000)
	mem.putInstructions(0x0200, 0xcb)
	step(t, mc)
	mc.NMI.Trigger(dev)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x3000))
}

func TestSTP(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)
	mem.putWord(bus.NMI, 0x3000)
	mem.putInstructions(0x0200, 0xdb)
	step(t, mc)
	test.ExpectEquality(t, mc.Step(), cpu.Step{Kind: cpu.Stopped})

	// only reset ends a stop
	dev := &requester{name: "dev"}
	mc.NMI.Trigger(dev)
	mc.IRQ.Trigger(dev)
	mc.P.SetI(false)
	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, mc.Cycle(0))
	}
	test.ExpectEquality(t, mc.Step(), cpu.Step{Kind: cpu.Stopped})

	mc.NMI.Clear(dev)
	mc.IRQ.Clear(dev)
	mc.RST.Trigger(dev)
	test.DemandSuccess(t, mc.Cycle(0))
	mc.RST.Clear(dev)
	for i := 0; i < 6; i++ {
		test.DemandSuccess(t, mc.Cycle(0))
	}
	test.ExpectEquality(t, mc.PC, uint16(0x0200))
	test.ExpectEquality(t, mc.Step(), cpu.Step{Kind: cpu.AwaitFetch})
}

func TestInterruptAfterPipelinedFetch(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)
	mem.putWord(bus.NMI, 0x3000)
	mem.putInstructions(0x3000, 0x40)

	// BEQ (not taken); LDA #$33
	mc.P.SetZ(false)
	mem.putInstructions(0x0200, 0xf0, 0x10, 0xa9, 0x33)
	step(t, mc)
	test.ExpectEquality(t, mc.Step(), cpu.Step{Kind: cpu.AwaitPipelinedFetch})

	// the fetched opcode is discarded and fetched again after the interrupt
	dev := &requester{name: "dev"}
	mc.NMI.Trigger(dev)
	step(t, mc)
	test.ExpectEquality(t, mc.Opcode(), cpu.OpNMI)
	mem.assert(t, bus.StackPage|uint16(mc.S+2), 0x02)
	mem.assert(t, bus.StackPage|uint16(mc.S+3), 0x02)

	step(t, mc) // RTI
	step(t, mc) // LDA
	test.ExpectEquality(t, mc.A, uint8(0x33))
}
