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

package buttons_test

import (
	"sync"
	"testing"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/interrupt"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/hardware/peripherals/buttons"
	"github.com/emu6502/emu6502/test"
)

func TestLines(t *testing.T) {
	irq := interrupt.NewLine(false)
	nmi := interrupt.NewLine(true)
	rst := interrupt.NewLine(false)
	btn := buttons.NewButtons(irq, nmi, rst)

	bc := bus.NewController()
	bc.Attach(btn)

	btn.TriggerIRQ()
	btn.TriggerNMI()
	test.ExpectEquality(t, irq.Triggered(), false)
	test.ExpectEquality(t, nmi.Triggered(), false)

	btn.Tick()
	test.ExpectEquality(t, irq.Triggered(), true)
	test.ExpectEquality(t, nmi.Triggered(), true)

	// lines are held until the vector is pulled
	btn.Tick()
	bc.ReadCycle(bus.IRQ)
	test.ExpectEquality(t, irq.Triggered(), true)
	bc.VecCycle(bus.IRQ)
	test.ExpectEquality(t, irq.Triggered(), false)
	test.ExpectEquality(t, nmi.Triggered(), true)
	bc.VecCycle(bus.NMI + 1)
	test.ExpectEquality(t, nmi.Triggered(), false)

	// reset is held for one tick
	btn.TriggerRST()
	btn.Tick()
	test.ExpectEquality(t, rst.Triggered(), true)
	btn.Tick()
	test.ExpectEquality(t, rst.Triggered(), false)
}

func TestConcurrentPresses(t *testing.T) {
	irq := interrupt.NewLine(false)
	btn := buttons.NewButtons(irq, interrupt.NewLine(true), interrupt.NewLine(false))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			btn.TriggerIRQ()
		}()
	}
	wg.Wait()

	btn.Tick()
	test.ExpectEquality(t, irq.Triggered(), true)
}

func TestNMIButton(t *testing.T) {
	ram, err := memory.NewRAM(0x0000, 0x10000)
	test.DemandSuccess(t, err)

	// main loop and nmi handler are both JMP to self
	for _, p := range []struct {
		address uint16
		value   uint8
	}{
		{0x0200, 0x4c}, {0x0201, 0x00}, {0x0202, 0x02},
		{0x0300, 0x4c}, {0x0301, 0x00}, {0x0302, 0x03},
		{bus.Reset, 0x00}, {bus.Reset + 1, 0x02},
		{bus.NMI, 0x00}, {bus.NMI + 1, 0x03},
	} {
		test.DemandSuccess(t, ram.Poke(p.address, p.value))
	}

	bc := bus.NewController()
	bc.SetStrict(true)
	bc.Attach(ram)
	mc := cpu.NewCPU(bc)
	btn := buttons.NewButtons(mc.IRQ, mc.NMI, mc.RST)
	bc.Attach(btn)

	run := func(n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			test.DemandSuccess(t, mc.Cycle(0))
			btn.Tick()
		}
	}

	run(100)
	test.ExpectEquality(t, mc.PC >= 0x0200 && mc.PC <= 0x0203, true)

	btn.TriggerNMI()
	run(100)
	test.ExpectEquality(t, mc.PC >= 0x0300 && mc.PC <= 0x0303, true)
	test.ExpectEquality(t, mc.NMI.Triggered(), false)
	test.ExpectEquality(t, mc.S, uint8(0xfa))

	btn.TriggerRST()
	run(100)
	test.ExpectEquality(t, mc.PC >= 0x0200 && mc.PC <= 0x0203, true)
	test.ExpectEquality(t, mc.RST.Triggered(), false)
}
