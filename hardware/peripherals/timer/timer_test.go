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

package timer_test

import (
	"testing"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/interrupt"
	"github.com/emu6502/emu6502/hardware/peripherals/timer"
	"github.com/emu6502/emu6502/test"
)

const base = 0xb200

func newTimer() (*timer.Timer, *bus.Controller, *interrupt.Line) {
	irq := interrupt.NewLine(false)
	tmr := timer.NewTimer(base, irq)
	bc := bus.NewController()
	bc.SetStrict(true)
	bc.Attach(tmr)
	return tmr, bc, irq
}

func TestOneShot(t *testing.T) {
	tmr, bc, irq := newTimer()

	bc.WriteCycle(base+2, 0x03)
	bc.WriteCycle(base+3, 0x00)
	test.ExpectEquality(t, tmr.Counter(), 0x0003)
	test.ExpectEquality(t, tmr.Mode(), timer.Paused)

	// paused timer does not count
	tmr.Tick()
	test.ExpectEquality(t, tmr.Counter(), 0x0003)

	bc.WriteCycle(base+0, uint8(timer.OneShot))
	test.ExpectEquality(t, bc.ReadCycle(base+1), 0b10)

	tmr.Tick()
	tmr.Tick()
	test.ExpectEquality(t, irq.Triggered(), false)
	tmr.Tick()
	test.ExpectEquality(t, irq.Triggered(), true)
	test.ExpectEquality(t, tmr.Mode(), timer.Paused)
	test.ExpectEquality(t, tmr.Counter(), 0x0000)

	// reading status acknowledges the interrupt
	test.ExpectEquality(t, bc.ReadCycle(base+1), 0b01)
	test.ExpectEquality(t, irq.Triggered(), false)
	test.ExpectEquality(t, bc.ReadCycle(base+1), 0b00)
	test.ExpectSuccess(t, bc.Err())
}

func TestFreeRun(t *testing.T) {
	tmr, bc, irq := newTimer()

	bc.WriteCycle(base+2, 0x02)
	bc.WriteCycle(base+3, 0x00)
	bc.WriteCycle(base+0, uint8(timer.FreeRun))

	var count int
	for i := 0; i < 10; i++ {
		tmr.Tick()
		if irq.Triggered() {
			count++
			bc.ReadCycle(base + 1)
		}
	}
	test.ExpectEquality(t, count, 5)
	test.ExpectEquality(t, tmr.Mode(), timer.FreeRun)
	test.ExpectEquality(t, bc.ReadCycle(base+1), 0b10)
}

func TestZeroCounter(t *testing.T) {
	tmr, bc, irq := newTimer()
	bc.WriteCycle(base+0, uint8(timer.OneShot))
	tmr.Tick()
	test.ExpectEquality(t, irq.Triggered(), true)
	test.ExpectEquality(t, tmr.Mode(), timer.Paused)
}

func TestRegisters(t *testing.T) {
	tmr, bc, _ := newTimer()

	bc.WriteCycle(base+2, 0x34)
	bc.WriteCycle(base+3, 0x12)
	test.ExpectEquality(t, bc.ReadCycle(base+2), 0x34)
	test.ExpectEquality(t, bc.ReadCycle(base+3), 0x12)

	bc.WriteCycle(base+0, uint8(timer.OneShot))
	for i := 0; i < 0x10; i++ {
		tmr.Tick()
	}
	test.ExpectEquality(t, tmr.Counter(), 0x1224)

	// writing status reloads from latches
	bc.WriteCycle(base+1, 0x00)
	test.ExpectEquality(t, tmr.Counter(), 0x1234)

	// invalid modes pause the timer
	bc.WriteCycle(base+0, 0x07)
	test.ExpectEquality(t, bc.ReadCycle(base+0), uint8(timer.Paused))

	test.ExpectEquality(t, tmr.String(), "paused 1234 [latch 1234]")

	// register space is four bytes
	bc.ReadCycle(base + 4)
	test.ExpectFailure(t, bc.Err())
}

func TestReset(t *testing.T) {
	tmr, bc, irq := newTimer()
	bc.WriteCycle(base+0, uint8(timer.FreeRun))
	tmr.Tick()
	test.ExpectEquality(t, irq.Triggered(), true)

	tmr.Reset()
	test.ExpectEquality(t, irq.Triggered(), false)
	test.ExpectEquality(t, tmr.Mode(), timer.Paused)
}
