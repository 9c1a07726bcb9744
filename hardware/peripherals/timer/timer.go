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

package timer

import (
	"fmt"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/interrupt"
	"github.com/emu6502/emu6502/logger"
)

// Mode of the timer, as written to the MODE register.
type Mode uint8

// List of valid Mode values. Writing any other value to the MODE register
// pauses the timer.
const (
	Paused Mode = iota
	OneShot
	FreeRun
)

func (m Mode) String() string {
	switch m {
	case Paused:
		return "paused"
	case OneShot:
		return "one-shot"
	case FreeRun:
		return "free-run"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// register offsets
const (
	regMode = iota
	regStatus
	regTimeLo
	regTimeHi
	numRegisters
)

// status bits
const (
	statusInterrupting = 0b01
	statusRunning      = 0b10
)

// Timer is a bus device with a 16 bit countdown counter.
type Timer struct {
	bus.Range

	irq *interrupt.Line

	mode    Mode
	counter uint16

	// the counter is reloaded from these
	latchLo uint8
	latchHi uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(base uint16, irq *interrupt.Line) *Timer {
	return &Timer{
		Range: bus.Range{Base: base, Length: numRegisters},
		irq:   irq,
	}
}

// Reset pauses the timer, zeroes the counter and latches and releases the
// interrupt line.
func (tmr *Timer) Reset() {
	tmr.mode = Paused
	tmr.counter = 0
	tmr.latchLo = 0
	tmr.latchHi = 0
	tmr.irq.Clear(tmr)
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("%s %04x [latch %02x%02x]", tmr.mode, tmr.counter, tmr.latchHi, tmr.latchLo)
}

// Mode returns the current mode of the timer.
func (tmr *Timer) Mode() Mode {
	return tmr.mode
}

// Counter returns the current value of the counter.
func (tmr *Timer) Counter() uint16 {
	return tmr.counter
}

func (tmr *Timer) reload() {
	tmr.counter = uint16(tmr.latchHi)<<8 | uint16(tmr.latchLo)
}

// Tick advances the timer by one machine cycle.
func (tmr *Timer) Tick() {
	if tmr.mode == Paused {
		return
	}

	// a counter of zero expires immediately
	if tmr.counter > 0 {
		tmr.counter--
		if tmr.counter > 0 {
			return
		}
	}

	tmr.irq.Trigger(tmr)
	if tmr.mode == FreeRun {
		tmr.reload()
	} else {
		tmr.mode = Paused
	}
}

func (tmr *Timer) status() uint8 {
	var v uint8
	if tmr.mode != Paused {
		v |= statusRunning
	}
	if tmr.irq.Clear(tmr) {
		v |= statusInterrupting
	}
	return v
}

// OnCycle implements the bus.Device interface.
func (tmr *Timer) OnCycle(sig *bus.Signals) {
	if !tmr.InRange(sig.Address) {
		return
	}

	reg := tmr.Relative(sig.Address)

	if sig.RW {
		switch reg {
		case regMode:
			sig.Drive(uint8(tmr.mode))
		case regStatus:
			sig.Drive(tmr.status())
		case regTimeLo:
			sig.Drive(uint8(tmr.counter))
		case regTimeHi:
			sig.Drive(uint8(tmr.counter >> 8))
		}
		return
	}

	switch reg {
	case regMode:
		m := Mode(sig.Data())
		if m != OneShot && m != FreeRun {
			m = Paused
		}
		if m != tmr.mode {
			logger.Logf(logger.Allow, "timer", "%s -> %s", tmr.mode, m)
		}
		tmr.mode = m
	case regStatus:
		tmr.reload()
	case regTimeLo:
		tmr.latchLo = sig.Data()
		tmr.counter = tmr.counter&0xff00 | uint16(tmr.latchLo)
	case regTimeHi:
		tmr.latchHi = sig.Data()
		tmr.counter = tmr.counter&0x00ff | uint16(tmr.latchHi)<<8
	}
}
