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

// Package buttons implements push-buttons connected to the NMI, IRQ and RST
// lines of the CPU.
//
// The Trigger functions are safe to call from any goroutine. The press takes
// effect on the next call to Tick(), which happens on the goroutine stepping
// the emulation.
//
// An NMI or IRQ press holds the line until the CPU pulls the matching
// interrupt vector. A RST press holds the line for a single cycle; the CPU
// restarts the reset sequence regardless of its current state.
package buttons

import (
	"sync/atomic"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/interrupt"
)

// Buttons is a bus device that asserts interrupt lines on request.
type Buttons struct {
	irq *interrupt.Line
	nmi *interrupt.Line
	rst *interrupt.Line

	pressIRQ atomic.Bool
	pressNMI atomic.Bool
	pressRST atomic.Bool

	// the RST line is released on the tick after it was asserted
	releaseRST bool
}

// NewButtons is the preferred method of initialisation for the Buttons type.
func NewButtons(irq, nmi, rst *interrupt.Line) *Buttons {
	return &Buttons{
		irq: irq,
		nmi: nmi,
		rst: rst,
	}
}

// TriggerIRQ presses the IRQ button.
func (b *Buttons) TriggerIRQ() {
	b.pressIRQ.Store(true)
}

// TriggerNMI presses the NMI button.
func (b *Buttons) TriggerNMI() {
	b.pressNMI.Store(true)
}

// TriggerRST presses the RST button.
func (b *Buttons) TriggerRST() {
	b.pressRST.Store(true)
}

// Tick applies any button presses since the previous call.
func (b *Buttons) Tick() {
	if b.pressIRQ.Swap(false) {
		b.irq.Trigger(b)
	}
	if b.pressNMI.Swap(false) {
		b.nmi.Trigger(b)
	}
	if b.pressRST.Swap(false) {
		b.rst.Trigger(b)
		b.releaseRST = true
	} else if b.releaseRST {
		b.rst.Clear(b)
		b.releaseRST = false
	}
}

// OnCycle implements the bus.Device interface. The buttons never drive the
// data bus.
func (b *Buttons) OnCycle(sig *bus.Signals) {
	if !sig.VectorPull {
		return
	}
	switch sig.Address {
	case bus.IRQ, bus.IRQ + 1:
		b.irq.Clear(b)
	case bus.NMI, bus.NMI + 1:
		b.nmi.Clear(b)
	}
}
