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
	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/logger"
)

// the sequence shared by BRK and the hardware interrupts. the three stack
// cycles are reads rather than writes for the reset sequence. the interrupt
// disable and decimal flags change after the status register has been pushed
func (mc *CPU) interruptSequence(vector uint16, brk bool, reset bool) {
	switch mc.step.N {
	case 0:
		if brk {
			mc.PC++
		} else {
			_ = mc.bus.ReadCycle(mc.PC)
		}
		mc.next()
	case 1:
		_ = mc.bus.ReadCycle(mc.PC)
		if brk {
			// signature byte
			mc.PC++
		}
		mc.next()
	case 2:
		if reset {
			_ = mc.bus.ReadCycle(mc.ExpandedS())
			mc.S--
		} else {
			mc.push(uint8(mc.PC >> 8))
		}
		mc.next()
	case 3:
		if reset {
			_ = mc.bus.ReadCycle(mc.ExpandedS())
			mc.S--
		} else {
			mc.push(uint8(mc.PC))
		}
		mc.next()
	case 4:
		if reset {
			_ = mc.bus.ReadCycle(mc.ExpandedS())
			mc.S--
		} else {
			mc.push(mc.P.Push(brk))
		}
		mc.P.SetI(true)
		mc.P.SetD(false)
		mc.next()
	case 5:
		mc.ea = uint16(mc.bus.VecCycle(vector))
		mc.next()
	case 6:
		mc.eah(mc.bus.VecCycle(vector + 1))
		mc.PC = mc.ea
		mc.step = awaitFetch
	default:
		mc.badStep()
	}
}

func brk(mc *CPU) { mc.interruptSequence(bus.BRK, true, false) }
func nmi(mc *CPU) { mc.interruptSequence(bus.NMI, false, false) }
func irq(mc *CPU) { mc.interruptSequence(bus.IRQ, false, false) }
func rst(mc *CPU) { mc.interruptSequence(bus.Reset, false, true) }

// WAI and STP take three cycles before the CPU goes idle
func idle(until Step) handler {
	return func(mc *CPU) {
		switch mc.step.N {
		case 0:
			mc.PC++
			mc.next()
		case 1:
			_ = mc.bus.ReadCycle(mc.PC)
			mc.next()
		case 2:
			_ = mc.bus.ReadCycle(mc.PC)
			mc.step = until
			logger.Logf(logger.Allow, "cpu", "%s at $%04x", until, mc.PC-1)
		default:
			mc.badStep()
		}
	}
}
