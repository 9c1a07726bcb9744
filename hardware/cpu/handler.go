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

// handler performs one step of an instruction. It is called once per cycle
// for as long as the step is Executing.
type handler func(mc *CPU)

// operations used by the handler builders
type (
	// consumes a value read from memory or from the instruction stream
	readOp func(mc *CPU, v uint8)

	// produces the value to be written to memory
	writeOp func(mc *CPU) uint8

	// transforms a value and returns the result
	modifyOp func(mc *CPU, v uint8) uint8
)

// implied instructions take two cycles. the second cycle reads the byte after
// the opcode but does not consume it
func implied(op func(mc *CPU)) handler {
	return func(mc *CPU) {
		switch mc.step.N {
		case 0:
			mc.PC++
			mc.next()
		case 1:
			_ = mc.bus.ReadCycle(mc.PC)
			op(mc)
			mc.step = awaitFetch
		default:
			mc.badStep()
		}
	}
}

func accumulator(op modifyOp) handler {
	return implied(func(mc *CPU) {
		mc.A = op(mc, mc.A)
	})
}

func immediate(op readOp) handler {
	return func(mc *CPU) {
		switch mc.step.N {
		case 0:
			mc.PC++
			mc.next()
		case 1:
			op(mc, mc.bus.ReadCycle(mc.PC))
			mc.PC++
			mc.step = awaitFetch
		default:
			mc.badStep()
		}
	}
}

func read(mode addressing, op readOp) handler {
	return func(mc *CPU) {
		if mode.resolve(mc, false) {
			return
		}
		if mc.step.N != mode.ready {
			mc.badStep()
			return
		}
		op(mc, mc.bus.ReadCycle(mc.ea))
		mc.step = awaitFetch
	}
}

func write(mode addressing, op writeOp) handler {
	return func(mc *CPU) {
		if mode.resolve(mc, true) {
			return
		}
		if mc.step.N != mode.ready {
			mc.badStep()
			return
		}
		mc.bus.WriteCycle(mc.ea, op(mc))
		mc.step = awaitFetch
	}
}

// read-modify-write instructions read the value, read it again while the
// value is being modified and then write the result. the fixup argument
// forces the extra cycle of indexed addressing modes
func rmw(mode addressing, op modifyOp, fixup bool) handler {
	return func(mc *CPU) {
		if mode.resolve(mc, fixup) {
			return
		}
		switch mc.step.N - mode.ready {
		case 0:
			mc.aluTmp = mc.bus.ReadCycle(mc.ea)
			mc.next()
		case 1:
			_ = mc.bus.ReadCycle(mc.ea)
			mc.aluTmp = op(mc, mc.aluTmp)
			mc.next()
		case 2:
			mc.bus.WriteCycle(mc.ea, mc.aluTmp)
			mc.step = awaitFetch
		default:
			mc.badStep()
		}
	}
}

func (mc *CPU) push(v uint8) {
	mc.bus.WriteCycle(mc.ExpandedS(), v)
	mc.S--
}

func push(op writeOp) handler {
	return func(mc *CPU) {
		switch mc.step.N {
		case 0:
			mc.PC++
			mc.next()
		case 1:
			_ = mc.bus.ReadCycle(mc.PC)
			mc.next()
		case 2:
			mc.push(op(mc))
			mc.step = awaitFetch
		default:
			mc.badStep()
		}
	}
}

func pull(op readOp) handler {
	return func(mc *CPU) {
		switch mc.step.N {
		case 0:
			mc.PC++
			mc.next()
		case 1:
			_ = mc.bus.ReadCycle(mc.PC)
			mc.next()
		case 2:
			_ = mc.bus.ReadCycle(mc.ExpandedS())
			mc.S++
			mc.next()
		case 3:
			op(mc, mc.bus.ReadCycle(mc.ExpandedS()))
			mc.step = awaitFetch
		default:
			mc.badStep()
		}
	}
}
