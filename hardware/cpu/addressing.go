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

// addressing resolves the effective address of an instruction one step at a
// time. The resolve function returns true if it used the current cycle.
// Once it returns false the effective address is in mc.ea and the step
// number will be equal to ready.
//
// The fixup argument forces the extra cycle of the indexed modes even when
// no page boundary is crossed. Instructions that write to memory need this.
type addressing struct {
	resolve func(mc *CPU, fixup bool) bool
	ready   int
}

var (
	zeroPage         = addressing{resolve: func(mc *CPU, _ bool) bool { return mc.zpg() }, ready: 2}
	zeroPageX        = addressing{resolve: func(mc *CPU, _ bool) bool { return mc.zpgIndexed(mc.X) }, ready: 3}
	zeroPageY        = addressing{resolve: func(mc *CPU, _ bool) bool { return mc.zpgIndexed(mc.Y) }, ready: 3}
	absolute         = addressing{resolve: func(mc *CPU, _ bool) bool { return mc.abs() }, ready: 3}
	absoluteX        = addressing{resolve: func(mc *CPU, fixup bool) bool { return mc.absIndexed(mc.X, fixup) }, ready: 4}
	absoluteY        = addressing{resolve: func(mc *CPU, fixup bool) bool { return mc.absIndexed(mc.Y, fixup) }, ready: 4}
	indexedIndirect  = addressing{resolve: func(mc *CPU, _ bool) bool { return mc.xind() }, ready: 5}
	indirectIndexed  = addressing{resolve: func(mc *CPU, fixup bool) bool { return mc.indy(fixup) }, ready: 5}
	zeroPageIndirect = addressing{resolve: func(mc *CPU, _ bool) bool { return mc.zpgInd() }, ready: 4}
)

func (mc *CPU) eal(v uint8) {
	mc.ea = mc.ea&0xff00 | uint16(v)
}

func (mc *CPU) eah(v uint8) {
	mc.ea = mc.ea&0x00ff | uint16(v)<<8
}

// add index to the low byte of the effective address. the high byte is not
// adjusted until the fixup step
func (mc *CPU) indexLow(index uint8) {
	r := uint16(mc.ea&0x00ff) + uint16(index)
	mc.eal(uint8(r))
	mc.carried = r > 0xff
}

// steps 0 and 1
func (mc *CPU) zpg() bool {
	switch mc.step.N {
	case 0:
		mc.PC++
	case 1:
		mc.ea = uint16(mc.bus.ReadCycle(mc.PC))
		mc.PC++
	default:
		return false
	}
	mc.next()
	return true
}

// steps 0 to 2. the index wraps around the zero page
func (mc *CPU) zpgIndexed(index uint8) bool {
	switch mc.step.N {
	case 0:
		mc.PC++
	case 1:
		mc.ea = uint16(mc.bus.ReadCycle(mc.PC))
		mc.PC++
	case 2:
		_ = mc.bus.ReadCycle(mc.ea)
		mc.ea = uint16(uint8(mc.ea) + index)
	default:
		return false
	}
	mc.next()
	return true
}

// steps 0 to 2
func (mc *CPU) abs() bool {
	switch mc.step.N {
	case 0:
		mc.PC++
	case 1:
		mc.ea = uint16(mc.bus.ReadCycle(mc.PC))
		mc.PC++
	case 2:
		mc.eah(mc.bus.ReadCycle(mc.PC))
		mc.PC++
	default:
		return false
	}
	mc.next()
	return true
}

// steps 0 to 3. step 3 is skipped if no page boundary is crossed and the
// fixup is not forced
func (mc *CPU) absIndexed(index uint8, fixup bool) bool {
	switch mc.step.N {
	case 0:
		mc.PC++
	case 1:
		mc.ea = uint16(mc.bus.ReadCycle(mc.PC))
		mc.PC++
	case 2:
		mc.eah(mc.bus.ReadCycle(mc.PC))
		mc.PC++
		mc.indexLow(index)
		if !mc.carried && !fixup {
			mc.next()
		}
	case 3:
		_ = mc.bus.ReadCycle(mc.ea)
		if mc.carried {
			mc.ea += 0x0100
		}
	default:
		return false
	}
	mc.next()
	return true
}

// steps 0 to 4
func (mc *CPU) xind() bool {
	switch mc.step.N {
	case 0:
		mc.PC++
	case 1:
		mc.indAddr = mc.bus.ReadCycle(mc.PC)
		mc.PC++
	case 2:
		_ = mc.bus.ReadCycle(uint16(mc.indAddr))
		mc.indAddr += mc.X
	case 3:
		mc.ea = uint16(mc.bus.ReadCycle(uint16(mc.indAddr)))
		mc.indAddr++
	case 4:
		mc.eah(mc.bus.ReadCycle(uint16(mc.indAddr)))
	default:
		return false
	}
	mc.next()
	return true
}

// steps 0 to 4. step 4 is skipped if no page boundary is crossed and the
// fixup is not forced
func (mc *CPU) indy(fixup bool) bool {
	switch mc.step.N {
	case 0:
		mc.PC++
	case 1:
		mc.indAddr = mc.bus.ReadCycle(mc.PC)
		mc.PC++
	case 2:
		mc.ea = uint16(mc.bus.ReadCycle(uint16(mc.indAddr)))
		mc.indAddr++
	case 3:
		mc.eah(mc.bus.ReadCycle(uint16(mc.indAddr)))
		mc.indexLow(mc.Y)
		if !mc.carried && !fixup {
			mc.next()
		}
	case 4:
		_ = mc.bus.ReadCycle(mc.ea)
		if mc.carried {
			mc.ea += 0x0100
		}
	default:
		return false
	}
	mc.next()
	return true
}

// steps 0 to 3. the pointer wraps around the zero page
func (mc *CPU) zpgInd() bool {
	switch mc.step.N {
	case 0:
		mc.PC++
	case 1:
		mc.indAddr = mc.bus.ReadCycle(mc.PC)
		mc.PC++
	case 2:
		mc.ea = uint16(mc.bus.ReadCycle(uint16(mc.indAddr)))
		mc.indAddr++
	case 3:
		mc.eah(mc.bus.ReadCycle(uint16(mc.indAddr)))
	default:
		return false
	}
	mc.next()
	return true
}
