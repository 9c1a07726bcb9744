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

func jmpAbsolute(mc *CPU) {
	switch mc.step.N {
	case 0:
		mc.PC++
		mc.next()
	case 1:
		mc.ea = uint16(mc.bus.ReadCycle(mc.PC))
		mc.PC++
		mc.next()
	case 2:
		mc.eah(mc.bus.ReadCycle(mc.PC))
		mc.PC = mc.ea
		mc.step = awaitFetch
	default:
		mc.badStep()
	}
}

// JMP (abs) and JMP (abs,X). unlike the NMOS 6502 the pointer is read
// correctly when it straddles a page boundary
func jmpIndirect(indexed bool) handler {
	return func(mc *CPU) {
		if absolute.resolve(mc, false) {
			return
		}
		switch mc.step.N {
		case 3:
			_ = mc.bus.ReadCycle(mc.PC - 1)
			if indexed {
				mc.ea += uint16(mc.X)
			}
			mc.next()
		case 4:
			mc.aluTmp = mc.bus.ReadCycle(mc.ea)
			mc.next()
		case 5:
			mc.PC = uint16(mc.bus.ReadCycle(mc.ea+1))<<8 | uint16(mc.aluTmp)
			mc.step = awaitFetch
		default:
			mc.badStep()
		}
	}
}

// the address pushed onto the stack is the address of the last byte of the
// JSR instruction
func jsr(mc *CPU) {
	switch mc.step.N {
	case 0:
		mc.PC++
		mc.next()
	case 1:
		mc.ea = uint16(mc.bus.ReadCycle(mc.PC))
		mc.PC++
		mc.next()
	case 2:
		_ = mc.bus.ReadCycle(mc.ExpandedS())
		mc.next()
	case 3:
		mc.push(uint8(mc.PC >> 8))
		mc.next()
	case 4:
		mc.push(uint8(mc.PC))
		mc.next()
	case 5:
		mc.eah(mc.bus.ReadCycle(mc.PC))
		mc.PC = mc.ea
		mc.step = awaitFetch
	default:
		mc.badStep()
	}
}

func rts(mc *CPU) {
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
		mc.pcl(mc.bus.ReadCycle(mc.ExpandedS()))
		mc.S++
		mc.next()
	case 4:
		mc.PC = mc.PC&0x00ff | uint16(mc.bus.ReadCycle(mc.ExpandedS()))<<8
		mc.next()
	case 5:
		_ = mc.bus.ReadCycle(mc.PC)
		mc.PC++
		mc.step = awaitFetch
	default:
		mc.badStep()
	}
}

func rti(mc *CPU) {
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
		mc.P.Load(mc.bus.ReadCycle(mc.ExpandedS()))
		mc.S++
		mc.next()
	case 4:
		mc.pcl(mc.bus.ReadCycle(mc.ExpandedS()))
		mc.S++
		mc.next()
	case 5:
		mc.PC = mc.PC&0x00ff | uint16(mc.bus.ReadCycle(mc.ExpandedS()))<<8
		mc.step = awaitFetch
	default:
		mc.badStep()
	}
}

// the branch offset is in the low byte of mc.ea. a branch that is not taken
// fetches the next opcode in the same cycle
func (mc *CPU) resolveBranch(taken bool) {
	if !taken {
		mc.pipelinedFetch()
		return
	}

	_ = mc.bus.ReadCycle(mc.PC)
	target := mc.PC + uint16(int8(uint8(mc.ea)))
	mc.ea = target

	if target&0xff00 == mc.PC&0xff00 {
		mc.PC = target
		mc.step = awaitFetch
		return
	}

	mc.pcl(uint8(target))
	mc.next()
}

// the extra cycle of a branch to another page
func (mc *CPU) fixupBranch() {
	_ = mc.bus.ReadCycle(mc.PC)
	mc.PC = mc.ea
	mc.step = awaitFetch
}

func branch(taken func(mc *CPU) bool) handler {
	return func(mc *CPU) {
		switch mc.step.N {
		case 0:
			mc.PC++
			mc.next()
		case 1:
			mc.ea = uint16(mc.bus.ReadCycle(mc.PC))
			mc.PC++
			mc.next()
		case 2:
			mc.resolveBranch(taken(mc))
		case 3:
			mc.fixupBranch()
		default:
			mc.badStep()
		}
	}
}

// BBR and BBS. the zero page value is held in mc.aluTmp while the branch
// offset is read
func branchOnBit(n uint, set bool) handler {
	mask := uint8(1) << n
	return func(mc *CPU) {
		switch mc.step.N {
		case 0:
			mc.PC++
			mc.next()
		case 1:
			mc.ea = uint16(mc.bus.ReadCycle(mc.PC))
			mc.PC++
			mc.next()
		case 2:
			mc.aluTmp = mc.bus.ReadCycle(mc.ea)
			mc.next()
		case 3:
			mc.ea = uint16(mc.bus.ReadCycle(mc.PC))
			mc.PC++
			mc.next()
		case 4:
			mc.resolveBranch((mc.aluTmp&mask == mask) == set)
		case 5:
			mc.fixupBranch()
		default:
			mc.badStep()
		}
	}
}

func always(_ *CPU) bool { return true }

func condition(flag func(mc *CPU) bool, v bool) func(mc *CPU) bool {
	return func(mc *CPU) bool {
		return flag(mc) == v
	}
}

func negative(mc *CPU) bool { return mc.P.N() }
func overflow(mc *CPU) bool { return mc.P.V() }
func carry(mc *CPU) bool    { return mc.P.C() }
func zero(mc *CPU) bool     { return mc.P.Z() }
