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

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zp
	Indirect // (abs)

	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zp,X
	ZeroPageIndexedY // zp,Y

	ZeroPageIndirect        // (zp)
	AbsoluteIndexedIndirect // (abs,X)
	ZeroPageRelative        // zp,rel
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "impl"
	case Accumulator:
		return "A"
	case Immediate:
		return "#"
	case Relative:
		return "rel"
	case Absolute:
		return "abs"
	case ZeroPage:
		return "zp"
	case Indirect:
		return "(abs)"
	case IndexedIndirect:
		return "(zp,X)"
	case IndirectIndexed:
		return "(zp),Y"
	case AbsoluteIndexedX:
		return "abs,X"
	case AbsoluteIndexedY:
		return "abs,Y"
	case ZeroPageIndexedX:
		return "zp,X"
	case ZeroPageIndexedY:
		return "zp,Y"
	case ZeroPageIndirect:
		return "(zp)"
	case AbsoluteIndexedIndirect:
		return "(abs,X)"
	case ZeroPageRelative:
		return "zp,rel"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes (including the opcode) used by an
// instruction with the addressing mode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY, AbsoluteIndexedIndirect, ZeroPageRelative:
		return 3
	}
	return 2
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// branches and jumps
	Flow

	Subroutine
	Interrupt
)

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// Defined returns false if the opcode is reserved.
func (defn Definition) Defined() bool {
	return defn.Mnemonic != ""
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if !defn.Defined() {
		return fmt.Sprintf("%02x reserved", defn.OpCode)
	}
	return fmt.Sprintf("%02x %s %s +%dbytes (%d cycles) [pagesens=%t effect=%d]", defn.OpCode, defn.Mnemonic, defn.AddressingMode, defn.Bytes, defn.Cycles, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a conditional or unconditional
// relative branch, including the branch-on-bit instructions.
func (defn Definition) IsBranch() bool {
	return (defn.AddressingMode == Relative || defn.AddressingMode == ZeroPageRelative) && defn.Effect == Flow
}

// Mnemonic returns the opcode's mnemonic with the addressing mode. Reserved
// opcodes return "???".
func Mnemonic(opcode uint8) string {
	defn := Definitions[opcode]
	if !defn.Defined() {
		return "???"
	}
	switch defn.AddressingMode {
	case Implied:
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, defn.AddressingMode)
}
