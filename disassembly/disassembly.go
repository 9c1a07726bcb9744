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

// Package disassembly produces a linear disassembly of a 65C02 binary image.
//
// Every byte of the image is assumed to be the start of an instruction or an
// operand. Data in the image will therefore be disassembled as though it was
// code. Reserved opcodes and instructions truncated by the end of the image
// are shown as single bytes.
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/emu6502/emu6502/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Bytes   []uint8

	// the Defined() function of the definition will return false if the
	// entry is a single byte of data
	Defn instructions.Definition

	// operand decorated according to the addressing mode
	Operand string
}

func (e Entry) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%04x ", e.Address)
	for i := 0; i < 3; i++ {
		if i < len(e.Bytes) {
			fmt.Fprintf(&s, " %02x", e.Bytes[i])
		} else {
			s.WriteString("   ")
		}
	}
	s.WriteString("  ")

	if !e.Defn.Defined() {
		fmt.Fprintf(&s, ".byte $%02x", e.Bytes[0])
		return s.String()
	}

	s.WriteString(e.Defn.Mnemonic)
	if e.Operand != "" {
		s.WriteString(" ")
		s.WriteString(e.Operand)
	}
	return s.String()
}

// Disassemble data which begins at the origin address.
func Disassemble(data []uint8, origin uint16) []Entry {
	var entries []Entry

	for i := 0; i < len(data); {
		address := origin + uint16(i)
		defn := instructions.Definitions[data[i]]

		if !defn.Defined() || i+defn.Bytes > len(data) {
			entries = append(entries, Entry{
				Address: address,
				Bytes:   data[i : i+1],
			})
			i++
			continue
		}

		b := data[i : i+defn.Bytes]
		entries = append(entries, Entry{
			Address: address,
			Bytes:   b,
			Defn:    defn,
			Operand: operand(address, defn, b),
		})
		i += defn.Bytes
	}

	return entries
}

// Write disassembly of data to output, one instruction per line.
func Write(output io.Writer, data []uint8, origin uint16) error {
	for _, e := range Disassemble(data, origin) {
		if _, err := fmt.Fprintln(output, e); err != nil {
			return err
		}
	}
	return nil
}

// branch destination relative to the address of the following instruction
func destination(next uint16, offset uint8) uint16 {
	return next + uint16(int8(offset))
}

func operand(address uint16, defn instructions.Definition, b []uint8) string {
	var word uint16
	if len(b) == 3 {
		word = uint16(b[2])<<8 | uint16(b[1])
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", b[1])
	case instructions.Relative:
		return fmt.Sprintf("$%04x", destination(address+2, b[1]))
	case instructions.ZeroPageRelative:
		return fmt.Sprintf("$%02x,$%04x", b[1], destination(address+3, b[2]))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", b[1])
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", b[1])
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", b[1])
	case instructions.ZeroPageIndirect:
		return fmt.Sprintf("($%02x)", b[1])
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", b[1])
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", b[1])
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", word)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", word)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", word)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", word)
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04x,X)", word)
	}

	return ""
}
