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

package cpu_test

import (
	"testing"

	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/test"
)

// instructions with their own timing tests
func timedSeparately(defn instructions.Definition) bool {
	switch defn.Mnemonic {
	case "WAI", "STP":
		return true
	}
	return defn.IsBranch()
}

// prepare a CPU to execute a single instruction at $0200. the operand is
// $0310 for absolute addressing and $10 for zero page addressing. the zero
// page pointer at $10 points to $03f0
func timingCPU(t *testing.T, opcode uint8, index uint8) (*cpu.CPU, *mockMem) {
	t.Helper()
	mc, mem := newTestCPU(t, 0x0200)
	mem.putInstructions(0x0200, opcode, 0x10, 0x03)
	mem.putWord(0x10, 0x03f0)
	mc.X = index
	mc.Y = index
	mc.P.Load(0)
	return mc, mem
}

func TestInstructionTiming(t *testing.T) {
	for _, defn := range instructions.Definitions {
		if !defn.Defined() || timedSeparately(defn) {
			continue
		}

		mc, mem := timingCPU(t, defn.OpCode, 0)
		test.ExpectEquality(t, cyclesToNextFetch(t, mc, mem), defn.Cycles, defn)
	}
}

func TestPageCrossingTiming(t *testing.T) {
	for _, defn := range instructions.Definitions {
		if !defn.Defined() || timedSeparately(defn) {
			continue
		}

		// an index of $ff always crosses a page boundary for the absolute
		// and indirect indexed modes
		mc, mem := timingCPU(t, defn.OpCode, 0xff)
		expected := defn.Cycles
		if defn.PageSensitive {
			expected++
		}
		test.ExpectEquality(t, cyclesToNextFetch(t, mc, mem), expected, defn)
	}
}

func TestBranchTiming(t *testing.T) {
	for _, defn := range instructions.Definitions {
		if defn.AddressingMode != instructions.Relative {
			continue
		}

		// with all flags clear BPL, BVC, BCC, BNE and BRA are taken
		var taken bool
		switch defn.Mnemonic {
		case "BPL", "BVC", "BCC", "BNE", "BRA":
			taken = true
		}

		// the offset is the low byte of the operand used for timingCPU()
		// and so does not cross a page
		mc, mem := timingCPU(t, defn.OpCode, 0)
		expected := 2
		if taken {
			expected = 3
		}
		test.ExpectEquality(t, cyclesToNextFetch(t, mc, mem), expected, defn)

		// backwards branch to the previous page
		if taken {
			mc, mem = timingCPU(t, defn.OpCode, 0)
			mem.putInstructions(0x0201, 0x80)
			test.ExpectEquality(t, cyclesToNextFetch(t, mc, mem), 4, defn)
		}
	}
}

func TestBranchOnBitTiming(t *testing.T) {
	for _, defn := range instructions.Definitions {
		if defn.AddressingMode != instructions.ZeroPageRelative {
			continue
		}

		// the value at $10 is $f0 so bits 4 to 7 are set
		bit := (defn.OpCode >> 4) & 0x07
		set := defn.Mnemonic[:3] == "BBS"
		taken := (bit >= 4) == set

		mc, mem := timingCPU(t, defn.OpCode, 0)
		expected := 4
		if taken {
			expected = 5
		}
		test.ExpectEquality(t, cyclesToNextFetch(t, mc, mem), expected, defn)

		// a taken branch with an offset of $fe crosses into the previous page
		if taken {
			mc, mem = timingCPU(t, defn.OpCode, 0)
			mem.putInstructions(0x0202, 0xf0)
			test.ExpectEquality(t, cyclesToNextFetch(t, mc, mem), 6, defn)
		}
	}
}

func TestIdleInstructions(t *testing.T) {
	// WAI
	mc, mem := timingCPU(t, 0xcb, 0)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.Step(), cpu.Step{Kind: cpu.WaitingForInterrupt})

	mem.clearLog()
	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, mc.Cycle(0))
	}
	test.ExpectEquality(t, len(mem.log), 0)

	// STP
	mc, mem = timingCPU(t, 0xdb, 0)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.Step(), cpu.Step{Kind: cpu.Stopped})

	mem.clearLog()
	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, mc.Cycle(0))
	}
	test.ExpectEquality(t, len(mem.log), 0)
}

func TestReadModifyWrite(t *testing.T) {
	for _, defn := range instructions.Definitions {
		if defn.Effect != instructions.RMW {
			continue
		}

		mc, mem := timingCPU(t, defn.OpCode, 0)
		cyclesToNextFetch(t, mc, mem)

		var ea uint16
		switch defn.AddressingMode {
		case instructions.ZeroPage, instructions.ZeroPageIndexedX:
			ea = 0x0010
		case instructions.Absolute, instructions.AbsoluteIndexedX:
			ea = 0x0310
		default:
			t.Fatalf("unexpected addressing mode for RMW instruction: %s", defn)
		}

		// the three cycles before the next opcode fetch
		n := len(mem.log)
		test.DemandEquality(t, n > 4, true, defn)
		rmw := mem.log[n-4 : n-1]

		test.ExpectEquality(t, rmw[0].read, true, defn)
		test.ExpectEquality(t, rmw[1].read, true, defn)
		test.ExpectEquality(t, rmw[2].read, false, defn)
		for _, a := range rmw {
			test.ExpectEquality(t, a.address, ea, defn)
		}

		// no other write happens during the instruction
		for _, a := range mem.log[:n-2] {
			test.ExpectEquality(t, a.read, true, defn)
		}
	}
}

// cycle counts from the WDC W65C02S datasheet. independent of the values in
// the instructions table
func TestDatasheetTiming(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		index  uint8

		// replaces the low byte of the operand when not zero
		lo uint8

		cycles int
	}{
		{name: "LDA #", opcode: 0xa9, cycles: 2},
		{name: "LDA zp", opcode: 0xa5, cycles: 3},
		{name: "LDA zp,X", opcode: 0xb5, cycles: 4},
		{name: "LDA zp,X wrapped", opcode: 0xb5, index: 0xff, cycles: 4},
		{name: "LDX zp,Y", opcode: 0xb6, cycles: 4},
		{name: "LDA abs", opcode: 0xad, cycles: 4},
		{name: "LDA abs,X", opcode: 0xbd, cycles: 4},
		{name: "LDA abs,X crossed", opcode: 0xbd, index: 0xff, cycles: 5},
		{name: "LDA abs,Y crossed", opcode: 0xb9, index: 0xff, cycles: 5},
		{name: "LDA (zp,X)", opcode: 0xa1, cycles: 6},
		{name: "LDA (zp,X) wrapped", opcode: 0xa1, index: 0xff, cycles: 6},
		{name: "LDA (zp),Y", opcode: 0xb1, cycles: 5},
		{name: "LDA (zp),Y crossed", opcode: 0xb1, index: 0xff, cycles: 6},
		{name: "LDA (zp)", opcode: 0xb2, cycles: 5},
		{name: "STA abs", opcode: 0x8d, cycles: 4},
		{name: "STA abs,X", opcode: 0x9d, cycles: 5},
		{name: "STA abs,X crossed", opcode: 0x9d, index: 0xff, cycles: 5},
		{name: "STA (zp),Y", opcode: 0x91, cycles: 6},
		{name: "STA (zp),Y crossed", opcode: 0x91, index: 0xff, cycles: 6},
		{name: "ASL A", opcode: 0x0a, cycles: 2},
		{name: "ASL zp", opcode: 0x06, cycles: 5},
		{name: "ASL abs", opcode: 0x0e, cycles: 6},
		{name: "ASL abs,X", opcode: 0x1e, cycles: 6},
		{name: "ASL abs,X crossed", opcode: 0x1e, index: 0xff, cycles: 7},
		{name: "INC A", opcode: 0x1a, cycles: 2},
		{name: "INC abs,X", opcode: 0xfe, cycles: 7},
		{name: "INC abs,X crossed", opcode: 0xfe, index: 0xff, cycles: 7},
		{name: "DEC abs,X", opcode: 0xde, cycles: 7},
		{name: "BEQ not taken", opcode: 0xf0, cycles: 2},
		{name: "BNE taken", opcode: 0xd0, cycles: 3},
		{name: "BNE taken crossed", opcode: 0xd0, lo: 0x80, cycles: 4},
		{name: "BRA", opcode: 0x80, cycles: 3},
		{name: "BRA crossed", opcode: 0x80, lo: 0x80, cycles: 4},
		{name: "JMP abs", opcode: 0x4c, cycles: 3},
		{name: "JMP (abs)", opcode: 0x6c, cycles: 6},
		{name: "JMP (abs,X)", opcode: 0x7c, cycles: 6},
		{name: "JSR", opcode: 0x20, cycles: 6},
		{name: "RTS", opcode: 0x60, cycles: 6},
		{name: "RTI", opcode: 0x40, cycles: 6},
		{name: "BRK", opcode: 0x00, cycles: 7},
		{name: "PHA", opcode: 0x48, cycles: 3},
		{name: "PLA", opcode: 0x68, cycles: 4},
		{name: "NOP", opcode: 0xea, cycles: 2},
	}

	for _, tt := range tests {
		mc, mem := timingCPU(t, tt.opcode, tt.index)
		if tt.lo != 0 {
			mem.putInstructions(0x0201, tt.lo)
		}
		test.ExpectEquality(t, cyclesToNextFetch(t, mc, mem), tt.cycles, tt.name)
	}
}
