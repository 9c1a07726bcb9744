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

package singlestep

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/hardware/cpu/registers"
	"github.com/emu6502/emu6502/test"
)

type testMem struct {
	internal []uint8
}

func newTestMem() *testMem {
	return &testMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) OnCycle(sig *bus.Signals) {
	if sig.RW {
		sig.Drive(mem.internal[sig.Address])
	} else {
		mem.internal[sig.Address] = sig.Data()
	}
}

type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string `json:"name"`
	Initial State  `json:"initial"`
	Final   State  `json:"final"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// alias type prevents recursion
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

var testsPath = filepath.Join("wdc65c02", "v1")

func TestSingleStep(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if errors.Is(err, fs.ErrNotExist) {
		t.Skipf("no tests in %s", testsPath)
	}
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range d {
		if e.Type().IsRegular() && filepath.Ext(e.Name()) == ".json" {
			testSingleStep(t, filepath.Join(testsPath, e.Name()))
		}
	}
}

func testSingleStep(t *testing.T, testFile string) {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	for i, s := range tests {
		mem := newTestMem()
		mem.internal[bus.Reset] = uint8(s.Initial.PC)
		mem.internal[bus.Reset+1] = uint8(s.Initial.PC >> 8)

		bc := bus.NewController()
		bc.Attach(mem)
		mc := cpu.NewCPU(bc)
		for c := 0; c < 7; c++ {
			test.DemandSuccess(t, mc.Cycle(0))
		}

		mc.A = uint8(s.Initial.A)
		mc.X = uint8(s.Initial.X)
		mc.Y = uint8(s.Initial.Y)
		mc.S = uint8(s.Initial.S)
		mc.P.Load(uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}

		defn := instructions.Definitions[mem.internal[mc.PC]]

		// decimal mode flags are not emulated exactly
		switch defn.Mnemonic {
		case "ADC", "SBC":
			if mc.P.D() {
				continue
			}
		}

		for c := 0; c == 0 || !mc.Boundary(); c++ {
			err := mc.Cycle(0)
			if errors.Is(err, cpu.ContractViolation) {
				// reserved opcodes are not emulated
				break
			}
			test.DemandSuccess(t, err)
		}
		if !mc.Boundary() {
			continue
		}

		// the pipelined fetch has already moved past the next opcode
		pc := mc.PC
		if mc.Step().Kind == cpu.AwaitPipelinedFetch {
			pc--
		}

		var fail bool

		fail = !test.ExpectEquality(t, pc, uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A, uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, mc.X, uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y, uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, mc.S, uint8(s.Final.S), testFile, i, "S") || fail
		// compare instructions set overflow by the sign rule and the
		// hardware leaves it alone
		ignore := registers.Break | registers.Unused
		switch defn.Mnemonic {
		case "CMP", "CPX", "CPY":
			ignore |= registers.Overflow
		}
		fail = !test.ExpectEquality(t, mc.P.Value()&^ignore, uint8(s.Final.P)&^ignore, testFile, i, "P") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, testFile, i, "RAM", r.Address) || fail
		}

		if fail {
			t.Fatalf("%s: failed on test %d (%s)", testFile, i, s.Name)
		}
	}
}
