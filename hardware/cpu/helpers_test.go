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

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/test"
)

type access struct {
	address uint16
	data    uint8
	read    bool
	sync    bool
	vector  bool
}

// mockMem is 64k of memory that records every bus cycle
type mockMem struct {
	internal []uint8
	log      []access
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) OnCycle(sig *bus.Signals) {
	if sig.RW {
		sig.Drive(mem.internal[sig.Address])
	} else {
		mem.internal[sig.Address] = sig.Data()
	}
	mem.log = append(mem.log, access{
		address: sig.Address,
		data:    sig.Data(),
		read:    sig.RW,
		sync:    sig.Sync,
		vector:  sig.VectorPull,
	})
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putWord(address uint16, v uint16) {
	mem.internal[address] = uint8(v)
	mem.internal[address+1] = uint8(v >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, "memory", address)
}

func (mem *mockMem) clearLog() {
	mem.log = mem.log[:0]
}

// create a CPU with memory attached and with the reset sequence completed.
// execution will begin at origin
func newTestCPU(t *testing.T, origin uint16) (*cpu.CPU, *mockMem) {
	t.Helper()

	mem := newMockMem()
	mem.putWord(bus.Reset, origin)

	bc := bus.NewController()
	bc.SetStrict(true)
	bc.Attach(mem)

	mc := cpu.NewCPU(bc)
	for i := 0; i < 7; i++ {
		test.DemandSuccess(t, mc.Cycle(0))
	}
	test.DemandEquality(t, mc.PC, origin)
	mem.clearLog()

	return mc, mem
}

// run the CPU until it is between instructions. returns the number of
// cycles used
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	n := 0
	for {
		test.DemandSuccess(t, mc.Cycle(0))
		n++
		if mc.Boundary() {
			return n
		}
		if n > 10 {
			t.Fatalf("instruction has not finished after %d cycles (%s)", n, mc.Step())
		}
	}
}

// run the CPU from an opcode fetch until the next opcode fetch. returns the
// number of cycles between the two fetches
func cyclesToNextFetch(t *testing.T, mc *cpu.CPU, mem *mockMem) int {
	t.Helper()
	mem.clearLog()
	for n := 0; n < 12; n++ {
		test.DemandSuccess(t, mc.Cycle(0))
		if len(mem.log) > 1 && mem.log[len(mem.log)-1].sync {
			return len(mem.log) - 1
		}
	}
	t.Fatalf("no opcode fetch after %d cycles", len(mem.log))
	return 0
}
