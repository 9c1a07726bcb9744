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

package memory_test

import (
	"errors"
	"testing"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/random"
	"github.com/emu6502/emu6502/test"
)

func TestBounds(t *testing.T) {
	_, err := memory.NewRAM(0x0000, 0x10000)
	test.ExpectSuccess(t, err)

	_, err = memory.NewRAM(0x8000, 0x8001)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, memory.OutOfBounds), true)

	_, err = memory.NewROM(0x0000, -1)
	test.ExpectEquality(t, errors.Is(err, memory.OutOfBounds), true)

	_, err = memory.NewROM(0xc000, 0x4000)
	test.ExpectSuccess(t, err)
}

func TestRAM(t *testing.T) {
	ram, err := memory.NewRAM(0x1000, 0x100)
	test.DemandSuccess(t, err)

	bc := bus.NewController()
	bc.SetStrict(true)
	bc.Attach(ram)

	bc.WriteCycle(0x1010, 0x42)
	test.ExpectSuccess(t, bc.Err())
	test.ExpectEquality(t, bc.ReadCycle(0x1010), 0x42)
	test.ExpectSuccess(t, bc.Err())

	v, err := ram.Peek(0x1010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x42)

	// outside of range
	bc.ReadCycle(0x1100)
	test.ExpectEquality(t, errors.Is(bc.Err(), bus.UndrivenRead), true)

	_, err = ram.Peek(0x0fff)
	test.ExpectEquality(t, errors.Is(err, memory.OutOfBounds), true)
	test.ExpectFailure(t, ram.Poke(0x1100, 0))

	test.ExpectSuccess(t, ram.Poke(0x10ff, 0x99))
	test.ExpectEquality(t, bc.ReadCycle(0x10ff), 0x99)
}

func TestRAMReset(t *testing.T) {
	ram, err := memory.NewRAM(0x0000, 0x100)
	test.DemandSuccess(t, err)

	rnd := random.NewRandom(nil)
	rnd.ZeroSeed = true
	ram.Reset(rnd)

	// it is vanishingly unlikely that 256 random bytes are all zero
	var nonZero bool
	for i := 0; i < ram.Size(); i++ {
		v, _ := ram.Peek(uint16(i))
		if v != 0 {
			nonZero = true
			break
		}
	}
	test.ExpectEquality(t, nonZero, true)

	ram.Reset(nil)
	for i := 0; i < ram.Size(); i++ {
		v, _ := ram.Peek(uint16(i))
		test.ExpectEquality(t, v, 0, i)
	}
}

func TestROM(t *testing.T) {
	rom, err := memory.NewROM(0xc000, 0x4000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rom.Size(), 0x4000)

	test.ExpectSuccess(t, rom.Program([]uint8{0xa9, 0x01, 0xea}))
	err = rom.Program(make([]uint8, 0x4001))
	test.ExpectEquality(t, errors.Is(err, memory.TooLarge), true)

	bc := bus.NewController()
	bc.SetStrict(true)
	bc.Attach(rom)

	test.ExpectEquality(t, bc.SyncCycle(0xc000), 0xa9)
	test.ExpectEquality(t, bc.ReadCycle(0xc001), 0x01)
	test.ExpectSuccess(t, bc.Err())

	// writes are ignored
	bc.WriteCycle(0xc001, 0xff)
	test.ExpectSuccess(t, bc.Err())
	test.ExpectEquality(t, bc.ReadCycle(0xc001), 0x01)

	// poke ignores write protection
	test.ExpectSuccess(t, rom.Poke(0xfffc, 0x00))
	test.ExpectSuccess(t, rom.Poke(0xfffd, 0xc0))
	test.ExpectEquality(t, bc.VecCycle(0xfffd), 0xc0)
}

func TestOverlap(t *testing.T) {
	ram, _ := memory.NewRAM(0x0000, 0x8000)
	rom, _ := memory.NewROM(0x7000, 0x9000)

	bc := bus.NewController()
	bc.SetStrict(true)
	bc.Attach(ram)
	bc.Attach(rom)

	bc.ReadCycle(0x6fff)
	test.ExpectSuccess(t, bc.Err())
	bc.ReadCycle(0x7000)
	test.ExpectEquality(t, errors.Is(bc.Err(), bus.Contention), true)

	// a write to the overlapping area is not contention. only the ram is
	// written to
	bc.WriteCycle(0x7000, 0x11)
	test.ExpectSuccess(t, bc.Err())
}
