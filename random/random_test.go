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

package random_test

import (
	"testing"

	"github.com/emu6502/emu6502/random"
	"github.com/emu6502/emu6502/test"
)

type clock struct {
	count uint64
}

func (c *clock) CycleCount() uint64 {
	return c.count
}

func TestRewindable(t *testing.T) {
	clk := &clock{count: 100}
	a := random.NewRandom(clk)
	b := random.NewRandom(clk)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}

	// same cycle count, same number
	v := a.Rewindable(1000)
	test.ExpectEquality(t, a.Rewindable(1000), v)
}

func TestIntn(t *testing.T) {
	a := random.NewRandom(nil)
	b := random.NewRandom(nil)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		v := a.Intn(i)
		test.ExpectEquality(t, v, b.Intn(i))
		test.ExpectEquality(t, v >= 0 && v < i, true)
	}
}

func TestReseed(t *testing.T) {
	a := random.NewRandom(nil)
	b := random.NewRandom(&clock{count: 12345})
	a.Reseed(42)
	b.Reseed(42)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}
