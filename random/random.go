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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of time within the emulation.
type Clock interface {
	CycleCount() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// source for Intn(). created on first use
	src *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil, in which case the cycle count is always zero.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

func (rnd *Random) cycles() int64 {
	if rnd.clk == nil {
		return 0
	}
	return int64(rnd.clk.CycleCount())
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

// Rewindable returns a number in the range [0, n) that depends only on the
// cycle count of the emulation.
func (rnd *Random) Rewindable(n int) int {
	return rand.New(rand.NewSource(rnd.seed() + rnd.cycles())).Intn(n)
}

// Intn returns the next number in the range [0, n) from the generator.
func (rnd *Random) Intn(n int) int {
	if rnd.src == nil {
		rnd.src = rand.New(rand.NewSource(rnd.seed() + rnd.cycles()))
	}
	return rnd.src.Intn(n)
}

// Reseed restarts the generator used by Intn() with a specific seed. A seed of
// zero restarts the generator in the same way as first use.
func (rnd *Random) Reseed(seed int64) {
	if seed == 0 {
		seed = rnd.seed() + rnd.cycles()
	}
	rnd.src = rand.New(rand.NewSource(seed))
}
