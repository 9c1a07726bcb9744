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

package memory

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/emu6502/emu6502/hardware/bus"
)

// Sentinel errors returned by the memory package.
var (
	OutOfBounds = errors.New("memory out of bounds")
	TooLarge    = errors.New("data too large for memory")
)

// the address space is 64k. a memory area cannot extend past the end of it
const addressSpace = 0x10000

// area is the storage common to RAM and ROM.
type area struct {
	bus.Range
	data []uint8
}

func newArea(base uint16, size int) (area, error) {
	if size < 0 || size > addressSpace {
		return area{}, fmt.Errorf("memory: %w: size %d", OutOfBounds, size)
	}
	if int(base)+size > addressSpace {
		return area{}, fmt.Errorf("memory: %w: final address $%x", OutOfBounds, int(base)+size)
	}
	return area{
		Range: bus.Range{Base: base, Length: size},
		data:  make([]uint8, size),
	}, nil
}

// Size returns the number of bytes in the memory area.
func (a *area) Size() int {
	return len(a.data)
}

// Program copies data to the start of the memory area.
func (a *area) Program(data []uint8) error {
	if len(data) > len(a.data) {
		return fmt.Errorf("memory: %w: %d bytes for %d byte area", TooLarge, len(data), len(a.data))
	}
	copy(a.data, data)
	return nil
}

// Peek returns the value at the bus address without a bus cycle.
func (a *area) Peek(address uint16) (uint8, error) {
	if !a.InRange(address) {
		return 0, fmt.Errorf("memory: %w: $%04x", OutOfBounds, address)
	}
	return a.data[a.Relative(address)], nil
}

// Poke sets the value at the bus address without a bus cycle. Poke will
// change the contents of a ROM.
func (a *area) Poke(address uint16, value uint8) error {
	if !a.InRange(address) {
		return fmt.Errorf("memory: %w: $%04x", OutOfBounds, address)
	}
	a.data[a.Relative(address)] = value
	return nil
}

func (a *area) String() string {
	return hex.Dump(a.data)
}
