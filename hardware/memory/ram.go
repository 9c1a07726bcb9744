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
	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/random"
)

// RAM is a read/write memory area.
type RAM struct {
	area
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// area must fit in the 64k address space.
func NewRAM(base uint16, size int) (*RAM, error) {
	a, err := newArea(base, size)
	if err != nil {
		return nil, err
	}
	return &RAM{area: a}, nil
}

// Reset contents of RAM. If rnd is not nil the contents are randomised.
func (ram *RAM) Reset(rnd *random.Random) {
	for i := range ram.data {
		if rnd != nil {
			ram.data[i] = uint8(rnd.Intn(0x100))
		} else {
			ram.data[i] = 0
		}
	}
}

// OnCycle implements the bus.Device interface.
func (ram *RAM) OnCycle(sig *bus.Signals) {
	if !ram.InRange(sig.Address) {
		return
	}
	if sig.RW {
		sig.Drive(ram.data[ram.Relative(sig.Address)])
	} else {
		ram.data[ram.Relative(sig.Address)] = sig.Data()
	}
}
