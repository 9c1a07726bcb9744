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

import "github.com/emu6502/emu6502/hardware/bus"

// ROM is a read-only memory area. The contents can only be changed with
// Program() or Poke().
type ROM struct {
	area
}

// NewROM is the preferred method of initialisation for the ROM type. The
// area must fit in the 64k address space.
func NewROM(base uint16, size int) (*ROM, error) {
	a, err := newArea(base, size)
	if err != nil {
		return nil, err
	}
	return &ROM{area: a}, nil
}

// OnCycle implements the bus.Device interface.
func (rom *ROM) OnCycle(sig *bus.Signals) {
	if !sig.RW || !rom.InRange(sig.Address) {
		return
	}
	sig.Drive(rom.data[rom.Relative(sig.Address)])
}
