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

package bus

import (
	"fmt"
	"strings"
)

// Signals is the set of lines shared by the CPU and the devices attached to
// the bus. The CPU sets the signals before each cycle. Devices only touch
// the data lines and only through Drive().
type Signals struct {
	Address uint16

	// true when reading, false when writing
	RW bool

	// an opcode is being fetched
	Sync bool

	// a byte of an interrupt vector is being fetched
	VectorPull bool

	data uint8

	// number of devices (including the CPU on a write) that have driven the
	// data lines this cycle
	drivers int

	// the previous driver was overridden this cycle
	contended bool
}

// Data returns the current value of the data lines.
func (sig *Signals) Data() uint8 {
	return sig.data
}

// Drive puts a value onto the data lines. Devices should only drive the bus
// during a read cycle and only if the address is in their range.
func (sig *Signals) Drive(data uint8) {
	if sig.drivers > 0 {
		sig.contended = true
	}
	sig.drivers++
	sig.data = data
}

// HiZ returns true if nothing has driven the data lines this cycle.
func (sig *Signals) HiZ() bool {
	return sig.drivers == 0
}

func (sig *Signals) String() string {
	s := strings.Builder{}
	if sig.RW {
		s.WriteString("R")
	} else {
		s.WriteString("W")
	}
	s.WriteString(fmt.Sprintf(" $%04x", sig.Address))
	if sig.HiZ() {
		s.WriteString(" --")
	} else {
		s.WriteString(fmt.Sprintf(" $%02x", sig.data))
	}
	if sig.Sync {
		s.WriteString(" SYNC")
	}
	if sig.VectorPull {
		s.WriteString(" VP")
	}
	return s.String()
}
