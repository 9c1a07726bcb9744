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


package uart

import (
	"fmt"
	"sync"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/logger"
)

// Register offsets from the base address.
const (
	RXTX = iota
	STATUS
	numRegisters
)

// RxNotEmpty is the bit in the STATUS register that is set while there are
// bytes waiting to be read.
const RxNotEmpty = 0x01

// maximum number of bytes held in either direction. the oldest byte is lost
// when a buffer is full
const maxBuffer = 4096

// UART is a serial port between the machine and the host program.
type UART struct {
	bus.Range

	// rx and tx are shared with the host
	crit sync.Mutex
	rx   []uint8
	tx   []uint8

	overflow logger.Once
}

// NewUART is the preferred method of initialisation for the UART type.
func NewUART(base uint16) *UART {
	return &UART{
		Range: bus.Range{Base: base, Length: numRegisters},
	}
}

func (u *UART) String() string {
	u.crit.Lock()
	defer u.crit.Unlock()
	return fmt.Sprintf("rx %d tx %d", len(u.rx), len(u.tx))
}

// Reset empties both buffers.
func (u *UART) Reset() {
	u.crit.Lock()
	defer u.crit.Unlock()
	u.rx = u.rx[:0]
	u.tx = u.tx[:0]
	u.overflow.Rearm()
}

func (u *UART) push(buf []uint8, v uint8) []uint8 {
	if len(buf) >= maxBuffer {
		logger.Logf(&u.overflow, "uart", "buffer full at %d bytes (oldest bytes discarded)", maxBuffer)
		buf = buf[1:]
	}
	return append(buf, v)
}

// Send bytes to the machine. They are read one at a time from the RXTX
// register.
func (u *UART) Send(data ...uint8) {
	u.crit.Lock()
	defer u.crit.Unlock()
	for _, v := range data {
		u.rx = u.push(u.rx, v)
	}
}

// Receive returns every byte written by the machine since the last call.
// Returns nil if there are none.
func (u *UART) Receive() []uint8 {
	u.crit.Lock()
	defer u.crit.Unlock()
	if len(u.tx) == 0 {
		return nil
	}
	data := u.tx
	u.tx = nil
	return data
}

// OnCycle implements the bus.Device interface.
func (u *UART) OnCycle(sig *bus.Signals) {
	if !u.InRange(sig.Address) {
		return
	}

	u.crit.Lock()
	defer u.crit.Unlock()

	switch u.Relative(sig.Address) {
	case RXTX:
		if sig.RW {
			var v uint8
			if len(u.rx) > 0 {
				v = u.rx[0]
				u.rx = u.rx[1:]
			}
			sig.Drive(v)
		} else {
			u.tx = u.push(u.tx, sig.Data())
		}
	case STATUS:
		if sig.RW {
			var v uint8
			if len(u.rx) > 0 {
				v |= RxNotEmpty
			}
			sig.Drive(v)
		}
	}
}
