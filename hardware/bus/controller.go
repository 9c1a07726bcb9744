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
	"reflect"
	"slices"

	"github.com/emu6502/emu6502/logger"
)

// Controller drives the bus. All methods are called from the goroutine
// stepping the emulation.
type Controller struct {
	Signals

	// never changed in place. a device detached during a cycle does not
	// disturb the notification of the other devices in that cycle
	devices []*Attachment

	// record bus faults rather than resolving them silently
	strict bool

	// first fault since the last call to Err()
	fault error

	// contention in lenient mode is logged once per reset or change of mode
	contentionLog logger.Once
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

// SetStrict puts the controller into strict mode. In strict mode undriven
// reads and bus contention result in a BusFault.
func (c *Controller) SetStrict(strict bool) {
	c.strict = strict
	c.contentionLog.Rearm()
}

// Reset forgets any bus fault and allows the next contention in lenient mode
// to be logged. Attached devices are not affected.
func (c *Controller) Reset() {
	c.fault = nil
	c.contentionLog.Rearm()
}

// Strict returns true if the controller is in strict mode.
func (c *Controller) Strict() bool {
	return c.strict
}

// Attachment is a device attached to a Controller. It can be used to detach
// the device even if the device is of a type that cannot be compared.
type Attachment struct {
	c *Controller
	d Device
}

// Detach removes the device from the bus. Returns false if the device has
// already been detached.
func (a *Attachment) Detach() bool {
	return a.c.remove(slices.Index(a.c.devices, a))
}

// Attach adds a device to the bus. Devices are notified in the order they
// were attached.
func (c *Controller) Attach(d Device) *Attachment {
	a := &Attachment{c: c, d: d}
	c.devices = append(c.devices, a)
	return a
}

// Detach removes a device from the bus. Returns false if the device was not
// attached or if the device is of a type that cannot be compared, in which
// case the Attachment returned by Attach() must be used instead. The order of
// the remaining devices is unchanged.
func (c *Controller) Detach(d Device) bool {
	if d == nil || !reflect.TypeOf(d).Comparable() {
		return false
	}
	return c.remove(slices.IndexFunc(c.devices, func(a *Attachment) bool {
		return a.d == d
	}))
}

func (c *Controller) remove(i int) bool {
	if i < 0 {
		return false
	}
	c.devices = slices.Concat(c.devices[:i], c.devices[i+1:])
	return true
}

// Devices returns the number of attached devices.
func (c *Controller) Devices() int {
	return len(c.devices)
}

// PrepareCycle sets the control and address lines without notifying the
// devices. The data lines are left undriven.
func (c *Controller) PrepareCycle(rw bool, sync bool, vectorPull bool, address uint16) {
	c.RW = rw
	c.Sync = sync
	c.VectorPull = vectorPull
	c.Address = address
	c.data = 0
	c.drivers = 0
	c.contended = false
}

// PrepareDataCycle is the same as PrepareCycle() except that the data lines
// are driven with the data value.
func (c *Controller) PrepareDataCycle(rw bool, sync bool, vectorPull bool, address uint16, data uint8) {
	c.PrepareCycle(rw, sync, vectorPull, address)
	c.Drive(data)
}

// Cycle notifies every attached device of the prepared signals.
func (c *Controller) Cycle() {
	for _, a := range c.devices {
		a.d.OnCycle(&c.Signals)
	}

	if c.contended {
		if c.strict {
			c.setFault(Contention)
		} else {
			logger.Logf(&c.contentionLog, "bus", "contention at $%04x (further contention will not be logged)", c.Address)
		}
	}

	if c.RW && c.HiZ() {
		if c.strict {
			c.setFault(UndrivenRead)
		}
	}
}

func (c *Controller) setFault(err error) {
	if c.fault == nil {
		c.fault = fmt.Errorf("bus: %w (%s)", err, c.Signals.String())
	}
}

// Err returns the first bus fault since the previous call to Err(). Always
// returns nil when not in strict mode.
func (c *Controller) Err() error {
	err := c.fault
	c.fault = nil
	return err
}

// ReadCycle performs a read cycle and returns the value on the data lines.
func (c *Controller) ReadCycle(address uint16) uint8 {
	c.PrepareCycle(true, false, false, address)
	c.Cycle()
	return c.data
}

// SyncCycle performs a read cycle with the sync line set. Used when fetching
// an opcode.
func (c *Controller) SyncCycle(address uint16) uint8 {
	c.PrepareCycle(true, true, false, address)
	c.Cycle()
	return c.data
}

// VecCycle performs a read cycle with the vector pull line set. Used when
// fetching a byte of an interrupt vector.
func (c *Controller) VecCycle(address uint16) uint8 {
	c.PrepareCycle(true, false, true, address)
	c.Cycle()
	return c.data
}

// WriteCycle performs a write cycle. The data lines are driven with the data
// value for the duration of the cycle.
func (c *Controller) WriteCycle(address uint16, data uint8) {
	c.PrepareDataCycle(false, false, false, address, data)
	c.Cycle()
}
