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

// Device is implemented by every peripheral attached to the bus. OnCycle()
// is called once per bus cycle.
//
// The device should check the address with InRange() before acting. On a
// matching read it drives the data lines. On a matching write it consumes
// the data.
type Device interface {
	OnCycle(sig *Signals)
}

// Range is a contiguous region of the address space. It is usually embedded
// in a Device implementation.
type Range struct {
	Base   uint16
	Length int
}

// InRange returns true if the address is inside the range.
func (r Range) InRange(address uint16) bool {
	return int(address) >= int(r.Base) && int(address) < int(r.Base)+r.Length
}

// Relative returns the address as an offset from the start of the range.
func (r Range) Relative(address uint16) uint16 {
	return address - r.Base
}

// DeviceFunc is an adaptor allowing an ordinary function to be used as a
// Device. Functions are not comparable so a DeviceFunc is detached with the
// Attachment returned by Controller.Attach() and not with
// Controller.Detach().
type DeviceFunc func(sig *Signals)

// OnCycle implements the Device interface.
func (f DeviceFunc) OnCycle(sig *Signals) {
	f(sig)
}
