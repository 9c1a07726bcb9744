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

package registers

import "strings"

// Bit masks of the flags in the status register.
const (
	Negative  = uint8(0x80)
	Overflow  = uint8(0x40)
	Unused    = uint8(0x20)
	Break     = uint8(0x10)
	Decimal   = uint8(0x08)
	Interrupt = uint8(0x04)
	Zero      = uint8(0x02)
	Carry     = uint8(0x01)
)

// Status is the processor status register (P). The break and unused bits
// have no storage in the CPU. They only exist in the value pushed onto the
// stack (see Push()).
type Status uint8

// NewStatus is the preferred method of initialisation for the Status type.
func NewStatus(v uint8) Status {
	var sr Status
	sr.Load(v)
	return sr
}

// Value returns the flags as an 8 bit value. Break and unused bits are
// always clear.
func (sr Status) Value() uint8 {
	return uint8(sr)
}

// Load flags from an 8 bit value (pulled from the stack, for example). The
// break and unused bits are ignored.
func (sr *Status) Load(v uint8) {
	*sr = Status(v &^ (Break | Unused))
}

// Push returns the value of the status register as it should be pushed onto
// the stack. The unused bit is always set. The break bit is set for BRK and
// PHP but not for hardware interrupts.
func (sr Status) Push(brk bool) uint8 {
	v := uint8(sr) | Unused
	if brk {
		v |= Break
	}
	return v
}

func (sr Status) flag(mask uint8) bool {
	return uint8(sr)&mask == mask
}

func (sr *Status) set(mask uint8, v bool) {
	if v {
		*sr |= Status(mask)
	} else {
		*sr &^= Status(mask)
	}
}

// N returns the negative flag.
func (sr Status) N() bool { return sr.flag(Negative) }

// V returns the overflow flag.
func (sr Status) V() bool { return sr.flag(Overflow) }

// D returns the decimal mode flag.
func (sr Status) D() bool { return sr.flag(Decimal) }

// I returns the interrupt disable flag.
func (sr Status) I() bool { return sr.flag(Interrupt) }

// Z returns the zero flag.
func (sr Status) Z() bool { return sr.flag(Zero) }

// C returns the carry flag.
func (sr Status) C() bool { return sr.flag(Carry) }

func (sr *Status) SetN(v bool) { sr.set(Negative, v) }
func (sr *Status) SetV(v bool) { sr.set(Overflow, v) }
func (sr *Status) SetD(v bool) { sr.set(Decimal, v) }
func (sr *Status) SetI(v bool) { sr.set(Interrupt, v) }
func (sr *Status) SetZ(v bool) { sr.set(Zero, v) }
func (sr *Status) SetC(v bool) { sr.set(Carry, v) }

// SetNZ sets the negative and zero flags from an 8 bit result.
func (sr *Status) SetNZ(v uint8) {
	sr.set(Negative, v&0x80 == 0x80)
	sr.set(Zero, v == 0)
}

// String returns the flags in the form "nv-bdizc". An uppercase letter
// indicates the flag is set. Break is never set.
func (sr Status) String() string {
	s := strings.Builder{}
	f := func(mask uint8, r rune) {
		if sr.flag(mask) {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}
	f(Negative, 'n')
	f(Overflow, 'v')
	s.WriteRune('-')
	s.WriteRune('b')
	f(Decimal, 'd')
	f(Interrupt, 'i')
	f(Zero, 'z')
	f(Carry, 'c')
	return s.String()
}
