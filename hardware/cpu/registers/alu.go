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

// Add adds val and the carry to a. Returns the result along with the new
// carry and overflow states.
func Add(a uint8, val uint8, carry bool) (r uint8, rcarry bool, overflow bool) {
	sum := uint16(a) + uint16(val)
	if carry {
		sum++
	}
	r = uint8(sum)

	// overflow detection from Ken Shirriff's blog: "The 6502 overflow flag
	// explained mathematically"
	overflow = ((a ^ r) & (val ^ r) & 0x80) != 0

	return r, sum > 0xff, overflow
}

// Subtract subtracts val from a. The carry flag is the inverse of borrow, as
// it is on the 65C02: with the carry set nothing extra is subtracted.
// Returns the result along with the new carry and overflow states.
func Subtract(a uint8, val uint8, carry bool) (r uint8, rcarry bool, overflow bool) {
	return Add(a, ^val, carry)
}

// Compare subtracts val from reg without borrow. Returns the result, the
// carry flag (set if reg >= val) and the overflow flag.
//
// Overflow is set if reg and val have the same sign and the sign of the
// result is different. Unlike Subtract() the rule is applied to val and not
// to its complement.
func Compare(reg uint8, val uint8) (r uint8, rcarry bool, overflow bool) {
	r = reg - val
	overflow = (reg^val)&0x80 == 0 && (reg^r)&0x80 != 0
	return r, reg >= val, overflow
}

func addDecimal(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds val to a as though both values are binary coded decimal.
// Returns the result, the new carry state and the overflow state.
//
// The overflow flag is computed after the low nibble is adjusted but before
// the high nibble is adjusted.
func AddDecimal(a uint8, val uint8, carry bool) (r uint8, rcarry bool, overflow bool) {
	var ucarry, tcarry bool

	runits := a & 0x0f
	vunits := val & 0x0f
	runits, ucarry = addDecimal(runits, vunits, carry)

	rtens := (a & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tcarry = addDecimal(rtens, vtens, ucarry)

	if ucarry {
		runits -= 10
	}

	// the tens value has not been shifted into the upper nibble yet
	sign := rtens&0x08 == 0x08
	overflow = sign != (a&0x80 == 0x80) && (a&0x80 == val&0x80)

	if tcarry {
		rtens -= 10
	}

	return (rtens << 4) | (runits & 0x0f), tcarry, overflow
}

func subtractDecimal(a, b uint8, borrow bool) (r uint8, rborrow bool) {
	r = a - b
	if borrow {
		r--
	}
	return r, b > a || borrow && b == a
}

// SubtractDecimal subtracts val from a as though both values are binary
// coded decimal. The carry flag is the inverse of borrow. Returns the result
// and the new carry state.
func SubtractDecimal(a uint8, val uint8, carry bool) (r uint8, rcarry bool) {
	var ucarry, tcarry bool

	runits := a & 0x0f
	vunits := val & 0x0f
	runits, ucarry = subtractDecimal(runits, vunits, !carry)

	rtens := (a & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tcarry = subtractDecimal(rtens, vtens, ucarry)

	if ucarry {
		runits += 10
	}
	if tcarry {
		rtens += 10
	}

	return ((rtens << 4) & 0xf0) | (runits & 0x0f), !tcarry
}
