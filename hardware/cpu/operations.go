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

package cpu

import "github.com/emu6502/emu6502/hardware/cpu/registers"

func lda(mc *CPU, v uint8) {
	mc.A = v
	mc.P.SetNZ(v)
}

func ldx(mc *CPU, v uint8) {
	mc.X = v
	mc.P.SetNZ(v)
}

func ldy(mc *CPU, v uint8) {
	mc.Y = v
	mc.P.SetNZ(v)
}

func sta(mc *CPU) uint8 { return mc.A }
func stx(mc *CPU) uint8 { return mc.X }
func sty(mc *CPU) uint8 { return mc.Y }
func stz(_ *CPU) uint8  { return 0 }

func ora(mc *CPU, v uint8) {
	mc.A |= v
	mc.P.SetNZ(mc.A)
}

func and(mc *CPU, v uint8) {
	mc.A &= v
	mc.P.SetNZ(mc.A)
}

func eor(mc *CPU, v uint8) {
	mc.A ^= v
	mc.P.SetNZ(mc.A)
}

// the 65C02 sets the N and Z flags from the decimal result
func adc(mc *CPU, v uint8) {
	var r uint8
	var c, o bool
	if mc.P.D() {
		r, c, o = registers.AddDecimal(mc.A, v, mc.P.C())
	} else {
		r, c, o = registers.Add(mc.A, v, mc.P.C())
	}
	mc.A = r
	mc.P.SetC(c)
	mc.P.SetV(o)
	mc.P.SetNZ(r)
}

func sbc(mc *CPU, v uint8) {
	r, c, o := registers.Subtract(mc.A, v, mc.P.C())
	if mc.P.D() {
		r, c = registers.SubtractDecimal(mc.A, v, mc.P.C())
	}
	mc.A = r
	mc.P.SetC(c)
	mc.P.SetV(o)
	mc.P.SetNZ(r)
}

func compare(reg func(mc *CPU) uint8) readOp {
	return func(mc *CPU, v uint8) {
		r, c, o := registers.Compare(reg(mc), v)
		mc.P.SetC(c)
		mc.P.SetV(o)
		mc.P.SetNZ(r)
	}
}

var (
	cmp = compare(sta)
	cpx = compare(stx)
	cpy = compare(sty)
)

func bit(mc *CPU, v uint8) {
	mc.P.SetN(v&registers.Negative == registers.Negative)
	mc.P.SetV(v&registers.Overflow == registers.Overflow)
	mc.P.SetZ(mc.A&v == 0)
}

// the immediate mode of BIT only affects the zero flag
func bitImmediate(mc *CPU, v uint8) {
	mc.P.SetZ(mc.A&v == 0)
}

func asl(mc *CPU, v uint8) uint8 {
	mc.P.SetC(v&0x80 == 0x80)
	v <<= 1
	mc.P.SetNZ(v)
	return v
}

func lsr(mc *CPU, v uint8) uint8 {
	mc.P.SetC(v&0x01 == 0x01)
	v >>= 1
	mc.P.SetNZ(v)
	return v
}

func rol(mc *CPU, v uint8) uint8 {
	c := mc.P.C()
	mc.P.SetC(v&0x80 == 0x80)
	v <<= 1
	if c {
		v |= 0x01
	}
	mc.P.SetNZ(v)
	return v
}

func ror(mc *CPU, v uint8) uint8 {
	c := mc.P.C()
	mc.P.SetC(v&0x01 == 0x01)
	v >>= 1
	if c {
		v |= 0x80
	}
	mc.P.SetNZ(v)
	return v
}

func inc(mc *CPU, v uint8) uint8 {
	v++
	mc.P.SetNZ(v)
	return v
}

func dec(mc *CPU, v uint8) uint8 {
	v--
	mc.P.SetNZ(v)
	return v
}

// test and set bits. the zero flag is set from the accumulator and the
// original value
func tsb(mc *CPU, v uint8) uint8 {
	mc.P.SetZ(mc.A&v == 0)
	return v | mc.A
}

// test and reset bits
func trb(mc *CPU, v uint8) uint8 {
	mc.P.SetZ(mc.A&v == 0)
	return v &^ mc.A
}

func rmb(n uint) modifyOp {
	mask := uint8(1) << n
	return func(_ *CPU, v uint8) uint8 {
		return v &^ mask
	}
}

func smb(n uint) modifyOp {
	mask := uint8(1) << n
	return func(_ *CPU, v uint8) uint8 {
		return v | mask
	}
}

func tax(mc *CPU) { ldx(mc, mc.A) }
func tay(mc *CPU) { ldy(mc, mc.A) }
func txa(mc *CPU) { lda(mc, mc.X) }
func tya(mc *CPU) { lda(mc, mc.Y) }
func tsx(mc *CPU) { ldx(mc, mc.S) }

// TXS is the only transfer that does not affect the flags
func txs(mc *CPU) { mc.S = mc.X }

func inx(mc *CPU) { mc.X = inc(mc, mc.X) }
func iny(mc *CPU) { mc.Y = inc(mc, mc.Y) }
func dex(mc *CPU) { mc.X = dec(mc, mc.X) }
func dey(mc *CPU) { mc.Y = dec(mc, mc.Y) }

func flag(set func(sr *registers.Status, v bool), v bool) func(mc *CPU) {
	return func(mc *CPU) {
		set(&mc.P, v)
	}
}

func nop(_ *CPU) {}

func php(mc *CPU) uint8 { return mc.P.Push(true) }
func plp(mc *CPU, v uint8) { mc.P.Load(v) }
func pla(mc *CPU, v uint8) { lda(mc, v) }
func plx(mc *CPU, v uint8) { ldx(mc, v) }
func ply(mc *CPU, v uint8) { ldy(mc, v) }
