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

// handlers for every opcode and the interrupt sequences. reserved opcodes
// have no handler
var handlers [numOpcodes]handler

func init() {
	handlers = [numOpcodes]handler{
		0x00: brk,
		0x01: read(indexedIndirect, ora),
		0x04: rmw(zeroPage, tsb, false),
		0x05: read(zeroPage, ora),
		0x06: rmw(zeroPage, asl, false),
		0x07: rmw(zeroPage, rmb(0), false),
		0x08: push(php),
		0x09: immediate(ora),
		0x0a: accumulator(asl),
		0x0c: rmw(absolute, tsb, false),
		0x0d: read(absolute, ora),
		0x0e: rmw(absolute, asl, false),
		0x0f: branchOnBit(0, false),
		0x10: branch(condition(negative, false)),
		0x11: read(indirectIndexed, ora),
		0x12: read(zeroPageIndirect, ora),
		0x14: rmw(zeroPage, trb, false),
		0x15: read(zeroPageX, ora),
		0x16: rmw(zeroPageX, asl, false),
		0x17: rmw(zeroPage, rmb(1), false),
		0x18: implied(flag((*registers.Status).SetC, false)),
		0x19: read(absoluteY, ora),
		0x1a: accumulator(inc),
		0x1c: rmw(absolute, trb, false),
		0x1d: read(absoluteX, ora),
		0x1e: rmw(absoluteX, asl, false),
		0x1f: branchOnBit(1, false),
		0x20: jsr,
		0x21: read(indexedIndirect, and),
		0x24: read(zeroPage, bit),
		0x25: read(zeroPage, and),
		0x26: rmw(zeroPage, rol, false),
		0x27: rmw(zeroPage, rmb(2), false),
		0x28: pull(plp),
		0x29: immediate(and),
		0x2a: accumulator(rol),
		0x2c: read(absolute, bit),
		0x2d: read(absolute, and),
		0x2e: rmw(absolute, rol, false),
		0x2f: branchOnBit(2, false),
		0x30: branch(condition(negative, true)),
		0x31: read(indirectIndexed, and),
		0x32: read(zeroPageIndirect, and),
		0x34: read(zeroPageX, bit),
		0x35: read(zeroPageX, and),
		0x36: rmw(zeroPageX, rol, false),
		0x37: rmw(zeroPage, rmb(3), false),
		0x38: implied(flag((*registers.Status).SetC, true)),
		0x39: read(absoluteY, and),
		0x3a: accumulator(dec),
		0x3c: read(absoluteX, bit),
		0x3d: read(absoluteX, and),
		0x3e: rmw(absoluteX, rol, false),
		0x3f: branchOnBit(3, false),
		0x40: rti,
		0x41: read(indexedIndirect, eor),
		0x45: read(zeroPage, eor),
		0x46: rmw(zeroPage, lsr, false),
		0x47: rmw(zeroPage, rmb(4), false),
		0x48: push(sta),
		0x49: immediate(eor),
		0x4a: accumulator(lsr),
		0x4c: jmpAbsolute,
		0x4d: read(absolute, eor),
		0x4e: rmw(absolute, lsr, false),
		0x4f: branchOnBit(4, false),
		0x50: branch(condition(overflow, false)),
		0x51: read(indirectIndexed, eor),
		0x52: read(zeroPageIndirect, eor),
		0x55: read(zeroPageX, eor),
		0x56: rmw(zeroPageX, lsr, false),
		0x57: rmw(zeroPage, rmb(5), false),
		0x58: implied(flag((*registers.Status).SetI, false)),
		0x59: read(absoluteY, eor),
		0x5a: push(sty),
		0x5d: read(absoluteX, eor),
		0x5e: rmw(absoluteX, lsr, false),
		0x5f: branchOnBit(5, false),
		0x60: rts,
		0x61: read(indexedIndirect, adc),
		0x64: write(zeroPage, stz),
		0x65: read(zeroPage, adc),
		0x66: rmw(zeroPage, ror, false),
		0x67: rmw(zeroPage, rmb(6), false),
		0x68: pull(pla),
		0x69: immediate(adc),
		0x6a: accumulator(ror),
		0x6c: jmpIndirect(false),
		0x6d: read(absolute, adc),
		0x6e: rmw(absolute, ror, false),
		0x6f: branchOnBit(6, false),
		0x70: branch(condition(overflow, true)),
		0x71: read(indirectIndexed, adc),
		0x72: read(zeroPageIndirect, adc),
		0x74: write(zeroPageX, stz),
		0x75: read(zeroPageX, adc),
		0x76: rmw(zeroPageX, ror, false),
		0x77: rmw(zeroPage, rmb(7), false),
		0x78: implied(flag((*registers.Status).SetI, true)),
		0x79: read(absoluteY, adc),
		0x7a: pull(ply),
		0x7c: jmpIndirect(true),
		0x7d: read(absoluteX, adc),
		0x7e: rmw(absoluteX, ror, false),
		0x7f: branchOnBit(7, false),
		0x80: branch(always),
		0x81: write(indexedIndirect, sta),
		0x84: write(zeroPage, sty),
		0x85: write(zeroPage, sta),
		0x86: write(zeroPage, stx),
		0x87: rmw(zeroPage, smb(0), false),
		0x88: implied(dey),
		0x89: immediate(bitImmediate),
		0x8a: implied(txa),
		0x8c: write(absolute, sty),
		0x8d: write(absolute, sta),
		0x8e: write(absolute, stx),
		0x8f: branchOnBit(0, true),
		0x90: branch(condition(carry, false)),
		0x91: write(indirectIndexed, sta),
		0x92: write(zeroPageIndirect, sta),
		0x94: write(zeroPageX, sty),
		0x95: write(zeroPageX, sta),
		0x96: write(zeroPageY, stx),
		0x97: rmw(zeroPage, smb(1), false),
		0x98: implied(tya),
		0x99: write(absoluteY, sta),
		0x9a: implied(txs),
		0x9c: write(absolute, stz),
		0x9d: write(absoluteX, sta),
		0x9e: write(absoluteX, stz),
		0x9f: branchOnBit(1, true),
		0xa0: immediate(ldy),
		0xa1: read(indexedIndirect, lda),
		0xa2: immediate(ldx),
		0xa4: read(zeroPage, ldy),
		0xa5: read(zeroPage, lda),
		0xa6: read(zeroPage, ldx),
		0xa7: rmw(zeroPage, smb(2), false),
		0xa8: implied(tay),
		0xa9: immediate(lda),
		0xaa: implied(tax),
		0xac: read(absolute, ldy),
		0xad: read(absolute, lda),
		0xae: read(absolute, ldx),
		0xaf: branchOnBit(2, true),
		0xb0: branch(condition(carry, true)),
		0xb1: read(indirectIndexed, lda),
		0xb2: read(zeroPageIndirect, lda),
		0xb4: read(zeroPageX, ldy),
		0xb5: read(zeroPageX, lda),
		0xb6: read(zeroPageY, ldx),
		0xb7: rmw(zeroPage, smb(3), false),
		0xb8: implied(flag((*registers.Status).SetV, false)),
		0xb9: read(absoluteY, lda),
		0xba: implied(tsx),
		0xbc: read(absoluteX, ldy),
		0xbd: read(absoluteX, lda),
		0xbe: read(absoluteY, ldx),
		0xbf: branchOnBit(3, true),
		0xc0: immediate(cpy),
		0xc1: read(indexedIndirect, cmp),
		0xc4: read(zeroPage, cpy),
		0xc5: read(zeroPage, cmp),
		0xc6: rmw(zeroPage, dec, false),
		0xc7: rmw(zeroPage, smb(4), false),
		0xc8: implied(iny),
		0xc9: immediate(cmp),
		0xca: implied(dex),
		0xcb: idle(waitingForInterrupt),
		0xcc: read(absolute, cpy),
		0xcd: read(absolute, cmp),
		0xce: rmw(absolute, dec, false),
		0xcf: branchOnBit(4, true),
		0xd0: branch(condition(zero, false)),
		0xd1: read(indirectIndexed, cmp),
		0xd2: read(zeroPageIndirect, cmp),
		0xd5: read(zeroPageX, cmp),
		0xd6: rmw(zeroPageX, dec, false),
		0xd7: rmw(zeroPage, smb(5), false),
		0xd8: implied(flag((*registers.Status).SetD, false)),
		0xd9: read(absoluteY, cmp),
		0xda: push(stx),
		0xdb: idle(stopped),
		0xdd: read(absoluteX, cmp),
		0xde: rmw(absoluteX, dec, true),
		0xdf: branchOnBit(5, true),
		0xe0: immediate(cpx),
		0xe1: read(indexedIndirect, sbc),
		0xe4: read(zeroPage, cpx),
		0xe5: read(zeroPage, sbc),
		0xe6: rmw(zeroPage, inc, false),
		0xe7: rmw(zeroPage, smb(6), false),
		0xe8: implied(inx),
		0xe9: immediate(sbc),
		0xea: implied(nop),
		0xec: read(absolute, cpx),
		0xed: read(absolute, sbc),
		0xee: rmw(absolute, inc, false),
		0xef: branchOnBit(6, true),
		0xf0: branch(condition(zero, true)),
		0xf1: read(indirectIndexed, sbc),
		0xf2: read(zeroPageIndirect, sbc),
		0xf5: read(zeroPageX, sbc),
		0xf6: rmw(zeroPageX, inc, false),
		0xf7: rmw(zeroPage, smb(7), false),
		0xf8: implied(flag((*registers.Status).SetD, true)),
		0xf9: read(absoluteY, sbc),
		0xfa: pull(plx),
		0xfd: read(absoluteX, sbc),
		0xfe: rmw(absoluteX, inc, true),
		0xff: branchOnBit(7, true),

		OpNMI: nmi,
		OpRST: rst,
		OpIRQ: irq,
	}
}
