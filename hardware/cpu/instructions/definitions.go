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

package instructions

// Definitions of every opcode, indexed by opcode. Reserved opcodes have an
// empty Mnemonic. The cycle count is the documented count without any page
// crossing or branch penalty.
var Definitions = [256]Definition{
	0x00: {OpCode: 0x00, Mnemonic: "BRK", Bytes: 2, Cycles: 7, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	0x01: {OpCode: 0x01, Mnemonic: "ORA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0x04: {OpCode: 0x04, Mnemonic: "TSB", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x05: {OpCode: 0x05, Mnemonic: "ORA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x06: {OpCode: 0x06, Mnemonic: "ASL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x07: {OpCode: 0x07, Mnemonic: "RMB0", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x08: {OpCode: 0x08, Mnemonic: "PHP", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	0x09: {OpCode: 0x09, Mnemonic: "ORA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0x0a: {OpCode: 0x0a, Mnemonic: "ASL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x0c: {OpCode: 0x0c, Mnemonic: "TSB", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x0d: {OpCode: 0x0d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x0e: {OpCode: 0x0e, Mnemonic: "ASL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x0f: {OpCode: 0x0f, Mnemonic: "BBR0", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0x10: {OpCode: 0x10, Mnemonic: "BPL", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x11: {OpCode: 0x11, Mnemonic: "ORA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x12: {OpCode: 0x12, Mnemonic: "ORA", Bytes: 2, Cycles: 5, AddressingMode: ZeroPageIndirect, PageSensitive: false, Effect: Read},
	0x14: {OpCode: 0x14, Mnemonic: "TRB", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x15: {OpCode: 0x15, Mnemonic: "ORA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0x16: {OpCode: 0x16, Mnemonic: "ASL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0x17: {OpCode: 0x17, Mnemonic: "RMB1", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x18: {OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x19: {OpCode: 0x19, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x1a: {OpCode: 0x1a, Mnemonic: "INC", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x1c: {OpCode: 0x1c, Mnemonic: "TRB", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x1d: {OpCode: 0x1d, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x1e: {OpCode: 0x1e, Mnemonic: "ASL", Bytes: 3, Cycles: 6, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: RMW},
	0x1f: {OpCode: 0x1f, Mnemonic: "BBR1", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0x20: {OpCode: 0x20, Mnemonic: "JSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine},
	0x21: {OpCode: 0x21, Mnemonic: "AND", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0x24: {OpCode: 0x24, Mnemonic: "BIT", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x25: {OpCode: 0x25, Mnemonic: "AND", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x26: {OpCode: 0x26, Mnemonic: "ROL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x27: {OpCode: 0x27, Mnemonic: "RMB2", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x28: {OpCode: 0x28, Mnemonic: "PLP", Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x29: {OpCode: 0x29, Mnemonic: "AND", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0x2a: {OpCode: 0x2a, Mnemonic: "ROL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x2c: {OpCode: 0x2c, Mnemonic: "BIT", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x2d: {OpCode: 0x2d, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x2e: {OpCode: 0x2e, Mnemonic: "ROL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x2f: {OpCode: 0x2f, Mnemonic: "BBR2", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0x30: {OpCode: 0x30, Mnemonic: "BMI", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x31: {OpCode: 0x31, Mnemonic: "AND", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x32: {OpCode: 0x32, Mnemonic: "AND", Bytes: 2, Cycles: 5, AddressingMode: ZeroPageIndirect, PageSensitive: false, Effect: Read},
	0x34: {OpCode: 0x34, Mnemonic: "BIT", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0x35: {OpCode: 0x35, Mnemonic: "AND", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0x36: {OpCode: 0x36, Mnemonic: "ROL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0x37: {OpCode: 0x37, Mnemonic: "RMB3", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x38: {OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x39: {OpCode: 0x39, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x3a: {OpCode: 0x3a, Mnemonic: "DEC", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x3c: {OpCode: 0x3c, Mnemonic: "BIT", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x3d: {OpCode: 0x3d, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x3e: {OpCode: 0x3e, Mnemonic: "ROL", Bytes: 3, Cycles: 6, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: RMW},
	0x3f: {OpCode: 0x3f, Mnemonic: "BBR3", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0x40: {OpCode: 0x40, Mnemonic: "RTI", Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine},
	0x41: {OpCode: 0x41, Mnemonic: "EOR", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0x45: {OpCode: 0x45, Mnemonic: "EOR", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x46: {OpCode: 0x46, Mnemonic: "LSR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x47: {OpCode: 0x47, Mnemonic: "RMB4", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x48: {OpCode: 0x48, Mnemonic: "PHA", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	0x49: {OpCode: 0x49, Mnemonic: "EOR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0x4a: {OpCode: 0x4a, Mnemonic: "LSR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x4c: {OpCode: 0x4c, Mnemonic: "JMP", Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow},
	0x4d: {OpCode: 0x4d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x4e: {OpCode: 0x4e, Mnemonic: "LSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x4f: {OpCode: 0x4f, Mnemonic: "BBR4", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0x50: {OpCode: 0x50, Mnemonic: "BVC", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x51: {OpCode: 0x51, Mnemonic: "EOR", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x52: {OpCode: 0x52, Mnemonic: "EOR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPageIndirect, PageSensitive: false, Effect: Read},
	0x55: {OpCode: 0x55, Mnemonic: "EOR", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0x56: {OpCode: 0x56, Mnemonic: "LSR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0x57: {OpCode: 0x57, Mnemonic: "RMB5", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x58: {OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x59: {OpCode: 0x59, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x5a: {OpCode: 0x5a, Mnemonic: "PHY", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	0x5d: {OpCode: 0x5d, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x5e: {OpCode: 0x5e, Mnemonic: "LSR", Bytes: 3, Cycles: 6, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: RMW},
	0x5f: {OpCode: 0x5f, Mnemonic: "BBR5", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0x60: {OpCode: 0x60, Mnemonic: "RTS", Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine},
	0x61: {OpCode: 0x61, Mnemonic: "ADC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0x64: {OpCode: 0x64, Mnemonic: "STZ", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	0x65: {OpCode: 0x65, Mnemonic: "ADC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x66: {OpCode: 0x66, Mnemonic: "ROR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x67: {OpCode: 0x67, Mnemonic: "RMB6", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x68: {OpCode: 0x68, Mnemonic: "PLA", Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x69: {OpCode: 0x69, Mnemonic: "ADC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0x6a: {OpCode: 0x6a, Mnemonic: "ROR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x6c: {OpCode: 0x6c, Mnemonic: "JMP", Bytes: 3, Cycles: 6, AddressingMode: Indirect, PageSensitive: false, Effect: Flow},
	0x6d: {OpCode: 0x6d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x6e: {OpCode: 0x6e, Mnemonic: "ROR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x6f: {OpCode: 0x6f, Mnemonic: "BBR6", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0x70: {OpCode: 0x70, Mnemonic: "BVS", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x71: {OpCode: 0x71, Mnemonic: "ADC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x72: {OpCode: 0x72, Mnemonic: "ADC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPageIndirect, PageSensitive: false, Effect: Read},
	0x74: {OpCode: 0x74, Mnemonic: "STZ", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	0x75: {OpCode: 0x75, Mnemonic: "ADC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0x76: {OpCode: 0x76, Mnemonic: "ROR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0x77: {OpCode: 0x77, Mnemonic: "RMB7", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x78: {OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x79: {OpCode: 0x79, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x7a: {OpCode: 0x7a, Mnemonic: "PLY", Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x7c: {OpCode: 0x7c, Mnemonic: "JMP", Bytes: 3, Cycles: 6, AddressingMode: AbsoluteIndexedIndirect, PageSensitive: false, Effect: Flow},
	0x7d: {OpCode: 0x7d, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x7e: {OpCode: 0x7e, Mnemonic: "ROR", Bytes: 3, Cycles: 6, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: RMW},
	0x7f: {OpCode: 0x7f, Mnemonic: "BBR7", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0x80: {OpCode: 0x80, Mnemonic: "BRA", Bytes: 2, Cycles: 3, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x81: {OpCode: 0x81, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write},
	0x84: {OpCode: 0x84, Mnemonic: "STY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	0x85: {OpCode: 0x85, Mnemonic: "STA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	0x86: {OpCode: 0x86, Mnemonic: "STX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	0x87: {OpCode: 0x87, Mnemonic: "SMB0", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x88: {OpCode: 0x88, Mnemonic: "DEY", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x89: {OpCode: 0x89, Mnemonic: "BIT", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0x8a: {OpCode: 0x8a, Mnemonic: "TXA", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x8c: {OpCode: 0x8c, Mnemonic: "STY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	0x8d: {OpCode: 0x8d, Mnemonic: "STA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	0x8e: {OpCode: 0x8e, Mnemonic: "STX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	0x8f: {OpCode: 0x8f, Mnemonic: "BBS0", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0x90: {OpCode: 0x90, Mnemonic: "BCC", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0x91: {OpCode: 0x91, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write},
	0x92: {OpCode: 0x92, Mnemonic: "STA", Bytes: 2, Cycles: 5, AddressingMode: ZeroPageIndirect, PageSensitive: false, Effect: Write},
	0x94: {OpCode: 0x94, Mnemonic: "STY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	0x95: {OpCode: 0x95, Mnemonic: "STA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	0x96: {OpCode: 0x96, Mnemonic: "STX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write},
	0x97: {OpCode: 0x97, Mnemonic: "SMB1", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x98: {OpCode: 0x98, Mnemonic: "TYA", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x99: {OpCode: 0x99, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write},
	0x9a: {OpCode: 0x9a, Mnemonic: "TXS", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x9c: {OpCode: 0x9c, Mnemonic: "STZ", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	0x9d: {OpCode: 0x9d, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write},
	0x9e: {OpCode: 0x9e, Mnemonic: "STZ", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write},
	0x9f: {OpCode: 0x9f, Mnemonic: "BBS1", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0xa0: {OpCode: 0xa0, Mnemonic: "LDY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xa1: {OpCode: 0xa1, Mnemonic: "LDA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0xa2: {OpCode: 0xa2, Mnemonic: "LDX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xa4: {OpCode: 0xa4, Mnemonic: "LDY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xa5: {OpCode: 0xa5, Mnemonic: "LDA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xa6: {OpCode: 0xa6, Mnemonic: "LDX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xa7: {OpCode: 0xa7, Mnemonic: "SMB2", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xa8: {OpCode: 0xa8, Mnemonic: "TAY", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xa9: {OpCode: 0xa9, Mnemonic: "LDA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xaa: {OpCode: 0xaa, Mnemonic: "TAX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xac: {OpCode: 0xac, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xad: {OpCode: 0xad, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xae: {OpCode: 0xae, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xaf: {OpCode: 0xaf, Mnemonic: "BBS2", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0xb0: {OpCode: 0xb0, Mnemonic: "BCS", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0xb1: {OpCode: 0xb1, Mnemonic: "LDA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xb2: {OpCode: 0xb2, Mnemonic: "LDA", Bytes: 2, Cycles: 5, AddressingMode: ZeroPageIndirect, PageSensitive: false, Effect: Read},
	0xb4: {OpCode: 0xb4, Mnemonic: "LDY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0xb5: {OpCode: 0xb5, Mnemonic: "LDA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0xb6: {OpCode: 0xb6, Mnemonic: "LDX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read},
	0xb7: {OpCode: 0xb7, Mnemonic: "SMB3", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xb8: {OpCode: 0xb8, Mnemonic: "CLV", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xb9: {OpCode: 0xb9, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xba: {OpCode: 0xba, Mnemonic: "TSX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xbc: {OpCode: 0xbc, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xbd: {OpCode: 0xbd, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xbe: {OpCode: 0xbe, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xbf: {OpCode: 0xbf, Mnemonic: "BBS3", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0xc0: {OpCode: 0xc0, Mnemonic: "CPY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xc1: {OpCode: 0xc1, Mnemonic: "CMP", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0xc4: {OpCode: 0xc4, Mnemonic: "CPY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xc5: {OpCode: 0xc5, Mnemonic: "CMP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xc6: {OpCode: 0xc6, Mnemonic: "DEC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xc7: {OpCode: 0xc7, Mnemonic: "SMB4", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xc8: {OpCode: 0xc8, Mnemonic: "INY", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xc9: {OpCode: 0xc9, Mnemonic: "CMP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xca: {OpCode: 0xca, Mnemonic: "DEX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xcb: {OpCode: 0xcb, Mnemonic: "WAI", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	0xcc: {OpCode: 0xcc, Mnemonic: "CPY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xcd: {OpCode: 0xcd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xce: {OpCode: 0xce, Mnemonic: "DEC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0xcf: {OpCode: 0xcf, Mnemonic: "BBS4", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0xd0: {OpCode: 0xd0, Mnemonic: "BNE", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0xd1: {OpCode: 0xd1, Mnemonic: "CMP", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xd2: {OpCode: 0xd2, Mnemonic: "CMP", Bytes: 2, Cycles: 5, AddressingMode: ZeroPageIndirect, PageSensitive: false, Effect: Read},
	0xd5: {OpCode: 0xd5, Mnemonic: "CMP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0xd6: {OpCode: 0xd6, Mnemonic: "DEC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0xd7: {OpCode: 0xd7, Mnemonic: "SMB5", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xd8: {OpCode: 0xd8, Mnemonic: "CLD", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xd9: {OpCode: 0xd9, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xda: {OpCode: 0xda, Mnemonic: "PHX", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	0xdb: {OpCode: 0xdb, Mnemonic: "STP", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	0xdd: {OpCode: 0xdd, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xde: {OpCode: 0xde, Mnemonic: "DEC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	0xdf: {OpCode: 0xdf, Mnemonic: "BBS5", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0xe0: {OpCode: 0xe0, Mnemonic: "CPX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xe1: {OpCode: 0xe1, Mnemonic: "SBC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0xe4: {OpCode: 0xe4, Mnemonic: "CPX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xe5: {OpCode: 0xe5, Mnemonic: "SBC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xe6: {OpCode: 0xe6, Mnemonic: "INC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xe7: {OpCode: 0xe7, Mnemonic: "SMB6", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xe8: {OpCode: 0xe8, Mnemonic: "INX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xe9: {OpCode: 0xe9, Mnemonic: "SBC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xea: {OpCode: 0xea, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xec: {OpCode: 0xec, Mnemonic: "CPX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xed: {OpCode: 0xed, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xee: {OpCode: 0xee, Mnemonic: "INC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0xef: {OpCode: 0xef, Mnemonic: "BBS6", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
	0xf0: {OpCode: 0xf0, Mnemonic: "BEQ", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow},
	0xf1: {OpCode: 0xf1, Mnemonic: "SBC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xf2: {OpCode: 0xf2, Mnemonic: "SBC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPageIndirect, PageSensitive: false, Effect: Read},
	0xf5: {OpCode: 0xf5, Mnemonic: "SBC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0xf6: {OpCode: 0xf6, Mnemonic: "INC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0xf7: {OpCode: 0xf7, Mnemonic: "SMB7", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xf8: {OpCode: 0xf8, Mnemonic: "SED", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xf9: {OpCode: 0xf9, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xfa: {OpCode: 0xfa, Mnemonic: "PLX", Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xfd: {OpCode: 0xfd, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xfe: {OpCode: 0xfe, Mnemonic: "INC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	0xff: {OpCode: 0xff, Mnemonic: "BBS7", Bytes: 3, Cycles: 5, AddressingMode: ZeroPageRelative, PageSensitive: true, Effect: Flow},
}

func init() {
	// reserved opcodes still carry their opcode value
	for i := range Definitions {
		Definitions[i].OpCode = uint8(i)
	}
}
