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

// Package instructions defines the instruction set of the 65C02: the
// mnemonic, addressing mode, size and documented cycle count of every
// opcode.
//
// The definitions are descriptive. The CPU does not consult them while
// executing; its timing comes from its own handlers. The definitions are
// used when presenting the CPU state and to check the handlers against the
// documented timings.
package instructions
