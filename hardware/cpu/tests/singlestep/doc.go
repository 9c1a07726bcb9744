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

// Package singlestep runs the 65C02 single-step tests maintained by Thom
// Harte.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included in the repository. Add the
// instructions you want to test from the wdc65c02/v1 directory on Github to
// the wdc65c02/v1 directory in this package. The test is skipped if the
// directory does not exist.
//
// Only the final state of the registers and memory is compared. The dummy
// bus cycles of the emulation do not always match those of the real chip.
package singlestep
