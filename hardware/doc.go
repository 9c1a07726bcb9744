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

// Package hardware is the base package for the 65C02 machine. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// all the sub-systems: the CPU, the bus and the devices attached to it. The
// machine is advanced one cycle at a time with Cycle(). The emulation package
// calls Cycle() in a paced loop.
//
// The memory map of the machine is:
//
//	$0000-$7FFF RAM
//	$B000-$B001 UART
//	$B200-$B203 timer
//	$C000-$FFFF ROM
//
// Everything else is unmapped. Reads of unmapped addresses are a bus fault
// when the StrictBus preference is set.
package hardware
