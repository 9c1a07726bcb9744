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

// Package bus implements the address/data/control bus shared by the CPU and
// every memory mapped device.
//
// The Controller is driven by the CPU. Every bus cycle the CPU prepares the
// signals and the controller notifies each attached Device, in the order the
// devices were attached. During a read cycle a device that recognises the
// address drives the data lines with Signals.Drive(). During a write cycle
// devices consume the data with Signals.Data().
//
// A read cycle that no device answers is an undriven (or HiZ) read and
// results in the value zero. More than one device driving the data lines in
// the same cycle is contention and the last device to drive wins. In strict
// mode both conditions are recorded as a BusFault, which is returned by the
// next call to Controller.Err().
package bus
