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


// Package random is the source of random values for the power-on state of
// the machine. When the RandomState preference is set the CPU registers and
// the contents of RAM are filled from a Random instance after every reset.
//
// Intn() returns the next value from a generator that is seeded on first use
// from the cycle count of the machine. Reseed() restarts the generator with a
// chosen seed so that a power-on state can be reproduced.
//
// Rewindable() returns a value that depends only on the cycle count and so is
// the same every time it is called on the same cycle.
//
// Setting ZeroSeed removes the time of day from the seed. Tests use it to get
// the same sequence on every run.
package random
