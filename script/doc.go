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


// Package script drives a machine from a Lua program. It is useful for
// scripted testing of ROM images and for automating a session.
//
// The following functions are available to the script:
//
//	cycle([n])        advance the machine by n cycles (default 1)
//	step()            advance to the next instruction boundary. returns the number of cycles
//	peek(addr)        value in RAM or ROM at the address
//	poke(addr, value) change the value in RAM or ROM at the address
//	reg(name)         value of a CPU register: a, x, y, s, p or pc
//	irq(), nmi()      press the IRQ or NMI button
//	reset()           press the RST button
//	cycles()          number of cycles since the machine was created
//	send(s)           send the bytes of the string to the UART
//	receive()         bytes written to the UART since the last call, as a string
//
// The print() function writes to the output given to NewScript() rather than
// to stdout.
//
// Scripts run on the goroutine calling Run() and advance the machine through
// the scheduler's Cycle() function. The scheduler must not be running.
package script
