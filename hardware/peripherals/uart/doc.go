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


// Package uart implements a simple serial port. The port has two registers:
//
//	0 RXTX    reading takes the next received byte (zero if there is none).
//	          writing transmits a byte
//	1 STATUS  bit 0 is set while there are received bytes to read. writes
//	          are ignored
//
// There is no baud rate. Bytes are transferred on the cycle they are read or
// written. The other end of the port is the host program, which uses Send()
// and Receive() from any goroutine.
package uart
