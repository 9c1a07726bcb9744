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


// Package terminal supports interaction with a running machine from the
// controlling terminal.
//
// Keyboard puts the input terminal into cbreak mode and delivers key presses
// on a channel. The mode of the terminal is restored by Close(). Keyboard
// is only available on linux and darwin. On other platforms NewKeyboard()
// returns an error.
//
// StatusLine writes a single line of text that is overwritten by the next
// call. The line is clipped to the width of the output terminal.
package terminal
