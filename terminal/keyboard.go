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


//go:build linux || darwin

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// Keyboard reads key presses from a terminal.
type Keyboard struct {
	input *os.File

	canAttr    syscall.Termios
	cbreakAttr syscall.Termios

	keys chan byte

	// sig/ack channels to stop the reading goroutine
	quit chan bool
	done chan bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. The input file must be a terminal.
func NewKeyboard(input *os.File) (*Keyboard, error) {
	if input == nil || !IsTerminal(input) {
		return nil, errors.New("terminal: keyboard input is not a terminal")
	}

	kb := &Keyboard{
		input: input,
		keys:  make(chan byte, 16),
		quit:  make(chan bool),
		done:  make(chan bool),
	}

	if err := termios.Tcgetattr(kb.input.Fd(), &kb.canAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	// cbreak mode with reads that time out after a tenth of a second so that
	// the reading goroutine can notice the quit signal
	kb.cbreakAttr = kb.canAttr
	termios.Cfmakecbreak(&kb.cbreakAttr)
	kb.cbreakAttr.Cc[syscall.VMIN] = 0
	kb.cbreakAttr.Cc[syscall.VTIME] = 1

	if err := termios.Tcsetattr(kb.input.Fd(), termios.TCIFLUSH, &kb.cbreakAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	go kb.read()

	return kb, nil
}

func (kb *Keyboard) read() {
	defer func() {
		kb.done <- true
	}()

	b := make([]byte, 1)
	for {
		select {
		case <-kb.quit:
			return
		default:
		}

		n, err := kb.input.Read(b)
		if n == 1 {
			select {
			case kb.keys <- b[0]:
			default:
				// key dropped if nobody is listening
			}
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return
		}
	}
}

// Keys returns the channel on which key presses are delivered.
func (kb *Keyboard) Keys() <-chan byte {
	return kb.keys
}

// Close stops reading from the terminal and restores the terminal mode.
func (kb *Keyboard) Close() error {
	select {
	case kb.quit <- true:
		<-kb.done
	case <-kb.done:
	}
	if err := termios.Tcsetattr(kb.input.Fd(), termios.TCIFLUSH, &kb.canAttr); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
