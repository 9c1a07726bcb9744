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


//go:build !linux && !darwin

package terminal

import (
	"errors"
	"os"
)

// Keyboard is not available on this platform.
type Keyboard struct{}

// NewKeyboard always returns an error on this platform.
func NewKeyboard(_ *os.File) (*Keyboard, error) {
	return nil, errors.New("terminal: keyboard not supported on this platform")
}

// Keys returns a nil channel.
func (kb *Keyboard) Keys() <-chan byte {
	return nil
}

// Close does nothing on this platform.
func (kb *Keyboard) Close() error {
	return nil
}
