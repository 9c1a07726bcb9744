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


package logger

import "sync/atomic"

// Permission decides whether a request to the logger results in a new entry.
type Permission interface {
	AllowLogging() bool
}

type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Allow is the Permission for entries that should always be made.
var Allow Permission = always{}

// Once is a Permission that allows logging the first time it is asked and
// never again until it is rearmed. The zero value is ready for use.
//
// Useful for conditions that can occur on every cycle.
type Once struct {
	used atomic.Bool
}

// AllowLogging implements the Permission interface.
func (o *Once) AllowLogging() bool {
	return !o.used.Swap(true)
}

// Rearm allows the next log request.
func (o *Once) Rearm() {
	o.used.Store(false)
}
