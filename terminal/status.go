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


package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// the width to use if the width of the output cannot be found
const defaultWidth = 80

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// StatusLine is a single line of output that is redrawn in place.
type StatusLine struct {
	output io.Writer
	width  int

	// length of the last line written. used to blank out the remains of a
	// longer line
	last int
}

// NewStatusLine is the preferred method of initialisation for the
// StatusLine type. If output is a terminal the line is clipped to the width
// of the terminal.
func NewStatusLine(output io.Writer) *StatusLine {
	sl := &StatusLine{
		output: output,
		width:  defaultWidth,
	}
	if f, ok := output.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			sl.width = w
		}
	}
	return sl
}

// Update replaces the current line with a new one.
func (sl *StatusLine) Update(s string) {
	// the last column is left free so that the terminal does not wrap
	if len(s) >= sl.width {
		s = s[:sl.width-1]
	}
	pad := max(sl.last-len(s), 0)
	sl.last = len(s)
	fmt.Fprintf(sl.output, "\r%s%s", s, strings.Repeat(" ", pad))
}

// End finishes the status line so that normal output can continue.
func (sl *StatusLine) End() {
	if sl.last > 0 {
		fmt.Fprintln(sl.output)
		sl.last = 0
	}
}
