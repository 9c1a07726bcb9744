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


package terminal_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emu6502/emu6502/terminal"
	"github.com/emu6502/emu6502/test"
)

func TestStatusLine(t *testing.T) {
	tw := &test.CompareWriter{}
	sl := terminal.NewStatusLine(tw)

	sl.Update("cycles 100")
	test.ExpectEquality(t, tw.String(), "\rcycles 100")

	// a shorter line blanks out the remains of the previous line
	tw.Clear()
	sl.Update("cycles 2")
	test.ExpectEquality(t, tw.String(), "\rcycles 2  ")

	tw.Clear()
	sl.End()
	test.ExpectEquality(t, tw.String(), "\n")

	// nothing to end
	tw.Clear()
	sl.End()
	test.ExpectEquality(t, tw.String(), "")
}

func TestStatusLineClipping(t *testing.T) {
	tw := &test.CompareWriter{}
	sl := terminal.NewStatusLine(tw)

	sl.Update(strings.Repeat("x", 100))
	test.ExpectEquality(t, len(tw.String()), 80)
}

func TestNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "file"))
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectEquality(t, terminal.IsTerminal(f), false)

	_, err = terminal.NewKeyboard(f)
	test.ExpectFailure(t, err)
}
