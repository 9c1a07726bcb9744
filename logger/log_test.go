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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "cpu", "WAI")
	log.Log(logger.Allow, "cpu", "WAI")
	log.Log(logger.Allow, "cpu", "WAI")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: WAI (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

func TestOnce(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var once logger.Once
	log.Log(&once, "bus", "contention")
	log.Log(&once, "bus", "contention")
	log.Log(&once, "bus", "contention at $1000")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "bus: contention\n")

	once.Rearm()
	log.Log(&once, "bus", "contention at $1000")
	w.Reset()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "bus: contention\nbus: contention at $1000\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\ntag: wrapped: test error\n")
}

func TestEchoAndSearch(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}
	log.SetEcho(echo)

	log.Logf(logger.Allow, "emulation", "ticks per cycle: %d", 1000)
	log.Log(logger.Allow, "cpu", "STP")
	test.ExpectEquality(t, echo.String(), "emulation: ticks per cycle: 1000\ncpu: STP\n")

	e, ok := log.Find("emulation")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, e.Detail, "ticks per cycle: 1000")

	_, err := log.Search("cpu", "WAI")
	test.ExpectEquality(t, errors.Is(err, logger.ErrNotFound), true)
	_, err = log.Search("cpu", "ST")
	test.ExpectSuccess(t, err)

	log.SetEcho(nil)
	log.Log(logger.Allow, "cpu", "WAI")
	test.ExpectEquality(t, echo.String(), "emulation: ticks per cycle: 1000\ncpu: STP\n")
}
