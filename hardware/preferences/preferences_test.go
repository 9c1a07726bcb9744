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

package preferences_test

import (
	"testing"

	"github.com/emu6502/emu6502/hardware/preferences"
	"github.com/emu6502/emu6502/prefs"
	"github.com/emu6502/emu6502/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Hz.Get().(int), preferences.DefaultHz)
	test.ExpectEquality(t, p.StrictBus.Get().(bool), false)
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.String(), "hz=1000000 strictbus=false randstate=false randseed=0")

	test.ExpectFailure(t, p.Hz.Set(0))
	test.ExpectEquality(t, p.Hz.Get().(int), preferences.DefaultHz)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.hz::2000; hardware.strictbus::true; hardware.randseed::99")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Hz.Get().(int), 2000)
	test.ExpectEquality(t, p.StrictBus.Get().(bool), true)
	test.ExpectEquality(t, p.RandSeed.Get().(int), 99)

	// command line values are consumed
	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Hz.Get().(int), preferences.DefaultHz)

	test.ExpectSuccess(t, q.SetDefaults())
}

func TestBadCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.hz::-5")
	defer prefs.PopCommandLineStack()

	_, err := preferences.NewPreferences()
	test.ExpectFailure(t, err)
}
