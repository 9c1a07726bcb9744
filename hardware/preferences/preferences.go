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

// Package preferences holds the preference values of the emulated machine.
package preferences

import (
	"fmt"

	"github.com/emu6502/emu6502/prefs"
)

// DefaultHz is the clock speed of the machine unless otherwise requested.
const DefaultHz = 1000000

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	// speed of the machine in cycles per second
	Hz prefs.Int

	// bus faults stop the emulation rather than being resolved silently
	StrictBus prefs.Bool

	// initialise registers and RAM to an unknown state after reset
	RandomState prefs.Bool

	// seed for the random number generator used for the unknown state. zero
	// means a seed that changes with every run
	RandSeed prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("hz=%s strictbus=%s randstate=%s randseed=%s", &p.Hz, &p.StrictBus, &p.RandomState, &p.RandSeed)
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values in the current command line group take precedence
// over the defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Hz.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("preferences: clock speed must be positive (%d)", v.(int))
		}
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	for key, pref := range map[string]prefs.Pref{
		"hardware.hz":        &p.Hz,
		"hardware.strictbus": &p.StrictBus,
		"hardware.randstate": &p.RandomState,
		"hardware.randseed":  &p.RandSeed,
	} {
		if _, err := prefs.ApplyCommandLine(key, pref); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Hz.Set(DefaultHz); err != nil {
		return err
	}
	if err := p.StrictBus.Set(false); err != nil {
		return err
	}
	if err := p.RandomState.Set(false); err != nil {
		return err
	}
	return p.RandSeed.Set(0)
}
