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


package prefs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// overrides is a group of preference values given on the command line
type overrides map[string]string

// parseOverrides parses a string of the form "key::value; key::value"
func parseOverrides(s string) overrides {
	o := make(overrides)
	for entry := range strings.SplitSeq(s, ";") {
		key, value, ok := strings.Cut(entry, "::")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		o[key] = strings.TrimSpace(value)
	}
	return o
}

// String returns the group in the same format accepted by parseOverrides().
// Keys are sorted.
func (o overrides) String() string {
	s := make([]string, 0, len(o))
	for _, key := range slices.Sorted(maps.Keys(o)) {
		s = append(s, fmt.Sprintf("%s::%s", key, o[key]))
	}
	return strings.Join(s, "; ")
}

// only the group on top of the stack is consulted
var commandLine struct {
	crit  sync.Mutex
	stack []overrides
}

// SizeCommandLineStack returns the number of groups on the command line
// stack.
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a string of preference values and makes it the
// current group. The format of the string is:
//
//	key::value; key::value
//
// Malformed entries are ignored.
func PushCommandLineStack(s string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, parseOverrides(s))
}

// PopCommandLineStack removes the current group. Returns the values in the
// group that were never used, in the format accepted by
// PushCommandLineStack().
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}
	top := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]

	return top.String()
}

// GetCommandLinePref returns the value for the key in the current group. A
// value can only be used once.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}
	top := commandLine.stack[n-1]

	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)
	return true, v
}
