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

// Package version reports the version of the program from the build
// information embedded by the Go toolchain.
package version

import (
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "emu6502"

// set by the linker for numbered releases:
//
//	go build -ldflags "-X github.com/emu6502/emu6502/version.number=v1.0.0"
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the vcs revision and whether this is
// a numbered release.
//
// The version is "unreleased" for builds from a repository without a
// release number and "local" when there is no vcs information at all, for
// example with "go run". A revision with uncommitted changes is suffixed
// with "+dirty".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

func init() {
	var vcs bool
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision += "+dirty"
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
