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

package emulation

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// DumpState writes a graphviz description of every device to w. The state
// access permit is held for the duration. Must not be called from a device.
func (s *Scheduler) DumpState(w io.Writer) {
	s.PauseState()
	defer s.ResumeState()

	devices := *s.devices.Load()
	roots := make([]interface{}, len(devices))
	for i := range devices {
		roots[i] = devices[i].d
	}
	memviz.Map(w, roots...)
}
