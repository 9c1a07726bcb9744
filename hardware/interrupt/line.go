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

package interrupt

// Requester identifies something holding an interrupt line. Any comparable
// value can be used but in practice it will be a pointer to the device
// asserting the line.
type Requester interface{}

// Line is a single interrupt line shared by the CPU and any device that can
// assert it. The line is triggered for as long as at least one requester is
// holding it.
type Line struct {
	edgeTriggered bool

	requesters map[Requester]struct{}

	// the interrupt has been acknowledged since the line last went from
	// not-triggered to triggered. only meaningful for edge triggered lines
	latched bool
}

// NewLine is the preferred method of initialisation for the Line type. Edge
// triggered lines (NMI) will only request an interrupt once per assertion.
// Level triggered lines (IRQ and RST) request an interrupt for as long as
// they are held.
func NewLine(edgeTriggered bool) *Line {
	return &Line{
		edgeTriggered: edgeTriggered,
		requesters:    make(map[Requester]struct{}),
	}
}

// EdgeTriggered returns true if the line was created as edge triggered.
func (ln *Line) EdgeTriggered() bool {
	return ln.edgeTriggered
}

// Trigger adds the requester to the set holding the line. Returns true if
// the requester was not already holding the line.
func (ln *Line) Trigger(id Requester) bool {
	if _, ok := ln.requesters[id]; ok {
		return false
	}
	ln.requesters[id] = struct{}{}
	return true
}

// Clear removes the requester from the set holding the line. Returns true if
// the requester was holding the line.
func (ln *Line) Clear(id Requester) bool {
	_, ok := ln.requesters[id]
	delete(ln.requesters, id)

	if len(ln.requesters) == 0 {
		ln.latched = false
	}

	return ok
}

// IsTriggering returns true if the requester is currently holding the line.
func (ln *Line) IsTriggering(id Requester) bool {
	_, ok := ln.requesters[id]
	return ok
}

// Triggered returns true if anything is holding the line. For an edge
// triggered line this does not mean that an interrupt should occur.
func (ln *Line) Triggered() bool {
	return len(ln.requesters) > 0
}

// ShouldInterrupt is called by the CPU, at most once per cycle, to decide
// whether the interrupt sequence should begin.
//
// An edge triggered line returns true only once per transition from
// not-triggered to triggered.
func (ln *Line) ShouldInterrupt() bool {
	if !ln.Triggered() {
		return false
	}

	if !ln.edgeTriggered {
		return true
	}

	if ln.latched {
		return false
	}

	ln.latched = true
	return true
}

func (ln *Line) String() string {
	if !ln.Triggered() {
		return "-"
	}
	if ln.edgeTriggered && ln.latched {
		return "latched"
	}
	return "triggered"
}
