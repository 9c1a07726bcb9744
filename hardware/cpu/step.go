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

package cpu

import "fmt"

// StepKind is the variety of Step.
type StepKind int

// List of valid StepKind values.
const (
	// an instruction is in progress. the N field of the Step says which
	// step of the instruction is to be executed on the next cycle
	Executing StepKind = iota

	// the next opcode will be fetched on the next cycle
	AwaitFetch

	// the opcode for the next instruction was fetched by the last cycle of
	// the previous instruction
	AwaitPipelinedFetch

	// idle until an interrupt (WAI instruction)
	WaitingForInterrupt

	// idle until reset (STP instruction)
	Stopped
)

// Step is the execution state of the CPU. The zero value is the first step of
// an instruction.
type Step struct {
	Kind StepKind

	// the step number of the instruction. only meaningful if Kind is
	// Executing
	N int
}

var (
	awaitFetch          = Step{Kind: AwaitFetch}
	awaitPipelinedFetch = Step{Kind: AwaitPipelinedFetch}
	waitingForInterrupt = Step{Kind: WaitingForInterrupt}
	stopped             = Step{Kind: Stopped}
)

func (s Step) String() string {
	switch s.Kind {
	case Executing:
		return fmt.Sprintf("step %d", s.N)
	case AwaitFetch:
		return "fetch"
	case AwaitPipelinedFetch:
		return "pipelined"
	case WaitingForInterrupt:
		return "wai"
	case Stopped:
		return "stopped"
	}
	return "unknown step"
}
