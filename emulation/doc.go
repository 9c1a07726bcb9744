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

// Package emulation paces the machine in real time.
//
// The Scheduler calls the Cycle() function of every attached Device once per
// machine cycle. A single cycle can be run synchronously with Cycle(). A
// continuous run happens in a background goroutine, started with one of the
// Continue functions and ended with Stop() or by the optional stop
// condition.
//
// Only one run can be active at any one time. Attempting to start a second
// run, continuous or otherwise, returns ContractViolation.
//
// Inspecting or changing machine state from another goroutine while a run is
// active requires the state access permit:
//
//	sch.PauseState()
//	fmt.Println(mc.CPU)
//	sch.ResumeState()
//
// The stepping goroutine never executes a cycle while the permit is held
// elsewhere. Cycles that could not be executed on time are delayed, never
// dropped.
package emulation
