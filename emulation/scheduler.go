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
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/emu6502/emu6502/assert"
	"github.com/emu6502/emu6502/logger"
	"golang.org/x/sync/semaphore"
)

// ContractViolation is returned when a run is started while another run is
// active.
var ContractViolation = errors.New("contract violation")

// Device is called once per cycle by the Scheduler. The hz argument is the
// clock speed of the run.
type Device interface {
	Cycle(hz int) error
}

// DeviceFunc is an adaptor allowing an ordinary function to be used as a
// Device.
type DeviceFunc func(hz int) error

// Cycle implements the Device interface.
func (f DeviceFunc) Cycle(hz int) error {
	return f(hz)
}

// Registration is a device added to a Scheduler. It can remove the device
// even if the device is of a type that cannot be compared.
type Registration struct {
	s *Scheduler
	d Device
}

// Remove the device from the scheduler. Returns false if the device has
// already been removed.
func (r *Registration) Remove() bool {
	r.s.devicesLock.Lock()
	defer r.s.devicesLock.Unlock()
	return r.s.remove(slices.Index(*r.s.devices.Load(), r))
}

// Scheduler steps the attached devices in real time.
type Scheduler struct {
	// permission to execute cycles. held for the duration of a run
	exec *semaphore.Weighted

	// permission to change or inspect state. held by the stepping goroutine
	// for exactly one cycle at a time
	state *semaphore.Weighted

	// copy-on-write so that the stepping goroutine can read the list without
	// locking
	devices     atomic.Pointer[[]*Registration]
	devicesLock sync.Mutex

	cancel   atomic.Bool
	runState atomic.Int32
	cycles   atomic.Uint64

	// goroutine currently executing cycles. zero if there is none
	stepper atomic.Uint64

	onStop atomic.Pointer[func()]

	errLock sync.Mutex
	err     error
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. Devices are called in the order given.
func NewScheduler(devices ...Device) *Scheduler {
	s := &Scheduler{
		exec:  semaphore.NewWeighted(1),
		state: semaphore.NewWeighted(1),
	}
	d := make([]*Registration, 0, len(devices))
	for _, dev := range devices {
		d = append(d, &Registration{s: s, d: dev})
	}
	s.devices.Store(&d)
	return s
}

// AddDevice adds a device to the end of the list of devices called every
// cycle. The change takes effect from the next cycle.
func (s *Scheduler) AddDevice(d Device) *Registration {
	s.devicesLock.Lock()
	defer s.devicesLock.Unlock()

	r := &Registration{s: s, d: d}
	n := slices.Concat(*s.devices.Load(), []*Registration{r})
	s.devices.Store(&n)
	return r
}

// RemoveDevice removes a device previously added with AddDevice() or
// NewScheduler(). Returns false if the device was not found or if the device
// is of a type that cannot be compared, in which case the Registration
// returned by AddDevice() must be used instead.
func (s *Scheduler) RemoveDevice(d Device) bool {
	if d == nil || !reflect.TypeOf(d).Comparable() {
		return false
	}

	s.devicesLock.Lock()
	defer s.devicesLock.Unlock()

	return s.remove(slices.IndexFunc(*s.devices.Load(), func(r *Registration) bool {
		return r.d == d
	}))
}

// remove the registration at index i. devicesLock must be held
func (s *Scheduler) remove(i int) bool {
	if i < 0 {
		return false
	}
	old := *s.devices.Load()
	n := slices.Concat(old[:i], old[i+1:])
	s.devices.Store(&n)
	return true
}

// OnStop sets the function to call when a continuous run ends. The function
// is called on the stepping goroutine after the run has released its
// permissions, so it is safe to start a new run from it.
func (s *Scheduler) OnStop(f func()) {
	if f == nil {
		s.onStop.Store(nil)
		return
	}
	s.onStop.Store(&f)
}

// CycleCount returns the number of cycles executed since creation.
func (s *Scheduler) CycleCount() uint64 {
	return s.cycles.Load()
}

// State returns the current state of the scheduler.
func (s *Scheduler) State() State {
	return State(s.runState.Load())
}

// IsRunning returns true if a continuous run is active.
func (s *Scheduler) IsRunning() bool {
	return s.State() != Paused
}

// Err returns the error that ended the most recent continuous run. Returns
// nil if the run ended normally or is still active.
func (s *Scheduler) Err() error {
	s.errLock.Lock()
	defer s.errLock.Unlock()
	return s.err
}

func (s *Scheduler) setErr(err error) {
	s.errLock.Lock()
	defer s.errLock.Unlock()
	s.err = err
}

// step calls every device once. the cycle is not counted if a device fails
func (s *Scheduler) step(hz int) error {
	for _, r := range *s.devices.Load() {
		if err := r.d.Cycle(hz); err != nil {
			return err
		}
	}
	s.cycles.Add(1)
	return nil
}

func (s *Scheduler) acquireExec() error {
	if !s.exec.TryAcquire(1) {
		return fmt.Errorf("emulation: %w: a run is already active", ContractViolation)
	}
	return nil
}

// Cycle executes exactly one cycle on the calling goroutine.
func (s *Scheduler) Cycle(hz int) error {
	if err := s.acquireExec(); err != nil {
		return err
	}
	defer s.exec.Release(1)

	s.stepper.Store(assert.GetGoRoutineID())
	defer s.stepper.Store(0)

	// cannot fail with a background context
	_ = s.state.Acquire(context.Background(), 1)
	defer s.state.Release(1)

	return s.step(hz)
}

// Continue starts a continuous run that will end only when Stop() is called
// or a device returns an error.
func (s *Scheduler) Continue(hz int) error {
	return s.start(hz, nil)
}

// ContinueFor starts a continuous run that will end after the number of
// cycles given.
func (s *Scheduler) ContinueFor(hz int, cycles uint64) error {
	if cycles == 0 {
		return s.start(hz, func() bool { return true })
	}
	return s.start(hz, func() bool {
		cycles--
		return cycles == 0
	})
}

// ContinueUntil starts a continuous run that will end when the until
// function returns true. The function is called on the stepping goroutine
// after every cycle.
func (s *Scheduler) ContinueUntil(hz int, until func() bool) error {
	return s.start(hz, until)
}

func (s *Scheduler) start(hz int, until func() bool) error {
	if hz <= 0 {
		return fmt.Errorf("emulation: clock speed must be positive (%d)", hz)
	}
	if err := s.acquireExec(); err != nil {
		return err
	}

	s.cancel.Store(false)
	s.setErr(nil)
	s.runState.Store(int32(Running))

	go s.run(hz, until)

	return nil
}

// run is the stepping loop of a continuous run. the loop spins until the
// deadline for the next cycle has passed. a cycle that cannot be executed
// because the state permit is held elsewhere is retried on the next
// iteration and the deadline is not advanced
func (s *Scheduler) run(hz int, until func() bool) {
	s.stepper.Store(assert.GetGoRoutineID())

	perCycle := time.Second / time.Duration(hz)
	logger.Logf(logger.Allow, "emulation", "run started at %dHz (%v per cycle)", hz, perCycle)

	var err error

	start := time.Now()
	deadline := perCycle

	for !s.cancel.Load() {
		if time.Since(start) < deadline {
			runtime.Gosched()
			continue
		}

		if !s.state.TryAcquire(1) {
			runtime.Gosched()
			continue
		}
		err = s.step(hz)
		s.state.Release(1)

		if err != nil {
			break
		}

		deadline += perCycle

		if until != nil && until() {
			break
		}
	}

	s.runState.Store(int32(Ending))
	s.setErr(err)

	if err != nil {
		logger.Logf(logger.Allow, "emulation", "run ended after %d cycles: %v", s.cycles.Load(), err)
	} else {
		logger.Logf(logger.Allow, "emulation", "run ended after %d cycles", s.cycles.Load())
	}

	s.stepper.Store(0)
	s.runState.Store(int32(Paused))
	s.exec.Release(1)

	if f := s.onStop.Load(); f != nil {
		(*f)()
	}
}

// onStepper returns true if the calling goroutine is the one executing
// cycles
func (s *Scheduler) onStepper() bool {
	id := s.stepper.Load()
	return id != 0 && id == assert.GetGoRoutineID()
}

// Stop requests the end of the continuous run. The current cycle always
// completes. If wait is true Stop blocks until the run has ended.
//
// Stop is safe to call from a device. In that case the wait argument is
// ignored.
func (s *Scheduler) Stop(wait bool) {
	s.cancel.Store(true)
	s.runState.CompareAndSwap(int32(Running), int32(Ending))
	if wait {
		s.Wait()
	}
}

// Wait blocks until the active run has ended. It returns immediately if
// there is no active run or if called from a device.
func (s *Scheduler) Wait() {
	if s.onStepper() {
		return
	}
	_ = s.exec.Acquire(context.Background(), 1)
	s.exec.Release(1)
}

// PauseState acquires the state access permit. The stepping goroutine will
// not execute a cycle until ResumeState() is called. Must not be called from
// a device.
func (s *Scheduler) PauseState() {
	_ = s.state.Acquire(context.Background(), 1)
}

// PauseStateContext is the same as PauseState but gives up when the context
// is done.
func (s *Scheduler) PauseStateContext(ctx context.Context) error {
	return s.state.Acquire(ctx, 1)
}

// ResumeState releases the state access permit acquired by PauseState().
func (s *Scheduler) ResumeState() {
	s.state.Release(1)
}
