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

package hardware

import (
	"fmt"

	"github.com/emu6502/emu6502/hardware/bus"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/hardware/peripherals/buttons"
	"github.com/emu6502/emu6502/hardware/peripherals/timer"
	"github.com/emu6502/emu6502/hardware/peripherals/uart"
	"github.com/emu6502/emu6502/hardware/preferences"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/prefs"
	"github.com/emu6502/emu6502/random"
)

// Location of devices in the address space.
const (
	RAMBase   = 0x0000
	RAMSize   = 0x8000
	UARTBase  = 0xb000
	TimerBase = 0xb200
	ROMBase   = 0xc000
	ROMSize   = 0x4000
)

// Machine is the root of the emulation.
type Machine struct {
	Prefs *preferences.Preferences

	Bus *bus.Controller
	CPU *cpu.CPU

	RAM *memory.RAM
	ROM *memory.ROM

	UART    *uart.UART
	Timer   *timer.Timer
	Buttons *buttons.Buttons

	// source of random values for the power-on state
	Random *random.Random

	// number of calls to Cycle() since creation
	cycles uint64
}

// NewMachine creates a new Machine and everything associated with the
// hardware. If p is nil then a new set of preferences is created.
func NewMachine(p *preferences.Preferences) (*Machine, error) {
	var err error

	if p == nil {
		p, err = preferences.NewPreferences()
		if err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}

	m := &Machine{
		Prefs: p,
		Bus:   bus.NewController(),
	}
	m.Random = random.NewRandom(m)

	m.RAM, err = memory.NewRAM(RAMBase, RAMSize)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}
	m.ROM, err = memory.NewROM(ROMBase, ROMSize)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	m.CPU = cpu.NewCPU(m.Bus)
	m.UART = uart.NewUART(UARTBase)
	m.Timer = timer.NewTimer(TimerBase, m.CPU.IRQ)
	m.Buttons = buttons.NewButtons(m.CPU.IRQ, m.CPU.NMI, m.CPU.RST)

	m.Bus.Attach(m.RAM)
	m.Bus.Attach(m.UART)
	m.Bus.Attach(m.Timer)
	m.Bus.Attach(m.ROM)
	m.Bus.Attach(m.Buttons)

	m.Bus.SetStrict(p.StrictBus.Get().(bool))
	p.StrictBus.SetHookPost(func(v prefs.Value) error {
		m.Bus.SetStrict(v.(bool))
		logger.Logf(logger.Allow, "machine", "strict bus: %v", v)
		return nil
	})

	m.Reset()

	return m, nil
}

// Reset puts the machine into its power-on state. The CPU will perform the
// reset sequence over the next seven cycles.
//
// If the RandomState preference is set the registers and RAM are given
// random values. The random source is reseeded with the RandSeed preference
// before use.
func (m *Machine) Reset() {
	var rnd *random.Random
	if m.Prefs.RandomState.Get().(bool) {
		m.Random.Reseed(int64(m.Prefs.RandSeed.Get().(int)))
		rnd = m.Random
	}

	m.Bus.Reset()
	m.CPU.Reset(rnd)
	m.RAM.Reset(rnd)
	m.UART.Reset()
	m.Timer.Reset()
}

// LoadROM copies a binary image to the start of ROM.
func (m *Machine) LoadROM(data []uint8) error {
	if err := m.ROM.Program(data); err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	logger.Logf(logger.Allow, "machine", "loaded %d bytes to $%04x", len(data), ROMBase)
	return nil
}

// Peek returns the value in RAM or ROM at the address without a bus cycle.
func (m *Machine) Peek(address uint16) (uint8, error) {
	switch {
	case m.RAM.InRange(address):
		return m.RAM.Peek(address)
	case m.ROM.InRange(address):
		return m.ROM.Peek(address)
	}
	return 0, fmt.Errorf("machine: %w: $%04x", memory.OutOfBounds, address)
}

// Poke sets the value in RAM or ROM at the address without a bus cycle.
func (m *Machine) Poke(address uint16, value uint8) error {
	switch {
	case m.RAM.InRange(address):
		return m.RAM.Poke(address, value)
	case m.ROM.InRange(address):
		return m.ROM.Poke(address, value)
	}
	return fmt.Errorf("machine: %w: $%04x", memory.OutOfBounds, address)
}

// Cycle advances the machine by one cycle. The timer and buttons are ticked
// after the CPU, whether or not the CPU used the bus.
func (m *Machine) Cycle(hz int) error {
	if err := m.CPU.Cycle(hz); err != nil {
		return err
	}
	m.Timer.Tick()
	m.Buttons.Tick()
	m.cycles++
	return nil
}

// CycleCount implements the random.Clock interface.
func (m *Machine) CycleCount() uint64 {
	return m.cycles
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s timer=%s uart=%s", m.CPU, m.Timer, m.UART)
}
