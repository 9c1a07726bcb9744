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


package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/emu6502/emu6502/emulation"
	"github.com/emu6502/emu6502/hardware"
	"github.com/emu6502/emu6502/logger"
	lua "github.com/yuin/gopher-lua"
)

// the most cycles an instruction can take, with some room for interrupt
// sequences. step() fails if no boundary is reached in this many cycles
const maxStepCycles = 16

// Script is a Lua interpreter bound to a machine.
type Script struct {
	sch    *emulation.Scheduler
	m      *hardware.Machine
	output io.Writer
	state  *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the script is no longer
// required.
func NewScript(sch *emulation.Scheduler, m *hardware.Machine, output io.Writer) *Script {
	scr := &Script{
		sch:    sch,
		m:      m,
		output: output,
		state:  lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"cycle":   scr.cycle,
		"step":    scr.step,
		"peek":    scr.peek,
		"poke":    scr.poke,
		"reg":     scr.reg,
		"irq":     scr.irq,
		"nmi":     scr.nmi,
		"reset":   scr.reset,
		"cycles":  scr.cycles,
		"send":    scr.send,
		"receive": scr.receive,
		"print":   scr.print,
	} {
		scr.state.SetGlobal(name, scr.state.NewFunction(fn))
	}

	return scr
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.state.Close()
}

// Run executes Lua source. The name is used in error messages.
func (scr *Script) Run(name string, src string) error {
	fn, err := scr.state.Load(strings.NewReader(src), name)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	scr.state.Push(fn)
	if err := scr.state.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	logger.Logf(logger.Allow, "script", "%s finished after %d cycles", name, scr.sch.CycleCount())
	return nil
}

func (scr *Script) hz() int {
	return scr.m.Prefs.Hz.Get().(int)
}

func (scr *Script) checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range ($%x)", v))
	}
	return uint16(v)
}

func (scr *Script) cycle(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "negative cycle count")
	}
	for range n {
		if err := scr.sch.Cycle(scr.hz()); err != nil {
			L.RaiseError("%v", err)
		}
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	var n int
	for {
		if err := scr.sch.Cycle(scr.hz()); err != nil {
			L.RaiseError("%v", err)
		}
		n++
		if scr.m.CPU.Boundary() {
			break
		}
		if n >= maxStepCycles {
			L.RaiseError("no instruction boundary after %d cycles", n)
		}
	}
	L.Push(lua.LNumber(n))
	return 1
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.m.Peek(scr.checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	addr := scr.checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range ($%x)", v))
	}
	if err := scr.m.Poke(addr, uint8(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	mc := scr.m.CPU
	var v int
	switch strings.ToLower(L.CheckString(1)) {
	case "a":
		v = int(mc.A)
	case "x":
		v = int(mc.X)
	case "y":
		v = int(mc.Y)
	case "s":
		v = int(mc.S)
	case "p":
		v = int(mc.P.Value())
	case "pc":
		v = int(mc.PC)
	default:
		L.ArgError(1, "unknown register")
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) irq(L *lua.LState) int {
	scr.m.Buttons.TriggerIRQ()
	return 0
}

func (scr *Script) nmi(L *lua.LState) int {
	scr.m.Buttons.TriggerNMI()
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.m.Buttons.TriggerRST()
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.sch.CycleCount()))
	return 1
}

func (scr *Script) send(L *lua.LState) int {
	scr.m.UART.Send([]uint8(L.CheckString(1))...)
	return 0
}

func (scr *Script) receive(L *lua.LState) int {
	L.Push(lua.LString(scr.m.UART.Receive()))
	return 1
}

func (scr *Script) print(L *lua.LState) int {
	top := L.GetTop()
	s := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
