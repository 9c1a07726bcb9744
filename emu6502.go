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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/emu6502/emu6502/disassembly"
	"github.com/emu6502/emu6502/emulation"
	"github.com/emu6502/emu6502/hardware"
	"github.com/emu6502/emu6502/hardware/cpu/instructions"
	"github.com/emu6502/emu6502/hardware/preferences"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/modalflag"
	"github.com/emu6502/emu6502/prefs"
	"github.com/emu6502/emu6502/script"
	"github.com/emu6502/emu6502/statsview"
	"github.com/emu6502/emu6502/terminal"
	"github.com/emu6502/emu6502/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the value to use with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SCRIPT", "DISASM", "OPCODES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "SCRIPT":
		err = runScript(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "OPCODES":
		err = opcodes(md, output)
	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return 20
	}

	return 0
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	hz := md.AddInt("hz", 0, fmt.Sprintf("clock speed in Hz (default %d)", preferences.DefaultHz))
	cycles := md.AddUint64("cycles", 0, "stop after the number of cycles. zero runs until interrupted")
	strict := md.AddBool("strict", false, "stop on bus faults")
	echo := md.AddBool("log", false, "echo log to output")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")
	dump := md.AddString("memviz", "", "write graphviz dump of the machine to file on exit")
	overrides := md.AddString("prefs", "", "preference overrides (key::value; key::value)")
	keys := md.AddBool("keys", false, "buttons on the keyboard (i: IRQ, n: NMI, r: RST, q: quit)")
	uartInput := md.AddBool("uart", false, "send key presses to the UART")
	status := md.AddBool("status", false, "show machine state while running")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single ROM image is required for %s mode", md)
	}
	if *keys && *uartInput {
		return errors.New("the keys and uart flags cannot be used together")
	}

	if *echo {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return errors.New("statsview not available in this build")
		}
		stop := statsview.Launch(output)
		defer stop()
	}

	m, err := newMachine(output, md.GetArg(0), *overrides, *hz, *strict)
	if err != nil {
		return err
	}

	sch := emulation.NewScheduler(m)

	done := make(chan struct{})
	sch.OnStop(func() {
		close(done)
	})

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var kb *terminal.Keyboard
	if *keys || *uartInput {
		kb, err = terminal.NewKeyboard(os.Stdin)
		if err != nil {
			return err
		}
		defer kb.Close()
	}

	var sl *terminal.StatusLine
	var statusTick <-chan time.Time
	if *status {
		sl = terminal.NewStatusLine(output)
		tck := time.NewTicker(250 * time.Millisecond)
		defer tck.Stop()
		statusTick = tck.C
	}

	// output from the UART is written as it arrives
	uartTick := time.NewTicker(20 * time.Millisecond)
	defer uartTick.Stop()
	drainUART := func() {
		if data := m.UART.Receive(); len(data) > 0 {
			output.Write(data)
		}
	}

	clk := m.Prefs.Hz.Get().(int)
	start := time.Now()

	if *cycles > 0 {
		err = sch.ContinueFor(clk, *cycles)
	} else {
		err = sch.Continue(clk)
	}
	if err != nil {
		return err
	}

	// a nil keyboard or status ticker channel is never selected
	var keyChan <-chan byte
	if kb != nil {
		keyChan = kb.Keys()
	}

	for running := true; running; {
		select {
		case <-intChan:
			sch.Stop(true)
			running = false
		case <-done:
			running = false
		case <-uartTick.C:
			drainUART()
		case k := <-keyChan:
			if *uartInput {
				m.UART.Send(k)
				break
			}
			switch k {
			case 'i':
				m.Buttons.TriggerIRQ()
			case 'n':
				m.Buttons.TriggerNMI()
			case 'r':
				m.Buttons.TriggerRST()
			case 'q':
				sch.Stop(true)
				running = false
			}
		case <-statusTick:
			sch.PauseState()
			s := fmt.Sprintf("%d %s", sch.CycleCount(), m.CPU)
			sch.ResumeState()
			sl.Update(s)
		}
	}
	if sl != nil {
		sl.End()
	}
	drainUART()

	elapsed := time.Since(start)
	fmt.Fprintf(output, "cycles: %d in %v\n", sch.CycleCount(), elapsed.Round(time.Millisecond))
	fmt.Fprintln(output, m)

	if *dump != "" {
		f, err := os.Create(*dump)
		if err != nil {
			return err
		}
		sch.DumpState(f)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return sch.Err()
}

// newMachine creates a machine with a ROM image loaded from file. hz and
// strict override the preferences if they are not the zero value
func newMachine(output io.Writer, img string, overrides string, hz int, strict bool) (*hardware.Machine, error) {
	prefs.PushCommandLineStack(overrides)
	hwPrefs, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(output, "* unused preferences: %s\n", unused)
	}
	if err != nil {
		return nil, err
	}

	if hz != 0 {
		if err := hwPrefs.Hz.Set(hz); err != nil {
			return nil, err
		}
	}
	if strict {
		if err := hwPrefs.StrictBus.Set(true); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(img)
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(hwPrefs)
	if err != nil {
		return nil, err
	}
	if err := m.LoadROM(data); err != nil {
		return nil, err
	}

	return m, nil
}

func runScript(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	strict := md.AddBool("strict", false, "stop on bus faults")
	echo := md.AddBool("log", false, "echo log to output")
	overrides := md.AddString("prefs", "", "preference overrides (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("a ROM image and a script are required for %s mode", md)
	}

	if *echo {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	m, err := newMachine(output, md.GetArg(0), *overrides, 0, *strict)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(md.GetArg(1))
	if err != nil {
		return err
	}

	scr := script.NewScript(emulation.NewScheduler(m), m, output)
	defer scr.Close()

	return scr.Run(md.GetArg(1), string(src))
}

func opcodes(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	reserved := md.AddBool("reserved", false, "include reserved opcodes")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, defn := range instructions.Definitions {
		if !defn.Defined() && !*reserved {
			continue
		}
		fmt.Fprintln(output, defn)
	}

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin := md.AddInt("origin", hardware.ROMBase, "address of the first byte of the image")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single binary image is required for %s mode", md)
	}
	if *origin < 0 || *origin > 0xffff {
		return fmt.Errorf("origin out of range ($%x)", *origin)
	}

	img, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	return disassembly.Write(output, img, uint16(*origin))
}
