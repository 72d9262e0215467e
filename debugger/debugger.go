// This file is part of Gopher99.
//
// Gopher99 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher99 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher99.  If not, see <https://www.gnu.org/licenses/>.


package debugger

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/debugger/terminal"
	"github.com/jetsetilly/gopher99/hardware"
	"github.com/jetsetilly/gopher99/hardware/cpu"
)

// breakpointer is implemented by execution units that support permanent
// breakpoints
type breakpointer interface {
	SetBreakpoint(addr uint16)
	ClearBreakpoint(addr uint16)
	ClearBreakpoints()
	Breakpoints() []uint16
}

// Debugger is the monitor for a single console.
type Debugger struct {
	console *hardware.Console
	term    terminal.Terminal

	// set by the QUIT command
	quit bool
}

// NewDebugger creates a debugger for the console. The breakpoint callback of
// the console is replaced.
func NewDebugger(console *hardware.Console, term terminal.Terminal) *Debugger {
	dbg := &Debugger{
		console: console,
		term:    term,
	}
	console.SetBreakpointCallback(dbg.breakpoint)
	return dbg
}

// called by the console when an execution unit reaches a breakpoint
func (dbg *Debugger) breakpoint(unit cpu.ExecutionUnit) {
	dbg.console.Stop()
	dbg.printLine(terminal.StyleEmulatorEvent, "breakpoint at >%04X", unit.PC())
	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.console.Status())
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

func (dbg *Debugger) prompt() string {
	return fmt.Sprintf("[ >%04X %s ] > ", dbg.console.PC(), dbg.console.State())
}

// Run reads and executes commands until the QUIT command, the end of input
// or until the context is done.
func (dbg *Debugger) Run(ctx context.Context) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	var prompt string
	if !dbg.exec(ctx, func() { prompt = dbg.prompt() }) {
		return nil
	}

	for {
		input, err := dbg.term.TermRead(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		var quit bool
		ok := dbg.exec(ctx, func() {
			quit = dbg.ParseInput(input)
			prompt = dbg.prompt()
		})
		if !ok || quit {
			return nil
		}
	}
}

// exec runs the function on the scheduler's goroutine and waits for it to
// complete. returns false if the context was done first
func (dbg *Debugger) exec(ctx context.Context, f func()) bool {
	done := make(chan struct{})
	dbg.console.Scheduler().Post(func() {
		f()
		close(done)
	})

	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

// ParseInput executes a single line of input. Errors are printed to the
// terminal. Returns true if the QUIT command has been issued.
func (dbg *Debugger) ParseInput(input string) bool {
	dbg.term.TermPrintLine(terminal.StyleEcho, input)

	err := dbg.parseCommand(input)
	if err != nil {
		dbg.term.TermPrintLine(terminal.StyleError, err.Error())
	}

	return dbg.quit
}
