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
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/debugger/terminal"
	"github.com/jetsetilly/gopher99/hardware/disk"
	"github.com/jetsetilly/gopher99/logger"
	"github.com/jetsetilly/gopher99/paths"
	"github.com/jetsetilly/gopher99/softwareloader"
)

const (
	cmdRun    = "RUN"
	cmdFast   = "FAST"
	cmdStop   = "STOP"
	cmdStep   = "STEP"
	cmdOver   = "OVER"
	cmdFrames = "FRAMES"
	cmdReset  = "RESET"
	cmdStatus = "STATUS"

	cmdBreak = "BREAK"
	cmdClear = "CLEAR"
	cmdPeek  = "PEEK"
	cmdPoke  = "POKE"

	cmdSave  = "SAVE"
	cmdLoad  = "LOAD"
	cmdGraph = "GRAPH"

	cmdInsert = "INSERT"
	cmdTape   = "TAPE"
	cmdDisk   = "DISK"
	cmdKeys   = "KEYS"
	cmdPaste  = "PASTE"

	cmdLog  = "LOG"
	cmdHelp = "HELP"
	cmdQuit = "QUIT"
)

// aliases for commands
var aliases = map[string]string{
	"HALT": cmdStop,
	"EXIT": cmdQuit,
	"?":    cmdHelp,
}

// parseCommand scans user input for a valid command and acts upon it. note
// that the empty string is the same as the STEP command
func (dbg *Debugger) parseCommand(input string) error {
	command, args, _ := strings.Cut(strings.TrimSpace(input), " ")
	args = strings.TrimSpace(args)
	command = strings.ToUpper(command)
	if a, ok := aliases[command]; ok {
		command = a
	}
	if command == "" {
		command = cmdStep
	}

	// most commands take simple space separated arguments. KEYS and PASTE
	// take the remainder of the line unaltered
	tokens := strings.Fields(args)

	switch command {
	default:
		return curated.Errorf("%s is not a debugger command", command)

	case cmdRun:
		dbg.console.Start(false)
		dbg.printLine(terminal.StyleFeedback, "running")

	case cmdFast:
		dbg.console.Start(true)
		dbg.printLine(terminal.StyleFeedback, "running fast")

	case cmdStop:
		dbg.console.Stop()
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.console.Status())

	case cmdStep:
		if dbg.console.IsRunning() {
			return curated.Errorf("cannot step while the console is running")
		}
		dbg.console.Step()
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.console.Status())

	case cmdOver:
		if dbg.console.IsRunning() {
			return curated.Errorf("cannot step while the console is running")
		}
		dbg.console.StepOver()

	case cmdFrames:
		if len(tokens) == 0 {
			dbg.printLine(terminal.StyleFeedback, "frame %d", dbg.console.FrameCount())
			return nil
		}
		n, err := strconv.Atoi(tokens[0])
		if err != nil || n < 0 {
			return curated.Errorf("FRAMES requires a positive number")
		}
		dbg.console.FramesToRun = n

	case cmdReset:
		dbg.console.Reset(false)
		dbg.printLine(terminal.StyleFeedback, "console reset")

	case cmdStatus:
		dbg.printLine(terminal.StyleFeedback, "%s frame %d", dbg.console.State(), dbg.console.FrameCount())
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.console.Status())

	case cmdBreak:
		bp, ok := dbg.console.CPU().(breakpointer)
		if !ok {
			return curated.Errorf("breakpoints are not supported by the processor")
		}
		if len(tokens) == 0 {
			dbg.listBreakpoints(bp)
			return nil
		}
		addr, err := parseAddress(tokens[0])
		if err != nil {
			return err
		}
		bp.SetBreakpoint(addr)
		dbg.printLine(terminal.StyleFeedback, "breakpoint set at >%04X", addr)

	case cmdClear:
		bp, ok := dbg.console.CPU().(breakpointer)
		if !ok {
			return curated.Errorf("breakpoints are not supported by the processor")
		}
		if len(tokens) == 0 {
			bp.ClearBreakpoints()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		addr, err := parseAddress(tokens[0])
		if err != nil {
			return err
		}
		if !slices.Contains(bp.Breakpoints(), addr) {
			return curated.Errorf("no breakpoint at >%04X", addr)
		}
		bp.ClearBreakpoint(addr)
		dbg.printLine(terminal.StyleFeedback, "breakpoint at >%04X cleared", addr)

	case cmdPeek:
		if len(tokens) == 0 {
			return curated.Errorf("PEEK requires an address")
		}
		addr, err := parseAddress(tokens[0])
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, ">%04X = >%02X", addr, dbg.console.Memory().Read8(addr))

	case cmdPoke:
		if len(tokens) < 2 {
			return curated.Errorf("POKE requires an address and a value")
		}
		addr, err := parseAddress(tokens[0])
		if err != nil {
			return err
		}
		v, err := parseAddress(tokens[1])
		if err != nil || v > 0xff {
			return curated.Errorf("POKE value must be a byte")
		}
		dbg.console.Memory().Write8(addr, uint8(v))

	case cmdSave:
		if len(tokens) == 0 {
			return dbg.saveState(paths.UniqueFilename("snapshot", dbg.console.SoftwareName()) + ".json")
		}
		return dbg.saveState(tokens[0])

	case cmdLoad:
		if len(tokens) == 0 {
			return curated.Errorf("LOAD requires a filename")
		}
		return dbg.loadState(tokens[0])

	case cmdGraph:
		if len(tokens) < 2 {
			return curated.Errorf("GRAPH requires a component and a filename")
		}
		return dbg.graph(strings.ToUpper(tokens[0]), tokens[1])

	case cmdInsert:
		if len(tokens) == 0 {
			return curated.Errorf("INSERT requires a filename")
		}
		sw, err := softwareloader.Load(tokens[0])
		if err != nil {
			return err
		}
		dbg.console.LoadSoftware(sw)
		dbg.printLine(terminal.StyleFeedback, "loaded %s", sw)

	case cmdTape:
		if len(tokens) == 0 {
			dbg.console.Tape().Eject()
			dbg.printLine(terminal.StyleFeedback, "tape ejected")
			return nil
		}
		err := dbg.console.Tape().LoadFile(tokens[0])
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "tape loaded: %s", dbg.console.Tape())

	case cmdDisk:
		return dbg.disk(tokens)

	case cmdKeys:
		if args == "" {
			return curated.Errorf("KEYS requires some text")
		}
		dbg.console.Keyboard().SimulateKeyPresses(args, nil)

	case cmdPaste:
		if args == "" {
			return curated.Errorf("PASTE requires some text")
		}
		dbg.console.Keyboard().Paste(args)

	case cmdLog:
		w := &lineWriter{term: dbg.term}
		if len(tokens) == 0 {
			logger.Write(w)
		} else {
			n, err := strconv.Atoi(tokens[0])
			if err != nil || n < 0 {
				return curated.Errorf("LOG requires a positive number")
			}
			logger.Tail(w, n)
		}
		w.Flush()

	case cmdHelp:
		if len(tokens) == 0 {
			dbg.printLine(terminal.StyleHelp, "%s", strings.Join(commandList, " "))
			return nil
		}
		s := strings.ToUpper(tokens[0])
		if a, ok := aliases[s]; ok {
			s = a
		}
		txt, ok := help[s]
		if !ok {
			return curated.Errorf("no help for %s", s)
		}
		dbg.printLine(terminal.StyleHelp, "%s", txt)

	case cmdQuit:
		dbg.console.Stop()
		dbg.quit = true
	}

	return nil
}

func (dbg *Debugger) listBreakpoints(bp breakpointer) {
	addrs := bp.Breakpoints()
	if len(addrs) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}
	slices.Sort(addrs)
	for _, a := range addrs {
		dbg.printLine(terminal.StyleFeedback, ">%04X", a)
	}
}

func (dbg *Debugger) saveState(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	err = dbg.console.SaveState(f)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "state saved to %s", filename)
	return nil
}

func (dbg *Debugger) loadState(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	err = dbg.console.LoadState(f)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "state loaded from %s", filename)
	return nil
}

// graph writes a graphviz description of the named component
func (dbg *Debugger) graph(component string, filename string) error {
	var v any
	switch component {
	case "CPU":
		v = dbg.console.CPU()
	case "VDP":
		v = dbg.console.VDP()
	case "CRU":
		v = dbg.console.CRU()
	case "KEYBOARD":
		v = dbg.console.Keyboard()
	case "PSG":
		v = dbg.console.PSG()
	case "SPEECH":
		v = dbg.console.Speech()
	case "TAPE":
		v = dbg.console.Tape()
	default:
		return curated.Errorf("cannot graph %s", component)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, v)
	dbg.printLine(terminal.StyleFeedback, "%s graph written to %s", component, filename)
	return nil
}

// DISK with no arguments lists the disk drives. DISK n filename inserts a
// disk image into drive n. DISK n without a filename ejects the disk
func (dbg *Debugger) disk(tokens []string) error {
	drives := dbg.console.DiskDrives()

	if len(tokens) == 0 {
		for _, d := range drives {
			dbg.printLine(terminal.StyleFeedback, "%v", d)
		}
		for _, d := range dbg.console.CloudDrives() {
			dbg.printLine(terminal.StyleFeedback, "%v", d)
		}
		return nil
	}

	n, err := strconv.Atoi(tokens[0])
	if err != nil || n < 1 || n > len(drives) {
		return curated.Errorf("DISK requires a drive number between 1 and %d", len(drives))
	}

	drv, ok := drives[n-1].(*disk.Drive)
	if !ok {
		return curated.Errorf("%s does not accept disk images", drives[n-1].Name())
	}

	if len(tokens) == 1 {
		drv.Eject()
		dbg.printLine(terminal.StyleFeedback, "%s ejected", drv.Name())
		return nil
	}

	img, err := disk.LoadImage(tokens[1])
	if err != nil {
		return err
	}
	drv.Insert(img)
	dbg.printLine(terminal.StyleFeedback, "%s inserted into %s", img, drv.Name())

	return nil
}

// parseAddress accepts hexadecimal numbers with an optional prefix of '>',
// '$' or "0x"
func parseAddress(s string) (uint16, error) {
	h := strings.TrimPrefix(s, ">")
	h = strings.TrimPrefix(h, "$")
	h = strings.TrimPrefix(strings.ToLower(h), "0x")
	v, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, curated.Errorf("%s is not a valid address", s)
	}
	return uint16(v), nil
}

// lineWriter sends every complete line written to it to the terminal
type lineWriter struct {
	term terminal.Output
	buf  strings.Builder
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	s := w.buf.String()
	for {
		line, rest, ok := strings.Cut(s, "\n")
		if !ok {
			break
		}
		w.term.TermPrintLine(terminal.StyleFeedback, line)
		s = rest
	}
	w.buf.Reset()
	w.buf.WriteString(s)
	return len(p), nil
}

// Flush sends any incomplete line to the terminal
func (w *lineWriter) Flush() {
	if w.buf.Len() > 0 {
		w.term.TermPrintLine(terminal.StyleFeedback, w.buf.String())
		w.buf.Reset()
	}
}

func init() {
	for _, c := range commandList {
		if _, ok := help[c]; !ok {
			panic(fmt.Sprintf("no help for %s", c))
		}
	}
}
