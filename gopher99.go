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


package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/debugger"
	"github.com/jetsetilly/gopher99/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher99/hardware"
	"github.com/jetsetilly/gopher99/hardware/preferences"
	"github.com/jetsetilly/gopher99/hardware/vdp"
	"github.com/jetsetilly/gopher99/logger"
	"github.com/jetsetilly/gopher99/notifications"
	"github.com/jetsetilly/gopher99/prefs"
	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/softwareloader"
	"github.com/jetsetilly/gopher99/statsview"
	"github.com/jetsetilly/gopher99/userinput"
	"github.com/jetsetilly/gopher99/userinput/sdlsource"
	"github.com/jetsetilly/gopher99/userinput/termsource"
)

const (
	modeRun   = "RUN"
	modeDebug = "DEBUG"
)

// options common to every mode
type options struct {
	fast      bool
	prefs     string
	prefsFile string
	useSDL    bool
	scale     int
	tty       string
	keys      string
	frames    int
	log       bool
	statsview bool
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode specified by the arguments. the return value is the exit
// status of the program
func launch(args []string, output io.Writer) int {
	mode := modeRun
	if len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case modeRun, modeDebug:
			mode = strings.ToUpper(args[0])
			args = args[1:]
		}
	}

	var opts options
	flgs := flag.NewFlagSet(mode, flag.ContinueOnError)
	flgs.SetOutput(output)
	flgs.Usage = func() {
		fmt.Fprintf(output, "usage: gopher99 [%s|%s] [flags] [software]\n", modeRun, modeDebug)
		flgs.PrintDefaults()
	}
	flgs.BoolVar(&opts.fast, "fast", false, "run at twice the normal speed")
	flgs.StringVar(&opts.prefs, "prefs", "", "preference values for this session (key::value; key::value)")
	flgs.StringVar(&opts.prefsFile, "prefsfile", "", "preferences file to use instead of the default")
	flgs.BoolVar(&opts.useSDL, "sdl", mode == modeRun, "display the VDP output in a window")
	flgs.IntVar(&opts.scale, "scale", 2, "scale of the display window")
	flgs.StringVar(&opts.tty, "tty", "/dev/tty", "terminal to read the keyboard from when there is no window")
	flgs.StringVar(&opts.keys, "keys", "", "keys to type once the software has loaded")
	flgs.IntVar(&opts.frames, "frames", 0, "number of frames to run before quitting (RUN mode only)")
	flgs.BoolVar(&opts.log, "log", false, "echo debugging log to stderr")
	if statsview.Available() {
		flgs.BoolVar(&opts.statsview, "statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	err := flgs.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 10
	}

	if flgs.NArg() > 1 {
		fmt.Fprintln(output, "* too many arguments")
		return 10
	}

	if opts.log {
		logger.SetEcho(os.Stderr)
	}
	if opts.statsview {
		statsview.Launch(output)
	}

	switch mode {
	case modeRun:
		err = run(opts, flgs.Arg(0))
	case modeDebug:
		err = debug(opts, flgs.Arg(0))
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", mode, err)
		return 20
	}

	return 0
}

// the services shared by every mode
type host struct {
	loop     *scheduler.Loop
	dispatch *userinput.Dispatcher
	notify   *notifications.Dispatcher
	console  *hardware.Console
}

func newHost(opts options, software string) (*host, error) {
	h := &host{
		loop:     scheduler.NewLoop(),
		dispatch: userinput.NewDispatcher(),
		notify:   notifications.NewDispatcher(),
	}

	// values on the command line stack are consumed as the preferences are
	// created
	prefs.PushCommandLineStack(opts.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopher99", "unused preferences: %s", unused)
		}
	}()

	var p *preferences.Preferences
	var err error
	if opts.prefsFile != "" {
		p, err = preferences.NewPreferencesWithPath(opts.prefsFile)
	} else {
		p, err = preferences.NewPreferences()
	}
	if err != nil {
		return nil, err
	}

	h.console, err = hardware.NewConsole(hardware.Host{
		Prefs:     p,
		Input:     h.dispatch,
		Scheduler: h.loop,
		Notify:    h.notify,
	})
	if err != nil {
		return nil, err
	}

	if software != "" {
		sw, err := softwareloader.Load(software)
		if err != nil {
			return nil, err
		}
		if opts.keys != "" {
			sw.KeyPresses = opts.keys
		}
		h.console.LoadSoftware(sw)
	} else if opts.keys != "" {
		h.console.Keyboard().SimulateKeyPresses(opts.keys, nil)
	}

	return h, nil
}

// openWindow must be called from the main goroutine
func (h *host) openWindow(opts options) (*sdlsource.Window, error) {
	win, err := sdlsource.NewWindow(opts.scale, h.dispatch, h.loop)
	if err != nil {
		return nil, err
	}

	r, ok := h.console.VDP().(interface{ AddRenderer(vdp.Renderer) })
	if !ok {
		win.Destroy()
		return nil, curated.Errorf("VDP cannot be displayed")
	}
	r.AddRenderer(win)

	return win, nil
}

func run(opts options, software string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	h, err := newHost(opts, software)
	if err != nil {
		return err
	}

	h.console.FramesToRun = opts.frames
	h.notify.Subscribe(notifications.NotifyFunc(func(ev notifications.Event) error {
		if ev.Notice == notifications.NotifyStopped {
			cancel()
		}
		return nil
	}))

	h.loop.Post(func() {
		h.console.Start(opts.fast)
	})

	if opts.useSDL {
		win, err := h.openWindow(opts)
		if err != nil {
			return err
		}
		defer win.Destroy()

		go func() {
			h.loop.Run(ctx)
			cancel()
		}()

		return win.Run(ctx)
	}

	src, err := termsource.Open(opts.tty, h.dispatch, h.loop)
	if err != nil {
		return err
	}
	defer src.Close()

	go func() {
		err := src.Run(ctx)
		if err != nil {
			logger.Log(logger.Allow, "gopher99", err)
		}
		cancel()
	}()

	err = h.loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func debug(opts options, software string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h, err := newHost(opts, software)
	if err != nil {
		return err
	}

	dbg := debugger.NewDebugger(h.console, plainterm.NewPlainTerminal(nil, nil))

	go func() {
		h.loop.Run(ctx)
		cancel()
	}()

	if opts.fast {
		h.loop.Post(func() {
			h.console.Start(true)
		})
	}

	if opts.useSDL {
		win, err := h.openWindow(opts)
		if err != nil {
			return err
		}
		defer win.Destroy()

		go func() {
			err := dbg.Run(ctx)
			if err != nil {
				logger.Log(logger.Allow, "gopher99", err)
			}
			cancel()
		}()

		return win.Run(ctx)
	}

	return dbg.Run(ctx)
}
