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

package termsource

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/logger"
	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/userinput"
	"github.com/pkg/term"
	"golang.design/x/clipboard"
)

// the length of time between the key down and key up events of a character
const holdDuration = 50 * time.Millisecond

// Source reads a terminal and dispatches events.
type Source struct {
	tty      *term.Term
	dispatch *userinput.Dispatcher
	sched    scheduler.Scheduler

	clipboardOK bool
}

// Open the terminal device in raw mode. Events are dispatched by functions
// posted to the scheduler so that they happen in the same goroutine as the
// emulation.
func Open(device string, dispatch *userinput.Dispatcher, sched scheduler.Scheduler) (*Source, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("termsource: %v", err)
	}

	src := &Source{
		tty:      tty,
		dispatch: dispatch,
		sched:    sched,
	}

	src.clipboardOK = clipboard.Init() == nil
	if !src.clipboardOK {
		logger.Log(logger.Allow, "termsource", "clipboard not available")
	}

	return src, nil
}

// Close restores the terminal to the mode it was in before Open().
func (src *Source) Close() error {
	err := src.tty.Restore()
	if err != nil {
		return curated.Errorf("termsource: %v", err)
	}
	return src.tty.Close()
}

// Run reads from the terminal until the context is cancelled, the terminal
// is closed or Ctrl+C is typed.
func (src *Source) Run(ctx context.Context) error {
	type result struct {
		data []byte
		err  error
	}
	reads := make(chan result)

	go func() {
		for {
			b := make([]byte, 64)
			n, err := src.tty.Read(b)
			select {
			case reads <- result{data: b[:n], err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	var remainder []byte
	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-reads:
			if r.err != nil {
				if errors.Is(r.err, io.EOF) {
					return nil
				}
				return curated.Errorf("termsource: %v", r.err)
			}

			var actions []Action
			actions, remainder = Decode(append(remainder, r.data...))
			for _, a := range actions {
				if a.Quit {
					return nil
				}
				src.perform(a)
			}
		}
	}
}

func (src *Source) perform(a Action) {
	if a.Paste {
		if !src.clipboardOK {
			return
		}
		text := string(clipboard.Read(clipboard.FmtText))
		if text == "" {
			return
		}
		src.sched.Post(func() {
			src.dispatch.Paste(text)
		})
		return
	}

	ev, err := userinput.KeyEvent(a.Key)
	if err != nil {
		logger.Log(logger.Allow, "termsource", err)
		return
	}

	src.sched.Post(func() {
		src.dispatch.KeyDown(ev)
		src.dispatch.Dispatch(userinput.ChanKeyPress, ev)
		src.sched.After(holdDuration, func() {
			src.dispatch.KeyUp(ev)
		})
	})
}
