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


package sdlsource

import (
	"bytes"
	"context"
	"image"
	"runtime"
	"sync"

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/hardware/vdp"
	"github.com/jetsetilly/gopher99/logger"
	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// the length of time to wait for an SDL event before checking for a new
// frame
const eventTimeout = 10

// Window is an SDL window. It implements the vdp.Renderer interface.
type Window struct {
	window  *sdl.Window
	surface *sdl.Surface
	scale   int32

	dispatch *userinput.Dispatcher
	sched    scheduler.Scheduler

	// the most recent image from the VDP. accessed by the emulation
	// goroutine in Render() and by the main thread in Run()
	crit  sync.Mutex
	pix   []byte
	dirty bool
}

// NewWindow creates a window large enough to display the VDP image at the
// specified scale. Must be called from the main thread.
func NewWindow(scale int, dispatch *userinput.Dispatcher, sched scheduler.Scheduler) (*Window, error) {
	runtime.LockOSThread()

	if scale < 1 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	win := &Window{
		scale:    int32(scale),
		dispatch: dispatch,
		sched:    sched,
		pix:      make([]byte, vdp.Width*vdp.Height*4),
	}

	win.window, err = sdl.CreateWindow("Gopher99",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(vdp.Width)*win.scale, int32(vdp.Height)*win.scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	win.surface, err = win.window.GetSurface()
	if err != nil {
		win.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	sdl.StartTextInput()

	return win, nil
}

// Destroy the window and shutdown SDL.
func (win *Window) Destroy() {
	sdl.StopTextInput()
	win.window.Destroy()
	sdl.Quit()
}

// Render implements the vdp.Renderer interface.
func (win *Window) Render(img *image.RGBA) error {
	win.crit.Lock()
	defer win.crit.Unlock()
	copy(win.pix, img.Pix)
	win.dirty = true
	return nil
}

// Run services the window until it is closed or the context is done. Must be
// called from the main thread.
func (win *Window) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for ev := sdl.WaitEventTimeout(eventTimeout); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				win.serviceKeyboard(ev)
			case *sdl.TextInputEvent:
				win.serviceText(ev.Text[:])
			}
		}

		if err := win.present(); err != nil {
			return err
		}
	}
}

func (win *Window) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 {
		return
	}

	ctrl := ev.Keysym.Mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || ev.Keysym.Mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL
	shift := ev.Keysym.Mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || ev.Keysym.Mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT

	keyName := sdl.GetKeyName(ev.Keysym.Sym)

	if ctrl && keyName == "V" {
		if ev.Type == sdl.KEYDOWN {
			text, err := sdl.GetClipboardText()
			if err != nil {
				logger.Log(logger.Allow, "sdl", err)
				return
			}
			if text != "" {
				win.sched.Post(func() {
					win.dispatch.Paste(text)
				})
			}
		}
		return
	}

	name := eventName(keyName, shift)
	if name == "" {
		return
	}

	kev, err := userinput.KeyEvent(name)
	if err != nil {
		return
	}

	switch ev.Type {
	case sdl.KEYDOWN:
		win.sched.Post(func() {
			win.dispatch.KeyDown(kev)
		})
	case sdl.KEYUP:
		win.sched.Post(func() {
			win.dispatch.KeyUp(kev)
		})
	}
}

// the text of a text input event is NUL terminated
func (win *Window) serviceText(b []byte) {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	for _, c := range string(b) {
		ev, err := userinput.CharEvent(c)
		if err != nil {
			continue
		}
		win.sched.Post(func() {
			win.dispatch.Dispatch(userinput.ChanKeyPress, ev)
		})
	}
}

// present draws the most recent image to the window surface if it has
// changed since the last call.
func (win *Window) present() error {
	win.crit.Lock()
	if !win.dirty {
		win.crit.Unlock()
		return nil
	}
	win.dirty = false

	r := sdl.Rect{W: win.scale, H: win.scale}
	for y := range vdp.Height {
		for x := range vdp.Width {
			i := (y*vdp.Width + x) * 4
			r.X = int32(x) * win.scale
			r.Y = int32(y) * win.scale
			col := sdl.MapRGB(win.surface.Format, win.pix[i], win.pix[i+1], win.pix[i+2])
			if err := win.surface.FillRect(&r, col); err != nil {
				win.crit.Unlock()
				return curated.Errorf("sdl: %v", err)
			}
		}
	}
	win.crit.Unlock()

	if err := win.window.UpdateSurface(); err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	return nil
}
