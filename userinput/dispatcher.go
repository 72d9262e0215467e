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

package userinput

import (
	"sync"
)

// Dispatcher forwards events from the front end to the attached listeners.
// Dispatch() should be called in the same goroutine as the emulation (see
// scheduler.Post()).
type Dispatcher struct {
	crit      sync.Mutex
	nextID    int
	listeners [NumChannels][]attached
	gamepad   HandleGamepad
}

type attached struct {
	id int
	l  Listener
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher type.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// AddListener attaches a listener to the channel. The returned function
// detaches the listener. It is safe to call the returned function more than
// once.
func (d *Dispatcher) AddListener(ch Channel, l Listener) func() {
	d.crit.Lock()
	defer d.crit.Unlock()

	id := d.nextID
	d.nextID++
	d.listeners[ch] = append(d.listeners[ch], attached{id: id, l: l})

	return func() {
		d.crit.Lock()
		defer d.crit.Unlock()
		for i, a := range d.listeners[ch] {
			if a.id == id {
				d.listeners[ch] = append(d.listeners[ch][:i], d.listeners[ch][i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of listeners attached to the channel.
func (d *Dispatcher) Listeners(ch Channel) int {
	d.crit.Lock()
	defer d.crit.Unlock()
	return len(d.listeners[ch])
}

// Dispatch sends the event to every listener on the channel. Returns true if
// any listener consumed the event.
func (d *Dispatcher) Dispatch(ch Channel, ev Event) bool {
	d.crit.Lock()
	ls := make([]attached, len(d.listeners[ch]))
	copy(ls, d.listeners[ch])
	d.crit.Unlock()

	var consumed bool
	for _, a := range ls {
		if a.l(ev) {
			consumed = true
		}
	}
	return consumed
}

// KeyDown is a convenience function that dispatches the event on the key
// down channel followed by the key press channel. The key press channel is
// only used for keys that produce a character.
func (d *Dispatcher) KeyDown(ev Event) bool {
	consumed := d.Dispatch(ChanKeyDown, ev)
	if len([]rune(ev.Key)) == 1 {
		if d.Dispatch(ChanKeyPress, ev) {
			consumed = true
		}
	}
	return consumed
}

// KeyUp is a convenience function that dispatches the event on the key up
// channel.
func (d *Dispatcher) KeyUp(ev Event) bool {
	return d.Dispatch(ChanKeyUp, ev)
}

// Paste dispatches the text on the paste channel.
func (d *Dispatcher) Paste(text string) bool {
	return d.Dispatch(ChanPaste, Event{Text: text})
}

// SetGamepadHandler sets the destination for gamepad events. A nil value
// causes gamepad events to be ignored.
func (d *Dispatcher) SetGamepadHandler(h HandleGamepad) {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.gamepad = h
}

// Gamepad forwards the gamepad event to the gamepad handler.
func (d *Dispatcher) Gamepad(player int, action GamepadAction, down bool) bool {
	d.crit.Lock()
	h := d.gamepad
	d.crit.Unlock()

	if h == nil {
		return false
	}
	return h.HandleGamepad(player, action, down)
}
