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

package keyboard

import (
	"time"

	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/userinput"
)

// KeyPressDuration is how long a simulated key is held down.
const KeyPressDuration = 100 * time.Millisecond

// PauseMarker in a key press string causes typing to pause for
// PauseDuration.
const (
	PauseMarker   = '§'
	PauseDuration = time.Second
)

// legacy key codes of the modifier keys
const (
	keyCodeShift = 16
	keyCodeCtrl  = 17
	keyCodeAlt   = 18
)

// after schedules f as a one-shot task that will be cancelled by Stop()
func (kb *Keyboard) after(d time.Duration, f func()) {
	var task *scheduler.Task
	task = kb.sched.After(d, func() {
		delete(kb.pending, task)
		f()
	})
	kb.pending[task] = true
}

func (kb *Keyboard) cancelSimulation() {
	for task := range kb.pending {
		task.Cancel()
	}
	clear(kb.pending)

	for keyCode := range kb.simulated {
		kb.simulateKeyUp(keyCode)
	}
}

func (kb *Keyboard) simulateKeyDown(keyCode int) {
	kb.simulated[keyCode] = true
	kb.keyEvent(userinput.Event{KeyCode: keyCode}, true)
}

func (kb *Keyboard) simulateKeyUp(keyCode int) {
	delete(kb.simulated, keyCode)
	kb.keyEvent(userinput.Event{KeyCode: keyCode}, false)
}

// SimulateKeyPresses types the string one character at a time. Lower case
// letters are typed as upper case. A newline is typed as the enter key. The
// PauseMarker character causes a pause before typing continues.
//
// The callback function is called when the string has been typed. It will
// not be called if typing is interrupted by Stop().
func (kb *Keyboard) SimulateKeyPresses(keys string, callback func()) {
	if keys == "" {
		if callback != nil {
			callback()
		}
		return
	}

	r := []rune(keys)
	remaining := string(r[1:])

	if r[0] == PauseMarker {
		kb.after(PauseDuration, func() {
			kb.SimulateKeyPresses(remaining, callback)
		})
		return
	}

	keyCode := int(r[0])
	switch {
	case r[0] >= 'a' && r[0] <= 'z':
		keyCode -= 'a' - 'A'
	case r[0] == '\n':
		keyCode = '\r'
	}

	kb.SimulateKeyPress(keyCode, func() {
		kb.after(KeyPressDuration, func() {
			kb.SimulateKeyPresses(remaining, callback)
		})
	})
}

// SimulateKeyPress presses the key with the legacy key code for
// KeyPressDuration. The callback function is called after the key has been
// released.
func (kb *Keyboard) SimulateKeyPress(keyCode int, callback func()) {
	kb.simulateKeyDown(keyCode)
	kb.after(KeyPressDuration, func() {
		kb.simulateKeyUp(keyCode)
		if callback != nil {
			callback()
		}
	})
}

// VirtualKeyPress is a key press from an on-screen keyboard. Modifier keys
// stay down until the next key is pressed. The other modifier keys are
// released after KeyPressDuration.
func (kb *Keyboard) VirtualKeyPress(keyCode int) {
	kb.simulateKeyDown(keyCode)

	for _, m := range []int{keyCodeShift, keyCodeCtrl, keyCodeAlt} {
		m := m
		if keyCode != m {
			kb.after(KeyPressDuration, func() {
				kb.simulateKeyUp(m)
			})
		}
	}

	switch keyCode {
	case keyCodeShift, keyCodeCtrl, keyCodeAlt:
	default:
		kb.after(KeyPressDuration, func() {
			kb.simulateKeyUp(keyCode)
		})
	}
}
