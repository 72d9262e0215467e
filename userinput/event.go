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

import "fmt"

// Channel is a category of input event.
type Channel int

// List of valid Channel values.
const (
	ChanKeyDown Channel = iota
	ChanKeyUp
	ChanKeyPress
	ChanPaste
	NumChannels
)

func (ch Channel) String() string {
	switch ch {
	case ChanKeyDown:
		return "keydown"
	case ChanKeyUp:
		return "keyup"
	case ChanKeyPress:
		return "keypress"
	case ChanPaste:
		return "paste"
	}
	return fmt.Sprintf("channel %d", int(ch))
}

// Event describes a single keyboard or clipboard event.
type Event struct {
	// physical key code (eg. "KeyA", "ArrowLeft"). can be empty
	Code string

	// legacy key code (eg. 65 for the A key). zero if unknown
	KeyCode int

	// the key value (eg. "a", "A", "Enter", "ArrowLeft"). can be empty
	Key string

	// the text of a paste event
	Text string

	// key is being held down and the event is an auto-repeat
	Repeat bool
}

func (ev Event) String() string {
	if ev.Text != "" {
		return fmt.Sprintf("paste (%d chars)", len(ev.Text))
	}
	return fmt.Sprintf("%s/%d/%q", ev.Code, ev.KeyCode, ev.Key)
}

// Listener is a function that handles an event. Returns true if the event
// has been consumed. An unconsumed event may be handled by the front end in
// some other way.
type Listener func(ev Event) bool

// GamepadAction is a stick direction or the fire button.
type GamepadAction int

// List of valid GamepadAction values.
const (
	GamepadFire GamepadAction = iota
	GamepadLeft
	GamepadRight
	GamepadDown
	GamepadUp
)

func (a GamepadAction) String() string {
	switch a {
	case GamepadFire:
		return "fire"
	case GamepadLeft:
		return "left"
	case GamepadRight:
		return "right"
	case GamepadDown:
		return "down"
	case GamepadUp:
		return "up"
	}
	return "unknown gamepad action"
}

// HandleGamepad is implemented by anything that can accept input from a
// gamepad. The player argument is zero indexed.
type HandleGamepad interface {
	HandleGamepad(player int, action GamepadAction, down bool) bool
}
