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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher99/test"
	"github.com/jetsetilly/gopher99/userinput"
)

func TestDispatcher(t *testing.T) {
	d := userinput.NewDispatcher()

	var downs int
	var presses int

	removeDown := d.AddListener(userinput.ChanKeyDown, func(ev userinput.Event) bool {
		downs++
		return ev.Code != ""
	})
	d.AddListener(userinput.ChanKeyPress, func(ev userinput.Event) bool {
		presses++
		return false
	})
	test.ExpectEquality(t, d.Listeners(userinput.ChanKeyDown), 1)

	ev, err := userinput.KeyEvent("a")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, d.KeyDown(ev))
	test.ExpectEquality(t, downs, 1)
	test.ExpectEquality(t, presses, 1)

	// named keys are not sent to the key press channel
	ev, err = userinput.KeyEvent("Left Shift")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, d.KeyDown(ev))
	test.ExpectEquality(t, downs, 2)
	test.ExpectEquality(t, presses, 1)

	removeDown()
	removeDown()
	test.ExpectEquality(t, d.Listeners(userinput.ChanKeyDown), 0)
	test.ExpectFailure(t, d.KeyDown(ev))

	// no listeners on the paste channel
	test.ExpectFailure(t, d.Paste("hello"))
}

func TestKeyEvent(t *testing.T) {
	ev, err := userinput.KeyEvent("a")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev, userinput.Event{Code: "KeyA", KeyCode: 65, Key: "a"})

	ev, err = userinput.KeyEvent("!")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev, userinput.Event{Code: "Digit1", KeyCode: 49, Key: "!"})

	ev, err = userinput.KeyEvent("Return")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev.KeyCode, 13)

	ev, err = userinput.KeyEvent("Space")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev, userinput.Event{Code: "Space", KeyCode: 32, Key: " "})

	ev, err = userinput.KeyEvent("F9")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev.KeyCode, 120)

	_, err = userinput.KeyEvent("Hyper")
	test.ExpectFailure(t, err)
}

type gamepad struct {
	player int
	action userinput.GamepadAction
	down   bool
}

func (g *gamepad) HandleGamepad(player int, action userinput.GamepadAction, down bool) bool {
	g.player = player
	g.action = action
	g.down = down
	return true
}

func TestGamepad(t *testing.T) {
	d := userinput.NewDispatcher()
	test.ExpectFailure(t, d.Gamepad(0, userinput.GamepadFire, true))

	g := &gamepad{}
	d.SetGamepadHandler(g)
	test.ExpectSuccess(t, d.Gamepad(1, userinput.GamepadUp, true))
	test.ExpectEquality(t, g.player, 1)
	test.ExpectEquality(t, g.action, userinput.GamepadUp)
	test.ExpectSuccess(t, g.down)
}
