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

package keyboard_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jetsetilly/gopher99/hardware/keyboard"
	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/test"
	"github.com/jetsetilly/gopher99/userinput"
)

// matrix cells used in the tests
const (
	colA, rowA       = 5, 8
	colB, rowB       = 4, 10
	colC, rowC       = 2, 10
	colS, rowS       = 1, 8
	colP, rowP       = 5, 5
	colFctn, rowFctn = 0, 7
	colShft, rowShft = 0, 8
)

func newKeyboard(pc bool, arrows bool) (*keyboard.Keyboard, *userinput.Dispatcher, *scheduler.Virtual) {
	src := userinput.NewDispatcher()
	sched := scheduler.NewVirtual()
	kb := keyboard.NewKeyboard(src, sched, pc, arrows)
	return kb, src, sched
}

func keyEvent(t *testing.T, name string) userinput.Event {
	t.Helper()
	ev, err := userinput.KeyEvent(name)
	test.DemandSuccess(t, err)
	return ev
}

func TestListeners(t *testing.T) {
	kb, src, _ := newKeyboard(false, false)

	count := func() [userinput.NumChannels]int {
		var c [userinput.NumChannels]int
		for ch := userinput.Channel(0); ch < userinput.NumChannels; ch++ {
			c[ch] = src.Listeners(ch)
		}
		return c
	}

	test.ExpectEquality(t, count(), [userinput.NumChannels]int{0, 0, 0, 0})

	kb.Start()
	test.ExpectEquality(t, count(), [userinput.NumChannels]int{1, 1, 0, 1})
	test.ExpectEquality(t, kb.Listener(userinput.ChanKeyDown), keyboard.Attached)
	test.ExpectEquality(t, kb.Listener(userinput.ChanKeyPress), keyboard.Detached)

	// starting again does not add listeners
	kb.Start()
	test.ExpectEquality(t, count(), [userinput.NumChannels]int{1, 1, 0, 1})

	// switching layout while running attaches the listeners for the new
	// layout
	kb.SetPCKeyboardEnabled(true)
	test.ExpectSuccess(t, kb.IsRunning())
	test.ExpectEquality(t, kb.Layout(), keyboard.RemappedLayout)
	test.ExpectEquality(t, count(), [userinput.NumChannels]int{1, 1, 1, 1})

	kb.Stop()
	test.ExpectEquality(t, count(), [userinput.NumChannels]int{0, 0, 0, 0})
	test.ExpectEquality(t, kb.Listener(userinput.ChanPaste), keyboard.Detached)

	// switching layout while stopped does not start the keyboard
	kb.SetPCKeyboardEnabled(false)
	test.ExpectFailure(t, kb.IsRunning())
	test.ExpectEquality(t, count(), [userinput.NumChannels]int{0, 0, 0, 0})
}

func TestConsumedKeys(t *testing.T) {
	kb, src, _ := newKeyboard(false, false)
	kb.Start()

	// minus has no key on the emulated keyboard
	test.ExpectFailure(t, src.KeyDown(keyEvent(t, "-")))
	for col := 0; col < keyboard.NumColumns; col++ {
		for row := 0; row < keyboard.NumRows; row++ {
			test.ExpectFailure(t, kb.IsKeyDown(col, row))
		}
	}

	test.ExpectSuccess(t, src.KeyDown(keyEvent(t, "a")))
	test.ExpectSuccess(t, kb.IsKeyDown(colA, rowA))
	test.ExpectSuccess(t, src.KeyUp(keyEvent(t, "a")))
	test.ExpectFailure(t, kb.IsKeyDown(colA, rowA))

	// ctrl+C is left for the host
	test.ExpectSuccess(t, src.KeyDown(keyEvent(t, "Control")))
	test.ExpectFailure(t, src.KeyDown(keyEvent(t, "c")))
	test.ExpectSuccess(t, kb.IsKeyDown(colC, rowC))
}

func TestLegacyKeyCode(t *testing.T) {
	kb, src, _ := newKeyboard(false, false)
	kb.Start()

	// events without a code are looked up by key code
	test.ExpectSuccess(t, src.KeyDown(userinput.Event{KeyCode: 'A'}))
	test.ExpectSuccess(t, kb.IsKeyDown(colA, rowA))

	// backspace is fctn+S
	test.ExpectSuccess(t, src.KeyDown(userinput.Event{KeyCode: 8}))
	test.ExpectSuccess(t, kb.IsKeyDown(colFctn, rowFctn))
	test.ExpectSuccess(t, kb.IsKeyDown(colS, rowS))
}

func TestJoystickActivity(t *testing.T) {
	for _, c := range []struct{ n, m int }{{1, 0}, {1, 10}, {10, 10}, {3, 249}, {0, 250}, {5, 251}, {5, 1000}} {
		kb, _, _ := newKeyboard(false, false)

		for i := 0; i < c.n; i++ {
			kb.IsKeyDown(keyboard.Joystick1Column+c.n%2, 3)
		}
		for i := 0; i < c.m; i++ {
			kb.IsKeyDown(c.m%6, 5)
		}
		test.ExpectEquality(t, kb.JoystickActivity(), max(0, 250-c.m), c.n, c.m)
	}
}

func TestArrowKeys(t *testing.T) {
	kb, src, _ := newKeyboard(false, true)
	kb.Start()

	// the software has recently read the joystick so the arrow key operates
	// the joystick
	src.KeyDown(keyEvent(t, "Left"))
	test.ExpectSuccess(t, kb.IsKeyDown(keyboard.Joystick1Column, 4))
	test.ExpectFailure(t, kb.IsKeyDown(colFctn, rowFctn))
	src.KeyUp(keyEvent(t, "Left"))

	// the software reads the keyboard for a while
	for i := 0; i < 250; i++ {
		kb.IsKeyDown(0, 3)
	}
	test.ExpectEquality(t, kb.JoystickActivity(), 0)

	src.KeyDown(keyEvent(t, "Left"))
	test.ExpectSuccess(t, kb.IsKeyDown(colFctn, rowFctn))
	test.ExpectSuccess(t, kb.IsKeyDown(colS, rowS))

	// reading the joystick column has reset the activity counter but the
	// chord is still released on key up
	test.ExpectFailure(t, kb.IsKeyDown(keyboard.Joystick1Column, 4))
	src.KeyUp(keyEvent(t, "Left"))
	test.ExpectFailure(t, kb.IsKeyDown(colFctn, rowFctn))
	test.ExpectFailure(t, kb.IsKeyDown(colS, rowS))
}

func TestEmulateJoystick2(t *testing.T) {
	kb, src, _ := newKeyboard(false, false)
	kb.SetEmulateJoystick2(true)
	kb.Start()

	src.KeyDown(keyEvent(t, "Tab"))
	test.ExpectSuccess(t, kb.IsKeyDown(keyboard.Joystick1Column, 3))
	test.ExpectSuccess(t, kb.IsKeyDown(keyboard.Joystick2Column, 3))

	src.KeyDown(keyEvent(t, "Up"))
	test.ExpectSuccess(t, kb.IsKeyDown(keyboard.Joystick2Column, 7))
}

func TestCapsLock(t *testing.T) {
	kb, src, _ := newKeyboard(false, false)
	kb.Start()

	test.ExpectSuccess(t, kb.IsAlphaLockDown())
	src.KeyDown(keyEvent(t, "CapsLock"))
	test.ExpectFailure(t, kb.IsAlphaLockDown())
	src.KeyUp(keyEvent(t, "CapsLock"))
	test.ExpectFailure(t, kb.IsAlphaLockDown())
	src.KeyDown(keyEvent(t, "CapsLock"))
	test.ExpectSuccess(t, kb.IsAlphaLockDown())
}

func TestRemappedLayout(t *testing.T) {
	kb, src, _ := newKeyboard(true, false)
	kb.Start()

	// double quote is fctn+P
	test.ExpectSuccess(t, src.KeyDown(keyEvent(t, "\"")))
	test.ExpectSuccess(t, kb.IsKeyDown(colFctn, rowFctn))
	test.ExpectSuccess(t, kb.IsKeyDown(colP, rowP))
	src.KeyUp(keyEvent(t, "\""))
	test.ExpectFailure(t, kb.IsKeyDown(colFctn, rowFctn))

	// upper case letters are shifted
	src.KeyDown(keyEvent(t, "A"))
	test.ExpectSuccess(t, kb.IsKeyDown(colShft, rowShft))
	test.ExpectSuccess(t, kb.IsKeyDown(colA, rowA))
	src.KeyUp(keyEvent(t, "A"))

	// alt held with S is fctn+S
	src.KeyDown(keyEvent(t, "Alt"))
	src.KeyDown(keyEvent(t, "s"))
	test.ExpectSuccess(t, kb.IsKeyDown(colFctn, rowFctn))
	test.ExpectSuccess(t, kb.IsKeyDown(colS, rowS))

	// but not with other keys
	src.KeyDown(keyEvent(t, "Alt"))
	src.KeyDown(keyEvent(t, "p"))
	test.ExpectFailure(t, kb.IsKeyDown(colFctn, rowFctn))
	test.ExpectSuccess(t, kb.IsKeyDown(colP, rowP))
}

func TestPaste(t *testing.T) {
	kb, src, _ := newKeyboard(false, false)
	kb.Start()

	test.ExpectEquality(t, kb.GetPasteCharCode(), keyboard.NoPasteChar)

	test.ExpectSuccess(t, src.Paste("AB\nC"))
	test.ExpectSuccess(t, kb.IsPasting())

	// pasted text is surrounded by newlines
	for _, c := range []int{'\r', 'A', 'B', '\r', 'C', '\r'} {
		test.ExpectEquality(t, kb.GetPasteCharCode(), c)
	}
	test.ExpectFailure(t, kb.IsPasting())
	test.ExpectEquality(t, kb.GetPasteCharCode(), keyboard.NoPasteChar)

	// non printable characters are skipped
	kb.Paste("A\tB\x00")
	for _, c := range []int{'\r', 'A', 'B', '\r'} {
		test.ExpectEquality(t, kb.GetPasteCharCode(), c)
	}
	test.ExpectEquality(t, kb.GetPasteCharCode(), keyboard.NoPasteChar)
}

func TestSimulateKeyPresses(t *testing.T) {
	kb, _, sched := newKeyboard(false, false)

	var done time.Duration
	kb.SimulateKeyPresses("ab§c", func() {
		done = sched.Elapsed()
	})

	type expectation struct {
		at      time.Duration
		col     int
		row     int
		pressed bool
	}

	for _, e := range []expectation{
		{at: 0, col: colA, row: rowA, pressed: true},
		{at: 99 * time.Millisecond, col: colA, row: rowA, pressed: true},
		{at: 100 * time.Millisecond, col: colA, row: rowA, pressed: false},
		{at: 200 * time.Millisecond, col: colB, row: rowB, pressed: true},
		{at: 300 * time.Millisecond, col: colB, row: rowB, pressed: false},
		{at: 1399 * time.Millisecond, col: colC, row: rowC, pressed: false},
		{at: 1400 * time.Millisecond, col: colC, row: rowC, pressed: true},
		{at: 1500 * time.Millisecond, col: colC, row: rowC, pressed: false},
	} {
		sched.Advance(e.at - sched.Elapsed())
		test.ExpectEquality(t, kb.IsKeyDown(e.col, e.row), e.pressed, e.at)
		test.ExpectEquality(t, done, time.Duration(0), e.at)
	}

	sched.Advance(time.Second)
	test.ExpectEquality(t, done, 1600*time.Millisecond)
	test.ExpectEquality(t, sched.Pending(), 0)
}

func TestStopCancelsSimulation(t *testing.T) {
	kb, _, sched := newKeyboard(false, false)
	kb.Start()

	var done bool
	kb.SimulateKeyPresses("abc", func() {
		done = true
	})

	sched.Advance(50 * time.Millisecond)
	test.ExpectSuccess(t, kb.IsKeyDown(colA, rowA))

	kb.Stop()
	test.ExpectFailure(t, kb.IsKeyDown(colA, rowA))
	test.ExpectEquality(t, sched.Pending(), 0)

	sched.Advance(10 * time.Second)
	test.ExpectFailure(t, kb.IsKeyDown(colB, rowB))
	test.ExpectFailure(t, done)
}

func TestVirtualKeyPress(t *testing.T) {
	kb, _, sched := newKeyboard(false, false)

	// a modifier stays down
	kb.VirtualKeyPress(16)
	sched.Advance(time.Second)
	test.ExpectSuccess(t, kb.IsKeyDown(colShft, rowShft))

	// until the next key press has been held for the key press duration
	kb.VirtualKeyPress('A')
	test.ExpectSuccess(t, kb.IsKeyDown(colShft, rowShft))
	test.ExpectSuccess(t, kb.IsKeyDown(colA, rowA))

	sched.Advance(keyboard.KeyPressDuration)
	test.ExpectFailure(t, kb.IsKeyDown(colShft, rowShft))
	test.ExpectFailure(t, kb.IsKeyDown(colA, rowA))
}

func TestGamepad(t *testing.T) {
	kb, src, _ := newKeyboard(false, false)
	src.SetGamepadHandler(kb)

	// joysticks only accept input while the keyboard is running
	test.ExpectFailure(t, src.Gamepad(0, userinput.GamepadFire, true))

	kb.Start()
	test.ExpectSuccess(t, src.Gamepad(0, userinput.GamepadFire, true))
	test.ExpectSuccess(t, kb.IsKeyDown(keyboard.Joystick1Column, 3))
	test.ExpectSuccess(t, src.Gamepad(1, userinput.GamepadDown, true))
	test.ExpectSuccess(t, kb.IsKeyDown(keyboard.Joystick2Column, 6))
	test.ExpectFailure(t, src.Gamepad(2, userinput.GamepadDown, true))
}

func TestState(t *testing.T) {
	kb, src, _ := newKeyboard(false, false)
	kb.Start()

	src.KeyDown(keyEvent(t, "a"))
	src.KeyDown(keyEvent(t, "CapsLock"))
	kb.Paste("hello")
	kb.GetPasteCharCode()

	data, err := kb.GetState()
	test.DemandSuccess(t, err)

	rkb, rsrc, _ := newKeyboard(true, false)
	rkb.Start()
	test.ExpectEquality(t, rsrc.Listeners(userinput.ChanKeyPress), 1)

	test.DemandSuccess(t, rkb.RestoreState(data))
	test.ExpectSuccess(t, rkb.IsKeyDown(colA, rowA))
	test.ExpectFailure(t, rkb.IsAlphaLockDown())
	test.ExpectEquality(t, rkb.Layout(), keyboard.NativeLayout)
	test.ExpectEquality(t, rkb.GetPasteCharCode(), int('h'))

	// layout has changed so the listeners have been reattached
	test.ExpectEquality(t, rsrc.Listeners(userinput.ChanKeyPress), 0)
	test.ExpectEquality(t, rsrc.Listeners(userinput.ChanKeyDown), 1)

	test.ExpectFailure(t, rkb.RestoreState([]byte("not json")))
}

func TestRestorePasteIndex(t *testing.T) {
	kb, _, _ := newKeyboard(false, false)
	kb.Paste("AB")

	data, err := kb.GetState()
	test.DemandSuccess(t, err)

	var s keyboard.State
	test.DemandSuccess(t, json.Unmarshal(data, &s))

	// an index outside the paste buffer discards the buffer
	for _, idx := range []int{-1, 4, 99} {
		s.PasteIndex = idx
		data, err = json.Marshal(s)
		test.DemandSuccess(t, err)

		rkb, _, _ := newKeyboard(false, false)
		test.DemandSuccess(t, rkb.RestoreState(data))
		test.ExpectFailure(t, rkb.IsPasting())
		test.ExpectEquality(t, rkb.GetPasteCharCode(), keyboard.NoPasteChar)
	}

	// an index inside the buffer resumes the paste
	s.PasteIndex = 2
	data, err = json.Marshal(s)
	test.DemandSuccess(t, err)

	rkb, _, _ := newKeyboard(false, false)
	test.DemandSuccess(t, rkb.RestoreState(data))
	test.ExpectSuccess(t, rkb.IsPasting())
	test.ExpectEquality(t, rkb.GetPasteCharCode(), int('B'))
	test.ExpectEquality(t, rkb.GetPasteCharCode(), int('\r'))
	test.ExpectFailure(t, rkb.IsPasting())
}
