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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher99/logger"
	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/userinput"
)

// Layout describes how host key events are translated to the key matrix.
type Layout int

// List of valid Layout values.
const (
	// keys map to the key in the same physical position
	NativeLayout Layout = iota

	// characters map to the combination of keys that produce the same
	// character
	RemappedLayout
)

func (l Layout) String() string {
	switch l {
	case NativeLayout:
		return "native layout"
	case RemappedLayout:
		return "remapped layout"
	}
	return "unknown layout"
}

// ListenerState records whether a listener is attached to an event channel.
type ListenerState int

// List of valid ListenerState values.
const (
	Detached ListenerState = iota
	Attached
)

// EventSource is the source of host input events. The userinput.Dispatcher
// type satisfies this interface.
type EventSource interface {
	// AddListener returns a function that detaches the listener
	AddListener(ch userinput.Channel, l userinput.Listener) func()
}

type listener struct {
	state  ListenerState
	detach func()
}

// initial value of the joystick activity counter. the counter is reset to
// this value whenever a joystick column is read
const joystickActiveReset = 250

// Keyboard translates host input events into the key matrix of the emulated
// console. It also supports pasting text from the host clipboard and the
// typing of scripted key presses.
type Keyboard struct {
	src   EventSource
	sched scheduler.Scheduler

	pcKeyboardEnabled      bool
	mapArrowKeysToFctnSDEX bool
	emulateJoystick2       bool

	running   bool
	listeners [userinput.NumChannels]listener

	// the key matrix. a value of true means that the key is pressed
	matrix [NumColumns][NumRows]bool

	joystick1 *Joystick
	joystick2 *Joystick

	// see IsKeyDown()
	joystickActive int

	// retained for compatibility with older snapshots. never changes except
	// on reset
	keyCode int

	alphaLock bool

	// a nil pasteBuffer means there is nothing being pasted
	pasteBuffer *string
	pasteIndex  int

	// the fctn chord cell for arrow keys that were remapped when they were
	// pressed. the chord is released when the arrow key is released
	arrowChords map[string]Cell

	// one-shot tasks created by the key simulation functions and the keys
	// currently held down by them
	pending   map[*scheduler.Task]bool
	simulated map[int]bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. The keyboard is reset but not started.
func NewKeyboard(src EventSource, sched scheduler.Scheduler, pcKeyboardEnabled bool, mapArrowKeys bool) *Keyboard {
	kb := &Keyboard{
		src:                    src,
		sched:                  sched,
		pcKeyboardEnabled:      pcKeyboardEnabled,
		mapArrowKeysToFctnSDEX: mapArrowKeys,
		arrowChords:            make(map[string]Cell),
		pending:                make(map[*scheduler.Task]bool),
		simulated:              make(map[int]bool),
	}
	kb.joystick1 = newJoystick(&kb.matrix[Joystick1Column], 0)
	kb.joystick2 = newJoystick(&kb.matrix[Joystick2Column], 1)
	kb.Reset()
	return kb
}

func (kb *Keyboard) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: alpha lock=%v joystick activity=%d", kb.Layout(), kb.alphaLock, kb.joystickActive))
	for col := range kb.matrix {
		for row := firstRow; row <= lastRow; row++ {
			if kb.matrix[col][row] {
				s.WriteString(fmt.Sprintf(" [%d,%d]", col, row))
			}
		}
	}
	return s.String()
}

// Reset the key matrix and all input state.
func (kb *Keyboard) Reset() {
	for col := 0; col < 8; col++ {
		for row := firstRow; row <= lastRow; row++ {
			kb.matrix[col][row] = false
		}
	}
	clear(kb.arrowChords)
	kb.joystickActive = joystickActiveReset
	kb.keyCode = 0
	kb.alphaLock = true
	kb.pasteBuffer = nil
	kb.pasteIndex = 0
}

// Start listening for host input events. Has no effect if the keyboard is
// already running.
func (kb *Keyboard) Start() {
	if kb.running {
		return
	}
	kb.attachListeners()
	kb.joystick1.Start()
	kb.joystick2.Start()
	kb.running = true
	logger.Logf(logger.Allow, "keyboard", "started (%s)", kb.Layout())
}

// Stop listening for host input events. Any pending simulated key presses
// are cancelled and the keys they were holding are released.
func (kb *Keyboard) Stop() {
	kb.cancelSimulation()
	if !kb.running {
		return
	}
	kb.removeListeners()
	kb.joystick1.Stop()
	kb.joystick2.Stop()
	kb.running = false
	logger.Log(logger.Allow, "keyboard", "stopped")
}

// IsRunning returns true if the keyboard is listening for host input events.
func (kb *Keyboard) IsRunning() bool {
	return kb.running
}

// Layout returns the current keyboard layout.
func (kb *Keyboard) Layout() Layout {
	if kb.pcKeyboardEnabled {
		return RemappedLayout
	}
	return NativeLayout
}

// Listener returns the attachment state of the event channel.
func (kb *Keyboard) Listener(ch userinput.Channel) ListenerState {
	return kb.listeners[ch].state
}

func (kb *Keyboard) attach(ch userinput.Channel, l userinput.Listener) {
	if kb.listeners[ch].state == Attached {
		return
	}
	kb.listeners[ch] = listener{
		state:  Attached,
		detach: kb.src.AddListener(ch, l),
	}
}

func (kb *Keyboard) attachListeners() {
	if kb.pcKeyboardEnabled {
		kb.attach(userinput.ChanKeyDown, func(ev userinput.Event) bool {
			return kb.keyEventPC(ev, true)
		})
		kb.attach(userinput.ChanKeyPress, kb.keyPressEvent)
		kb.attach(userinput.ChanKeyUp, func(ev userinput.Event) bool {
			return kb.keyEventPC(ev, false)
		})
	} else {
		kb.attach(userinput.ChanKeyDown, func(ev userinput.Event) bool {
			return kb.keyEvent(ev, true)
		})
		kb.attach(userinput.ChanKeyUp, func(ev userinput.Event) bool {
			return kb.keyEvent(ev, false)
		})
	}
	kb.attach(userinput.ChanPaste, func(ev userinput.Event) bool {
		kb.Paste(ev.Text)
		return true
	})
}

func (kb *Keyboard) removeListeners() {
	for ch := range kb.listeners {
		if kb.listeners[ch].state == Attached {
			kb.listeners[ch].detach()
		}
		kb.listeners[ch] = listener{}
	}
}

// restart stops the keyboard if it is running, resets it and then starts it
// again if it was running
func (kb *Keyboard) restart() {
	wasRunning := kb.running
	if wasRunning {
		kb.Stop()
	}
	kb.Reset()
	if wasRunning {
		kb.Start()
	}
}

// SetPCKeyboardEnabled selects the remapped layout if enabled is true and
// the native layout otherwise. The keyboard is reset.
func (kb *Keyboard) SetPCKeyboardEnabled(enabled bool) {
	kb.pcKeyboardEnabled = enabled
	kb.restart()
}

// SetMapArrowKeysToFctnSDEXEnabled sets whether the arrow keys produce the
// fctn+S/D/E/X key combinations when the emulated software is not reading
// the joystick. The keyboard is reset.
func (kb *Keyboard) SetMapArrowKeysToFctnSDEXEnabled(enabled bool) {
	kb.mapArrowKeysToFctnSDEX = enabled
	kb.restart()
}

// SetEmulateJoystick2 sets whether the tab and arrow keys also operate the
// second joystick.
func (kb *Keyboard) SetEmulateJoystick2(enabled bool) {
	kb.emulateJoystick2 = enabled
}

// host shortcuts are left for the host to handle: ctrl+shift+I, ctrl+C and
// ctrl+V
func (kb *Keyboard) hostShortcut() bool {
	m := &kb.matrix
	return (m[0][8] && m[0][9] && m[2][5]) ||
		(m[0][9] && m[2][10]) ||
		(m[0][9] && m[3][10])
}

func (kb *Keyboard) set(cells []Cell, down bool) {
	for _, c := range cells {
		kb.matrix[c.Col][c.Row] = down
	}
}

// keyEvent handles events for the native layout. returns true if the event
// has been consumed
func (kb *Keyboard) keyEvent(ev userinput.Event, down bool) bool {
	var k *key
	if ev.Code != "" {
		k = native.byCode[ev.Code]
	} else if ev.KeyCode != 0 {
		k = native.byKeyCode[ev.KeyCode]
	}

	if k == nil {
		return false
	}

	kb.set(k.cells, down)
	kb.handleOtherKeys(k.name, down)

	return !kb.hostShortcut()
}

// keyEventPC handles events for the remapped layout. returns true if the
// event has been consumed
func (kb *Keyboard) keyEventPC(ev userinput.Event, down bool) bool {
	k := remapped[ev.Key]
	if k == nil {
		return false
	}

	fctn := kb.matrix[cellFctn.Col][cellFctn.Row]
	kb.set([]Cell{cellFctn, cellShift, cellCtrl}, false)
	kb.set(k.cells, down)
	kb.handleOtherKeys(k.name, down)

	// fctn held with S/D/E/X
	if fctn {
		switch strings.ToLower(k.name) {
		case "s", "d", "e", "x":
			kb.matrix[cellFctn.Col][cellFctn.Row] = true
		}
	}

	return !kb.hostShortcut()
}

// the key press channel is attached in the remapped layout but characters are
// handled by keyEventPC()
func (kb *Keyboard) keyPressEvent(_ userinput.Event) bool {
	return false
}

// handleOtherKeys deals with the keys that have an effect beyond the matrix
// cells in the key tables. the name argument is the name of the key in the
// key table
func (kb *Keyboard) handleOtherKeys(name string, down bool) {
	switch name {
	case "Tab":
		if kb.emulateJoystick2 {
			kb.matrix[Joystick2Column][rowFire] = down
		}
	case "ArrowLeft":
		kb.arrowKey(name, rowLeft, cell('S'), down)
	case "ArrowRight":
		kb.arrowKey(name, rowRight, cell('D'), down)
	case "ArrowDown":
		kb.arrowKey(name, rowDown, cell('X'), down)
	case "ArrowUp":
		kb.arrowKey(name, rowUp, cell('E'), down)
	case "CapsLock":
		if down {
			kb.alphaLock = !kb.alphaLock
		}
	}
}

// arrowKey operates the second joystick if required and produces the fctn
// chord when the software is not reading the joystick. the chord replaces the
// joystick one cell set by the key table
func (kb *Keyboard) arrowKey(name string, row int, chord Cell, down bool) {
	if kb.emulateJoystick2 {
		kb.matrix[Joystick2Column][row] = down
	}

	if down {
		if kb.mapArrowKeysToFctnSDEX && kb.joystickActive == 0 {
			kb.matrix[Joystick1Column][row] = false
			kb.set([]Cell{cellFctn, chord}, true)
			kb.arrowChords[name] = chord
		}
		return
	}

	if c, ok := kb.arrowChords[name]; ok {
		kb.set([]Cell{cellFctn, c}, false)
		delete(kb.arrowChords, name)
	}
}

// IsKeyDown returns the state of a cell in the key matrix.
//
// Reading a joystick column sets the joystick activity counter to its
// maximum value. Reading any other column decreases the counter, to a
// minimum of zero. The arrow keys only produce the fctn chords when the
// counter is zero, meaning that the software is reading the keyboard and not
// the joystick.
func (kb *Keyboard) IsKeyDown(col int, row int) bool {
	if col == Joystick1Column || col == Joystick2Column {
		kb.joystickActive = joystickActiveReset
	} else if kb.joystickActive > 0 {
		kb.joystickActive--
	}

	if col < 0 || col >= NumColumns || row < 0 || row >= NumRows {
		return false
	}
	return kb.matrix[col][row]
}

// JoystickActivity returns the current value of the joystick activity
// counter.
func (kb *Keyboard) JoystickActivity() int {
	return kb.joystickActive
}

// IsAlphaLockDown returns the state of the alpha lock key.
func (kb *Keyboard) IsAlphaLockDown() bool {
	return kb.alphaLock
}

// Joystick returns the joystick for the player. Player is zero indexed.
// Returns nil for an invalid player.
func (kb *Keyboard) Joystick(player int) *Joystick {
	switch player {
	case 0:
		return kb.joystick1
	case 1:
		return kb.joystick2
	}
	return nil
}

// HandleGamepad implements the userinput.HandleGamepad interface.
func (kb *Keyboard) HandleGamepad(player int, action userinput.GamepadAction, down bool) bool {
	joy := kb.Joystick(player)
	if joy == nil {
		return false
	}
	return joy.Handle(action, down)
}
