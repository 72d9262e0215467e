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
	"encoding/json"
	"fmt"

	"github.com/jetsetilly/gopher99/userinput"
)

// Joystick is a view of one of the joystick columns in the key matrix. Input
// from a host gamepad is only accepted while the joystick is running.
type Joystick struct {
	column *[NumRows]bool
	index  int

	running bool
}

// JoystickState is the serialisable state of a Joystick.
type JoystickState struct {
	Index   int  `json:"index"`
	Running bool `json:"running"`
}

func newJoystick(column *[NumRows]bool, index int) *Joystick {
	return &Joystick{
		column: column,
		index:  index,
	}
}

func (joy *Joystick) String() string {
	var s = []byte("-----")
	for i, r := range []int{rowLeft, rowRight, rowUp, rowDown, rowFire} {
		if joy.column[r] {
			s[i] = "LRUDF"[i]
		}
	}
	return fmt.Sprintf("joystick %d: %s", joy.index+1, s)
}

// Start accepting input from the host gamepad.
func (joy *Joystick) Start() {
	joy.running = true
}

// Stop accepting input from the host gamepad.
func (joy *Joystick) Stop() {
	joy.running = false
}

// IsRunning returns true if the joystick is accepting input.
func (joy *Joystick) IsRunning() bool {
	return joy.running
}

// Handle input from a host gamepad. Returns false if the joystick is not
// running.
func (joy *Joystick) Handle(action userinput.GamepadAction, down bool) bool {
	if !joy.running {
		return false
	}

	switch action {
	case userinput.GamepadFire:
		joy.column[rowFire] = down
	case userinput.GamepadLeft:
		joy.column[rowLeft] = down
	case userinput.GamepadRight:
		joy.column[rowRight] = down
	case userinput.GamepadDown:
		joy.column[rowDown] = down
	case userinput.GamepadUp:
		joy.column[rowUp] = down
	default:
		return false
	}

	return true
}

// GetState returns the serialised state of the joystick.
func (joy *Joystick) GetState() (json.RawMessage, error) {
	return json.Marshal(JoystickState{
		Index:   joy.index,
		Running: joy.running,
	})
}

// RestoreState from data returned by GetState(). The column the joystick is
// bound to is not changed.
func (joy *Joystick) RestoreState(data json.RawMessage) error {
	var s JoystickState
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	joy.running = s.Running
	return nil
}
