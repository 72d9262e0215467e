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

	"github.com/jetsetilly/gopher99/curated"
)

// State is the serialisable state of the Keyboard.
type State struct {
	PCKeyboardEnabled      bool                      `json:"pcKeyboardEnabled"`
	MapArrowKeysToFctnSDEX bool                      `json:"mapArrowKeysToFctnSDEX"`
	Columns                [NumColumns][NumRows]bool `json:"columns"`
	JoystickActive         int                       `json:"joystickActive"`
	KeyCode                int                       `json:"keyCode"`
	AlphaLock              bool                      `json:"alphaLock"`
	PasteBuffer            *string                   `json:"pasteBuffer"`
	PasteIndex             int                       `json:"pasteIndex"`
	Joystick1              json.RawMessage           `json:"joystick1,omitempty"`
	Joystick2              json.RawMessage           `json:"joystick2,omitempty"`
}

// GetState returns the serialised state of the keyboard.
func (kb *Keyboard) GetState() (json.RawMessage, error) {
	s := State{
		PCKeyboardEnabled:      kb.pcKeyboardEnabled,
		MapArrowKeysToFctnSDEX: kb.mapArrowKeysToFctnSDEX,
		Columns:                kb.matrix,
		JoystickActive:         kb.joystickActive,
		KeyCode:                kb.keyCode,
		AlphaLock:              kb.alphaLock,
		PasteIndex:             kb.pasteIndex,
	}

	if kb.pasteBuffer != nil {
		p := *kb.pasteBuffer
		s.PasteBuffer = &p
	}

	var err error
	s.Joystick1, err = kb.joystick1.GetState()
	if err != nil {
		return nil, curated.Errorf("keyboard: %v", err)
	}
	s.Joystick2, err = kb.joystick2.GetState()
	if err != nil {
		return nil, curated.Errorf("keyboard: %v", err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, curated.Errorf("keyboard: %v", err)
	}
	return data, nil
}

// RestoreState from data returned by GetState(). If the layout in the
// restored state differs from the current layout and the keyboard is running,
// the listeners are reattached for the new layout.
func (kb *Keyboard) RestoreState(data json.RawMessage) error {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf("keyboard: %v", err)
	}

	wasRunning := kb.running
	relisten := wasRunning && s.PCKeyboardEnabled != kb.pcKeyboardEnabled
	if relisten {
		kb.Stop()
	}

	kb.pcKeyboardEnabled = s.PCKeyboardEnabled
	kb.mapArrowKeysToFctnSDEX = s.MapArrowKeysToFctnSDEX
	kb.matrix = s.Columns
	kb.joystickActive = max(0, min(joystickActiveReset, s.JoystickActive))
	kb.keyCode = s.KeyCode
	kb.alphaLock = s.AlphaLock
	kb.pasteBuffer = s.PasteBuffer
	kb.pasteIndex = 0
	if kb.pasteBuffer != nil {
		if s.PasteIndex < 0 || s.PasteIndex >= len(*kb.pasteBuffer) {
			kb.pasteBuffer = nil
		} else {
			kb.pasteIndex = s.PasteIndex
		}
	}
	clear(kb.arrowChords)

	if len(s.Joystick1) > 0 {
		if err := kb.joystick1.RestoreState(s.Joystick1); err != nil {
			return curated.Errorf("keyboard: %v", err)
		}
	}
	if len(s.Joystick2) > 0 {
		if err := kb.joystick2.RestoreState(s.Joystick2); err != nil {
			return curated.Errorf("keyboard: %v", err)
		}
	}

	if relisten {
		kb.Start()
	}

	return nil
}
