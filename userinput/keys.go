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
	"fmt"
	"strings"
)

// named keys. the key is the DOM key value. SDL names are aliases
var namedKeys = map[string]Event{
	"Enter":      {Code: "Enter", KeyCode: 13, Key: "Enter"},
	"Backspace":  {Code: "Backspace", KeyCode: 8, Key: "Backspace"},
	"Tab":        {Code: "Tab", KeyCode: 9, Key: "Tab"},
	"CapsLock":   {Code: "CapsLock", KeyCode: 20, Key: "CapsLock"},
	"Escape":     {Code: "Escape", KeyCode: 27, Key: "Escape"},
	"ArrowLeft":  {Code: "ArrowLeft", KeyCode: 37, Key: "ArrowLeft"},
	"ArrowUp":    {Code: "ArrowUp", KeyCode: 38, Key: "ArrowUp"},
	"ArrowRight": {Code: "ArrowRight", KeyCode: 39, Key: "ArrowRight"},
	"ArrowDown":  {Code: "ArrowDown", KeyCode: 40, Key: "ArrowDown"},
	"Insert":     {Code: "Insert", KeyCode: 45, Key: "Insert"},
	"Delete":     {Code: "Delete", KeyCode: 46, Key: "Delete"},
	"Shift":      {Code: "ShiftLeft", KeyCode: 16, Key: "Shift"},
	"Control":    {Code: "ControlLeft", KeyCode: 17, Key: "Control"},
	"Alt":        {Code: "AltLeft", KeyCode: 18, Key: "Alt"},
}

var aliases = map[string]string{
	"Return":      "Enter",
	"Left":        "ArrowLeft",
	"Up":          "ArrowUp",
	"Right":       "ArrowRight",
	"Down":        "ArrowDown",
	"Left Shift":  "Shift",
	"Right Shift": "Shift",
	"Left Ctrl":   "Control",
	"Right Ctrl":  "Control",
	"Left Alt":    "Alt",
	"Right Alt":   "Alt",
	"Space":       " ",
}

// punctuation keys on a US layout. the unshifted character is the key
var punctuation = map[rune]Event{
	' ':  {Code: "Space", KeyCode: 32},
	'.':  {Code: "Period", KeyCode: 190},
	',':  {Code: "Comma", KeyCode: 188},
	'/':  {Code: "Slash", KeyCode: 191},
	';':  {Code: "Semicolon", KeyCode: 186},
	'=':  {Code: "Equal", KeyCode: 187},
	'-':  {Code: "Minus", KeyCode: 189},
	'\'': {Code: "Quote", KeyCode: 222},
	'[':  {Code: "BracketLeft", KeyCode: 219},
	']':  {Code: "BracketRight", KeyCode: 221},
	'\\': {Code: "Backslash", KeyCode: 220},
	'`':  {Code: "Backquote", KeyCode: 192},
}

// shifted characters on a US layout and the unshifted character on the same
// physical key
var shifted = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '<': ',', '>': '.', '?': '/',
	'~': '`',
}

// KeyEvent returns a complete Event for the named key. The name can be a
// single character, a DOM key name (eg. "ArrowLeft") or an SDL key name (eg.
// "Left"). Function keys are named "F1" to "F12".
//
// For characters the Key field of the returned event is the character itself,
// preserving case. The Code and KeyCode fields describe the physical key on a
// US layout keyboard.
func KeyEvent(name string) (Event, error) {
	if a, ok := aliases[name]; ok {
		name = a
	}

	if ev, ok := namedKeys[name]; ok {
		return ev, nil
	}

	var fn int
	if n, _ := fmt.Sscanf(name, "F%d", &fn); n == 1 && fn >= 1 && fn <= 12 && name == fmt.Sprintf("F%d", fn) {
		return Event{Code: name, KeyCode: 111 + fn, Key: name}, nil
	}

	r := []rune(name)
	if len(r) != 1 {
		return Event{}, fmt.Errorf("userinput: unknown key name (%s)", name)
	}

	return CharEvent(r[0])
}

// CharEvent returns a complete Event for a character.
func CharEvent(c rune) (Event, error) {
	base := c
	if s, ok := shifted[c]; ok {
		base = s
	}

	switch {
	case base >= 'a' && base <= 'z':
		u := strings.ToUpper(string(base))
		return Event{Code: "Key" + u, KeyCode: int(u[0]), Key: string(c)}, nil
	case base >= 'A' && base <= 'Z':
		return Event{Code: "Key" + string(base), KeyCode: int(base), Key: string(c)}, nil
	case base >= '0' && base <= '9':
		return Event{Code: "Digit" + string(base), KeyCode: int(base), Key: string(c)}, nil
	}

	if p, ok := punctuation[base]; ok {
		p.Key = string(c)
		return p, nil
	}

	return Event{}, fmt.Errorf("userinput: no key for character (%q)", c)
}
