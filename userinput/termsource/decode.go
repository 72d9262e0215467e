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

package termsource

// Action is the result of decoding terminal input.
type Action struct {
	// name of the key as understood by userinput.KeyEvent()
	Key string

	// the host clipboard should be pasted
	Paste bool

	// input should stop
	Quit bool
}

// control characters with special meaning
const (
	keyInterrupt = 0x03
	keyPaste     = 0x16
	keyTab       = 0x09
	keyReturn    = 0x0d
	keyNewline   = 0x0a
	keyBackspace = 0x08
	keyDelete    = 0x7f
	keyEsc       = 0x1b
)

// cursor keys follow the ESC [ sequence
var cursorKeys = map[byte]string{
	'A': "ArrowUp",
	'B': "ArrowDown",
	'C': "ArrowRight",
	'D': "ArrowLeft",
}

// Decode the bytes read from the terminal. Bytes that have no meaning are
// discarded. An incomplete escape sequence at the end of the input is
// returned as the remainder and should be prepended to the next read.
func Decode(b []byte) (actions []Action, remainder []byte) {
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch c {
		case keyInterrupt:
			actions = append(actions, Action{Quit: true})
		case keyPaste:
			actions = append(actions, Action{Paste: true})
		case keyTab:
			actions = append(actions, Action{Key: "Tab"})
		case keyReturn, keyNewline:
			actions = append(actions, Action{Key: "Enter"})
		case keyBackspace, keyDelete:
			actions = append(actions, Action{Key: "Backspace"})
		case keyEsc:
			if i+1 >= len(b) {
				return actions, b[i:]
			}
			if b[i+1] != '[' {
				actions = append(actions, Action{Key: "Escape"})
				continue
			}
			if i+2 >= len(b) {
				return actions, b[i:]
			}
			if k, ok := cursorKeys[b[i+2]]; ok {
				actions = append(actions, Action{Key: k})
			}
			i += 2
		default:
			if c >= 0x20 && c < 0x7f {
				actions = append(actions, Action{Key: string(rune(c))})
			}
		}
	}
	return actions, nil
}
