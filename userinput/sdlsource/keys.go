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


package sdlsource

import "strings"

// SDL key names that have no equivalent in the userinput package
var sdlNames = map[string]string{
	"Keypad Enter": "Enter",
	"Left GUI":     "",
	"Right GUI":    "",
}

// eventName converts an SDL key name to a name accepted by
// userinput.KeyEvent(). An empty string means the key should be ignored.
//
// SDL names letter keys with an upper case letter regardless of the shift
// state so the case is normalised here.
func eventName(sdlName string, shift bool) string {
	if n, ok := sdlNames[sdlName]; ok {
		return n
	}

	if len(sdlName) == 1 {
		c := sdlName[0]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
			if shift {
				return strings.ToUpper(sdlName)
			}
			return strings.ToLower(sdlName)
		}
	}

	return sdlName
}
