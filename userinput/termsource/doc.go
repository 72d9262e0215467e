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

// Package termsource reads the keyboard of a terminal in raw mode and
// dispatches what is typed as userinput events.
//
// A terminal reports characters, not key presses and releases. Each
// character is turned into a key down event followed, a short time later, by
// a key up event. Escape sequences for the cursor keys are recognised.
//
// Ctrl+V pastes the text in the host clipboard and Ctrl+C ends input. Tab
// is sent as the Tab key.
package termsource
