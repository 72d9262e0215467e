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

// Package keyboard emulates the key matrix of the console. The matrix is a
// grid of columns and rows. Each cell is true while the key at that position
// is held down. Software running on the emulated console reads the matrix,
// one column at a time, through the CRU.
//
// Host key events are translated to matrix cells with one of two layouts.
// The NativeLayout maps each physical key to the key in the same position on
// the emulated keyboard. The RemappedLayout maps the character produced by a
// key to the combination of keys that produces the same character on the
// emulated keyboard (eg. the double quote character is fctn+P).
//
// Columns six and seven of the matrix are the two joysticks. The arrow keys
// and the tab key operate the first joystick. Because software that reads
// the keyboard also expects the arrow keys to produce the fctn+S/D/E/X
// combinations, the keyboard keeps a count of how recently the joystick
// columns were read (see IsKeyDown()). The arrow keys can be configured to
// produce the fctn combinations when the joystick is not being read.
//
// Text can be pasted into the emulation with Paste(). The text is read one
// character at a time with GetPasteCharCode(). Scripted key presses are typed
// with SimulateKeyPresses().
//
// The keyboard is not safe for concurrent use. All functions should be called
// from the same goroutine as the scheduler callbacks.
package keyboard
