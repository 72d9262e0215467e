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

// Package userinput handles input from the real hardware that the user of the
// emulator is using to control the emulated console.
//
// It can be thought of as a translation layer between the front end in use
// (terminal or SDL window) and the emulated keyboard. Front ends translate
// their own events into the Event type and send them to a Dispatcher. The
// emulated keyboard attaches listeners to the Dispatcher for the channels it
// is interested in.
//
// Events are described with the conventions of the DOM KeyboardEvent: a
// physical key Code (eg. "KeyA"), a legacy numeric KeyCode (eg. 65) and a Key
// value that reflects the character produced (eg. "a" or "A"). Front ends
// should fill in as many of these fields as they can. The KeyEvent() function
// builds a complete Event from a key name.
//
// The SDL window was the front end in use during development and so there
// will be a bias towards that system.
package userinput
