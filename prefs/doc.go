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

// Package prefs facilitates the storage of preferential values in the Gopher99
// system. It is the configuration layer for the emulator.
//
// The live value types (Bool, Int, Float and String) can be read and written
// from any goroutine. Callbacks can be attached with SetHookPre() and
// SetHookPost() so that changing a value has an immediate effect on the
// emulation. For example, changing the keyboard layout preference while the
// console is running switches the keyboard mode.
//
// The Disk type associates values with a key and saves/loads them to a file.
// The file is a simple list of "key :: value" lines preceded by the
// WarningBoilerPlate line.
//
// Values can also be specified on the command line with the command line
// stack. A string of the form "key::value; key::value" is pushed onto the
// stack with PushCommandLineStack() and is consumed by Disk.Add().
package prefs
