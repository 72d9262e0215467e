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


// Package debugger implements a line based monitor for the console. Commands
// control the running of the emulation, set breakpoints, save and restore
// state and load software, tapes and disks.
//
// The console is owned by the goroutine running the scheduler. The
// Debugger.Run() function reads input on the calling goroutine and posts each
// command to the scheduler, waiting for it to complete before reading the
// next line. ParseInput() can be called directly when the caller is already
// on the scheduler's goroutine.
//
// Commands are case insensitive. Addresses are hexadecimal and can be written
// with a leading '>', '$' or "0x". The HELP command lists every command.
package debugger
