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


// Package sdlsource opens an SDL window that displays the image produced by
// the VDP and converts keyboard events from the window into userinput events.
//
// SDL requires that the window is serviced from the main thread. The Run()
// function should therefore be called from the main goroutine, with the
// emulation running in another goroutine. Events are forwarded to the
// emulation by posting functions to the scheduler.
package sdlsource
