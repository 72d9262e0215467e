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

// Package hardware is the base package for the emulated console. The Console
// type assembles the components found in the sub-packages and drives them in
// real time.
//
// Time is provided by a scheduler.Scheduler. Once started, the Console runs
// one frame every 17ms. A frame is divided into scanlines and on each
// scanline the components are run in a fixed order:
//
//	video display -> processor -> GPU (if present and not idle) -> timer
//
// A breakpoint in either processor aborts the frame immediately and the
// breakpoint callback is called with the processor that stopped. It is the
// responsibility of the callback to stop the Console if that is required.
//
// None of the functions in this package are safe to call from more than one
// goroutine. The scheduler.Loop type runs all tasks and posted functions in
// a single goroutine and should be used to access the Console from other
// goroutines.
package hardware
