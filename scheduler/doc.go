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

// Package scheduler runs the callbacks that pace the emulation. It replaces
// ambient timers with tasks that can be explicitly cancelled.
//
// Every() schedules a periodic task and After() schedules a one-shot task.
// Both return a *Task that can be cancelled with Cancel(). Once Cancel() has
// returned the task will not run again.
//
// There are two implementations of the Scheduler interface. The Loop type
// runs tasks in real-time in a single goroutine (see Loop.Run()). Because all
// tasks run in that one goroutine, emulation state touched only by tasks
// needs no further synchronisation. Other goroutines should use Post() to
// have a function run in the loop.
//
// The Virtual type has a clock that only advances when the Advance() function
// is called. It is useful for testing and for running the emulation faster
// than real-time.
package scheduler
