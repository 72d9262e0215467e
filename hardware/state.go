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

package hardware

// State of the Console.
type State int

// List of possible states.
//
// Constructed is the state before the Console has been reset for the first
// time. BreakpointHalted is entered when a processor reaches a breakpoint and
// is left when the Console is started, stopped or reset, or when a frame run
// directly on a stopped Console completes.
const (
	Constructed State = iota
	Idle
	Running
	BreakpointHalted
)

func (s State) String() string {
	switch s {
	case Constructed:
		return "Constructed"
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case BreakpointHalted:
		return "BreakpointHalted"
	}

	return ""
}
