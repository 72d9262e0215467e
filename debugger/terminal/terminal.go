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


package terminal

// Style is used to hint at how a line of output should be presented.
type Style int

// List of valid output styles.
const (
	// echo of the user's input
	StyleEcho Style = iota

	// information about the emulation in response to a command
	StyleFeedback

	// output of the HELP command
	StyleHelp

	// the state of the processor. the output of the STEP and STATUS commands
	StyleCPUStep

	// notification of an emulation event. for example, a breakpoint
	StyleEmulatorEvent

	// error messages are always printed
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a single line of input without the line ending. An
	// io.EOF error means there will be no more input.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction. Instances that don't expect user intervention should return
	// false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()

	// Silence all output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is true.
	Silence(silenced bool)
}
