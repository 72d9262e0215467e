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


package debugger

// commandList is the order in which commands are listed by HELP
var commandList = []string{
	cmdRun, cmdFast, cmdStop, cmdStep, cmdOver, cmdFrames, cmdReset, cmdStatus,
	cmdBreak, cmdClear, cmdPeek, cmdPoke,
	cmdSave, cmdLoad, cmdGraph,
	cmdInsert, cmdTape, cmdDisk, cmdKeys, cmdPaste,
	cmdLog, cmdHelp, cmdQuit,
}

var help = map[string]string{
	cmdRun:    "Run the console at normal speed",
	cmdFast:   "Run the console as quickly as possible",
	cmdStop:   "Stop the console and show the processor status",
	cmdStep:   "Execute a single instruction of the active processor. An empty line is the same as STEP",
	cmdOver:   "Run until the instruction after the current one is reached",
	cmdFrames: "Stop the console after the specified number of frames. A value of zero removes the limit. Without an argument the current frame number is shown",
	cmdReset:  "Reset the console. Software in the cartridge port is removed",
	cmdStatus: "Show the state of the console and the status of the active processor",
	cmdBreak:  "Set a breakpoint at the specified address. Without an argument the list of breakpoints is shown",
	cmdClear:  "Clear the breakpoint at the specified address. Without an argument all breakpoints are cleared",
	cmdPeek:   "Show the byte at the specified address",
	cmdPoke:   "Write a byte to the specified address",
	cmdSave:   "Save the state of the console to the named file. Without a filename a unique name based on the loaded software is used",
	cmdLoad:   "Restore the state of the console from the named file",
	cmdGraph:  "Write a graphviz description of a component to the named file. Components are CPU, VDP, CRU, KEYBOARD, PSG, SPEECH and TAPE",
	cmdInsert: "Load software from a file or URL. Archives are unpacked",
	cmdTape:   "Load a WAV or MP3 recording into the cassette player. Without an argument the tape is ejected",
	cmdDisk:   "Insert a disk image into a drive (DISK 1 filename). Without a filename the disk is ejected. Without any arguments the drives are listed",
	cmdKeys:   "Type the remainder of the line on the keyboard",
	cmdPaste:  "Paste the remainder of the line into the keyboard scanning routine",
	cmdLog:    "Show the log. An optional argument limits the output to the most recent entries",
	cmdHelp:   "List commands or show help for the named command",
	cmdQuit:   "Quit the debugger",
}
