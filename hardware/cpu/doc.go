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

// Package cpu defines the ExecutionUnit interface, the contract through which
// the console drives its processors. The primary processor and the optional
// graphics coprocessor are both ExecutionUnits and the console treats them
// identically.
//
// The Processor type is an ExecutionUnit that manages everything except the
// decoding and execution of instructions: cycle accounting, breakpoints,
// suspension, the idle state of a coprocessor, profiling and state
// serialisation. Instructions are executed by an InstructionSet, which is
// plugged into the Processor when it is created.
//
// The NopInstructionSet treats every word in memory as a no-operation. It is
// useful for exercising the console without a full interpreter.
package cpu
