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

package cpu

// NopInstructionSet executes every word in memory as a no-operation taking
// ten cycles.
type NopInstructionSet struct{}

// nop is the same length as a JMP instruction on the TMS9900
const nopCycles = 10

// Execute implements the InstructionSet interface.
func (NopInstructionSet) Execute(regs *Registers, _ Memory, _ CRU) int {
	regs.PC += 2
	return nopCycles
}

// Reset implements the InstructionSet interface.
func (NopInstructionSet) Reset(regs *Registers) {
	*regs = Registers{}
}

// Name implements the InstructionSet interface.
func (NopInstructionSet) Name() string {
	return "NOP"
}
