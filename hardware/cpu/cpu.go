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

import (
	"encoding/json"
	"fmt"
)

// ExecutionUnit is implemented by any processor that can be driven by the
// console.
type ExecutionUnit interface {
	Reset()

	// Run the processor for the number of cycles. Returns the difference
	// between the number of cycles consumed and the number requested. A
	// positive value means the processor overran and the caller should carry
	// the excess into the next accounting window
	Run(cycles int) int

	PC() uint16
	SetPC(pc uint16)
	SetWP(wp uint16)

	IsSuspended() bool
	SetSuspended(suspended bool)

	// IsIdle is always false for a primary processor
	IsIdle() bool

	// AtBreakpoint returns true if the most recent call to Run() stopped
	// because of a breakpoint
	AtBreakpoint() bool

	// a transient breakpoint. used to run until the instruction after the
	// current one
	SetRunTo(addr uint16)
	ClearRunTo()

	GetState() (json.RawMessage, error)
	RestoreState(data json.RawMessage) error

	// DumpProfile writes a summary of where time has been spent since the
	// last dump to the log
	DumpProfile()

	InternalRegsString() string
	RegsStringFormatted() string
}

// Memory is the address space seen by a processor.
type Memory interface {
	ReadWord(addr uint16) uint16
	WriteWord(addr uint16, data uint16)
}

// CRU is the bit addressable I/O space seen by a processor.
type CRU interface {
	ReadBit(addr uint16) bool
	WriteBit(addr uint16, value bool)
}

// Registers of a processor. The general purpose registers are in memory
// starting at the address in WP.
type Registers struct {
	PC uint16 `json:"pc"`
	WP uint16 `json:"wp"`
	ST uint16 `json:"st"`

	// set by a coprocessor instruction set when the coprocessor has nothing
	// to do. the Processor stops running when Idle becomes true
	Idle bool `json:"idle"`
}

func (r Registers) String() string {
	return fmt.Sprintf("PC:>%04X WP:>%04X ST:>%04X", r.PC, r.WP, r.ST)
}

// InstructionSet decodes and executes instructions.
type InstructionSet interface {
	// Execute the instruction at the PC. Returns the number of cycles taken
	Execute(regs *Registers, mem Memory, cru CRU) int

	// Reset the registers to their power-on values
	Reset(regs *Registers)

	// Name of the processor implemented by the instruction set
	Name() string
}
