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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher99/hardware/cpu"
	"github.com/jetsetilly/gopher99/test"
)

type flatMemory [0x8000]uint16

func (m *flatMemory) ReadWord(addr uint16) uint16 {
	return m[addr>>1]
}

func (m *flatMemory) WriteWord(addr uint16, data uint16) {
	m[addr>>1] = data
}

type nullCRU struct{}

func (nullCRU) ReadBit(_ uint16) bool {
	return false
}

func (nullCRU) WriteBit(_ uint16, _ bool) {
}

// idleAt is an instruction set that behaves like the NOP instruction set but
// sets the idle flag when the PC reaches a specific address
type idleAt struct {
	cpu.NopInstructionSet
	addr uint16
}

func (is idleAt) Execute(regs *cpu.Registers, mem cpu.Memory, cru cpu.CRU) int {
	n := is.NopInstructionSet.Execute(regs, mem, cru)
	if regs.PC == is.addr {
		regs.Idle = true
	}
	return n
}

func TestRunOverrun(t *testing.T) {
	p := cpu.NewProcessor(cpu.NopInstructionSet{}, &flatMemory{}, nullCRU{})

	// 25 cycles requires three instructions of ten cycles
	test.ExpectEquality(t, p.Run(25), 5)
	test.ExpectEquality(t, p.PC(), 6)
	test.ExpectEquality(t, p.Cycles(), 30)

	// exactly one instruction
	test.ExpectEquality(t, p.Run(10), 0)
	test.ExpectEquality(t, p.PC(), 8)

	// zero cycles executes nothing
	test.ExpectEquality(t, p.Run(0), 0)
	test.ExpectEquality(t, p.PC(), 8)
}

func TestSingleStep(t *testing.T) {
	p := cpu.NewProcessor(cpu.NopInstructionSet{}, &flatMemory{}, nullCRU{})
	p.SetPC(0x6000)
	test.ExpectEquality(t, p.Run(1), 9)
	test.ExpectEquality(t, p.PC(), 0x6002)
}

func TestSuspended(t *testing.T) {
	p := cpu.NewProcessor(cpu.NopInstructionSet{}, &flatMemory{}, nullCRU{})
	p.SetSuspended(true)
	test.ExpectEquality(t, p.Run(100), -100)
	test.ExpectEquality(t, p.PC(), 0)

	p.SetSuspended(false)
	test.ExpectEquality(t, p.Run(100), 0)
	test.ExpectEquality(t, p.PC(), 20)

	// reset clears suspension
	p.SetSuspended(true)
	p.Reset()
	test.ExpectFailure(t, p.IsSuspended())
}

func TestRunTo(t *testing.T) {
	p := cpu.NewProcessor(cpu.NopInstructionSet{}, &flatMemory{}, nullCRU{})
	p.SetPC(0x0100)
	p.SetRunTo(0x0104)

	test.ExpectEquality(t, p.Run(1000), 20-1000)
	test.ExpectSuccess(t, p.AtBreakpoint())
	test.ExpectEquality(t, p.PC(), 0x0104)

	// running again after clearing the run-to address executes the
	// instruction at the breakpoint
	p.ClearRunTo()
	test.ExpectEquality(t, p.Run(10), 0)
	test.ExpectFailure(t, p.AtBreakpoint())
	test.ExpectEquality(t, p.PC(), 0x0106)
}

func TestBreakpoints(t *testing.T) {
	p := cpu.NewProcessor(cpu.NopInstructionSet{}, &flatMemory{}, nullCRU{})
	p.SetBreakpoint(0x0010)
	p.SetBreakpoint(0x0004)
	test.ExpectEquality(t, len(p.Breakpoints()), 2)
	test.ExpectEquality(t, p.Breakpoints()[0], 0x0004)

	p.Run(1000)
	test.ExpectSuccess(t, p.AtBreakpoint())
	test.ExpectEquality(t, p.PC(), 0x0004)

	// resuming steps over the breakpoint that caused the halt
	p.Run(1000)
	test.ExpectSuccess(t, p.AtBreakpoint())
	test.ExpectEquality(t, p.PC(), 0x0010)

	p.ClearBreakpoint(0x0010)
	p.Run(10)
	test.ExpectFailure(t, p.AtBreakpoint())
	test.ExpectEquality(t, p.PC(), 0x0012)

	// breakpoints survive a reset
	p.Reset()
	test.ExpectEquality(t, len(p.Breakpoints()), 1)
	p.ClearBreakpoints()
	test.ExpectEquality(t, len(p.Breakpoints()), 0)
}

func TestCoprocessorIdle(t *testing.T) {
	p := cpu.NewCoprocessor(idleAt{addr: 0x4008}, &flatMemory{}, nullCRU{})
	test.ExpectSuccess(t, p.IsIdle())
	test.ExpectEquality(t, p.Run(100), -100)

	p.SetPC(0x4000)
	p.SetIdle(false)
	test.ExpectFailure(t, p.IsIdle())

	// four instructions before the instruction set signals idle
	test.ExpectEquality(t, p.Run(100), 40-100)
	test.ExpectSuccess(t, p.IsIdle())

	// a primary processor is never idle
	q := cpu.NewProcessor(idleAt{addr: 0x0002}, &flatMemory{}, nullCRU{})
	q.Run(10)
	test.ExpectFailure(t, q.IsIdle())
	q.SetIdle(true)
	test.ExpectFailure(t, q.IsIdle())
}

func TestRegsStrings(t *testing.T) {
	mem := &flatMemory{}
	p := cpu.NewProcessor(cpu.NopInstructionSet{}, mem, nullCRU{})
	p.SetWP(0x8300)
	p.SetPC(0x0024)
	mem.WriteWord(0x8300, 0x1234)
	mem.WriteWord(0x831e, 0xabcd)

	test.ExpectEquality(t, p.InternalRegsString(), "PC: >0024 WP: >8300 ST: >0000")

	s := p.RegsStringFormatted()
	test.ExpectEquality(t, s[:9], "R0 :>1234")
	test.ExpectEquality(t, s[len(s)-10:], "R15:>ABCD\n")
}

func TestState(t *testing.T) {
	p := cpu.NewProcessor(cpu.NopInstructionSet{}, &flatMemory{}, nullCRU{})
	p.SetWP(0x83e0)
	p.Run(100)

	data, err := p.GetState()
	test.DemandSuccess(t, err)

	q := cpu.NewProcessor(cpu.NopInstructionSet{}, &flatMemory{}, nullCRU{})
	test.DemandSuccess(t, q.RestoreState(data))
	test.ExpectEquality(t, q.Registers(), p.Registers())
	test.ExpectEquality(t, q.Cycles(), p.Cycles())

	test.ExpectFailure(t, q.RestoreState([]byte("not json")))
}

func TestDumpProfile(t *testing.T) {
	p := cpu.NewProcessor(cpu.NopInstructionSet{}, &flatMemory{}, nullCRU{})

	// dumping an empty profile is harmless
	p.DumpProfile()

	p.Run(100)
	p.DumpProfile()
}

func TestTrap(t *testing.T) {
	mem := &flatMemory{}
	p := cpu.NewProcessor(cpu.NopInstructionSet{}, mem, nullCRU{})

	var called int
	p.SetTrap(0x0004, func(regs *cpu.Registers, mem cpu.Memory) {
		called++
		mem.WriteWord(0x8374, regs.PC)
	})

	p.Run(100)
	test.ExpectEquality(t, called, 1)
	test.ExpectEquality(t, mem.ReadWord(0x8374), 0x0004)

	p.SetTrap(0x0004, nil)
	p.SetPC(0x0000)
	p.Run(100)
	test.ExpectEquality(t, called, 1)
}
