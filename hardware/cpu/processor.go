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
	"slices"
	"strings"

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/logger"
)

// Timing of the primary processor.
const (
	CyclesPerFrame    = 50000
	CyclesPerScanline = 182
)

// Processor is an implementation of the ExecutionUnit interface.
type Processor struct {
	is  InstructionSet
	mem Memory
	cru CRU

	// a coprocessor can be idle. a primary processor is never idle
	coprocessor bool

	regs   Registers
	cycles uint64

	suspended bool

	breakpoints  map[uint16]bool
	runTo        uint16
	hasRunTo     bool
	atBreakpoint bool

	// the address at which the most recent call to Run() stopped because of
	// a breakpoint. the instruction at that address is executed without
	// stopping when execution resumes
	resumeAt uint16
	resuming bool

	// cycles spent at each address since the last DumpProfile()
	profile map[uint16]int

	// functions called before the instruction at an address is executed
	traps map[uint16]Trap
}

// Trap is called by the Processor before executing the instruction at the
// address the trap was installed at. Used to intercept system ROM routines.
type Trap func(regs *Registers, mem Memory)

// NewProcessor is the preferred method of initialisation for a primary
// processor.
func NewProcessor(is InstructionSet, mem Memory, cru CRU) *Processor {
	p := &Processor{
		is:          is,
		mem:         mem,
		cru:         cru,
		breakpoints: make(map[uint16]bool),
		profile:     make(map[uint16]int),
		traps:       make(map[uint16]Trap),
	}
	p.Reset()
	return p
}

// NewCoprocessor is the preferred method of initialisation for a
// coprocessor. The coprocessor is idle until SetIdle(false) is called.
func NewCoprocessor(is InstructionSet, mem Memory, cru CRU) *Processor {
	p := NewProcessor(is, mem, cru)
	p.coprocessor = true
	p.regs.Idle = true
	return p
}

func (p *Processor) String() string {
	return fmt.Sprintf("%s %s", p.is.Name(), p.regs)
}

// Name returns the name of the instruction set.
func (p *Processor) Name() string {
	return p.is.Name()
}

// Reset implements the ExecutionUnit interface. Breakpoints set with
// SetBreakpoint() are retained.
func (p *Processor) Reset() {
	p.is.Reset(&p.regs)
	p.regs.Idle = p.coprocessor
	p.cycles = 0
	p.suspended = false
	p.atBreakpoint = false
	p.resuming = false
	p.hasRunTo = false
	clear(p.profile)
}

func (p *Processor) isBreakpoint(addr uint16) bool {
	return p.breakpoints[addr] || (p.hasRunTo && p.runTo == addr)
}

func (p *Processor) running() bool {
	return !p.suspended && !(p.coprocessor && p.regs.Idle)
}

// Run implements the ExecutionUnit interface.
func (p *Processor) Run(cycles int) int {
	p.atBreakpoint = false

	used := 0
	first := true

	for used < cycles && p.running() {
		pc := p.regs.PC

		if p.isBreakpoint(pc) && !(first && p.resuming && p.resumeAt == pc) {
			p.atBreakpoint = true
			p.resuming = true
			p.resumeAt = pc
			return used - cycles
		}

		first = false
		p.resuming = false

		if trap, ok := p.traps[pc]; ok {
			trap(&p.regs, p.mem)
		}

		n := p.is.Execute(&p.regs, p.mem, p.cru)
		used += n
		p.cycles += uint64(n)
		p.profile[pc] += n
	}

	return used - cycles
}

// PC implements the ExecutionUnit interface.
func (p *Processor) PC() uint16 {
	return p.regs.PC
}

// SetPC implements the ExecutionUnit interface.
func (p *Processor) SetPC(pc uint16) {
	p.regs.PC = pc
}

// SetWP implements the ExecutionUnit interface.
func (p *Processor) SetWP(wp uint16) {
	p.regs.WP = wp
}

// Registers returns a copy of the processor registers.
func (p *Processor) Registers() Registers {
	return p.regs
}

// Cycles returns the number of cycles executed since the last reset.
func (p *Processor) Cycles() uint64 {
	return p.cycles
}

// IsSuspended implements the ExecutionUnit interface.
func (p *Processor) IsSuspended() bool {
	return p.suspended
}

// SetSuspended implements the ExecutionUnit interface.
func (p *Processor) SetSuspended(suspended bool) {
	p.suspended = suspended
}

// IsIdle implements the ExecutionUnit interface.
func (p *Processor) IsIdle() bool {
	return p.coprocessor && p.regs.Idle
}

// SetIdle sets the idle state of a coprocessor. Has no effect on a primary
// processor.
func (p *Processor) SetIdle(idle bool) {
	if p.coprocessor {
		p.regs.Idle = idle
	}
}

// AtBreakpoint implements the ExecutionUnit interface.
func (p *Processor) AtBreakpoint() bool {
	return p.atBreakpoint
}

// SetRunTo implements the ExecutionUnit interface.
func (p *Processor) SetRunTo(addr uint16) {
	p.runTo = addr
	p.hasRunTo = true
}

// ClearRunTo implements the ExecutionUnit interface.
func (p *Processor) ClearRunTo() {
	p.hasRunTo = false
}

// SetBreakpoint adds a breakpoint at the address.
func (p *Processor) SetBreakpoint(addr uint16) {
	p.breakpoints[addr] = true
}

// ClearBreakpoint removes the breakpoint at the address.
func (p *Processor) ClearBreakpoint(addr uint16) {
	delete(p.breakpoints, addr)
}

// ClearBreakpoints removes all breakpoints.
func (p *Processor) ClearBreakpoints() {
	clear(p.breakpoints)
}

// Breakpoints returns the list of breakpoint addresses in ascending order.
func (p *Processor) Breakpoints() []uint16 {
	b := make([]uint16, 0, len(p.breakpoints))
	for addr := range p.breakpoints {
		b = append(b, addr)
	}
	slices.Sort(b)
	return b
}

// SetTrap installs a trap at the address. A nil trap removes any trap at the
// address.
func (p *Processor) SetTrap(addr uint16, trap Trap) {
	if trap == nil {
		delete(p.traps, addr)
		return
	}
	p.traps[addr] = trap
}

// InternalRegsString implements the ExecutionUnit interface.
func (p *Processor) InternalRegsString() string {
	return fmt.Sprintf("PC: >%04X WP: >%04X ST: >%04X", p.regs.PC, p.regs.WP, p.regs.ST)
}

// RegsStringFormatted implements the ExecutionUnit interface. The general
// purpose registers are read from memory at the workspace pointer.
func (p *Processor) RegsStringFormatted() string {
	s := strings.Builder{}
	for r := 0; r < 16; r++ {
		v := p.mem.ReadWord(p.regs.WP + uint16(r*2))
		s.WriteString(fmt.Sprintf("R%-2d:>%04X", r, v))
		if r%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	return s.String()
}

// DumpProfile implements the ExecutionUnit interface. The ten addresses at
// which most cycles were spent are logged.
func (p *Processor) DumpProfile() {
	if len(p.profile) == 0 {
		return
	}

	total := 0
	addrs := make([]uint16, 0, len(p.profile))
	for addr, n := range p.profile {
		addrs = append(addrs, addr)
		total += n
	}
	slices.SortFunc(addrs, func(a, b uint16) int {
		if p.profile[a] != p.profile[b] {
			return p.profile[b] - p.profile[a]
		}
		return int(a) - int(b)
	})

	for _, addr := range addrs[:min(10, len(addrs))] {
		n := p.profile[addr]
		logger.Logf(logger.Allow, p.is.Name(), "profile: >%04X %d cycles (%.1f%%)", addr, n, float64(n)*100/float64(total))
	}

	clear(p.profile)
}

type processorState struct {
	Registers Registers `json:"registers"`
	Cycles    uint64    `json:"cycles"`
	Suspended bool      `json:"suspended"`
}

// GetState implements the ExecutionUnit interface.
func (p *Processor) GetState() (json.RawMessage, error) {
	data, err := json.Marshal(processorState{
		Registers: p.regs,
		Cycles:    p.cycles,
		Suspended: p.suspended,
	})
	if err != nil {
		return nil, curated.Errorf("%s: %v", p.is.Name(), err)
	}
	return data, nil
}

// RestoreState implements the ExecutionUnit interface.
func (p *Processor) RestoreState(data json.RawMessage) error {
	var s processorState
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf("%s: %v", p.is.Name(), err)
	}
	p.regs = s.Registers
	p.regs.Idle = p.coprocessor && s.Registers.Idle
	p.cycles = s.Cycles
	p.suspended = s.Suspended
	p.atBreakpoint = false
	p.resuming = false
	return nil
}
