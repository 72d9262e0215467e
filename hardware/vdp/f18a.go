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

package vdp

import (
	"encoding/json"
	"fmt"

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/hardware/cpu"
)

// GPUCyclesPerScanline is the number of cycles the F18A GPU runs for each
// scanline. The GPU is not affected by the console speed.
const GPUCyclesPerScanline = 1000

// F18A registers of interest.
const (
	numRegsF18A  = 64
	regGPUMSB    = 54
	regGPULSB    = 55
	regGPUCtrl   = 56
	regUnlock    = 57
	unlockValue  = 0x1c
	gpuCtrlStart = 0x01
)

// F18A implements the F18A video display processor. The extended registers
// can only be written to after the unlock sequence has been written to
// register 57.
type F18A struct {
	*TMS9918A

	gpu *cpu.Processor

	unlocked    bool
	unlockCount int
}

// gpuMemory is the address space of the GPU. VRAM is mapped to the first 16K
// and the VDP registers are readable at >6000.
type gpuMemory struct {
	vdp *TMS9918A
}

func (m gpuMemory) ReadWord(addr uint16) uint16 {
	addr &= 0xfffe
	if addr >= 0x6000 && addr < 0x6000+numRegsF18A {
		r := int(addr - 0x6000)
		return uint16(m.vdp.regs[r])<<8 | uint16(m.vdp.regs[r+1])
	}
	return uint16(m.vdp.vram[addr&vramMask])<<8 | uint16(m.vdp.vram[(addr+1)&vramMask])
}

func (m gpuMemory) WriteWord(addr uint16, data uint16) {
	addr &= 0xfffe
	if addr >= VRAMSize {
		return
	}
	m.vdp.vram[addr] = uint8(data >> 8)
	m.vdp.vram[addr+1] = uint8(data)
}

// NewF18A is the preferred method of initialisation for the F18A type. The
// instruction set is used by the GPU.
func NewF18A(is cpu.InstructionSet) *F18A {
	f := &F18A{
		TMS9918A: newVDP(numRegsF18A),
	}
	f.gpu = cpu.NewCoprocessor(is, gpuMemory{vdp: f.TMS9918A}, nil)
	f.registerWrite = f.writeRegister
	return f
}

func (f *F18A) String() string {
	return f.RegsString()
}

// Reset the VDP and the GPU. The extended registers are locked.
func (f *F18A) Reset() {
	f.TMS9918A.Reset()
	f.gpu.Reset()
	f.unlocked = false
	f.unlockCount = 0
}

// GPU returns the F18A GPU.
func (f *F18A) GPU() cpu.ExecutionUnit {
	return f.gpu
}

// Processor returns the GPU as a Processor, for access to breakpoints.
func (f *F18A) Processor() *cpu.Processor {
	return f.gpu
}

// IsUnlocked returns true if the extended registers can be written to.
func (f *F18A) IsUnlocked() bool {
	return f.unlocked
}

// RegsString returns the VDP registers as a string. Used by the debugger.
func (f *F18A) RegsString() string {
	return fmt.Sprintf("%s GPU:>%04X", f.TMS9918A.RegsString(), f.gpu.PC())
}

func (f *F18A) writeRegister(reg int, value uint8) {
	if reg == regUnlock && value == unlockValue {
		f.unlockCount++
		if f.unlockCount >= 2 {
			f.unlocked = true
		}
	} else {
		f.unlockCount = 0
	}

	if !f.unlocked {
		reg &= numRegs9918A - 1
	}
	f.regs[reg] = value

	switch reg {
	case regGPULSB:
		// writing the low byte of the GPU address starts the GPU
		f.gpu.SetPC(uint16(f.regs[regGPUMSB])<<8 | uint16(f.regs[regGPULSB]))
		f.gpu.SetIdle(false)
	case regGPUCtrl:
		if value&gpuCtrlStart == gpuCtrlStart {
			f.gpu.SetPC(uint16(f.regs[regGPUMSB])<<8 | uint16(f.regs[regGPULSB]))
			f.gpu.SetIdle(false)
		} else {
			f.gpu.SetIdle(true)
		}
	}
}

type f18aState struct {
	VDP      json.RawMessage `json:"vdp"`
	GPU      json.RawMessage `json:"gpu"`
	Unlocked bool            `json:"unlocked"`
}

// GetState returns the serialised state of the VDP and the GPU.
func (f *F18A) GetState() (json.RawMessage, error) {
	vdp, err := f.TMS9918A.GetState()
	if err != nil {
		return nil, err
	}
	gpu, err := f.gpu.GetState()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(f18aState{VDP: vdp, GPU: gpu, Unlocked: f.unlocked})
	if err != nil {
		return nil, curated.Errorf("f18a: %v", err)
	}
	return data, nil
}

// RestoreState from data created by GetState().
func (f *F18A) RestoreState(data json.RawMessage) error {
	var s f18aState
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf("f18a: %v", err)
	}
	if err := f.TMS9918A.RestoreState(s.VDP); err != nil {
		return err
	}
	if err := f.gpu.RestoreState(s.GPU); err != nil {
		return err
	}
	f.unlocked = s.Unlocked
	return nil
}
