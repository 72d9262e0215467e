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

package vdp_test

import (
	"image"
	"testing"
	"time"

	"github.com/jetsetilly/gopher99/hardware/cpu"
	"github.com/jetsetilly/gopher99/hardware/vdp"
	"github.com/jetsetilly/gopher99/test"
)

type renderer struct {
	count int
}

func (r *renderer) Render(_ *image.RGBA) error {
	r.count++
	return nil
}

// port addresses after normalisation by the memory package
const (
	data    = 0x0000
	control = 0x0002
)

func setAddress(v *vdp.TMS9918A, addr uint16, write bool) {
	v.WritePort(control, uint8(addr))
	if write {
		v.WritePort(control, uint8(addr>>8)|0x40)
	} else {
		v.WritePort(control, uint8(addr>>8))
	}
}

func writeRegister(v *vdp.TMS9918A, reg int, value uint8) {
	v.WritePort(control, value)
	v.WritePort(control, uint8(reg)|0x80)
}

func TestVRAM(t *testing.T) {
	v := vdp.NewTMS9918A()

	setAddress(v, 0x1000, true)
	v.WritePort(data, 0x11)
	v.WritePort(data, 0x22)
	test.ExpectEquality(t, v.Peek(0x1000), 0x11)
	test.ExpectEquality(t, v.Peek(0x1001), 0x22)

	// reading uses the read-ahead buffer
	setAddress(v, 0x1000, false)
	test.ExpectEquality(t, v.ReadPort(data), 0x11)
	test.ExpectEquality(t, v.ReadPort(data), 0x22)
}

func TestRegisters(t *testing.T) {
	v := vdp.NewTMS9918A()
	writeRegister(v, 7, 0xf4)
	test.ExpectEquality(t, v.Register(7), 0xf4)

	// the TMS9918A only has eight registers
	writeRegister(v, 15, 0x01)
	test.ExpectEquality(t, v.Register(7), 0x01)

	writeRegister(v, 1, 0x10)
	test.ExpectEquality(t, v.Mode(), vdp.ModeText)
	writeRegister(v, 1, 0x00)
	writeRegister(v, 0, 0x02)
	test.ExpectEquality(t, v.Mode(), vdp.ModeGraphics2)

	test.ExpectEquality(t, v.RegsString(), "VR0:>02 VR1:>00 VR2:>00 VR3:>00 VR4:>00 VR5:>00 VR6:>00 VR7:>01 SA:>0000 ST:>00")
}

func TestInterrupt(t *testing.T) {
	v := vdp.NewTMS9918A()
	writeRegister(v, 1, 0x60)

	v.InitFrame(time.Now())
	for y := 0; y < vdp.Height; y++ {
		v.DrawScanline(y)
	}
	test.ExpectSuccess(t, v.Interrupt())

	// reading the status register clears the interrupt
	test.ExpectEquality(t, v.ReadPort(control)&0x80, 0x80)
	test.ExpectFailure(t, v.Interrupt())
}

func TestRendering(t *testing.T) {
	v := vdp.NewTMS9918A()
	r := &renderer{}
	v.AddRenderer(r)

	// graphics I with the screen enabled and a white backdrop
	writeRegister(v, 1, 0x40)
	writeRegister(v, 7, 0x0f)

	// the first character of the pattern table has a solid top row. the
	// colour table sets it to dark red on transparent
	writeRegister(v, 2, 0x00)
	writeRegister(v, 3, 0x0e)
	writeRegister(v, 4, 0x01)
	setAddress(v, 0x0800, true)
	v.WritePort(data, 0xff)
	setAddress(v, 0x0380, true)
	v.WritePort(data, 0x60)

	v.DrawFrame(time.Now())
	test.ExpectEquality(t, r.count, 1)
	test.ExpectEquality(t, v.FrameCount(), 1)

	img := v.Image()
	test.ExpectEquality(t, img.RGBAAt(0, 0), vdp.Palette[15])
	test.ExpectEquality(t, img.RGBAAt(0, vdp.TopBorder), vdp.Palette[6])
	test.ExpectEquality(t, img.RGBAAt(0, vdp.TopBorder+1), vdp.Palette[15])
}

func TestF18AGPU(t *testing.T) {
	f := vdp.NewF18A(cpu.NopInstructionSet{})
	test.ExpectSuccess(t, f.GPU().IsIdle())

	// extended registers are locked
	writeRegister(f.TMS9918A, 55, 0x00)
	test.ExpectSuccess(t, f.GPU().IsIdle())

	writeRegister(f.TMS9918A, 57, 0x1c)
	writeRegister(f.TMS9918A, 57, 0x1c)
	test.ExpectSuccess(t, f.IsUnlocked())

	writeRegister(f.TMS9918A, 54, 0x40)
	writeRegister(f.TMS9918A, 55, 0x00)
	test.ExpectFailure(t, f.GPU().IsIdle())
	test.ExpectEquality(t, f.GPU().PC(), 0x4000)

	f.GPU().Run(vdp.GPUCyclesPerScanline)
	test.ExpectInequality(t, f.GPU().PC(), 0x4000)

	writeRegister(f.TMS9918A, 56, 0x00)
	test.ExpectSuccess(t, f.GPU().IsIdle())

	f.Reset()
	test.ExpectFailure(t, f.IsUnlocked())
}

func TestTMS9918AHasNoGPU(t *testing.T) {
	v := vdp.NewTMS9918A()
	test.ExpectSuccess(t, v.GPU() == nil)
}

func TestState(t *testing.T) {
	f := vdp.NewF18A(cpu.NopInstructionSet{})
	writeRegister(f.TMS9918A, 7, 0x17)
	setAddress(f.TMS9918A, 0x2000, true)
	f.WritePort(data, 0x99)

	state, err := f.GetState()
	test.DemandSuccess(t, err)

	g := vdp.NewF18A(cpu.NopInstructionSet{})
	test.DemandSuccess(t, g.RestoreState(state))
	test.ExpectEquality(t, g.Peek(0x2000), 0x99)
	test.ExpectEquality(t, g.RegsString(), f.RegsString())
}
