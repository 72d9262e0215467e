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
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/jetsetilly/gopher99/hardware/cpu"
	"github.com/jetsetilly/gopher99/logger"
)

// Dimensions of the canvas. The active display is 192 scanlines high and is
// surrounded by the border.
const (
	Width          = 256
	Height         = 240
	DisplayHeight  = 192
	TopBorder      = 24
	VRAMSize       = 0x4000
	vramMask       = VRAMSize - 1
	numRegs9918A   = 8
	statusInt      = 0x80
	statusReadMask = 0x1f
)

// Renderer implementations display, or otherwise work with, the image
// created by the VDP.
type Renderer interface {
	Render(img *image.RGBA) error
}

// TMS9918A implements the TMS9918A video display processor.
type TMS9918A struct {
	vram [VRAMSize]byte
	regs []uint8

	status uint8

	address uint16

	// the first byte of a two byte address or register write
	latch     bool
	latchData uint8

	// the read-ahead buffer
	buffer uint8

	img       *image.RGBA
	renderers []Renderer

	frameStart time.Time
	frameCount int

	// handles register writes. the register number is unmasked. replaced by
	// the F18A which has a larger register set
	registerWrite func(reg int, value uint8)
}

// NewTMS9918A is the preferred method of initialisation for the TMS9918A type.
func NewTMS9918A() *TMS9918A {
	return newVDP(numRegs9918A)
}

func newVDP(numRegs int) *TMS9918A {
	vdp := &TMS9918A{
		regs: make([]uint8, numRegs),
		img:  image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
	vdp.registerWrite = vdp.writeRegister
	vdp.Reset()
	return vdp
}

func (vdp *TMS9918A) String() string {
	return vdp.RegsString()
}

// AddRenderer adds a renderer to the list of renderers that receive the
// image when UpdateCanvas() is called.
func (vdp *TMS9918A) AddRenderer(r Renderer) {
	vdp.renderers = append(vdp.renderers, r)
}

// Image returns the canvas.
func (vdp *TMS9918A) Image() *image.RGBA {
	return vdp.img
}

// FrameCount returns the number of times UpdateCanvas() has been called.
func (vdp *TMS9918A) FrameCount() int {
	return vdp.frameCount
}

// FrameStart returns the timestamp given to the most recent InitFrame().
func (vdp *TMS9918A) FrameStart() time.Time {
	return vdp.frameStart
}

// Reset the VDP. VRAM is cleared.
func (vdp *TMS9918A) Reset() {
	clear(vdp.vram[:])
	clear(vdp.regs)
	vdp.status = 0
	vdp.address = 0
	vdp.latch = false
	vdp.latchData = 0
	vdp.buffer = 0
	vdp.frameCount = 0
	clear(vdp.img.Pix)
}

// GPU returns nil. The TMS9918A does not have a GPU.
func (vdp *TMS9918A) GPU() cpu.ExecutionUnit {
	return nil
}

// Interrupt returns true if the VDP interrupt is being asserted.
func (vdp *TMS9918A) Interrupt() bool {
	return vdp.status&statusInt == statusInt && vdp.regs[1]&0x20 == 0x20
}

// Peek returns the value in VRAM at the address without side-effects.
func (vdp *TMS9918A) Peek(addr uint16) uint8 {
	return vdp.vram[addr&vramMask]
}

// Register returns the value of a VDP register.
func (vdp *TMS9918A) Register(reg int) uint8 {
	if reg < 0 || reg >= len(vdp.regs) {
		return 0
	}
	return vdp.regs[reg]
}

// RegsString returns the VDP registers as a string. Used by the debugger.
func (vdp *TMS9918A) RegsString() string {
	s := strings.Builder{}
	for i, r := range vdp.regs[:numRegs9918A] {
		s.WriteString(fmt.Sprintf("VR%d:>%02X ", i, r))
	}
	s.WriteString(fmt.Sprintf("SA:>%04X ST:>%02X", vdp.address, vdp.status))
	return s.String()
}

// ReadPort implements the memory.Port interface.
func (vdp *TMS9918A) ReadPort(addr uint16) uint8 {
	vdp.latch = false
	if addr&0x0002 == 0x0002 {
		v := vdp.status
		vdp.status &= statusReadMask
		return v
	}
	v := vdp.buffer
	vdp.buffer = vdp.vram[vdp.address]
	vdp.address = (vdp.address + 1) & vramMask
	return v
}

// WritePort implements the memory.Port interface.
func (vdp *TMS9918A) WritePort(addr uint16, data uint8) {
	if addr&0x0002 == 0x0000 {
		vdp.latch = false
		vdp.vram[vdp.address] = data
		vdp.buffer = data
		vdp.address = (vdp.address + 1) & vramMask
		return
	}

	if !vdp.latch {
		vdp.latch = true
		vdp.latchData = data
		return
	}
	vdp.latch = false

	switch data & 0xc0 {
	case 0x80:
		vdp.registerWrite(int(data&0x3f), vdp.latchData)
	case 0x40:
		vdp.address = (uint16(data&0x3f)<<8 | uint16(vdp.latchData))
	case 0x00:
		vdp.address = (uint16(data&0x3f)<<8 | uint16(vdp.latchData))
		vdp.buffer = vdp.vram[vdp.address]
		vdp.address = (vdp.address + 1) & vramMask
	}
}

func (vdp *TMS9918A) writeRegister(reg int, value uint8) {
	vdp.regs[reg&(numRegs9918A-1)] = value
}

// InitFrame is called at the start of every frame.
func (vdp *TMS9918A) InitFrame(ts time.Time) {
	vdp.frameStart = ts
}

// DrawScanline renders the scanline to the canvas. The interrupt flag is set
// at the end of the active display.
func (vdp *TMS9918A) DrawScanline(y int) {
	if y < 0 || y >= Height {
		return
	}
	vdp.renderScanline(y)
	if y == TopBorder+DisplayHeight-1 {
		vdp.status |= statusInt
	}
}

// DrawFrame renders every scanline and updates the canvas. Processors are
// not run.
func (vdp *TMS9918A) DrawFrame(ts time.Time) {
	vdp.InitFrame(ts)
	for y := 0; y < Height; y++ {
		vdp.renderScanline(y)
	}
	vdp.UpdateCanvas()
}

// UpdateCanvas sends the canvas to all renderers.
func (vdp *TMS9918A) UpdateCanvas() {
	vdp.frameCount++
	for _, r := range vdp.renderers {
		if err := r.Render(vdp.img); err != nil {
			logger.Log(logger.Allow, "vdp", err)
		}
	}
}
