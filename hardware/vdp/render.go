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

import "image/color"

// Mode is the display mode selected by the M1, M2 and M3 register bits.
type Mode int

// List of valid Mode values.
const (
	ModeGraphics1 Mode = iota
	ModeGraphics2
	ModeMulticolor
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeGraphics1:
		return "graphics I"
	case ModeGraphics2:
		return "graphics II"
	case ModeMulticolor:
		return "multicolor"
	case ModeText:
		return "text"
	}
	return "unknown mode"
}

// Mode returns the current display mode.
func (vdp *TMS9918A) Mode() Mode {
	switch {
	case vdp.regs[1]&0x10 == 0x10:
		return ModeText
	case vdp.regs[1]&0x08 == 0x08:
		return ModeMulticolor
	case vdp.regs[0]&0x02 == 0x02:
		return ModeGraphics2
	}
	return ModeGraphics1
}

func (vdp *TMS9918A) blanked() bool {
	return vdp.regs[1]&0x40 == 0x00
}

func (vdp *TMS9918A) backdrop() uint8 {
	return vdp.regs[7] & 0x0f
}

func (vdp *TMS9918A) colour(c uint8) color.RGBA {
	if c == 0 {
		c = vdp.backdrop()
	}
	return Palette[c&0x0f]
}

func (vdp *TMS9918A) set(x int, y int, c uint8) {
	vdp.img.SetRGBA(x, y, vdp.colour(c))
}

func (vdp *TMS9918A) fill(y int, from int, to int, c uint8) {
	for x := from; x < to; x++ {
		vdp.set(x, y, c)
	}
}

func (vdp *TMS9918A) renderScanline(y int) {
	line := y - TopBorder
	if vdp.blanked() || line < 0 || line >= DisplayHeight {
		vdp.fill(y, 0, Width, 0)
		return
	}

	nameTable := uint16(vdp.regs[2]&0x0f) << 10
	row := uint16(line >> 3)
	fine := uint16(line & 0x07)

	switch vdp.Mode() {
	case ModeText:
		patternTable := uint16(vdp.regs[4]&0x07) << 11
		fg := vdp.regs[7] >> 4
		vdp.fill(y, 0, 8, 0)
		vdp.fill(y, Width-8, Width, 0)
		for col := uint16(0); col < 40; col++ {
			name := uint16(vdp.vram[(nameTable+row*40+col)&vramMask])
			pattern := vdp.vram[(patternTable+name*8+fine)&vramMask]
			for b := 0; b < 6; b++ {
				c := uint8(0)
				if pattern&(0x80>>b) != 0 {
					c = fg
				}
				vdp.set(8+int(col)*6+b, y, c)
			}
		}

	case ModeMulticolor:
		patternTable := uint16(vdp.regs[4]&0x07) << 11
		for col := uint16(0); col < 32; col++ {
			name := uint16(vdp.vram[(nameTable+row*32+col)&vramMask])
			v := vdp.vram[(patternTable+name*8+(row&0x03)*2+fine/4)&vramMask]
			x := int(col) * 8
			vdp.fill(y, x, x+4, v>>4)
			vdp.fill(y, x+4, x+8, v&0x0f)
		}

	case ModeGraphics1, ModeGraphics2:
		var patternTable, colourTable uint16
		graphics2 := vdp.Mode() == ModeGraphics2
		if graphics2 {
			patternTable = uint16(vdp.regs[4]&0x04) << 11
			colourTable = uint16(vdp.regs[3]&0x80) << 6
		} else {
			patternTable = uint16(vdp.regs[4]&0x07) << 11
			colourTable = uint16(vdp.regs[3]) << 6
		}

		for col := uint16(0); col < 32; col++ {
			name := uint16(vdp.vram[(nameTable+row*32+col)&vramMask])
			var pattern, c uint8
			if graphics2 {
				tile := name + (row>>3)<<8
				pattern = vdp.vram[(patternTable+tile*8+fine)&vramMask]
				c = vdp.vram[(colourTable+tile*8+fine)&vramMask]
			} else {
				pattern = vdp.vram[(patternTable+name*8+fine)&vramMask]
				c = vdp.vram[(colourTable+name/8)&vramMask]
			}
			for b := 0; b < 8; b++ {
				if pattern&(0x80>>b) != 0 {
					vdp.set(int(col)*8+b, y, c>>4)
				} else {
					vdp.set(int(col)*8+b, y, c&0x0f)
				}
			}
		}
	}
}
