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

package memory

// the number of GROM bases. each base has its own eight GROM chips but they
// all share the one address counter
const (
	NumGROMBases = 16
	gromSize     = 0x10000
	gromChipSize = 0x2000
)

// the index of the first GROM chip used by cartridges
const CartridgeGROMBank = 3

type grom struct {
	data [NumGROMBases][]byte

	address uint16

	// the address port is written to and read from in two halves, high byte
	// first
	addressLow bool
}

func (g *grom) reset(keepCart bool) {
	g.address = 0
	g.addressLow = false
	if keepCart {
		return
	}
	for _, d := range g.data {
		if d != nil {
			clear(d[CartridgeGROMBank*gromChipSize:])
		}
	}
}

func (g *grom) load(data []byte, bank int, base int) {
	if base < 0 || base >= NumGROMBases {
		return
	}
	if g.data[base] == nil {
		g.data[base] = make([]byte, gromSize)
	}
	start := bank * gromChipSize
	if start < 0 || start >= gromSize {
		return
	}
	copy(g.data[base][start:], data)
}

func decodeGROMPort(a uint16) (base int, isAddress bool) {
	return int(a>>2) & (NumGROMBases - 1), a&0x0002 == 0x0002
}

// the address counter wraps within the current GROM chip
func (g *grom) increment() {
	g.address = (g.address & 0xe000) | ((g.address + 1) & 0x1fff)
}

func (g *grom) read(a uint16) uint8 {
	base, isAddress := decodeGROMPort(a)
	if isAddress {
		var v uint8
		if g.addressLow {
			v = uint8(g.address)
		} else {
			v = uint8(g.address >> 8)
		}
		g.addressLow = !g.addressLow
		return v
	}

	g.addressLow = false
	var v uint8
	if g.data[base] != nil {
		v = g.data[base][g.address]
	}
	g.increment()
	return v
}

func (g *grom) write(a uint16, data uint8) {
	_, isAddress := decodeGROMPort(a)
	if isAddress {
		if g.addressLow {
			g.address = (g.address & 0xff00) | uint16(data)
		} else {
			g.address = (g.address & 0x00ff) | uint16(data)<<8
		}
		g.addressLow = !g.addressLow
		return
	}

	// GROM is read-only
	g.addressLow = false
	g.increment()
}
