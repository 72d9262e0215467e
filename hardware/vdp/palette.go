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

// Palette is the 16 colour palette of the TMS9918A. Colour zero is
// transparent and shows the backdrop colour.
var Palette = [16]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x21, G: 0xc8, B: 0x42, A: 0xff},
	{R: 0x5e, G: 0xdc, B: 0x78, A: 0xff},
	{R: 0x54, G: 0x55, B: 0xed, A: 0xff},
	{R: 0x7d, G: 0x76, B: 0xfc, A: 0xff},
	{R: 0xd4, G: 0x52, B: 0x4d, A: 0xff},
	{R: 0x42, G: 0xeb, B: 0xf5, A: 0xff},
	{R: 0xfc, G: 0x55, B: 0x54, A: 0xff},
	{R: 0xff, G: 0x79, B: 0x78, A: 0xff},
	{R: 0xd4, G: 0xc1, B: 0x54, A: 0xff},
	{R: 0xe6, G: 0xce, B: 0x80, A: 0xff},
	{R: 0x21, G: 0xb0, B: 0x3b, A: 0xff},
	{R: 0xc9, G: 0x5b, B: 0xba, A: 0xff},
	{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}
