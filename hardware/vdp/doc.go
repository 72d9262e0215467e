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

// Package vdp implements the video display processors that can be fitted to
// the console: the TMS9918A and the F18A. The F18A is a TMS9918A compatible
// replacement that adds a GPU, which is a coprocessor executing TMS9900
// instructions from VRAM.
//
// The console drives the VDP one scanline at a time. InitFrame() is called at
// the start of every frame followed by DrawScanline() for each of the visible
// scanlines. UpdateCanvas() sends the completed image to the attached
// renderers.
//
// Rendering supports the text and graphics modes but not sprites.
package vdp
