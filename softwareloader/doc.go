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

// Package softwareloader prepares software for the console. Software is
// described by the Software type, which can be created from a JSON
// description, from raw ROM and GROM files or from the contents of an
// archive.
//
// Files are loaded with the Loader type. The filename can be a local file or
// an HTTP/HTTPS URL. Archives in ZIP, 7z, RAR and gzip format are unpacked
// and the files inside are used as though they had been loaded individually.
//
// The role of a file is decided by the end of its name:
//
//	C.BIN    cartridge ROM
//	D.BIN    second bank of a cartridge ROM
//	G.BIN    GROM
//	3.BIN    inverted cartridge ROM
//	9.BIN    inverted cartridge ROM
//	.json    a complete description of the software
//
// Any other .BIN or .ROM file is treated as cartridge ROM.
package softwareloader
