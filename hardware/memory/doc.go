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

// Package memory implements the 64K address space of the console as seen by
// the CPU. The address space is made up of the system ROM, RAM (the 256 byte
// scratchpad and the 32K memory expansion), the cartridge port and the
// memory mapped devices.
//
// The VDP, sound and speech devices are attached with AttachPort(). GROM is
// implemented in this package because the GROM chips are part of both the
// console and the cartridge.
//
// The memory map is described by the memorymap package.
package memory
