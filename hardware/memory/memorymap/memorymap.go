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

// Package memorymap describes the areas of the console's 64K address space.
package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case SystemROM:
		return "System ROM"
	case LowRAM:
		return "Low RAM"
	case DSR:
		return "DSR"
	case Cartridge:
		return "Cartridge"
	case Scratchpad:
		return "Scratchpad"
	case Sound:
		return "Sound"
	case VDPRead:
		return "VDP read"
	case VDPWrite:
		return "VDP write"
	case SpeechRead:
		return "Speech read"
	case SpeechWrite:
		return "Speech write"
	case GROMRead:
		return "GROM read"
	case GROMWrite:
		return "GROM write"
	case HighRAM:
		return "High RAM"
	}

	return "undefined"
}

// The different memory areas in the console.
const (
	Undefined Area = iota
	SystemROM
	LowRAM
	DSR
	Cartridge
	Scratchpad
	Sound
	VDPRead
	VDPWrite
	SpeechRead
	SpeechWrite
	GROMRead
	GROMWrite
	HighRAM
)

// The origin and memory top for each area of memory.
const (
	OriginSystemROM   = uint16(0x0000)
	MemtopSystemROM   = uint16(0x1fff)
	OriginLowRAM      = uint16(0x2000)
	MemtopLowRAM      = uint16(0x3fff)
	OriginDSR         = uint16(0x4000)
	MemtopDSR         = uint16(0x5fff)
	OriginCart        = uint16(0x6000)
	MemtopCart        = uint16(0x7fff)
	OriginScratchpad  = uint16(0x8000)
	MemtopScratchpad  = uint16(0x83ff)
	OriginSound       = uint16(0x8400)
	OriginVDPRead     = uint16(0x8800)
	OriginVDPWrite    = uint16(0x8c00)
	OriginSpeechRead  = uint16(0x9000)
	OriginSpeechWrite = uint16(0x9400)
	OriginGROMRead    = uint16(0x9800)
	OriginGROMWrite   = uint16(0x9c00)
	OriginHighRAM     = uint16(0xa000)
	MemtopHighRAM     = uint16(0xffff)
)

// The scratchpad RAM is only 256 bytes and is mirrored four times over the
// scratchpad area. MaskScratchpad keeps only the relevant bits.
const MaskScratchpad = uint16(0x00ff)

// The memory mapped devices are each given 1K of the address space. The low
// bits of the address select the device register.
const MaskPort = uint16(0x03ff)

// MapAddress returns the area the address falls within and the address
// normalised for that area.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopSystemROM:
		return address, SystemROM
	case address <= MemtopLowRAM:
		return address - OriginLowRAM, LowRAM
	case address <= MemtopDSR:
		return address - OriginDSR, DSR
	case address <= MemtopCart:
		return address - OriginCart, Cartridge
	case address <= MemtopScratchpad:
		return address & MaskScratchpad, Scratchpad
	case address >= OriginHighRAM:
		return address - OriginHighRAM, HighRAM
	}

	// memory mapped devices. the order of the areas in the Area type
	// matches the order of the devices in the address space
	area := Sound + Area((address-OriginSound)>>10)
	return address & MaskPort, area
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
