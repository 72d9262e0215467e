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

import (
	"fmt"

	"github.com/jetsetilly/gopher99/hardware/memory/memorymap"
)

// Port is a memory mapped device. Ports are accessed through the most
// significant byte of a word.
type Port interface {
	ReadPort(addr uint16) uint8
	WritePort(addr uint16, data uint8)
}

// the size of the system ROM. also the size of a cartridge bank
const (
	SystemROMSize = 0x2000
	BankSize      = 0x2000
)

// Memory implements the cpu.Memory interface.
type Memory struct {
	systemROM []byte

	scratchpad [0x100]byte
	lowRAM     [0x2000]byte
	highRAM    [0x6000]byte

	// memory expansion can be removed from the system
	expansion bool

	cart cartridge
	grom grom

	ports map[memorymap.Area]Port
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The system ROM is copied. A nil systemROM is replaced by DefaultSystemROM.
func NewMemory(systemROM []byte, expansion bool) *Memory {
	if systemROM == nil {
		systemROM = DefaultSystemROM()
	}
	mem := &Memory{
		systemROM: make([]byte, SystemROMSize),
		expansion: expansion,
		ports:     make(map[memorymap.Area]Port),
	}
	copy(mem.systemROM, systemROM)
	mem.Reset(false)
	return mem
}

// DefaultSystemROM returns a system ROM image that contains only the reset
// vector. Software that does not supply its own start address will run from
// address >0024 with the workspace at >83E0.
func DefaultSystemROM() []byte {
	rom := make([]byte, SystemROMSize)
	rom[0] = 0x83
	rom[1] = 0xe0
	rom[2] = 0x00
	rom[3] = 0x24
	return rom
}

func (mem *Memory) String() string {
	return mem.Status()
}

// Status returns a short summary of the memory state. Used by the debugger.
func (mem *Memory) Status() string {
	return fmt.Sprintf("GROM: >%04X %s", mem.grom.address, mem.cart.String())
}

// SystemROM returns the system ROM. The returned slice should not be modified.
func (mem *Memory) SystemROM() []byte {
	return mem.systemROM
}

// ResetVector returns the workspace pointer and program counter from the
// first two big-endian words of the system ROM.
func (mem *Memory) ResetVector() (wp uint16, pc uint16) {
	wp = uint16(mem.systemROM[0])<<8 | uint16(mem.systemROM[1])
	pc = uint16(mem.systemROM[2])<<8 | uint16(mem.systemROM[3])
	return wp, pc
}

// Reset clears RAM and the state of the GROM and cartridge. Cartridge ROM and
// GROM images are removed unless keepCart is true.
func (mem *Memory) Reset(keepCart bool) {
	clear(mem.scratchpad[:])
	clear(mem.lowRAM[:])
	clear(mem.highRAM[:])
	mem.grom.reset(keepCart)
	mem.cart.reset(keepCart)
}

// AttachPort attaches a device to the area of memory. Only the memory mapped
// device areas can have a port attached.
func (mem *Memory) AttachPort(area memorymap.Area, p Port) {
	switch area {
	case memorymap.Sound, memorymap.VDPRead, memorymap.VDPWrite, memorymap.SpeechRead, memorymap.SpeechWrite:
		mem.ports[area] = p
	default:
		panic(fmt.Sprintf("memory: cannot attach port to %s", area))
	}
}

// Read8 returns the byte at the address.
func (mem *Memory) Read8(addr uint16) uint8 {
	a, area := memorymap.MapAddress(addr)
	switch area {
	case memorymap.SystemROM:
		return mem.systemROM[a]
	case memorymap.LowRAM:
		if mem.expansion {
			return mem.lowRAM[a]
		}
	case memorymap.Cartridge:
		return mem.cart.read(a)
	case memorymap.Scratchpad:
		return mem.scratchpad[a]
	case memorymap.HighRAM:
		if mem.expansion {
			return mem.highRAM[a]
		}
	case memorymap.GROMRead:
		return mem.grom.read(a)
	case memorymap.GROMWrite:
		return 0
	default:
		if p, ok := mem.ports[area]; ok {
			if a&0x0001 == 0x0000 {
				return p.ReadPort(a)
			}
		}
	}
	return 0
}

// Write8 writes the byte to the address.
func (mem *Memory) Write8(addr uint16, data uint8) {
	a, area := memorymap.MapAddress(addr)
	switch area {
	case memorymap.LowRAM:
		if mem.expansion {
			mem.lowRAM[a] = data
		}
	case memorymap.Cartridge:
		mem.cart.write(a, data)
	case memorymap.Scratchpad:
		mem.scratchpad[a] = data
	case memorymap.HighRAM:
		if mem.expansion {
			mem.highRAM[a] = data
		}
	case memorymap.GROMWrite:
		mem.grom.write(a, data)
	case memorymap.SystemROM, memorymap.DSR, memorymap.GROMRead:
	default:
		if p, ok := mem.ports[area]; ok {
			if a&0x0001 == 0x0000 {
				p.WritePort(a, data)
			}
		}
	}
}

// ReadWord implements the cpu.Memory interface. The address is forced to an
// even value.
func (mem *Memory) ReadWord(addr uint16) uint16 {
	addr &= 0xfffe
	return uint16(mem.Read8(addr))<<8 | uint16(mem.Read8(addr+1))
}

// WriteWord implements the cpu.Memory interface. The address is forced to an
// even value.
func (mem *Memory) WriteWord(addr uint16, data uint16) {
	addr &= 0xfffe
	mem.Write8(addr, uint8(data>>8))
	mem.Write8(addr+1, uint8(data))
}

// LoadRAM copies data into memory at the address. Writes to ROM areas are
// ignored.
func (mem *Memory) LoadRAM(addr uint16, data []byte) {
	for i, d := range data {
		mem.Write8(addr+uint16(i), d)
	}
}

// SetCartridgeImage inserts a cartridge ROM. The ROM is divided into 8K
// banks. Writing to the cartridge area selects a bank.
//
// An inverted cartridge numbers its banks from the end of the ROM. If
// ramAt6000 or ramAt7000 is true then the corresponding 4K of the cartridge
// area is RAM. If ramPaged is true the cartridge RAM is banked in the same way
// as the ROM.
func (mem *Memory) SetCartridgeImage(rom []byte, inverted bool, ramAt6000 bool, ramAt7000 bool, ramPaged bool) {
	mem.cart.insert(rom, inverted, ramAt6000, ramAt7000, ramPaged)
}

// LoadGROM copies data into GROM. The bank argument is the index of the 8K
// GROM chip the data starts at. The base argument selects the GROM base,
// which is the address in the GROM area at which the GROM ports are read.
func (mem *Memory) LoadGROM(data []byte, bank int, base int) {
	mem.grom.load(data, bank, base)
}

// CartridgeBank returns the currently selected cartridge bank.
func (mem *Memory) CartridgeBank() int {
	return mem.cart.bank
}

// GROMAddress returns the current GROM address.
func (mem *Memory) GROMAddress() uint16 {
	return mem.grom.address
}
