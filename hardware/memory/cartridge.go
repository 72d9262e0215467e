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

import "fmt"

// the cartridge RAM areas are each 4K
const cartRAMSize = 0x1000

type cartridge struct {
	rom      []byte
	numBanks int
	bank     int

	inverted  bool
	ramAt6000 bool
	ramAt7000 bool
	ramPaged  bool

	// one 8K RAM page per bank when the RAM is paged, otherwise a single
	// page
	ram [][]byte
}

func (cart *cartridge) String() string {
	if cart.rom == nil {
		return "no cartridge"
	}
	s := fmt.Sprintf("bank %d/%d", cart.bank, cart.numBanks)
	if cart.inverted {
		s += " inverted"
	}
	if cart.ramAt6000 || cart.ramAt7000 {
		s += " RAM"
		if cart.ramPaged {
			s += " paged"
		}
	}
	return s
}

func (cart *cartridge) reset(keepCart bool) {
	if !keepCart {
		*cart = cartridge{}
		return
	}
	cart.bank = cart.firstBank()
	for _, p := range cart.ram {
		clear(p)
	}
}

func (cart *cartridge) firstBank() int {
	if cart.inverted {
		return cart.numBanks - 1
	}
	return 0
}

func (cart *cartridge) insert(rom []byte, inverted bool, ramAt6000 bool, ramAt7000 bool, ramPaged bool) {
	cart.numBanks = (len(rom) + BankSize - 1) / BankSize
	if cart.numBanks == 0 {
		cart.numBanks = 1
	}

	// the ROM is padded to a whole number of banks
	cart.rom = make([]byte, cart.numBanks*BankSize)
	copy(cart.rom, rom)

	cart.inverted = inverted
	cart.ramAt6000 = ramAt6000
	cart.ramAt7000 = ramAt7000
	cart.ramPaged = ramPaged

	pages := 1
	if ramPaged {
		pages = cart.numBanks
	}
	cart.ram = make([][]byte, pages)
	for i := range cart.ram {
		cart.ram[i] = make([]byte, BankSize)
	}

	cart.bank = cart.firstBank()
}

func (cart *cartridge) isRAM(a uint16) bool {
	if a < cartRAMSize {
		return cart.ramAt6000
	}
	return cart.ramAt7000
}

func (cart *cartridge) page() []byte {
	if cart.ramPaged {
		return cart.ram[cart.bank]
	}
	return cart.ram[0]
}

func (cart *cartridge) read(a uint16) uint8 {
	if cart.rom == nil {
		return 0
	}
	if cart.isRAM(a) {
		return cart.page()[a]
	}
	return cart.rom[cart.bank*BankSize+int(a)]
}

func (cart *cartridge) write(a uint16, data uint8) {
	if cart.rom == nil {
		return
	}
	if cart.isRAM(a) {
		cart.page()[a] = data
		return
	}

	// writing to the ROM selects the bank. the bank number is taken from
	// the address
	bank := int(a>>1) % cart.numBanks
	if cart.inverted {
		bank = cart.numBanks - 1 - bank
	}
	cart.bank = bank
}
