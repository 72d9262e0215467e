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
	"encoding/json"

	"github.com/jetsetilly/gopher99/curated"
)

// ROM images are not part of the state. A state should be restored with the
// same software loaded.
type memoryState struct {
	Scratchpad  []byte   `json:"scratchpad"`
	LowRAM      []byte   `json:"lowRAM"`
	HighRAM     []byte   `json:"highRAM"`
	Expansion   bool     `json:"expansion"`
	Bank        int      `json:"bank"`
	CartRAM     [][]byte `json:"cartRAM,omitempty"`
	GROMAddress uint16   `json:"gromAddress"`
	AddressLow  bool     `json:"gromAddressLow"`
}

// GetState returns the serialised state of memory.
func (mem *Memory) GetState() (json.RawMessage, error) {
	data, err := json.Marshal(memoryState{
		Scratchpad:  mem.scratchpad[:],
		LowRAM:      mem.lowRAM[:],
		HighRAM:     mem.highRAM[:],
		Expansion:   mem.expansion,
		Bank:        mem.cart.bank,
		CartRAM:     mem.cart.ram,
		GROMAddress: mem.grom.address,
		AddressLow:  mem.grom.addressLow,
	})
	if err != nil {
		return nil, curated.Errorf("memory: %v", err)
	}
	return data, nil
}

// RestoreState from data created by GetState().
func (mem *Memory) RestoreState(data json.RawMessage) error {
	var s memoryState
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf("memory: %v", err)
	}
	copy(mem.scratchpad[:], s.Scratchpad)
	copy(mem.lowRAM[:], s.LowRAM)
	copy(mem.highRAM[:], s.HighRAM)
	mem.expansion = s.Expansion

	if s.Bank >= 0 && s.Bank < mem.cart.numBanks {
		mem.cart.bank = s.Bank
	}
	for i := 0; i < min(len(s.CartRAM), len(mem.cart.ram)); i++ {
		copy(mem.cart.ram[i], s.CartRAM[i])
	}

	mem.grom.address = s.GROMAddress
	mem.grom.addressLow = s.AddressLow
	return nil
}
