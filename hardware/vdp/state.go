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

import (
	"encoding/json"

	"github.com/jetsetilly/gopher99/curated"
)

type vdpState struct {
	VRAM      []byte  `json:"vram"`
	Registers []uint8 `json:"registers"`
	Status    uint8   `json:"status"`
	Address   uint16  `json:"address"`
	Latch     bool    `json:"latch"`
	LatchData uint8   `json:"latchData"`
	Buffer    uint8   `json:"buffer"`
}

// GetState returns the serialised state of the VDP.
func (vdp *TMS9918A) GetState() (json.RawMessage, error) {
	data, err := json.Marshal(vdpState{
		VRAM:      vdp.vram[:],
		Registers: vdp.regs,
		Status:    vdp.status,
		Address:   vdp.address,
		Latch:     vdp.latch,
		LatchData: vdp.latchData,
		Buffer:    vdp.buffer,
	})
	if err != nil {
		return nil, curated.Errorf("vdp: %v", err)
	}
	return data, nil
}

// RestoreState from data created by GetState(). Registers that the VDP does
// not have are ignored.
func (vdp *TMS9918A) RestoreState(data json.RawMessage) error {
	var s vdpState
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf("vdp: %v", err)
	}
	copy(vdp.vram[:], s.VRAM)
	clear(vdp.regs)
	copy(vdp.regs, s.Registers)
	vdp.status = s.Status
	vdp.address = s.Address & vramMask
	vdp.latch = s.Latch
	vdp.latchData = s.LatchData
	vdp.buffer = s.Buffer
	return nil
}
