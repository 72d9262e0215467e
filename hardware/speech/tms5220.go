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

package speech

import (
	"encoding/json"
	"fmt"

	"github.com/jetsetilly/gopher99/curated"
)

// Status register bits.
const (
	StatusTalk        = 0x80
	StatusBufferLow   = 0x40
	StatusBufferEmpty = 0x20
)

// Commands recognised by the chip. The command is in bits 4 to 6.
const (
	cmdReadByte     = 0x10
	cmdReadBranch   = 0x30
	cmdLoadAddress  = 0x40
	cmdSpeak        = 0x50
	cmdSpeakExt     = 0x60
	cmdReset        = 0x70
	cmdMask         = 0x70
	fifoSize        = 16
	fifoLowWater    = 8
	bytesPerFrame   = 6
	addressNibbles  = 5
	speechROMSize   = 0x8000
	speechROMMask   = speechROMSize - 1
	noSpeechROMData = 0x00
)

// TMS5220 implements the speech synthesizer.
type TMS5220 struct {
	enabled bool

	rom []byte

	address       uint32
	addressNibble int

	// data read from ROM with cmdReadByte
	dataByte uint8

	fifo     []uint8
	speaking bool
	external bool
}

// NewTMS5220 is the preferred method of initialisation for the TMS5220 type.
// The rom argument is the speech ROM and can be nil.
func NewTMS5220(rom []byte, enabled bool) *TMS5220 {
	sp := &TMS5220{
		rom:     rom,
		enabled: enabled,
		fifo:    make([]uint8, 0, fifoSize),
	}
	sp.Reset()
	return sp
}

func (sp *TMS5220) String() string {
	return fmt.Sprintf("speech: addr=%05x fifo=%d status=%02x", sp.address, len(sp.fifo), sp.status())
}

// SetEnabled connects or disconnects the speech module.
func (sp *TMS5220) SetEnabled(enabled bool) {
	sp.enabled = enabled
}

// IsEnabled returns true if the speech module is connected.
func (sp *TMS5220) IsEnabled() bool {
	return sp.enabled
}

// Reset the chip. Speech is stopped and the FIFO emptied.
func (sp *TMS5220) Reset() {
	sp.address = 0
	sp.addressNibble = 0
	sp.dataByte = 0
	sp.fifo = sp.fifo[:0]
	sp.speaking = false
	sp.external = false
}

// Mute stops any speech in progress.
func (sp *TMS5220) Mute() {
	sp.speaking = false
	sp.external = false
	sp.fifo = sp.fifo[:0]
}

// IsSpeaking returns true if the chip is speaking.
func (sp *TMS5220) IsSpeaking() bool {
	return sp.speaking
}

func (sp *TMS5220) status() uint8 {
	var s uint8
	if sp.speaking {
		s |= StatusTalk
	}
	if sp.external && len(sp.fifo) < fifoLowWater {
		s |= StatusBufferLow
	}
	if sp.external && len(sp.fifo) == 0 {
		s |= StatusBufferEmpty
	}
	return s
}

func (sp *TMS5220) readROM() uint8 {
	if sp.rom == nil {
		return noSpeechROMData
	}
	v := sp.rom[int(sp.address&speechROMMask)%len(sp.rom)]
	sp.address++
	return v
}

// ReadPort implements the memory.Port interface. Returns the data byte if the
// previous command was a read byte command, otherwise the status register.
func (sp *TMS5220) ReadPort(_ uint16) uint8 {
	if !sp.enabled {
		return 0
	}
	if sp.dataByte != 0 {
		v := sp.dataByte
		sp.dataByte = 0
		return v
	}
	return sp.status()
}

// WritePort implements the memory.Port interface.
func (sp *TMS5220) WritePort(_ uint16, data uint8) {
	if !sp.enabled {
		return
	}

	if sp.external {
		if len(sp.fifo) < fifoSize {
			sp.fifo = append(sp.fifo, data)
		}
		return
	}

	switch data & cmdMask {
	case cmdReadByte:
		sp.addressNibble = 0
		sp.dataByte = sp.readROM()
	case cmdReadBranch:
		sp.addressNibble = 0
		hi := uint32(sp.readROM())
		lo := uint32(sp.readROM())
		sp.address = (hi<<8 | lo) & speechROMMask
	case cmdLoadAddress:
		shift := uint(sp.addressNibble * 4)
		sp.address = (sp.address &^ (0x0f << shift)) | uint32(data&0x0f)<<shift
		sp.addressNibble = (sp.addressNibble + 1) % addressNibbles
	case cmdSpeak:
		sp.addressNibble = 0
		sp.speaking = true
	case cmdSpeakExt:
		sp.addressNibble = 0
		sp.speaking = true
		sp.external = true
		sp.fifo = sp.fifo[:0]
	case cmdReset:
		sp.Reset()
	}
}

// Frame consumes one frame of speech data. Should be called every 25ms.
// Speech from ROM stops when the end of the ROM is reached.
func (sp *TMS5220) Frame() {
	if !sp.speaking {
		return
	}
	if sp.external {
		n := min(bytesPerFrame, len(sp.fifo))
		sp.fifo = sp.fifo[n:]
		if len(sp.fifo) == 0 {
			sp.speaking = false
			sp.external = false
		}
		return
	}
	if sp.rom == nil || int(sp.address)+bytesPerFrame >= len(sp.rom) {
		sp.speaking = false
		return
	}
	sp.address += bytesPerFrame
}

type speechState struct {
	Address       uint32  `json:"address"`
	AddressNibble int     `json:"addressNibble"`
	DataByte      uint8   `json:"dataByte"`
	FIFO          []uint8 `json:"fifo"`
	Speaking      bool    `json:"speaking"`
	External      bool    `json:"external"`
}

// GetState returns the serialised state of the speech synthesizer.
func (sp *TMS5220) GetState() (json.RawMessage, error) {
	data, err := json.Marshal(speechState{
		Address:       sp.address,
		AddressNibble: sp.addressNibble,
		DataByte:      sp.dataByte,
		FIFO:          sp.fifo,
		Speaking:      sp.speaking,
		External:      sp.external,
	})
	if err != nil {
		return nil, curated.Errorf("speech: %v", err)
	}
	return data, nil
}

// RestoreState from data created by GetState().
func (sp *TMS5220) RestoreState(data json.RawMessage) error {
	var s speechState
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf("speech: %v", err)
	}
	sp.address = s.Address
	sp.addressNibble = s.AddressNibble % addressNibbles
	sp.dataByte = s.DataByte
	sp.fifo = append(sp.fifo[:0], s.FIFO[:min(len(s.FIFO), fifoSize)]...)
	sp.speaking = s.Speaking
	sp.external = s.External
	return nil
}
