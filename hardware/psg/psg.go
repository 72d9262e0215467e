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

package psg

import (
	"encoding/json"
	"fmt"

	"github.com/jetsetilly/gopher99/curated"
)

// NumChannels is the number of channels including the noise channel.
const NumChannels = 4

// NoiseChannel is the index of the noise channel.
const NoiseChannel = 3

// Silent is the attenuation value that turns a channel off.
const Silent = 0x0f

// Channel is the state of one sound channel. For the noise channel the
// Frequency field holds the noise control value.
type Channel struct {
	Frequency   uint16 `json:"frequency"`
	Attenuation uint8  `json:"attenuation"`
}

func (ch Channel) String() string {
	return fmt.Sprintf("f=%03x a=%x", ch.Frequency, ch.Attenuation)
}

// Tracker implementations record the state of the sound channels.
type Tracker interface {
	Tick(channel int, ch Channel)
}

// PSG implements the TMS9919.
type PSG struct {
	channels [NumChannels]Channel

	// the channel and register selected by the most recent latch byte
	latchChannel     int
	latchAttenuation bool

	muted bool

	tracker Tracker
}

// NewPSG is the preferred method of initialisation for the PSG type.
func NewPSG() *PSG {
	psg := &PSG{}
	psg.Reset()
	return psg
}

func (psg *PSG) String() string {
	return fmt.Sprintf("[%s] [%s] [%s] [%s]", psg.channels[0], psg.channels[1], psg.channels[2], psg.channels[3])
}

// SetTracker attaches a tracker. A nil value removes the tracker.
func (psg *PSG) SetTracker(t Tracker) {
	psg.tracker = t
}

// Reset silences all channels.
func (psg *PSG) Reset() {
	for i := range psg.channels {
		psg.channels[i] = Channel{Attenuation: Silent}
	}
	psg.latchChannel = 0
	psg.latchAttenuation = false
	psg.muted = false
}

// Mute silences the output until the next register write.
func (psg *PSG) Mute() {
	psg.muted = true
}

// IsMuted returns true if the output has been muted.
func (psg *PSG) IsMuted() bool {
	return psg.muted
}

// Channel returns the state of the channel. Out of range values return a
// silent channel.
func (psg *PSG) Channel(channel int) Channel {
	if channel < 0 || channel >= NumChannels {
		return Channel{Attenuation: Silent}
	}
	return psg.channels[channel]
}

// ReadPort implements the memory.Port interface. The TMS9919 is write only.
func (psg *PSG) ReadPort(_ uint16) uint8 {
	return 0
}

// WritePort implements the memory.Port interface.
func (psg *PSG) WritePort(_ uint16, data uint8) {
	psg.muted = false

	if data&0x80 == 0x80 {
		psg.latchChannel = int(data>>5) & 0x03
		psg.latchAttenuation = data&0x10 == 0x10
		ch := &psg.channels[psg.latchChannel]
		if psg.latchAttenuation {
			ch.Attenuation = data & 0x0f
		} else if psg.latchChannel == NoiseChannel {
			ch.Frequency = uint16(data & 0x07)
		} else {
			ch.Frequency = (ch.Frequency & 0x3f0) | uint16(data&0x0f)
		}
	} else {
		ch := &psg.channels[psg.latchChannel]
		if psg.latchAttenuation {
			ch.Attenuation = data & 0x0f
		} else if psg.latchChannel != NoiseChannel {
			ch.Frequency = (ch.Frequency & 0x00f) | uint16(data&0x3f)<<4
		}
	}

	if psg.tracker != nil {
		psg.tracker.Tick(psg.latchChannel, psg.channels[psg.latchChannel])
	}
}

type psgState struct {
	Channels         [NumChannels]Channel `json:"channels"`
	LatchChannel     int                  `json:"latchChannel"`
	LatchAttenuation bool                 `json:"latchAttenuation"`
}

// GetState returns the serialised state of the PSG.
func (psg *PSG) GetState() (json.RawMessage, error) {
	data, err := json.Marshal(psgState{
		Channels:         psg.channels,
		LatchChannel:     psg.latchChannel,
		LatchAttenuation: psg.latchAttenuation,
	})
	if err != nil {
		return nil, curated.Errorf("psg: %v", err)
	}
	return data, nil
}

// RestoreState from data created by GetState().
func (psg *PSG) RestoreState(data json.RawMessage) error {
	var s psgState
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf("psg: %v", err)
	}
	psg.channels = s.Channels
	psg.latchChannel = s.LatchChannel & 0x03
	psg.latchAttenuation = s.LatchAttenuation
	return nil
}
