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

package speech_test

import (
	"testing"

	"github.com/jetsetilly/gopher99/hardware/speech"
	"github.com/jetsetilly/gopher99/test"
)

func TestDisabled(t *testing.T) {
	sp := speech.NewTMS5220(nil, false)
	sp.WritePort(0, 0x60)
	test.ExpectFailure(t, sp.IsSpeaking())
	test.ExpectEquality(t, sp.ReadPort(0), 0x00)
}

func TestReadByte(t *testing.T) {
	rom := make([]byte, 0x100)
	rom[0x34] = 0xaa
	sp := speech.NewTMS5220(rom, true)

	// load address >00034 one nibble at a time, lowest nibble first
	sp.WritePort(0, 0x44)
	sp.WritePort(0, 0x43)
	sp.WritePort(0, 0x40)
	sp.WritePort(0, 0x40)
	sp.WritePort(0, 0x40)

	sp.WritePort(0, 0x10)
	test.ExpectEquality(t, sp.ReadPort(0), 0xaa)

	// subsequent reads return the status
	test.ExpectEquality(t, sp.ReadPort(0), 0x00)
}

func TestSpeakExternal(t *testing.T) {
	sp := speech.NewTMS5220(nil, true)
	sp.WritePort(0, 0x60)
	test.ExpectSuccess(t, sp.IsSpeaking())
	test.ExpectEquality(t, sp.ReadPort(0), speech.StatusTalk|speech.StatusBufferLow|speech.StatusBufferEmpty)

	for i := 0; i < 12; i++ {
		sp.WritePort(0, uint8(i))
	}
	test.ExpectEquality(t, sp.ReadPort(0), speech.StatusTalk)

	sp.Frame()
	test.ExpectEquality(t, sp.ReadPort(0), speech.StatusTalk|speech.StatusBufferLow)
	sp.Frame()
	test.ExpectFailure(t, sp.IsSpeaking())

	sp.WritePort(0, 0x60)
	sp.Mute()
	test.ExpectFailure(t, sp.IsSpeaking())
}

func TestState(t *testing.T) {
	sp := speech.NewTMS5220(nil, true)
	sp.WritePort(0, 0x60)
	sp.WritePort(0, 0x01)

	data, err := sp.GetState()
	test.DemandSuccess(t, err)

	other := speech.NewTMS5220(nil, true)
	test.DemandSuccess(t, other.RestoreState(data))
	test.ExpectEquality(t, other.String(), sp.String())
}
