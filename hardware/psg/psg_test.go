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

package psg_test

import (
	"testing"

	"github.com/jetsetilly/gopher99/hardware/psg"
	"github.com/jetsetilly/gopher99/test"
)

type tracker struct {
	ticks int
	last  psg.Channel
}

func (t *tracker) Tick(_ int, ch psg.Channel) {
	t.ticks++
	t.last = ch
}

func TestRegisters(t *testing.T) {
	p := psg.NewPSG()
	tr := &tracker{}
	p.SetTracker(tr)

	// tone 1 frequency >1FE
	p.WritePort(0, 0x8e)
	p.WritePort(0, 0x1f)
	test.ExpectEquality(t, p.Channel(0).Frequency, 0x1fe)

	// tone 2 attenuation
	p.WritePort(0, 0xb4)
	test.ExpectEquality(t, p.Channel(1).Attenuation, 0x04)

	// noise control
	p.WritePort(0, 0xe5)
	test.ExpectEquality(t, p.Channel(psg.NoiseChannel).Frequency, 0x05)

	test.ExpectEquality(t, tr.ticks, 4)
	test.ExpectEquality(t, tr.last.Frequency, 0x05)

	test.ExpectEquality(t, p.Channel(10).Attenuation, psg.Silent)
}

func TestMute(t *testing.T) {
	p := psg.NewPSG()
	p.Mute()
	test.ExpectSuccess(t, p.IsMuted())
	p.WritePort(0, 0x90)
	test.ExpectFailure(t, p.IsMuted())

	p.Reset()
	test.ExpectEquality(t, p.Channel(0).Attenuation, psg.Silent)
}

func TestState(t *testing.T) {
	p := psg.NewPSG()
	p.WritePort(0, 0x8e)
	p.WritePort(0, 0x1f)

	data, err := p.GetState()
	test.DemandSuccess(t, err)

	q := psg.NewPSG()
	test.DemandSuccess(t, q.RestoreState(data))
	test.ExpectEquality(t, q.String(), p.String())
}
