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

package tape_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/hardware/tape"
	"github.com/jetsetilly/gopher99/notifications"
	"github.com/jetsetilly/gopher99/test"
)

// writeWAV creates a 16bit mono WAV file
func writeWAV(t *testing.T, filename string, rate int, data []int) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	test.DemandSuccess(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	test.DemandSuccess(t, enc.Close())
}

type clock struct {
	cycles uint64
}

func (c *clock) now() uint64 {
	return c.cycles
}

func (c *clock) seconds(s float64) {
	c.cycles += uint64(s * tape.CPUClock)
}

func TestPlayback(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "recording.wav")

	// 0.1 seconds high followed by 0.1 seconds low
	data := make([]int, 200)
	for i := range data {
		if i < 100 {
			data[i] = 1000
		} else {
			data[i] = -1000
		}
	}
	writeWAV(t, filename, 1000, data)

	var notices []notifications.Notice
	notify := notifications.NewDispatcher()
	notify.Subscribe(notifications.NotifyFunc(func(ev notifications.Event) error {
		notices = append(notices, ev.Notice)
		return nil
	}))

	clk := &clock{}
	tp := tape.NewTape(notify, clk.now)
	test.DemandSuccess(t, tp.LoadFile(filename))

	name, length := tp.Recording()
	test.ExpectEquality(t, name, "recording.wav")
	test.ExpectApproximate(t, length, 0.2, 0.01)

	// the tape does not move without the motor
	clk.seconds(0.15)
	test.ExpectSuccess(t, tp.Input())

	tp.SetMotor(true)
	clk.seconds(0.15)
	test.ExpectFailure(t, tp.Input())
	test.ExpectApproximate(t, tp.Position(), 0.15, 0.01)

	// pausing stops the tape
	tp.SetPaused(true)
	clk.seconds(1.0)
	test.ExpectApproximate(t, tp.Position(), 0.15, 0.01)

	tp.SetPaused(false)
	clk.seconds(0.1)
	test.ExpectFailure(t, tp.Input())

	test.DemandEquality(t, len(notices), 2)
	test.ExpectEquality(t, notices[0], notifications.NotifyTapeLoadStarted)
	test.ExpectEquality(t, notices[1], notifications.NotifyTapeLoadEnded)

	// reset rewinds the tape
	tp.Reset()
	test.ExpectEquality(t, tp.Position(), 0.0)
	test.ExpectFailure(t, tp.IsMotorOn())
	test.ExpectSuccess(t, tp.Input())
}

func TestSave(t *testing.T) {
	clk := &clock{}
	tp := tape.NewTape(nil, clk.now)

	test.ExpectFailure(t, tp.Save(nil))

	tp.SetMotor(true)
	tp.Output(true)
	clk.seconds(0.01)
	tp.Output(false)
	clk.seconds(0.01)

	filename := filepath.Join(t.TempDir(), "saved.wav")
	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, tp.Save(f))
	test.DemandSuccess(t, f.Close())

	other := tape.NewTape(nil, clk.now)
	test.DemandSuccess(t, other.LoadFile(filename))
	_, length := other.Recording()
	test.ExpectApproximate(t, length, 0.02, 0.05)
	test.ExpectSuccess(t, other.Input())
}

func TestUnsupportedFormat(t *testing.T) {
	tp := tape.NewTape(nil, nil)
	err := tp.Load("recording.txt", bytes.NewReader(nil))
	test.ExpectSuccess(t, curated.Has(err, tape.UnsupportedFormat))
	test.ExpectEquality(t, tp.String(), "no tape")
}

func TestState(t *testing.T) {
	clk := &clock{}
	tp := tape.NewTape(nil, clk.now)
	tp.SetMotor(true)
	tp.SetPaused(true)

	data, err := tp.GetState()
	test.DemandSuccess(t, err)

	other := tape.NewTape(nil, clk.now)
	test.DemandSuccess(t, other.RestoreState(data))
	test.ExpectSuccess(t, other.IsMotorOn())
	test.ExpectSuccess(t, other.IsPaused())
}
