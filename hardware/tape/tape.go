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

package tape

import (
	"encoding/json"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/logger"
	"github.com/jetsetilly/gopher99/notifications"
)

// CPUClock is the frequency of the clock returned by the Clock function.
const CPUClock = 3000000.0

// the format of saved recordings
const (
	saveSampleRate = 44100
	saveBitDepth   = 16
	saveLevel      = 0x4000
	wavPCMFormat   = 1
)

// Clock returns the number of CPU cycles executed.
type Clock func() uint64

// a change of level on the tape output
type edge struct {
	cycles uint64
	level  bool
}

// Tape implements the cassette deck.
type Tape struct {
	notify *notifications.Dispatcher
	clock  Clock

	name string
	pcm  pcmData

	// playback position in seconds
	position float64

	motor  bool
	paused bool
	ended  bool

	lastCycles uint64

	recording []edge
}

// NewTape is the preferred method of initialisation for the Tape type. The
// notify argument can be nil.
func NewTape(notify *notifications.Dispatcher, clock Clock) *Tape {
	if clock == nil {
		clock = func() uint64 { return 0 }
	}
	t := &Tape{
		notify: notify,
		clock:  clock,
	}
	t.Reset()
	return t
}

// SetClock changes the clock used to measure playback.
func (t *Tape) SetClock(clock Clock) {
	t.clock = clock
	t.lastCycles = clock()
}

// Reset rewinds the tape and stops the motor. The recording remains loaded.
func (t *Tape) Reset() {
	t.motor = false
	t.paused = false
	t.Rewind()
}

// Rewind the tape to the start and discard anything recorded from the tape
// output.
func (t *Tape) Rewind() {
	t.position = 0
	t.ended = false
	t.recording = t.recording[:0]
	t.lastCycles = t.clock()
}

// advance the playback position by the number of cycles since the last call
func (t *Tape) advance() {
	now := t.clock()
	if now < t.lastCycles {
		t.lastCycles = now
	}
	if t.motor && !t.paused && t.pcm.loaded() {
		t.position += float64(now-t.lastCycles) / CPUClock
	}
	t.lastCycles = now
}

// SetPaused pauses or resumes playback.
func (t *Tape) SetPaused(paused bool) {
	t.advance()
	t.paused = paused
}

// IsPaused returns true if playback is paused.
func (t *Tape) IsPaused() bool {
	return t.paused
}

// IsMotorOn returns true if the cassette motor is on.
func (t *Tape) IsMotorOn() bool {
	return t.motor
}

// Position returns the playback position in seconds.
func (t *Tape) Position() float64 {
	t.advance()
	return t.position
}

// SetMotor implements the cru.Cassette interface.
func (t *Tape) SetMotor(on bool) {
	t.advance()
	if on == t.motor {
		return
	}
	t.motor = on
	if on && t.pcm.loaded() && !t.ended {
		logger.Logf(logger.Allow, logTag, "playing %s", t.name)
		t.notify.Publish(notifications.Event{Notice: notifications.NotifyTapeLoadStarted})
	}
}

// Input implements the cru.Cassette interface.
func (t *Tape) Input() bool {
	t.advance()
	if !t.pcm.loaded() {
		return false
	}

	idx := int(t.position * t.pcm.sampleRate)
	if idx >= len(t.pcm.data) {
		if !t.ended {
			t.ended = true
			logger.Logf(logger.Allow, logTag, "end of %s", t.name)
			t.notify.Publish(notifications.Event{Notice: notifications.NotifyTapeLoadEnded})
		}
		return false
	}

	return t.pcm.data[idx] > 0
}

// Output implements the cru.Cassette interface. The level is recorded if the
// motor is on.
func (t *Tape) Output(level bool) {
	if !t.motor || t.paused {
		return
	}
	n := len(t.recording)
	if n > 0 && t.recording[n-1].level == level {
		return
	}
	t.recording = append(t.recording, edge{cycles: t.clock(), level: level})
}

// Save writes the level changes recorded from the tape output as a 16bit
// mono WAV file.
func (t *Tape) Save(w io.WriteSeeker) error {
	if len(t.recording) == 0 {
		return curated.Errorf("tape: nothing recorded")
	}

	start := t.recording[0].cycles
	end := t.clock()
	if end <= start {
		end = t.recording[len(t.recording)-1].cycles + 1
	}

	numSamples := int(float64(end-start) / CPUClock * saveSampleRate)
	data := make([]int, numSamples)

	e := 0
	for i := range data {
		cycles := start + uint64(float64(i)/saveSampleRate*CPUClock)
		for e+1 < len(t.recording) && t.recording[e+1].cycles <= cycles {
			e++
		}
		if t.recording[e].level {
			data[i] = saveLevel
		} else {
			data[i] = -saveLevel
		}
	}

	enc := wav.NewEncoder(w, saveSampleRate, saveBitDepth, 1, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  saveSampleRate,
		},
		Data:           data,
		SourceBitDepth: saveBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return curated.Errorf("tape: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("tape: %v", err)
	}

	logger.Logf(logger.Allow, logTag, "saved %d samples", numSamples)
	return nil
}

type tapeState struct {
	Position float64 `json:"position"`
	Motor    bool    `json:"motor"`
	Paused   bool    `json:"paused"`
	Ended    bool    `json:"ended"`
}

// GetState returns the serialised state of the tape deck. The recording
// itself is not included.
func (t *Tape) GetState() (json.RawMessage, error) {
	t.advance()
	data, err := json.Marshal(tapeState{
		Position: t.position,
		Motor:    t.motor,
		Paused:   t.paused,
		Ended:    t.ended,
	})
	if err != nil {
		return nil, curated.Errorf("tape: %v", err)
	}
	return data, nil
}

// RestoreState from data created by GetState().
func (t *Tape) RestoreState(data json.RawMessage) error {
	var s tapeState
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf("tape: %v", err)
	}
	t.position = s.Position
	t.motor = s.Motor
	t.paused = s.Paused
	t.ended = s.Ended
	t.lastCycles = t.clock()
	return nil
}
