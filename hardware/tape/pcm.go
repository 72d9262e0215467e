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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/logger"
)

// logging tag
const logTag = "tape"

// UnsupportedFormat is returned when the file extension is not recognised.
const UnsupportedFormat = "tape: unsupported format (%s)"

type pcmData struct {
	// in seconds
	totalTime  float64
	sampleRate float64

	// data is mono data (taken from the left channel in the case of stereo
	// source files)
	data []float32
}

func (p pcmData) loaded() bool {
	return len(p.data) > 0 && p.sampleRate > 0
}

// getPCM decodes the recording. The format is chosen by the extension of the
// name.
func getPCM(name string, r io.ReadSeeker) (pcmData, error) {
	p := pcmData{
		data: make([]float32, 0),
	}

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".wav":
		dec := wav.NewDecoder(r)
		if dec == nil {
			return p, curated.Errorf("wav: error decoding")
		}

		if !dec.IsValidFile() {
			return p, curated.Errorf("wav: not a valid wav file")
		}

		logger.Log(logger.Allow, logTag, "loading from wav file")

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, curated.Errorf("wav: %v", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// copy first channel only of data stream
		chans := max(1, int(dec.NumChans))
		p.data = make([]float32, 0, len(floatBuf.Data)/chans)
		for i := 0; i < len(floatBuf.Data); i += chans {
			p.data = append(p.data, floatBuf.Data[i])
		}

		p.sampleRate = float64(dec.SampleRate)
		if p.sampleRate > 0 {
			p.totalTime = float64(len(p.data)) / p.sampleRate
		}

	case ".mp3":
		dec, err := mp3.NewDecoder(r)
		if err != nil {
			return p, curated.Errorf("mp3: %v", err)
		}

		logger.Log(logger.Allow, logTag, "loading from mp3 file")

		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return p, curated.Errorf("mp3: %v", err)
			}

			// the stream is always 16bit little endian with two channels.
			// only the left channel is used
			for i := 0; i+1 < chunkLen; i += 4 {
				f := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				p.data = append(p.data, float32(f))
			}
		}

		p.sampleRate = float64(dec.SampleRate())
		if p.sampleRate > 0 {
			p.totalTime = float64(len(p.data)) / p.sampleRate
		}

	default:
		return p, curated.Errorf(UnsupportedFormat, ext)
	}

	logger.Logf(logger.Allow, logTag, "sample rate: %0.2fHz", p.sampleRate)
	logger.Logf(logger.Allow, logTag, "total time: %.02fs", p.totalTime)

	return p, nil
}

// Load a recording. The name is used to decide the format of the data.
func (t *Tape) Load(name string, r io.ReadSeeker) error {
	p, err := getPCM(name, r)
	if err != nil {
		return curated.Errorf("tape: %v", err)
	}
	t.name = name
	t.pcm = p
	t.Rewind()
	return nil
}

// LoadFile loads a recording from a file.
func (t *Tape) LoadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("tape: %v", err)
	}
	defer f.Close()
	return t.Load(filepath.Base(filename), f)
}

// Eject removes the recording.
func (t *Tape) Eject() {
	t.name = ""
	t.pcm = pcmData{}
	t.Rewind()
}

// Recording returns the name of the loaded recording and its length in
// seconds.
func (t *Tape) Recording() (string, float64) {
	return t.name, t.pcm.totalTime
}

func (t *Tape) String() string {
	if !t.pcm.loaded() {
		return "no tape"
	}
	return fmt.Sprintf("%s %.1f/%.1fs", t.name, t.position, t.pcm.totalTime)
}
