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

package cru

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jetsetilly/gopher99/curated"
)

// The amount by which the timer is decremented each frame and each scanline.
// The per-scanline amount multiplied by the number of scanlines in a frame is
// slightly less than the per-frame amount. The console applies the remainder
// at the end of the frame.
const (
	TimerDecrementPerFrame    = 781
	TimerDecrementPerScanline = 2.8503
)

// CRU bit addresses of the TMS9901.
const (
	BitTimerMode   = 0
	BitFirstRow    = 3
	BitLastRow     = 10
	BitTimerIntAck = 3
	BitClockLast   = 14
	BitColumn0     = 18
	BitColumn1     = 19
	BitColumn2     = 20
	BitAlphaLock   = 21
	BitMotor1      = 22
	BitMotor2      = 23
	BitAudioGate   = 24
	BitTapeOut     = 25
	BitTapeIn      = 27
	NumBits        = 32
)

// the alpha lock key shares a row line with the keyboard
const alphaLockRow = 7

// KeyMatrix is the keyboard as seen by the CRU. The keyboard.Keyboard type
// satisfies this interface.
type KeyMatrix interface {
	IsKeyDown(col int, row int) bool
	IsAlphaLockDown() bool
}

// Cassette is the tape deck as seen by the CRU.
type Cassette interface {
	// the current level of the recording
	Input() bool

	// the level being written to the cassette
	Output(level bool)

	SetMotor(on bool)
}

// CRU implements the TMS9901.
type CRU struct {
	keys KeyMatrix
	tape Cassette

	// output bits. input bits are computed when read
	bits [NumBits]bool

	// the value loaded into the decrementer when it reaches zero. a value of
	// zero means the timer is disabled
	clockRegister int

	decrementer float64

	// the decrementer value latched when timer mode is entered
	readRegister int

	timerInterrupt bool
}

// NewCRU is the preferred method of initialisation for the CRU type. The tape
// argument can be nil.
func NewCRU(keys KeyMatrix, tape Cassette) *CRU {
	cru := &CRU{
		keys: keys,
		tape: tape,
	}
	cru.Reset()
	return cru
}

func (cru *CRU) String() string {
	return cru.Status()
}

// Status returns a short summary of the CRU state. Used by the debugger.
func (cru *CRU) Status() string {
	return fmt.Sprintf("CRU: timer %04X/%04X mode:%s int:%v",
		int(math.Max(0, cru.decrementer)), cru.clockRegister, cru.mode(), cru.timerInterrupt)
}

func (cru *CRU) mode() string {
	if cru.bits[BitTimerMode] {
		return "timer"
	}
	return "io"
}

// Reset the CRU to its power-on state.
func (cru *CRU) Reset() {
	clear(cru.bits[:])
	cru.clockRegister = 0
	cru.decrementer = 0
	cru.readRegister = 0
	cru.timerInterrupt = false

	// alpha lock line is active low
	cru.bits[BitAlphaLock] = true
}

// DecrementTimer reduces the decrementer by the amount. The decrementer is
// reloaded from the clock register and the timer interrupt is raised when
// the decrementer reaches zero.
func (cru *CRU) DecrementTimer(amount float64) {
	if cru.clockRegister == 0 {
		return
	}
	cru.decrementer -= amount
	if cru.decrementer <= 0 {
		cru.decrementer += float64(cru.clockRegister)
		cru.timerInterrupt = true
	}
}

// TimerInterrupt returns true if the timer interrupt is pending.
func (cru *CRU) TimerInterrupt() bool {
	return cru.timerInterrupt
}

func (cru *CRU) column() int {
	col := 0
	if cru.bits[BitColumn0] {
		col |= 0x01
	}
	if cru.bits[BitColumn1] {
		col |= 0x02
	}
	if cru.bits[BitColumn2] {
		col |= 0x04
	}
	return col
}

// ReadBit implements the cpu.CRU interface. Keyboard lines are active low.
func (cru *CRU) ReadBit(addr uint16) bool {
	if addr >= NumBits {
		return true
	}

	if cru.bits[BitTimerMode] {
		switch {
		case addr == BitTimerMode:
			return true
		case addr <= BitClockLast:
			return cru.readRegister&(1<<(addr-1)) != 0
		case addr == BitClockLast+1:
			return cru.timerInterrupt
		}
	}

	switch {
	case addr >= BitFirstRow && addr <= BitLastRow:
		if cru.keys == nil {
			return true
		}
		if addr == alphaLockRow && !cru.bits[BitAlphaLock] {
			return !cru.keys.IsAlphaLockDown()
		}
		return !cru.keys.IsKeyDown(cru.column(), int(addr))
	case addr == BitTapeIn:
		if cru.tape == nil {
			return false
		}
		return cru.tape.Input()
	}

	return cru.bits[addr]
}

// WriteBit implements the cpu.CRU interface.
func (cru *CRU) WriteBit(addr uint16, value bool) {
	if addr >= NumBits {
		return
	}

	if addr == BitTimerMode {
		if value && !cru.bits[BitTimerMode] {
			cru.readRegister = int(math.Max(0, cru.decrementer))
		} else if !value && cru.bits[BitTimerMode] {
			cru.decrementer = float64(cru.clockRegister)
		}
		cru.bits[BitTimerMode] = value
		return
	}

	if cru.bits[BitTimerMode] && addr <= BitClockLast {
		bit := 1 << (addr - 1)
		if value {
			cru.clockRegister |= bit
		} else {
			cru.clockRegister &^= bit
		}
		cru.decrementer = float64(cru.clockRegister)
		return
	}

	if addr == BitTapeOut && cru.tape != nil {
		cru.tape.Output(value)
	}

	if addr == BitTimerIntAck && value {
		cru.timerInterrupt = false
	}

	if (addr == BitMotor1 || addr == BitMotor2) && cru.tape != nil {
		on := value || cru.bits[BitMotor1+BitMotor2-addr]
		cru.tape.SetMotor(on)
	}

	cru.bits[addr] = value
}

type cruState struct {
	Bits           [NumBits]bool `json:"bits"`
	ClockRegister  int           `json:"clockRegister"`
	Decrementer    float64       `json:"decrementer"`
	ReadRegister   int           `json:"readRegister"`
	TimerInterrupt bool          `json:"timerInterrupt"`
}

// GetState returns the serialised state of the CRU.
func (cru *CRU) GetState() (json.RawMessage, error) {
	data, err := json.Marshal(cruState{
		Bits:           cru.bits,
		ClockRegister:  cru.clockRegister,
		Decrementer:    cru.decrementer,
		ReadRegister:   cru.readRegister,
		TimerInterrupt: cru.timerInterrupt,
	})
	if err != nil {
		return nil, curated.Errorf("cru: %v", err)
	}
	return data, nil
}

// RestoreState from data created by GetState().
func (cru *CRU) RestoreState(data json.RawMessage) error {
	var s cruState
	if err := json.Unmarshal(data, &s); err != nil {
		return curated.Errorf("cru: %v", err)
	}
	cru.bits = s.Bits
	cru.clockRegister = s.ClockRegister
	cru.decrementer = s.Decrementer
	cru.readRegister = s.ReadRegister
	cru.timerInterrupt = s.TimerInterrupt
	return nil
}
