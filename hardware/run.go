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

package hardware

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher99/hardware/cpu"
	"github.com/jetsetilly/gopher99/hardware/cru"
	"github.com/jetsetilly/gopher99/hardware/vdp"
	"github.com/jetsetilly/gopher99/logger"
)

// FramePeriod is the period of the frame task. Approximately the refresh
// rate of the host display.
const FramePeriod = 17 * time.Millisecond

// FPSPeriod is the period of the task that logs the number of frames per
// second.
const FPSPeriod = 4 * time.Second

// the number of scanlines drawn by the video display processor. scanlines
// after this are in the vertical blank
const visibleScanlines = vdp.Height

// Start running the Console in real time. The fast argument doubles the
// number of cycles run in each frame.
//
// Calling Start() when the Console is already running leaves the speed and
// the scheduled tasks unchanged.
func (c *Console) Start(fast bool) {
	if !c.running {
		if fast {
			c.speed = 2
		} else {
			c.speed = 1
		}
		logger.Log(logger.Allow, "console", "Start")

		c.cpu.SetSuspended(false)
		c.tape.SetPaused(false)
		c.keyboard.Start()

		c.frameTask = c.sched.Every(FramePeriod, func() {
			if c.FramesToRun == 0 || c.frameCount < c.FramesToRun {
				c.Frame()
			} else {
				c.Stop()
			}
		})

		c.resetFps()
		c.printFps()
		c.fpsTask = c.sched.Every(FPSPeriod, c.printFps)

		c.notify.Started()
	}
	c.running = true
	c.state = Running
}

// Stop the Console. No frame will be run after Stop() returns.
func (c *Console) Stop() {
	logger.Log(logger.Allow, "console", "Stop")

	if c.frameTask != nil {
		c.frameTask.Cancel()
		c.frameTask = nil
	}
	if c.fpsTask != nil {
		c.fpsTask.Cancel()
		c.fpsTask = nil
	}
	if c.typingTask != nil {
		c.typingTask.Cancel()
		c.typingTask = nil
	}

	c.psg.Mute()
	c.speech.Mute()
	c.tape.SetPaused(true)
	c.keyboard.Stop()
	c.vdp.UpdateCanvas()

	wasRunning := c.running
	c.running = false
	c.state = Idle
	c.cpu.DumpProfile()

	if wasRunning {
		c.notify.Stopped()
	}
}

// Frame runs the Console for one frame. It is called by the frame task but
// can be called directly when the Console is not running.
func (c *Console) Frame() {
	if c.running {
		c.state = Running
	}

	cyclesToRun := cpu.CyclesPerFrame * c.speed
	cyclesPerScanline := cpu.CyclesPerScanline * c.speed
	extraCycles := 0
	timerToRun := float64(cru.TimerDecrementPerFrame)
	y := 0

	c.vdp.InitFrame(c.sched.Now())

	for cyclesToRun > 0 {
		if y < visibleScanlines {
			c.vdp.DrawScanline(y)
		}
		y++

		if !c.cpu.IsSuspended() {
			extraCycles = c.cpu.Run(cyclesPerScanline - extraCycles)
			if c.cpu.AtBreakpoint() {
				c.breakpoint(c.cpu)
				return
			}
		}

		gpu := c.vdp.GPU()
		if gpu != nil && !gpu.IsIdle() {
			gpu.Run(vdp.GPUCyclesPerScanline)
			if gpu.AtBreakpoint() {
				c.breakpoint(gpu)
				return
			}
		}

		c.cru.DecrementTimer(cru.TimerDecrementPerScanline)
		timerToRun -= cru.TimerDecrementPerScanline
		cyclesToRun -= cyclesPerScanline
	}

	// rounding can leave some of the timer decrement unapplied
	if timerToRun >= 1 {
		c.cru.DecrementTimer(timerToRun)
	}

	c.speech.Frame()

	c.fpsFrameCount++
	c.frameCount++
	c.vdp.UpdateCanvas()

	if !c.running && c.state == BreakpointHalted {
		c.state = Idle
	}
}

func (c *Console) breakpoint(unit cpu.ExecutionUnit) {
	unit.ClearRunTo()
	c.state = BreakpointHalted
	logger.Logf(logger.Allow, "console", "breakpoint at >%04X", unit.PC())
	if c.onBreakpoint != nil {
		c.onBreakpoint(unit)
	}
}

// DrawFrame draws the entire display without running the processors. Used
// to refresh the display when the Console is not running.
func (c *Console) DrawFrame() {
	c.vdp.DrawFrame(c.sched.Now())
	c.fpsFrameCount++
}

func (c *Console) resetFps() {
	c.lastFpsTime = time.Time{}
	c.fpsFrameCount = 0
}

// the number of frames per second when every frame is run on time
const idealFPS = float64(time.Second) / float64(FramePeriod)

func (c *Console) printFps() {
	now := c.sched.Now()
	s := fmt.Sprintf("Frame %d running", c.frameCount)
	if !c.lastFpsTime.IsZero() {
		elapsed := now.Sub(c.lastFpsTime)
		if elapsed > 0 {
			fps := float64(c.fpsFrameCount) / elapsed.Seconds()
			s = fmt.Sprintf("%s: %.1f / %.1f FPS", s, fps, idealFPS)
		}
	}
	logger.Log(logger.Allow, "console", s)
	c.lastFpsTime = now
	c.fpsFrameCount = 0
}
