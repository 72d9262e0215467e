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
	"time"

	"github.com/jetsetilly/gopher99/hardware/memory"
	"github.com/jetsetilly/gopher99/logger"
	"github.com/jetsetilly/gopher99/softwareloader"
)

// the delay between loading software and the start of the simulated key
// presses. gives the software time to reach the point where it reads the
// keyboard
const keyPressDelay = time.Second

// LoadSoftware resets the Console and places the software in memory. The
// Console is stopped during loading and restarted afterwards if it was
// running.
func (c *Console) LoadSoftware(sw *softwareloader.Software) {
	wasRunning := c.running
	if wasRunning {
		c.Stop()
	}

	c.Reset(sw.MemoryBlocks != nil)

	for _, b := range sw.MemoryBlocks {
		c.mem.LoadRAM(b.Address, b.Data)
	}

	if sw.ROM != nil {
		c.mem.SetCartridgeImage(sw.ROM, sw.IsInverted(), sw.RAMAt6000, sw.RAMAt7000, sw.RAMPaged)
	}

	if sw.GROM != nil {
		c.mem.LoadGROM(sw.GROM, memory.CartridgeGROMBank, 0)
	}
	for i, g := range sw.GROMs {
		c.mem.LoadGROM(g, memory.CartridgeGROMBank, i)
	}

	wp, pc := c.mem.ResetVector()
	if sw.WorkspaceAddress != 0 {
		wp = sw.WorkspaceAddress
	}
	if sw.StartAddress != 0 {
		pc = sw.StartAddress
	}
	c.cpu.SetWP(wp)
	c.cpu.SetPC(pc)

	c.softwareName = sw.Name

	logger.Logf(logger.Allow, "console", "loaded %s (WP >%04X PC >%04X)", sw, wp, pc)

	if wasRunning {
		c.Start(false)
	}

	if sw.KeyPresses != "" {
		if c.typingTask != nil {
			c.typingTask.Cancel()
		}
		keys := sw.KeyPresses
		c.typingTask = c.sched.After(keyPressDelay, func() {
			c.typingTask = nil
			c.keyboard.SimulateKeyPresses(keys, nil)
		})
	}
}

// SoftwareName returns the name of the most recently loaded software. The
// empty string if no software has been loaded.
func (c *Console) SoftwareName() string {
	return c.softwareName
}
