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
	"github.com/jetsetilly/gopher99/hardware/cpu"
)

// the size in bytes of every instruction stepped over by StepOver()
const stepOverSize = 4

// the active processor is the GPU if it is present and not idle
func (c *Console) active() cpu.ExecutionUnit {
	gpu := c.vdp.GPU()
	if gpu != nil && !gpu.IsIdle() {
		return gpu
	}
	return c.cpu
}

// Step executes a single instruction on the active processor. The frame task
// is not affected.
func (c *Console) Step() {
	c.active().Run(1)
}

// StepOver runs the Console until the active processor reaches the address
// of the instruction after the current one. Instructions are assumed to be
// four bytes long.
func (c *Console) StepOver() {
	unit := c.active()
	unit.SetRunTo(unit.PC() + stepOverSize)
	c.Start(false)
}
