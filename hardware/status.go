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

// PC returns the program counter of the active processor. The active
// processor is the GPU when it is present and not idle.
func (c *Console) PC() uint16 {
	return c.active().PC()
}

// Status returns a summary of the active processor and of the other
// components. Used by the debugger.
func (c *Console) Status() string {
	gpu := c.vdp.GPU()
	if gpu != nil && !gpu.IsIdle() {
		return gpu.InternalRegsString() + " F18A GPU " + c.cru.Status() + "\n" +
			gpu.RegsStringFormatted() + c.vdp.RegsString() + " " + c.mem.Status()
	}
	return c.cpu.InternalRegsString() + " " + c.cru.Status() + "\n" +
		c.cpu.RegsStringFormatted() + c.vdp.RegsString() + " " + c.mem.Status()
}
