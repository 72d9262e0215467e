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

// Package cru implements the TMS9901 programmable systems interface. The chip
// sits on the CRU (communications register unit) bus of the TMS9900 and
// provides the interval timer, the keyboard scanning lines, the alpha lock
// line and the cassette interface.
//
// The timer is decremented by the console once per scanline with
// DecrementTimer(). The rate of decrement is expressed as a fraction of a
// timer tick and so the timer value is a floating point number.
package cru
