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

// Package notifications allow communication from the emulation to the host
// application. Events are published by the console and its peripherals (eg.
// the console starting or stopping, or a disk image being inserted into a
// drive) and delivered to every subscriber.
//
// Delivery is fire-and-forget. The emulation never waits for an
// acknowledgement and errors from subscribers are only logged.
package notifications
