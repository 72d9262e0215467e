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

// Package preferences defines the hardware configuration of the console. The
// values are persisted to disk with the prefs package.
//
// Changing the keyboard preferences takes effect immediately if the console
// has installed post hooks (see prefs.Bool.SetHookPost()). The remaining
// preferences take effect when the console is next assembled.
package preferences
