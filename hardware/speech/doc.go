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

// Package speech implements the command interface of the TMS5220 speech
// synthesizer as fitted to the speech module. Speech data can come from the
// speech ROM or be written directly to the sixteen byte FIFO.
//
// Speech synthesis is not performed. Frames are consumed from the FIFO at
// the rate of the real chip so that software sees realistic status values.
package speech
