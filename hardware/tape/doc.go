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

// Package tape implements the cassette interface. Recordings are loaded from
// WAV or MP3 files and played back through the CRU tape input. The level
// written to the CRU tape output can be recorded and saved as a WAV file.
//
// The playback position is measured against a clock that returns the number
// of CPU cycles executed. Playback only advances while the cassette motor is
// on and the tape is not paused.
package tape
