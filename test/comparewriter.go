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


package test

import "strings"

// CompareWriter is an io.Writer that collects everything written to it so
// that it can be compared with an expected string. Output is also available
// line by line.
type CompareWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.buffer.Write(p)
}

// Clear discards everything written so far.
func (cw *CompareWriter) Clear() {
	cw.buffer.Reset()
}

// Compare returns true if the output so far is exactly the string.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.buffer.String() == s
}

// Lines returns the output split into lines. A trailing line ending does not
// create an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// String implements the fmt.Stringer interface.
func (cw *CompareWriter) String() string {
	return cw.buffer.String()
}
