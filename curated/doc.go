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


// Package curated creates errors that can be identified by the pattern they
// were created with. Errorf() works like fmt.Errorf() but the pattern is
// remembered:
//
//	err := curated.Errorf("cru: unknown bit (%d)", bit)
//
//	if curated.Is(err, "cru: unknown bit (%d)") {
//		...
//	}
//
// Is() only checks the outermost error. Has() checks the entire chain, so a
// pattern is still found after the error has been wrapped by another call to
// Errorf(). IsAny() returns true for any error created by Errorf() and can be
// used to separate expected errors from unexpected ones.
//
// When an error is wrapped by a caller that uses the same prefix, Error()
// removes the duplicated part. For example, a tape error wrapped as
//
//	curated.Errorf("tape: %v", err)
//
// where err is already "tape: not a WAV file" is printed as
//
//	tape: not a WAV file
//
// and not as "tape: tape: not a WAV file". This means a function can always
// wrap errors with its own prefix without knowing where they came from.
//
// Curated errors support errors.Is() and errors.As() through Unwrap() when
// the wrapped value is itself an error.
package curated
