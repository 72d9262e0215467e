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

import "testing"

// DemandEquality is the fatal version of ExpectEquality(). Use it when later
// parts of the test depend on the values being equal, for example when the
// length of a slice is checked before the slice is indexed.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v == expectedValue {
		return
	}
	t.Fatalf("%sdemanded equality for %T: '%v' is not '%v'", id(tags...), v, v, expectedValue)
}

// DemandSuccess is the fatal version of ExpectSuccess().
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		return
	}
	if err, ok := v.(error); ok {
		t.Fatalf("%sdemanded success for %T: %v", id(tags...), v, err)
	}
	t.Fatalf("%sdemanded success for %T", id(tags...), v)
}

// DemandFailure is the fatal version of ExpectFailure().
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !expect(t, v, tags...) {
		return
	}
	t.Fatalf("%sdemanded failure for %T", id(tags...), v)
}
