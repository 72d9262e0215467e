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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/prefs"
	"github.com/jetsetilly/gopher99/test"
)

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var i prefs.Int
	var f prefs.Float
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("bool", &b))
	test.ExpectSuccess(t, dsk.Add("int", &i))
	test.ExpectSuccess(t, dsk.Add("float", &f))
	test.ExpectSuccess(t, dsk.Add("string", &s))

	// file doesn't exist yet so load will fail but the file will be created
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, i.Set(10))
	test.ExpectSuccess(t, f.Set("0.5"))
	test.ExpectSuccess(t, s.Set("hello world"))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "bool :: true\nfloat :: 0.500\nint :: 10\nstring :: hello world\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectEquality(t, i.Get().(int), 0)

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, i.Get().(int), 10)
	test.ExpectEquality(t, f.Get().(float64), 0.5)
	test.ExpectEquality(t, s.String(), "hello world")
}

// values in the prefs file that belong to a different Disk instance are not
// lost when saving
func TestPreserveUnknownKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.Int
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, a.Set(1))
	test.DemandSuccess(t, dskA.Save())

	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.Int
	test.ExpectSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, b.Set(2))
	test.DemandSuccess(t, dskB.Save())

	cmpPrefFile(t, fn, "a :: 1\nb :: 2\n")
}

func TestInvalidKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("foo bar", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("foo", &v), prefs.DuplicateKey))
}

func TestHooks(t *testing.T) {
	var v prefs.Bool
	var post bool

	v.SetHookPre(func(value prefs.Value) error {
		if !value.(bool) {
			return fmt.Errorf("refused")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(bool)
		return nil
	})

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, post)

	// pre hook refuses the new value so the old value remains
	test.ExpectFailure(t, v.Set(false))
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestCommandLineOverride(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("keyboard.pclayout::true; unused::10")
	defer prefs.PopCommandLineStack()

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("keyboard.pclayout", &v))
	test.ExpectEquality(t, v.Get().(bool), true)
}
