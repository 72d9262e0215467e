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

package preferences_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher99/hardware/preferences"
	"github.com/jetsetilly/gopher99/prefs"
	"github.com/jetsetilly/gopher99/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	p, err := preferences.NewPreferencesWithPath(pth)
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.F18A.Get().(bool))
	test.ExpectSuccess(t, p.MemoryExpansion.Get().(bool))
	test.ExpectSuccess(t, p.PCKeyboard.Get().(bool))
	test.ExpectSuccess(t, strings.Contains(p.String(), "hardware.f18a :: false"))
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	p, err := preferences.NewPreferencesWithPath(pth)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.F18A.Set(true))
	test.DemandSuccess(t, p.Joystick2.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesWithPath(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.F18A.Get().(bool))
	test.ExpectSuccess(t, q.Joystick2.Get().(bool))

	test.DemandSuccess(t, q.Reset())
	test.ExpectFailure(t, q.F18A.Get().(bool))
	test.ExpectSuccess(t, q.ArrowKeysFctn.Get().(bool))
}

func TestHook(t *testing.T) {
	p, err := preferences.NewPreferencesWithPath(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	var layout bool
	p.PCKeyboard.SetHookPost(func(v prefs.Value) error {
		layout = v.(bool)
		return nil
	})
	test.DemandSuccess(t, p.PCKeyboard.Set(false))
	test.ExpectFailure(t, layout)
	test.DemandSuccess(t, p.PCKeyboard.Set("true"))
	test.ExpectSuccess(t, layout)
}
