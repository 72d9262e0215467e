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


package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher99/hardware"
	"github.com/jetsetilly/gopher99/hardware/preferences"
	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/test"
)

func TestHelp(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, &out), 0)
	test.ExpectEquality(t, strings.HasPrefix(out.String(), "usage: gopher99"), true)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"debug", "-h"}, &out), 0)
	test.ExpectEquality(t, strings.Contains(out.String(), "-frames"), true)
}

func TestArguments(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, &out), 10)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"run", "a.bin", "b.bin"}, &out), 10)
	test.ExpectEquality(t, out.String(), "* too many arguments\n")
}

func BenchmarkFrame(b *testing.B) {
	p, err := preferences.NewPreferencesWithPath(filepath.Join(b.TempDir(), "prefs"))
	if err != nil {
		b.Fatal(err)
	}

	con, err := hardware.NewConsole(hardware.Host{
		Prefs:     p,
		Scheduler: scheduler.NewVirtual(),
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		con.Frame()
	}
}
