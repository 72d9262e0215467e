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

package preferences

import (
	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/paths"
	"github.com/jetsetilly/gopher99/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// fit the F18A in place of the TMS9918A
	F18A prefs.Bool

	// attach the cloud drives GDR1 to GDR3
	CloudDrives prefs.Bool

	// the 32K memory expansion is fitted
	MemoryExpansion prefs.Bool

	// the speech synthesizer is fitted
	Speech prefs.Bool

	// host keys are translated by character rather than by position
	PCKeyboard prefs.Bool

	// arrow keys produce Fctn+S/D/E/X when the software is not reading the
	// joystick
	ArrowKeysFctn prefs.Bool

	// Tab and the arrow keys drive the second joystick
	Joystick2 prefs.Bool

	// filenames of ROM images. an empty string means the built-in image
	SystemROM prefs.String
	SpeechROM prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesWithPath(paths.ResourcePath("", prefs.DefaultPrefsFile))
}

// NewPreferencesWithPath is the same as NewPreferences() but the
// preferences file is specified.
func NewPreferencesWithPath(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.f18a", &p.F18A)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.clouddrives", &p.CloudDrives)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.memexpansion", &p.MemoryExpansion)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.speech", &p.Speech)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.systemrom", &p.SystemROM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.speechrom", &p.SpeechROM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("keyboard.pclayout", &p.PCKeyboard)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("keyboard.arrowsfctn", &p.ArrowKeysFctn)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("keyboard.joystick2", &p.Joystick2)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults sets every preference to its default value.
func (p *Preferences) SetDefaults() {
	_ = p.F18A.Set(false)
	_ = p.CloudDrives.Set(false)
	_ = p.MemoryExpansion.Set(true)
	_ = p.Speech.Set(true)
	_ = p.SystemROM.Set("")
	_ = p.SpeechROM.Set("")
	_ = p.PCKeyboard.Set(true)
	_ = p.ArrowKeysFctn.Set(true)
	_ = p.Joystick2.Set(false)
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
