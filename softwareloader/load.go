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

package softwareloader

import (
	"sort"
	"strings"

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/logger"
)

// the role of a file in the software is decided by its name
type role int

const (
	roleNone role = iota
	roleDescription
	roleROM
	roleSecondBank
	roleInvertedROM
	roleGROM
)

func roleFromName(name string) role {
	n := strings.ToUpper(name)
	switch {
	case strings.HasSuffix(n, ".JSON"):
		return roleDescription
	case strings.HasSuffix(n, "C.BIN"):
		return roleROM
	case strings.HasSuffix(n, "D.BIN"):
		return roleSecondBank
	case strings.HasSuffix(n, "G.BIN"):
		return roleGROM
	case strings.HasSuffix(n, "3.BIN"), strings.HasSuffix(n, "9.BIN"):
		return roleInvertedROM
	case strings.HasSuffix(n, ".BIN"), strings.HasSuffix(n, ".ROM"):
		return roleROM
	}
	return roleNone
}

// the size of a cartridge ROM bank
const bankSize = 0x2000

// Sentinel errors.
const (
	NoSoftware = "softwareloader: no software found in %s"
)

// Load the software from the file or URL. Archives are unpacked.
func Load(filename string) (*Software, error) {
	ld := NewLoader(filename)
	if err := ld.Load(); err != nil {
		return nil, err
	}
	return FromLoader(ld)
}

// FromLoader creates the software from a Loader that has been loaded.
func FromLoader(ld Loader) (*Software, error) {
	files, err := unpack(ld.Filename, ld.Data)
	if err != nil {
		return nil, err
	}

	sw, err := assemble(ld.ShortName(), files)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "softwareloader", "%s from %s", sw, ld.Filename)
	return sw, nil
}

// assemble the files into a single Software instance. A description file
// takes precedence over any other file.
func assemble(name string, files []file) (*Software, error) {
	sw := &Software{Name: name}

	var rom []byte
	var secondBank []byte
	var groms []file

	for _, f := range files {
		switch roleFromName(f.name) {
		case roleDescription:
			d, err := ParseDescription(f.data)
			if err != nil {
				return nil, err
			}
			if d.Name == "" {
				d.Name = name
			}
			return d, nil
		case roleROM:
			rom = f.data
			sw.Type = TypeCart
		case roleInvertedROM:
			rom = f.data
			sw.Type = TypeInvertedCart
		case roleSecondBank:
			secondBank = f.data
		case roleGROM:
			groms = append(groms, f)
		}
	}

	// a second bank on its own is used as the only bank
	if rom == nil && secondBank != nil {
		rom = secondBank
		secondBank = nil
		sw.Type = TypeCart
	}

	if secondBank != nil {
		banks := (len(rom) + bankSize - 1) / bankSize
		padded := make([]byte, banks*bankSize, banks*bankSize+len(secondBank))
		copy(padded, rom)
		rom = append(padded, secondBank...)
	}
	sw.ROM = rom

	// the order of GROMs in an archive is decided by their names
	sort.Slice(groms, func(i, j int) bool {
		return groms[i].name < groms[j].name
	})
	switch len(groms) {
	case 0:
	case 1:
		sw.GROM = groms[0].data
	default:
		for _, g := range groms {
			sw.GROMs = append(sw.GROMs, g.data)
		}
	}

	if sw.IsEmpty() {
		return nil, curated.Errorf(NoSoftware, name)
	}

	// software consisting only of GROM runs from the console GROM
	if sw.ROM == nil {
		sw.Type = TypeProgram
	}

	return sw, nil
}
