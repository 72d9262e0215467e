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

package hardware

import (
	"encoding/json"
	"io"

	"github.com/jetsetilly/gopher99/curated"
)

// Snapshot is the state of the Console. Each key holds the state of one
// component.
type Snapshot map[string]json.RawMessage

// the state of each component is opaque to the Console
type stateful interface {
	GetState() (json.RawMessage, error)
	RestoreState(data json.RawMessage) error
}

type snapshotEntry struct {
	key   string
	alias string
	comp  stateful
}

// the order of the entries is the order in which the state is restored
func (c *Console) snapshotEntries() []snapshotEntry {
	return []snapshotEntry{
		{key: "tms9900", alias: "cpu", comp: c.cpu},
		{key: "memory", comp: c.mem},
		{key: "cru", comp: c.cru},
		{key: "keyboard", comp: c.keyboard},
		{key: "vdp", comp: c.vdp},
		{key: "tms9919", alias: "psg", comp: c.psg},
		{key: "tms5220", alias: "speech", comp: c.speech},
		{key: "tape", comp: c.tape},
	}
}

// GetState returns the state of every component.
func (c *Console) GetState() (Snapshot, error) {
	s := make(Snapshot)
	for _, e := range c.snapshotEntries() {
		data, err := e.comp.GetState()
		if err != nil {
			return nil, curated.Errorf("console: state: %s: %v", e.key, err)
		}
		s[e.key] = data
	}
	return s, nil
}

// RestoreState restores the state of the components named in the snapshot.
// Components missing from the snapshot are left untouched and unknown keys
// are ignored.
func (c *Console) RestoreState(s Snapshot) error {
	for _, e := range c.snapshotEntries() {
		data, ok := s[e.key]
		if !ok && e.alias != "" {
			data, ok = s[e.alias]
		}
		if !ok {
			continue
		}
		err := e.comp.RestoreState(data)
		if err != nil {
			return curated.Errorf("console: state: %s: %v", e.key, err)
		}
	}
	return nil
}

// SaveState writes the state of the Console as JSON.
func (c *Console) SaveState(w io.Writer) error {
	s, err := c.GetState()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err = enc.Encode(s)
	if err != nil {
		return curated.Errorf("console: state: %v", err)
	}
	return nil
}

// LoadState reads JSON written by SaveState() and restores the state of the
// Console.
func (c *Console) LoadState(r io.Reader) error {
	var s Snapshot
	err := json.NewDecoder(r).Decode(&s)
	if err != nil {
		return curated.Errorf("console: state: %v", err)
	}
	return c.RestoreState(s)
}
