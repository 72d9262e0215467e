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
	"encoding/json"
	"fmt"

	"github.com/jetsetilly/gopher99/curated"
)

// Type of software. The type decides how a cartridge ROM is banked.
type Type int

// List of valid software types.
const (
	TypeProgram Type = iota
	TypeCart
	TypeInvertedCart
	TypeMemoryDump
)

func (t Type) String() string {
	switch t {
	case TypeProgram:
		return "program"
	case TypeCart:
		return "cart"
	case TypeInvertedCart:
		return "inverted cart"
	case TypeMemoryDump:
		return "memory dump"
	}
	return fmt.Sprintf("unknown (%d)", int(t))
}

// MemoryBlock is copied into the address space verbatim.
type MemoryBlock struct {
	Address uint16 `json:"address"`
	Data    []byte `json:"data"`
}

// Software is everything needed to place a program in the console.
//
// All fields are optional. A WorkspaceAddress or StartAddress of zero means
// the value is taken from the system ROM reset vector.
type Software struct {
	Name string `json:"name"`
	Type Type   `json:"type"`

	// a non-nil MemoryBlocks field, even if it is empty, means the cartridge
	// currently inserted is kept when the software is loaded
	MemoryBlocks []MemoryBlock `json:"memoryBlocks,omitempty"`

	ROM       []byte `json:"rom,omitempty"`
	RAMAt6000 bool   `json:"ramAt6000,omitempty"`
	RAMAt7000 bool   `json:"ramAt7000,omitempty"`
	RAMPaged  bool   `json:"ramPaged,omitempty"`

	// GROM is loaded at the first cartridge GROM base. GROMs are loaded at
	// successive bases
	GROM  []byte   `json:"grom,omitempty"`
	GROMs [][]byte `json:"groms,omitempty"`

	WorkspaceAddress uint16 `json:"workspaceAddress,omitempty"`
	StartAddress     uint16 `json:"startAddress,omitempty"`

	// typed into the console shortly after the software is loaded. the
	// character § pauses typing for one second
	KeyPresses string `json:"keyPresses,omitempty"`
}

func (sw *Software) String() string {
	if sw.Name == "" {
		return sw.Type.String()
	}
	return fmt.Sprintf("%s (%s)", sw.Name, sw.Type)
}

// IsInverted returns true if the cartridge ROM banks are in reverse order.
func (sw *Software) IsInverted() bool {
	return sw.Type == TypeInvertedCart
}

// IsEmpty returns true if the software contains nothing to load.
func (sw *Software) IsEmpty() bool {
	return sw.MemoryBlocks == nil && len(sw.ROM) == 0 && len(sw.GROM) == 0 && len(sw.GROMs) == 0
}

// Sentinel error returned when a software description cannot be decoded.
const (
	InvalidDescription = "softwareloader: invalid description: %v"
)

// ParseDescription decodes a JSON software description.
func ParseDescription(data []byte) (*Software, error) {
	sw := &Software{}
	if err := json.Unmarshal(data, sw); err != nil {
		return nil, curated.Errorf(InvalidDescription, err)
	}
	return sw, nil
}

// Description encodes the software as JSON. The result can be decoded with
// ParseDescription().
func (sw *Software) Description() ([]byte, error) {
	return json.MarshalIndent(sw, "", "  ")
}
