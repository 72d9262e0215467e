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

package disk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher99/curated"
)

// SectorSize is the size of a sector in bytes.
const SectorSize = 256

// Sentinel error patterns.
const (
	InvalidImage   = "disk: invalid image (%s)"
	InvalidSector  = "disk: invalid sector (%d)"
	NoImage        = "disk: no image in drive (%s)"
	SectorSizeDiff = "disk: sector data must be %d bytes"
)

// Image is a sector based disk image.
type Image struct {
	Name string
	data []byte
}

// NewImage creates a blank image with the number of sectors.
func NewImage(name string, sectors int) *Image {
	return &Image{
		Name: name,
		data: make([]byte, sectors*SectorSize),
	}
}

// LoadImage reads a disk image from a file. The size of the file must be a
// whole number of sectors.
func LoadImage(filename string) (*Image, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("disk: %v", err)
	}
	if len(data) == 0 || len(data)%SectorSize != 0 {
		return nil, curated.Errorf(InvalidImage, filename)
	}
	return &Image{
		Name: filepath.Base(filename),
		data: data,
	}, nil
}

func (img *Image) String() string {
	return fmt.Sprintf("%s (%d sectors)", img.Name, img.NumSectors())
}

// NumSectors returns the number of sectors in the image.
func (img *Image) NumSectors() int {
	return len(img.data) / SectorSize
}

// Bytes returns a copy of the image data.
func (img *Image) Bytes() []byte {
	return append([]byte{}, img.data...)
}

func (img *Image) sector(n int) ([]byte, error) {
	if n < 0 || n >= img.NumSectors() {
		return nil, curated.Errorf(InvalidSector, n)
	}
	return img.data[n*SectorSize : (n+1)*SectorSize], nil
}
