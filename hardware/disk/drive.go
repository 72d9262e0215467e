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

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/notifications"
)

// Drive is a disk drive.
type Drive struct {
	name   string
	image  *Image
	notify *notifications.Dispatcher

	// the sector most recently read or written. -1 if there has been no
	// access since the last reset
	lastSector int
}

// NewDrive is the preferred method of initialisation for the Drive type. The
// image and notify arguments can be nil.
func NewDrive(name string, image *Image, notify *notifications.Dispatcher) *Drive {
	drv := &Drive{
		name:   name,
		image:  image,
		notify: notify,
	}
	drv.Reset()
	return drv
}

func (drv *Drive) String() string {
	if drv.image == nil {
		return fmt.Sprintf("%s: empty", drv.name)
	}
	return fmt.Sprintf("%s: %s", drv.name, drv.image)
}

// Name returns the name of the drive.
func (drv *Drive) Name() string {
	return drv.name
}

// Image returns the image in the drive. Returns nil if the drive is empty.
func (drv *Drive) Image() *Image {
	return drv.image
}

// LastSector returns the sector most recently accessed.
func (drv *Drive) LastSector() int {
	return drv.lastSector
}

// Reset the drive. The image remains in the drive.
func (drv *Drive) Reset() {
	drv.lastSector = -1
}

// Insert an image into the drive. A nil image empties the drive.
func (drv *Drive) Insert(image *Image) {
	drv.image = image
	name := ""
	if image != nil {
		name = image.Name
	}
	drv.notify.DiskDriveChanged(drv.name, name)
}

// Eject the image from the drive.
func (drv *Drive) Eject() {
	drv.Insert(nil)
}

// ReadSector returns a copy of the sector.
func (drv *Drive) ReadSector(n int) ([]byte, error) {
	if drv.image == nil {
		return nil, curated.Errorf(NoImage, drv.name)
	}
	s, err := drv.image.sector(n)
	if err != nil {
		return nil, err
	}
	drv.lastSector = n
	return append([]byte{}, s...), nil
}

// WriteSector writes the data to the sector.
func (drv *Drive) WriteSector(n int, data []byte) error {
	if drv.image == nil {
		return curated.Errorf(NoImage, drv.name)
	}
	if len(data) != SectorSize {
		return curated.Errorf(SectorSizeDiff, SectorSize)
	}
	s, err := drv.image.sector(n)
	if err != nil {
		return err
	}
	copy(s, data)
	drv.lastSector = n
	drv.notify.DiskImageChanged(drv.image.Name)
	return nil
}
