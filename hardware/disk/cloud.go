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
	"slices"
	"strings"

	"github.com/jetsetilly/gopher99/curated"
	"github.com/jetsetilly/gopher99/notifications"
)

// InvalidFilename is returned when a cloud drive filename tries to leave the
// drive's directory.
const InvalidFilename = "disk: invalid filename (%s)"

// CloudDrive is a drive backed by a directory on the host. The directory is
// created when the first file is written.
type CloudDrive struct {
	name   string
	dir    string
	notify *notifications.Dispatcher

	// number of files written since the last reset
	writes int
}

// NewCloudDrive is the preferred method of initialisation for the CloudDrive
// type. The notify argument can be nil.
func NewCloudDrive(name string, dir string, notify *notifications.Dispatcher) *CloudDrive {
	return &CloudDrive{
		name:   name,
		dir:    dir,
		notify: notify,
	}
}

func (drv *CloudDrive) String() string {
	return fmt.Sprintf("%s: %s", drv.name, drv.dir)
}

// Name returns the name of the drive.
func (drv *CloudDrive) Name() string {
	return drv.name
}

// Dir returns the host directory of the drive.
func (drv *CloudDrive) Dir() string {
	return drv.dir
}

// Reset the drive.
func (drv *CloudDrive) Reset() {
	drv.writes = 0
}

// Writes returns the number of files written since the last reset.
func (drv *CloudDrive) Writes() int {
	return drv.writes
}

func (drv *CloudDrive) path(filename string) (string, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || filename == "." || filename == ".." {
		return "", curated.Errorf(InvalidFilename, filename)
	}
	return filepath.Join(drv.dir, filename), nil
}

// Files returns the sorted list of files on the drive. A drive whose
// directory does not exist is empty.
func (drv *CloudDrive) Files() ([]string, error) {
	entries, err := os.ReadDir(drv.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, curated.Errorf("disk: %v", err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	slices.Sort(files)
	return files, nil
}

// ReadFile returns the contents of the file.
func (drv *CloudDrive) ReadFile(filename string) ([]byte, error) {
	p, err := drv.path(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, curated.Errorf("disk: %v", err)
	}
	return data, nil
}

// WriteFile writes the data to the file, replacing any existing file.
func (drv *CloudDrive) WriteFile(filename string, data []byte) error {
	p, err := drv.path(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(drv.dir, 0o700); err != nil {
		return curated.Errorf("disk: %v", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		return curated.Errorf("disk: %v", err)
	}
	drv.writes++
	drv.notify.DiskImageChanged(fmt.Sprintf("%s.%s", drv.name, filename))
	return nil
}
