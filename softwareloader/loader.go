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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher99/curated"
)

// Loader is used to specify the file containing the software. The file is
// fetched by the Load() function.
type Loader struct {
	// filename or URL of the file to load
	Filename string

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the filename without the path and without the extension.
func (ld Loader) ShortName() string {
	return strings.TrimSuffix(path.Base(ld.Filename), path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the file. Filenames with a valid URL scheme will use that method to
// load the data. Currently supported schemes are HTTP and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("softwareloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("softwareloader: %v", resp.Status)
		}

		ld.Data, err = limitedRead(resp.Body)
		if err != nil {
			return curated.Errorf("softwareloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		f, err := os.Open(ld.Filename)
		if err != nil {
			return curated.Errorf("softwareloader: %v", err)
		}
		defer f.Close()

		ld.Data, err = limitedRead(f)
		if err != nil {
			return curated.Errorf("softwareloader: %v", err)
		}

	default:
		return curated.Errorf("softwareloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf("softwareloader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}

// maximum size of any file, including files extracted from an archive
const maxFileSize = 8 * 1024 * 1024

func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("file exceeds maximum size (%d bytes)", maxFileSize)
	}
	return data, nil
}
