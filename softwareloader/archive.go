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
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"path"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/jetsetilly/gopher99/curated"
	"github.com/nwaples/rardecode/v2"
)

// a named file, either loaded directly or extracted from an archive
type file struct {
	name string
	data []byte
}

var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip     = []byte{0x1f, 0x8b}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21}
)

// unpack returns the files in the data. Data that is not an archive is
// returned as a single file with the supplied name. Files in an archive that
// have no role are skipped.
func unpack(name string, data []byte) ([]file, error) {
	switch {
	case bytes.HasPrefix(data, magicZIP) || bytes.HasPrefix(data, magicZIPEmpty):
		return unpackZIP(data)
	case bytes.HasPrefix(data, magic7z):
		return unpack7z(data)
	case bytes.HasPrefix(data, magicRAR):
		return unpackRAR(data)
	case bytes.HasPrefix(data, magicGzip):
		return unpackGzip(name, data)
	}
	return []file{{name: name, data: data}}, nil
}

func unpackZIP(data []byte) ([]file, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, curated.Errorf("softwareloader: zip: %v", err)
	}

	var files []file
	for _, f := range r.File {
		if f.FileInfo().IsDir() || roleFromName(f.Name) == roleNone {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, curated.Errorf("softwareloader: zip: %v", err)
		}
		d, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, curated.Errorf("softwareloader: zip: %s: %v", f.Name, err)
		}
		files = append(files, file{name: path.Base(f.Name), data: d})
	}
	return files, nil
}

func unpack7z(data []byte) ([]file, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, curated.Errorf("softwareloader: 7z: %v", err)
	}

	var files []file
	for _, f := range r.File {
		if f.FileInfo().IsDir() || roleFromName(f.Name) == roleNone {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, curated.Errorf("softwareloader: 7z: %v", err)
		}
		d, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, curated.Errorf("softwareloader: 7z: %s: %v", f.Name, err)
		}
		files = append(files, file{name: path.Base(f.Name), data: d})
	}
	return files, nil
}

func unpackRAR(data []byte) ([]file, error) {
	r, err := rardecode.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf("softwareloader: rar: %v", err)
	}

	var files []file
	for {
		hdr, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf("softwareloader: rar: %v", err)
		}
		if hdr.IsDir || roleFromName(hdr.Name) == roleNone {
			continue
		}
		d, err := limitedRead(r)
		if err != nil {
			return nil, curated.Errorf("softwareloader: rar: %s: %v", hdr.Name, err)
		}
		files = append(files, file{name: path.Base(hdr.Name), data: d})
	}
	return files, nil
}

// a plain gzip file contains a single file with the name of the archive,
// less the .gz extension. a tar.gz file can contain many files
func unpackGzip(name string, data []byte) ([]file, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf("softwareloader: gzip: %v", err)
	}
	defer gr.Close()

	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return unpackTar(gr)
	}

	d, err := limitedRead(gr)
	if err != nil {
		return nil, curated.Errorf("softwareloader: gzip: %v", err)
	}
	if strings.HasSuffix(lower, ".gz") {
		name = name[:len(name)-3]
	}
	return []file{{name: name, data: d}}, nil
}

func unpackTar(r io.Reader) ([]file, error) {
	tr := tar.NewReader(r)

	var files []file
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf("softwareloader: tar: %v", err)
		}
		if hdr.Typeflag != tar.TypeReg || roleFromName(hdr.Name) == roleNone {
			continue
		}
		d, err := limitedRead(tr)
		if err != nil {
			return nil, curated.Errorf("softwareloader: tar: %s: %v", hdr.Name, err)
		}
		files = append(files, file{name: path.Base(hdr.Name), data: d})
	}
	return files, nil
}
