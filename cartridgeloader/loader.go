// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/fogleman/nes/nes"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// Sentinal errors.
const (
	LoaderError    = "cartridgeloader: %v"
	UnexpectedHash = "cartridgeloader: unexpected hash value (%s)"
)

// offset of the CHR-ROM bank count in the iNES header.
const inesCHRCount = 5

// Loader is used to specify the cartridge to use when Attach()ing to the NES.
// After a successful call to Load() the fields describing the contents of the
// iNES file are filled in.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data, including the iNES header
	Data []byte

	// iNES mapper number
	MapperID int

	PRG []byte

	// CHR is empty if the cartridge uses CHR-RAM
	CHR []byte

	Mirroring mapper.Mirroring

	// the cartridge has battery backed PRG-RAM
	Battery bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".NES", ".UNF"}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Calling Load() on a Loader that has already been
// loaded has no effect.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var filename string

	switch scheme {
	case "http":
		fallthrough
	case "https":
		filename, err = cl.download()
		if err != nil {
			return err
		}
		defer os.Remove(filename)

	case "file":
		fallthrough

	case "":
		filename = cl.Filename

	default:
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	// the ines parser reports a bad header but not a short file
	ines, err := nes.LoadNESFile(filename)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Hash = hash
	cl.Data = data
	cl.MapperID = int(ines.Mapper)
	cl.PRG = ines.PRG
	cl.Battery = ines.Battery != 0

	// the ines parser allocates 8k of CHR when the header says there is no
	// CHR-ROM. we want to know about that case so we discard the allocation
	if len(data) > inesCHRCount && data[inesCHRCount] > 0 {
		cl.CHR = ines.CHR
	}

	cl.Mirroring = decodeMirroring(ines.Mirror)

	return nil
}

// the ines parser packs the mirroring bit of the header into bit 0 and the
// four screen bit into bit 1.
func decodeMirroring(m byte) mapper.Mirroring {
	if m&0x02 == 0x02 {
		return mapper.FourScreen
	}
	if m&0x01 == 0x01 {
		return mapper.Vertical
	}
	return mapper.Horizontal
}

// download the file to a temporary location. the ines parser only accepts
// filenames. the caller is responsible for removing the file.
func (cl *Loader) download() (string, error) {
	resp, err := http.Get(cl.Filename)
	if err != nil {
		return "", curated.Errorf(LoaderError, err)
	}
	defer resp.Body.Close()

	f, err := os.CreateTemp("", "gophernes_*.nes")
	if err != nil {
		return "", curated.Errorf(LoaderError, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(f.Name())
		return "", curated.Errorf(LoaderError, err)
	}

	return f.Name(), nil
}
