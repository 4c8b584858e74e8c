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

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// NewLoaderFromROM creates a Loader from PRG and CHR data that is already in
// memory. The Data field is filled with the equivalent iNES image so the Hash
// matches that of the same data loaded from disk. Calling Load() on the
// returned Loader has no effect.
func NewLoaderFromROM(name string, mapperID int, prg []byte, chr []byte, mirroring mapper.Mirroring) Loader {
	var control1 uint8
	switch mirroring {
	case mapper.Vertical:
		control1 = 0x01
	case mapper.FourScreen:
		control1 = 0x08
	}
	control1 |= uint8(mapperID&0x0f) << 4
	control2 := uint8(mapperID & 0xf0)

	data := []byte{'N', 'E', 'S', 0x1a,
		uint8(len(prg) / 0x4000), uint8(len(chr) / 0x2000),
		control1, control2,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	data = append(data, prg...)
	data = append(data, chr...)

	cl := Loader{
		Filename:  name,
		Hash:      fmt.Sprintf("%x", sha1.Sum(data)),
		Data:      data,
		MapperID:  mapperID,
		PRG:       append([]byte{}, prg...),
		Mirroring: mirroring,
	}

	if len(chr) > 0 {
		cl.CHR = append([]byte{}, chr...)
	}

	return cl
}
