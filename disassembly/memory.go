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

package disassembly

import (
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// disasmMemory is a CPU bus that serves only the cartridge area. Reads do not
// cause side effects and writes are ignored so that bank switching is not
// triggered during decoding.
type disasmMemory struct {
	cart *cartridge.Cartridge
}

func (mem *disasmMemory) Read(address uint16) (uint8, error) {
	if address < memorymap.OriginCart {
		return 0, nil
	}
	v, _ := mem.cart.Peek(address)
	return v, nil
}

func (mem *disasmMemory) Write(address uint16, data uint8) error {
	return nil
}
