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
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
)

// the range of addresses that are disassembled.
const (
	origin = uint16(0x8000)
	memtop = uint16(0xffff)
)

// Disassembly represents the annotated disassembly of the program ROM.
type Disassembly struct {
	cart *cartridge.Cartridge

	// one entry for every address between origin and memtop
	entries []*Entry
}

// FromCartridge loads and disassembles the cartridge.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	cart := cartridge.NewCartridge()
	if err := cart.Attach(cartload); err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	dsm := &Disassembly{}
	if err := dsm.FromMemory(cart); err != nil {
		return nil, err
	}

	return dsm, nil
}

// FromMemory disassembles an existing cartridge. The cartridge is not
// changed.
func (dsm *Disassembly) FromMemory(cart *cartridge.Cartridge) error {
	if cart.IsEjected() {
		return curated.Errorf("disassembly: no cartridge")
	}

	dsm.cart = cart
	dsm.entries = make([]*Entry, int(memtop-origin)+1)

	// an instance with no preferences always decodes undocumented opcodes
	mc := cpu.NewCPU(&instance.Instance{Quiet: true}, &disasmMemory{cart: cart})

	if err := dsm.decode(mc); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	dsm.bless()

	return nil
}

// GetEntryByAddress returns the entry at the address. Returns false if the
// address is outside of the disassembled range.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	if address < origin || dsm.entries == nil {
		return nil, false
	}
	return dsm.entries[address-origin], true
}

// Entries returns all entries at or above the level in address order.
func (dsm *Disassembly) Entries(minLevel EntryLevel) []*Entry {
	var l []*Entry
	for _, e := range dsm.entries {
		if e.Level >= minLevel {
			l = append(l, e)
		}
	}
	return l
}
