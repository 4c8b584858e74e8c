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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// uxrom is mapper 2. the program ROM is divided into 16k banks. the bank
// mapped into $8000 to $bfff is selected by writing to any address in the
// program ROM window. the last bank is always mapped into $c000 to $ffff.
//
// the CHR is a single 8k bank. usually this is RAM.
type uxrom struct {
	banks     [][]uint8
	chr       patternTables
	mirroring mapper.Mirroring

	// rewindable state
	state *mapperState
}

// the largest UxROM variant (UOROM) uses four bits for bank selection
const uxromMaxBanks = 16

func newUxROM(prg []byte, chr []byte, mirroring mapper.Mirroring) (mapper.CartMapper, error) {
	cart := &uxrom{
		mirroring: mirroring,
	}

	numBanks := len(prg) / prgBankSize
	if len(prg)%prgBankSize != 0 || numBanks < 2 || numBanks > uxromMaxBanks {
		return nil, curated.Errorf(UnsupportedPRGSize, "UxROM", len(prg))
	}

	cart.banks = make([][]uint8, numBanks)
	for k := range cart.banks {
		cart.banks[k] = make([]uint8, prgBankSize)
		copy(cart.banks[k], prg[k*prgBankSize:])
	}

	var err error

	cart.chr, err = newPatternTables("UxROM", chr, false)
	if err != nil {
		return nil, err
	}

	cart.state = newMapperState(cart.chr)

	return cart, nil
}

func (cart *uxrom) String() string {
	return fmt.Sprintf("UxROM [%dk] Bank: %d", len(cart.banks)*prgBankSize/1024, cart.state.bank)
}

// ID implements the mapper.CartMapper interface.
func (cart *uxrom) ID() int {
	return 2
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *uxrom) Mirroring() mapper.Mirroring {
	return cart.mirroring
}

// Reset implements the mapper.CartMapper interface.
func (cart *uxrom) Reset() {
	cart.state.bank = 0
	clear(cart.state.chrRAM)
}

func (cart *uxrom) bankOf(addr uint16) int {
	if addr >= 0xc000 {
		return len(cart.banks) - 1
	}
	return cart.state.bank
}

// Read implements the mapper.CartMapper interface.
func (cart *uxrom) Read(addr uint16) (uint8, bool) {
	if addr < prgOrigin {
		return 0, false
	}
	return cart.banks[cart.bankOf(addr)][addr&(prgBankSize-1)], true
}

// Write implements the mapper.CartMapper interface.
func (cart *uxrom) Write(addr uint16, data uint8) {
	if addr < prgOrigin {
		return
	}
	cart.state.bank = int(data) % len(cart.banks)
}

// ReadCHR implements the mapper.CartMapper interface.
func (cart *uxrom) ReadCHR(addr uint16) uint8 {
	return cart.chr.read(cart.state, 0, addr)
}

// WriteCHR implements the mapper.CartMapper interface.
func (cart *uxrom) WriteCHR(addr uint16, data uint8) {
	cart.chr.write(cart.state, addr, data)
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *uxrom) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *uxrom) GetBank(addr uint16) mapper.BankInfo {
	if addr < prgOrigin {
		return mapper.BankInfo{NonCart: true}
	}
	return mapper.BankInfo{Number: cart.bankOf(addr)}
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *uxrom) Snapshot() mapper.CartSnapshot {
	return cart.state.Snapshot()
}

// Plumb implements the mapper.CartMapper interface.
func (cart *uxrom) Plumb(s mapper.CartSnapshot) {
	cart.state = s.(*mapperState)
}

// Patch implements the mapper.CartPatchable interface.
func (cart *uxrom) Patch(offset int, data uint8) error {
	if offset < 0 || offset >= len(cart.banks)*prgBankSize {
		return curated.Errorf(PatchOutOfRange, "UxROM", offset)
	}
	cart.banks[offset/prgBankSize][offset%prgBankSize] = data
	return nil
}

// Poke implements the mapper.CartPatchable interface.
func (cart *uxrom) Poke(addr uint16, data uint8) error {
	if addr < prgOrigin {
		return curated.Errorf(PokeNotROM, "UxROM", addr)
	}
	cart.banks[cart.bankOf(addr)][addr&(prgBankSize-1)] = data
	return nil
}

// GetRAM implements the mapper.CartRAMbus interface.
func (cart *uxrom) GetRAM() []mapper.CartRAM {
	return cart.chr.getRAM(cart.state)
}
