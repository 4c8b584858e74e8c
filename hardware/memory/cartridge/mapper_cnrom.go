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

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// cnrom is mapper 3. the program ROM is fixed in the same way as NROM. the
// CHR-ROM is divided into 8k banks selected by writing to any address in the
// program ROM window.
type cnrom struct {
	prg       fixedPRG
	chr       patternTables
	mirroring mapper.Mirroring

	// rewindable state
	state *mapperState
}

func newCNROM(prg []byte, chr []byte, mirroring mapper.Mirroring) (mapper.CartMapper, error) {
	cart := &cnrom{
		mirroring: mirroring,
	}

	var err error

	cart.prg, err = newFixedPRG("CNROM", prg)
	if err != nil {
		return nil, err
	}

	cart.chr, err = newPatternTables("CNROM", chr, true)
	if err != nil {
		return nil, err
	}

	cart.state = newMapperState(cart.chr)

	return cart, nil
}

func (cart *cnrom) String() string {
	return fmt.Sprintf("CNROM [%dk] CHR Bank: %d", len(cart.prg.data)/1024, cart.state.bank)
}

// ID implements the mapper.CartMapper interface.
func (cart *cnrom) ID() int {
	return 3
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *cnrom) Mirroring() mapper.Mirroring {
	return cart.mirroring
}

// Reset implements the mapper.CartMapper interface.
func (cart *cnrom) Reset() {
	cart.state.bank = 0
	clear(cart.state.chrRAM)
}

// Read implements the mapper.CartMapper interface.
func (cart *cnrom) Read(addr uint16) (uint8, bool) {
	return cart.prg.read(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *cnrom) Write(addr uint16, data uint8) {
	if addr < prgOrigin || cart.chr.isRAM() {
		return
	}
	cart.state.bank = int(data) % cart.chr.banks
}

// ReadCHR implements the mapper.CartMapper interface.
func (cart *cnrom) ReadCHR(addr uint16) uint8 {
	return cart.chr.read(cart.state, cart.state.bank, addr)
}

// WriteCHR implements the mapper.CartMapper interface.
func (cart *cnrom) WriteCHR(addr uint16, data uint8) {
	cart.chr.write(cart.state, addr, data)
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *cnrom) NumBanks() int {
	return 1
}

// GetBank implements the mapper.CartMapper interface.
func (cart *cnrom) GetBank(addr uint16) mapper.BankInfo {
	return mapper.BankInfo{NonCart: addr < prgOrigin}
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *cnrom) Snapshot() mapper.CartSnapshot {
	return cart.state.Snapshot()
}

// Plumb implements the mapper.CartMapper interface.
func (cart *cnrom) Plumb(s mapper.CartSnapshot) {
	cart.state = s.(*mapperState)
}

// Patch implements the mapper.CartPatchable interface.
func (cart *cnrom) Patch(offset int, data uint8) error {
	return cart.prg.patch("CNROM", offset, data)
}

// Poke implements the mapper.CartPatchable interface.
func (cart *cnrom) Poke(addr uint16, data uint8) error {
	return cart.prg.poke("CNROM", addr, data)
}

// GetRAM implements the mapper.CartRAMbus interface.
func (cart *cnrom) GetRAM() []mapper.CartRAM {
	return cart.chr.getRAM(cart.state)
}
