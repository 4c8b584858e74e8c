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

// nrom is mapper 0. there is no bank switching. the program ROM is either 16k
// or 32k and the CHR is a single 8k bank of ROM or RAM.
//
// writes to the program ROM window are ignored.
type nrom struct {
	prg       fixedPRG
	chr       patternTables
	mirroring mapper.Mirroring

	// rewindable state
	state *mapperState
}

func newNROM(prg []byte, chr []byte, mirroring mapper.Mirroring) (mapper.CartMapper, error) {
	cart := &nrom{
		mirroring: mirroring,
	}

	var err error

	cart.prg, err = newFixedPRG("NROM", prg)
	if err != nil {
		return nil, err
	}

	cart.chr, err = newPatternTables("NROM", chr, false)
	if err != nil {
		return nil, err
	}

	cart.state = newMapperState(cart.chr)

	return cart, nil
}

func (cart *nrom) String() string {
	return fmt.Sprintf("NROM [%dk]", len(cart.prg.data)/1024)
}

// ID implements the mapper.CartMapper interface.
func (cart *nrom) ID() int {
	return 0
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *nrom) Mirroring() mapper.Mirroring {
	return cart.mirroring
}

// Reset implements the mapper.CartMapper interface.
func (cart *nrom) Reset() {
	clear(cart.state.chrRAM)
}

// Read implements the mapper.CartMapper interface.
func (cart *nrom) Read(addr uint16) (uint8, bool) {
	return cart.prg.read(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *nrom) Write(addr uint16, data uint8) {
}

// ReadCHR implements the mapper.CartMapper interface.
func (cart *nrom) ReadCHR(addr uint16) uint8 {
	return cart.chr.read(cart.state, 0, addr)
}

// WriteCHR implements the mapper.CartMapper interface.
func (cart *nrom) WriteCHR(addr uint16, data uint8) {
	cart.chr.write(cart.state, addr, data)
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *nrom) NumBanks() int {
	return 1
}

// GetBank implements the mapper.CartMapper interface.
func (cart *nrom) GetBank(addr uint16) mapper.BankInfo {
	return mapper.BankInfo{NonCart: addr < prgOrigin}
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *nrom) Snapshot() mapper.CartSnapshot {
	return cart.state.Snapshot()
}

// Plumb implements the mapper.CartMapper interface.
func (cart *nrom) Plumb(s mapper.CartSnapshot) {
	cart.state = s.(*mapperState)
}

// Patch implements the mapper.CartPatchable interface.
func (cart *nrom) Patch(offset int, data uint8) error {
	return cart.prg.patch("NROM", offset, data)
}

// Poke implements the mapper.CartPatchable interface.
func (cart *nrom) Poke(addr uint16, data uint8) error {
	return cart.prg.poke("NROM", addr, data)
}

// GetRAM implements the mapper.CartRAMbus interface.
func (cart *nrom) GetRAM() []mapper.CartRAM {
	return cart.chr.getRAM(cart.state)
}
