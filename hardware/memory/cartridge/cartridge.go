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

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/logger"
)

// Sentinal errors.
const (
	NotPatchable = "cartridge: %s: not patchable"
)

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	// filename and hash of the loaded data
	Filename string
	Hash     string

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.CartMapper
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type. The cartridge is ejected until Attach() is called.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s (%s)", cart.Filename, cart.mapper.String())
}

// Snapshot creates a copy of the current mapper state.
func (cart *Cartridge) Snapshot() mapper.CartSnapshot {
	return cart.mapper.Snapshot()
}

// Plumb a snapshot returned by Snapshot() into the mapper. The snapshot must
// have been taken from the same cartridge.
func (cart *Cartridge) Plumb(s mapper.CartSnapshot) {
	if s == nil {
		return
	}

	// the snapshot is copied again so that the snapshot itself remains
	// unchanged as emulation continues
	s = s.Snapshot()

	if _, ok := s.(*ejectedState); ok {
		return
	}

	cart.mapper.Plumb(s)
}

// Reset volatile areas of the cartridge.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// ID returns the iNES mapper number of the attached cartridge. The value is
// -1 if the cartridge is ejected.
func (cart *Cartridge) ID() int {
	return cart.mapper.ID()
}

// MappingSummary returns a short description of the current mapping.
func (cart *Cartridge) MappingSummary() string {
	return cart.mapper.String()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Mirroring returns the nametable mirroring required by the cartridge.
func (cart *Cartridge) Mirroring() mapper.Mirroring {
	return cart.mapper.Mirroring()
}

// Read is the CPU side read of the cartridge. If the driven value is false
// then the cartridge did not put a value on the data bus.
func (cart *Cartridge) Read(addr uint16) (uint8, bool) {
	return cart.mapper.Read(addr)
}

// Write is the CPU side write to the cartridge.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.Write(addr, data)
}

// Peek is a CPU side read without side effects. None of the supported mappers
// have read side effects so this is the same as Read().
func (cart *Cartridge) Peek(addr uint16) (uint8, bool) {
	return cart.mapper.Read(addr)
}

// Poke changes the ROM byte at the CPU address, according to the current
// bank configuration.
func (cart *Cartridge) Poke(addr uint16, data uint8) error {
	if p, ok := cart.mapper.(mapper.CartPatchable); ok {
		return p.Poke(addr, data)
	}
	return curated.Errorf(NotPatchable, cart.mapper.String())
}

// Patch changes the byte at the offset of the program ROM data.
func (cart *Cartridge) Patch(offset int, data uint8) error {
	if p, ok := cart.mapper.(mapper.CartPatchable); ok {
		return p.Patch(offset, data)
	}
	return curated.Errorf(NotPatchable, cart.mapper.String())
}

// ReadCHR is the PPU side read of the pattern tables.
func (cart *Cartridge) ReadCHR(addr uint16) uint8 {
	return cart.mapper.ReadCHR(addr)
}

// WriteCHR is the PPU side write to the pattern tables.
func (cart *Cartridge) WriteCHR(addr uint16, data uint8) {
	cart.mapper.WriteCHR(addr, data)
}

// NumBanks returns the number of banks in the program ROM.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// GetBank returns the bank information for the specified CPU address.
func (cart *Cartridge) GetBank(addr uint16) mapper.BankInfo {
	return cart.mapper.GetBank(addr)
}

// GetRAM returns a copy of the cartridge RAM. The return value is nil if
// the cartridge has no RAM.
func (cart *Cartridge) GetRAM() []mapper.CartRAM {
	if r, ok := cart.mapper.(mapper.CartRAMbus); ok {
		return r.GetRAM()
	}
	return nil
}

// Eject removes the cartridge. Reads of cartridge space are then open bus.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ejectedHash
	cart.mapper = newEjected()
}

// Attach the cartridge loader to the NES and load binary data. The mapper
// is decided by the iNES header. On error the cartridge is left ejected.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	cart.Eject()

	if err := cartload.Load(); err != nil {
		return err
	}

	m, err := NewMapper(cartload.MapperID, cartload.PRG, cartload.CHR, cartload.Mirroring)
	if err != nil {
		return err
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.mapper = m
	cart.mapper.Reset()

	logger.Logf(logger.Allow, "cartridge", "attached %s (%s mirroring)", cart.mapper.String(), cart.mapper.Mirroring())

	return nil
}
