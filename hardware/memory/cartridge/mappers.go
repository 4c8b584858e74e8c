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
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// Sentinal errors.
const (
	UnsupportedMapper  = "cartridge: unsupported mapper (%d)"
	UnsupportedPRGSize = "cartridge: %s: unsupported PRG size (%d bytes)"
	UnsupportedCHRSize = "cartridge: %s: unsupported CHR size (%d bytes)"
	PatchOutOfRange    = "cartridge: %s: patch offset out of range (%#04x)"
	PokeNotROM         = "cartridge: %s: address is not ROM (%#04x)"
)

const (
	prgBankSize = 0x4000
	chrBankSize = 0x2000

	// the CPU address of the program ROM window
	prgOrigin = 0x8000
)

// NewMapper is the only way to create a cartridge mapper. The prg and chr
// arguments are copied and are not referenced by the mapper once it has been
// created. An empty chr argument indicates that the cartridge uses 8k of
// CHR-RAM.
func NewMapper(id int, prg []byte, chr []byte, mirroring mapper.Mirroring) (mapper.CartMapper, error) {
	switch id {
	case 0:
		return newNROM(prg, chr, mirroring)
	case 2:
		return newUxROM(prg, chr, mirroring)
	case 3:
		return newCNROM(prg, chr, mirroring)
	}
	return nil, curated.Errorf(UnsupportedMapper, id)
}

// fixedPRG is the program ROM for mappers that do not bank switch the CPU
// address space. a 16k ROM is mirrored across the entire 32k window.
type fixedPRG struct {
	data []uint8
	mask uint16
}

func newFixedPRG(name string, prg []byte) (fixedPRG, error) {
	if len(prg) != prgBankSize && len(prg) != prgBankSize*2 {
		return fixedPRG{}, curated.Errorf(UnsupportedPRGSize, name, len(prg))
	}

	p := fixedPRG{
		data: make([]uint8, len(prg)),
		mask: uint16(len(prg) - 1),
	}
	copy(p.data, prg)

	return p, nil
}

func (p fixedPRG) read(addr uint16) (uint8, bool) {
	if addr < prgOrigin {
		return 0, false
	}
	return p.data[addr&p.mask], true
}

func (p fixedPRG) patch(name string, offset int, data uint8) error {
	if offset < 0 || offset >= len(p.data) {
		return curated.Errorf(PatchOutOfRange, name, offset)
	}
	p.data[offset] = data
	return nil
}

func (p fixedPRG) poke(name string, addr uint16, data uint8) error {
	if addr < prgOrigin {
		return curated.Errorf(PokeNotROM, name, addr)
	}
	p.data[addr&p.mask] = data
	return nil
}

// patternTables is the CHR data of the cartridge. the data is either ROM,
// possibly in more than one bank, or 8k of RAM. the RAM is part of the
// mapper state so that it is included in snapshots.
type patternTables struct {
	rom   []uint8
	banks int
}

// multibank indicates whether chr can be larger than a single 8k bank.
func newPatternTables(name string, chr []byte, multibank bool) (patternTables, error) {
	if len(chr) == 0 {
		return patternTables{}, nil
	}

	if len(chr)%chrBankSize != 0 || (!multibank && len(chr) != chrBankSize) {
		return patternTables{}, curated.Errorf(UnsupportedCHRSize, name, len(chr))
	}

	t := patternTables{
		rom:   make([]uint8, len(chr)),
		banks: len(chr) / chrBankSize,
	}
	copy(t.rom, chr)

	return t, nil
}

func (t patternTables) isRAM() bool {
	return t.rom == nil
}

func (t patternTables) read(state *mapperState, bank int, addr uint16) uint8 {
	addr &= chrBankSize - 1
	if t.isRAM() {
		return state.chrRAM[addr]
	}
	return t.rom[bank*chrBankSize+int(addr)]
}

func (t patternTables) write(state *mapperState, addr uint16, data uint8) {
	if t.isRAM() {
		state.chrRAM[addr&(chrBankSize-1)] = data
	}
}

func (t patternTables) getRAM(state *mapperState) []mapper.CartRAM {
	if !t.isRAM() {
		return nil
	}
	r := mapper.CartRAM{
		Label:  "CHR-RAM",
		Origin: 0x0000,
		Data:   make([]uint8, len(state.chrRAM)),
	}
	copy(r.Data, state.chrRAM)
	return []mapper.CartRAM{r}
}

// mapperState is the rewindable state of the supported mappers.
type mapperState struct {
	// the selected bank. for UxROM this is the PRG bank at $8000 and for
	// CNROM this is the CHR bank. unused by NROM
	bank int

	// nil if the cartridge has CHR-ROM
	chrRAM []uint8
}

func newMapperState(t patternTables) *mapperState {
	s := &mapperState{}
	if t.isRAM() {
		s.chrRAM = make([]uint8, chrBankSize)
	}
	return s
}

// Snapshot implements the mapper.CartSnapshot interface.
func (s *mapperState) Snapshot() mapper.CartSnapshot {
	n := *s
	if s.chrRAM != nil {
		n.chrRAM = make([]uint8, len(s.chrRAM))
		copy(n.chrRAM, s.chrRAM)
	}
	return &n
}
