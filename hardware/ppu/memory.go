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

package ppu

const (
	nametableOrigin = 0x2000
	paletteOrigin   = 0x3f00
)

// palette entries $3f10, $3f14, $3f18 and $3f1c are mirrors of $3f00, $3f04,
// $3f08 and $3f0c.
func paletteAddress(addr uint16) uint16 {
	idx := addr & 0x1f
	if idx&0x13 == 0x10 {
		idx &^= 0x10
	}
	return paletteOrigin + idx
}

// nametable returns the VRAM index for an address in the nametable area.
func (ppu *PPU) nametable(addr uint16) uint16 {
	m := ppu.mirroring
	if ppu.cart != nil {
		m = ppu.cart.Mirroring()
	}
	return nametableOrigin + m.Nametable(addr)
}

func (ppu *PPU) readVRAM(addr uint16) uint8 {
	switch {
	case addr < nametableOrigin:
		if ppu.cart == nil {
			return 0
		}
		return ppu.cart.ReadCHR(addr)
	case addr < paletteOrigin:
		return ppu.VRAM[ppu.nametable(addr)]
	}
	return ppu.VRAM[paletteAddress(addr)]
}

func (ppu *PPU) writeVRAM(addr uint16, data uint8) {
	switch {
	case addr < nametableOrigin:
		if ppu.cart != nil {
			ppu.cart.WriteCHR(addr, data)
		}
	case addr < paletteOrigin:
		ppu.VRAM[ppu.nametable(addr)] = data
	default:
		ppu.VRAM[paletteAddress(addr)] = data
	}
}

// PeekVRAM reads the PPU address space without side effects.
func (ppu *PPU) PeekVRAM(addr uint16) uint8 {
	return ppu.readVRAM(addr & (VRAMSize - 1))
}

// PokeVRAM writes to the PPU address space without side effects.
func (ppu *PPU) PokeVRAM(addr uint16, data uint8) {
	ppu.writeVRAM(addr&(VRAMSize-1), data)
}
