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

// The PPU registers as seen by the CPU. The register number is the CPU
// address with all but the lowest three bits masked out.
const (
	PPUCTRL = iota
	PPUMASK
	PPUSTATUS
	OAMADDR
	OAMDATA
	PPUSCROLL
	PPUADDR
	PPUDATA
)

// RegisterNames is indexed by register number.
var RegisterNames = [...]string{"PPUCTRL", "PPUMASK", "PPUSTATUS", "OAMADDR", "OAMDATA", "PPUSCROLL", "PPUADDR", "PPUDATA"}

// PPUCTRL bits.
const (
	ctrlNametable = 0x03
	ctrlIncrement = 0x04
	ctrlNMI       = 0x80
)

// PPUMASK bits.
const (
	maskShowBackground = 0x08
	maskShowSprites    = 0x10
)

// PPUSTATUS bits. the lower five bits are not driven and read as the open
// bus value.
const (
	statusSpriteOverflow = 0x20
	statusSprite0Hit     = 0x40
	statusVBlank         = 0x80
	statusMask           = 0xe0
)

func (ppu *PPU) increment() {
	if ppu.Ctrl&ctrlIncrement == ctrlIncrement {
		ppu.V += 32
	} else {
		ppu.V++
	}
	ppu.V &= VRAMSize - 1
}

// Read a PPU register. The register argument is masked so that the full CPU
// address can be used. Reads of PPUSTATUS and PPUDATA have side effects.
func (ppu *PPU) Read(register uint16) uint8 {
	switch register & 0x07 {
	case PPUSTATUS:
		ppu.openBus = ppu.Status&statusMask | ppu.openBus&^statusMask
		ppu.Status &^= statusVBlank
		ppu.W = false
		ppu.updateNMI()

	case OAMDATA:
		ppu.openBus = ppu.OAM[ppu.OAMAddr]

	case PPUDATA:
		addr := ppu.V & (VRAMSize - 1)
		if addr >= paletteOrigin {
			// palette reads are not buffered. the buffer is filled with the
			// nametable byte underneath the palette
			ppu.openBus = ppu.readVRAM(addr)
			ppu.readBuffer = ppu.readVRAM(addr - 0x1000)
		} else {
			ppu.openBus = ppu.readBuffer
			ppu.readBuffer = ppu.readVRAM(addr)
		}
		ppu.increment()
	}

	return ppu.openBus
}

// Peek returns the value that would be returned by Read() without causing
// any side effects.
func (ppu *PPU) Peek(register uint16) uint8 {
	switch register & 0x07 {
	case PPUSTATUS:
		return ppu.Status&statusMask | ppu.openBus&^statusMask
	case OAMDATA:
		return ppu.OAM[ppu.OAMAddr]
	case PPUDATA:
		addr := ppu.V & (VRAMSize - 1)
		if addr >= paletteOrigin {
			return ppu.readVRAM(addr)
		}
		return ppu.readBuffer
	}
	return ppu.openBus
}

// Write a PPU register. The register argument is masked so that the full
// CPU address can be used.
func (ppu *PPU) Write(register uint16, data uint8) {
	ppu.openBus = data

	switch register & 0x07 {
	case PPUCTRL:
		ppu.Ctrl = data
		ppu.T = (ppu.T & 0xf3ff) | uint16(data&ctrlNametable)<<10

		// enabling NMI during vblank causes an immediate NMI
		ppu.updateNMI()

	case PPUMASK:
		ppu.Mask = data

	case OAMADDR:
		ppu.OAMAddr = data

	case OAMDATA:
		ppu.OAM[ppu.OAMAddr] = data
		ppu.OAMAddr++

	case PPUSCROLL:
		if !ppu.W {
			ppu.T = (ppu.T & 0xffe0) | uint16(data>>3)
			ppu.X = data & 0x07
		} else {
			ppu.T = (ppu.T & 0x8fff) | uint16(data&0x07)<<12
			ppu.T = (ppu.T & 0xfc1f) | uint16(data&0xf8)<<2
		}
		ppu.W = !ppu.W

	case PPUADDR:
		if !ppu.W {
			ppu.T = (ppu.T & 0x80ff) | uint16(data&0x3f)<<8
		} else {
			ppu.T = (ppu.T & 0xff00) | uint16(data)
			ppu.V = ppu.T
		}
		ppu.W = !ppu.W

	case PPUDATA:
		ppu.writeVRAM(ppu.V&(VRAMSize-1), data)
		ppu.increment()
	}
}
