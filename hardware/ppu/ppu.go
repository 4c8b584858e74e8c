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

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// Cartridge is the PPU side of the cartridge.
type Cartridge interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)
	Mirroring() mapper.Mirroring
}

// NTSC timing.
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262

	// first scanline of the vertical blank
	VBlankScanline = 241

	// the scanline before the first visible scanline
	PreRenderScanline = 261
)

// Sizes of the PPU memory areas.
const (
	VRAMSize = 0x4000
	OAMSize  = 0x100
)

// PPU contains the registers and memory of the NES PPU.
type PPU struct {
	cart Cartridge

	// the mirroring of the cartridge at the time of a snapshot. used for
	// nametable addressing when no cartridge is plumbed in
	mirroring mapper.Mirroring

	// the three registers that can be written to directly and which are
	// not addresses
	Ctrl   uint8
	Mask   uint8
	Status uint8

	OAMAddr uint8
	OAM     [OAMSize]uint8

	// the entire PPU address space. only the nametable and palette areas are
	// used. the pattern tables are in the cartridge
	VRAM [VRAMSize]uint8

	// current and temporary VRAM addresses, fine X scroll and the write
	// toggle shared by PPUSCROLL and PPUADDR
	V uint16
	T uint16
	X uint8
	W bool

	// PPUDATA reads of the non-palette area are delayed by one read
	readBuffer uint8

	// the PPU data bus. reads of write-only registers return the last value
	// written to or read from any register
	openBus uint8

	// state of the NMI output. the edge is latched in nmiPending until the
	// CPU collects it with NMI()
	nmiLine    bool
	nmiPending bool

	Scanline int
	Dot      int
	Frame    int

	// number of times Step() has been called since reset
	Cycles uint64
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(cart Cartridge) *PPU {
	ppu := &PPU{
		cart: cart,
	}
	ppu.Reset()
	return ppu
}

// Snapshot creates a copy of the PPU in its current state. The copy does not
// share any memory with the original and is not connected to the cartridge.
// Pattern table reads of the copy return zero until a cartridge is plumbed
// in.
func (ppu *PPU) Snapshot() *PPU {
	n := *ppu
	if ppu.cart != nil {
		n.mirroring = ppu.cart.Mirroring()
	}
	n.cart = nil
	return &n
}

// Plumb a new cartridge into the PPU.
func (ppu *PPU) Plumb(cart Cartridge) {
	ppu.cart = cart
}

// Reset the PPU to the power-on state. Video memory is not changed.
func (ppu *PPU) Reset() {
	ppu.Ctrl = 0
	ppu.Mask = 0
	ppu.Status = 0
	ppu.OAMAddr = 0
	ppu.V = 0
	ppu.T = 0
	ppu.X = 0
	ppu.W = false
	ppu.readBuffer = 0
	ppu.openBus = 0
	ppu.nmiLine = false
	ppu.nmiPending = false
	ppu.Scanline = 0
	ppu.Dot = 0
	ppu.Frame = 0
	ppu.Cycles = 0
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d ctrl=%02x mask=%02x status=%02x v=%04x",
		ppu.Frame, ppu.Scanline, ppu.Dot, ppu.Ctrl, ppu.Mask, ppu.Status, ppu.V)
}

// rendering is enabled if either the background or sprites are shown.
func (ppu *PPU) rendering() bool {
	return ppu.Mask&(maskShowBackground|maskShowSprites) != 0
}

// Step the PPU forward one dot.
func (ppu *PPU) Step() {
	ppu.Cycles++
	ppu.Dot++

	// the pre-render scanline is one dot shorter on odd frames when
	// rendering is enabled
	if ppu.Scanline == PreRenderScanline && ppu.Dot == DotsPerScanline-1 && ppu.Frame&0x01 == 0x01 && ppu.rendering() {
		ppu.Dot++
	}

	if ppu.Dot >= DotsPerScanline {
		ppu.Dot = 0
		ppu.Scanline++
		if ppu.Scanline >= ScanlinesPerFrame {
			ppu.Scanline = 0
			ppu.Frame++
		}
	}

	if ppu.Dot == 1 {
		switch ppu.Scanline {
		case VBlankScanline:
			ppu.Status |= statusVBlank
		case PreRenderScanline:
			ppu.Status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
		}
	}

	ppu.updateNMI()
}

// the NMI output of the PPU is the AND of the vblank flag and the NMI enable
// bit of PPUCTRL. the CPU reacts to the rising edge.
func (ppu *PPU) updateNMI() {
	line := ppu.Status&statusVBlank == statusVBlank && ppu.Ctrl&ctrlNMI == ctrlNMI
	if line && !ppu.nmiLine {
		ppu.nmiPending = true
	}
	ppu.nmiLine = line
}

// NMI returns true if the PPU has raised an NMI since the last call to NMI().
func (ppu *PPU) NMI() bool {
	n := ppu.nmiPending
	ppu.nmiPending = false
	return n
}

// InVBlank returns true if the vblank flag is set.
func (ppu *PPU) InVBlank() bool {
	return ppu.Status&statusVBlank == statusVBlank
}
