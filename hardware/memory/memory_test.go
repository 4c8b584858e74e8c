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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/test"
)

func newMemory(t *testing.T, prg []byte) (*memory.Memory, *ppu.PPU) {
	t.Helper()

	cart := cartridge.NewCartridge()
	if prg != nil {
		cl := cartridgeloader.NewLoaderFromROM("test", 0, prg, nil, mapper.Horizontal)
		test.DemandSuccess(t, cart.Attach(cl))
	}

	p := ppu.NewPPU(cart)
	return memory.NewMemory(nil, p, cart), p
}

func TestRAMMirroring(t *testing.T) {
	mem, _ := newMemory(t, nil)

	for a := uint16(0x0000); a <= 0x1fff; a++ {
		test.DemandSuccess(t, mem.Write(a%0x0800, uint8(a)))
		d, err := mem.Read(a)
		test.DemandSuccess(t, err)
		e, _ := mem.Read(a % 0x0800)
		test.DemandEquality(t, d, e, a)
		test.DemandEquality(t, d, uint8(a), a)
	}

	// write through a mirror
	test.DemandSuccess(t, mem.Write(0x1801, 0x99))
	d, _ := mem.Read(0x0001)
	test.ExpectEquality(t, d, uint8(0x99))
}

func TestPPUMirroring(t *testing.T) {
	mem, p := newMemory(t, nil)

	// PPUADDR at a mirrored address
	test.DemandSuccess(t, mem.Write(0x3ffe, 0x21))
	test.DemandSuccess(t, mem.Write(0x200e, 0x08))
	test.ExpectEquality(t, p.V, uint16(0x2108))

	// PPUDATA
	test.DemandSuccess(t, mem.Write(0x2007, 0x77))
	test.ExpectEquality(t, p.PeekVRAM(0x2108), uint8(0x77))

	// read of a write-only register returns the PPU open bus
	d, _ := mem.Read(0x2000)
	test.ExpectEquality(t, d, uint8(0x77))
}

func TestCartridgeArea(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0x0000] = 0xa9
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	mem, _ := newMemory(t, prg)

	d, _ := mem.Read(0x8000)
	test.ExpectEquality(t, d, uint8(0xa9))
	d, _ = mem.Read(0xc000)
	test.ExpectEquality(t, d, uint8(0xa9))
	d, _ = mem.Read(0xfffd)
	test.ExpectEquality(t, d, uint8(0x80))

	// writes do not change ROM
	test.DemandSuccess(t, mem.Write(0x8000, 0x00))
	d, _ = mem.Read(0x8000)
	test.ExpectEquality(t, d, uint8(0xa9))

	// not driven by NROM so the open bus value is returned. the last value
	// on the bus was the write of 0x00
	test.DemandSuccess(t, mem.Write(0x0000, 0x5a))
	d, _ = mem.Read(0x6000)
	test.ExpectEquality(t, d, uint8(0x5a))
}

func TestOpenBus(t *testing.T) {
	mem, _ := newMemory(t, nil)

	test.DemandSuccess(t, mem.Write(0x0010, 0x42))
	_, _ = mem.Read(0x0010)

	// IO and ejected cartridge are undriven
	d, _ := mem.Read(0x4016)
	test.ExpectEquality(t, d, uint8(0x42))
	d, _ = mem.Read(0x8000)
	test.ExpectEquality(t, d, uint8(0x42))
	test.ExpectEquality(t, mem.LastCPUAddress, uint16(0x8000))
	test.ExpectEquality(t, mem.LastCPUWrite, false)
}

func TestDMARequest(t *testing.T) {
	mem, _ := newMemory(t, nil)
	test.ExpectEquality(t, mem.DMAPending, false)
	test.DemandSuccess(t, mem.Write(0x4014, 0x02))
	test.ExpectEquality(t, mem.DMAPending, true)
	test.ExpectEquality(t, mem.DMAPage, uint8(0x02))
}

func TestPeekPoke(t *testing.T) {
	prg := make([]byte, 0x4000)
	mem, p := newMemory(t, prg)

	test.DemandSuccess(t, mem.Poke(0x0801, 0x11))
	d, _ := mem.Peek(0x0001)
	test.ExpectEquality(t, d, uint8(0x11))

	test.DemandSuccess(t, mem.Poke(0xc000, 0x22))
	d, _ = mem.Peek(0x8000)
	test.ExpectEquality(t, d, uint8(0x22))

	test.ExpectFailure(t, mem.Poke(0x2000, 0x00))

	// peeking PPUSTATUS does not clear the vblank flag
	for !p.InVBlank() {
		p.Step()
	}
	d, _ = mem.Peek(0x2002)
	test.ExpectEquality(t, d&0x80, uint8(0x80))
	test.ExpectEquality(t, p.InVBlank(), true)
	d, _ = mem.Read(0x2002)
	test.ExpectEquality(t, d&0x80, uint8(0x80))
	test.ExpectEquality(t, p.InVBlank(), false)
}

func TestSnapshot(t *testing.T) {
	mem, _ := newMemory(t, nil)
	test.DemandSuccess(t, mem.Write(0x0000, 0x01))

	s := mem.Snapshot()
	test.DemandSuccess(t, mem.Write(0x0000, 0x02))

	d, _ := s.Peek(0x0000)
	test.ExpectEquality(t, d, uint8(0x01))
	d, _ = mem.Peek(0x0000)
	test.ExpectEquality(t, d, uint8(0x02))
}

func TestSnapshotDetached(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0x11
	mem, p := newMemory(t, prg)

	p.Status = 0x80
	d, _ := mem.Read(0x8000)
	test.ExpectEquality(t, d, uint8(0x11))

	s := mem.Snapshot()
	test.ExpectEquality(t, s.PPU, memory.PPUBus(nil))
	test.ExpectSuccess(t, s.Cart == nil)

	// the PPU and cartridge areas of the snapshot are open bus
	d, _ = s.Peek(0x8001)
	test.ExpectEquality(t, d, uint8(0x11))
	d, _ = s.Read(0x2002)
	test.ExpectEquality(t, d, uint8(0x11))
	test.ExpectEquality(t, p.Status, uint8(0x80))
	test.ExpectSuccess(t, s.Write(0x2000, 0x80))
	test.ExpectEquality(t, p.Ctrl, uint8(0x00))
	test.ExpectFailure(t, s.Poke(0x8000, 0x22))
	d, _ = mem.Peek(0x8000)
	test.ExpectEquality(t, d, uint8(0x11))

	// RAM is still available
	test.DemandSuccess(t, mem.Write(0x0000, 0x01))
	test.DemandSuccess(t, s.Write(0x0000, 0x02))
	d, _ = s.Peek(0x0000)
	test.ExpectEquality(t, d, uint8(0x02))
	d, _ = mem.Peek(0x0000)
	test.ExpectEquality(t, d, uint8(0x01))
}
