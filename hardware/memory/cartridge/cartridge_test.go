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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/test"
)

// fill returns a byte slice of size n. every 16k bank is filled with the
// offset in the bank added to the bank number.
func fill(n int) []byte {
	d := make([]byte, n)
	for i := range d {
		d[i] = uint8(i + i/0x4000)
	}
	return d
}

func TestNROMMirroring(t *testing.T) {
	m, err := cartridge.NewMapper(0, fill(0x4000), fill(0x2000), mapper.Vertical)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, m.ID(), 0)
	test.ExpectEquality(t, m.Mirroring(), mapper.Vertical)

	for k := uint16(0); k < 0x4000; k++ {
		a, driven := m.Read(0x8000 + k)
		test.DemandEquality(t, driven, true)
		b, _ := m.Read(0xc000 + k)
		test.DemandEquality(t, a, b, k)
	}

	// 32k ROM is not mirrored
	m, err = cartridge.NewMapper(0, fill(0x8000), fill(0x2000), mapper.Horizontal)
	test.DemandSuccess(t, err)
	a, _ := m.Read(0x8000)
	b, _ := m.Read(0xc000)
	test.ExpectInequality(t, a, b)
}

func TestNROMImmutable(t *testing.T) {
	m, err := cartridge.NewMapper(0, fill(0x4000), nil, mapper.Horizontal)
	test.DemandSuccess(t, err)

	for addr := 0x8000; addr <= 0xffff; addr += 0x0101 {
		before, _ := m.Read(uint16(addr))
		m.Write(uint16(addr), ^before)
		after, _ := m.Read(uint16(addr))
		test.DemandEquality(t, after, before, addr)
	}

	// nothing below the ROM window
	_, driven := m.Read(0x6000)
	test.ExpectEquality(t, driven, false)
	_, driven = m.Read(0x4020)
	test.ExpectEquality(t, driven, false)
}

func TestUnsupportedSizes(t *testing.T) {
	_, err := cartridge.NewMapper(0, fill(0x2000), nil, mapper.Horizontal)
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedPRGSize), true)

	_, err = cartridge.NewMapper(0, fill(0x10000), nil, mapper.Horizontal)
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedPRGSize), true)

	_, err = cartridge.NewMapper(0, fill(0x4000), fill(0x4000), mapper.Horizontal)
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedCHRSize), true)

	_, err = cartridge.NewMapper(2, fill(0x4000), nil, mapper.Horizontal)
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedPRGSize), true)

	_, err = cartridge.NewMapper(3, fill(0x4000), fill(0x1000), mapper.Horizontal)
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedCHRSize), true)

	_, err = cartridge.NewMapper(4, fill(0x4000), nil, mapper.Horizontal)
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedMapper), true)
}

func TestUxROM(t *testing.T) {
	m, err := cartridge.NewMapper(2, fill(0x4000*4), nil, mapper.Vertical)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.NumBanks(), 4)

	// last bank is fixed
	d, _ := m.Read(0xc000)
	test.ExpectEquality(t, d, uint8(3))

	d, _ = m.Read(0x8000)
	test.ExpectEquality(t, d, uint8(0))

	m.Write(0x8000, 2)
	d, _ = m.Read(0x8000)
	test.ExpectEquality(t, d, uint8(2))
	test.ExpectEquality(t, m.GetBank(0x8000).Number, 2)
	test.ExpectEquality(t, m.GetBank(0xc000).Number, 3)

	// bank value wraps to the number of banks
	m.Write(0xffff, 5)
	d, _ = m.Read(0x8000)
	test.ExpectEquality(t, d, uint8(1))

	m.Reset()
	test.ExpectEquality(t, m.GetBank(0x8000).Number, 0)
}

func TestCNROM(t *testing.T) {
	chr := make([]byte, 0x2000*4)
	for i := range chr {
		chr[i] = uint8(i / 0x2000)
	}

	m, err := cartridge.NewMapper(3, fill(0x8000), chr, mapper.Horizontal)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, m.ReadCHR(0x0000), uint8(0))
	m.Write(0x8000, 3)
	test.ExpectEquality(t, m.ReadCHR(0x0000), uint8(3))
	test.ExpectEquality(t, m.ReadCHR(0x1fff), uint8(3))

	// CHR-ROM is not writable
	m.WriteCHR(0x0000, 0xff)
	test.ExpectEquality(t, m.ReadCHR(0x0000), uint8(3))
}

func TestCHRRAM(t *testing.T) {
	m, err := cartridge.NewMapper(0, fill(0x4000), nil, mapper.Horizontal)
	test.DemandSuccess(t, err)

	m.WriteCHR(0x1234, 0x56)
	test.ExpectEquality(t, m.ReadCHR(0x1234), uint8(0x56))

	ram := m.(mapper.CartRAMbus).GetRAM()
	test.DemandEquality(t, len(ram), 1)
	test.ExpectEquality(t, ram[0].Data[0x1234], uint8(0x56))
}

func TestMapperSnapshot(t *testing.T) {
	m, err := cartridge.NewMapper(2, fill(0x4000*4), nil, mapper.Vertical)
	test.DemandSuccess(t, err)

	m.Write(0x8000, 1)
	m.WriteCHR(0x0000, 0x11)
	s := m.Snapshot()

	m.Write(0x8000, 2)
	m.WriteCHR(0x0000, 0x22)
	test.ExpectEquality(t, m.GetBank(0x8000).Number, 2)

	m.Plumb(s.Snapshot())
	test.ExpectEquality(t, m.GetBank(0x8000).Number, 1)
	test.ExpectEquality(t, m.ReadCHR(0x0000), uint8(0x11))

	// changing the live state does not change the snapshot
	m.WriteCHR(0x0000, 0x33)
	m.Plumb(s.Snapshot())
	test.ExpectEquality(t, m.ReadCHR(0x0000), uint8(0x11))
}

func TestCartridge(t *testing.T) {
	cart := cartridge.NewCartridge()
	test.ExpectEquality(t, cart.IsEjected(), true)

	_, driven := cart.Read(0x8000)
	test.ExpectEquality(t, driven, false)
	test.ExpectFailure(t, cart.Patch(0, 0))

	prg := fill(0x4000)
	cl := cartridgeloader.NewLoaderFromROM("test.nes", 0, prg, nil, mapper.Vertical)
	test.DemandSuccess(t, cart.Attach(cl))
	test.ExpectEquality(t, cart.IsEjected(), false)
	test.ExpectEquality(t, cart.ID(), 0)
	test.ExpectEquality(t, cart.Hash, cl.Hash)
	test.ExpectEquality(t, cart.Mirroring(), mapper.Vertical)

	d, driven := cart.Read(0x8010)
	test.ExpectEquality(t, driven, true)
	test.ExpectEquality(t, d, uint8(0x10))

	test.DemandSuccess(t, cart.Patch(0x10, 0xea))
	d, _ = cart.Peek(0xc010)
	test.ExpectEquality(t, d, uint8(0xea))

	test.DemandSuccess(t, cart.Poke(0x8011, 0xeb))
	d, _ = cart.Peek(0x8011)
	test.ExpectEquality(t, d, uint8(0xeb))

	test.ExpectFailure(t, cart.Patch(0x4000, 0))
	test.ExpectFailure(t, cart.Poke(0x6000, 0))

	// the original data is not changed by the patch
	test.ExpectEquality(t, prg[0x10], uint8(0x10))

	// unsupported mapper leaves the cartridge ejected
	cl = cartridgeloader.NewLoaderFromROM("test.nes", 1, prg, nil, mapper.Vertical)
	test.ExpectFailure(t, cart.Attach(cl))
	test.ExpectEquality(t, cart.IsEjected(), true)
}
