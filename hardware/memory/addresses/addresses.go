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

package addresses

import "github.com/jetsetilly/gophernes/hardware/memory/memorymap"

// CanonicalReadSymbols lists the readable register addresses along with the
// canonical names for those addresses. Addresses are primary mirrors.
var CanonicalReadSymbols = map[uint16]string{
	// PPU
	0x2002: "PPUSTATUS",
	0x2004: "OAMDATA",
	0x2007: "PPUDATA",

	// APU and IO
	0x4015: "SND_CHN",
	0x4016: "JOY1",
	0x4017: "JOY2",

	// vectors
	0xfffa: "NMI",
	0xfffb: "NMI+1",
	0xfffc: "RESET",
	0xfffd: "RESET+1",
	0xfffe: "IRQ",
	0xffff: "IRQ+1",
}

// CanonicalWriteSymbols lists the writable register addresses along with
// the canonical names for those addresses.
var CanonicalWriteSymbols = map[uint16]string{
	// PPU
	0x2000: "PPUCTRL",
	0x2001: "PPUMASK",
	0x2003: "OAMADDR",
	0x2004: "OAMDATA",
	0x2005: "PPUSCROLL",
	0x2006: "PPUADDR",
	0x2007: "PPUDATA",

	// APU
	0x4000: "SQ1_VOL",
	0x4001: "SQ1_SWEEP",
	0x4002: "SQ1_LO",
	0x4003: "SQ1_HI",
	0x4004: "SQ2_VOL",
	0x4005: "SQ2_SWEEP",
	0x4006: "SQ2_LO",
	0x4007: "SQ2_HI",
	0x4008: "TRI_LINEAR",
	0x400a: "TRI_LO",
	0x400b: "TRI_HI",
	0x400c: "NOISE_VOL",
	0x400e: "NOISE_LO",
	0x400f: "NOISE_HI",
	0x4010: "DMC_FREQ",
	0x4011: "DMC_RAW",
	0x4012: "DMC_START",
	0x4013: "DMC_LEN",

	// IO
	0x4014: "OAMDMA",
	0x4015: "SND_CHN",
	0x4016: "JOY1",
	0x4017: "JOY_FRAME",
}

// Read is a sparse array of read symbols indexed by the primary address of
// the PPU and IO areas. The PPU origin is the first index.
var Read []string

// Write is the write equivalent of Read.
var Write []string

// the area covered by the sparse arrays.
const (
	sparseOrigin = memorymap.OriginPPU
	sparseMemtop = memorymap.MemtopIO
)

func init() {
	Read = make([]string, sparseMemtop-sparseOrigin+1)
	Write = make([]string, sparseMemtop-sparseOrigin+1)

	for k, v := range CanonicalReadSymbols {
		if k >= sparseOrigin && k <= sparseMemtop {
			Read[k-sparseOrigin] = v
		}
	}

	for k, v := range CanonicalWriteSymbols {
		if k >= sparseOrigin && k <= sparseMemtop {
			Write[k-sparseOrigin] = v
		}
	}
}

// Symbol returns the canonical symbol for the address. Mirrored addresses
// are mapped to the primary mirror before lookup. The boolean return value
// is false if there is no symbol for the address.
func Symbol(address uint16, write bool) (string, bool) {
	ma, _ := memorymap.MapAddress(address)

	if ma >= sparseOrigin && ma <= sparseMemtop {
		var s string
		if write {
			s = Write[ma-sparseOrigin]
		} else {
			s = Read[ma-sparseOrigin]
		}
		return s, s != ""
	}

	var s string
	var ok bool
	if write {
		s, ok = CanonicalWriteSymbols[ma]
	} else {
		s, ok = CanonicalReadSymbols[ma]
	}
	return s, ok
}
