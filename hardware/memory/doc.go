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

// Package memory implements the CPU bus of the NES. The Memory type resolves
// every address to exactly one memory area and performs the read or write.
//
//	                          ---- RAM
//	                         |
//	    CPU ---- cpu bus ---- * ---- PPU registers ---- PPU
//	                         |
//	                         |---- IO ---- OAM DMA
//	                         |
//	                          ---- Cartridge ---- mapper
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the primary address. The memorymap package contains more detail on this.
//
// Addresses that are not driven by any memory area return the last value
// seen on the data bus. This is the open bus value.
//
// The Peek() and Poke() functions are for use by the debugging collaborator
// and do not cause side effects in the PPU.
package memory
