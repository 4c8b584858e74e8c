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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// Much of the NES address space is mirrored. The 2 KiB of internal RAM
// appears four times in the first 8 KiB of the address space and the eight
// PPU registers are repeated every eight bytes between $2000 and $3fff. The
// MapAddress() function translates any address into the primary address and
// the memory area it belongs to.
//
// Addresses in the cartridge area are not mapped. How a cartridge address is
// interpreted is a decision for the cartridge mapper.
package memorymap
