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

// Package ppu implements the register interface and memory of the NES picture
// processing unit. Pixels are not generated. The package models what the CPU
// can see of the PPU: the eight registers at $2000 to $2007, the video memory
// behind PPUDATA, object attribute memory and the timing of the vertical
// blank, which is the source of the NMI.
//
// The PPU is advanced with the Step() function. There are three PPU dots for
// every CPU cycle and the NES type in the hardware package is responsible for
// calling Step() the correct number of times.
//
// Pattern table access ($0000 to $1fff of the PPU address space) is forwarded
// to the cartridge. The nametables are stored in the PPU's own video memory,
// laid out according to the cartridge's mirroring.
package ppu
