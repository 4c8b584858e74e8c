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

// Package disassembly produces a static disassembly of the cartridge ROM as
// seen by the CPU in the current bank configuration.
//
// Every address in the program ROM area ($8000 to $FFFF) is decoded as though it were the start
// of an instruction. Entries that can be reached from the interrupt vectors
// by following the flow of the program are then promoted to the blessed
// level. Blessed entries are very likely to be real instructions; decoded
// entries may be data.
//
// For quick disassemblies the FromCartridge() function can be used. An
// existing cartridge can be disassembled with FromMemory().
package disassembly
