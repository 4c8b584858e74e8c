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

// Package instructions defines the table of instruction definitions for the
// 6502 family of CPUs, including the 2A03 found in the NES.
//
// Every one of the 256 possible opcodes is defined, including the
// undocumented opcodes. Definitions are looked up with the Lookup()
// function. The table is static and is never modified.
//
// Whether an undocumented opcode is actually executed as defined is a
// decision for the cpu package.
package instructions
