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

// Package preferences contains the preference values for the emulated
// hardware. The values are stored on disk with the prefs package.
//
// The preferences that are recognised are:
//
//	cpu.illegal   the illegal opcode policy (emulate, nop or abort)
//	cpu.model     the CPU model (2A03 or 6502)
//	ram.random    randomise RAM on reset (true or false)
//
// Any of the values can be overridden for a single session by pushing values
// onto the prefs command line stack before NewPreferences() is called.
package preferences
