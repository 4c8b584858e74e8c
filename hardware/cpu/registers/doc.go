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

// Package registers implements the four types of register found in the 6502
// family of CPUs, as used by the NES. The four types are: the program
// counter, the stack pointer, the status register and the 8 bit register
// used for A, X and Y.
//
// The 8 bit Register type defines all the basic operations of the CPU: load,
// add, subtract, logical operations and shifts/rotates. It also implements
// the tests required for status updates: is the value zero, is the value
// negative and is the overflow bit set. All arithmetic wraps at 8 bits.
//
// The program counter is 16 bits wide and defines only load and add. Addition
// wraps at 16 bits.
//
// The stack pointer is an 8 bit register whose address is always in page
// one of memory.
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly. For example:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
package registers
