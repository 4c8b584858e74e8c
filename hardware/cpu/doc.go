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

// Package cpu emulates the 2A03 processor found in the NES. The 2A03 is an
// NMOS 6502 without the binary coded decimal circuitry. Like all 8-bit
// processors of the era, it executes instructions according to the single
// byte value read from the address pointed to by the program counter. The
// byte is the opcode and is looked up in the table of the instructions
// package. The definition found there is then used to move execution of the
// program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface. The
// Memory interface defines the memory operations required by the CPU. See the
// cpubus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction.
//
//	mc := cpu.NewCPU(ins, mem)
//	mc.Reset(cpu.NilCycleCallback)
//
//	for {
//		err := mc.ExecuteInstruction(func() error {
//			ppu.Step()
//			ppu.Step()
//			ppu.Step()
//			return nil
//		})
//	}
//
// The NES uses this to run the PPU three times for every CPU cycle.
//
// The LastResult field can be inspected for information about the last
// instruction executed, or about the current instruction being executed if
// accessed from ExecuteInstruction()'s callback function. See the execution
// package for more information.
//
// The Cycles field counts every cycle since the last Reset(). It is
// monotonic and is used as the clock for the random package.
//
// Undocumented opcodes are handled according to the cpu.illegal preference.
// They are either emulated, treated as a no-op that consumes the bytes and
// cycles of the instruction, or they halt the CPU with an
// UnimplementedInstruction error.
package cpu
