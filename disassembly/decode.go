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

package disassembly

import (
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// decode every address in the range as though it were the start of an
// instruction.
func (dsm *Disassembly) decode(mc *cpu.CPU) error {
	for a := int(origin); a <= int(memtop); a++ {
		address := uint16(a)

		mc.Killed = false
		mc.PC.Load(address)

		if err := mc.ExecuteInstruction(nil); err != nil {
			return err
		}

		e := &Entry{
			Level:  EntryLevelDecoded,
			Result: mc.LastResult,
			Bank:   dsm.cart.GetBank(address),
		}
		for i := range e.Result.ByteCount {
			e.Bytes[i], _ = dsm.cart.Peek(address + uint16(i))
		}

		dsm.entries[address-origin] = e
	}

	return nil
}

// bless those entries which we're reasonably sure are real instructions.
func (dsm *Disassembly) bless() {
	var blessings []uint16

	// the interrupt vectors are the starting points of the program
	for _, v := range []uint16{cpubus.Reset, cpubus.NMI, cpubus.IRQ} {
		lo, _ := dsm.cart.Peek(v)
		hi, _ := dsm.cart.Peek(v + 1)
		blessings = append(blessings, uint16(hi)<<8|uint16(lo))
	}

	// entries that are reached are followed to their own destinations
	seen := make(map[uint16]bool)

	for len(blessings) > 0 {
		a := blessings[0]
		blessings = blessings[1:]

		// linear traversal from the blessing point until a significant flow
		// control instruction is encountered
		for a >= origin && !seen[a] {
			seen[a] = true

			e := dsm.entries[a-origin]
			e.Level = EntryLevelBlessed

			defn := e.Result.Defn

			switch defn.Operator {
			case instructions.Jmp:
				if defn.AddressingMode == instructions.Absolute {
					blessings = append(blessings, e.Result.InstructionData)
				}
			case instructions.Jsr:
				blessings = append(blessings, e.Result.InstructionData)
			}

			if defn.IsBranch() {
				dest := a + uint16(defn.Bytes) + uint16(int8(e.Result.InstructionData))
				blessings = append(blessings, dest)
			}

			switch defn.Operator {
			case instructions.Jmp, instructions.Rts, instructions.Rti, instructions.Brk, instructions.KIL:
				a = 0
				continue
			}

			next := a + uint16(defn.Bytes)
			if next < a {
				// wrapped around the top of memory
				break
			}
			a = next
		}
	}
}
