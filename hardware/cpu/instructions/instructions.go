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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory

	// undocumented opcodes are subject to the illegal opcode policy of the
	// CPU
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == NoOperator {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Lookup returns the definition for the opcode.
func Lookup(opcode uint8) *Definition {
	return &definitions[opcode]
}

// Sentinal error returned by Validate().
const InvalidDefinition = "instructions: invalid definition for opcode %#02x: %s"

// Validate checks the consistency of the definitions table.
func Validate() error {
	for i := range definitions {
		defn := definitions[i]

		if int(defn.OpCode) != i {
			return curated.Errorf(InvalidDefinition, i, "opcode does not match table index")
		}
		if defn.Operator == NoOperator {
			return curated.Errorf(InvalidDefinition, i, "no operator")
		}
		if defn.Bytes < 1 || defn.Bytes > 3 {
			return curated.Errorf(InvalidDefinition, i, "byte count out of range")
		}
		if defn.Cycles < 2 || defn.Cycles > 8 {
			return curated.Errorf(InvalidDefinition, i, "cycle count out of range")
		}
		if defn.PageSensitive && defn.Effect != Read && !defn.IsBranch() {
			return curated.Errorf(InvalidDefinition, i, "only read instructions are page sensitive")
		}

		var expectedBytes int
		switch defn.AddressingMode {
		case Implied:
			expectedBytes = 1
		case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect:
			expectedBytes = 3
		default:
			expectedBytes = 2
		}
		if defn.Bytes != expectedBytes {
			return curated.Errorf(InvalidDefinition, i, "byte count does not agree with addressing mode")
		}
	}

	return nil
}
