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

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes. The accumulator addressing mode is
// represented by Implied.
const (
	Implied AddressingMode = iota
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind), Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zero page"
	case Indirect:
		return "indirect"
	case IndexedIndirect:
		return "indexed indirect"
	case IndirectIndexed:
		return "indirect indexed"
	case AbsoluteIndexedX:
		return "absolute indexed X"
	case AbsoluteIndexedY:
		return "absolute indexed Y"
	case ZeroPageIndexedX:
		return "zero page indexed X"
	case ZeroPageIndexedY:
		return "zero page indexed Y"
	}
	return "unknown addressing mode"
}

// Decorate an operand string with the notation used by the addressing mode.
func (m AddressingMode) Decorate(operand string) string {
	switch m {
	case Immediate:
		return "#" + operand
	case Indirect:
		return "(" + operand + ")"
	case IndexedIndirect:
		return "(" + operand + ",X)"
	case IndirectIndexed:
		return "(" + operand + "),Y"
	case AbsoluteIndexedX, ZeroPageIndexedX:
		return operand + ",X"
	case AbsoluteIndexedY, ZeroPageIndexedY:
		return operand + ",Y"
	}
	return operand
}
