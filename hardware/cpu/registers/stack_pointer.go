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

package registers

// the stack is always in page one of memory.
const stackPage = uint16(0x0100)

// StackPointer is an 8 bit register that addresses page one of memory.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{
		Register: NewRegister(val, "SP"),
	}
}

// Address returns the memory address the stack pointer is currently pointing
// to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Push moves the stack pointer to the next free location, after a value has
// been written to the stack.
func (sp *StackPointer) Push() {
	sp.value--
}

// Pull moves the stack pointer to the most recently pushed location, before
// a value is read from the stack.
func (sp *StackPointer) Pull() {
	sp.value++
}
