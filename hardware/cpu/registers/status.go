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

import (
	"strings"
)

// bits of the status register when it is represented as a single byte.
const (
	SignBit      = uint8(0x80)
	OverflowBit  = uint8(0x40)
	UnusedBit    = uint8(0x20)
	BreakBit     = uint8(0x10)
	DecimalBit   = uint8(0x08)
	InterruptBit = uint8(0x04)
	ZeroBit      = uint8(0x02)
	CarryBit     = uint8(0x01)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
//
// The break (B) and unused (U) bits have no storage. They exist only in the
// byte pushed onto the stack. U is always set in that byte and B depends on
// what caused the push (see the PushValue() function).
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(sr.Sign, 'S')
	flag(sr.Overflow, 'V')
	s.WriteString("--")
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')

	return s.String()
}

// Reset status flags to the power-on state. Only the interrupt disable flag
// is set.
func (sr *StatusRegister) Reset() {
	sr.Load(InterruptBit)
}

// Value converts the StatusRegister to a byte. The unused bit is always set.
// The break bit is never set.
func (sr StatusRegister) Value() uint8 {
	v := UnusedBit

	if sr.Sign {
		v |= SignBit
	}
	if sr.Overflow {
		v |= OverflowBit
	}
	if sr.DecimalMode {
		v |= DecimalBit
	}
	if sr.InterruptDisable {
		v |= InterruptBit
	}
	if sr.Zero {
		v |= ZeroBit
	}
	if sr.Carry {
		v |= CarryBit
	}

	return v
}

// PushValue is the value of the status register as it is written to the
// stack. The break bit is set for PHP and BRK and clear when the push is
// caused by a hardware interrupt.
func (sr StatusRegister) PushValue(brk bool) uint8 {
	if brk {
		return sr.Value() | BreakBit
	}
	return sr.Value()
}

// Load byte into StatusRegister. The break and unused bits are ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&SignBit == SignBit
	sr.Overflow = v&OverflowBit == OverflowBit
	sr.DecimalMode = v&DecimalBit == DecimalBit
	sr.InterruptDisable = v&InterruptBit == InterruptBit
	sr.Zero = v&ZeroBit == ZeroBit
	sr.Carry = v&CarryBit == CarryBit
}
