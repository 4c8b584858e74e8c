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
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/addresses"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel values. Entries at a higher level are more likely
// to be real instructions.
const (
	// the entry has been decoded but may be data
	EntryLevelDecoded EntryLevel = iota

	// the entry is reachable from the interrupt vectors
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return ""
}

// Entry is a disassembly entry for a single address.
type Entry struct {
	Level  EntryLevel
	Result execution.Result
	Bank   mapper.BankInfo

	// the bytes of the instruction. only the first Result.ByteCount bytes
	// are valid
	Bytes [3]uint8
}

// String returns the entry in a format suitable for a listing.
func (e *Entry) String() string {
	b := strings.Builder{}
	for i := range e.Result.ByteCount {
		b.WriteString(fmt.Sprintf("%02x ", e.Bytes[i]))
	}

	s := fmt.Sprintf("%04x  %-9s %s", e.Result.Address, b.String(), e.Result.Defn.Operator)
	if operand := e.Result.Operand(); operand != "" {
		s = fmt.Sprintf("%s %s", s, operand)
	}

	if sym := Annotate(e.Result); sym != "" {
		s = fmt.Sprintf("%-28s ; %s", s, sym)
	}

	return s
}

// Annotate returns the symbol for the address in the operand of the
// instruction. Returns the empty string if the instruction does not access
// memory or if the address has no symbol.
func Annotate(r execution.Result) string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.Effect {
	case instructions.Read, instructions.Write, instructions.RMW:
	default:
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY,
		instructions.ZeroPage, instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
	default:
		return ""
	}

	sym, _ := addresses.Symbol(r.InstructionData, r.Defn.Effect != instructions.Read)
	return sym
}
