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

package rewind

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// newSearchNES creates a quiet NES with the same cartridge as the live
// emulation. The most recent history entry taken before the target is
// plumbed into it.
//
// Returns nil if there is no entry before the target.
func (r *Rewind) newSearchNES(tgt *State) (*hardware.NES, error) {
	if len(r.entries) == 0 {
		return nil, curated.Errorf(NoSnapshots)
	}

	if tgt.CPU.Cycles == 0 {
		return nil, nil
	}

	idx := r.findCycleIndex(tgt.CPU.Cycles - 1)
	from := r.entries[idx]
	if from.CPU.Cycles >= tgt.CPU.Cycles {
		return nil, nil
	}

	search, err := hardware.NewNES(r.nes.Instance.Prefs)
	if err != nil {
		return nil, curated.Errorf("rewind: search: %v", err)
	}
	search.Instance.Quiet = true

	if err := search.Attach(r.nes.Loader); err != nil {
		return nil, curated.Errorf("rewind: search: %v", err)
	}

	search.Plumb(from.State)

	return search, nil
}

// searchState is a snapshot of the search emulation. It is not part of the
// history.
func searchState(search *hardware.NES) *State {
	return &State{
		State:    search.Snapshot(),
		level:    levelAdhoc,
		Sequence: -1,
	}
}

// SearchMemoryWrite runs an emulation between two states looking for the
// instance when the address is written to with the value (valueMask is
// applied to mask specific bits).
//
// The supplied target state is the upper limit of the search. The lower limit
// of the search is the most recent history entry before the target.
//
// The supplied address will be normalised.
//
// Returns the state at the end of the instruction in which the most recent
// matching write occurred. If a more recent write is found but not with the
// correct value, then no state is returned.
func (r *Rewind) SearchMemoryWrite(tgt *State, addr uint16, value uint8, valueMask uint8) (*State, error) {
	search, err := r.newSearchNES(tgt)
	if err != nil || search == nil {
		return nil, err
	}

	addr, _ = memorymap.MapAddress(addr)

	var matchingState *State

	var written bool
	var data uint8

	// the bus is inspected on every cycle because the address of the last
	// access in the instruction is not necessarily the address of interest
	onCycle := func() error {
		if search.Mem.LastCPUWrite {
			if ma, _ := memorymap.MapAddress(search.Mem.LastCPUAddress); ma == addr {
				written = true
				data = search.Mem.LastCPUData
			}
		}
		return nil
	}

	for search.CPU.Cycles < tgt.CPU.Cycles {
		written = false
		if err := search.Step(onCycle); err != nil {
			return nil, curated.Errorf("rewind: search: %v", err)
		}

		if written {
			if data&valueMask == value&valueMask {
				matchingState = searchState(search)
			} else {
				matchingState = nil
			}
		}
	}

	return matchingState, nil
}

// loadsRegister returns true if the instruction writes to the register.
func loadsRegister(reg rune, defn *instructions.Definition) bool {
	switch reg {
	case 'A':
		switch defn.Operator {
		case instructions.Lda, instructions.Txa, instructions.Tya, instructions.Pla,
			instructions.Adc, instructions.Sbc, instructions.SBC, instructions.And,
			instructions.Ora, instructions.Eor, instructions.LAX, instructions.LAS,
			instructions.ANC, instructions.ASR, instructions.ARR, instructions.XAA,
			instructions.SLO, instructions.RLA, instructions.SRE, instructions.RRA,
			instructions.ISC:
			return true
		case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
			return defn.AddressingMode == instructions.Implied
		}
	case 'X':
		switch defn.Operator {
		case instructions.Ldx, instructions.Tax, instructions.Tsx, instructions.Inx,
			instructions.Dex, instructions.LAX, instructions.LAS, instructions.AXS:
			return true
		}
	case 'Y':
		switch defn.Operator {
		case instructions.Ldy, instructions.Tay, instructions.Iny, instructions.Dey:
			return true
		}
	}
	return false
}

// SearchRegisterWrite runs an emulation between two states looking for the
// instance when the register is written to with the value (valueMask is
// applied to mask specific bits).
//
// The supplied target state is the upper limit of the search. The lower limit
// of the search is the most recent history entry before the target.
//
// Returns the most recent State at which the register write was found. If a
// more recent register write is found but not the correct value, then no
// state is returned.
func (r *Rewind) SearchRegisterWrite(tgt *State, reg rune, value uint8, valueMask uint8) (*State, error) {
	switch reg {
	case 'A', 'X', 'Y':
	default:
		panic(fmt.Sprintf("rewind: search: unrecognised CPU register (%c)", reg))
	}

	search, err := r.newSearchNES(tgt)
	if err != nil || search == nil {
		return nil, err
	}

	var matchingState *State

	for search.CPU.Cycles < tgt.CPU.Cycles {
		if err := search.Step(nil); err != nil {
			return nil, curated.Errorf("rewind: search: %v", err)
		}

		if !loadsRegister(reg, search.CPU.LastResult.Defn) {
			continue
		}

		var v uint8
		switch reg {
		case 'A':
			v = search.CPU.A.Value()
		case 'X':
			v = search.CPU.X.Value()
		case 'Y':
			v = search.CPU.Y.Value()
		}

		if v&valueMask == value&valueMask {
			matchingState = searchState(search)
		} else {
			matchingState = nil
		}
	}

	return matchingState, nil
}
