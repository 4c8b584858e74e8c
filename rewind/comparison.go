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
	"github.com/jetsetilly/gophernes/curated"
)

// ComparisonState is returned by GetComparisonState().
type ComparisonState struct {
	State  *State
	Locked bool
}

// GetComparisonState gets a reference to current comparison point. The State
// field will be nil if no comparison point has been set.
func (r *Rewind) GetComparisonState() ComparisonState {
	return ComparisonState{
		State:  r.comparison,
		Locked: r.comparisonLocked,
	}
}

// UpdateComparison points comparison to a snapshot of the current emulation
// state. The snapshot is not added to the history. Has no effect if the
// comparison is locked.
func (r *Rewind) UpdateComparison() {
	if r.comparisonLocked {
		return
	}
	r.comparison = r.snapshot(levelAdhoc)
}

// SetComparison points comparison to the history entry at the index. The
// comparison point is changed even if it is locked.
func (r *Rewind) SetComparison(idx int) error {
	s, err := r.GetState(idx)
	if err != nil {
		return err
	}
	r.comparison = s
	return nil
}

// LockComparison stops the comparison point from being updated.
func (r *Rewind) LockComparison(locked bool) {
	r.comparisonLocked = locked
}

// Difference is a single RAM location that differs between two states.
type Difference struct {
	Address uint16
	Before  uint8
	After   uint8
}

// CompareRAM returns the RAM locations that differ between the comparison
// point and the state. Addresses are in the primary RAM mirror.
func (r *Rewind) CompareRAM(s *State) ([]Difference, error) {
	if r.comparison == nil {
		return nil, curated.Errorf("rewind: no comparison point")
	}
	return DiffRAM(r.comparison, s), nil
}

// DiffRAM returns the RAM locations that differ between the two states.
func DiffRAM(before *State, after *State) []Difference {
	var d []Difference
	for i, v := range before.Mem.RAM.RAM {
		if i >= len(after.Mem.RAM.RAM) {
			break
		}
		if w := after.Mem.RAM.RAM[i]; w != v {
			d = append(d, Difference{
				Address: uint16(i),
				Before:  v,
				After:   w,
			})
		}
	}
	return d
}
