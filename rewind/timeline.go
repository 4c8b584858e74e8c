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

// Timeline provides a summary of the current state of the rewind system.
//
// Useful for presenting the range of snapshots that are available in the
// rewind history without exposing the snapshots themselves.
type Timeline struct {
	Sequence []int
	Cycles   []uint64
	Frame    []int

	// the cycle counts of the earliest and latest snapshots in the history
	AvailableStart uint64
	AvailableEnd   uint64
}

// GetTimeline returns a summary of the history. The arrays in the Timeline
// are the same length as the history.
func (r *Rewind) GetTimeline() Timeline {
	tl := Timeline{
		Sequence: make([]int, 0, len(r.entries)),
		Cycles:   make([]uint64, 0, len(r.entries)),
		Frame:    make([]int, 0, len(r.entries)),
	}

	for _, s := range r.entries {
		tl.Sequence = append(tl.Sequence, s.Sequence)
		tl.Cycles = append(tl.Cycles, s.CPU.Cycles)
		tl.Frame = append(tl.Frame, s.PPU.Frame)
	}

	if len(r.entries) > 0 {
		tl.AvailableStart = r.entries[0].CPU.Cycles
		tl.AvailableEnd = r.entries[len(r.entries)-1].CPU.Cycles
	}

	return tl
}
