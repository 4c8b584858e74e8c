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
	"github.com/jetsetilly/gophernes/logger"
)

// State is a single entry in the rewind history. The embedded hardware state
// does not share any memory with the live emulation and must be treated as
// read-only.
type State struct {
	*hardware.State

	level snapshotLevel

	// the number of snapshots taken before this one since the last call to
	// Reset()
	Sequence int
}

// snapshotLevel indicates how the snapshot was requested.
type snapshotLevel int

// List of valid snapshotLevel values.
const (
	levelAdhoc snapshotLevel = iota
	levelPeriodic
)

func (s *State) String() string {
	if s.level == levelPeriodic {
		return fmt.Sprintf("%d: %d cycles", s.Sequence, s.CPU.Cycles)
	}
	return fmt.Sprintf("%d: %d cycles (adhoc)", s.Sequence, s.CPU.Cycles)
}

// Sentinal errors.
const (
	NoSnapshots     = "rewind: no snapshots in history"
	InvalidSnapshot = "rewind: snapshot index out of range (%d)"
)

// Rewind contains a history of machine states for the emulation. Snapshots
// are ordered by the time they were taken.
type Rewind struct {
	nes *hardware.NES

	Prefs *Preferences

	entries []*State

	// the number of snapshots taken since the last Reset(). this is not the
	// same as len(entries) once the history has been trimmed
	sequence int

	// instruction count at the time of the most recent periodic snapshot
	lastCheck uint64

	// the comparison point. the comparison state is taken from the history
	// but is not forgotten when the history is trimmed or reset
	comparison       *State
	comparisonLocked bool
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The history is empty.
func NewRewind(nes *hardware.NES) (*Rewind, error) {
	r := &Rewind{
		nes: nes,
	}

	var err error
	r.Prefs, err = newPreferences(r)
	if err != nil {
		return nil, curated.Errorf("rewind: %v", err)
	}

	r.Reset()

	return r, nil
}

// Reset removes all entries from the history. The emulation is not changed.
func (r *Rewind) Reset() {
	clear(r.entries)
	r.entries = r.entries[:0]
	r.sequence = 0
	r.lastCheck = r.nes.Instructions
}

func (r *Rewind) snapshot(level snapshotLevel) *State {
	s := &State{
		State:    r.nes.Snapshot(),
		level:    level,
		Sequence: r.sequence,
	}
	r.sequence++
	return s
}

// TakeSnapshot of the current emulation state and append it to the history.
// The oldest entries are forgotten if the history is larger than the
// rewind.max preference.
func (r *Rewind) TakeSnapshot() *State {
	s := r.snapshot(levelAdhoc)
	r.append(s)
	return s
}

// Check should be called after every CPU instruction. A snapshot is taken
// if the number of instructions since the previous periodic snapshot is at
// least the rewind.freq preference. Returns true if a snapshot was taken.
func (r *Rewind) Check() bool {
	freq := r.Prefs.Freq.Get().(int)
	if freq <= 0 {
		return false
	}

	// the machine has been reset or a snapshot plumbed in
	if r.nes.Instructions < r.lastCheck {
		r.lastCheck = r.nes.Instructions
	}

	if r.nes.Instructions-r.lastCheck < uint64(freq) {
		return false
	}

	r.lastCheck = r.nes.Instructions
	r.append(r.snapshot(levelPeriodic))

	return true
}

func (r *Rewind) append(s *State) {
	r.entries = append(r.entries, s)
	r.trim()
}

// forget the oldest entries if the history is larger than the maximum.
func (r *Rewind) trim() {
	mx := r.Prefs.MaxEntries.Get().(int)
	if mx <= 0 || len(r.entries) <= mx {
		return
	}

	n := len(r.entries) - mx

	// the forgotten entries are cleared so that they can be collected
	clear(r.entries[:n])
	r.entries = append(r.entries[:0], r.entries[n:]...)
}

// Snapshots returns the history in the order the snapshots were taken. The
// returned slice is a copy but the entries are shared and must not be
// changed.
func (r *Rewind) Snapshots() []*State {
	s := make([]*State, len(r.entries))
	copy(s, r.entries)
	return s
}

// Len returns the number of snapshots in the history.
func (r *Rewind) Len() int {
	return len(r.entries)
}

// GetState returns the history entry at the index.
func (r *Rewind) GetState(idx int) (*State, error) {
	if idx < 0 || idx >= len(r.entries) {
		return nil, curated.Errorf(InvalidSnapshot, idx)
	}
	return r.entries[idx], nil
}

// GotoSnapshot plumbs the history entry at the index into the emulation. The
// history is not changed and later entries are not forgotten.
func (r *Rewind) GotoSnapshot(idx int) error {
	s, err := r.GetState(idx)
	if err != nil {
		return err
	}

	r.nes.Plumb(s.State)
	r.lastCheck = r.nes.Instructions

	logger.Logf(r.nes.Instance, "rewind", "plumbed snapshot %s", s)

	return nil
}

// GotoLast plumbs the most recent snapshot into the emulation.
func (r *Rewind) GotoLast() error {
	if len(r.entries) == 0 {
		return curated.Errorf(NoSnapshots)
	}
	return r.GotoSnapshot(len(r.entries) - 1)
}

// findCycleIndex returns the index of the most recent entry taken at or
// before the CPU cycle. The earliest entry is returned if all entries were
// taken after the cycle.
func (r *Rewind) findCycleIndex(cycle uint64) int {
	// the CPU cycle count is reset when the machine is reset so the history
	// is not necessarily ordered by cycle. search backwards from the most
	// recent entry until the cycle count would increase
	s := 0
	for i := len(r.entries) - 1; i > 0; i-- {
		if r.entries[i-1].CPU.Cycles > r.entries[i].CPU.Cycles {
			s = i
			break
		}
	}

	// binary search of the ordered part of the history
	e := len(r.entries) - 1
	idx := s
	for s <= e {
		m := (s + e) / 2
		if r.entries[m].CPU.Cycles <= cycle {
			idx = m
			s = m + 1
		} else {
			e = m - 1
		}
	}

	return idx
}

// GotoCycle plumbs in the most recent snapshot taken at or before the CPU
// cycle. Only entries taken since the most recent machine reset are
// considered. Returns the plumbed state.
func (r *Rewind) GotoCycle(cycle uint64) (*State, error) {
	if len(r.entries) == 0 {
		return nil, curated.Errorf(NoSnapshots)
	}

	idx := r.findCycleIndex(cycle)
	if err := r.GotoSnapshot(idx); err != nil {
		return nil, err
	}

	return r.entries[idx], nil
}
