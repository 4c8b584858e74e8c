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
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of snapshots kept in the history. the oldest
	// snapshots are forgotten once the maximum has been reached. zero means
	// there is no maximum
	MaxEntries prefs.Int

	// the number of instructions between each snapshot taken by Check(). zero
	// means Check() never takes a snapshot
	Freq prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// Sentinal error returned by the preference hooks.
const InvalidPreference = "rewind: %s must not be negative (%v)"

// default values.
const (
	defaultMaxEntries = 0
	defaultFreq       = 0
)

func newPreferences(r *Rewind) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.max", &p.MaxEntries)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.freq", &p.Freq)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	p.MaxEntries.SetHook(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidPreference, "rewind.max", v)
		}
		r.trim()
		return nil
	})

	p.Freq.SetHook(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidPreference, "rewind.freq", v)
		}
		return nil
	})

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.MaxEntries.Set(defaultMaxEntries)
	_ = p.Freq.Set(defaultFreq)
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
