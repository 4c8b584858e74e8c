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

package preferences

import (
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/prefs"
)

// Illegal opcode policies. The policy decides what happens when the CPU
// decodes an undocumented opcode.
const (
	// undocumented opcodes are executed as the NMOS 6502 executes them
	IllegalEmulate = "emulate"

	// undocumented opcodes consume their operand bytes and cycles but
	// otherwise have no effect
	IllegalNOP = "nop"

	// undocumented opcodes halt the CPU and an error is returned to the
	// driver
	IllegalAbort = "abort"
)

// CPU models.
const (
	// the 2A03 as found in the NES. the decimal flag has no effect on ADC
	// and SBC
	Model2A03 = "2A03"

	// the NMOS 6502 with binary coded decimal arithmetic
	Model6502 = "6502"
)

// Sentinal error returned when a preference is set to an unknown value.
const UnknownValue = "preferences: unknown value for %s (%s)"

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the illegal opcode policy. one of the Illegal* values
	IllegalOpcodes prefs.String

	// the CPU model. one of the Model* values
	CPUModel prefs.String

	// initialise RAM to random values after reset
	RandomRAM prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.IllegalOpcodes.SetHook(func(v prefs.Value) error {
		switch strings.ToLower(v.(string)) {
		case IllegalEmulate, IllegalNOP, IllegalAbort:
			return nil
		}
		return curated.Errorf(UnknownValue, "cpu.illegal", v)
	})

	p.CPUModel.SetHook(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case Model2A03, Model6502:
			return nil
		}
		return curated.Errorf(UnknownValue, "cpu.model", v)
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cpu.illegal", &p.IllegalOpcodes)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.model", &p.CPUModel)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("ram.random", &p.RandomRAM)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	// hooks are not set when SetDefaults() is called from NewPreferences()
	// but the default values are always valid
	_ = p.IllegalOpcodes.Set(IllegalEmulate)
	_ = p.CPUModel.Set(Model2A03)
	_ = p.RandomRAM.Set(false)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// IllegalPolicy returns the illegal opcode policy normalised to lower case.
func (p *Preferences) IllegalPolicy() string {
	return strings.ToLower(p.IllegalOpcodes.String())
}

// HasBCD returns true if the CPU model supports binary coded decimal
// arithmetic.
func (p *Preferences) HasBCD() bool {
	return strings.ToUpper(p.CPUModel.String()) == Model6502
}
