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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/test"
)

// isolate preferences file from the user's real configuration
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestDefaults(t *testing.T) {
	isolate(t)

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.IllegalPolicy(), preferences.IllegalEmulate)
	test.ExpectEquality(t, p.HasBCD(), false)
	test.ExpectEquality(t, p.RandomRAM.Get().(bool), false)
}

func TestCommandLine(t *testing.T) {
	isolate(t)

	prefs.PushCommandLineStack("cpu.illegal::ABORT; cpu.model::6502")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.IllegalPolicy(), preferences.IllegalAbort)
	test.ExpectEquality(t, p.HasBCD(), true)

	p.SetDefaults()
	test.ExpectEquality(t, p.IllegalPolicy(), preferences.IllegalEmulate)
}

func TestUnknownValue(t *testing.T) {
	isolate(t)

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	err = p.IllegalOpcodes.Set("ignore")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, preferences.UnknownValue))

	err = p.CPUModel.Set("65c02")
	test.ExpectFailure(t, err)
}

func TestSaveLoad(t *testing.T) {
	isolate(t)

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.IllegalOpcodes.Set(preferences.IllegalNOP))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.IllegalPolicy(), preferences.IllegalNOP)
}
