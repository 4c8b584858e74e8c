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

package performance_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem|performance.ProfileTrace)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestCalc(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2.0)
	test.ExpectApproximate(t, fps, 60.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100*60/clocks.NTSC_FPS, 0.001)

	mhz, accuracy := performance.CalcClock(3579546, 2.0)
	test.ExpectApproximate(t, mhz, 1.789773, 0.0001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.01)
}

func TestCheck(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// JMP $8000
	prg := make([]byte, 0x4000)
	copy(prg, []byte{0x4c, 0x00, 0x80})
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	cl := cartridgeloader.NewLoaderFromROM("loop", 0, prg, nil, mapper.Horizontal)

	var out strings.Builder
	err := performance.Check(&out, performance.ProfileNone, cl, "50ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "fps"), out.String())
	test.ExpectSuccess(t, strings.Contains(out.String(), "MHz"), out.String())

	err = performance.Check(&out, performance.ProfileNone, cl, "soon")
	test.ExpectFailure(t, err)
}
