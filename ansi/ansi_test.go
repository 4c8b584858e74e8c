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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/ansi"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31m")

	s, err = ansi.ColorBuild("Red", "blue", "bold", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;44;1m")

	s, err = ansi.ColorBuild("", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.ColorBuild("puce", "", "", false, false)
	test.ExpectEquality(t, curated.Is(err, ansi.UnknownSpec), true)
	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectEquality(t, curated.Is(err, ansi.UnknownSpec), true)
}

func TestPens(t *testing.T) {
	test.ExpectEquality(t, ansi.Pens["green"], "\033[92m")
	test.ExpectEquality(t, ansi.DimPens["green"], "\033[32m")
	test.ExpectEquality(t, ansi.PenStyles["dim"], "\033[2m")
}
