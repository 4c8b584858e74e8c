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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/random"
	"github.com/jetsetilly/gophernes/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) Clock() uint64 {
	return c.cycles
}

func TestRewindable(t *testing.T) {
	c := &clock{cycles: 1000}

	a := random.NewRandom(c)
	b := random.NewRandom(c)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i), i)
	}

	// the same number is returned for the same clock value
	v := a.Rewindable(0x10000)
	test.ExpectEquality(t, a.Rewindable(0x10000), v)
}

func TestRange(t *testing.T) {
	c := &clock{}
	rnd := random.NewRandom(c)

	for i := range 1000 {
		c.cycles = uint64(i)
		v := rnd.Rewindable(256)
		test.ExpectSuccess(t, v >= 0 && v < 256, i)
		v = rnd.NoRewind(256)
		test.ExpectSuccess(t, v >= 0 && v < 256, i)
	}
}
