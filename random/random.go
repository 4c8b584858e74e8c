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

package random

import (
	"math/rand"
	"time"
)

// Clock is the source of the value used to make random numbers rewindable.
// The CPU cycle counter is the usual implementation.
type Clock interface {
	Clock() uint64
}

// Random number generator tied to the machine clock.
type Random struct {
	clock Clock

	// seed the generator with zero rather than with the time of creation
	ZeroSeed bool

	baseSeed int64
	noRewind *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	seed := int64(time.Now().Nanosecond())
	return &Random{
		clock:    clock,
		baseSeed: seed,
		noRewind: rand.New(rand.NewSource(seed)),
	}
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return rnd.baseSeed
}

// Rewindable returns a number in the range [0, n) that depends on the current
// value of the clock.
func (rnd *Random) Rewindable(n int) int {
	var c int64
	if rnd.clock != nil {
		c = int64(rnd.clock.Clock())
	}
	return rand.New(rand.NewSource(rnd.seed() + c)).Intn(n)
}

// NoRewind returns a number in the range [0, n) from a sequence that is
// independent of the clock.
func (rnd *Random) NoRewind(n int) int {
	if rnd.ZeroSeed {
		return 0
	}
	return rnd.noRewind.Intn(n)
}

// Plumb a new clock into the random number generator.
func (rnd *Random) Plumb(clock Clock) {
	rnd.clock = clock
}
