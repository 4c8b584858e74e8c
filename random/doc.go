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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// Rewindable() returns a number that depends only on the seed and the current
// value of the machine's cycle clock. The same number is returned for the
// same clock value, which makes it compatible with snapshots: a machine that
// is restored from a snapshot and run forward sees the same numbers again.
//
// NoRewind() returns numbers from a sequence that advances on every call and
// is therefore not compatible with snapshots.
//
// If the same numbers are required on every run then set ZeroSeed to true.
// This is useful for testing.
package random
