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

// Package clocks defines the constant values that define the speed of the
// clocks in the NES console. All values are in MHz.
//
// The CPU clock is the master clock divided by 12 (NTSC) or 16 (PAL). The PPU
// produces one dot for every four (NTSC) or five (PAL) master clock cycles.
package clocks

const (
	NTSC = 1.789773
	PAL  = 1.662607
)

const (
	NTSC_PPU = NTSC * 3
	PAL_PPU  = PAL * 3.2
)

// The number of frames per second produced by the PPU.
const (
	NTSC_FPS = 60.0988
	PAL_FPS  = 50.0070
)
