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

package mapper

// Mirroring describes how the four logical nametables seen by the PPU are
// mapped to the physical nametable memory.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleScreenLower
	SingleScreenUpper
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleScreenLower:
		return "single screen (lower)"
	case SingleScreenUpper:
		return "single screen (upper)"
	case FourScreen:
		return "four screen"
	}
	return "unknown mirroring"
}

// the size of a single nametable
const nametableSize = 0x0400

// the physical nametable for each of the four logical nametables
var nametableLookup = [...][4]uint16{
	Horizontal:        {0, 0, 1, 1},
	Vertical:          {0, 1, 0, 1},
	SingleScreenLower: {0, 0, 0, 0},
	SingleScreenUpper: {1, 1, 1, 1},
	FourScreen:        {0, 1, 2, 3},
}

// Nametable translates a PPU address in the nametable area (0x2000 to 0x3eff)
// to an offset in physical nametable memory. Only the four screen layout
// requires more than 2 KiB of physical memory.
func (m Mirroring) Nametable(addr uint16) uint16 {
	addr = (addr - 0x2000) & 0x0fff
	table := addr / nametableSize
	if int(m) >= len(nametableLookup) || m < 0 {
		m = Horizontal
	}
	return nametableLookup[m][table]*nametableSize + addr%nametableSize
}
