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

package cartridge

import (
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

const ejectedName = "ejected"
const ejectedHash = "nohash"

// ejected implements the mapper.CartMapper interface. it represents the
// absence of a cartridge. the data bus is never driven.
type ejected struct {
	state *ejectedState
}

func newEjected() *ejected {
	return &ejected{
		state: &ejectedState{},
	}
}

func (cart *ejected) String() string {
	return ejectedName
}

// ID implements the mapper.CartMapper interface.
func (cart *ejected) ID() int {
	return -1
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *ejected) Mirroring() mapper.Mirroring {
	return mapper.Horizontal
}

// Reset implements the mapper.CartMapper interface.
func (cart *ejected) Reset() {
}

// Read implements the mapper.CartMapper interface.
func (cart *ejected) Read(_ uint16) (uint8, bool) {
	return 0, false
}

// Write implements the mapper.CartMapper interface.
func (cart *ejected) Write(_ uint16, _ uint8) {
}

// ReadCHR implements the mapper.CartMapper interface.
func (cart *ejected) ReadCHR(_ uint16) uint8 {
	return 0
}

// WriteCHR implements the mapper.CartMapper interface.
func (cart *ejected) WriteCHR(_ uint16, _ uint8) {
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *ejected) NumBanks() int {
	return 0
}

// GetBank implements the mapper.CartMapper interface.
func (cart *ejected) GetBank(_ uint16) mapper.BankInfo {
	return mapper.BankInfo{NonCart: true}
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *ejected) Snapshot() mapper.CartSnapshot {
	return cart.state.Snapshot()
}

// Plumb implements the mapper.CartMapper interface.
func (cart *ejected) Plumb(_ mapper.CartSnapshot) {
}

type ejectedState struct{}

// Snapshot implements the mapper.CartSnapshot interface.
func (s *ejectedState) Snapshot() mapper.CartSnapshot {
	return &ejectedState{}
}
