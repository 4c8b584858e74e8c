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

package mapper_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/test"
)

func TestNametable(t *testing.T) {
	// horizontal: 0x2000 and 0x2400 share memory. 0x2800 and 0x2c00 share
	// memory
	test.ExpectEquality(t, mapper.Horizontal.Nametable(0x2000), 0x0000)
	test.ExpectEquality(t, mapper.Horizontal.Nametable(0x2401), 0x0001)
	test.ExpectEquality(t, mapper.Horizontal.Nametable(0x2802), 0x0402)
	test.ExpectEquality(t, mapper.Horizontal.Nametable(0x2c03), 0x0403)

	// vertical: 0x2000 and 0x2800 share memory
	test.ExpectEquality(t, mapper.Vertical.Nametable(0x2400), 0x0400)
	test.ExpectEquality(t, mapper.Vertical.Nametable(0x2800), 0x0000)
	test.ExpectEquality(t, mapper.Vertical.Nametable(0x2c10), 0x0410)

	test.ExpectEquality(t, mapper.SingleScreenLower.Nametable(0x2c10), 0x0010)
	test.ExpectEquality(t, mapper.SingleScreenUpper.Nametable(0x2010), 0x0410)
	test.ExpectEquality(t, mapper.FourScreen.Nametable(0x2c10), 0x0c10)

	// the 0x3000 area is a mirror of the nametables
	test.ExpectEquality(t, mapper.Vertical.Nametable(0x3400), mapper.Vertical.Nametable(0x2400))
}

func TestBankInfo(t *testing.T) {
	test.ExpectEquality(t, mapper.BankInfo{Number: 2}.String(), "2")
	test.ExpectEquality(t, mapper.BankInfo{Number: 0, IsRAM: true}.String(), "0R")
	test.ExpectEquality(t, mapper.BankInfo{NonCart: true}.String(), "-")
}
