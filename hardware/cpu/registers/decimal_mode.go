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

package registers

// AddDecimal adds value to register using binary coded decimal arithmetic,
// as performed by the NMOS 6502. Returns the carry, zero, overflow and sign
// flags in that order.
//
// The flags follow the quirks of the NMOS part. The zero flag is the result
// of the equivalent binary addition. The sign and overflow flags are taken
// after the low nibble has been adjusted but before the high nibble has
// been adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	lo := (a & 0x0f) + (b & 0x0f) + c
	if lo > 0x09 {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	sum := (a & 0xf0) + (b & 0xf0) + lo

	zero = uint8(a+b+c) == 0
	sign = sum&0x80 == 0x80
	overflow = ^(a^b)&(a^sum)&0x80 == 0x80

	if sum > 0x9f {
		sum += 0x60
	}

	r.value = uint8(sum)
	return sum > 0xff, zero, overflow, sign
}

// SubtractDecimal subtracts value from register using binary coded decimal
// arithmetic, as performed by the NMOS 6502. Returns the carry, zero,
// overflow and sign flags in that order. All flags are the same as for the
// equivalent binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	// flags are taken from a binary subtraction
	b := *r
	rcarry, overflow = b.Subtract(val, carry)
	zero = b.IsZero()
	sign = b.IsNegative()

	var c int
	if carry {
		c = 1
	}

	lo := int(r.value&0x0f) - int(val&0x0f) + c - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	diff := int(r.value&0xf0) - int(val&0xf0) + lo
	if diff < 0 {
		diff -= 0x60
	}

	r.value = uint8(diff)
	return rcarry, zero, overflow, sign
}
