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

// Package functional_test runs the 6502 functional test by Klaus Dormann.
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The binary is not part of this repository. Assemble 6502_functional_test.a65
// with the ROM_vectors test disabled, and with the load address and success
// address below, and place 6502_functional_test.bin in this directory. The
// test is skipped if the binary is missing.
//
// The functional test exercises decimal mode so the CPU is run as the NMOS
// 6502 model.
package functional_test
