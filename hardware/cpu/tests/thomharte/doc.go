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

// Package thomharte runs the NES 6502 single-step tests maintained by Thom
// Harte against the CPU.
//
// https://github.com/SingleStepTests/ProcessorTests/tree/main/nes6502
//
// The tests are large and are not part of this repository. Copy the JSON
// files for the opcodes to be tested from the nes6502/v1 directory on Github
// to the nes6502/v1 directory in this package. The test is skipped if the
// directory does not exist.
package thomharte
