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

// Package cartridge fully implements loading of mapping of cartridge memory.
//
// The cartridge is attached to the NES with the Attach() function, using a
// cartridgeloader.Loader. The mapper ID in the iNES header decides which
// mapper implementation is used. The NewMapper() function can be used to
// create a mapper directly from PRG and CHR data.
//
// Supported mappers:
//
//	0	NROM
//	2	UxROM
//	3	CNROM
//
// Unsupported mappers and ROM sizes that do not match the mapper cause an
// error at attachment time. An ejected cartridge never drives the data bus.
package cartridge
