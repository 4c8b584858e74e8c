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

// CartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped to individual addresses.
//
// The address arguments of the CPU side functions are not normalised. They
// are in the range 0x4020 to 0xffff. The address arguments of the PPU side
// functions are in the range 0x0000 to 0x1fff.
type CartMapper interface {
	// the numeric mapper ID as found in the iNES header
	ID() int
	String() string

	// the nametable mirroring required by the cartridge. the value can change
	// for mappers that control mirroring
	Mirroring() Mirroring

	// reset volatile areas of the cartridge. bank registers are returned to
	// the power-on state
	Reset()

	// CPU side read. the cartridge may not drive the data bus for all
	// addresses, in which case the driven return value is false and the
	// data value should be ignored
	Read(addr uint16) (data uint8, driven bool)

	// CPU side write. writes to ROM are never stored and are either
	// interpreted as bank switching commands or ignored
	Write(addr uint16, data uint8)

	// PPU side access of the pattern tables. WriteCHR() only has an effect if
	// the cartridge has CHR-RAM
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)

	NumBanks() int
	GetBank(addr uint16) BankInfo

	// a snapshot of the mutable state of the mapper. ROM data is never part
	// of the snapshot
	Snapshot() CartSnapshot
	Plumb(CartSnapshot)
}

// CartSnapshot represents saved data from the cartridge. This includes
// cartridge RAM and bank register values.
type CartSnapshot interface {
	Snapshot() CartSnapshot
}

// CartPatchable is implemented by cartridge mappers that can have their
// program ROM changed by the debugger.
type CartPatchable interface {
	// Patch the byte at the offset of the program ROM data. The offset is
	// independent of the current bank configuration
	Patch(offset int, data uint8) error

	// Poke the byte at the CPU address, given the current bank
	// configuration
	Poke(addr uint16, data uint8) error
}

// CartRAMbus is implemented by cartridge mappers that have an addressable
// RAM area.
type CartRAMbus interface {
	GetRAM() []CartRAM
}

// CartRAM represents a single segment of RAM in the cartridge. The Data field
// is a copy of the actual bytes in the cartridge RAM.
type CartRAM struct {
	Label  string
	Origin uint16
	Data   []uint8
}
