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

// Package cpubus defines the interface between the CPU and the memory bus.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The NES memory bus implements this interface and maps the read/write
// address to the correct memory area, meaning that CPU access need not care
// which part of memory it is writing to.
//
// Reads are not free of side effects. Reading some PPU registers changes the
// state of the PPU so the order and number of calls must be exactly as
// issued by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// The interrupt vectors in the top six bytes of the address space.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// the BRK instruction uses the same vector as IRQ
	BRK = IRQ
)
