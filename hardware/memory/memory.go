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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/hardware/memory/ram"
)

// Sentinal errors.
const (
	PokeError = "memory: cannot poke %s address (%#04x)"
)

// the IO register that starts an OAM DMA transfer.
const oamDMA = uint16(0x4014)

// PPUBus is the CPU side of the PPU. The register argument to each function
// is the primary address of the PPU register.
type PPUBus interface {
	Read(register uint16) uint8
	Write(register uint16, data uint8)

	// Peek is a Read() without side effects
	Peek(register uint16) uint8
}

// Memory is the monolithic representation of the NES CPU bus.
type Memory struct {
	instance *instance.Instance

	RAM  *ram.RAM
	PPU  PPUBus
	Cart *cartridge.Cartridge

	// the address and data of the most recent CPU access. LastCPUData is the
	// value returned by undriven addresses
	LastCPUAddress uint16
	LastCPUData    uint8
	LastCPUWrite   bool

	// a write to OAMDMA requests a transfer of a page of CPU memory to OAM.
	// the transfer is performed by the NES once the current instruction has
	// completed
	DMAPending bool
	DMAPage    uint8
}

// NewMemory is the preferred method of initialisation for Memory. The ppu
// and cart arguments are owned by the caller.
func NewMemory(instance *instance.Instance, ppu PPUBus, cart *cartridge.Cartridge) *Memory {
	mem := &Memory{
		instance: instance,
		RAM:      ram.NewRAM(instance),
		PPU:      ppu,
		Cart:     cart,
	}
	mem.Reset()
	return mem
}

// Snapshot creates a copy of the memory bus state. RAM is copied and does
// not share any memory with the original. The PPU and cartridge are not part
// of the snapshot and must be plumbed in separately. Until then the PPU and
// cartridge areas of the copy are open bus.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.RAM = mem.RAM.Snapshot()
	n.PPU = nil
	n.Cart = nil
	return &n
}

// Plumb the instance, PPU and cartridge into a Memory restored from a
// snapshot.
func (mem *Memory) Plumb(instance *instance.Instance, ppu PPUBus, cart *cartridge.Cartridge) {
	mem.instance = instance
	mem.PPU = ppu
	mem.Cart = cart
	mem.RAM.Plumb(instance)
}

// Reset RAM and the bus latches.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
	mem.LastCPUAddress = 0
	mem.LastCPUData = 0
	mem.LastCPUWrite = false
	mem.DMAPending = false
	mem.DMAPage = 0
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("last access: %#04x %#02x", mem.LastCPUAddress, mem.LastCPUData))
	if mem.LastCPUWrite {
		s.WriteString(" (write)")
	}
	if mem.DMAPending {
		s.WriteString(fmt.Sprintf(" dma pending: page %#02x", mem.DMAPage))
	}
	return s.String()
}

// Read implements the cpubus.Memory interface. Reading from the CPU bus
// never fails.
func (mem *Memory) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	data := mem.LastCPUData

	switch area {
	case memorymap.RAM:
		data = mem.RAM.Read(ma)
	case memorymap.PPU:
		if mem.PPU != nil {
			data = mem.PPU.Read(ma)
		}
	case memorymap.Cartridge:
		if mem.Cart == nil {
			break
		}
		if d, ok := mem.Cart.Read(ma); ok {
			data = d
		}
	}

	mem.LastCPUAddress = address
	mem.LastCPUData = data
	mem.LastCPUWrite = false

	return data, nil
}

// Write implements the cpubus.Memory interface. Writing to the CPU bus never
// fails.
func (mem *Memory) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM.Write(ma, data)
	case memorymap.PPU:
		if mem.PPU != nil {
			mem.PPU.Write(ma, data)
		}
	case memorymap.IO:
		if ma == oamDMA {
			mem.DMAPending = true
			mem.DMAPage = data
		}
	case memorymap.Cartridge:
		if mem.Cart != nil {
			mem.Cart.Write(ma, data)
		}
	}

	mem.LastCPUAddress = address
	mem.LastCPUData = data
	mem.LastCPUWrite = true

	return nil
}

// Peek returns the value at the address without causing side effects. The
// bus latches are not changed.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Peek(ma), nil
	case memorymap.PPU:
		if mem.PPU != nil {
			return mem.PPU.Peek(ma), nil
		}
	case memorymap.Cartridge:
		if mem.Cart == nil {
			break
		}
		if d, ok := mem.Cart.Peek(ma); ok {
			return d, nil
		}
	}

	return mem.LastCPUData, nil
}

// Poke changes the value at the address. Only RAM and cartridge ROM can be
// poked.
func (mem *Memory) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM.Poke(ma, data)
		return nil
	case memorymap.Cartridge:
		if mem.Cart != nil {
			return mem.Cart.Poke(ma, data)
		}
	}

	return curated.Errorf(PokeError, area, address)
}
