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

// Package ram implements the 2 KiB of internal work RAM in the NES.
package ram

import (
	"encoding/hex"

	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// RAM represents the internal RAM of the NES. Addresses passed to the
// functions of the RAM type are mapped to the primary mirror.
type RAM struct {
	instance *instance.Instance

	RAM []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
// The instance argument can be nil.
func NewRAM(instance *instance.Instance) *RAM {
	return &RAM{
		instance: instance,
		RAM:      make([]uint8, memorymap.RAMSize),
	}
}

// Snapshot creates a copy of RAM in its current state. The copy does not
// share any memory with the original.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.RAM = make([]uint8, len(ram.RAM))
	copy(n.RAM, ram.RAM)
	return &n
}

// Plumb instance into RAM. Used when restoring a snapshot.
func (ram *RAM) Plumb(instance *instance.Instance) {
	ram.instance = instance
}

// Reset contents of RAM. The contents are randomised if the ram.random
// preference is set.
func (ram *RAM) Reset() {
	random := ram.instance != nil && ram.instance.Prefs.RandomRAM.Get().(bool)
	for i := range ram.RAM {
		if random {
			ram.RAM[i] = uint8(ram.instance.Random.NoRewind(0x100))
		} else {
			ram.RAM[i] = 0
		}
	}
}

func (ram RAM) String() string {
	return hex.Dump(ram.RAM)
}

// Peek is the same as Read for RAM. There are no side effects.
func (ram RAM) Peek(address uint16) uint8 {
	return ram.Read(address)
}

// Poke is the same as Write for RAM.
func (ram *RAM) Poke(address uint16, value uint8) {
	ram.Write(address, value)
}

// Read returns the value at the address. The address can be any mirror.
func (ram RAM) Read(address uint16) uint8 {
	return ram.RAM[address&memorymap.MaskRAM]
}

// Write value to the address. The address can be any mirror.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.RAM[address&memorymap.MaskRAM] = data
}
