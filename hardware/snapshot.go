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

package hardware

import (
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/ppu"
)

// State stores the NES sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
type State struct {
	CPU  *cpu.CPU
	Mem  *memory.Memory
	PPU  *ppu.PPU
	Cart mapper.CartSnapshot

	Instructions uint64
}

// Snapshot creates a copy of a previously snapshotted NES State.
func (s *State) Snapshot() *State {
	n := &State{
		CPU:          s.CPU.Snapshot(),
		Mem:          s.Mem.Snapshot(),
		PPU:          s.PPU.Snapshot(),
		Instructions: s.Instructions,
	}
	if s.Cart != nil {
		n.Cart = s.Cart.Snapshot()
	}
	return n
}

// Snapshot the state of the NES sub-systems.
func (nes *NES) Snapshot() *State {
	return &State{
		CPU:          nes.CPU.Snapshot(),
		Mem:          nes.Mem.Snapshot(),
		PPU:          nes.PPU.Snapshot(),
		Cart:         nes.Cart.Snapshot(),
		Instructions: nes.Instructions,
	}
}

// Plumb a previously snapshotted system. The state is copied so that it
// remains unchanged as the emulation continues.
func (nes *NES) Plumb(state *State) {
	if state == nil {
		panic("nes: cannot plumb in a nil state")
	}

	nes.CPU = state.CPU.Snapshot()
	nes.Mem = state.Mem.Snapshot()
	nes.PPU = state.PPU.Snapshot()
	nes.Instructions = state.Instructions

	nes.Cart.Plumb(state.Cart)
	nes.PPU.Plumb(nes.Cart)
	nes.Mem.Plumb(nes.Instance, nes.PPU, nes.Cart)
	nes.CPU.Plumb(nes.Instance, nes.Mem)
	nes.Instance.Random.Plumb(nes.CPU)
}
