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
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/logger"
)

// The number of PPU dots for every CPU cycle.
const DotsPerCycle = 3

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	Instance *instance.Instance

	CPU  *cpu.CPU
	Mem  *memory.Memory
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge

	// the loader of the attached cartridge. the data in the loader is
	// retained so that the cartridge can be attached to another emulation
	Loader cartridgeloader.Loader

	// the number of instructions executed since the last reset
	Instructions uint64
}

// NewNES creates a new NES and everything associated with the hardware. The
// prefs argument can be nil, in which case the preferences are loaded from
// disk.
//
// The cartridge is ejected. Use Attach() to insert a cartridge.
func NewNES(prefs *preferences.Preferences) (*NES, error) {
	ins, err := instance.NewInstance(nil, prefs)
	if err != nil {
		return nil, err
	}

	nes := &NES{
		Instance: ins,
		Cart:     cartridge.NewCartridge(),
	}

	nes.PPU = ppu.NewPPU(nes.Cart)
	nes.Mem = memory.NewMemory(nes.Instance, nes.PPU, nes.Cart)
	nes.CPU = cpu.NewCPU(nes.Instance, nes.Mem)
	nes.Instance.Random.Plumb(nes.CPU)

	return nes, nil
}

// Attach a cartridge to the NES and reset the machine. The loader is loaded
// if it has not been already.
func (nes *NES) Attach(cartload cartridgeloader.Loader) error {
	if err := cartload.Load(); err != nil {
		return err
	}

	if err := nes.Cart.Attach(cartload); err != nil {
		return err
	}
	nes.Loader = cartload

	return nes.Reset()
}

// Reset emulates the reset line being asserted. All components are reset and
// the PC is loaded from the reset vector.
func (nes *NES) Reset() error {
	nes.Mem.Reset()
	nes.PPU.Reset()
	nes.Cart.Reset()
	nes.Instructions = 0

	if err := nes.CPU.Reset(nes.cycle); err != nil {
		return err
	}

	logger.Logf(nes.Instance, "nes", "reset %s", nes.Cart)

	return nil
}

// cycle is called by the CPU at the end of every CPU cycle.
func (nes *NES) cycle() error {
	for range DotsPerCycle {
		nes.PPU.Step()
	}
	return nil
}

// Step the emulation one CPU instruction. The cycleCallback function is
// called after every PPU dot and can be nil.
//
// Any pending OAM DMA transfer and NMI are serviced after the instruction has
// completed.
func (nes *NES) Step(cycleCallback func() error) error {
	cycle := nes.cycle
	if cycleCallback != nil {
		cycle = func() error {
			for range DotsPerCycle {
				nes.PPU.Step()
				if err := cycleCallback(); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if err := nes.CPU.ExecuteInstruction(cycle); err != nil {
		return err
	}
	nes.Instructions++

	if nes.Mem.DMAPending {
		if err := nes.dma(cycle); err != nil {
			return err
		}
	}

	if nes.PPU.NMI() {
		if err := nes.CPU.Interrupt(true, cycle); err != nil {
			return err
		}
	}

	return nil
}

// dma copies a page of CPU memory to OAM. The CPU is stalled for the
// duration of the transfer: one cycle (two if the transfer begins on an odd
// cycle) followed by a read and a write for each of the 256 bytes.
func (nes *NES) dma(cycle func() error) error {
	nes.Mem.DMAPending = false

	stall := 1
	if nes.CPU.Cycles%2 == 1 {
		stall++
	}
	for range stall {
		if err := nes.CPU.Stall(cycle); err != nil {
			return err
		}
	}

	origin := uint16(nes.Mem.DMAPage) << 8
	for i := range uint16(ppu.OAMSize) {
		v, err := nes.Mem.Read(origin | i)
		if err != nil {
			return err
		}
		if err := nes.CPU.Stall(cycle); err != nil {
			return err
		}

		nes.PPU.Write(ppu.OAMDATA, v)
		if err := nes.CPU.Stall(cycle); err != nil {
			return err
		}
	}

	return nil
}
