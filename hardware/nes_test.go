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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/test"
)

// newNES creates a NES with a 16k NROM cartridge containing the program at
// $8000. The reset vector points to $8000 and the NMI vector to $9000.
func newNES(t *testing.T, program []uint8, nmi []uint8) *hardware.NES {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prg := make([]byte, 0x4000)
	copy(prg, program)
	copy(prg[0x1000:], nmi)
	prg[0x3ffa] = 0x00
	prg[0x3ffb] = 0x90
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	nes, err := hardware.NewNES(nil)
	test.DemandSuccess(t, err)
	nes.Instance.Normalise()

	cl := cartridgeloader.NewLoaderFromROM("test", 0, prg, nil, mapper.Horizontal)
	test.DemandSuccess(t, nes.Attach(cl))

	return nes
}

func TestLoadImmediate(t *testing.T) {
	nes := newNES(t, []uint8{0xa9, 0x05, 0x00}, nil)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))

	cycles := nes.CPU.Cycles
	test.DemandSuccess(t, nes.Step(nil))

	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x05))
	test.ExpectEquality(t, nes.CPU.Status.Zero, false)
	test.ExpectEquality(t, nes.CPU.Status.Sign, false)
	test.ExpectEquality(t, nes.CPU.Cycles-cycles, uint64(2))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8002))
	test.ExpectEquality(t, nes.Instructions, uint64(1))
}

func TestPPUStepping(t *testing.T) {
	nes := newNES(t, []uint8{0xa9, 0x05, 0xea}, nil)

	ppuCycles := nes.PPU.Cycles
	test.DemandSuccess(t, nes.Step(nil))
	test.ExpectEquality(t, nes.PPU.Cycles-ppuCycles, uint64(2*hardware.DotsPerCycle))

	// the callback is called for every dot
	var dots int
	test.DemandSuccess(t, nes.Step(func() error {
		dots++
		return nil
	}))
	test.ExpectEquality(t, dots, 2*hardware.DotsPerCycle)
}

func TestCycleCallbackError(t *testing.T) {
	nes := newNES(t, []uint8{0xea}, nil)

	err := nes.Step(func() error {
		return curated.Errorf("test: stop")
	})
	test.ExpectEquality(t, curated.Is(err, "test: stop"), true)
}

func TestOAMDMA(t *testing.T) {
	nes := newNES(t, []uint8{
		0xa9, 0x02, // LDA #$02
		0x8d, 0x14, 0x40, // STA $4014
	}, nil)

	for i := range uint16(0x100) {
		test.DemandSuccess(t, nes.Mem.Poke(0x0200|i, uint8(i)^0xff))
	}

	test.DemandSuccess(t, nes.Step(nil))
	test.ExpectEquality(t, nes.CPU.Cycles, uint64(9))

	// the transfer begins on an odd cycle so there is an additional stall
	// cycle
	test.DemandSuccess(t, nes.Step(nil))
	test.ExpectEquality(t, nes.CPU.Cycles, uint64(13+514))
	test.ExpectEquality(t, nes.Mem.DMAPending, false)

	// the final result is not affected by the transfer
	test.ExpectEquality(t, nes.CPU.LastResult.Cycles, 4)

	for i := range 0x100 {
		test.DemandEquality(t, nes.PPU.OAM[i], uint8(i)^0xff, i)
	}
}

func TestNMI(t *testing.T) {
	nes := newNES(t, []uint8{
		0xa9, 0x80, // LDA #$80
		0x8d, 0x00, 0x20, // STA $2000
		0x4c, 0x05, 0x80, // JMP $8005
	}, []uint8{
		0xe8, // INX
		0x40, // RTI
	})

	test.DemandSuccess(t, nes.RunForFrameCount(3, nil))
	test.ExpectSuccess(t, nes.CPU.X.Value() >= 2)

	// without NMI enabled the handler is never reached
	nes = newNES(t, []uint8{
		0x4c, 0x00, 0x80, // JMP $8000
	}, []uint8{
		0xe8, // INX
		0x40, // RTI
	})

	test.DemandSuccess(t, nes.RunForFrameCount(3, nil))
	test.ExpectEquality(t, nes.CPU.X.Value(), uint8(0))
}

func TestRunForInstructionCount(t *testing.T) {
	nes := newNES(t, []uint8{0xe8, 0xe8, 0xe8, 0xe8, 0xe8}, nil)

	test.DemandSuccess(t, nes.RunForInstructionCount(3, nil))
	test.ExpectEquality(t, nes.CPU.X.Value(), uint8(3))
	test.ExpectEquality(t, nes.Instructions, uint64(3))

	// early stop
	test.DemandSuccess(t, nes.RunForInstructionCount(10, func() (bool, error) {
		return nes.CPU.X.Value() < 4, nil
	}))
	test.ExpectEquality(t, nes.CPU.X.Value(), uint8(4))
}

func TestHalt(t *testing.T) {
	nes := newNES(t, []uint8{0xea, 0x02}, nil)

	err := nes.Run(nil)
	test.ExpectEquality(t, curated.Is(err, cpu.Halted), true)
	test.ExpectEquality(t, nes.CPU.Killed, true)

	// reset clears the halted state
	test.DemandSuccess(t, nes.Reset())
	test.ExpectEquality(t, nes.CPU.Killed, false)
	test.ExpectSuccess(t, nes.Step(nil))
}

func TestSnapshotPlumb(t *testing.T) {
	nes := newNES(t, []uint8{
		0xa9, 0x05, // LDA #$05
		0x85, 0x10, // STA $10
		0xa9, 0x09, // LDA #$09
		0x85, 0x10, // STA $10
	}, nil)

	test.DemandSuccess(t, nes.Step(nil))
	test.DemandSuccess(t, nes.Step(nil))

	state := nes.Snapshot()
	test.ExpectEquality(t, state.CPU.A.Value(), uint8(0x05))
	test.ExpectEquality(t, state.Mem.RAM.RAM[0x10], uint8(0x05))

	test.DemandSuccess(t, nes.Step(nil))
	test.DemandSuccess(t, nes.Step(nil))
	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x09))

	// the snapshot is unaffected by the continuing emulation
	test.ExpectEquality(t, state.CPU.A.Value(), uint8(0x05))
	test.ExpectEquality(t, state.Mem.RAM.RAM[0x10], uint8(0x05))

	cycles := state.CPU.Cycles
	nes.Plumb(state)
	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x05))
	test.ExpectEquality(t, nes.CPU.Cycles, cycles)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8004))
	test.ExpectEquality(t, nes.Instructions, uint64(2))
	d, err := nes.Mem.Read(0x10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0x05))

	// running the plumbed machine does not change the snapshot
	test.DemandSuccess(t, nes.Step(nil))
	test.DemandSuccess(t, nes.Step(nil))
	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x09))
	test.ExpectEquality(t, state.CPU.A.Value(), uint8(0x05))
	test.ExpectEquality(t, state.Mem.RAM.RAM[0x10], uint8(0x05))
}
