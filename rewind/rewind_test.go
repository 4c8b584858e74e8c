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

package rewind_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/rewind"
	"github.com/jetsetilly/gophernes/test"
)

// writes 1, 2 and 3 to $10 and then loops forever.
var program = []uint8{
	0xa9, 0x01, // LDA #$01
	0x85, 0x10, // STA $10
	0xa9, 0x02, // LDA #$02
	0x85, 0x10, // STA $10
	0xa9, 0x03, // LDA #$03
	0x85, 0x10, // STA $10
	0x4c, 0x0c, 0x80, // JMP $800c
}

func newRewind(t *testing.T) (*hardware.NES, *rewind.Rewind) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prg := make([]byte, 0x4000)
	copy(prg, program)
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	nes, err := hardware.NewNES(nil)
	test.DemandSuccess(t, err)
	nes.Instance.Normalise()

	cl := cartridgeloader.NewLoaderFromROM("test", 0, prg, nil, mapper.Vertical)
	test.DemandSuccess(t, nes.Attach(cl))

	r, err := rewind.NewRewind(nes)
	test.DemandSuccess(t, err)
	r.Prefs.SetDefaults()

	return nes, r
}

func step(t *testing.T, nes *hardware.NES, n int) {
	t.Helper()
	for range n {
		test.DemandSuccess(t, nes.Step(nil))
	}
}

func TestSnapshotIndependence(t *testing.T) {
	nes, r := newRewind(t)
	test.ExpectEquality(t, r.Len(), 0)

	step(t, nes, 2)
	s := r.TakeSnapshot()
	test.ExpectEquality(t, s.Mem.RAM.RAM[0x10], uint8(0x01))
	test.ExpectEquality(t, s.CPU.A.Value(), uint8(0x01))

	cycles := nes.CPU.Cycles
	test.ExpectEquality(t, s.CPU.Cycles, cycles)

	// changes to the live machine are not seen in the snapshot
	test.DemandSuccess(t, nes.Mem.Write(0x0010, 0xff))
	step(t, nes, 1)
	test.ExpectEquality(t, s.Mem.RAM.RAM[0x10], uint8(0x01))
	test.ExpectEquality(t, s.CPU.A.Value(), uint8(0x01))
	test.ExpectEquality(t, s.CPU.Cycles, cycles)

	// the entry in the history is the same snapshot
	snapshots := r.Snapshots()
	test.DemandEquality(t, len(snapshots), 1)
	test.ExpectEquality(t, snapshots[0], s)

	// reset empties the history but does not change the machine
	pc := nes.CPU.PC.Address()
	r.Reset()
	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectEquality(t, len(r.Snapshots()), 0)
	test.ExpectEquality(t, nes.CPU.PC.Address(), pc)
	test.ExpectEquality(t, nes.Mem.RAM.RAM[0x10], uint8(0xff))

	// the slice returned before the reset is unaffected
	test.ExpectEquality(t, len(snapshots), 1)
	test.ExpectEquality(t, snapshots[0].Mem.RAM.RAM[0x10], uint8(0x01))
}

func TestSnapshotDetached(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// two bank UxROM. the first byte of each bank identifies it. the second
	// bank is fixed at $c000 and contains the vectors
	prg := make([]byte, 0x8000)
	prg[0x0000] = 0x11
	prg[0x4000] = 0x22
	prg[0x4010] = 0xea
	prg[0x7ffc] = 0x10
	prg[0x7ffd] = 0xc0

	nes, err := hardware.NewNES(nil)
	test.DemandSuccess(t, err)
	nes.Instance.Normalise()
	test.DemandSuccess(t, nes.Attach(cartridgeloader.NewLoaderFromROM("uxrom", 2, prg, nil, mapper.Vertical)))

	r, err := rewind.NewRewind(nes)
	test.DemandSuccess(t, err)

	nes.PPU.Status = 0x80
	s := r.TakeSnapshot()

	// switch bank in the live machine
	test.DemandSuccess(t, nes.Mem.Write(0x8000, 0x01))
	d, _ := nes.Mem.Peek(0x8000)
	test.DemandEquality(t, d, uint8(0x22))

	// the snapshot's bus does not reach the live cartridge or PPU
	d, _ = s.Mem.Peek(0x8000)
	test.ExpectInequality(t, d, uint8(0x22))
	_, err = s.Mem.Read(0x2002)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, nes.PPU.Status, uint8(0x80))
	test.ExpectEquality(t, s.PPU.Status, uint8(0x80))

	// restoring the snapshot restores the bank
	test.DemandSuccess(t, r.GotoSnapshot(0))
	d, _ = nes.Mem.Peek(0x8000)
	test.ExpectEquality(t, d, uint8(0x11))
	test.ExpectEquality(t, nes.PPU.Status, uint8(0x80))
}

func TestSnapshotOrder(t *testing.T) {
	nes, r := newRewind(t)

	for range 4 {
		step(t, nes, 1)
		r.TakeSnapshot()
	}

	snapshots := r.Snapshots()
	test.DemandEquality(t, len(snapshots), 4)
	for i := 1; i < len(snapshots); i++ {
		test.ExpectEquality(t, snapshots[i].Sequence, snapshots[i-1].Sequence+1)
		test.ExpectSuccess(t, snapshots[i].CPU.Cycles > snapshots[i-1].CPU.Cycles)
	}
}

func TestMaxEntries(t *testing.T) {
	nes, r := newRewind(t)
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(3))

	for range 5 {
		step(t, nes, 1)
		r.TakeSnapshot()
	}

	test.ExpectEquality(t, r.Len(), 3)
	snapshots := r.Snapshots()
	test.ExpectEquality(t, snapshots[0].Sequence, 2)
	test.ExpectEquality(t, snapshots[2].Sequence, 4)

	// lowering the maximum trims the history immediately
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(1))
	test.ExpectEquality(t, r.Len(), 1)
	test.ExpectEquality(t, r.Snapshots()[0].Sequence, 4)

	test.ExpectFailure(t, r.Prefs.MaxEntries.Set(-1))
}

func TestCheck(t *testing.T) {
	nes, r := newRewind(t)

	// a frequency of zero never takes a snapshot
	step(t, nes, 1)
	test.ExpectEquality(t, r.Check(), false)

	test.DemandSuccess(t, r.Prefs.Freq.Set(2))
	r.Reset()

	var taken int
	for range 6 {
		step(t, nes, 1)
		if r.Check() {
			taken++
		}
	}
	test.ExpectEquality(t, taken, 3)
	test.ExpectEquality(t, r.Len(), 3)
}

func TestGotoSnapshot(t *testing.T) {
	nes, r := newRewind(t)

	step(t, nes, 2)
	r.TakeSnapshot()
	step(t, nes, 2)
	r.TakeSnapshot()
	step(t, nes, 2)

	test.ExpectEquality(t, nes.Mem.RAM.RAM[0x10], uint8(0x03))

	test.DemandSuccess(t, r.GotoSnapshot(0))
	test.ExpectEquality(t, nes.Mem.RAM.RAM[0x10], uint8(0x01))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8004))

	// the history is not changed by running the plumbed machine
	step(t, nes, 2)
	test.ExpectEquality(t, nes.Mem.RAM.RAM[0x10], uint8(0x02))
	s, err := r.GetState(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Mem.RAM.RAM[0x10], uint8(0x01))
	test.ExpectEquality(t, r.Len(), 2)

	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8008))

	test.ExpectFailure(t, r.GotoSnapshot(2))
	test.ExpectFailure(t, r.GotoSnapshot(-1))

	r.Reset()
	test.ExpectFailure(t, r.GotoLast())
}

func TestGotoCycle(t *testing.T) {
	nes, r := newRewind(t)

	var cycles []uint64
	for range 3 {
		step(t, nes, 2)
		cycles = append(cycles, r.TakeSnapshot().CPU.Cycles)
	}

	s, err := r.GotoCycle(cycles[1])
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Sequence, 1)
	test.ExpectEquality(t, nes.CPU.Cycles, cycles[1])

	s, err = r.GotoCycle(cycles[2] - 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Sequence, 1)

	// earlier than the history
	s, err = r.GotoCycle(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Sequence, 0)

	// later than the history
	s, err = r.GotoCycle(cycles[2] + 1000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Sequence, 2)
}

func TestComparison(t *testing.T) {
	nes, r := newRewind(t)

	_, err := r.CompareRAM(r.TakeSnapshot())
	test.ExpectFailure(t, err)

	r.UpdateComparison()
	step(t, nes, 2)
	s := r.TakeSnapshot()

	diff, err := r.CompareRAM(s)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(diff), 1)
	test.ExpectEquality(t, diff[0].Address, uint16(0x10))
	test.ExpectEquality(t, diff[0].After, uint8(0x01))

	// a locked comparison is not updated
	r.LockComparison(true)
	step(t, nes, 2)
	r.UpdateComparison()
	diff, err = r.CompareRAM(r.TakeSnapshot())
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(diff), 1)
	test.ExpectEquality(t, diff[0].After, uint8(0x02))
	test.ExpectEquality(t, r.GetComparisonState().Locked, true)

	// but it can be set explicitly
	test.DemandSuccess(t, r.SetComparison(1))
	diff, err = r.CompareRAM(s)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(diff), 0)
}

func TestSearchMemoryWrite(t *testing.T) {
	nes, r := newRewind(t)

	r.TakeSnapshot()
	step(t, nes, 7)
	tgt := r.TakeSnapshot()

	// a more recent write of a different value
	s, err := r.SearchMemoryWrite(tgt, 0x0810, 0x02, 0xff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s == nil, true)

	// the address is normalised
	s, err = r.SearchMemoryWrite(tgt, 0x0810, 0x03, 0xff)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, s != nil, true)
	test.ExpectEquality(t, s.CPU.PC.Address(), uint16(0x800c))
	test.ExpectEquality(t, s.Mem.RAM.RAM[0x10], uint8(0x03))

	// the search does not change the live emulation or the history
	test.ExpectEquality(t, nes.CPU.Cycles, tgt.CPU.Cycles)
	test.ExpectEquality(t, r.Len(), 2)
}

func TestSearchRegisterWrite(t *testing.T) {
	nes, r := newRewind(t)

	r.TakeSnapshot()
	step(t, nes, 7)
	tgt := r.TakeSnapshot()

	s, err := r.SearchRegisterWrite(tgt, 'A', 0x03, 0xff)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, s != nil, true)
	test.ExpectEquality(t, s.CPU.PC.Address(), uint16(0x800a))

	s, err = r.SearchRegisterWrite(tgt, 'A', 0x01, 0xff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s == nil, true)

	s, err = r.SearchRegisterWrite(tgt, 'X', 0x00, 0xff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s == nil, true)
}

func TestTimeline(t *testing.T) {
	nes, r := newRewind(t)

	tl := r.GetTimeline()
	test.ExpectEquality(t, len(tl.Cycles), 0)

	for range 3 {
		step(t, nes, 1)
		r.TakeSnapshot()
	}

	tl = r.GetTimeline()
	test.ExpectEquality(t, len(tl.Cycles), 3)
	test.ExpectEquality(t, tl.AvailableStart, tl.Cycles[0])
	test.ExpectEquality(t, tl.AvailableEnd, nes.CPU.Cycles)
}

func TestVisualise(t *testing.T) {
	nes, r := newRewind(t)
	step(t, nes, 2)

	var b bytes.Buffer
	r.TakeSnapshot().Visualise(&b)
	test.ExpectSuccess(t, b.Len() > 0)
}
