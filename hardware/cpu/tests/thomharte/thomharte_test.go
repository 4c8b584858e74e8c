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

package thomharte

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/test"
)

// the memory events recorded by the test memory. also used to seal the
// memEvent values in the BusCycle test data
type memEvent string

const (
	read  = memEvent("read")
	write = memEvent("write")
)

type testMem struct {
	internal   []uint8
	addressBus uint16
	dataBus    uint8
	lastEvent  memEvent
}

func newTestMem() *testMem {
	return &testMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	mem.addressBus = address
	mem.dataBus = mem.internal[address]
	mem.lastEvent = read
	return mem.dataBus, nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.addressBus = address
	mem.dataBus = data
	mem.internal[address] = data
	mem.lastEvent = write
	return nil
}

type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type BusCycle struct {
	Address uint16
	Data    uint8
	Event   memEvent
}

func (b *BusCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = memEvent(ev)

	switch b.Event {
	case read, write:
	default:
		return fmt.Errorf("unexpected memory event: %q", b.Event)
	}

	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string     `json:"name"`
	Initial State      `json:"initial"`
	Final   State      `json:"final"`
	Cycles  []BusCycle `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// alias type to prevent recursion
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

var testsPath = filepath.Join("nes6502", "v1")

// opcodes whose behaviour depends on analogue effects that vary between
// individual chips. the KIL opcodes are also skipped because the tests
// expect the bus to keep cycling after the CPU has stopped
var unstable = map[uint8]bool{
	0x8b: true, // XAA
	0xab: true, // LAX immediate
	0x93: true, // AHX (zp),Y
	0x9f: true, // AHX abs,Y
	0x9b: true, // TAS
	0x9c: true, // SHY
	0x9e: true, // SHX
}

func TestThomHarte(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		t.Skipf("no test data: %v", err)
	}

	for _, e := range d {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		opcode, err := strconv.ParseUint(strings.TrimSuffix(e.Name(), ".json"), 16, 8)
		if err != nil {
			continue
		}
		if unstable[uint8(opcode)] || instructions.Lookup(uint8(opcode)).Operator == instructions.KIL {
			continue
		}

		t.Run(e.Name(), func(t *testing.T) {
			testThomHarte(t, filepath.Join(testsPath, e.Name()))
		})
	}
}

func testThomHarte(t *testing.T, testFile string) {
	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	mem := newTestMem()

	// a CPU with no instance emulates undocumented opcodes and has no
	// decimal mode, which is the behaviour of the 2A03
	mc := cpu.NewCPU(nil, mem)

	for i, s := range tests {
		test.DemandSuccess(t, mc.Reset(nil))

		mc.PC.Load(uint16(s.Initial.PC))
		mc.A.Load(uint8(s.Initial.A))
		mc.X.Load(uint8(s.Initial.X))
		mc.Y.Load(uint8(s.Initial.Y))
		mc.SP.Load(uint8(s.Initial.S))
		mc.Status.Load(uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}

		hook := func() error {
			cycle := mc.LastResult.Cycles - 1
			if cycle >= len(s.Cycles) {
				t.Fatalf("%s: %s: too many cycles (%d)", testFile, s.Name, cycle+1)
			}

			var fail bool

			fail = !test.ExpectEquality(t, mem.addressBus, s.Cycles[cycle].Address, s.Name, "address bus") || fail
			fail = !test.ExpectEquality(t, mem.dataBus, s.Cycles[cycle].Data, s.Name, "data bus") || fail
			fail = !test.ExpectEquality(t, mem.lastEvent, s.Cycles[cycle].Event, s.Name, "memory event") || fail

			if fail {
				t.Logf("last instruction: %s", mc.LastResult.Defn)
				t.Fatalf("%s: failed on test %d, cycle %d", testFile, i, cycle)
			}

			return nil
		}

		if err := mc.ExecuteInstruction(hook); err != nil {
			t.Fatal(err)
		}

		var fail bool

		fail = !test.ExpectEquality(t, mc.LastResult.Cycles, len(s.Cycles), s.Name, "cycles") || fail
		fail = !test.ExpectEquality(t, mc.PC.Address(), uint16(s.Final.PC), s.Name, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A.Value(), uint8(s.Final.A), s.Name, "A") || fail
		fail = !test.ExpectEquality(t, mc.X.Value(), uint8(s.Final.X), s.Name, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y.Value(), uint8(s.Final.Y), s.Name, "Y") || fail
		fail = !test.ExpectEquality(t, mc.SP.Value(), uint8(s.Final.S), s.Name, "SP") || fail

		// the break and unused bits only exist on the stack
		fail = !test.ExpectEquality(t, mc.Status.Value()|0x30, uint8(s.Final.P)|0x30, s.Name, "Status") || fail

		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, s.Name, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		if fail {
			t.Logf("last instruction: %s", mc.LastResult.Defn)
			t.Fatalf("%s: failed on test %d", testFile, i)
		}
	}
}
