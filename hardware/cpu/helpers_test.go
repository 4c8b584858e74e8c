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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/test"
)

type write struct {
	address uint16
	data    uint8
}

// mockMem is a flat 64k address space. every write is recorded.
type mockMem struct {
	internal [0x10000]uint8
	writes   []write
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	mem.writes = append(mem.writes, write{address: address, data: data})
	return nil
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, address)
}

// newCPU creates a CPU with a program at origin. the reset vector points to
// origin and the CPU has been reset
func newCPU(t *testing.T, ins *instance.Instance, origin uint16, program ...uint8) (*cpu.CPU, *mockMem) {
	t.Helper()

	mem := &mockMem{}
	mem.putVector(cpubus.Reset, origin)
	mem.putInstructions(origin, program...)

	mc := cpu.NewCPU(ins, mem)
	test.DemandSuccess(t, mc.Reset(cpu.NilCycleCallback))
	mem.writes = mem.writes[:0]

	return mc, mem
}

// step executes one instruction and checks the validity of the result
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()

	cycles := mc.Cycles
	test.DemandSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.Cycles-cycles, uint64(mc.LastResult.Cycles))
}

// newInstance returns an instance with preferences isolated from the user's
// preferences file
func newInstance(t *testing.T) *instance.Instance {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	ins, err := instance.NewInstance(nil, nil)
	test.DemandSuccess(t, err)
	ins.Normalise()

	return ins
}
