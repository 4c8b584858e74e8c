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

package rewind

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// the parts of a snapshot included in the visualisation. the hardware types
// refer to the live emulation and are not suitable for mapping.
type visualisation struct {
	Sequence int
	Cycles   uint64
	Frame    int

	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8

	RAM []uint8
	OAM []uint8
}

// Visualise writes a graphviz representation of the snapshot to the writer.
func (s *State) Visualise(w io.Writer) {
	v := &visualisation{
		Sequence: s.Sequence,
		Cycles:   s.CPU.Cycles,
		Frame:    s.PPU.Frame,
		PC:       s.CPU.PC.Address(),
		A:        s.CPU.A.Value(),
		X:        s.CPU.X.Value(),
		Y:        s.CPU.Y.Value(),
		SP:       s.CPU.SP.Value(),
		Status:   s.CPU.Status.Value(),
		RAM:      s.Mem.RAM.RAM,
		OAM:      s.PPU.OAM[:],
	}
	memviz.Map(w, v)
}
