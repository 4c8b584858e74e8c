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

package disassembly

import (
	"fmt"
	"io"
)

// Write the disassembly to the output. Only entries at or above the level
// are included. A gap in the listing is marked with an ellipsis.
func (dsm *Disassembly) Write(output io.Writer, minLevel EntryLevel) {
	next := -1
	for _, e := range dsm.Entries(minLevel) {
		if next != -1 && int(e.Result.Address) != next {
			fmt.Fprintln(output, "...")
		}
		fmt.Fprintln(output, e.String())
		next = int(e.Result.Address) + e.Result.ByteCount
	}
}
