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

package logger

import (
	"bytes"
	"io"

	"github.com/jetsetilly/gophernes/ansi"
)

// Colorizer is an io.Writer that dims the tag part of each log entry. It is
// intended to be used as the echo writer when output is going to a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	idx := bytes.Index(p, []byte(": "))
	if idx == -1 {
		return c.out.Write(p)
	}

	tagPen := ansi.PenStyles["dim"]

	b := make([]byte, 0, len(p)+len(tagPen)+len(ansi.NormalPen))
	b = append(b, tagPen...)
	b = append(b, p[:idx]...)
	b = append(b, ansi.NormalPen...)
	b = append(b, p[idx:]...)

	if _, err := c.out.Write(b); err != nil {
		return 0, err
	}

	return len(p), nil
}
