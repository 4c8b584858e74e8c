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

// Package addresses contains all information about NES addresses and
// registers, including canonical symbols for read and write addresses. The
// symbols are used when describing memory accesses in logs and in the
// execution trace.
//
// In addition to the canonical symbol maps, there are two sparse arrays Read
// and Write, created from the canonical maps at run time. Accessing a map
// although very convenient, is noticeably slower than accessing a sparse
// array.
package addresses
