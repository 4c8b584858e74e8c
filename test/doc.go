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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and return false
// so that the calling test can decide whether to continue. The Demand*()
// functions are the same except that they stop the test with t.Fatalf().
//
// ExpectSuccess() and ExpectFailure() interpret a value according to its
// type. A bool is a success if it is true and an error is a success if it is
// nil. The untyped nil is also a success, which is consistent with how
// errors are usually returned.
//
// All functions take an optional list of tags. The tags are printed with any
// failure message and help to identify which of many similar tests failed,
// for example a loop index or an opcode.
//
// The RingWriter type implements io.Writer and is useful for capturing the
// most recent output of a process.
package test
