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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode has its own set of flags.
//
// Arguments are supplied once with NewArgs() and then parsed one layer at a
// time with Parse():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERSION")
//	p, err := md.Parse()
//
// The first argument after any flags is compared (case insensitively) against
// the list of sub-modes. If it matches, the mode is added to the mode path and
// the argument is consumed. If there is no match the first sub-mode in the
// list is used as the default.
//
// After a mode has been selected, NewMode() starts the next layer. Flags for
// that layer are added with AddBool(), AddInt() etc. and the layer is parsed
// with another call to Parse():
//
//	md.NewMode()
//	steps := md.AddUint64("steps", 1000, "number of instructions to execute")
//	p, err := md.Parse()
//
// Non-flag arguments are available with RemainingArgs() and GetArg().
// ExpectArgs() is a convenient way of checking the number of arguments.
//
// Help messages are printed to the Output writer when the -help flag is
// encountered and Parse() returns ParseHelp.
package modalflag
