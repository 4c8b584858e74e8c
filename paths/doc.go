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

// Package paths prepares paths to the emulator's resources, such as the
// preferences file.
//
// If a directory called ".gophernes" exists in the current directory then
// that is used as the base path. Otherwise the "gophernes" directory in the
// user's config directory is used, as returned by os.UserConfigDir(). On a
// Linux system a call to
//
//	paths.ResourcePath("", "preferences")
//
// will therefore usually return "/home/user/.config/gophernes/preferences".
// The directory part of the path is created if it does not exist.
package paths
