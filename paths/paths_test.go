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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/test"
)

func TestResourcePath(t *testing.T) {
	// a local base directory takes precedence
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gophernes", 0o700))

	pth, err := paths.ResourcePath("foo", "bar")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gophernes", "foo", "bar"))

	_, err = os.Stat(filepath.Join(".gophernes", "foo"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "bar")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gophernes", "bar"))
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("snapshot", "smb")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "snapshot_smb_"))

	fn = paths.UniqueFilename("snapshot", " ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "snapshot_2"))
}
