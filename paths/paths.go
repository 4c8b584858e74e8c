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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const localBase = ".gophernes"

// ResourcePath returns the path to the resource in the named sub-directory
// of the base resource path. The sub-directory is created if necessary.
// Either argument can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	pth := filepath.Join(basePath(), subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(pth, file), nil
}

func basePath() string {
	if _, err := os.Stat(localBase); err == nil {
		return localBase
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return localBase
	}

	return filepath.Join(cfg, localBase[1:])
}

// UniqueFilename creates a filename that should not collide with any
// existing file, assuming a working clock. The format of the filename is:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// If name is empty the format is:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}
	return fmt.Sprintf("%s_%s_%s", prepend, name, timestamp)
}
