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

// Package curated wraps the Go error type so that errors can be identified by
// the pattern used to create them.
//
// Errors are created with Errorf(). Unlike fmt.Errorf() the first argument is
// called the pattern and it is the pattern, not the formatted message, that
// identifies the error.
//
//	const OutOfRange = "ram: address out of range (%#04x)"
//	err := curated.Errorf(OutOfRange, addr)
//
//	if curated.Is(err, OutOfRange) {
//		...
//	}
//
// Has() is like Is() but searches the entire chain of wrapped errors. A
// curated error wraps another error simply by including it as one of the
// placeholder values.
//
//	err = curated.Errorf("nes: %v", err)
//	curated.Is(err, OutOfRange)  // false
//	curated.Has(err, OutOfRange) // true
//
// IsAny() answers whether an error was created by Errorf() at all. Errors
// that are not curated should be considered unexpected.
//
// The message returned by Error() is normalised so that adjacent duplicate
// parts of the chain are removed. A package can therefore prefix its name to
// an error without worrying whether the error already carries that prefix:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: halted"))
//
// produces the message "cpu: halted".
package curated
