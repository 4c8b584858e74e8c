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

package hardware

// PerformanceBrake is the number of instructions a continueCheck function
// should allow before performing any expensive test. Checking for a timer
// channel for example.
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and should return false when
// the emulation is to stop. A nil continueCheck runs the emulation until an
// error occurs. A halted CPU causes Run() to return with an error.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := nes.Step(nil); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForInstructionCount sets the emulation running for the specified number
// of instructions. The continueCheck function can end the run early and can
// be nil.
func (nes *NES) RunForInstructionCount(count uint64, continueCheck func() (bool, error)) error {
	target := nes.Instructions + count
	return nes.Run(func() (bool, error) {
		if continueCheck != nil {
			if cont, err := continueCheck(); !cont || err != nil {
				return cont, err
			}
		}
		return nes.Instructions < target, nil
	})
}

// RunForFrameCount sets the emulation running for the specified number of
// PPU frames. The continueCheck function can end the run early and can be
// nil.
func (nes *NES) RunForFrameCount(count int, continueCheck func() (bool, error)) error {
	target := nes.PPU.Frame + count
	return nes.Run(func() (bool, error) {
		if continueCheck != nil {
			if cont, err := continueCheck(); !cont || err != nil {
				return cont, err
			}
		}
		return nes.PPU.Frame < target, nil
	})
}
