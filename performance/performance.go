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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/paths"
)

// sentinal error returned by Run() loop.
const timedOut = "performance: timed out"

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, duration string) error {
	nes, err := hardware.NewNES(nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	nes.Instance.Quiet = true

	err = nes.Attach(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := nes.PPU.Frame
	startCycles := nes.CPU.Cycles

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		// only check for the end of the measurement period every
		// PerformanceBrake instructions
		performanceBrake := 0

		return nes.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return true, nil
			}
			performanceBrake = 0

			select {
			case <-timer.C:
				return false, curated.Errorf(timedOut)
			default:
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, paths.UniqueFilename("performance", cartload.ShortName()), runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := nes.PPU.Frame - startFrame
	fps, fpsAccuracy := CalcFPS(numFrames, dur.Seconds())
	mhz, mhzAccuracy := CalcClock(nes.CPU.Cycles-startCycles, dur.Seconds())

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), fpsAccuracy)
	fmt.Fprintf(output, "%.3f MHz %.1f%%\n", mhz, mhzAccuracy)

	return nil
}
