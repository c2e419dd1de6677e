// This file is part of Gopherway.
//
// Gopherway is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherway is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherway.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"gopherway/curated"
	"gopherway/display"
	"gopherway/emulation"
	"gopherway/hardware"
)

// sentinel error pattern returned by the Run() loop when the measurement
// period is over.
const timedOut = "performance: timed out"

// frameCounter is a display.PixelRenderer that does nothing except count
// frames. Frames are pushed from the bus transfer goroutine and the count
// is read from the main flow, hence the atomic.
type frameCounter struct {
	frames int32
}

func (cnt *frameCounter) NewFrame(frame int) error {
	atomic.AddInt32(&cnt.frames, 1)
	return nil
}

func (cnt *frameCounter) SetPixel(x, y int, on bool) error {
	return nil
}

func (cnt *frameCounter) EndFrame() error {
	return nil
}

func (cnt *frameCounter) count() int {
	return int(atomic.LoadInt32(&cnt.frames))
}

// Check the performance of the emulation.
//
// The emulation runs headless for the specified duration and the achieved
// frame rate is written to output. A CPU or memory profile, a trace, or any
// combination, is created as required by the profile argument.
func Check(output io.Writer, profile Profile, duration string, uncapped bool, seed uint32) error {
	con, err := hardware.NewConsole(seed)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	cnt := &frameCounter{}
	con.AddPixelRenderer(cnt)

	lmtr := display.NewLimiter(display.BusFPS)
	lmtr.SetActive(!uncapped)

	if err := con.PowerOn(); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startCount := cnt.count()

	runner := func() error {
		// setup trigger that expires when duration has elapsed. a false on
		// the channel means the leadtime has concluded and measurement
		// begins; a true means the measurement period is over
		timerChan := make(chan bool)

		// a two second leadtime lets the frame rate settle down before the
		// timer for the specified duration begins
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		return con.Run(func() (emulation.State, error) {
			lmtr.Wait()

			select {
			case v := <-timerChan:
				if v {
					return emulation.Ending, curated.Errorf(timedOut)
				}

				// leadtime has concluded. restart the count
				startCount = cnt.count()
			default:
			}

			return emulation.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := cnt.count() - startCount
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
