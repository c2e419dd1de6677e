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

package display

import (
	"time"
)

// BusFPS is the frame rate the real console achieves: a 1024 byte frame plus
// addressing overhead at 400kHz on the two-wire bus works out at roughly 43
// full-frame updates a second. The hosted emulation would otherwise run far
// faster than the real hardware.
const BusFPS = 43.0

// Limiter paces the emulation's main loop to a requested frame rate.
type Limiter struct {
	// whether Wait() actually waits
	active bool

	tck *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{active: true}
	lmtr.tck = time.NewTicker(frameDuration(fps))
	return lmtr
}

func frameDuration(fps float32) time.Duration {
	if fps <= 0 {
		fps = BusFPS
	}
	return time.Duration(float32(time.Second) / fps)
}

// SetFPS changes the requested frame rate. A value of zero or less reverts
// to BusFPS.
func (lmtr *Limiter) SetFPS(fps float32) {
	lmtr.tck.Reset(frameDuration(fps))
}

// SetActive turns frame rate limiting on or off. An inactive limiter causes
// Wait() to return immediately, letting the emulation free-run.
func (lmtr *Limiter) SetActive(active bool) {
	lmtr.active = active
}

// Wait until the next frame is due.
func (lmtr *Limiter) Wait() {
	if !lmtr.active {
		return
	}
	<-lmtr.tck.C
}
