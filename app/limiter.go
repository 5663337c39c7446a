// This file is part of Cinderbridge.
//
// Cinderbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cinderbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cinderbridge.  If not, see <https://www.gnu.org/licenses/>.

package app

import (
	"time"
)

type fpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
	quit chan bool
}

// newFPSLimiter returns nil if framesPerSecond is not positive. A nil limiter
// never waits.
func newFPSLimiter(framesPerSecond int) *fpsLimiter {
	if framesPerSecond <= 0 {
		return nil
	}

	lim := &fpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan bool),
		quit:            make(chan bool),
	}

	// run ticker concurrently
	go func() {
		adjustedSecondPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			time.Sleep(max(adjustedSecondPerFrame, 0))
			nt := time.Now()
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			adjustedSecondPerFrame -= nt.Sub(t) - lim.secondsPerFrame

			// at most one frame of catch-up after a long stall
			adjustedSecondPerFrame = max(adjustedSecondPerFrame, -lim.secondsPerFrame)
			t = nt
		}
	}()

	return lim
}

func (lim *fpsLimiter) wait() {
	if lim == nil {
		return
	}
	<-lim.tick
}

func (lim *fpsLimiter) stop() {
	if lim == nil {
		return
	}
	close(lim.quit)
}
