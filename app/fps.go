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

// the period over which the average frame rate is measured
const fpsWindow = time.Second

// fpsMeter measures the average frame rate over the most recent fpsWindow.
type fpsMeter struct {
	frames []time.Time
}

// tick records a frame at time t. Frames must be recorded in time order.
func (m *fpsMeter) tick(t time.Time) {
	m.frames = append(m.frames, t)

	cut := 0
	for cut < len(m.frames) && t.Sub(m.frames[cut]) > fpsWindow {
		cut++
	}
	if cut > 0 {
		m.frames = append(m.frames[:0], m.frames[cut:]...)
	}
}

// average returns the frames per second over the recorded window. Zero until
// at least two frames have been recorded.
func (m *fpsMeter) average() float32 {
	if len(m.frames) < 2 {
		return 0
	}
	span := m.frames[len(m.frames)-1].Sub(m.frames[0])
	if span <= 0 {
		return 0
	}
	return float32(float64(len(m.frames)-1) / span.Seconds())
}

func (m *fpsMeter) reset() {
	m.frames = m.frames[:0]
}
