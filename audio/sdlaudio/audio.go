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

// Package sdlaudio outputs the audio.Mixer through an SDL queued audio device.
package sdlaudio

import (
	"encoding/binary"
	"time"

	"github.com/orlok/cinderbridge/audio"
	"github.com/orlok/cinderbridge/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of buffers kept queued on the device. fewer than this and the
// ticker tops the queue up
const queueDepth = 3

// Audio outputs the mixer using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	mixer  *audio.Mixer
	mix    []float32
	buffer []uint8

	quit chan bool
	done chan bool
}

// NewAudio opens the default audio device. The bufferLength is the number of
// frames mixed on every tick.
func NewAudio(mixer *audio.Mixer, bufferLength int) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, err
	}

	aud := &Audio{
		mixer: mixer,
		quit:  make(chan bool),
		done:  make(chan bool),
	}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: audio.Channels,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	aud.mix = make([]float32, bufferLength*audio.Channels)
	aud.buffer = make([]uint8, len(aud.mix)*2)

	go func() {
		defer close(aud.done)

		rate := float64(bufferLength) / audio.SampleRate
		tck := time.NewTicker(time.Duration(rate * float64(time.Second)))
		defer tck.Stop()

		for {
			select {
			case <-aud.quit:
				return
			case <-tck.C:
				for sdl.GetQueuedAudioSize(aud.id) < uint32(len(aud.buffer)*queueDepth) {
					if err := aud.queue(); err != nil {
						logger.Log(logger.Allow, "sdlaudio", err)
						break
					}
				}
			}
		}
	}()

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// queue mixes the next buffer and adds it to the device queue.
func (aud *Audio) queue() error {
	aud.mixer.Mix(aud.mix)
	for i, v := range aud.mix {
		binary.LittleEndian.PutUint16(aud.buffer[i*2:], uint16(int16(v*32767)))
	}
	return sdl.QueueAudio(aud.id, aud.buffer)
}

// Close stops the output goroutine and closes the device.
func (aud *Audio) Close() {
	close(aud.quit)
	<-aud.done
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
