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

package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/logger"
)

// DecodeFailed is the error pattern for audio data that cannot be decoded.
const DecodeFailed = "audio: decode failed: %v"

// SampleRate is the frequency of all decoded and mixed audio.
const SampleRate = 44100

// Channels in decoded and mixed audio. Samples are interleaved.
const Channels = 2

const logTag = "audio"

// Decode wav or mp3 data. The format is detected from the data rather than
// from a filename.
func Decode(data []byte) (*Sound, error) {
	var samples []float32
	var err error

	if len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE" {
		samples, err = decodeWav(data)
	} else {
		samples, err = decodeMP3(data)
	}
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, err)
	}

	if len(samples) == 0 {
		return nil, curated.Errorf(DecodeFailed, "no audio data")
	}

	return NewSound(samples), nil
}

func decodeWav(data []byte) ([]float32, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if dec == nil {
		return nil, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return nil, fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	numChans := int(dec.NumChans)
	if numChans < 1 {
		return nil, fmt.Errorf("wav: no channels")
	}

	// normalise to the range -1 to 1. 8 bit wav data is unsigned
	var scale float32
	var offset int
	switch dec.BitDepth {
	case 8:
		scale = 128
		offset = 128
	case 16, 24, 32:
		scale = float32(int(1) << (dec.BitDepth - 1))
	default:
		return nil, fmt.Errorf("wav: unsupported bit depth (%d)", dec.BitDepth)
	}

	frames := len(buf.Data) / numChans
	stereo := make([]float32, 0, frames*Channels)
	for i := 0; i+numChans <= len(buf.Data); i += numChans {
		l := float32(buf.Data[i]-offset) / scale
		r := l
		if numChans > 1 {
			r = float32(buf.Data[i+1]-offset) / scale
		}
		stereo = append(stereo, l, r)
	}

	logger.Logf(logger.Allow, logTag, "wav: %dHz %d bit %d channels", dec.SampleRate, dec.BitDepth, numChans)

	return resample(stereo, int(dec.SampleRate)), nil
}

func decodeMP3(data []byte) ([]float32, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	// "The stream is always formatted as 16bit (little endian) 2 channels even
	// if the source is single channel MP3. Thus, a sample always consists of 4
	// bytes."
	var stereo []float32
	if n := dec.Length(); n > 0 {
		stereo = make([]float32, 0, n/2)
	}

	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)

		// a chunk may end part way through a sample
		for i := 0; i+1 < n; i += 2 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			stereo = append(stereo, float32(v)/32768)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("mp3: %w", err)
		}
	}

	logger.Logf(logger.Allow, logTag, "mp3: %dHz", dec.SampleRate())

	return resample(stereo, dec.SampleRate()), nil
}

// resample interleaved stereo data to SampleRate with linear interpolation.
func resample(stereo []float32, rate int) []float32 {
	if rate == SampleRate || rate <= 0 {
		return stereo
	}

	frames := len(stereo) / Channels
	if frames == 0 {
		return stereo
	}

	step := float64(rate) / SampleRate
	n := int(float64(frames) / step)
	out := make([]float32, 0, n*Channels)

	for i := range n {
		p := float64(i) * step
		f := int(p)
		t := float32(p - float64(f))
		g := min(f+1, frames-1)
		for c := range Channels {
			a := stereo[f*Channels+c]
			b := stereo[g*Channels+c]
			out = append(out, a+(b-a)*t)
		}
	}

	return out
}
