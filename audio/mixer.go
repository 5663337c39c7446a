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
	"sync"
	"time"
)

// Sound is decoded audio. The sample data is never modified after creation.
type Sound struct {
	samples []float32
}

// NewSound creates a sound from interleaved stereo samples at SampleRate.
func NewSound(samples []float32) *Sound {
	return &Sound{samples: samples}
}

// Frames returns the number of stereo frames in the sound.
func (snd *Sound) Frames() int {
	return len(snd.samples) / Channels
}

// Duration returns the playing time of the sound.
func (snd *Sound) Duration() time.Duration {
	return time.Duration(snd.Frames()) * time.Second / SampleRate
}

type voice struct {
	samples []float32
	pos     int
	volume  float32
}

// Mixer sums voices and tracks. It is safe for concurrent use.
type Mixer struct {
	crit   sync.Mutex
	master float32
	voices []*voice
	tracks []*Track
}

// NewMixer is the preferred method of initialisation for the Mixer type.
func NewMixer() *Mixer {
	return &Mixer{
		master: 1.0,
	}
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

// MasterVolume returns the volume applied to all mixed audio.
func (mx *Mixer) MasterVolume() float32 {
	mx.crit.Lock()
	defer mx.crit.Unlock()
	return mx.master
}

// SetMasterVolume sets the volume applied to all mixed audio. The value is
// clamped to the range 0 to 1.
func (mx *Mixer) SetMasterVolume(v float32) {
	mx.crit.Lock()
	defer mx.crit.Unlock()
	mx.master = clamp01(v)
}

// PlaySound starts a new voice for the sound. The voice plays to the end of
// the sound and cannot be stopped.
func (mx *Mixer) PlaySound(snd *Sound, volume float32) {
	if snd.Frames() == 0 {
		return
	}
	mx.crit.Lock()
	defer mx.crit.Unlock()
	mx.voices = append(mx.voices, &voice{
		samples: snd.samples,
		volume:  clamp01(volume),
	})
}

// NumVoices returns the number of sounds still playing.
func (mx *Mixer) NumVoices() int {
	mx.crit.Lock()
	defer mx.crit.Unlock()
	return len(mx.voices)
}

// NumTracks returns the number of tracks attached to the mixer, playing or
// not.
func (mx *Mixer) NumTracks() int {
	mx.crit.Lock()
	defer mx.crit.Unlock()
	return len(mx.tracks)
}

// Mix fills out with the next len(out)/Channels frames of audio. Any existing
// content of out is overwritten.
func (mx *Mixer) Mix(out []float32) {
	clear(out)

	mx.crit.Lock()
	defer mx.crit.Unlock()

	// voices are removed once they have finished
	live := mx.voices[:0]
	for _, v := range mx.voices {
		n := copyAdd(out, v.samples[v.pos:], v.volume)
		v.pos += n
		if v.pos < len(v.samples) {
			live = append(live, v)
		}
	}
	clear(mx.voices[len(live):])
	mx.voices = live

	for _, t := range mx.tracks {
		t.mix(out)
	}

	for i := range out {
		out[i] = min(max(out[i]*mx.master, -1), 1)
	}
}

// copyAdd adds as much of src as fits to dst, scaled by volume. Returns the
// number of samples used.
func copyAdd(dst []float32, src []float32, volume float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] += src[i] * volume
	}
	return n
}

// Track is a playback position over a sound. Loading a track leaves it
// stopped.
type Track struct {
	mixer   *Mixer
	samples []float32
	pos     int
	playing bool
	loop    bool
	volume  float32
}

// NewTrack attaches a new track for the sound to the mixer.
func (mx *Mixer) NewTrack(snd *Sound) *Track {
	t := &Track{
		mixer:   mx,
		samples: snd.samples,
		volume:  1.0,
	}
	mx.crit.Lock()
	defer mx.crit.Unlock()
	mx.tracks = append(mx.tracks, t)
	return t
}

// Close detaches the track from the mixer. The track must not be used
// afterwards.
func (t *Track) Close() {
	mx := t.mixer
	mx.crit.Lock()
	defer mx.crit.Unlock()
	for i, u := range mx.tracks {
		if u == t {
			mx.tracks = append(mx.tracks[:i], mx.tracks[i+1:]...)
			break
		}
	}
	t.playing = false
}

// Play starts the track. If restart is true, or the track has already played
// to the end, playback begins at the start of the sound.
func (t *Track) Play(loop bool, restart bool) {
	t.mixer.crit.Lock()
	defer t.mixer.crit.Unlock()
	if restart || t.pos >= len(t.samples) {
		t.pos = 0
	}
	t.loop = loop
	t.playing = true
}

// Stop the track. The playback position is kept.
func (t *Track) Stop() {
	t.mixer.crit.Lock()
	defer t.mixer.crit.Unlock()
	t.playing = false
}

// IsPlaying returns true if the track is playing.
func (t *Track) IsPlaying() bool {
	t.mixer.crit.Lock()
	defer t.mixer.crit.Unlock()
	return t.playing
}

// Position returns the playback position of the track.
func (t *Track) Position() time.Duration {
	t.mixer.crit.Lock()
	defer t.mixer.crit.Unlock()
	return time.Duration(t.pos/Channels) * time.Second / SampleRate
}

// SetVolume of the track. The value is clamped to the range 0 to 1.
func (t *Track) SetVolume(v float32) {
	t.mixer.crit.Lock()
	defer t.mixer.crit.Unlock()
	t.volume = clamp01(v)
}

// Volume returns the volume of the track.
func (t *Track) Volume() float32 {
	t.mixer.crit.Lock()
	defer t.mixer.crit.Unlock()
	return t.volume
}

// mix is called with the mixer's critical section held.
func (t *Track) mix(out []float32) {
	if !t.playing || len(t.samples) == 0 {
		return
	}
	for len(out) > 0 {
		n := copyAdd(out, t.samples[t.pos:], t.volume)
		out = out[n:]
		t.pos += n
		if t.pos >= len(t.samples) {
			if !t.loop {
				t.playing = false
				return
			}
			t.pos = 0
		}
	}
}
