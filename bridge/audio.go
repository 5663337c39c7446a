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

package bridge

import (
	"github.com/orlok/cinderbridge/audio"
)

// MasterVolume returns the volume applied to all audio.
func (s *Service) MasterVolume() float32 {
	return s.mixer.MasterVolume()
}

// SetMasterVolume sets the volume applied to all audio.
func (s *Service) SetMasterVolume(v float32) {
	s.mixer.SetMasterVolume(v)
}

func (s *Service) decode(name string) (*audio.Sound, error) {
	data, err := s.loader.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return audio.Decode(data)
}

// LoadSound decodes the named resource.
func (s *Service) LoadSound(name string) (Sound, error) {
	snd, err := s.decode(name)
	if err != nil {
		return 0, err
	}
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.sounds.Insert(snd), nil
}

// FreeSound releases the sound. Voices already playing the sound continue
// to the end.
func (s *Service) FreeSound(h Sound) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	_, err := s.sounds.Remove(h)
	return err
}

// PlaySound plays the sound once at the volume.
func (s *Service) PlaySound(h Sound, volume float32) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	snd, err := s.sounds.Get(h)
	if err != nil {
		return err
	}
	s.mixer.PlaySound(snd, volume)
	return nil
}

// LoadTrack decodes the named resource into a new, stopped, track.
func (s *Service) LoadTrack(name string) (Track, error) {
	snd, err := s.decode(name)
	if err != nil {
		return 0, err
	}
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.tracks.Insert(s.mixer.NewTrack(snd)), nil
}

// FreeTrack stops and releases the track.
func (s *Service) FreeTrack(h Track) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	t, err := s.tracks.Remove(h)
	if err != nil {
		return err
	}
	t.Close()
	return nil
}

func (s *Service) track(h Track) (*audio.Track, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.tracks.Get(h)
}

// PlayTrack starts the track. With restart the track plays from the
// beginning.
func (s *Service) PlayTrack(h Track, loop bool, restart bool) error {
	t, err := s.track(h)
	if err != nil {
		return err
	}
	t.Play(loop, restart)
	return nil
}

// StopTrack stops the track.
func (s *Service) StopTrack(h Track) error {
	t, err := s.track(h)
	if err != nil {
		return err
	}
	t.Stop()
	return nil
}

// SetTrackVolume sets the volume of the track.
func (s *Service) SetTrackVolume(h Track, volume float32) error {
	t, err := s.track(h)
	if err != nil {
		return err
	}
	t.SetVolume(volume)
	return nil
}

// TrackVolume returns the volume of the track.
func (s *Service) TrackVolume(h Track) (float32, error) {
	t, err := s.track(h)
	if err != nil {
		return 0, err
	}
	return t.Volume(), nil
}
