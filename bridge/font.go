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
	"github.com/orlok/cinderbridge/font"
)

// LoadFont loads the named font resource at the size in pixels.
func (s *Service) LoadFont(name string, size float64) (Font, error) {
	data, err := s.loader.ReadFile(name)
	if err != nil {
		return 0, err
	}
	fnt, err := font.Load(data, size)
	if err != nil {
		return 0, err
	}
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.fonts.Insert(&fontRecord{font: fnt}), nil
}

// FreeFont releases the font and its atlas texture.
func (s *Service) FreeFont(h Font) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	rec, err := s.fonts.Remove(h)
	if err != nil {
		return err
	}
	if rec.atlas != 0 && s.dev != nil {
		if err := s.dev.FreeTexture(rec.atlas); err != nil {
			_ = rec.font.Close()
			return err
		}
	}
	return rec.font.Close()
}

// FontInfo returns the name, size and vertical metrics of the font.
func (s *Service) FontInfo(h Font) (font.Info, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	rec, err := s.fonts.Get(h)
	if err != nil {
		return font.Info{}, err
	}
	return rec.font.Info(), nil
}

// FontExtents measures the ink box of the string.
func (s *Service) FontExtents(h Font, str string) (font.Extents, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	rec, err := s.fonts.Get(h)
	if err != nil {
		return font.Extents{}, err
	}
	return rec.font.Extents(str), nil
}

// HasFont returns true if the handle refers to a live font.
func (s *Service) HasFont(h Font) bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	_, err := s.fonts.Get(h)
	return err == nil
}
