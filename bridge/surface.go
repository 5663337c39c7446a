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
	"bytes"
	"image"
	"image/color"

	"github.com/orlok/cinderbridge/surface"
)

// CreateSurface creates a transparent surface.
func (s *Service) CreateSurface(width, height int) (Surface, error) {
	srf, err := surface.New(width, height)
	if err != nil {
		return 0, err
	}
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.surfaces.Insert(srf), nil
}

// LoadSurface decodes the named image resource.
func (s *Service) LoadSurface(name string) (Surface, int, int, error) {
	data, err := s.loader.ReadFile(name)
	if err != nil {
		return 0, 0, 0, err
	}
	srf, err := surface.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, 0, err
	}
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.surfaces.Insert(srf), srf.Width(), srf.Height(), nil
}

// FreeSurface releases the surface.
func (s *Service) FreeSurface(h Surface) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	_, err := s.surfaces.Remove(h)
	return err
}

// CopyPixels copies the w×h area at (sx, sy) of src to (dx, dy) of dst. The
// copy is clipped to both surfaces.
func (s *Service) CopyPixels(src Surface, sx, sy, w, h int, dst Surface, dx, dy int) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	from, err := s.surfaces.Get(src)
	if err != nil {
		return err
	}
	to, err := s.surfaces.Get(dst)
	if err != nil {
		return err
	}
	to.CopyFrom(from, image.Rect(sx, sy, sx+w, sy+h), image.Pt(dx, dy))
	return nil
}

func unit(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// FillSurface sets every pixel of the w×h area at (x, y) to the colour.
func (s *Service) FillSurface(h Surface, r, g, b, a float32, x, y, w, ht int) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	srf, err := s.surfaces.Get(h)
	if err != nil {
		return err
	}
	col := color.NRGBA{R: unit(r), G: unit(g), B: unit(b), A: unit(a)}
	srf.Fill(col, image.Rect(x, y, x+w, y+ht))
	return nil
}

func (s *Service) withSurface(h Surface, f func(srf *surface.Surface)) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	srf, err := s.surfaces.Get(h)
	if err != nil {
		return err
	}
	f(srf)
	return nil
}

// Premultiply the colour of every pixel by its alpha.
func (s *Service) Premultiply(h Surface) error {
	return s.withSurface(h, (*surface.Surface).Premultiply)
}

// Unpremultiply reverses Premultiply().
func (s *Service) Unpremultiply(h Surface) error {
	return s.withSurface(h, (*surface.Surface).Unpremultiply)
}

// FlipVertical flips the surface upside down.
func (s *Service) FlipVertical(h Surface) error {
	return s.withSurface(h, (*surface.Surface).FlipVertical)
}

// ResizeSurface returns a new surface with the contents of the surface scaled
// to the new size with the filter: 0 box, 1 triangle, 2 gaussian.
func (s *Service) ResizeSurface(h Surface, width, height int, filter int) (Surface, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	srf, err := s.surfaces.Get(h)
	if err != nil {
		return 0, err
	}
	resized, err := srf.Resize(width, height, surface.Filter(filter))
	if err != nil {
		return 0, err
	}
	return s.surfaces.Insert(resized), nil
}
