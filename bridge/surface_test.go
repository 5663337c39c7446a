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
	"image/png"
	"testing"

	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/handle"
	"github.com/orlok/cinderbridge/resources"
	"github.com/orlok/cinderbridge/surface"
	"github.com/orlok/cinderbridge/test"
)

func pixelAt(t *testing.T, s *Service, h Surface, x, y int) color.NRGBA {
	t.Helper()
	srf, err := s.surfaces.Get(h)
	test.DemandSuccess(t, err)
	return srf.NRGBA().NRGBAAt(x, y)
}

func TestSurfaceHandles(t *testing.T) {
	s, _, _ := newService(t)

	h, err := s.CreateSurface(4, 4)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.FreeSurface(h))

	err = s.FreeSurface(h)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))
	err = s.FreeSurface(0)
	test.ExpectSuccess(t, curated.Is(err, handle.Null))

	// a new surface does not revive the old handle
	g, err := s.CreateSurface(4, 4)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, g, h)
	err = s.Premultiply(h)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))

	_, err = s.CreateSurface(0, 4)
	test.ExpectSuccess(t, curated.Is(err, surface.InvalidSize))
}

func TestLoadSurface(t *testing.T) {
	s, _, dir := newService(t)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{R: 255, A: 255})
	var b bytes.Buffer
	test.DemandSuccess(t, png.Encode(&b, img))
	writeResource(t, dir, "ship.png", b.Bytes())
	writeResource(t, dir, "broken.png", []byte("not an image"))

	h, w, ht, err := s.LoadSurface("ship.png")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, 3)
	test.ExpectEquality(t, ht, 2)
	test.ExpectEquality(t, pixelAt(t, s, h, 2, 1), color.NRGBA{R: 255, A: 255})

	_, _, _, err = s.LoadSurface("missing.png")
	test.ExpectSuccess(t, curated.Is(err, resources.NotFound))

	_, _, _, err = s.LoadSurface("broken.png")
	test.ExpectSuccess(t, curated.Is(err, surface.DecodeFailed))
}

func TestSurfacePixels(t *testing.T) {
	s, _, _ := newService(t)

	src, err := s.CreateSurface(4, 4)
	test.DemandSuccess(t, err)
	dst, err := s.CreateSurface(4, 4)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, s.FillSurface(src, 1, 0, 0, 0.5, 0, 0, 2, 2))
	test.ExpectEquality(t, pixelAt(t, s, src, 1, 1), color.NRGBA{R: 255, A: 128})
	test.ExpectEquality(t, pixelAt(t, s, src, 2, 2), color.NRGBA{})

	// copies are raw and clipped to the destination
	test.ExpectSuccess(t, s.CopyPixels(src, 0, 0, 2, 2, dst, 3, 3))
	test.ExpectEquality(t, pixelAt(t, s, dst, 3, 3), color.NRGBA{R: 255, A: 128})
	test.ExpectEquality(t, pixelAt(t, s, dst, 2, 2), color.NRGBA{})

	test.ExpectSuccess(t, s.Premultiply(src))
	test.ExpectEquality(t, pixelAt(t, s, src, 0, 0), color.NRGBA{R: 128, A: 128})
	test.ExpectSuccess(t, s.Unpremultiply(src))
	test.ExpectEquality(t, pixelAt(t, s, src, 0, 0).A, 128)

	test.ExpectSuccess(t, s.FlipVertical(src))
	test.ExpectEquality(t, pixelAt(t, s, src, 0, 0), color.NRGBA{})
	test.ExpectEquality(t, pixelAt(t, s, src, 0, 3).A, 128)
}

func TestResizeSurface(t *testing.T) {
	s, _, _ := newService(t)

	h, err := s.CreateSurface(8, 8)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.FillSurface(h, 0, 1, 0, 1, 0, 0, 8, 8))

	for filter := range 3 {
		r, err := s.ResizeSurface(h, 4, 2, filter)
		test.ExpectSuccess(t, err, filter)
		test.ExpectEquality(t, pixelAt(t, s, r, 1, 1), color.NRGBA{G: 255, A: 255}, filter)
	}
	test.ExpectEquality(t, s.Stats().Surfaces, 4)

	_, err = s.ResizeSurface(h, 4, 4, 3)
	test.ExpectSuccess(t, curated.Is(err, surface.InvalidFilter))
	test.ExpectEquality(t, s.Stats().Surfaces, 4)
}
