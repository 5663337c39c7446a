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

package surface_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/surface"
	"github.com/orlok/cinderbridge/test"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	half  = color.NRGBA{R: 200, G: 100, B: 50, A: 128}
)

func pixel(srf *surface.Surface, x, y int) color.NRGBA {
	return srf.NRGBA().NRGBAAt(x, y)
}

func TestNew(t *testing.T) {
	srf, err := surface.New(4, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, srf.Width(), 4)
	test.ExpectEquality(t, srf.Height(), 3)
	test.ExpectEquality(t, pixel(srf, 3, 2), color.NRGBA{})

	_, err = surface.New(0, 10)
	test.ExpectSuccess(t, curated.Is(err, surface.InvalidSize))
}

func TestDecode(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 1, red)

	var b bytes.Buffer
	test.DemandSuccess(t, png.Encode(&b, img))

	srf, err := surface.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, srf.Width(), 2)
	test.ExpectEquality(t, pixel(srf, 1, 1), red)
	test.ExpectEquality(t, pixel(srf, 0, 0), color.NRGBA{})

	_, err = surface.Decode(bytes.NewReader([]byte("not an image")))
	test.ExpectSuccess(t, curated.Is(err, surface.DecodeFailed))
}

func TestFill(t *testing.T) {
	srf, _ := surface.New(4, 4)

	// fill is clipped to the surface
	srf.Fill(red, image.Rect(2, 2, 10, 10))
	test.ExpectEquality(t, pixel(srf, 1, 1), color.NRGBA{})
	test.ExpectEquality(t, pixel(srf, 2, 2), red)
	test.ExpectEquality(t, pixel(srf, 3, 3), red)

	// fill replaces rather than blends
	srf.Fill(half, image.Rect(0, 0, 4, 4))
	test.ExpectEquality(t, pixel(srf, 3, 3), half)
}

func TestCopyPixels(t *testing.T) {
	src, _ := surface.New(4, 4)
	src.Fill(red, image.Rect(0, 0, 2, 2))
	src.Fill(green, image.Rect(2, 2, 4, 4))

	dst, _ := surface.New(4, 4)
	dst.CopyFrom(src, image.Rect(2, 2, 4, 4), image.Pt(0, 0))
	test.ExpectEquality(t, pixel(dst, 0, 0), green)
	test.ExpectEquality(t, pixel(dst, 1, 1), green)
	test.ExpectEquality(t, pixel(dst, 2, 2), color.NRGBA{})

	// destination clipping
	dst.CopyFrom(src, image.Rect(0, 0, 2, 2), image.Pt(3, 3))
	test.ExpectEquality(t, pixel(dst, 3, 3), red)

	// negative destination clips the start of the source area
	dst.CopyFrom(src, image.Rect(2, 2, 4, 4), image.Pt(-1, 2))
	test.ExpectEquality(t, pixel(dst, 0, 2), green)

	// overlapping copy within the same surface
	src.CopyFrom(src, image.Rect(0, 0, 2, 2), image.Pt(1, 1))
	test.ExpectEquality(t, pixel(src, 2, 2), red)
	test.ExpectEquality(t, pixel(src, 1, 1), red)
}

func TestPremultiply(t *testing.T) {
	srf, _ := surface.New(1, 1)
	srf.Fill(half, image.Rect(0, 0, 1, 1))

	srf.Premultiply()
	p := pixel(srf, 0, 0)
	test.ExpectEquality(t, p.R, uint8(100))
	test.ExpectEquality(t, p.G, uint8(50))
	test.ExpectEquality(t, p.B, uint8(25))
	test.ExpectEquality(t, p.A, uint8(128))

	srf.Unpremultiply()
	p = pixel(srf, 0, 0)
	test.ExpectApproximate(t, p.R, 200, 0.01)
	test.ExpectApproximate(t, p.G, 100, 0.01)
	test.ExpectApproximate(t, p.B, 50, 0.02)
}

func TestFlipVertical(t *testing.T) {
	srf, _ := surface.New(2, 3)
	srf.Fill(red, image.Rect(0, 0, 2, 1))
	srf.Fill(green, image.Rect(0, 2, 2, 3))

	srf.FlipVertical()
	test.ExpectEquality(t, pixel(srf, 0, 0), green)
	test.ExpectEquality(t, pixel(srf, 1, 1), color.NRGBA{})
	test.ExpectEquality(t, pixel(srf, 1, 2), red)
}

func TestClone(t *testing.T) {
	srf, _ := surface.New(2, 2)
	srf.Fill(red, srf.Bounds())
	c := srf.Clone()
	srf.Fill(green, srf.Bounds())
	test.ExpectEquality(t, pixel(c, 1, 1), red)
}
