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

// Package surface implements in-memory pixel buffers. Pixels are stored as
// 8-bit RGBA in a gg.Pixmap so that a vector graphics context can draw
// directly into a surface.
//
// Pixel values are straight (non-premultiplied) alpha unless Premultiply()
// has been called.
package surface

import (
	"image"
	"image/color"
	"io"

	// image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/gg"
	"github.com/orlok/cinderbridge/curated"
	"golang.org/x/image/draw"
)

// Sentinal error patterns.
const (
	InvalidSize  = "surface: invalid size (%dx%d)"
	DecodeFailed = "surface: decode failed: %v"
)

// Surface is a rectangular buffer of RGBA pixels.
type Surface struct {
	pixmap *gg.Pixmap
}

// New creates a transparent surface.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(InvalidSize, width, height)
	}
	return &Surface{pixmap: gg.NewPixmap(width, height)}, nil
}

// FromImage creates a surface with a copy of the image.
func FromImage(img image.Image) (*Surface, error) {
	b := img.Bounds()
	srf, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(srf.NRGBA(), srf.Bounds(), img, b.Min, draw.Src)
	return srf, nil
}

// Decode an image from the reader. Any format registered with the image
// package can be decoded. PNG, JPEG, GIF, BMP, TIFF and WebP are registered
// by this package.
func Decode(r io.Reader) (*Surface, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, err)
	}
	srf, err := FromImage(img)
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, err)
	}
	return srf, nil
}

// Width of the surface in pixels.
func (srf *Surface) Width() int {
	return srf.pixmap.Width()
}

// Height of the surface in pixels.
func (srf *Surface) Height() int {
	return srf.pixmap.Height()
}

// Bounds of the surface. The minimum point is always (0,0).
func (srf *Surface) Bounds() image.Rectangle {
	return srf.pixmap.Bounds()
}

// Pixmap returns the underlying pixmap.
func (srf *Surface) Pixmap() *gg.Pixmap {
	return srf.pixmap
}

// NRGBA returns an image that shares memory with the surface. Changes to the
// image are changes to the surface.
func (srf *Surface) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    srf.pixmap.Data(),
		Stride: 4 * srf.pixmap.Width(),
		Rect:   srf.pixmap.Bounds(),
	}
}

// Fill the area with a colour. The colour replaces the existing pixels. The
// area is clipped to the surface.
func (srf *Surface) Fill(col color.NRGBA, area image.Rectangle) {
	area = area.Intersect(srf.Bounds())
	if area.Empty() {
		return
	}

	img := srf.NRGBA()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		i := img.PixOffset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x++ {
			img.Pix[i+0] = col.R
			img.Pix[i+1] = col.G
			img.Pix[i+2] = col.B
			img.Pix[i+3] = col.A
			i += 4
		}
	}
}

// CopyFrom copies the area of the source surface to the destination point.
// Pixels are copied as they are, without blending. The copy is clipped to both
// surfaces. Source and destination can be the same surface.
func (srf *Surface) CopyFrom(src *Surface, area image.Rectangle, dst image.Point) {
	s := src.NRGBA()
	if src == srf {
		// overlapping copies need a copy of the source first
		area = area.Intersect(s.Rect)
		if area.Empty() {
			return
		}
		c := image.NewNRGBA(area)
		draw.Copy(c, area.Min, s, area, draw.Src, nil)
		s = c
	}
	srf.CopyFromImage(s, area, dst)
}

// CopyFromImage copies the area of the image to the destination point in the
// same way as CopyFrom().
func (srf *Surface) CopyFromImage(src *image.NRGBA, area image.Rectangle, dst image.Point) {
	area = area.Intersect(src.Rect)
	if area.Empty() {
		return
	}

	// clip to destination and adjust the source area to match
	dr := image.Rectangle{Min: dst, Max: dst.Add(area.Size())}
	clipped := dr.Intersect(srf.Bounds())
	if clipped.Empty() {
		return
	}
	area.Min = area.Min.Add(clipped.Min.Sub(dr.Min))
	area.Max = area.Min.Add(clipped.Size())

	draw.Copy(srf.NRGBA(), clipped.Min, src, area, draw.Src, nil)
}

// Premultiply the colour channels by the alpha channel.
func (srf *Surface) Premultiply() {
	p := srf.pixmap.Data()
	for i := 0; i < len(p); i += 4 {
		a := uint32(p[i+3])
		p[i+0] = uint8((uint32(p[i+0])*a + 127) / 255)
		p[i+1] = uint8((uint32(p[i+1])*a + 127) / 255)
		p[i+2] = uint8((uint32(p[i+2])*a + 127) / 255)
	}
}

// Unpremultiply divides the colour channels by the alpha channel. Pixels with
// zero alpha are left alone.
func (srf *Surface) Unpremultiply() {
	p := srf.pixmap.Data()
	for i := 0; i < len(p); i += 4 {
		a := uint32(p[i+3])
		if a == 0 || a == 255 {
			continue
		}
		p[i+0] = uint8(min(255, (uint32(p[i+0])*255+a/2)/a))
		p[i+1] = uint8(min(255, (uint32(p[i+1])*255+a/2)/a))
		p[i+2] = uint8(min(255, (uint32(p[i+2])*255+a/2)/a))
	}
}

// FlipVertical reverses the order of the rows.
func (srf *Surface) FlipVertical() {
	p := srf.pixmap.Data()
	stride := 4 * srf.Width()
	row := make([]uint8, stride)
	for top, bot := 0, srf.Height()-1; top < bot; top, bot = top+1, bot-1 {
		t := p[top*stride : (top+1)*stride]
		b := p[bot*stride : (bot+1)*stride]
		copy(row, t)
		copy(t, b)
		copy(b, row)
	}
}

// Clone returns a copy of the surface.
func (srf *Surface) Clone() *Surface {
	c := &Surface{pixmap: gg.NewPixmap(srf.Width(), srf.Height())}
	copy(c.pixmap.Data(), srf.pixmap.Data())
	return c
}
