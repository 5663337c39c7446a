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

// Package font loads fonts for the two ways the bridge draws text.
//
// A Font holds a vector face, used by the vg package to fill or outline text
// and to measure it, and a glyph atlas: an image of every glyph the font is
// expected to draw, rasterised once at load time, used to draw text with
// textured quads on the GL device. Both are created from the same font data
// at the same size and are discarded together.
package font

import (
	"github.com/gogpu/gg/text"
	"github.com/orlok/cinderbridge/curated"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DecodeFailed is the error pattern for font data that can't be parsed.
const DecodeFailed = "font: decode failed: %v"

// Font is a font face at one size.
type Font struct {
	name string
	size float64

	source *text.FontSource
	face   text.Face

	// rasterising face. used for the atlas and for measuring
	raster xfont.Face

	atlas *Atlas
}

// Load parses the font data (TrueType or OpenType) and prepares a face and a
// glyph atlas at the size, in pixels per em.
func Load(data []byte, size float64) (*Font, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, err)
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, err)
	}

	raster, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, err)
	}

	fnt := &Font{
		name:   src.Name(),
		size:   size,
		source: src,
		face:   src.Face(size),
		raster: raster,
	}

	fnt.atlas, err = newAtlas(raster, atlasRunes())
	if err != nil {
		_ = raster.Close()
		return nil, curated.Errorf(DecodeFailed, err)
	}

	return fnt, nil
}

// Close releases the resources held by the font.
func (fnt *Font) Close() error {
	err := fnt.raster.Close()
	if serr := fnt.source.Close(); err == nil {
		err = serr
	}
	return err
}

// Name of the font as recorded in the font data.
func (fnt *Font) Name() string {
	return fnt.name
}

// Size of the font in pixels per em.
func (fnt *Font) Size() float64 {
	return fnt.size
}

// Face returns the vector face of the font.
func (fnt *Font) Face() text.Face {
	return fnt.face
}

// Atlas returns the glyph atlas of the font.
func (fnt *Font) Atlas() *Atlas {
	return fnt.atlas
}

// Info is the summary of a font returned by the C interface.
type Info struct {
	Name    string
	Size    float64
	Ascent  float64
	Descent float64
	Leading float64
}

// Info returns the name, size and vertical metrics of the font. Ascent and
// descent are both positive distances from the baseline.
func (fnt *Font) Info() Info {
	m := fnt.face.Metrics()
	return Info{
		Name:    fnt.name,
		Size:    fnt.size,
		Ascent:  m.Ascent,
		Descent: m.Descent,
		Leading: m.LineGap,
	}
}

// Extents is the ink box of a string relative to the origin of the first
// glyph on the baseline. Y grows downwards, so YBearing is negative for ink
// above the baseline.
type Extents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
}

// Extents measures the ink box of the string.
func (fnt *Font) Extents(s string) Extents {
	b, _ := xfont.BoundString(fnt.raster, s)
	if b.Empty() {
		return Extents{}
	}
	return Extents{
		XBearing: f26(b.Min.X),
		YBearing: f26(b.Min.Y),
		Width:    f26(b.Max.X - b.Min.X),
		Height:   f26(b.Max.Y - b.Min.Y),
	}
}

// Advance returns the width of the string as laid out by the atlas.
func (fnt *Font) Advance(s string) float64 {
	return f26(xfont.MeasureString(fnt.raster, s))
}

func f26(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
