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

package font

import (
	"fmt"
	"image"
	"image/color"
	"unicode"

	"github.com/orlok/cinderbridge/surface"
	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// width of the atlas image. the height depends on the number and size of the
// glyphs
const atlasWidth = 512

// space between glyphs in the atlas so that filtering doesn't bleed one glyph
// into another
const atlasPadding = 1

// atlasRunes returns the printable ASCII and Latin-1 characters.
func atlasRunes() []rune {
	var runes []rune
	for r := rune(0x20); r <= 0xff; r++ {
		if unicode.IsPrint(r) {
			runes = append(runes, r)
		}
	}
	return runes
}

// Glyph is the location of a rasterised glyph in the atlas.
type Glyph struct {
	// area of the atlas image containing the glyph. empty for glyphs with
	// no ink, such as the space character
	Area image.Rectangle

	// position of the top-left of Area relative to the pen position on
	// the baseline
	Offset image.Point

	Advance float64
}

// Atlas is an image containing a set of rasterised glyphs. The image is white
// and the glyph shapes are in the alpha channel, so the colour of the text is
// chosen by the device's draw colour.
type Atlas struct {
	image  *surface.Surface
	glyphs map[rune]Glyph
	kern   func(r0, r1 rune) float64
}

func newAtlas(face xfont.Face, runes []rune) (*Atlas, error) {
	type raster struct {
		r       rune
		dr      image.Rectangle
		advance fixed.Int26_6
	}

	rasters := make([]raster, 0, len(runes))
	for _, r := range runes {
		dr, _, _, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		rasters = append(rasters, raster{r: r, dr: dr, advance: advance})
	}

	// shelf packing. glyphs are placed left to right and a new shelf is
	// started when a glyph doesn't fit
	var x, y, shelf int
	areas := make([]image.Rectangle, len(rasters))
	for i, g := range rasters {
		w := g.dr.Dx()
		h := g.dr.Dy()
		if w == 0 || h == 0 {
			continue
		}
		if w+2*atlasPadding > atlasWidth {
			return nil, fmt.Errorf("glyph %q too wide for atlas", g.r)
		}
		if x+w+atlasPadding > atlasWidth {
			x = 0
			y += shelf
			shelf = 0
		}
		areas[i] = image.Rect(x+atlasPadding, y+atlasPadding, x+atlasPadding+w, y+atlasPadding+h)
		x += w + atlasPadding
		shelf = max(shelf, h+atlasPadding)
	}

	img, err := surface.New(atlasWidth, max(1, y+shelf+atlasPadding))
	if err != nil {
		return nil, err
	}

	atl := &Atlas{
		image:  img,
		glyphs: make(map[rune]Glyph, len(rasters)),
		kern: func(r0, r1 rune) float64 {
			return f26(face.Kern(r0, r1))
		},
	}

	white := image.NewUniform(color.White)
	dst := img.NRGBA()
	for i, g := range rasters {
		if !areas[i].Empty() {
			// the mask is only valid until the next call to Glyph()
			_, mask, maskp, _, _ := face.Glyph(fixed.Point26_6{}, g.r)
			draw.DrawMask(dst, areas[i], white, image.Point{}, mask, maskp, draw.Over)
		}
		atl.glyphs[g.r] = Glyph{
			Area:    areas[i],
			Offset:  g.dr.Min,
			Advance: f26(g.advance),
		}
	}

	return atl, nil
}

// Image returns the atlas image.
func (atl *Atlas) Image() *surface.Surface {
	return atl.image
}

// Glyph returns the glyph for the rune. The ok value is false if the rune is
// not in the atlas.
func (atl *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := atl.glyphs[r]
	return g, ok
}

// Quad is a rectangle of the screen and the matching rectangle of the atlas.
// Texture coordinates are normalised to the size of the atlas image.
type Quad struct {
	X1, Y1, X2, Y2 float64
	U1, V1, U2, V2 float64
}

// Layout returns the quads that draw the string with the pen starting at (x,
// y) on the baseline. Runes that are not in the atlas are skipped without
// advancing the pen.
func (atl *Atlas) Layout(s string, x, y float64) []Quad {
	w := float64(atl.image.Width())
	h := float64(atl.image.Height())

	var quads []Quad
	prev := rune(-1)
	for _, r := range s {
		g, ok := atl.glyphs[r]
		if !ok {
			continue
		}
		if prev >= 0 {
			x += atl.kern(prev, r)
		}
		prev = r

		if !g.Area.Empty() {
			x1 := x + float64(g.Offset.X)
			y1 := y + float64(g.Offset.Y)
			quads = append(quads, Quad{
				X1: x1,
				Y1: y1,
				X2: x1 + float64(g.Area.Dx()),
				Y2: y1 + float64(g.Area.Dy()),
				U1: float64(g.Area.Min.X) / w,
				V1: float64(g.Area.Min.Y) / h,
				U2: float64(g.Area.Max.X) / w,
				V2: float64(g.Area.Max.Y) / h,
			})
		}

		x += g.Advance
	}

	return quads
}
