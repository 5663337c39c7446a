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

package vg

import (
	"github.com/gogpu/gg/text"
	"github.com/orlok/cinderbridge/curated"
)

// GlyphFailed is the error pattern for a glyph outline that could not be
// extracted from a font.
const GlyphFailed = "vg: glyph %d: %v"

// Text draws the string with the baseline of the first glyph at (x, y). The
// path is cleared first.
//
// If fill is true the text is filled with the current paint and the path is
// left empty. Otherwise the outlines of the glyphs become the path, ready to
// be stroked or filled by the caller.
func (c *Context) Text(face text.Face, s string, x, y float64, fill bool) error {
	c.dc.ClearPath()

	if err := c.textPath(face, s, x, y); err != nil {
		c.dc.ClearPath()
		return err
	}

	if fill {
		return c.dc.Fill()
	}

	return nil
}

// textPath appends the outline of each shaped glyph to the path.
func (c *Context) textPath(face text.Face, s string, x, y float64) error {
	parsed := face.Source().Parsed()

	for _, g := range text.Shape(s, face) {
		o, err := c.outlines.ExtractOutline(parsed, g.GID, face.Size())
		if err != nil {
			return curated.Errorf(GlyphFailed, g.GID, err)
		}
		if o == nil || o.IsEmpty() {
			continue
		}

		ox := x + g.X
		oy := y + g.Y

		open := false
		for _, seg := range o.Segments {
			p := seg.Points
			switch seg.Op {
			case text.OutlineOpMoveTo:
				if open {
					c.dc.ClosePath()
				}
				c.dc.MoveTo(ox+float64(p[0].X), oy+float64(p[0].Y))
				open = true
			case text.OutlineOpLineTo:
				c.dc.LineTo(ox+float64(p[0].X), oy+float64(p[0].Y))
			case text.OutlineOpQuadTo:
				c.dc.QuadraticTo(ox+float64(p[0].X), oy+float64(p[0].Y),
					ox+float64(p[1].X), oy+float64(p[1].Y))
			case text.OutlineOpCubicTo:
				c.dc.CubicTo(ox+float64(p[0].X), oy+float64(p[0].Y),
					ox+float64(p[1].X), oy+float64(p[1].Y),
					ox+float64(p[2].X), oy+float64(p[2].Y))
			}
		}
		if open {
			c.dc.ClosePath()
		}
	}

	return nil
}
