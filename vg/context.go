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
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/orlok/cinderbridge/surface"
)

// List of valid cap values for SetStroke(). The values are part of the C
// interface.
const (
	CapButt = iota
	CapRound
	CapSquare
)

// List of valid join values for SetStroke(). The values are part of the C
// interface.
const (
	JoinMiter = iota
	JoinRound
	JoinBevel
)

// Context draws vector graphics into a surface.
type Context struct {
	srf *surface.Surface

	// path, transform and stroke parameters
	dc *gg.Context

	// paints the entire surface. it always has the identity transform
	painter *gg.Context

	// the current paint. shared by dc and painter
	brush gg.Brush

	lineCap   int
	lineJoin  int
	lineWidth float64

	outlines *text.OutlineExtractor
}

// NewContext creates a context that draws into the surface. The context must
// not be used after the surface is discarded.
func NewContext(srf *surface.Surface) *Context {
	pm := srf.Pixmap()
	c := &Context{
		srf:       srf,
		dc:        gg.NewContext(pm.Width(), pm.Height(), gg.WithPixmap(pm)),
		painter:   gg.NewContext(pm.Width(), pm.Height(), gg.WithPixmap(pm)),
		outlines:  text.NewOutlineExtractor(),
		lineCap:   CapButt,
		lineJoin:  JoinMiter,
		lineWidth: 2.0,
	}
	c.dc.SetLineWidth(c.lineWidth)

	// initial paint is opaque black
	c.setBrush(gg.Solid(gg.RGBA{A: 1}))

	return c
}

// Surface returns the surface the context draws into.
func (c *Context) Surface() *surface.Surface {
	return c.srf
}

// Close releases the resources of the context. The surface is not affected.
func (c *Context) Close() error {
	err := c.dc.Close()
	if perr := c.painter.Close(); err == nil {
		err = perr
	}
	return err
}

func (c *Context) setBrush(b gg.Brush) {
	c.brush = b
	c.dc.SetFillBrush(b)
	c.dc.SetStrokeBrush(b)
	c.painter.SetFillBrush(b)
}

// SetMatrix replaces the transform. The coefficients are in the order
//
//	x' = xx*x + xy*y + x0
//	y' = yx*x + yy*y + y0
//
// Points already added to the path are not affected.
func (c *Context) SetMatrix(xx, yx, xy, yy, x0, y0 float64) {
	c.dc.SetTransform(gg.Matrix{
		A: xx, B: xy, C: x0,
		D: yx, E: yy, F: y0,
	})
}

// Matrix returns the current transform in the same order as SetMatrix().
func (c *Context) Matrix() (xx, yx, xy, yy, x0, y0 float64) {
	m := c.dc.GetTransform()
	return m.A, m.D, m.B, m.E, m.C, m.F
}

// SetSolid sets the paint to a single colour. The colour is not
// premultiplied.
func (c *Context) SetSolid(r, g, b, a float64) {
	c.setBrush(gg.Solid(gg.RGBA{R: r, G: g, B: b, A: a}))
}

// SetGradient sets the paint to the gradient. Colour stops added to the
// gradient after this call do not affect the paint.
func (c *Context) SetGradient(g *Gradient) {
	c.setBrush(g.brush(c.dc.GetTransform()))
}

// SetSurface sets the paint to the pixels of another surface, placed at the
// origin of user space. Outside of the surface the paint is transparent.
//
// The paint refers to the surface's pixels rather than a copy, so later
// changes to the surface are visible in later drawing.
func (c *Context) SetSurface(src *surface.Surface) {
	inv := c.dc.GetTransform().Invert()
	img := src.NRGBA()
	bounds := img.Rect

	c.setBrush(gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		p := inv.TransformPoint(gg.Pt(x, y))
		px := int(p.X)
		py := int(p.Y)
		if p.X < 0 || p.Y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
			return gg.Transparent
		}
		col := img.NRGBAAt(px, py)
		return gg.RGBA{
			R: float64(col.R) / 255,
			G: float64(col.G) / 255,
			B: float64(col.B) / 255,
			A: float64(col.A) / 255,
		}
	}))
}

// SetStroke sets the line cap, line join and line width used by
// StrokePreserve(). Unknown cap and join values leave the current value
// unchanged. The width is always applied.
func (c *Context) SetStroke(lineCap int, lineJoin int, width float64) {
	switch lineCap {
	case CapButt:
		c.dc.SetLineCap(gg.LineCapButt)
		c.lineCap = lineCap
	case CapRound:
		c.dc.SetLineCap(gg.LineCapRound)
		c.lineCap = lineCap
	case CapSquare:
		c.dc.SetLineCap(gg.LineCapSquare)
		c.lineCap = lineCap
	}

	switch lineJoin {
	case JoinMiter:
		c.dc.SetLineJoin(gg.LineJoinMiter)
		c.lineJoin = lineJoin
	case JoinRound:
		c.dc.SetLineJoin(gg.LineJoinRound)
		c.lineJoin = lineJoin
	case JoinBevel:
		c.dc.SetLineJoin(gg.LineJoinBevel)
		c.lineJoin = lineJoin
	}

	c.dc.SetLineWidth(width)
	c.lineWidth = width
}

// Stroke returns the stroke parameters in the form given to SetStroke().
func (c *Context) Stroke() (lineCap int, lineJoin int, width float64) {
	return c.lineCap, c.lineJoin, c.lineWidth
}

// Paint fills the entire surface with the current paint. The path is not
// changed.
func (c *Context) Paint() error {
	c.painter.ClearPath()
	c.painter.DrawRectangle(0, 0, float64(c.srf.Width()), float64(c.srf.Height()))
	return c.painter.Fill()
}
