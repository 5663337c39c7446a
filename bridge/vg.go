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
	"github.com/orlok/cinderbridge/vg"
)

// MakeContext creates a vector graphics context that draws into the surface.
// The context keeps the surface's pixels alive after the surface is freed.
func (s *Service) MakeContext(h Surface) (Context, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	srf, err := s.surfaces.Get(h)
	if err != nil {
		return 0, err
	}
	return s.contexts.Insert(vg.NewContext(srf)), nil
}

// FreeContext releases the context.
func (s *Service) FreeContext(h Context) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	c, err := s.contexts.Remove(h)
	if err != nil {
		return err
	}
	return c.Close()
}

func (s *Service) withContext(h Context, f func(c *vg.Context) error) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	c, err := s.contexts.Get(h)
	if err != nil {
		return err
	}
	return f(c)
}

// SetMatrix sets the transform of the context.
func (s *Service) SetMatrix(h Context, xx, yx, xy, yy, x0, y0 float64) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.SetMatrix(xx, yx, xy, yy, x0, y0)
		return nil
	})
}

// SetSolidPaint sets the paint of the context to a colour.
func (s *Service) SetSolidPaint(h Context, r, g, b, a float64) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.SetSolid(r, g, b, a)
		return nil
	})
}

// SetLinearGradient replaces the linear gradient and makes it the active
// gradient.
func (s *Service) SetLinearGradient(sx, sy, ex, ey float64, extend int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.gradients.SetLinear(sx, sy, ex, ey, vg.Extend(extend))
}

// SetRadialGradient replaces the radial gradient and makes it the active
// gradient.
func (s *Service) SetRadialGradient(scx, scy, sr, ecx, ecy, er float64, extend int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.gradients.SetRadial(scx, scy, sr, ecx, ecy, er, vg.Extend(extend))
}

// AddColorStop adds a colour stop to the active gradient.
func (s *Service) AddColorStop(offset, r, g, b, a float64) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.gradients.AddStop(offset, r, g, b, a)
}

// ApplyGradient sets the paint of the context to the active gradient. The
// colour stops are copied, so stops added later need another ApplyGradient.
func (s *Service) ApplyGradient(h Context) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	c, err := s.contexts.Get(h)
	if err != nil {
		return err
	}
	g, err := s.gradients.Active()
	if err != nil {
		return err
	}
	c.SetGradient(g)
	return nil
}

// SetSurfacePaint sets the paint of the context to the pixels of a surface.
func (s *Service) SetSurfacePaint(h Context, sh Surface) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	c, err := s.contexts.Get(h)
	if err != nil {
		return err
	}
	src, err := s.surfaces.Get(sh)
	if err != nil {
		return err
	}
	c.SetSurface(src)
	return nil
}

// SetStroke sets the line cap, line join and line width of the context.
func (s *Service) SetStroke(h Context, lineCap, lineJoin int, width float64) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.SetStroke(lineCap, lineJoin, width)
		return nil
	})
}

// ClearWithBrush paints the whole surface with the paint of the context.
func (s *Service) ClearWithBrush(h Context) error {
	return s.withContext(h, (*vg.Context).Paint)
}

// AddRect adds a rectangle to the path of the context.
func (s *Service) AddRect(h Context, left, top, width, height float64) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.Rect(left, top, width, height)
		return nil
	})
}

// AddCircle adds a circle to the path of the context.
func (s *Service) AddCircle(h Context, cx, cy, radius float64) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.Circle(cx, cy, radius)
		return nil
	})
}

// ClearPath empties the path of the context.
func (s *Service) ClearPath(h Context) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.ClearPath()
		return nil
	})
}

// MoveTo starts a new path at the point.
func (s *Service) MoveTo(h Context, x, y float64) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.MoveTo(x, y)
		return nil
	})
}

func (s *Service) LineTo(h Context, x, y float64) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.LineTo(x, y)
		return nil
	})
}

func (s *Service) QuadTo(h Context, x1, y1, x2, y2 float64) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.QuadTo(x1, y1, x2, y2)
		return nil
	})
}

func (s *Service) CurveTo(h Context, x1, y1, x2, y2, x3, y3 float64) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.CurveTo(x1, y1, x2, y2, x3, y3)
		return nil
	})
}

func (s *Service) ClosePath(h Context) error {
	return s.withContext(h, func(c *vg.Context) error {
		c.ClosePath()
		return nil
	})
}

// StrokePath strokes the path of the context. The path is kept.
func (s *Service) StrokePath(h Context) error {
	return s.withContext(h, (*vg.Context).StrokePreserve)
}

// FillPath fills the path of the context. The path is kept.
func (s *Service) FillPath(h Context) error {
	return s.withContext(h, (*vg.Context).FillPreserve)
}

// DrawVGText draws the string into the context with the baseline starting at
// (x, y). If fill is false the outlines of the glyphs replace the path
// instead.
func (s *Service) DrawVGText(h Context, fh Font, str string, x, y float64, fill bool) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	c, err := s.contexts.Get(h)
	if err != nil {
		return err
	}
	rec, err := s.fonts.Get(fh)
	if err != nil {
		return err
	}
	return c.Text(rec.font.Face(), str, x, y, fill)
}
