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
	"math"

	"github.com/gogpu/gg"
	"github.com/orlok/cinderbridge/curated"
)

// NoActiveGradient is returned when a colour stop is added, or a gradient is
// applied, before any gradient has been selected.
const NoActiveGradient = "vg: no active gradient"

// Extend describes how a gradient is drawn outside of its defined range. The
// values are part of the C interface.
type Extend int

// List of valid Extend values.
const (
	ExtendNone Extend = iota
	ExtendRepeat
	ExtendReflect
	ExtendPad
)

func (e Extend) String() string {
	switch e {
	case ExtendNone:
		return "none"
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	case ExtendPad:
		return "pad"
	}
	return "unknown"
}

// gg has no equivalent for ExtendNone. the stops are padded and the area
// outside the range is masked by the brush returned from Gradient.brush()
func (e Extend) mode() gg.ExtendMode {
	switch e {
	case ExtendRepeat:
		return gg.ExtendRepeat
	case ExtendReflect:
		return gg.ExtendReflect
	}
	return gg.ExtendPad
}

// Gradient is a linear or radial colour gradient.
//
// A linear gradient runs from the start point to the end point. A radial
// gradient runs from the start circle to the end circle.
type Gradient struct {
	radial bool

	x0, y0, r0 float64
	x1, y1, r1 float64

	extend Extend
	stops  []gg.ColorStop
}

// NewLinear creates a linear gradient with no colour stops.
func NewLinear(sx, sy, ex, ey float64, extend Extend) *Gradient {
	return &Gradient{
		x0:     sx,
		y0:     sy,
		x1:     ex,
		y1:     ey,
		extend: extend,
	}
}

// NewRadial creates a radial gradient with no colour stops.
func NewRadial(scx, scy, sr, ecx, ecy, er float64, extend Extend) *Gradient {
	return &Gradient{
		radial: true,
		x0:     scx,
		y0:     scy,
		r0:     sr,
		x1:     ecx,
		y1:     ecy,
		r1:     er,
		extend: extend,
	}
}

// IsRadial returns true if the gradient is radial.
func (g *Gradient) IsRadial() bool {
	return g.radial
}

// Extend returns the extend mode of the gradient.
func (g *Gradient) Extend() Extend {
	return g.extend
}

// NumStops returns the number of colour stops added to the gradient.
func (g *Gradient) NumStops() int {
	return len(g.stops)
}

// AddStop adds a colour stop. The offset is clamped to the range 0 to 1.
// Stops with the same offset are kept in the order they were added.
func (g *Gradient) AddStop(offset, r, gr, b, a float64) {
	g.stops = append(g.stops, gg.ColorStop{
		Offset: min(1, max(0, offset)),
		Color:  gg.RGBA{R: r, G: gr, B: b, A: a},
	})
}

// brush returns a gg brush for the gradient with the gradient's geometry
// transformed into device space by the matrix.
func (g *Gradient) brush(m gg.Matrix) gg.Brush {
	p0 := m.TransformPoint(gg.Pt(g.x0, g.y0))
	p1 := m.TransformPoint(gg.Pt(g.x1, g.y1))

	if !g.radial {
		b := gg.NewLinearGradientBrush(p0.X, p0.Y, p1.X, p1.Y).SetExtend(g.extend.mode())
		for _, s := range g.stops {
			b.AddColorStop(s.Offset, s.Color)
		}
		if g.extend != ExtendNone {
			return b
		}
		return maskLinear(b, p0, p1)
	}

	// radii scale with the area of the transform
	scale := math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
	r0 := g.r0 * scale
	r1 := g.r1 * scale

	// the start circle's centre is the focus and the end circle's centre
	// is the centre of the gg gradient
	b := gg.NewRadialGradientBrush(p1.X, p1.Y, r0, r1).SetFocus(p0.X, p0.Y).SetExtend(g.extend.mode())
	for _, s := range g.stops {
		b.AddColorStop(s.Offset, s.Color)
	}
	if g.extend != ExtendNone || p0 != p1 || r0 == r1 {
		return b
	}
	return maskRadial(b, p1, r0, r1)
}

func maskLinear(b gg.Brush, p0, p1 gg.Point) gg.Brush {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return gg.Solid(gg.Transparent)
	}
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		t := ((x-p0.X)*dx + (y-p0.Y)*dy) / l2
		if t < 0 || t > 1 {
			return gg.Transparent
		}
		return b.ColorAt(x, y)
	})
}

// only concentric gradients are masked. other radial gradients with
// ExtendNone are drawn as if they were ExtendPad
func maskRadial(b gg.Brush, c gg.Point, r0, r1 float64) gg.Brush {
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		t := (math.Hypot(x-c.X, y-c.Y) - r0) / (r1 - r0)
		if t < 0 || t > 1 {
			return gg.Transparent
		}
		return b.ColorAt(x, y)
	})
}

// Selector is the active gradient. Setting a linear or radial gradient
// replaces the active gradient and the last one set is the one that is used.
//
// The zero value has no active gradient.
type Selector struct {
	linear *Gradient
	radial *Gradient
	active *Gradient
}

// Clear forgets both gradients. AddStop() and Active() fail until a gradient
// is set.
func (sel *Selector) Clear() {
	sel.linear = nil
	sel.radial = nil
	sel.active = nil
}

// Reset makes an empty linear gradient with no colour stops active.
func (sel *Selector) Reset() {
	sel.linear = NewLinear(0, 0, 0, 0, ExtendPad)
	sel.radial = nil
	sel.active = sel.linear
}

// SetLinear replaces the linear gradient and makes it active.
func (sel *Selector) SetLinear(sx, sy, ex, ey float64, extend Extend) {
	sel.linear = NewLinear(sx, sy, ex, ey, extend)
	sel.active = sel.linear
}

// SetRadial replaces the radial gradient and makes it active.
func (sel *Selector) SetRadial(scx, scy, sr, ecx, ecy, er float64, extend Extend) {
	sel.radial = NewRadial(scx, scy, sr, ecx, ecy, er, extend)
	sel.active = sel.radial
}

// AddStop adds a colour stop to the active gradient.
func (sel *Selector) AddStop(offset, r, g, b, a float64) error {
	if sel.active == nil {
		return curated.Errorf(NoActiveGradient)
	}
	sel.active.AddStop(offset, r, g, b, a)
	return nil
}

// Active returns the active gradient.
func (sel *Selector) Active() (*Gradient, error) {
	if sel.active == nil {
		return nil, curated.Errorf(NoActiveGradient)
	}
	return sel.active, nil
}
