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

package vg_test

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg/text"
	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/surface"
	"github.com/orlok/cinderbridge/test"
	"github.com/orlok/cinderbridge/vg"
	"golang.org/x/image/font/gofont/goregular"
)

func newContext(t *testing.T, w, h int) (*vg.Context, *surface.Surface) {
	t.Helper()
	srf, err := surface.New(w, h)
	test.DemandSuccess(t, err)
	c := vg.NewContext(srf)
	t.Cleanup(func() {
		_ = c.Close()
	})
	return c, srf
}

func at(srf *surface.Surface, x, y int) color.NRGBA {
	return srf.NRGBA().NRGBAAt(x, y)
}

func transparent(srf *surface.Surface) bool {
	for _, v := range srf.NRGBA().Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

func TestSelector(t *testing.T) {
	var sel vg.Selector

	// no gradient has been set
	err := sel.AddStop(0, 1, 1, 1, 1)
	test.ExpectSuccess(t, curated.Is(err, vg.NoActiveGradient))
	_, err = sel.Active()
	test.ExpectSuccess(t, curated.Is(err, vg.NoActiveGradient))

	// last writer wins
	sel.SetLinear(0, 0, 10, 0, vg.ExtendPad)
	sel.SetRadial(5, 5, 0, 5, 5, 5, vg.ExtendNone)
	test.DemandSuccess(t, sel.AddStop(0.5, 1, 0, 0, 1))

	g, err := sel.Active()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, g.IsRadial())
	test.ExpectEquality(t, g.NumStops(), 1)
	test.ExpectEquality(t, g.Extend(), vg.ExtendNone)

	// setting a gradient discards the stops of the previous one of that kind
	sel.SetLinear(0, 0, 10, 0, vg.ExtendRepeat)
	g, _ = sel.Active()
	test.ExpectFailure(t, g.IsRadial())
	test.ExpectEquality(t, g.NumStops(), 0)

	sel.Reset()
	g, err = sel.Active()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, g.IsRadial())
	test.ExpectEquality(t, g.NumStops(), 0)

	// cleared selector behaves as if no gradient was ever set
	sel.Clear()
	err = sel.AddStop(0, 1, 1, 1, 1)
	test.ExpectSuccess(t, curated.Is(err, vg.NoActiveGradient))
	_, err = sel.Active()
	test.ExpectSuccess(t, curated.Is(err, vg.NoActiveGradient))
}

func TestPaintKeepsPath(t *testing.T) {
	c, srf := newContext(t, 16, 16)

	c.Rect(4, 4, 8, 8)

	c.SetSolid(1, 0, 0, 1)
	test.DemandSuccess(t, c.Paint())
	test.ExpectEquality(t, at(srf, 0, 0), color.NRGBA{R: 255, A: 255})
	test.ExpectEquality(t, at(srf, 15, 15), color.NRGBA{R: 255, A: 255})

	// the rectangle is still the path
	c.SetSolid(0, 1, 0, 1)
	test.DemandSuccess(t, c.FillPreserve())
	test.ExpectEquality(t, at(srf, 8, 8), color.NRGBA{G: 255, A: 255})
	test.ExpectEquality(t, at(srf, 1, 1), color.NRGBA{R: 255, A: 255})

	_, _, ok := c.CurrentPoint()
	test.ExpectSuccess(t, ok)
}

func TestMoveToClearsPath(t *testing.T) {
	c, srf := newContext(t, 16, 16)

	c.Rect(0, 0, 8, 8)
	c.MoveTo(8, 8)
	c.LineTo(16, 8)
	c.LineTo(16, 16)
	c.LineTo(8, 16)
	c.ClosePath()

	c.SetSolid(0, 0, 1, 1)
	test.DemandSuccess(t, c.FillPreserve())
	test.ExpectEquality(t, at(srf, 2, 2), color.NRGBA{})
	test.ExpectEquality(t, at(srf, 12, 12), color.NRGBA{B: 255, A: 255})

	c.ClearPath()
	_, _, ok := c.CurrentPoint()
	test.ExpectFailure(t, ok)
}

func TestMatrix(t *testing.T) {
	c, srf := newContext(t, 16, 16)

	// translate by (8,8)
	c.SetMatrix(1, 0, 0, 1, 8, 8)
	xx, yx, xy, yy, x0, y0 := c.Matrix()
	test.ExpectEquality(t, [6]float64{xx, yx, xy, yy, x0, y0}, [6]float64{1, 0, 0, 1, 8, 8})

	c.Rect(0, 0, 8, 8)
	c.SetSolid(1, 1, 1, 1)
	test.DemandSuccess(t, c.FillPreserve())
	test.ExpectEquality(t, at(srf, 2, 2), color.NRGBA{})
	test.ExpectEquality(t, at(srf, 12, 12), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestStroke(t *testing.T) {
	c, _ := newContext(t, 4, 4)

	cp, jn, w := c.Stroke()
	test.ExpectEquality(t, cp, vg.CapButt)
	test.ExpectEquality(t, jn, vg.JoinMiter)
	test.ExpectEquality(t, w, 2.0)

	c.SetStroke(vg.CapRound, vg.JoinBevel, 3)
	cp, jn, w = c.Stroke()
	test.ExpectEquality(t, cp, vg.CapRound)
	test.ExpectEquality(t, jn, vg.JoinBevel)
	test.ExpectEquality(t, w, 3.0)

	// unknown values are ignored but the width is still set
	c.SetStroke(10, -1, 5)
	cp, jn, w = c.Stroke()
	test.ExpectEquality(t, cp, vg.CapRound)
	test.ExpectEquality(t, jn, vg.JoinBevel)
	test.ExpectEquality(t, w, 5.0)
}

func TestLinearGradient(t *testing.T) {
	c, srf := newContext(t, 32, 4)

	g := vg.NewLinear(0, 0, 32, 0, vg.ExtendPad)
	g.AddStop(0, 0, 0, 0, 1)
	g.AddStop(1, 1, 1, 1, 1)
	c.SetGradient(g)

	// stops added after the gradient was applied are not used
	g.AddStop(0.5, 1, 0, 0, 1)

	test.DemandSuccess(t, c.Paint())

	left := at(srf, 1, 1)
	right := at(srf, 30, 1)
	test.ExpectSuccess(t, left.R < right.R)
	test.ExpectEquality(t, left.R, left.G)
	test.ExpectEquality(t, right.A, uint8(255))
}

func TestGradientExtendNone(t *testing.T) {
	c, srf := newContext(t, 32, 4)

	g := vg.NewLinear(0, 0, 16, 0, vg.ExtendNone)
	g.AddStop(0, 1, 0, 0, 1)
	g.AddStop(1, 1, 0, 0, 1)
	c.SetGradient(g)
	test.DemandSuccess(t, c.Paint())

	test.ExpectEquality(t, at(srf, 4, 1).A, uint8(255))
	test.ExpectEquality(t, at(srf, 28, 1), color.NRGBA{})

	// pad extends the end colour
	c2, srf2 := newContext(t, 32, 4)
	g = vg.NewLinear(0, 0, 16, 0, vg.ExtendPad)
	g.AddStop(0, 1, 0, 0, 1)
	g.AddStop(1, 1, 0, 0, 1)
	c2.SetGradient(g)
	test.DemandSuccess(t, c2.Paint())
	test.ExpectEquality(t, at(srf2, 28, 1).A, uint8(255))
}

func TestSurfacePaint(t *testing.T) {
	c, srf := newContext(t, 8, 8)

	src, err := surface.New(4, 4)
	test.DemandSuccess(t, err)
	src.Fill(color.NRGBA{G: 255, A: 255}, src.Bounds())

	c.SetSurface(src)
	test.DemandSuccess(t, c.Paint())
	test.ExpectEquality(t, at(srf, 1, 1), color.NRGBA{G: 255, A: 255})
	test.ExpectEquality(t, at(srf, 6, 6), color.NRGBA{})
}

func TestText(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	test.DemandSuccess(t, err)
	face := src.Face(24)

	// path only. nothing is drawn
	c, srf := newContext(t, 64, 32)
	test.DemandSuccess(t, c.Text(face, "Hi", 4, 24, false))
	_, _, ok := c.CurrentPoint()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, transparent(srf))

	// the path can be filled by the caller
	test.DemandSuccess(t, c.FillPreserve())
	test.ExpectFailure(t, transparent(srf))

	// filled text leaves no path
	c, srf = newContext(t, 64, 32)
	c.Rect(0, 0, 2, 2)
	test.DemandSuccess(t, c.Text(face, "Hi", 4, 24, true))
	_, _, ok = c.CurrentPoint()
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, transparent(srf))

	// the rectangle was discarded before the text was drawn
	test.ExpectEquality(t, at(srf, 0, 0), color.NRGBA{})
}
