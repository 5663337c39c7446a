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
	"image/color"
	"testing"

	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/handle"
	"github.com/orlok/cinderbridge/test"
	"github.com/orlok/cinderbridge/vg"
	"golang.org/x/image/font/gofont/goregular"
)

func TestGradientSelection(t *testing.T) {
	s, _, _ := newService(t)

	srf, err := s.CreateSurface(16, 16)
	test.DemandSuccess(t, err)
	ctx, err := s.MakeContext(srf)
	test.DemandSuccess(t, err)

	// nothing is selected before the application runs
	err = s.AddColorStop(0, 1, 0, 0, 1)
	test.ExpectSuccess(t, curated.Is(err, vg.NoActiveGradient))
	err = s.ApplyGradient(ctx)
	test.ExpectSuccess(t, curated.Is(err, vg.NoActiveGradient))

	// the radial gradient is set last and is the one that is used
	s.SetLinearGradient(0, 0, 16, 0, 3)
	s.SetRadialGradient(8, 8, 0, 8, 8, 8, 3)
	test.ExpectSuccess(t, s.AddColorStop(0, 0, 0, 1, 1))
	test.ExpectSuccess(t, s.AddColorStop(1, 0, 0, 1, 1))
	test.ExpectSuccess(t, s.ApplyGradient(ctx))
	test.ExpectSuccess(t, s.ClearWithBrush(ctx))

	rec, err := s.surfaces.Get(srf)
	test.DemandSuccess(t, err)
	c := rec.NRGBA().NRGBAAt(8, 8)
	test.ExpectApproximate(t, c.B, 255, 0.02)
	test.ExpectEquality(t, c.R, uint8(0))

	s.ResetGradients()
	g, err := s.gradients.Active()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.IsRadial(), false)
	test.ExpectEquality(t, g.NumStops(), 0)
}

func TestPaths(t *testing.T) {
	s, _, _ := newService(t)

	srf, err := s.CreateSurface(32, 32)
	test.DemandSuccess(t, err)
	ctx, err := s.MakeContext(srf)
	test.DemandSuccess(t, err)

	rec, err := s.surfaces.Get(srf)
	test.DemandSuccess(t, err)
	img := rec.NRGBA()

	test.ExpectSuccess(t, s.SetSolidPaint(ctx, 1, 0, 0, 1))
	test.ExpectSuccess(t, s.AddRect(ctx, 0, 0, 8, 8))
	test.ExpectSuccess(t, s.FillPath(ctx))
	test.ExpectEquality(t, img.NRGBAAt(4, 4), color.NRGBA{R: 255, A: 255})
	test.ExpectEquality(t, img.NRGBAAt(20, 20), color.NRGBA{})

	// the path is kept after filling
	test.ExpectSuccess(t, s.SetSolidPaint(ctx, 0, 1, 0, 1))
	test.ExpectSuccess(t, s.FillPath(ctx))
	test.ExpectEquality(t, img.NRGBAAt(4, 4), color.NRGBA{G: 255, A: 255})

	test.ExpectSuccess(t, s.MoveTo(ctx, 16, 16))
	test.ExpectSuccess(t, s.LineTo(ctx, 31, 16))
	test.ExpectSuccess(t, s.QuadTo(ctx, 31, 24, 31, 31))
	test.ExpectSuccess(t, s.CurveTo(ctx, 24, 31, 20, 31, 16, 31))
	test.ExpectSuccess(t, s.ClosePath(ctx))
	test.ExpectSuccess(t, s.FillPath(ctx))
	test.ExpectEquality(t, img.NRGBAAt(20, 20), color.NRGBA{G: 255, A: 255})

	test.ExpectSuccess(t, s.ClearPath(ctx))
	test.ExpectSuccess(t, s.SetStroke(ctx, vg.CapRound, vg.JoinRound, 4))
	test.ExpectSuccess(t, s.AddCircle(ctx, 24, 8, 4))
	test.ExpectSuccess(t, s.StrokePath(ctx))
	test.ExpectApproximate(t, img.NRGBAAt(28, 8).A, 255, 0.05)
	test.ExpectEquality(t, img.NRGBAAt(24, 8).A, uint8(0))

	test.ExpectSuccess(t, s.SetMatrix(ctx, 1, 0, 0, 1, 0, 0))
	test.ExpectSuccess(t, s.FreeContext(ctx))
	err = s.FreeContext(ctx)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))
}

func TestSurfacePaint(t *testing.T) {
	s, _, _ := newService(t)

	src, err := s.CreateSurface(4, 4)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.FillSurface(src, 0, 0, 1, 1, 0, 0, 4, 4))

	dst, err := s.CreateSurface(8, 8)
	test.DemandSuccess(t, err)
	ctx, err := s.MakeContext(dst)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, s.SetSurfacePaint(ctx, src))
	test.ExpectSuccess(t, s.ClearWithBrush(ctx))

	rec, err := s.surfaces.Get(dst)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec.NRGBA().NRGBAAt(1, 1), color.NRGBA{B: 255, A: 255})
	test.ExpectEquality(t, rec.NRGBA().NRGBAAt(6, 6), color.NRGBA{})

	test.ExpectSuccess(t, s.FreeSurface(src))
	err = s.SetSurfacePaint(ctx, src)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))
}

func TestVGText(t *testing.T) {
	s, _, dir := newService(t)
	writeResource(t, dir, "regular.ttf", goregular.TTF)

	fnt, err := s.LoadFont("regular.ttf", 24)
	test.DemandSuccess(t, err)

	srf, err := s.CreateSurface(64, 32)
	test.DemandSuccess(t, err)
	ctx, err := s.MakeContext(srf)
	test.DemandSuccess(t, err)

	rec, err := s.surfaces.Get(srf)
	test.DemandSuccess(t, err)

	inked := func() int {
		var n int
		img := rec.NRGBA()
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 0 {
				n++
			}
		}
		return n
	}

	// outlines only. nothing is drawn until the path is filled
	test.ExpectSuccess(t, s.SetSolidPaint(ctx, 1, 1, 1, 1))
	test.ExpectSuccess(t, s.DrawVGText(ctx, fnt, "Hi", 4, 24, false))
	test.ExpectEquality(t, inked(), 0)
	test.ExpectSuccess(t, s.FillPath(ctx))
	test.ExpectSuccess(t, inked() > 0)

	test.ExpectSuccess(t, s.FreeSurface(srf))
	srf, err = s.CreateSurface(64, 32)
	test.DemandSuccess(t, err)
	ctx, err = s.MakeContext(srf)
	test.DemandSuccess(t, err)
	rec, err = s.surfaces.Get(srf)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, s.SetSolidPaint(ctx, 1, 1, 1, 1))
	test.ExpectSuccess(t, s.DrawVGText(ctx, fnt, "Hi", 4, 24, true))
	test.ExpectSuccess(t, inked() > 0)
}

func TestFonts(t *testing.T) {
	s, _, dir := newService(t)
	writeResource(t, dir, "regular.ttf", goregular.TTF)
	writeResource(t, dir, "broken.ttf", []byte("not a font"))

	fnt, err := s.LoadFont("regular.ttf", 20)
	test.DemandSuccess(t, err)

	info, err := s.FontInfo(fnt)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, info.Name, "")
	test.ExpectEquality(t, info.Size, 20.0)
	test.ExpectSuccess(t, info.Ascent > 0)
	test.ExpectSuccess(t, info.Descent > 0)

	ext, err := s.FontExtents(fnt, "Hello")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ext.Width > 0)
	test.ExpectSuccess(t, ext.YBearing < 0)

	test.ExpectSuccess(t, s.FreeFont(fnt))
	_, err = s.FontInfo(fnt)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))

	_, err = s.LoadFont("broken.ttf", 20)
	test.ExpectFailure(t, err)
	_, err = s.LoadFont("missing.ttf", 20)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, s.Stats().Fonts, 0)
}
