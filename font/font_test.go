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

package font_test

import (
	"math"
	"testing"

	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/font"
	"github.com/orlok/cinderbridge/test"
	"golang.org/x/image/font/gofont/goregular"
)

func load(t *testing.T, size float64) *font.Font {
	t.Helper()
	fnt, err := font.Load(goregular.TTF, size)
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		_ = fnt.Close()
	})
	return fnt
}

func TestLoadFailure(t *testing.T) {
	_, err := font.Load([]byte("not a font"), 12)
	test.ExpectSuccess(t, curated.Is(err, font.DecodeFailed))

	_, err = font.Load(nil, 12)
	test.ExpectSuccess(t, curated.Is(err, font.DecodeFailed))
}

func TestInfo(t *testing.T) {
	fnt := load(t, 24)

	info := fnt.Info()
	test.ExpectInequality(t, info.Name, "")
	test.ExpectEquality(t, info.Size, 24.0)
	test.ExpectSuccess(t, info.Ascent > 0)
	test.ExpectSuccess(t, info.Descent > 0)
	test.ExpectSuccess(t, info.Ascent < 24)
	test.ExpectSuccess(t, info.Leading >= 0)

	// metrics scale with size
	big := load(t, 48).Info()
	test.ExpectApproximate(t, big.Ascent, info.Ascent*2, 0.05)
}

func TestExtents(t *testing.T) {
	fnt := load(t, 24)

	ext := fnt.Extents("H")
	test.ExpectSuccess(t, ext.Width > 0)
	test.ExpectSuccess(t, ext.Height > 0)

	// ink above the baseline has a negative y bearing
	test.ExpectSuccess(t, ext.YBearing < 0)
	test.ExpectSuccess(t, math.Abs(ext.YBearing+ext.Height) < 1)

	// a descender extends below the baseline
	ext = fnt.Extents("g")
	test.ExpectSuccess(t, ext.YBearing+ext.Height > 0)

	wide := fnt.Extents("HHHH")
	test.ExpectSuccess(t, wide.Width > ext.Width*2)

	test.ExpectEquality(t, fnt.Extents(""), font.Extents{})
}

func TestAtlas(t *testing.T) {
	fnt := load(t, 16)
	atl := fnt.Atlas()

	g, ok := atl.Glyph('A')
	test.DemandSuccess(t, ok)
	test.ExpectFailure(t, g.Area.Empty())
	test.ExpectSuccess(t, g.Advance > 0)
	test.ExpectSuccess(t, g.Offset.Y < 0)

	// the glyph has been rasterised into the alpha channel
	img := atl.Image().NRGBA()
	var ink bool
	for y := g.Area.Min.Y; y < g.Area.Max.Y; y++ {
		for x := g.Area.Min.X; x < g.Area.Max.X; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				ink = true
			}
		}
	}
	test.ExpectSuccess(t, ink)

	// space has an advance but no ink
	g, ok = atl.Glyph(' ')
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, g.Area.Empty())
	test.ExpectSuccess(t, g.Advance > 0)

	// latin-1 is in the atlas but other runes are not
	_, ok = atl.Glyph('é')
	test.ExpectSuccess(t, ok)
	_, ok = atl.Glyph('€')
	test.ExpectFailure(t, ok)
}

func TestLayout(t *testing.T) {
	fnt := load(t, 16)
	atl := fnt.Atlas()

	quads := atl.Layout("A B", 10, 20)
	test.DemandEquality(t, len(quads), 2)

	a := quads[0]
	b := quads[1]
	test.ExpectSuccess(t, b.X1 > a.X2)
	test.ExpectSuccess(t, a.Y1 < 20)
	test.ExpectSuccess(t, a.U1 >= 0 && a.U2 <= 1 && a.U1 < a.U2)
	test.ExpectSuccess(t, a.V1 >= 0 && a.V2 <= 1 && a.V1 < a.V2)

	// unknown runes are skipped
	test.ExpectEquality(t, len(atl.Layout("€", 0, 0)), 0)
}
