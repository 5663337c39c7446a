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
	"bytes"
	"image/color"
	"testing"

	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/gfx"
	"github.com/orlok/cinderbridge/handle"
	"github.com/orlok/cinderbridge/resources"
	"github.com/orlok/cinderbridge/test"
	"golang.org/x/image/font/gofont/goregular"
)

const vertexWGSL = `
@vertex
fn vs_main() -> @builtin(position) vec4<f32> {
	return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`

const fragmentWGSL = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
	return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func TestTextureFastPath(t *testing.T) {
	s, dev, _ := newService(t)

	// the same 4x4 pattern on its own and in the middle of a larger surface
	small, err := s.CreateSurface(4, 4)
	test.DemandSuccess(t, err)
	large, err := s.CreateSurface(12, 12)
	test.DemandSuccess(t, err)

	for y := range 4 {
		for x := range 4 {
			r := float32(x) / 3
			g := float32(y) / 3
			test.DemandSuccess(t, s.FillSurface(small, r, g, 0.5, 1, x, y, 1, 1))
			test.DemandSuccess(t, s.FillSurface(large, r, g, 0.5, 1, x+4, y+4, 1, 1))
		}
	}

	direct, err := s.CreateTextureFromSurface(small, 0, 0, 4, 4)
	test.DemandSuccess(t, err)
	updated, err := s.CreateTextureFromSurface(large, 4, 4, 4, 4)
	test.DemandSuccess(t, err)

	st := s.Stats()
	test.ExpectEquality(t, st.TexturesDirect, 1)
	test.ExpectEquality(t, st.TexturesUpdated, 1)

	a, err := s.textures.Get(direct)
	test.DemandSuccess(t, err)
	b, err := s.textures.Get(updated)
	test.DemandSuccess(t, err)

	ta, ok := dev.Texture(a.id)
	test.DemandEquality(t, ok, true)
	tb, ok := dev.Texture(b.id)
	test.DemandEquality(t, ok, true)

	test.ExpectEquality(t, ta.Width(), 4)
	test.ExpectEquality(t, tb.Width(), 4)
	test.ExpectSuccess(t, bytes.Equal(ta.NRGBA().Pix, tb.NRGBA().Pix))
}

func TestUpdateTexture(t *testing.T) {
	s, dev, _ := newService(t)

	srf, err := s.CreateSurface(8, 8)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.FillSurface(srf, 1, 0, 0, 1, 0, 0, 8, 8))

	tex, err := s.CreateTexture(8, 8)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.UpdateTexture(tex, srf, 2, 2, 4, 4))

	rec, err := s.textures.Get(tex)
	test.DemandSuccess(t, err)
	img, ok := dev.Texture(rec.id)
	test.DemandEquality(t, ok, true)

	// the area keeps its position
	test.ExpectEquality(t, img.NRGBA().NRGBAAt(2, 2), color.NRGBA{R: 255, A: 255})
	test.ExpectEquality(t, img.NRGBA().NRGBAAt(3, 3), color.NRGBA{R: 255, A: 255})
	test.ExpectEquality(t, img.NRGBA().NRGBAAt(1, 1), color.NRGBA{})
	test.ExpectEquality(t, img.NRGBA().NRGBAAt(4, 4), color.NRGBA{})
}

func TestTextureHandles(t *testing.T) {
	s, dev, _ := newService(t)

	tex, err := s.CreateTexture(4, 4)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.BindTexture(tex))
	test.ExpectInequality(t, dev.BoundTexture(), 0)
	test.ExpectSuccess(t, s.UnbindTexture(tex))
	test.ExpectEquality(t, dev.BoundTexture(), 0)

	n := dev.NumTextures()
	test.ExpectSuccess(t, s.FreeTexture(tex))
	test.ExpectEquality(t, dev.NumTextures(), n-1)

	// double free
	err = s.FreeTexture(tex)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))

	err = s.BindTexture(tex)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))

	err = s.BindTexture(0)
	test.ExpectSuccess(t, curated.Is(err, handle.Null))
}

func TestFramebuffer(t *testing.T) {
	s, dev, _ := newService(t)

	fb, tex, err := s.CreateFramebuffer(16, 16, false)
	test.DemandSuccess(t, err)

	flipped, err := s.TextureFlipped(tex)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, flipped)

	// the texture belongs to the framebuffer
	err = s.FreeTexture(tex)
	test.ExpectSuccess(t, curated.Is(err, TextureBorrowed))
	test.ExpectSuccess(t, s.BindTexture(tex))

	test.ExpectSuccess(t, s.BindFramebuffer(fb))
	test.ExpectInequality(t, dev.BoundFramebuffer(), 0)
	test.ExpectSuccess(t, s.Clear(0, 0, 1, 1, false))
	test.ExpectEquality(t, dev.Target().NRGBA().NRGBAAt(0, 0), color.NRGBA{B: 255, A: 255})
	test.ExpectSuccess(t, s.UnbindFramebuffer())
	test.ExpectEquality(t, dev.BoundFramebuffer(), 0)

	test.ExpectSuccess(t, s.FreeFramebuffer(fb))

	// the texture was released with the framebuffer
	err = s.BindTexture(tex)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))
	err = s.FreeTexture(tex)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))
	err = s.FreeFramebuffer(fb)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))

	test.ExpectEquality(t, s.Stats().Textures, 0)
	test.ExpectEquality(t, s.Stats().Framebuffers, 0)
}

func TestFramebufferFailure(t *testing.T) {
	s, _, _ := newService(t)

	_, _, err := s.CreateFramebuffer(16, 16, true)
	test.ExpectSuccess(t, curated.Is(err, gfx.DepthUnsupported))

	_, _, err = s.CreateFramebuffer(0, 16, false)
	test.ExpectSuccess(t, curated.Is(err, gfx.Framebuffer))

	test.ExpectEquality(t, s.Stats().Framebuffers, 0)
	test.ExpectEquality(t, s.Stats().Textures, 0)
}

func TestDrawLine(t *testing.T) {
	s, dev, _ := newService(t)

	test.ExpectSuccess(t, s.DrawLine(0, 0, 10, 10, 1, 0, 0, 1, 2))
	test.ExpectSuccess(t, s.DrawLine(0, 10, 10, 0, 0, 1, 0, 1, 2))
	test.ExpectSuccess(t, s.DrawLine(0, 5, 10, 5, 0, 0, 1, 1, 3))

	w, n := dev.LineWidth()
	test.ExpectEquality(t, w, 3)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, s.Stats().LineWidthPushes, 2)

	// colour is restored after each line
	test.ExpectEquality(t, dev.Color(), [4]float32{1, 1, 1, 1})
}

func TestDeviceState(t *testing.T) {
	s, dev, _ := newService(t)

	test.ExpectSuccess(t, s.SetColor(0.5, 0.25, 0, 1))
	test.ExpectEquality(t, dev.Color(), [4]float32{0.5, 0.25, 0, 1})

	test.ExpectSuccess(t, s.SetBlend(1))
	test.ExpectEquality(t, dev.Blend(), gfx.BlendAdditive)
	test.ExpectSuccess(t, s.SetBlend(7))
	test.ExpectEquality(t, dev.Blend(), gfx.BlendAdditive)
	test.ExpectSuccess(t, s.SetBlend(0))
	test.ExpectEquality(t, dev.Blend(), gfx.BlendAlpha)

	test.ExpectSuccess(t, s.PushModelView())
	test.ExpectSuccess(t, s.UpdateTransform(2, 0, 0, 2, 10, 20))
	test.ExpectEquality(t, dev.ModelView(), gfx.Affine{SX: 2, SY: 2, TX: 10, TY: 20})
	test.ExpectSuccess(t, s.PopModelView())
	test.ExpectEquality(t, dev.ModelView(), gfx.Identity)

	test.ExpectSuccess(t, s.SetViewport(0, 0, 32, 16))
	test.ExpectEquality(t, dev.Viewport().Dx(), 32)
	test.ExpectEquality(t, dev.Viewport().Dy(), 16)
}

func TestPrograms(t *testing.T) {
	s, dev, dir := newService(t)

	prg, err := s.CreateProgram(vertexWGSL, fragmentWGSL)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, s.UseProgram(prg))
	test.ExpectInequality(t, dev.BoundProgram(), 0)
	test.ExpectSuccess(t, s.UseProgram(0))
	test.ExpectEquality(t, dev.BoundProgram(), 0)

	test.ExpectSuccess(t, s.SetUniform4f(prg, "tint", 1, 0.5, 0.25, 1))
	test.ExpectSuccess(t, s.SetUniform1i(prg, "sampler", 3))

	rec, err := s.programs.Get(prg)
	test.DemandSuccess(t, err)
	v, ok := dev.Uniform(rec.id, "tint")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, len(v), 4)

	test.ExpectSuccess(t, s.FreeProgram(prg))
	err = s.UseProgram(prg)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))
	err = s.SetUniform1f(prg, "time", 1)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))

	// compile errors carry the compiler log
	_, err = s.CreateProgram(vertexWGSL, "@fragment fn fs_main( -> {")
	test.ExpectSuccess(t, curated.Is(err, gfx.ShaderCompile))

	// programs from resources
	writeResource(t, dir, "plain.vert", []byte(vertexWGSL))
	writeResource(t, dir, "plain.frag", []byte(fragmentWGSL))
	prg, err = s.LoadProgram("plain.vert", "plain.frag")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, s.FreeProgram(prg))

	_, err = s.LoadProgram("plain.vert", "missing.frag")
	test.ExpectSuccess(t, curated.Is(err, ShaderLoad))
	test.ExpectSuccess(t, curated.Has(err, resources.NotFound))
}

func TestDrawText(t *testing.T) {
	s, dev, dir := newService(t)
	writeResource(t, dir, "regular.ttf", goregular.TTF)

	fnt, err := s.LoadFont("regular.ttf", 16)
	test.DemandSuccess(t, err)

	n := dev.NumTextures()
	test.ExpectSuccess(t, s.DrawText("Hello", 1, 0, 0, 1, 4, 20, fnt))

	// the atlas is uploaded on first use only
	test.ExpectEquality(t, dev.NumTextures(), n+1)
	test.ExpectSuccess(t, s.DrawText("World", 1, 0, 0, 1, 4, 40, fnt))
	test.ExpectEquality(t, dev.NumTextures(), n+1)
	test.ExpectEquality(t, dev.BoundTexture(), 0)

	test.ExpectSuccess(t, s.FreeFont(fnt))
	test.ExpectEquality(t, dev.NumTextures(), n)

	err = s.DrawText("Hello", 1, 0, 0, 1, 4, 20, fnt)
	test.ExpectSuccess(t, curated.Is(err, handle.Stale))
}
