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
	"image"

	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/gfx"
)

// withDevice calls f with the critical section held.
func (s *Service) withDevice(f func(dev gfx.Device) error) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return err
	}
	return f(dev)
}

// SetViewport sets the area of the window that is drawn to.
func (s *Service) SetViewport(x, y, width, height int) error {
	return s.withDevice(func(dev gfx.Device) error {
		dev.SetViewport(x, y, width, height)
		return nil
	})
}

// SetMatricesWindow sets a projection with the origin in the top-left corner
// and one unit per pixel.
func (s *Service) SetMatricesWindow(width, height int) error {
	return s.withDevice(func(dev gfx.Device) error {
		dev.SetMatricesWindow(width, height)
		return nil
	})
}

// SetColor sets the current drawing colour.
func (s *Service) SetColor(r, g, b, a float32) error {
	return s.withDevice(func(dev gfx.Device) error {
		dev.SetColor(r, g, b, a)
		return nil
	})
}

// SetBlend selects alpha (0) or additive (1) blending. Other values are
// ignored.
func (s *Service) SetBlend(mode int) error {
	return s.withDevice(func(dev gfx.Device) error {
		switch gfx.BlendMode(mode) {
		case gfx.BlendAlpha, gfx.BlendAdditive:
			dev.SetBlend(gfx.BlendMode(mode))
		}
		return nil
	})
}

// CreateTexture creates a transparent texture.
func (s *Service) CreateTexture(width, height int) (Texture, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return 0, err
	}
	id, err := dev.CreateTexture(width, height)
	if err != nil {
		return 0, err
	}
	return s.textures.Insert(&texture{id: id, width: width, height: height}), nil
}

// FreeTexture releases the texture. A texture that belongs to a framebuffer
// is released with the framebuffer and can not be freed directly.
func (s *Service) FreeTexture(h Texture) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	tex, err := s.textures.Get(h)
	if err != nil {
		return err
	}
	if !tex.owner.IsNull() {
		return curated.Errorf(TextureBorrowed)
	}
	if _, err := s.textures.Remove(h); err != nil {
		return err
	}
	if s.dev == nil {
		return nil
	}
	return s.dev.FreeTexture(tex.id)
}

// UpdateTexture copies the area of the surface into the texture. The pixels
// are placed at the same position in the texture as they have in the surface.
func (s *Service) UpdateTexture(th Texture, sh Surface, x1, y1, x2, y2 int) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return err
	}
	tex, err := s.textures.Get(th)
	if err != nil {
		return err
	}
	srf, err := s.surfaces.Get(sh)
	if err != nil {
		return err
	}
	area := image.Rect(x1, y1, x2, y2)
	return dev.UpdateTexture(tex.id, srf.NRGBA(), area, area.Min)
}

// CreateTextureFromSurface creates a w×h texture from the area of the surface
// at (x, y). When the area is the whole surface the texture is created
// directly from the surface pixels. Otherwise an empty texture is created and
// then updated with the area.
func (s *Service) CreateTextureFromSurface(sh Surface, x, y, w, h int) (Texture, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return 0, err
	}
	srf, err := s.surfaces.Get(sh)
	if err != nil {
		return 0, err
	}

	var id uint32

	if x == 0 && y == 0 && w == srf.Width() && h == srf.Height() {
		id, err = dev.CreateTextureFromImage(srf.NRGBA())
		if err != nil {
			return 0, err
		}
		s.texturesDirect++
	} else {
		id, err = dev.CreateTexture(w, h)
		if err != nil {
			return 0, err
		}
		err = dev.UpdateTexture(id, srf.NRGBA(), image.Rect(x, y, x+w, y+h), image.Point{})
		if err != nil {
			_ = dev.FreeTexture(id)
			return 0, err
		}
		s.texturesUpdated++
	}

	return s.textures.Insert(&texture{id: id, width: w, height: h}), nil
}

// BindTexture enables texturing with the texture.
func (s *Service) BindTexture(h Texture) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return err
	}
	tex, err := s.textures.Get(h)
	if err != nil {
		return err
	}
	return dev.BindTexture(tex.id)
}

// UnbindTexture disables texturing. The handle is checked but otherwise
// unused.
func (s *Service) UnbindTexture(h Texture) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return err
	}
	if _, err := s.textures.Get(h); err != nil {
		return err
	}
	dev.UnbindTexture()
	return nil
}

// TextureFlipped returns true if the texture is stored upside down, as is the
// case for framebuffer textures.
func (s *Service) TextureFlipped(h Texture) (bool, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	tex, err := s.textures.Get(h)
	if err != nil {
		return false, err
	}
	return tex.flipped, nil
}

// PushModelView saves the model-view matrix.
func (s *Service) PushModelView() error {
	return s.withDevice(func(dev gfx.Device) error {
		dev.PushModelView()
		return nil
	})
}

// PopModelView restores the last saved model-view matrix.
func (s *Service) PopModelView() error {
	return s.withDevice(func(dev gfx.Device) error {
		dev.PopModelView()
		return nil
	})
}

// UpdateTransform multiplies the model-view matrix by the affine transform.
func (s *Service) UpdateTransform(sx, shy, shx, sy, tx, ty float32) error {
	return s.withDevice(func(dev gfx.Device) error {
		dev.MultModelView(gfx.Affine{SX: sx, SHY: shy, SHX: shx, SY: sy, TX: tx, TY: ty})
		return nil
	})
}

// Clear the render target to the colour.
func (s *Service) Clear(r, g, b, a float32, depth bool) error {
	return s.withDevice(func(dev gfx.Device) error {
		dev.Clear(r, g, b, a, depth)
		return nil
	})
}

// DrawRect draws a rectangle with the texture coordinates given for the two
// corners. Swapping the coordinates flips the texture.
func (s *Service) DrawRect(x1, y1, x2, y2, u1, v1, u2, v2 float32) error {
	return s.withDevice(func(dev gfx.Device) error {
		dev.DrawRect(x1, y1, x2, y2, u1, v1, u2, v2)
		return nil
	})
}

// DrawLine draws a line in the colour. The line width is only given to the
// device when it differs from the width of the previous line. The drawing
// colour is opaque white afterwards.
func (s *Service) DrawLine(x1, y1, x2, y2, r, g, b, a, width float32) error {
	return s.withDevice(func(dev gfx.Device) error {
		if width != s.lineWidth {
			dev.SetLineWidth(width)
			s.lineWidth = width
			s.lineWidthPushes++
		}
		dev.SetColor(r, g, b, a)
		dev.DrawLine(x1, y1, x2, y2)
		dev.SetColor(1, 1, 1, 1)
		return nil
	})
}

// DrawText draws the string with the font's glyph atlas, with the pen
// starting at (x, y) on the baseline. The colour is ignored and the text is
// drawn in the current drawing colour.
func (s *Service) DrawText(str string, r, g, b, a float32, x, y float32, fh Font) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return err
	}
	rec, err := s.fonts.Get(fh)
	if err != nil {
		return err
	}

	if rec.atlas == 0 {
		rec.atlas, err = dev.CreateTextureFromImage(rec.font.Atlas().Image().NRGBA())
		if err != nil {
			return err
		}
	}

	if err := dev.BindTexture(rec.atlas); err != nil {
		return err
	}
	defer dev.UnbindTexture()

	for _, q := range rec.font.Atlas().Layout(str, float64(x), float64(y)) {
		dev.DrawRect(float32(q.X1), float32(q.Y1), float32(q.X2), float32(q.Y2),
			float32(q.U1), float32(q.V1), float32(q.U2), float32(q.V2))
	}

	return nil
}

// CreateProgram compiles and links the shader sources.
func (s *Service) CreateProgram(vert string, frag string) (Program, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return 0, err
	}
	id, err := dev.CreateProgram(vert, frag)
	if err != nil {
		return 0, err
	}
	return s.programs.Insert(&program{id: id}), nil
}

// LoadProgram compiles and links the named shader resources.
func (s *Service) LoadProgram(vertName string, fragName string) (Program, error) {
	vert, err := s.loader.ReadFile(vertName)
	if err != nil {
		return 0, curated.Errorf(ShaderLoad, err)
	}
	frag, err := s.loader.ReadFile(fragName)
	if err != nil {
		return 0, curated.Errorf(ShaderLoad, err)
	}
	return s.CreateProgram(string(vert), string(frag))
}

// FreeProgram releases the program.
func (s *Service) FreeProgram(h Program) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	prg, err := s.programs.Remove(h)
	if err != nil {
		return err
	}
	if s.dev == nil {
		return nil
	}
	return s.dev.FreeProgram(prg.id)
}

// UseProgram binds the program. The null handle unbinds the current program.
func (s *Service) UseProgram(h Program) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return err
	}
	if h.IsNull() {
		return dev.UseProgram(0)
	}
	prg, err := s.programs.Get(h)
	if err != nil {
		return err
	}
	return dev.UseProgram(prg.id)
}

func (s *Service) withProgram(h Program, f func(dev gfx.Device, id uint32) error) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return err
	}
	prg, err := s.programs.Get(h)
	if err != nil {
		return err
	}
	return f(dev, prg.id)
}

// SetUniform1i sets an integer uniform of the program.
func (s *Service) SetUniform1i(h Program, name string, v int32) error {
	return s.withProgram(h, func(dev gfx.Device, id uint32) error {
		return dev.SetUniform1i(id, name, v)
	})
}

// SetUniform1f sets a float uniform of the program.
func (s *Service) SetUniform1f(h Program, name string, v float32) error {
	return s.withProgram(h, func(dev gfx.Device, id uint32) error {
		return dev.SetUniform1f(id, name, v)
	})
}

// SetUniform2f sets a vec2 uniform of the program.
func (s *Service) SetUniform2f(h Program, name string, v0, v1 float32) error {
	return s.withProgram(h, func(dev gfx.Device, id uint32) error {
		return dev.SetUniform2f(id, name, v0, v1)
	})
}

// SetUniform4f sets a vec4 uniform of the program.
func (s *Service) SetUniform4f(h Program, name string, v0, v1, v2, v3 float32) error {
	return s.withProgram(h, func(dev gfx.Device, id uint32) error {
		return dev.SetUniform4f(id, name, v0, v1, v2, v3)
	})
}

// CreateFramebuffer creates an off-screen render target. The returned texture
// belongs to the framebuffer: it is released when the framebuffer is freed
// and its handle is stale from then on. The texture is flipped.
func (s *Service) CreateFramebuffer(width, height int, depth bool) (Framebuffer, Texture, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return 0, 0, err
	}
	id, texID, err := dev.CreateFramebuffer(width, height, depth)
	if err != nil {
		return 0, 0, err
	}

	fb := &framebuffer{id: id}
	fh := s.framebuffers.Insert(fb)
	fb.tex = s.textures.Insert(&texture{
		id:      texID,
		width:   width,
		height:  height,
		flipped: true,
		owner:   fh,
	})

	return fh, fb.tex, nil
}

// FreeFramebuffer releases the framebuffer and its texture.
func (s *Service) FreeFramebuffer(h Framebuffer) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	fb, err := s.framebuffers.Remove(h)
	if err != nil {
		return err
	}
	if _, err := s.textures.Remove(fb.tex); err != nil {
		return err
	}
	if s.dev == nil {
		return nil
	}
	return s.dev.FreeFramebuffer(fb.id)
}

// BindFramebuffer directs drawing to the framebuffer.
func (s *Service) BindFramebuffer(h Framebuffer) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	dev, err := s.device()
	if err != nil {
		return err
	}
	fb, err := s.framebuffers.Get(h)
	if err != nil {
		return err
	}
	return dev.BindFramebuffer(fb.id)
}

// UnbindFramebuffer directs drawing back to the window.
func (s *Service) UnbindFramebuffer() error {
	return s.withDevice(func(dev gfx.Device) error {
		dev.UnbindFramebuffer()
		return nil
	})
}
