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

// Package gfx defines the rendering device used by the bridge for its GL
// operations. The device works in the style of fixed-function OpenGL: a
// current colour, a current texture, a model-view matrix stack, a blend mode
// and a current render target.
//
// Textures, programs and framebuffers are referred to by device IDs. The
// bridge wraps these IDs in handles, so a Device never has to deal with stale
// references from outside of Go.
//
// Two implementations exist. Package gl21 drives an OpenGL 2.1 context and
// package headless is a pure Go rasteriser used where no window exists.
package gfx

import (
	"image"
)

// Sentinal error patterns.
const (
	ShaderCompile    = "gfx: shader compile: %s"
	ShaderLink       = "gfx: shader link: %s"
	Framebuffer      = "gfx: framebuffer: %s"
	DepthUnsupported = "gfx: depth buffer not supported"
	InvalidTexture   = "gfx: invalid texture (%dx%d)"
	UnknownTexture   = "gfx: unknown texture (%d)"
	UnknownProgram   = "gfx: unknown program (%d)"
	UnknownFBO       = "gfx: unknown framebuffer (%d)"
)

// BlendMode selects how drawing is combined with the render target. The
// values are part of the C interface.
type BlendMode int

// List of valid BlendMode values.
const (
	BlendAlpha BlendMode = iota
	BlendAdditive
)

func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "alpha"
	case BlendAdditive:
		return "additive"
	}
	return "unknown"
}

// Affine is a 2D transform for the model-view matrix:
//
//	x' = SX*x + SHX*y + TX
//	y' = SHY*x + SY*y + TY
type Affine struct {
	SX, SHY, SHX, SY, TX, TY float32
}

// Identity is the Affine that leaves points unchanged.
var Identity = Affine{SX: 1, SY: 1}

// Mul returns the transform that applies b and then a.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		SX:  a.SX*b.SX + a.SHX*b.SHY,
		SHY: a.SHY*b.SX + a.SY*b.SHY,
		SHX: a.SX*b.SHX + a.SHX*b.SY,
		SY:  a.SHY*b.SHX + a.SY*b.SY,
		TX:  a.SX*b.TX + a.SHX*b.TY + a.TX,
		TY:  a.SHY*b.TX + a.SY*b.TY + a.TY,
	}
}

// Apply transforms the point.
func (a Affine) Apply(x, y float32) (float32, float32) {
	return a.SX*x + a.SHX*y + a.TX, a.SHY*x + a.SY*y + a.TY
}

// Device is a rendering device. All methods must be called from the goroutine
// that created the device.
//
// Device IDs are never zero.
type Device interface {
	// the window space projection and viewport
	SetViewport(x, y, width, height int)
	SetMatricesWindow(width, height int)

	// the colour used by DrawRect() and DrawLine(). textures are modulated
	// by the colour
	SetColor(r, g, b, a float32)
	SetBlend(mode BlendMode)

	// CreateTexture creates a transparent RGBA texture.
	CreateTexture(width, height int) (uint32, error)

	// CreateTextureFromImage creates a texture with a copy of the image.
	CreateTextureFromImage(img *image.NRGBA) (uint32, error)

	// UpdateTexture copies the area of the image into the texture with the
	// top-left of the area at dst. The copy is clipped to the texture.
	UpdateTexture(id uint32, img *image.NRGBA, area image.Rectangle, dst image.Point) error

	FreeTexture(id uint32) error
	BindTexture(id uint32) error
	UnbindTexture()

	// the model-view matrix stack
	PushModelView()
	PopModelView()
	MultModelView(m Affine)

	// Clear the render target. Clearing the depth buffer is only meaningful
	// for devices that have one.
	Clear(r, g, b, a float32, depth bool)

	// DrawRect draws a quad. If a texture is bound the texture coordinates
	// (u1,v1) are at (x1,y1) and (u2,v2) are at (x2,y2). Swapping the
	// coordinates flips the texture.
	DrawRect(x1, y1, x2, y2, u1, v1, u2, v2 float32)

	DrawLine(x1, y1, x2, y2 float32)
	SetLineWidth(width float32)

	// CreateProgram compiles and links a shader program. Compile and link
	// failures are returned as ShaderCompile and ShaderLink errors that
	// carry the compiler's log.
	CreateProgram(vert string, frag string) (uint32, error)
	FreeProgram(id uint32) error

	// UseProgram binds the program. An ID of zero unbinds the current program.
	UseProgram(id uint32) error

	// uniform setters. a name that isn't used by the program is ignored
	SetUniform1i(id uint32, name string, v int32) error
	SetUniform1f(id uint32, name string, v float32) error
	SetUniform2f(id uint32, name string, v0, v1 float32) error
	SetUniform4f(id uint32, name string, v0, v1, v2, v3 float32) error

	// CreateFramebuffer creates an off-screen render target and the texture
	// that receives its colour output. The texture belongs to the
	// framebuffer and is released by FreeFramebuffer().
	CreateFramebuffer(width, height int, depth bool) (fbo uint32, tex uint32, err error)
	FreeFramebuffer(id uint32) error
	BindFramebuffer(id uint32) error
	UnbindFramebuffer()

	// Destroy releases every resource held by the device.
	Destroy()
}
