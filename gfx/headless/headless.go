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

// Package headless implements gfx.Device without a GPU. Textures and render
// targets are surfaces and drawing is done in software.
//
// Shader programs are WGSL rather than GLSL. Sources are compiled with naga
// so that compile errors are reported in the same way as a GL driver would
// report them, but programs have no effect on drawing. Uniform values are
// recorded and can be inspected.
//
// The device has no depth buffer and ignores the viewport. Coordinates are
// in pixels of the current render target, which is the projection set by
// SetMatricesWindow() on a GL device.
package headless

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/naga"
	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/gfx"
	"github.com/orlok/cinderbridge/surface"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

type program struct {
	uniforms map[string][]float32
}

type framebuffer struct {
	tex uint32
}

var _ gfx.Device = (*Device)(nil)

// Device is a software implementation of gfx.Device.
type Device struct {
	screen *surface.Surface
	target *surface.Surface
	fbo    uint32

	textures map[uint32]*surface.Surface
	programs map[uint32]*program
	fbos     map[uint32]framebuffer
	lastID   uint32

	color     [4]float32
	blend     gfx.BlendMode
	texture   uint32
	program   uint32
	lineWidth float32
	viewport  image.Rectangle
	modelview []gfx.Affine

	// number of times the line width has been set
	lineWidthChanges int
}

// NewDevice creates a device with a screen of the given size.
func NewDevice(width, height int) (*Device, error) {
	screen, err := surface.New(width, height)
	if err != nil {
		return nil, err
	}

	dev := &Device{
		screen:    screen,
		target:    screen,
		textures:  make(map[uint32]*surface.Surface),
		programs:  make(map[uint32]*program),
		fbos:      make(map[uint32]framebuffer),
		color:     [4]float32{1, 1, 1, 1},
		lineWidth: 1,
		viewport:  screen.Bounds(),
		modelview: []gfx.Affine{gfx.Identity},
	}

	return dev, nil
}

func (dev *Device) newID() uint32 {
	dev.lastID++
	return dev.lastID
}

// Screen returns the surface that is drawn to when no framebuffer is bound.
func (dev *Device) Screen() *surface.Surface {
	return dev.screen
}

// Target returns the current render target.
func (dev *Device) Target() *surface.Surface {
	return dev.target
}

// Texture returns the pixels of a texture.
func (dev *Device) Texture(id uint32) (*surface.Surface, bool) {
	tex, ok := dev.textures[id]
	return tex, ok
}

// NumTextures returns the number of live textures, including those belonging
// to framebuffers.
func (dev *Device) NumTextures() int {
	return len(dev.textures)
}

// BoundTexture returns the ID of the bound texture. Zero if no texture is bound.
func (dev *Device) BoundTexture() uint32 {
	return dev.texture
}

// BoundProgram returns the ID of the bound program. Zero if no program is bound.
func (dev *Device) BoundProgram() uint32 {
	return dev.program
}

// BoundFramebuffer returns the ID of the bound framebuffer. Zero if drawing is
// to the screen.
func (dev *Device) BoundFramebuffer() uint32 {
	return dev.fbo
}

// Uniform returns the value last set for the uniform.
func (dev *Device) Uniform(id uint32, name string) ([]float32, bool) {
	prg, ok := dev.programs[id]
	if !ok {
		return nil, false
	}
	v, ok := prg.uniforms[name]
	return v, ok
}

// Color returns the current colour.
func (dev *Device) Color() [4]float32 {
	return dev.color
}

// Blend returns the current blend mode.
func (dev *Device) Blend() gfx.BlendMode {
	return dev.blend
}

// LineWidth returns the current line width and the number of times it has
// been set.
func (dev *Device) LineWidth() (float32, int) {
	return dev.lineWidth, dev.lineWidthChanges
}

// ModelView returns the matrix at the top of the model-view stack.
func (dev *Device) ModelView() gfx.Affine {
	return dev.modelview[len(dev.modelview)-1]
}

// Viewport returns the last viewport set.
func (dev *Device) Viewport() image.Rectangle {
	return dev.viewport
}

// SetViewport implements the gfx.Device interface.
func (dev *Device) SetViewport(x, y, width, height int) {
	dev.viewport = image.Rect(x, y, x+width, y+height)
}

// SetMatricesWindow implements the gfx.Device interface. The model-view matrix
// is reset.
func (dev *Device) SetMatricesWindow(width, height int) {
	dev.modelview[len(dev.modelview)-1] = gfx.Identity
}

// SetColor implements the gfx.Device interface.
func (dev *Device) SetColor(r, g, b, a float32) {
	dev.color = [4]float32{r, g, b, a}
}

// SetBlend implements the gfx.Device interface.
func (dev *Device) SetBlend(mode gfx.BlendMode) {
	dev.blend = mode
}

// CreateTexture implements the gfx.Device interface.
func (dev *Device) CreateTexture(width, height int) (uint32, error) {
	tex, err := surface.New(width, height)
	if err != nil {
		return 0, curated.Errorf(gfx.InvalidTexture, width, height)
	}
	id := dev.newID()
	dev.textures[id] = tex
	return id, nil
}

// CreateTextureFromImage implements the gfx.Device interface.
func (dev *Device) CreateTextureFromImage(img *image.NRGBA) (uint32, error) {
	tex, err := surface.FromImage(img)
	if err != nil {
		return 0, curated.Errorf(gfx.InvalidTexture, img.Rect.Dx(), img.Rect.Dy())
	}
	id := dev.newID()
	dev.textures[id] = tex
	return id, nil
}

// UpdateTexture implements the gfx.Device interface.
func (dev *Device) UpdateTexture(id uint32, img *image.NRGBA, area image.Rectangle, dst image.Point) error {
	tex, ok := dev.textures[id]
	if !ok {
		return curated.Errorf(gfx.UnknownTexture, id)
	}

	tex.CopyFromImage(img, area, dst)

	return nil
}

// FreeTexture implements the gfx.Device interface.
func (dev *Device) FreeTexture(id uint32) error {
	if _, ok := dev.textures[id]; !ok {
		return curated.Errorf(gfx.UnknownTexture, id)
	}
	delete(dev.textures, id)
	if dev.texture == id {
		dev.texture = 0
	}
	return nil
}

// BindTexture implements the gfx.Device interface.
func (dev *Device) BindTexture(id uint32) error {
	if _, ok := dev.textures[id]; !ok {
		return curated.Errorf(gfx.UnknownTexture, id)
	}
	dev.texture = id
	return nil
}

// UnbindTexture implements the gfx.Device interface.
func (dev *Device) UnbindTexture() {
	dev.texture = 0
}

// PushModelView implements the gfx.Device interface.
func (dev *Device) PushModelView() {
	dev.modelview = append(dev.modelview, dev.ModelView())
}

// PopModelView implements the gfx.Device interface. The bottom of the stack is
// never popped.
func (dev *Device) PopModelView() {
	if len(dev.modelview) > 1 {
		dev.modelview = dev.modelview[:len(dev.modelview)-1]
	}
}

// MultModelView implements the gfx.Device interface.
func (dev *Device) MultModelView(m gfx.Affine) {
	dev.modelview[len(dev.modelview)-1] = dev.ModelView().Mul(m)
}

// Clear implements the gfx.Device interface. There is no depth buffer.
func (dev *Device) Clear(r, g, b, a float32, _ bool) {
	dev.target.Fill(color.NRGBA{
		R: unit8(r),
		G: unit8(g),
		B: unit8(b),
		A: unit8(a),
	}, dev.target.Bounds())
}

func unit8(v float32) uint8 {
	return uint8(math.Round(float64(min(1, max(0, v)) * 255)))
}

// DrawRect implements the gfx.Device interface.
func (dev *Device) DrawRect(x1, y1, x2, y2, u1, v1, u2, v2 float32) {
	if x1 == x2 || y1 == y2 {
		return
	}

	tex, ok := dev.textures[dev.texture]
	if !ok {
		dev.fill(func(dc *gg.Context, m gfx.Affine) {
			dev.moveTo(dc, m, x1, y1)
			dev.lineTo(dc, m, x2, y1)
			dev.lineTo(dc, m, x2, y2)
			dev.lineTo(dc, m, x1, y2)
			dc.ClosePath()
			_ = dc.Fill()
		})
		return
	}

	if u1 == u2 || v1 == v2 {
		return
	}

	tw := float64(tex.Width())
	th := float64(tex.Height())

	// maps texture pixels to quad coordinates
	sx := float64(x2-x1) / (float64(u2-u1) * tw)
	sy := float64(y2-y1) / (float64(v2-v1) * th)
	q := f64.Aff3{
		sx, 0, float64(x1) - float64(u1)*tw*sx,
		0, sy, float64(y1) - float64(v1)*th*sy,
	}

	m := dev.ModelView()
	mv := f64.Aff3{
		float64(m.SX), float64(m.SHX), float64(m.TX),
		float64(m.SHY), float64(m.SY), float64(m.TY),
	}

	sr := image.Rect(
		int(math.Floor(float64(min(u1, u2))*tw)),
		int(math.Floor(float64(min(v1, v2))*th)),
		int(math.Ceil(float64(max(u1, u2))*tw)),
		int(math.Ceil(float64(max(v1, v2))*th)),
	).Intersect(tex.Bounds())
	if sr.Empty() {
		return
	}

	scratch := image.NewNRGBA(dev.target.Bounds())
	draw.NearestNeighbor.Transform(scratch, mul(mv, q), tex.NRGBA(), sr, draw.Src, nil)
	dev.composite(scratch)
}

// DrawLine implements the gfx.Device interface.
func (dev *Device) DrawLine(x1, y1, x2, y2 float32) {
	dev.fill(func(dc *gg.Context, m gfx.Affine) {
		dc.SetLineWidth(float64(dev.lineWidth))
		dev.moveTo(dc, m, x1, y1)
		dev.lineTo(dc, m, x2, y2)
		_ = dc.Stroke()
	})
}

// SetLineWidth implements the gfx.Device interface.
func (dev *Device) SetLineWidth(width float32) {
	dev.lineWidth = width
	dev.lineWidthChanges++
}

func (dev *Device) moveTo(dc *gg.Context, m gfx.Affine, x, y float32) {
	x, y = m.Apply(x, y)
	dc.MoveTo(float64(x), float64(y))
}

func (dev *Device) lineTo(dc *gg.Context, m gfx.Affine, x, y float32) {
	x, y = m.Apply(x, y)
	dc.LineTo(float64(x), float64(y))
}

// fill rasterises white shapes into a scratch image which is then composited
// onto the render target with the current colour.
func (dev *Device) fill(shape func(dc *gg.Context, m gfx.Affine)) {
	b := dev.target.Bounds()
	pm := gg.NewPixmap(b.Dx(), b.Dy())
	dc := gg.NewContext(b.Dx(), b.Dy(), gg.WithPixmap(pm))
	defer dc.Close()

	dc.SetRGBA(1, 1, 1, 1)
	shape(dc, dev.ModelView())

	dev.composite(&image.NRGBA{
		Pix:    pm.Data(),
		Stride: 4 * b.Dx(),
		Rect:   b,
	})
}

// composite the scratch image onto the render target. the scratch image is the
// same size as the target and is modulated by the current colour.
func (dev *Device) composite(scratch *image.NRGBA) {
	dst := dev.target.NRGBA()
	tint := dev.color

	for i := 0; i+3 < len(scratch.Pix) && i+3 < len(dst.Pix); i += 4 {
		sa := float32(scratch.Pix[i+3]) / 255 * tint[3]
		if sa <= 0 {
			continue
		}

		da := float32(dst.Pix[i+3]) / 255
		oa := sa + da*(1-sa)
		if dev.blend == gfx.BlendAdditive {
			oa = min(1, sa+da)
		}

		for c := range 3 {
			s := float32(scratch.Pix[i+c]) / 255 * tint[c]
			d := float32(dst.Pix[i+c]) / 255

			var v float32
			switch dev.blend {
			case gfx.BlendAdditive:
				v = s*sa + d
			default:
				v = (s*sa + d*da*(1-sa)) / oa
			}
			dst.Pix[i+c] = unit8(v)
		}
		dst.Pix[i+3] = unit8(oa)
	}
}

// mul returns the transform that applies b and then a.
func mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// CreateProgram implements the gfx.Device interface. The sources are WGSL. The
// vertex source must have a @vertex entry point and the fragment source a
// @fragment entry point.
func (dev *Device) CreateProgram(vert string, frag string) (uint32, error) {
	if _, err := naga.Compile(vert); err != nil {
		return 0, curated.Errorf(gfx.ShaderCompile, "vertex: "+err.Error())
	}
	if _, err := naga.Compile(frag); err != nil {
		return 0, curated.Errorf(gfx.ShaderCompile, "fragment: "+err.Error())
	}

	if !strings.Contains(vert, "@vertex") {
		return 0, curated.Errorf(gfx.ShaderLink, "no @vertex entry point")
	}
	if !strings.Contains(frag, "@fragment") {
		return 0, curated.Errorf(gfx.ShaderLink, "no @fragment entry point")
	}

	id := dev.newID()
	dev.programs[id] = &program{
		uniforms: make(map[string][]float32),
	}
	return id, nil
}

// FreeProgram implements the gfx.Device interface.
func (dev *Device) FreeProgram(id uint32) error {
	if _, ok := dev.programs[id]; !ok {
		return curated.Errorf(gfx.UnknownProgram, id)
	}
	delete(dev.programs, id)
	if dev.program == id {
		dev.program = 0
	}
	return nil
}

// UseProgram implements the gfx.Device interface.
func (dev *Device) UseProgram(id uint32) error {
	if id == 0 {
		dev.program = 0
		return nil
	}
	if _, ok := dev.programs[id]; !ok {
		return curated.Errorf(gfx.UnknownProgram, id)
	}
	dev.program = id
	return nil
}

func (dev *Device) setUniform(id uint32, name string, v ...float32) error {
	prg, ok := dev.programs[id]
	if !ok {
		return curated.Errorf(gfx.UnknownProgram, id)
	}
	prg.uniforms[name] = v
	return nil
}

// SetUniform1i implements the gfx.Device interface.
func (dev *Device) SetUniform1i(id uint32, name string, v int32) error {
	return dev.setUniform(id, name, float32(v))
}

// SetUniform1f implements the gfx.Device interface.
func (dev *Device) SetUniform1f(id uint32, name string, v float32) error {
	return dev.setUniform(id, name, v)
}

// SetUniform2f implements the gfx.Device interface.
func (dev *Device) SetUniform2f(id uint32, name string, v0, v1 float32) error {
	return dev.setUniform(id, name, v0, v1)
}

// SetUniform4f implements the gfx.Device interface.
func (dev *Device) SetUniform4f(id uint32, name string, v0, v1, v2, v3 float32) error {
	return dev.setUniform(id, name, v0, v1, v2, v3)
}

// CreateFramebuffer implements the gfx.Device interface.
func (dev *Device) CreateFramebuffer(width, height int, depth bool) (uint32, uint32, error) {
	if depth {
		return 0, 0, curated.Errorf(gfx.DepthUnsupported)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, curated.Errorf(gfx.Framebuffer, "invalid size")
	}

	tex, err := dev.CreateTexture(width, height)
	if err != nil {
		return 0, 0, curated.Errorf(gfx.Framebuffer, err)
	}

	id := dev.newID()
	dev.fbos[id] = framebuffer{tex: tex}
	return id, tex, nil
}

// FreeFramebuffer implements the gfx.Device interface.
func (dev *Device) FreeFramebuffer(id uint32) error {
	fb, ok := dev.fbos[id]
	if !ok {
		return curated.Errorf(gfx.UnknownFBO, id)
	}
	if dev.fbo == id {
		dev.UnbindFramebuffer()
	}
	delete(dev.fbos, id)
	return dev.FreeTexture(fb.tex)
}

// BindFramebuffer implements the gfx.Device interface.
func (dev *Device) BindFramebuffer(id uint32) error {
	fb, ok := dev.fbos[id]
	if !ok {
		return curated.Errorf(gfx.UnknownFBO, id)
	}
	dev.fbo = id
	dev.target = dev.textures[fb.tex]
	return nil
}

// UnbindFramebuffer implements the gfx.Device interface.
func (dev *Device) UnbindFramebuffer() {
	dev.fbo = 0
	dev.target = dev.screen
}

// Destroy implements the gfx.Device interface.
func (dev *Device) Destroy() {
	dev.UnbindFramebuffer()
	clear(dev.textures)
	clear(dev.programs)
	clear(dev.fbos)
	dev.texture = 0
	dev.program = 0
}
