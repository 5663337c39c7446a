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

// Package gl21 implements gfx.Device with the fixed-function pipeline of
// OpenGL 2.1. Framebuffers use the EXT_framebuffer_object extension.
//
// A GL context must be current on the calling thread when NewDevice() is
// called and for every method call afterwards.
package gl21

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/gfx"
	"github.com/orlok/cinderbridge/logger"
)

type texture struct {
	width  int
	height int
}

type program struct {
	locations map[string]int32
}

type framebuffer struct {
	tex uint32
}

var _ gfx.Device = (*Device)(nil)

// Device is an OpenGL 2.1 implementation of gfx.Device.
type Device struct {
	textures map[uint32]texture
	programs map[uint32]*program
	fbos     map[uint32]framebuffer

	// viewport of the window. restored when a framebuffer is unbound
	viewport [4]int32
}

// NewDevice initialises the GL function pointers for the current context.
func NewDevice() (*Device, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gl21: %w", err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "gl21", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl21", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl21", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	dev := &Device{
		textures: make(map[uint32]texture),
		programs: make(map[uint32]*program),
		fbos:     make(map[uint32]framebuffer),
	}

	gl.GetIntegerv(gl.VIEWPORT, &dev.viewport[0])
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.LIGHTING)

	return dev, nil
}

// SetViewport implements the gfx.Device interface.
func (dev *Device) SetViewport(x, y, width, height int) {
	dev.viewport = [4]int32{int32(x), int32(y), int32(width), int32(height)}
	gl.Viewport(dev.viewport[0], dev.viewport[1], dev.viewport[2], dev.viewport[3])
}

// SetMatricesWindow implements the gfx.Device interface. The origin is the
// top-left of the window and the model-view matrix is reset.
func (dev *Device) SetMatricesWindow(width, height int) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(width), float64(height), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

// SetColor implements the gfx.Device interface.
func (dev *Device) SetColor(r, g, b, a float32) {
	gl.Color4f(r, g, b, a)
}

// SetBlend implements the gfx.Device interface.
func (dev *Device) SetBlend(mode gfx.BlendMode) {
	gl.Enable(gl.BLEND)
	switch mode {
	case gfx.BlendAdditive:
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	default:
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
}

func (dev *Device) genTexture(width, height int) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	dev.textures[id] = texture{width: width, height: height}
	return id
}

// CreateTexture implements the gfx.Device interface.
func (dev *Device) CreateTexture(width, height int) (uint32, error) {
	if width <= 0 || height <= 0 {
		return 0, curated.Errorf(gfx.InvalidTexture, width, height)
	}

	id := dev.genTexture(width, height)

	// zeroed pixels rather than undefined texture memory
	pix := make([]uint8, width*height*4)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

// CreateTextureFromImage implements the gfx.Device interface.
func (dev *Device) CreateTextureFromImage(img *image.NRGBA) (uint32, error) {
	sz := img.Rect.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return 0, curated.Errorf(gfx.InvalidTexture, sz.X, sz.Y)
	}

	id := dev.genTexture(sz.X, sz.Y)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride)/4)
	defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, int32(sz.X), int32(sz.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y):]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

// UpdateTexture implements the gfx.Device interface.
func (dev *Device) UpdateTexture(id uint32, img *image.NRGBA, area image.Rectangle, dst image.Point) error {
	tex, ok := dev.textures[id]
	if !ok {
		return curated.Errorf(gfx.UnknownTexture, id)
	}

	area = area.Intersect(img.Rect)
	dr := image.Rectangle{Min: dst, Max: dst.Add(area.Size())}
	clipped := dr.Intersect(image.Rect(0, 0, tex.width, tex.height))
	if clipped.Empty() {
		return nil
	}
	area.Min = area.Min.Add(clipped.Min.Sub(dr.Min))

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride)/4)
	defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		int32(clipped.Min.X), int32(clipped.Min.Y), int32(clipped.Dx()), int32(clipped.Dy()),
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix[img.PixOffset(area.Min.X, area.Min.Y):]))

	return nil
}

// FreeTexture implements the gfx.Device interface.
func (dev *Device) FreeTexture(id uint32) error {
	if _, ok := dev.textures[id]; !ok {
		return curated.Errorf(gfx.UnknownTexture, id)
	}
	gl.DeleteTextures(1, &id)
	delete(dev.textures, id)
	return nil
}

// BindTexture implements the gfx.Device interface.
func (dev *Device) BindTexture(id uint32) error {
	if _, ok := dev.textures[id]; !ok {
		return curated.Errorf(gfx.UnknownTexture, id)
	}
	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, id)
	return nil
}

// UnbindTexture implements the gfx.Device interface.
func (dev *Device) UnbindTexture() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.TEXTURE_2D)
}

// PushModelView implements the gfx.Device interface.
func (dev *Device) PushModelView() {
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
}

// PopModelView implements the gfx.Device interface.
func (dev *Device) PopModelView() {
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
}

// MultModelView implements the gfx.Device interface.
func (dev *Device) MultModelView(m gfx.Affine) {
	// column major
	mtx := [16]float32{
		m.SX, m.SHY, 0, 0,
		m.SHX, m.SY, 0, 0,
		0, 0, 1, 0,
		m.TX, m.TY, 0, 1,
	}
	gl.MatrixMode(gl.MODELVIEW)
	gl.MultMatrixf(&mtx[0])
}

// Clear implements the gfx.Device interface.
func (dev *Device) Clear(r, g, b, a float32, depth bool) {
	gl.ClearColor(r, g, b, a)
	if depth {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	} else {
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
}

// DrawRect implements the gfx.Device interface.
func (dev *Device) DrawRect(x1, y1, x2, y2, u1, v1, u2, v2 float32) {
	gl.Begin(gl.TRIANGLE_STRIP)
	gl.TexCoord2f(u2, v1)
	gl.Vertex2f(x2, y1)
	gl.TexCoord2f(u1, v1)
	gl.Vertex2f(x1, y1)
	gl.TexCoord2f(u2, v2)
	gl.Vertex2f(x2, y2)
	gl.TexCoord2f(u1, v2)
	gl.Vertex2f(x1, y2)
	gl.End()
}

// DrawLine implements the gfx.Device interface.
func (dev *Device) DrawLine(x1, y1, x2, y2 float32) {
	gl.Begin(gl.LINES)
	gl.Vertex2f(x1, y1)
	gl.Vertex2f(x2, y2)
	gl.End()
}

// SetLineWidth implements the gfx.Device interface.
func (dev *Device) SetLineWidth(width float32) {
	gl.LineWidth(width)
}

// CreateProgram implements the gfx.Device interface.
func (dev *Device) CreateProgram(vert string, frag string) (uint32, error) {
	vertHandle, err := compileShader(gl.VERTEX_SHADER, vert)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, frag)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragHandle)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertHandle)
	gl.AttachShader(handle, fragHandle)
	gl.LinkProgram(handle)

	var linked int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &linked)
	if linked == 0 {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		log := "unknown error"
		if logLength > 0 {
			buf := strings.Repeat("\x00", int(logLength+1))
			gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(buf))
			log = strings.TrimRight(buf, "\x00")
		}
		gl.DeleteProgram(handle)
		return 0, curated.Errorf(gfx.ShaderLink, log)
	}

	dev.programs[handle] = &program{
		locations: make(map[string]int32),
	}

	return handle, nil
}

// compileShader returns the shader handle or a ShaderCompile error carrying
// the compiler's log.
func compileShader(kind uint32, source string) (uint32, error) {
	handle := gl.CreateShader(kind)

	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(handle, 1, csource, nil)
	gl.CompileShader(handle)

	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		log := "unknown error"
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the maxLength includes the NULL character
			buf := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(handle, logLength, &logLength, gl.Str(buf))
			log = strings.TrimRight(buf, "\x00")
		}
		gl.DeleteShader(handle)
		return 0, curated.Errorf(gfx.ShaderCompile, log)
	}

	return handle, nil
}

// FreeProgram implements the gfx.Device interface.
func (dev *Device) FreeProgram(id uint32) error {
	if _, ok := dev.programs[id]; !ok {
		return curated.Errorf(gfx.UnknownProgram, id)
	}
	gl.DeleteProgram(id)
	delete(dev.programs, id)
	return nil
}

// UseProgram implements the gfx.Device interface.
func (dev *Device) UseProgram(id uint32) error {
	if id == 0 {
		gl.UseProgram(0)
		return nil
	}
	if _, ok := dev.programs[id]; !ok {
		return curated.Errorf(gfx.UnknownProgram, id)
	}
	gl.UseProgram(id)
	return nil
}

// setUniform binds the program for the duration of the set function. The
// previously bound program is restored afterwards. A location of -1 means
// that the program has no such uniform and set is not called.
func (dev *Device) setUniform(id uint32, name string, set func(loc int32)) error {
	prg, ok := dev.programs[id]
	if !ok {
		return curated.Errorf(gfx.UnknownProgram, id)
	}

	loc, ok := prg.locations[name]
	if !ok {
		loc = gl.GetUniformLocation(id, gl.Str(name+"\x00"))
		prg.locations[name] = loc
	}
	if loc == -1 {
		return nil
	}

	var current int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &current)
	if uint32(current) != id {
		gl.UseProgram(id)
		defer gl.UseProgram(uint32(current))
	}

	set(loc)
	return nil
}

// SetUniform1i implements the gfx.Device interface.
func (dev *Device) SetUniform1i(id uint32, name string, v int32) error {
	return dev.setUniform(id, name, func(loc int32) {
		gl.Uniform1i(loc, v)
	})
}

// SetUniform1f implements the gfx.Device interface.
func (dev *Device) SetUniform1f(id uint32, name string, v float32) error {
	return dev.setUniform(id, name, func(loc int32) {
		gl.Uniform1f(loc, v)
	})
}

// SetUniform2f implements the gfx.Device interface.
func (dev *Device) SetUniform2f(id uint32, name string, v0, v1 float32) error {
	return dev.setUniform(id, name, func(loc int32) {
		gl.Uniform2f(loc, v0, v1)
	})
}

// SetUniform4f implements the gfx.Device interface.
func (dev *Device) SetUniform4f(id uint32, name string, v0, v1, v2, v3 float32) error {
	return dev.setUniform(id, name, func(loc int32) {
		gl.Uniform4f(loc, v0, v1, v2, v3)
	})
}

// CreateFramebuffer implements the gfx.Device interface.
func (dev *Device) CreateFramebuffer(width, height int, depth bool) (uint32, uint32, error) {
	if depth {
		return 0, 0, curated.Errorf(gfx.DepthUnsupported)
	}

	tex, err := dev.CreateTexture(width, height)
	if err != nil {
		return 0, 0, curated.Errorf(gfx.Framebuffer, err)
	}

	var id uint32
	gl.GenFramebuffersEXT(1, &id)
	gl.BindFramebufferEXT(gl.FRAMEBUFFER_EXT, id)
	gl.FramebufferTexture2DEXT(gl.FRAMEBUFFER_EXT, gl.COLOR_ATTACHMENT0_EXT, gl.TEXTURE_2D, tex, 0)

	status := gl.CheckFramebufferStatusEXT(gl.FRAMEBUFFER_EXT)
	gl.BindFramebufferEXT(gl.FRAMEBUFFER_EXT, 0)

	if status != gl.FRAMEBUFFER_COMPLETE_EXT {
		gl.DeleteFramebuffersEXT(1, &id)
		_ = dev.FreeTexture(tex)
		return 0, 0, curated.Errorf(gfx.Framebuffer, fmt.Sprintf("incomplete (%#x)", status))
	}

	dev.fbos[id] = framebuffer{tex: tex}

	return id, tex, nil
}

// FreeFramebuffer implements the gfx.Device interface.
func (dev *Device) FreeFramebuffer(id uint32) error {
	fb, ok := dev.fbos[id]
	if !ok {
		return curated.Errorf(gfx.UnknownFBO, id)
	}
	gl.DeleteFramebuffersEXT(1, &id)
	delete(dev.fbos, id)
	return dev.FreeTexture(fb.tex)
}

// BindFramebuffer implements the gfx.Device interface. The viewport is set to
// the size of the framebuffer.
func (dev *Device) BindFramebuffer(id uint32) error {
	fb, ok := dev.fbos[id]
	if !ok {
		return curated.Errorf(gfx.UnknownFBO, id)
	}
	tex := dev.textures[fb.tex]
	gl.BindFramebufferEXT(gl.FRAMEBUFFER_EXT, id)
	gl.Viewport(0, 0, int32(tex.width), int32(tex.height))
	return nil
}

// UnbindFramebuffer implements the gfx.Device interface. The window viewport
// is restored.
func (dev *Device) UnbindFramebuffer() {
	gl.BindFramebufferEXT(gl.FRAMEBUFFER_EXT, 0)
	gl.Viewport(dev.viewport[0], dev.viewport[1], dev.viewport[2], dev.viewport[3])
}

// Destroy implements the gfx.Device interface.
func (dev *Device) Destroy() {
	for id := range dev.fbos {
		gl.DeleteFramebuffersEXT(1, &id)
	}
	for id := range dev.textures {
		gl.DeleteTextures(1, &id)
	}
	for id := range dev.programs {
		gl.DeleteProgram(id)
	}
	clear(dev.fbos)
	clear(dev.textures)
	clear(dev.programs)
}
