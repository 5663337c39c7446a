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

package main

/*
#include <stdint.h>
*/
import "C"

import (
	"github.com/orlok/cinderbridge/bridge"
	"github.com/orlok/cinderbridge/curated"
)

//export cinder_gl_set_viewport
func cinder_gl_set_viewport(x, y, w, h C.int) {
	defer guard("cinder_gl_set_viewport")
	report("cinder_gl_set_viewport", service().SetViewport(int(x), int(y), int(w), int(h)))
}

//export cinder_gl_set_matrices_window
func cinder_gl_set_matrices_window(w, h C.int) {
	defer guard("cinder_gl_set_matrices_window")
	report("cinder_gl_set_matrices_window", service().SetMatricesWindow(int(w), int(h)))
}

//export cinder_gl_set_color
func cinder_gl_set_color(r, g, b, a C.float) {
	defer guard("cinder_gl_set_color")
	err := service().SetColor(float32(r), float32(g), float32(b), float32(a))
	report("cinder_gl_set_color", err)
}

//export cinder_gl_set_blend
func cinder_gl_set_blend(mode C.int) {
	defer guard("cinder_gl_set_blend")
	report("cinder_gl_set_blend", service().SetBlend(int(mode)))
}

//export cinder_gl_create_texture
func cinder_gl_create_texture(w, h C.int) C.uintptr_t {
	defer guard("cinder_gl_create_texture")
	tex, err := service().CreateTexture(int(w), int(h))
	if report("cinder_gl_create_texture", err) {
		return 0
	}
	return toC(uint64(tex))
}

//export cinder_gl_free_texture
func cinder_gl_free_texture(tex C.uintptr_t) {
	defer guard("cinder_gl_free_texture")
	report("cinder_gl_free_texture", service().FreeTexture(bridge.Texture(fromC(tex))))
}

//export cinder_gl_update_texture
func cinder_gl_update_texture(tex C.uintptr_t, srf C.uintptr_t, x1, y1, x2, y2 C.int) {
	defer guard("cinder_gl_update_texture")
	err := service().UpdateTexture(bridge.Texture(fromC(tex)), bridge.Surface(fromC(srf)),
		int(x1), int(y1), int(x2), int(y2))
	report("cinder_gl_update_texture", err)
}

//export cinder_gl_create_texture_from_surface
func cinder_gl_create_texture_from_surface(srf C.uintptr_t, x, y, w, h C.int) C.uintptr_t {
	defer guard("cinder_gl_create_texture_from_surface")
	tex, err := service().CreateTextureFromSurface(bridge.Surface(fromC(srf)), int(x), int(y), int(w), int(h))
	if report("cinder_gl_create_texture_from_surface", err) {
		return 0
	}
	return toC(uint64(tex))
}

//export cinder_gl_bind_texture
func cinder_gl_bind_texture(tex C.uintptr_t) {
	defer guard("cinder_gl_bind_texture")
	report("cinder_gl_bind_texture", service().BindTexture(bridge.Texture(fromC(tex))))
}

//export cinder_gl_unbind_texture
func cinder_gl_unbind_texture(tex C.uintptr_t) {
	defer guard("cinder_gl_unbind_texture")
	report("cinder_gl_unbind_texture", service().UnbindTexture(bridge.Texture(fromC(tex))))
}

//export cinder_gl_push_modelview_matrix
func cinder_gl_push_modelview_matrix() {
	defer guard("cinder_gl_push_modelview_matrix")
	report("cinder_gl_push_modelview_matrix", service().PushModelView())
}

//export cinder_gl_pop_modelview_matrix
func cinder_gl_pop_modelview_matrix() {
	defer guard("cinder_gl_pop_modelview_matrix")
	report("cinder_gl_pop_modelview_matrix", service().PopModelView())
}

//export cinder_gl_update_transform
func cinder_gl_update_transform(sx, shy, shx, sy, tx, ty C.float) {
	defer guard("cinder_gl_update_transform")
	err := service().UpdateTransform(float32(sx), float32(shy), float32(shx), float32(sy), float32(tx), float32(ty))
	report("cinder_gl_update_transform", err)
}

//export cinder_gl_clear
func cinder_gl_clear(r, g, b, a C.float, depth C.int) {
	defer guard("cinder_gl_clear")
	err := service().Clear(float32(r), float32(g), float32(b), float32(a), cbool(depth))
	report("cinder_gl_clear", err)
}

//export cinder_gl_draw_rect
func cinder_gl_draw_rect(x1, y1, x2, y2, u1, v1, u2, v2 C.float) {
	defer guard("cinder_gl_draw_rect")
	err := service().DrawRect(float32(x1), float32(y1), float32(x2), float32(y2),
		float32(u1), float32(v1), float32(u2), float32(v2))
	report("cinder_gl_draw_rect", err)
}

//export cinder_gl_draw_text
func cinder_gl_draw_text(text *C.char, r, g, b, a C.float, x, y C.float, fnt C.uintptr_t) {
	defer guard("cinder_gl_draw_text")
	err := service().DrawText(C.GoString(text), float32(r), float32(g), float32(b), float32(a),
		float32(x), float32(y), bridge.Font(fromC(fnt)))
	report("cinder_gl_draw_text", err)
}

//export cinder_gl_draw_line
func cinder_gl_draw_line(x1, y1, x2, y2 C.float, r, g, b, a C.float, width C.float) {
	defer guard("cinder_gl_draw_line")
	err := service().DrawLine(float32(x1), float32(y1), float32(x2), float32(y2),
		float32(r), float32(g), float32(b), float32(a), float32(width))
	report("cinder_gl_draw_line", err)
}

//export cinder_gl_load_shader_program
func cinder_gl_load_shader_program(vert *C.char, frag *C.char, errMsg **C.char) C.uintptr_t {
	defer guard("cinder_gl_load_shader_program")
	prg, err := service().LoadProgram(C.GoString(vert), C.GoString(frag))
	if report("cinder_gl_load_shader_program", err) {
		setDiagnostic(errMsg, err.Error())
		return 0
	}
	return toC(uint64(prg))
}

//export cinder_gl_create_shader_program
func cinder_gl_create_shader_program(vert *C.char, frag *C.char, errMsg **C.char) C.uintptr_t {
	defer guard("cinder_gl_create_shader_program")
	prg, err := service().CreateProgram(C.GoString(vert), C.GoString(frag))
	if report("cinder_gl_create_shader_program", err) {
		setDiagnostic(errMsg, err.Error())
		return 0
	}
	return toC(uint64(prg))
}

//export cinder_gl_free_shader_program
func cinder_gl_free_shader_program(prg C.uintptr_t) {
	defer guard("cinder_gl_free_shader_program")
	report("cinder_gl_free_shader_program", service().FreeProgram(bridge.Program(fromC(prg))))
}

//export cinder_gl_set_uniform_1i
func cinder_gl_set_uniform_1i(prg C.uintptr_t, name *C.char, v C.int) {
	defer guard("cinder_gl_set_uniform_1i")
	err := service().SetUniform1i(bridge.Program(fromC(prg)), C.GoString(name), int32(v))
	report("cinder_gl_set_uniform_1i", err)
}

//export cinder_gl_set_uniform_1f
func cinder_gl_set_uniform_1f(prg C.uintptr_t, name *C.char, v C.float) {
	defer guard("cinder_gl_set_uniform_1f")
	err := service().SetUniform1f(bridge.Program(fromC(prg)), C.GoString(name), float32(v))
	report("cinder_gl_set_uniform_1f", err)
}

//export cinder_gl_set_uniform_2f
func cinder_gl_set_uniform_2f(prg C.uintptr_t, name *C.char, v0, v1 C.float) {
	defer guard("cinder_gl_set_uniform_2f")
	err := service().SetUniform2f(bridge.Program(fromC(prg)), C.GoString(name), float32(v0), float32(v1))
	report("cinder_gl_set_uniform_2f", err)
}

//export cinder_gl_set_uniform_4f
func cinder_gl_set_uniform_4f(prg C.uintptr_t, name *C.char, v0, v1, v2, v3 C.float) {
	defer guard("cinder_gl_set_uniform_4f")
	err := service().SetUniform4f(bridge.Program(fromC(prg)), C.GoString(name),
		float32(v0), float32(v1), float32(v2), float32(v3))
	report("cinder_gl_set_uniform_4f", err)
}

//export cinder_gl_use_shader_program
func cinder_gl_use_shader_program(prg C.uintptr_t) {
	defer guard("cinder_gl_use_shader_program")
	report("cinder_gl_use_shader_program", service().UseProgram(bridge.Program(fromC(prg))))
}

//export cinder_gl_create_framebuffer
func cinder_gl_create_framebuffer(w, h C.int, tex *C.uintptr_t, errMsg **C.char) C.uintptr_t {
	defer guard("cinder_gl_create_framebuffer")
	fb, t, err := service().CreateFramebuffer(int(w), int(h), false)
	if report("cinder_gl_create_framebuffer", err) {
		if curated.IsAny(err) {
			setDiagnostic(errMsg, err.Error())
		} else {
			setDiagnostic(errMsg, "error creating framebuffer")
		}
		return 0
	}
	if tex != nil {
		*tex = toC(uint64(t))
	}
	return toC(uint64(fb))
}

//export cinder_gl_free_framebuffer
func cinder_gl_free_framebuffer(fb C.uintptr_t) {
	defer guard("cinder_gl_free_framebuffer")
	report("cinder_gl_free_framebuffer", service().FreeFramebuffer(bridge.Framebuffer(fromC(fb))))
}

//export cinder_gl_bind_framebuffer
func cinder_gl_bind_framebuffer(fb C.uintptr_t) {
	defer guard("cinder_gl_bind_framebuffer")
	report("cinder_gl_bind_framebuffer", service().BindFramebuffer(bridge.Framebuffer(fromC(fb))))
}

//export cinder_gl_unbind_framebuffer
func cinder_gl_unbind_framebuffer() {
	defer guard("cinder_gl_unbind_framebuffer")
	report("cinder_gl_unbind_framebuffer", service().UnbindFramebuffer())
}
