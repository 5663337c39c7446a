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
)

func vgContext(p C.uintptr_t) bridge.Context {
	return bridge.Context(fromC(p))
}

//export cinder_vg_make_context
func cinder_vg_make_context(srf C.uintptr_t) C.uintptr_t {
	defer guard("cinder_vg_make_context")
	ctx, err := service().MakeContext(bridge.Surface(fromC(srf)))
	if report("cinder_vg_make_context", err) {
		return 0
	}
	return toC(uint64(ctx))
}

//export cinder_vg_free_context
func cinder_vg_free_context(ctx C.uintptr_t) {
	defer guard("cinder_vg_free_context")
	report("cinder_vg_free_context", service().FreeContext(vgContext(ctx)))
}

//export cinder_vg_set_matrix
func cinder_vg_set_matrix(ctx C.uintptr_t, xx, yx, xy, yy, x0, y0 C.float) {
	defer guard("cinder_vg_set_matrix")
	err := service().SetMatrix(vgContext(ctx), float64(xx), float64(yx), float64(xy), float64(yy), float64(x0), float64(y0))
	report("cinder_vg_set_matrix", err)
}

//export cinder_vg_set_solid_paint
func cinder_vg_set_solid_paint(ctx C.uintptr_t, r, g, b, a C.float) {
	defer guard("cinder_vg_set_solid_paint")
	err := service().SetSolidPaint(vgContext(ctx), float64(r), float64(g), float64(b), float64(a))
	report("cinder_vg_set_solid_paint", err)
}

//export cinder_vg_set_linear_gradient
func cinder_vg_set_linear_gradient(sx, sy, ex, ey C.float, extend C.int) {
	defer guard("cinder_vg_set_linear_gradient")
	service().SetLinearGradient(float64(sx), float64(sy), float64(ex), float64(ey), int(extend))
}

//export cinder_vg_set_radial_gradient
func cinder_vg_set_radial_gradient(scx, scy, sr, ecx, ecy, er C.float, extend C.int) {
	defer guard("cinder_vg_set_radial_gradient")
	service().SetRadialGradient(float64(scx), float64(scy), float64(sr),
		float64(ecx), float64(ecy), float64(er), int(extend))
}

//export cinder_vg_gradient_add_color_stop
func cinder_vg_gradient_add_color_stop(offset, r, g, b, a C.float) {
	defer guard("cinder_vg_gradient_add_color_stop")
	err := service().AddColorStop(float64(offset), float64(r), float64(g), float64(b), float64(a))
	report("cinder_vg_gradient_add_color_stop", err)
}

//export cinder_vg_apply_gradient
func cinder_vg_apply_gradient(ctx C.uintptr_t) {
	defer guard("cinder_vg_apply_gradient")
	report("cinder_vg_apply_gradient", service().ApplyGradient(vgContext(ctx)))
}

//export cinder_vg_set_surface_paint
func cinder_vg_set_surface_paint(ctx C.uintptr_t, srf C.uintptr_t) {
	defer guard("cinder_vg_set_surface_paint")
	err := service().SetSurfacePaint(vgContext(ctx), bridge.Surface(fromC(srf)))
	report("cinder_vg_set_surface_paint", err)
}

//export cinder_vg_set_stroke_parameters
func cinder_vg_set_stroke_parameters(ctx C.uintptr_t, lineCap, lineJoin C.int, width C.float) {
	defer guard("cinder_vg_set_stroke_parameters")
	err := service().SetStroke(vgContext(ctx), int(lineCap), int(lineJoin), float64(width))
	report("cinder_vg_set_stroke_parameters", err)
}

//export cinder_vg_clear_with_brush
func cinder_vg_clear_with_brush(ctx C.uintptr_t) {
	defer guard("cinder_vg_clear_with_brush")
	report("cinder_vg_clear_with_brush", service().ClearWithBrush(vgContext(ctx)))
}

//export cinder_vg_draw_rect
func cinder_vg_draw_rect(ctx C.uintptr_t, left, top, w, h C.float) {
	defer guard("cinder_vg_draw_rect")
	err := service().AddRect(vgContext(ctx), float64(left), float64(top), float64(w), float64(h))
	report("cinder_vg_draw_rect", err)
}

//export cinder_vg_draw_circle
func cinder_vg_draw_circle(ctx C.uintptr_t, cx, cy, r C.float) {
	defer guard("cinder_vg_draw_circle")
	err := service().AddCircle(vgContext(ctx), float64(cx), float64(cy), float64(r))
	report("cinder_vg_draw_circle", err)
}

//export cinder_vg_clear_path
func cinder_vg_clear_path(ctx C.uintptr_t) {
	defer guard("cinder_vg_clear_path")
	report("cinder_vg_clear_path", service().ClearPath(vgContext(ctx)))
}

//export cinder_vg_path_move_to
func cinder_vg_path_move_to(ctx C.uintptr_t, x, y C.float) {
	defer guard("cinder_vg_path_move_to")
	report("cinder_vg_path_move_to", service().MoveTo(vgContext(ctx), float64(x), float64(y)))
}

//export cinder_vg_path_line_to
func cinder_vg_path_line_to(ctx C.uintptr_t, x, y C.float) {
	defer guard("cinder_vg_path_line_to")
	report("cinder_vg_path_line_to", service().LineTo(vgContext(ctx), float64(x), float64(y)))
}

//export cinder_vg_path_quad_to
func cinder_vg_path_quad_to(ctx C.uintptr_t, x1, y1, x2, y2 C.float) {
	defer guard("cinder_vg_path_quad_to")
	err := service().QuadTo(vgContext(ctx), float64(x1), float64(y1), float64(x2), float64(y2))
	report("cinder_vg_path_quad_to", err)
}

//export cinder_vg_path_curve_to
func cinder_vg_path_curve_to(ctx C.uintptr_t, x1, y1, x2, y2, x3, y3 C.float) {
	defer guard("cinder_vg_path_curve_to")
	err := service().CurveTo(vgContext(ctx), float64(x1), float64(y1), float64(x2), float64(y2), float64(x3), float64(y3))
	report("cinder_vg_path_curve_to", err)
}

//export cinder_vg_path_close
func cinder_vg_path_close(ctx C.uintptr_t) {
	defer guard("cinder_vg_path_close")
	report("cinder_vg_path_close", service().ClosePath(vgContext(ctx)))
}

//export cinder_vg_stroke_path
func cinder_vg_stroke_path(ctx C.uintptr_t) {
	defer guard("cinder_vg_stroke_path")
	report("cinder_vg_stroke_path", service().StrokePath(vgContext(ctx)))
}

//export cinder_vg_fill_path
func cinder_vg_fill_path(ctx C.uintptr_t) {
	defer guard("cinder_vg_fill_path")
	report("cinder_vg_fill_path", service().FillPath(vgContext(ctx)))
}

//export cinder_vg_draw_text
func cinder_vg_draw_text(ctx C.uintptr_t, fnt C.uintptr_t, text *C.char, x, y C.float, isFill C.int) {
	defer guard("cinder_vg_draw_text")
	err := service().DrawVGText(vgContext(ctx), bridge.Font(fromC(fnt)), C.GoString(text),
		float64(x), float64(y), cbool(isFill))
	report("cinder_vg_draw_text", err)
}
