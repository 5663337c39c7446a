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

//export cinder_surface_create
func cinder_surface_create(w, h C.int) C.uintptr_t {
	defer guard("cinder_surface_create")
	srf, err := service().CreateSurface(int(w), int(h))
	if report("cinder_surface_create", err) {
		return 0
	}
	return toC(uint64(srf))
}

//export cinder_surface_free
func cinder_surface_free(srf C.uintptr_t) {
	defer guard("cinder_surface_free")
	report("cinder_surface_free", service().FreeSurface(bridge.Surface(fromC(srf))))
}

//export cinder_load_surface
func cinder_load_surface(name *C.char, w *C.int, h *C.int) C.uintptr_t {
	defer guard("cinder_load_surface")
	srf, width, height, err := service().LoadSurface(C.GoString(name))
	if report("cinder_load_surface", err) {
		return 0
	}
	if w != nil {
		*w = C.int(width)
	}
	if h != nil {
		*h = C.int(height)
	}
	return toC(uint64(srf))
}

//export cinder_surface_copy_pixels
func cinder_surface_copy_pixels(src C.uintptr_t, sx, sy, w, h C.int, dst C.uintptr_t, dx, dy C.int) {
	defer guard("cinder_surface_copy_pixels")
	err := service().CopyPixels(bridge.Surface(fromC(src)), int(sx), int(sy), int(w), int(h),
		bridge.Surface(fromC(dst)), int(dx), int(dy))
	report("cinder_surface_copy_pixels", err)
}

//export cinder_surface_fill
func cinder_surface_fill(srf C.uintptr_t, r, g, b, a C.float, x, y, w, h C.int) {
	defer guard("cinder_surface_fill")
	err := service().FillSurface(bridge.Surface(fromC(srf)),
		float32(r), float32(g), float32(b), float32(a), int(x), int(y), int(w), int(h))
	report("cinder_surface_fill", err)
}

//export cinder_surface_premultiply
func cinder_surface_premultiply(srf C.uintptr_t) {
	defer guard("cinder_surface_premultiply")
	report("cinder_surface_premultiply", service().Premultiply(bridge.Surface(fromC(srf))))
}

//export cinder_surface_unpremultiply
func cinder_surface_unpremultiply(srf C.uintptr_t) {
	defer guard("cinder_surface_unpremultiply")
	report("cinder_surface_unpremultiply", service().Unpremultiply(bridge.Surface(fromC(srf))))
}

//export cinder_surface_flip_vertical
func cinder_surface_flip_vertical(srf C.uintptr_t) {
	defer guard("cinder_surface_flip_vertical")
	report("cinder_surface_flip_vertical", service().FlipVertical(bridge.Surface(fromC(srf))))
}

//export cinder_surface_resize
func cinder_surface_resize(srf C.uintptr_t, w, h, filter C.int) C.uintptr_t {
	defer guard("cinder_surface_resize")
	resized, err := service().ResizeSurface(bridge.Surface(fromC(srf)), int(w), int(h), int(filter))
	if report("cinder_surface_resize", err) {
		return 0
	}
	return toC(uint64(resized))
}
