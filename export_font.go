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

//export cinder_load_font
func cinder_load_font(name *C.char, size C.float) C.uintptr_t {
	defer guard("cinder_load_font")
	fnt, err := service().LoadFont(C.GoString(name), float64(size))
	if report("cinder_load_font", err) {
		return 0
	}
	return toC(uint64(fnt))
}

//export cinder_free_font
func cinder_free_font(fnt C.uintptr_t) {
	defer guard("cinder_free_font")
	h := bridge.Font(fromC(fnt))
	if report("cinder_free_font", service().FreeFont(h)) {
		return
	}
	forgetFontName(h)
}

//export cinder_get_font_info
func cinder_get_font_info(fnt C.uintptr_t, name **C.char, size, ascent, descent, leading *C.float) {
	defer guard("cinder_get_font_info")
	h := bridge.Font(fromC(fnt))
	info, err := service().FontInfo(h)
	if report("cinder_get_font_info", err) {
		return
	}
	if name != nil {
		*name = fontName(h, info.Name)
	}
	setFloat(size, info.Size)
	setFloat(ascent, info.Ascent)
	setFloat(descent, info.Descent)
	setFloat(leading, info.Leading)
}

//export cinder_get_font_extents
func cinder_get_font_extents(fnt C.uintptr_t, text *C.char, x, y, w, h *C.float) {
	defer guard("cinder_get_font_extents")
	ext, err := service().FontExtents(bridge.Font(fromC(fnt)), C.GoString(text))
	if report("cinder_get_font_extents", err) {
		return
	}
	setFloat(x, ext.XBearing)
	setFloat(y, ext.YBearing)
	setFloat(w, ext.Width)
	setFloat(h, ext.Height)
}

func setFloat(out *C.float, v float64) {
	if out != nil {
		*out = C.float(v)
	}
}
