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
	"github.com/orlok/cinderbridge/app"
)

//export cinder_run
func cinder_run(w, h, appW, appH, forceAspect, fullscreen, fps C.int) {
	defer guard("cinder_run")
	defer pruneFontNames(service().HasFont)
	err := service().Run(app.Config{
		Width:       int(w),
		Height:      int(h),
		AppWidth:    int(appW),
		AppHeight:   int(appH),
		ForceAspect: cbool(forceAspect),
		Fullscreen:  cbool(fullscreen),
		FPS:         int(fps),
	})
	report("cinder_run", err)
}

//export cinder_quit
func cinder_quit() {
	defer guard("cinder_quit")
	service().Quit()
}

//export cinder_set_full_screen
func cinder_set_full_screen(fullscreen C.int) {
	defer guard("cinder_set_full_screen")
	report("cinder_set_full_screen", service().SetFullscreen(cbool(fullscreen)))
}

//export cinder_set_cursor_visible
func cinder_set_cursor_visible(visible C.int) {
	defer guard("cinder_set_cursor_visible")
	report("cinder_set_cursor_visible", service().SetCursorVisible(cbool(visible)))
}

//export cinder_get_average_fps
func cinder_get_average_fps() C.float {
	defer guard("cinder_get_average_fps")
	return C.float(service().AverageFPS())
}
