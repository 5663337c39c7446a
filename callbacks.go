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
#cgo darwin LDFLAGS: -Wl,-undefined,dynamic_lookup

// provided by the host. a callback that the host does not define is NULL
extern void cinder_startup(void) __attribute__((weak));
extern void cinder_shutdown(void) __attribute__((weak));
extern void cinder_update(void) __attribute__((weak));
extern void cinder_draw(void) __attribute__((weak));
extern void cinder_resize(int w, int h, int fullscreen) __attribute__((weak));
extern void cinder_key_down(int code) __attribute__((weak));
extern void cinder_key_up(int code) __attribute__((weak));
extern void cinder_mouse_down(int btn, int x, int y, int l, int r, int m) __attribute__((weak));
extern void cinder_mouse_up(int btn, int x, int y, int l, int r, int m) __attribute__((weak));
extern void cinder_mouse_move(int x, int y, int l, int r, int m) __attribute__((weak));

static void call_startup(void) { if (cinder_startup) cinder_startup(); }
static void call_shutdown(void) { if (cinder_shutdown) cinder_shutdown(); }
static void call_update(void) { if (cinder_update) cinder_update(); }
static void call_draw(void) { if (cinder_draw) cinder_draw(); }

static void call_resize(int w, int h, int fullscreen) {
	if (cinder_resize) cinder_resize(w, h, fullscreen);
}

static void call_key_down(int code) { if (cinder_key_down) cinder_key_down(code); }
static void call_key_up(int code) { if (cinder_key_up) cinder_key_up(code); }

static void call_mouse_down(int btn, int x, int y, int l, int r, int m) {
	if (cinder_mouse_down) cinder_mouse_down(btn, x, y, l, r, m);
}

static void call_mouse_up(int btn, int x, int y, int l, int r, int m) {
	if (cinder_mouse_up) cinder_mouse_up(btn, x, y, l, r, m);
}

static void call_mouse_move(int x, int y, int l, int r, int m) {
	if (cinder_mouse_move) cinder_mouse_move(x, y, l, r, m);
}
*/
import "C"

import (
	"github.com/orlok/cinderbridge/app"
)

// hostCallbacks forwards the application's callbacks to the host.
type hostCallbacks struct{}

var _ app.Callbacks = hostCallbacks{}

func (hostCallbacks) Startup()  { C.call_startup() }
func (hostCallbacks) Shutdown() { C.call_shutdown() }
func (hostCallbacks) Update()   { C.call_update() }
func (hostCallbacks) Draw()     { C.call_draw() }

func (hostCallbacks) Resize(w int, h int, fullscreen bool) {
	C.call_resize(C.int(w), C.int(h), boolC(fullscreen))
}

func (hostCallbacks) KeyDown(code int) { C.call_key_down(C.int(code)) }
func (hostCallbacks) KeyUp(code int)   { C.call_key_up(C.int(code)) }

func (hostCallbacks) MouseDown(btn int, x int, y int, b app.Buttons) {
	C.call_mouse_down(C.int(btn), C.int(x), C.int(y), boolC(b.Left), boolC(b.Right), boolC(b.Middle))
}

func (hostCallbacks) MouseUp(btn int, x int, y int, b app.Buttons) {
	C.call_mouse_up(C.int(btn), C.int(x), C.int(y), boolC(b.Left), boolC(b.Right), boolC(b.Middle))
}

func (hostCallbacks) MouseMove(x int, y int, b app.Buttons) {
	C.call_mouse_move(C.int(x), C.int(y), boolC(b.Left), boolC(b.Right), boolC(b.Middle))
}
