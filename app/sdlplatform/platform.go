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

// Package sdlplatform implements app.Platform with an SDL2 window and an
// OpenGL 2.1 context.
package sdlplatform

import (
	"fmt"
	"runtime"

	"github.com/orlok/cinderbridge/app"
	"github.com/orlok/cinderbridge/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Cinderbridge"

// Platform is an SDL2 implementation of app.Platform.
type Platform struct {
	window  *sdl.Window
	context sdl.GLContext
}

var _ app.Platform = (*Platform)(nil)

// NewPlatform is the preferred method of initialisation for the Platform
// type. The window is not opened until Open() is called.
func NewPlatform() *Platform {
	return &Platform{}
}

// Open implements the app.Platform interface.
func (plt *Platform) Open(cfg app.Config) error {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	plt.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl: %w", err)
	}

	plt.context, err = plt.window.GLCreateContext()
	if err != nil {
		plt.Close()
		return fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.context)
	if err != nil {
		plt.Close()
		return fmt.Errorf("sdl: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Logf(logger.Allow, "sdl", "swap interval: %v", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d", major, minor)

	return nil
}

func buttons(state uint32) app.Buttons {
	return app.Buttons{
		Left:   state&sdl.Button(sdl.BUTTON_LEFT) != 0,
		Right:  state&sdl.Button(sdl.BUTTON_RIGHT) != 0,
		Middle: state&sdl.Button(sdl.BUTTON_MIDDLE) != 0,
	}
}

func mouseButton(b uint8) app.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return app.MouseButtonLeft
	case sdl.BUTTON_RIGHT:
		return app.MouseButtonRight
	case sdl.BUTTON_MIDDLE:
		return app.MouseButtonMiddle
	}
	return app.MouseButtonOther
}

// PollEvents implements the app.Platform interface.
func (plt *Platform) PollEvents(f func(app.Event)) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			f(app.Event{ID: app.EventQuit})

		case *sdl.KeyboardEvent:
			f(app.Event{
				ID: app.EventKeyboard,
				Data: app.EventDataKeyboard{
					Code: int(ev.Keysym.Sym),
					Down: ev.Type == sdl.KEYDOWN,
				},
			})

		case *sdl.MouseButtonEvent:
			_, _, state := sdl.GetMouseState()
			f(app.Event{
				ID: app.EventMouseButton,
				Data: app.EventDataMouseButton{
					Button:  mouseButton(ev.Button),
					Down:    ev.Type == sdl.MOUSEBUTTONDOWN,
					X:       int(ev.X),
					Y:       int(ev.Y),
					Buttons: buttons(state),
				},
			})

		case *sdl.MouseMotionEvent:
			f(app.Event{
				ID: app.EventMouseMotion,
				Data: app.EventDataMouseMotion{
					X:       int(ev.X),
					Y:       int(ev.Y),
					Buttons: buttons(ev.State),
					Drag:    ev.State != 0,
				},
			})

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				f(app.Event{
					ID: app.EventResize,
					Data: app.EventDataResize{
						Width:  int(ev.Data1),
						Height: int(ev.Data2),
					},
				})
			}
		}
	}
}

// Swap implements the app.Platform interface.
func (plt *Platform) Swap() {
	plt.window.GLSwap()
}

// SetFullscreen implements the app.Platform interface.
func (plt *Platform) SetFullscreen(fullscreen bool) error {
	var flags uint32
	if fullscreen {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := plt.window.SetFullscreen(flags); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// IsFullscreen implements the app.Platform interface.
func (plt *Platform) IsFullscreen() bool {
	return plt.window.GetFlags()&sdl.WINDOW_FULLSCREEN != 0
}

// SetCursorVisible implements the app.Platform interface.
func (plt *Platform) SetCursorVisible(visible bool) {
	if plt.window == nil {
		return
	}

	toggle := sdl.DISABLE
	if visible {
		toggle = sdl.ENABLE
	}
	if _, err := sdl.ShowCursor(toggle); err != nil {
		logger.Logf(logger.Allow, "sdl", "cursor: %v", err)
	}
}

// Close implements the app.Platform interface.
func (plt *Platform) Close() {
	if plt.context != nil {
		sdl.GLDeleteContext(plt.context)
		plt.context = nil
	}
	if plt.window != nil {
		if err := plt.window.Destroy(); err != nil {
			logger.Logf(logger.Allow, "sdl", "%v", err)
		}
		plt.window = nil
	}
	sdl.Quit()
}
