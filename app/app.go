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

package app

import (
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/logger"
)

// AlreadyRun is the error pattern for a second call to Run().
const AlreadyRun = "app: already run"

// State of the App.
type State int

// List of valid State values.
const (
	Uninitialized State = iota
	Running
	ShuttingDown
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Terminated:
		return "terminated"
	}
	return "unknown state"
}

// Config for the window and the frame loop.
type Config struct {
	Width  int
	Height int

	// the logical size of the application. used with ForceAspect
	AppWidth  int
	AppHeight int

	// letterbox the viewport to the AppWidth:AppHeight aspect ratio
	ForceAspect bool

	Fullscreen bool

	// target frames per second. zero or less and the loop runs unlimited
	FPS int

	VSync bool
}

// Callbacks are implemented by the host.
type Callbacks interface {
	Startup()
	Shutdown()
	Update()
	Draw()
	Resize(width int, height int, fullscreen bool)
	KeyDown(code int)
	KeyUp(code int)
	MouseDown(button int, x int, y int, b Buttons)
	MouseUp(button int, x int, y int, b Buttons)
	MouseMove(x int, y int, b Buttons)
}

// Platform provides the window and the events.
type Platform interface {
	// Open the window and make its GL context current on the calling thread
	Open(cfg Config) error

	// PollEvents calls the function for every pending event
	PollEvents(func(Event))

	// Swap presents the frame
	Swap()

	SetFullscreen(fullscreen bool) error
	IsFullscreen() bool
	SetCursorVisible(visible bool)

	// Close the window. The platform can not be used afterwards
	Close()
}

// Hooks are called by Run() around the host callbacks.
type Hooks struct {
	// called after the window has opened and before the Startup callback. an
	// error ends Run() without calling any callbacks
	Setup func() error

	// called with the viewport for the window, at start up and on every
	// resize event, before the Resize callback
	Viewport func(viewport image.Rectangle)

	// called after the Shutdown callback
	Teardown func()
}

// App is the single application instance. It is safe for concurrent use but
// Run() must be called from the thread that will own the window.
type App struct {
	crit sync.Mutex

	platform  Platform
	callbacks Callbacks
	hooks     Hooks

	state State
	cfg   Config
	fps   fpsMeter

	// used instead of time.Now() when not nil
	clock func() time.Time
}

// NewApp is the preferred method of initialisation for the App type.
func NewApp(platform Platform, callbacks Callbacks, hooks Hooks) *App {
	return &App{
		platform:  platform,
		callbacks: callbacks,
		hooks:     hooks,
	}
}

// State returns the current state of the application.
func (a *App) State() State {
	a.crit.Lock()
	defer a.crit.Unlock()
	return a.state
}

func (a *App) setState(s State) {
	a.crit.Lock()
	defer a.crit.Unlock()
	a.state = s
}

func (a *App) now() time.Time {
	if a.clock != nil {
		return a.clock()
	}
	return time.Now()
}

// Run the application. Returns when the application has terminated.
func (a *App) Run(cfg Config) error {
	a.crit.Lock()
	if a.state != Uninitialized {
		a.crit.Unlock()
		return curated.Errorf(AlreadyRun)
	}
	a.state = Running
	a.cfg = cfg
	a.crit.Unlock()

	// the window and GL context belong to this thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer a.setState(Terminated)

	if err := a.platform.Open(cfg); err != nil {
		return curated.Errorf("app: %v", err)
	}
	defer a.platform.Close()

	lim := newFPSLimiter(cfg.FPS)
	defer lim.stop()
	logger.Logf(logger.Allow, "app", "frame rate: %d", cfg.FPS)

	a.crit.Lock()
	a.fps.reset()
	a.crit.Unlock()

	if a.hooks.Setup != nil {
		if err := a.hooks.Setup(); err != nil {
			return curated.Errorf("app: %v", err)
		}
	}
	if a.hooks.Viewport != nil {
		a.hooks.Viewport(Letterbox(cfg, cfg.Width, cfg.Height))
	}

	a.callbacks.Startup()

	for a.State() == Running {
		a.platform.PollEvents(a.handleEvent)
		a.callbacks.Update()
		a.callbacks.Draw()
		a.platform.Swap()

		t := a.now()
		a.crit.Lock()
		a.fps.tick(t)
		a.crit.Unlock()

		lim.wait()
	}

	a.callbacks.Shutdown()
	if a.hooks.Teardown != nil {
		a.hooks.Teardown()
	}

	return nil
}

// Quit ends the frame loop after the current frame. It has no effect unless
// the application is running.
func (a *App) Quit() {
	a.crit.Lock()
	defer a.crit.Unlock()
	if a.state == Running {
		a.state = ShuttingDown
	}
}

// SetFullscreen changes the fullscreen state of the window. It has no effect
// unless the application is running.
func (a *App) SetFullscreen(fullscreen bool) error {
	a.crit.Lock()
	running := a.state == Running
	if running {
		a.cfg.Fullscreen = fullscreen
	}
	a.crit.Unlock()

	if running {
		return a.platform.SetFullscreen(fullscreen)
	}
	return nil
}

// SetCursorVisible shows or hides the mouse cursor. It has no effect unless
// the application is running.
func (a *App) SetCursorVisible(visible bool) {
	a.crit.Lock()
	running := a.state == Running
	a.crit.Unlock()

	if running {
		a.platform.SetCursorVisible(visible)
	}
}

// AverageFPS returns the frame rate averaged over the last second.
func (a *App) AverageFPS() float32 {
	a.crit.Lock()
	defer a.crit.Unlock()
	return a.fps.average()
}

func (a *App) handleEvent(ev Event) {
	switch d := ev.Data.(type) {
	case EventDataKeyboard:
		if d.Down {
			a.callbacks.KeyDown(d.Code)
		} else {
			a.callbacks.KeyUp(d.Code)
		}

	case EventDataMouseButton:
		if d.Down {
			a.callbacks.MouseDown(d.Button.ID(), d.X, d.Y, d.Buttons)
		} else {
			a.callbacks.MouseUp(d.Button.ID(), d.X, d.Y, d.Buttons.released(d.Button))
		}

	case EventDataMouseMotion:
		// dragging is forwarded as a normal move
		a.callbacks.MouseMove(d.X, d.Y, d.Buttons)

	case EventDataResize:
		a.crit.Lock()
		cfg := a.cfg
		a.crit.Unlock()
		if a.hooks.Viewport != nil {
			a.hooks.Viewport(Letterbox(cfg, d.Width, d.Height))
		}
		a.callbacks.Resize(d.Width, d.Height, a.platform.IsFullscreen())

	default:
		if ev.ID == EventQuit {
			a.Quit()
		}
	}
}

// Letterbox returns the viewport for a window of the given size. Without
// ForceAspect the viewport is the whole window. Otherwise it is the largest
// centred rectangle with the AppWidth:AppHeight aspect ratio.
func Letterbox(cfg Config, width int, height int) image.Rectangle {
	if !cfg.ForceAspect || cfg.AppWidth <= 0 || cfg.AppHeight <= 0 || width <= 0 || height <= 0 {
		return image.Rect(0, 0, width, height)
	}

	// compare width/height with AppWidth/AppHeight without division
	if width*cfg.AppHeight > height*cfg.AppWidth {
		// window is too wide. bars left and right
		w := height * cfg.AppWidth / cfg.AppHeight
		x := (width - w) / 2
		return image.Rect(x, 0, x+w, height)
	}

	h := width * cfg.AppHeight / cfg.AppWidth
	y := (height - h) / 2
	return image.Rect(0, y, width, y+h)
}
