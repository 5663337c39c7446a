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

package bridge

import (
	"image"
	"sync"

	"github.com/orlok/cinderbridge/app"
	"github.com/orlok/cinderbridge/audio"
	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/font"
	"github.com/orlok/cinderbridge/gfx"
	"github.com/orlok/cinderbridge/handle"
	"github.com/orlok/cinderbridge/logger"
	"github.com/orlok/cinderbridge/resources"
	"github.com/orlok/cinderbridge/statsview"
	"github.com/orlok/cinderbridge/surface"
	"github.com/orlok/cinderbridge/version"
	"github.com/orlok/cinderbridge/vg"
)

// Error patterns raised by the bridge.
const (
	NoDevice        = "bridge: no device"
	NoPlatform      = "bridge: no platform"
	TextureBorrowed = "texture: borrowed from framebuffer"
	ShaderLoad      = "bridge: error loading shader program: %v"
)

const logTag = "bridge"

type texture struct {
	id      uint32
	width   int
	height  int
	flipped bool

	// the framebuffer that owns the texture. null if the texture is owned by
	// the host
	owner Framebuffer
}

type framebuffer struct {
	id  uint32
	tex Texture
}

type program struct {
	id uint32
}

type fontRecord struct {
	font *font.Font

	// device texture of the glyph atlas. created on first use
	atlas uint32
}

// Handle types issued by the Service.
type (
	Surface     = handle.Handle[*surface.Surface]
	Texture     = handle.Handle[*texture]
	Framebuffer = handle.Handle[*framebuffer]
	Program     = handle.Handle[*program]
	Context     = handle.Handle[*vg.Context]
	Font        = handle.Handle[*fontRecord]
	Sound       = handle.Handle[*audio.Sound]
	Track       = handle.Handle[*audio.Track]
)

// AudioOutput plays the mixer until closed.
type AudioOutput interface {
	Close()
}

// Environment provides the platform specific parts of the Service.
type Environment struct {
	Platform  app.Platform
	Callbacks app.Callbacks

	// Device is used when not nil. Otherwise NewDevice is called after the
	// window has opened
	Device    gfx.Device
	NewDevice func() (gfx.Device, error)

	// OpenAudio is called after the window has opened if audio is enabled.
	// the bufferLength is in frames
	OpenAudio func(mixer *audio.Mixer, bufferLength int) (AudioOutput, error)

	Loader *resources.Loader
	Prefs  *Preferences
}

// Service implements every bridge operation.
type Service struct {
	crit sync.Mutex

	env    Environment
	prefs  *Preferences
	loader *resources.Loader

	app    *app.App
	dev    gfx.Device
	mixer  *audio.Mixer
	output AudioOutput

	gradients vg.Selector

	// the last width given to the device by DrawLine(). negative if no width
	// has been given yet
	lineWidth float32

	surfaces     *handle.Arena[*surface.Surface]
	textures     *handle.Arena[*texture]
	framebuffers *handle.Arena[*framebuffer]
	programs     *handle.Arena[*program]
	contexts     *handle.Arena[*vg.Context]
	fonts        *handle.Arena[*fontRecord]
	sounds       *handle.Arena[*audio.Sound]
	tracks       *handle.Arena[*audio.Track]

	texturesDirect  int
	texturesUpdated int
	lineWidthPushes int
}

// NewService is the preferred method of initialisation for the Service type.
func NewService(env Environment) (*Service, error) {
	s := &Service{
		env:          env,
		prefs:        env.Prefs,
		loader:       env.Loader,
		dev:          env.Device,
		mixer:        audio.NewMixer(),
		lineWidth:    -1,
		surfaces:     handle.NewArena[*surface.Surface]("surface"),
		textures:     handle.NewArena[*texture]("texture"),
		framebuffers: handle.NewArena[*framebuffer]("framebuffer"),
		programs:     handle.NewArena[*program]("shader program"),
		contexts:     handle.NewArena[*vg.Context]("vg context"),
		fonts:        handle.NewArena[*fontRecord]("font"),
		sounds:       handle.NewArena[*audio.Sound]("sound"),
		tracks:       handle.NewArena[*audio.Track]("track"),
	}

	if s.prefs == nil {
		var err error
		s.prefs, err = NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	if s.loader == nil {
		s.loader = resources.NewLoader(s.prefs.ResourcesPath.String())
		if err := s.loader.LoadManifest(s.prefs.ResourcesManifest.String()); err != nil {
			logger.Log(logger.Allow, logTag, err)
		}
	}

	s.app = app.NewApp(env.Platform, env.Callbacks, app.Hooks{
		Setup:    s.setup,
		Viewport: s.viewport,
		Teardown: s.teardown,
	})

	return s, nil
}

// Preferences returns the preferences used by the service.
func (s *Service) Preferences() *Preferences {
	return s.prefs
}

// Mixer returns the audio mixer.
func (s *Service) Mixer() *audio.Mixer {
	return s.mixer
}

// device returns the device or a NoDevice error. Must be called with the
// critical section held.
func (s *Service) device() (gfx.Device, error) {
	if s.dev == nil {
		return nil, curated.Errorf(NoDevice)
	}
	return s.dev, nil
}

// Run the application. Returns after the application has terminated.
func (s *Service) Run(cfg app.Config) error {
	if s.env.Platform == nil {
		return curated.Errorf(NoPlatform)
	}
	cfg.VSync = s.prefs.VSync.Get().(bool)
	return s.app.Run(cfg)
}

// setup is called by the application after the window has opened and before
// the host's startup callback.
func (s *Service) setup() error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.dev == nil {
		if s.env.NewDevice == nil {
			return curated.Errorf(NoDevice)
		}
		dev, err := s.env.NewDevice()
		if err != nil {
			return err
		}
		s.dev = dev
	}

	logger.Log(logger.Allow, logTag, version.String())

	s.dev.SetBlend(gfx.BlendAlpha)
	s.lineWidth = -1
	s.gradients.Clear()

	if s.prefs.AudioEnabled.Get().(bool) && s.env.OpenAudio != nil {
		out, err := s.env.OpenAudio(s.mixer, s.prefs.AudioBuffer.Get().(int))
		if err != nil {
			// the application runs without sound
			logger.Logf(logger.Allow, logTag, "audio: %v", err)
		} else {
			s.output = out
		}
	}

	if s.prefs.StatsView.Get().(bool) {
		statsview.Launch()
	}

	return nil
}

func (s *Service) viewport(vp image.Rectangle) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if s.dev != nil {
		s.dev.SetViewport(vp.Min.X, vp.Min.Y, vp.Dx(), vp.Dy())
	}
}

// teardown is called by the application after the host's shutdown callback.
// Resources the host did not free are released and their handles become
// stale.
func (s *Service) teardown() {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.output != nil {
		s.output.Close()
		s.output = nil
	}

	leaked := s.surfaces.Len() + s.textures.Len() + s.framebuffers.Len() + s.programs.Len() +
		s.contexts.Len() + s.fonts.Len() + s.sounds.Len() + s.tracks.Len()
	if leaked > 0 {
		logger.Logf(logger.Allow, logTag, "releasing %d resources at shutdown", leaked)
	}

	s.contexts.Clear(func(_ Context, c *vg.Context) {
		_ = c.Close()
	})
	s.fonts.Clear(func(_ Font, f *fontRecord) {
		_ = f.font.Close()
	})
	s.tracks.Clear(func(_ Track, t *audio.Track) {
		t.Close()
	})
	s.surfaces.Clear(nil)
	s.sounds.Clear(nil)

	// device resources are released with the device
	s.textures.Clear(nil)
	s.framebuffers.Clear(nil)
	s.programs.Clear(nil)

	if s.dev != nil {
		s.dev.Destroy()
		s.dev = nil
	}
}

// Quit the application after the current frame.
func (s *Service) Quit() {
	s.app.Quit()
}

// SetFullscreen changes the fullscreen state of the window.
func (s *Service) SetFullscreen(fullscreen bool) error {
	return s.app.SetFullscreen(fullscreen)
}

// SetCursorVisible shows or hides the mouse cursor.
func (s *Service) SetCursorVisible(visible bool) error {
	if s.env.Platform == nil {
		return curated.Errorf(NoPlatform)
	}
	s.app.SetCursorVisible(visible)
	return nil
}

// AverageFPS returns the frame rate averaged over the last second.
func (s *Service) AverageFPS() float32 {
	return s.app.AverageFPS()
}

// State returns the state of the application.
func (s *Service) State() app.State {
	return s.app.State()
}

// ResetGradients makes an empty linear gradient with no colour stops the
// active gradient.
func (s *Service) ResetGradients() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.gradients.Reset()
}
