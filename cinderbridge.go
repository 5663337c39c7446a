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

// Cinderbridge is built as a C shared library with:
//
//	go build -buildmode=c-shared -o libcinderbridge.so .
//
// The exported cinder_* functions give a host program windowing, OpenGL
// drawing, vector graphics, fonts and audio. Resources are passed to the host
// as opaque handles. A handle that has been freed is detected and the call is
// logged and ignored.
//
// The host provides the callbacks declared in callbacks.go. Any that are
// missing are skipped.
//
// Preferences are read from the cinderbridge/prefs file in the user's
// configuration directory. Values in the CINDERBRIDGE_PREFS environment
// variable take precedence, for example:
//
//	CINDERBRIDGE_PREFS="log.echo::true; log.format::json" ./game
package main

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/gogpu/gg"
	"github.com/orlok/cinderbridge/app/sdlplatform"
	"github.com/orlok/cinderbridge/audio"
	"github.com/orlok/cinderbridge/audio/sdlaudio"
	"github.com/orlok/cinderbridge/bridge"
	"github.com/orlok/cinderbridge/gfx"
	"github.com/orlok/cinderbridge/gfx/gl21"
	"github.com/orlok/cinderbridge/logger"
	"github.com/orlok/cinderbridge/prefs"
	"github.com/orlok/cinderbridge/resources"
)

// the environment variable holding command line style preferences
const prefsEnv = "CINDERBRIDGE_PREFS"

const logTag = "bridge"

// main is required by the c-shared build mode but is never called.
func main() {}

var (
	svcOnce sync.Once
	svc     *bridge.Service
)

// service returns the single Service used by every export. It is created on
// first use.
func service() *bridge.Service {
	svcOnce.Do(func() {
		p := loadPreferences(os.Getenv(prefsEnv))
		configureLogging(p, os.Stderr)
		gg.SetLogger(slog.New(logger.SlogHandler("gg", slog.LevelInfo)))

		var err error
		svc, err = bridge.NewService(bridge.Environment{
			Platform:  sdlplatform.NewPlatform(),
			Callbacks: hostCallbacks{},
			NewDevice: func() (gfx.Device, error) {
				return gl21.NewDevice()
			},
			OpenAudio: func(mixer *audio.Mixer, bufferLength int) (bridge.AudioOutput, error) {
				return sdlaudio.NewAudio(mixer, bufferLength)
			},
			Prefs: p,
		})
		if err != nil {
			// preferences have already been created so this is not expected
			panic(err)
		}
	})
	return svc
}

// loadPreferences reads the preferences file. Values in the cmdline string
// override values from the file. If the file can not be used the preferences
// are kept in memory only.
func loadPreferences(cmdline string) *bridge.Preferences {
	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, logTag, "unused preferences: %s", unused)
			}
		}()
	}

	pth, err := resources.ConfigPath("prefs")
	if err == nil {
		var p *bridge.Preferences
		p, err = bridge.NewPreferences(pth)
		if err == nil {
			return p
		}
	}
	logger.Logf(logger.Allow, logTag, "preferences: %v", err)

	p, err := bridge.NewPreferences("")
	if err == nil {
		return p
	}
	logger.Logf(logger.Allow, logTag, "preferences: %v", err)

	// defaults only
	if cmdline != "" {
		prefs.PopCommandLineStack()
		prefs.PushCommandLineStack("")
	}
	p, _ = bridge.NewPreferences("")
	return p
}

// configureLogging sets the echo of the central logger from the preferences.
// Later changes to the preferences take effect immediately.
func configureLogging(p *bridge.Preferences, output io.Writer) {
	apply := func() {
		if !p.LogEcho.Get().(bool) {
			logger.SetEchoer(nil)
			return
		}
		logger.SetEchoer(echoFor(p.LogFormat.Get().(string), output))
	}

	p.LogEcho.SetHookPost(func(prefs.Value) error {
		apply()
		return nil
	})
	p.LogFormat.SetHookPost(func(prefs.Value) error {
		apply()
		return nil
	})

	apply()
}

func echoFor(format string, output io.Writer) logger.Echo {
	if format == "json" {
		return logger.NewZapEcho(output)
	}
	return textEcho{w: output}
}

type textEcho struct {
	w io.Writer
}

func (te textEcho) Echo(e logger.Entry) {
	_, _ = io.WriteString(te.w, e.String())
}
