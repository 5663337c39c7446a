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
	"github.com/gogpu/gg/text"
	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/prefs"
)

// Preferences for the bridge.
type Preferences struct {
	dsk *prefs.Disk

	ResourcesPath     prefs.String
	ResourcesManifest prefs.String
	AudioEnabled      prefs.Bool
	AudioBuffer       prefs.Int
	VSync             prefs.Bool
	FontShaping       prefs.Bool
	LogEcho           prefs.Bool
	LogFormat         prefs.String
	StatsView         prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty the preferences are not stored on disk
// but values on the command line stack are still applied.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.FontShaping.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			text.SetShaper(text.NewGoTextShaper())
		} else {
			text.SetShaper(nil)
		}
		return nil
	})

	p.LogFormat.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case "text", "json":
			return nil
		}
		return curated.Errorf("bridge: log format must be text or json (%v)", v)
	})

	if path == "" {
		return p, p.applyCommandLine()
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, e := range p.entries() {
		if err := p.dsk.Add(e.key, e.value); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

type entry struct {
	key   string
	value interface {
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
		String() string
	}
}

func (p *Preferences) entries() []entry {
	return []entry{
		{"resources.path", &p.ResourcesPath},
		{"resources.manifest", &p.ResourcesManifest},
		{"audio.enabled", &p.AudioEnabled},
		{"audio.buffer", &p.AudioBuffer},
		{"gl.vsync", &p.VSync},
		{"font.shaping", &p.FontShaping},
		{"log.echo", &p.LogEcho},
		{"log.format", &p.LogFormat},
		{"debug.statsview", &p.StatsView},
	}
}

// applyCommandLine sets every value found on the prefs command line stack.
func (p *Preferences) applyCommandLine() error {
	for _, e := range p.entries() {
		if ok, v := prefs.GetCommandLinePref(e.key); ok {
			if err := e.value.Set(v); err != nil {
				return curated.Errorf("bridge: prefs: %s: %v", e.key, err)
			}
		}
	}
	return nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.ResourcesPath.Set("resources")
	_ = p.ResourcesManifest.Set("resources.yaml")
	_ = p.AudioEnabled.Set(true)
	_ = p.AudioBuffer.Set(1024)
	_ = p.VSync.Set(true)
	_ = p.FontShaping.Set(false)
	_ = p.LogEcho.Set(false)
	_ = p.LogFormat.Set("text")
	_ = p.StatsView.Set(false)
}

// Save preferences to disk. Does nothing if the preferences have no disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
