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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/handle"
)

// Stats is a snapshot of the resources held by the Service.
type Stats struct {
	Surfaces     int
	Textures     int
	Framebuffers int
	Programs     int
	Contexts     int
	Fonts        int
	Sounds       int
	Tracks       int
	Voices       int

	// textures created from a whole surface in one step
	TexturesDirect int

	// textures created empty and then updated from part of a surface
	TexturesUpdated int

	// number of times DrawLine() gave a new line width to the device
	LineWidthPushes int
}

// Stats returns the current resource counts.
func (s *Service) Stats() Stats {
	s.crit.Lock()
	defer s.crit.Unlock()
	return Stats{
		Surfaces:        s.surfaces.Len(),
		Textures:        s.textures.Len(),
		Framebuffers:    s.framebuffers.Len(),
		Programs:        s.programs.Len(),
		Contexts:        s.contexts.Len(),
		Fonts:           s.fonts.Len(),
		Sounds:          s.sounds.Len(),
		Tracks:          s.tracks.Len(),
		Voices:          s.mixer.NumVoices(),
		TexturesDirect:  s.texturesDirect,
		TexturesUpdated: s.texturesUpdated,
		LineWidthPushes: s.lineWidthPushes,
	}
}

type textureDump struct {
	Handle  string
	ID      uint32
	Width   int
	Height  int
	Flipped bool
	Owner   *framebufferDump
}

type framebufferDump struct {
	Handle string
	ID     uint32
}

type fontDump struct {
	Handle string
	Name   string
	Size   float64
	Atlas  uint32
}

type handleDump struct {
	Surfaces     []string
	Textures     []*textureDump
	Framebuffers []*framebufferDump
	Programs     []string
	Contexts     []string
	Fonts        []*fontDump
	Sounds       []string
	Tracks       []string
}

func handles[T any](a *handle.Arena[T]) []string {
	var l []string
	a.Each(func(h handle.Handle[T], _ T) {
		l = append(l, h.String())
	})
	return l
}

// dumpWriter records the first error from the underlying writer. memviz does
// not report write errors itself.
type dumpWriter struct {
	w   io.Writer
	err error
}

func (dw *dumpWriter) Write(p []byte) (int, error) {
	if dw.err != nil {
		return 0, dw.err
	}
	n, err := dw.w.Write(p)
	if err != nil {
		dw.err = err
	}
	return n, err
}

// DumpHandles writes a graphviz description of the live handles. Borrowed
// textures point to the framebuffer that owns them.
func (s *Service) DumpHandles(w io.Writer) error {
	s.crit.Lock()
	defer s.crit.Unlock()

	d := &handleDump{
		Surfaces: handles(s.surfaces),
		Programs: handles(s.programs),
		Contexts: handles(s.contexts),
		Sounds:   handles(s.sounds),
		Tracks:   handles(s.tracks),
	}

	owners := make(map[Framebuffer]*framebufferDump)
	s.framebuffers.Each(func(h Framebuffer, fb *framebuffer) {
		fd := &framebufferDump{Handle: h.String(), ID: fb.id}
		owners[h] = fd
		d.Framebuffers = append(d.Framebuffers, fd)
	})

	s.textures.Each(func(h Texture, tex *texture) {
		d.Textures = append(d.Textures, &textureDump{
			Handle:  h.String(),
			ID:      tex.id,
			Width:   tex.width,
			Height:  tex.height,
			Flipped: tex.flipped,
			Owner:   owners[tex.owner],
		})
	})

	s.fonts.Each(func(h Font, f *fontRecord) {
		d.Fonts = append(d.Fonts, &fontDump{
			Handle: h.String(),
			Name:   f.font.Name(),
			Size:   f.font.Size(),
			Atlas:  f.atlas,
		})
	})

	dw := &dumpWriter{w: w}
	memviz.Map(dw, d)
	if dw.err != nil {
		return curated.Errorf("bridge: dump handles: %v", dw.err)
	}
	return nil
}
