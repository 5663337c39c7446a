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

package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// slogHandler adds slog records to a Logger under a fixed tag.
type slogHandler struct {
	log   *Logger
	tag   string
	level slog.Level
	attrs []slog.Attr
	group string
}

// NewSlogHandler returns a slog.Handler that adds records at or above the
// level to the Logger. Attributes are appended to the message as key=value
// pairs.
func NewSlogHandler(log *Logger, tag string, level slog.Level) slog.Handler {
	return &slogHandler{log: log, tag: tag, level: level}
}

// SlogHandler is like NewSlogHandler but adds records to the central logger.
func SlogHandler(tag string, level slog.Level) slog.Handler {
	return NewSlogHandler(central, tag, level)
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	s := strings.Builder{}
	s.WriteString(r.Message)

	// attributes from WithAttrs() already carry their group
	for _, a := range h.attrs {
		fmt.Fprintf(&s, " %s=%v", a.Key, a.Value.Resolve())
	}

	r.Attrs(func(a slog.Attr) bool {
		if a.Equal(slog.Attr{}) {
			return true
		}
		fmt.Fprintf(&s, " %s=%v", h.key(a.Key), a.Value.Resolve())
		return true
	})

	h.log.Log(Allow, h.tag, s.String())
	return nil
}

func (h *slogHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := *h
	n.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		n.attrs = append(n.attrs, slog.Attr{Key: h.key(a.Key), Value: a.Value})
	}
	return &n
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	n := *h
	if n.group == "" {
		n.group = name
	} else {
		n.group = n.group + "." + name
	}
	return &n
}
