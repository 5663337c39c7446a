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

package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/orlok/cinderbridge/logger"
	"github.com/orlok/cinderbridge/test"
)

func TestZapEcho(t *testing.T) {
	log := logger.NewLogger(100)
	var b bytes.Buffer
	log.SetEchoer(logger.NewZapEcho(&b))

	log.Log(logger.Allow, "bridge", "handle: stale texture handle")

	var rec map[string]any
	test.DemandSuccess(t, json.Unmarshal(b.Bytes(), &rec))
	test.ExpectEquality(t, rec["msg"], any("handle: stale texture handle"))
	test.ExpectEquality(t, rec["tag"], any("bridge"))
	test.ExpectEquality(t, rec["level"], any("info"))
}

func TestSlogHandler(t *testing.T) {
	log := logger.NewLogger(100)
	sl := slog.New(logger.NewSlogHandler(log, "gg", slog.LevelInfo))

	sl.Debug("pipeline state")
	test.ExpectEquality(t, len(log.Copy()), 0)

	sl.Warn("fallback", "renderer", "cpu")
	sl.With("size", 4).WithGroup("buf").Info("alloc", "bytes", 64)

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "gg: fallback renderer=cpu\ngg: alloc size=4 buf.bytes=64\n")
}
