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
	"errors"
	"strings"
	"testing"

	"github.com/orlok/cinderbridge/logger"
	"github.com/orlok/cinderbridge/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "surface", "created 64x64")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "surface: created 64x64\n")

	w.Reset()
	log.Log(logger.Allow, "texture", "created 32x32")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "surface: created 64x64\ntexture: created 32x32\n")

	// asking for too many entries is fine
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "surface: created 64x64\ntexture: created 32x32\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "texture: created 32x32\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeated(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	for range 3 {
		log.Log(logger.Allow, "bridge", "handle: stale texture handle")
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "bridge: handle: stale texture handle (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	log.Log(logger.Allow, "a", 1)
	log.Log(logger.Allow, "b", 2)
	log.Log(logger.Allow, "c", 3)

	e := log.Copy()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].Tag, "b")
	test.ExpectEquality(t, e[1].Tag, "c")
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var tog logger.Toggle
	tog.Mute = true
	log.Log(&tog, "tag", "muted")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	tog.Mute = false
	log.Log(&tog, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("inner"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\ntag: wrapped: inner\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	cw := &test.CompareWriter{}
	log.SetEcho(cw)
	log.Log(logger.Allow, "glsl", "vendor: headless")
	test.ExpectSuccess(t, cw.Compare("glsl: vendor: headless\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "glsl", "renderer: headless")
	test.ExpectSuccess(t, cw.Compare("glsl: vendor: headless\n"))
}
