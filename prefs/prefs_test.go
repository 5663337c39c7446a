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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/orlok/cinderbridge/prefs"
	"github.com/orlok/cinderbridge/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "cinderbridge", "prefs")
}

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("gl.vsync", &v))
	test.ExpectSuccess(t, dsk.Add("log.echo", &w))
	test.ExpectSuccess(t, dsk.Add("font.shaping", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "font.shaping :: true\ngl.vsync :: true\nlog.echo :: false\n")

	test.ExpectFailure(t, v.Set(1))
}

func TestIntAndFloat(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var buf prefs.Int
	var vol prefs.Float
	test.ExpectSuccess(t, dsk.Add("audio.buffer", &buf))
	test.ExpectSuccess(t, dsk.Add("audio.volume", &vol))

	test.ExpectSuccess(t, buf.Set("2048"))
	test.ExpectSuccess(t, vol.Set(0.5))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "audio.buffer :: 2048\naudio.volume :: 0.500\n")

	test.ExpectFailure(t, buf.Set("---"))
	test.ExpectFailure(t, buf.Set(1.0))
	test.ExpectFailure(t, vol.Set("loud"))
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("resources.path", &s))
	test.ExpectSuccess(t, dsk.Add("audio.enabled", &b))

	// file doesn't exist yet so Load(true) will create it
	test.ExpectSuccess(t, b.Set(true))
	test.DemandSuccess(t, dsk.Load(true))
	cmpFile(t, fn, "audio.enabled :: true\nresources.path :: \n")

	test.ExpectSuccess(t, s.Set("assets"))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, s.String(), "")
	test.ExpectEquality(t, b.Get().(bool), false)

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, s.String(), "assets")
	test.ExpectEquality(t, b.Get().(bool), true)
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("log.echo", &b))

	prefs.PushCommandLineStack("log.echo::true")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get().(bool), true)
}

// a second disk instance writing to the same file must not clobber the
// values written by the first
func TestTwoDisks(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestInvalidKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("two words", &v))
	test.ExpectFailure(t, dsk.Add("a::b", &v))
	test.ExpectSuccess(t, dsk.Add("ok", &v))
	test.ExpectFailure(t, dsk.Add("ok", &v))
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the limit does not bring back the cropped information
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Float
	var seen float64
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(float64)
		return nil
	})
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(float64) > 1.0 {
			return fmt.Errorf("too large")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(0.25))
	test.ExpectEquality(t, seen, 0.25)
	test.ExpectFailure(t, v.Set(2.0))
	test.ExpectEquality(t, v.Get().(float64), 0.25)
}
