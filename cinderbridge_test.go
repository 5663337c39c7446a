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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orlok/cinderbridge/bridge"
	"github.com/orlok/cinderbridge/logger"
	"github.com/orlok/cinderbridge/test"
)

func TestEchoFor(t *testing.T) {
	e := logger.Entry{Timestamp: time.Now(), Tag: "bridge", Detail: "no device"}

	var b bytes.Buffer
	echoFor("text", &b).Echo(e)
	test.ExpectEquality(t, b.String(), "bridge: no device\n")

	b.Reset()
	echoFor("json", &b).Echo(e)
	var rec map[string]any
	test.DemandSuccess(t, json.Unmarshal(b.Bytes(), &rec))
	test.ExpectEquality(t, rec["msg"], any("no device"))
	test.ExpectEquality(t, rec["tag"], any("bridge"))
}

func TestLoadPreferences(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	p := loadPreferences("audio.buffer::128")
	test.ExpectEquality(t, p.AudioBuffer.Get().(int), 128)

	// defaults are written when there is no file
	_, err := os.Stat(filepath.Join(dir, "cinderbridge", "prefs"))
	test.ExpectSuccess(t, err)

	// a bad value is logged and the defaults are used
	p = loadPreferences("log.format::xml")
	test.ExpectEquality(t, p.LogFormat.String(), "text")
}

func TestConfigureLogging(t *testing.T) {
	t.Cleanup(func() {
		logger.SetEchoer(nil)
	})

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := loadPreferences("")
	test.DemandSuccess(t, p.LogEcho.Set(false))

	var b bytes.Buffer
	configureLogging(p, &b)
	logger.Log(logger.Allow, "test", "quiet")
	test.ExpectEquality(t, b.Len(), 0)

	test.DemandSuccess(t, p.LogEcho.Set(true))
	logger.Log(logger.Allow, "test", "loud")
	test.ExpectEquality(t, b.String(), "test: loud\n")

	b.Reset()
	test.DemandSuccess(t, p.LogFormat.Set("json"))
	logger.Log(logger.Allow, "test", "structured")
	test.ExpectSuccess(t, json.Valid(b.Bytes()))
}

func TestPruneFontNames(t *testing.T) {
	kept := bridge.Font(1)
	gone := bridge.Font(2)

	name := fontName(kept, "Go Regular")
	test.ExpectEquality(t, fontName(kept, "Go Regular"), name)
	fontName(gone, "Go Mono")

	pruneFontNames(func(h bridge.Font) bool { return h == kept })
	_, ok := cstrings.fontNames[kept]
	test.ExpectSuccess(t, ok)
	_, ok = cstrings.fontNames[gone]
	test.ExpectFailure(t, ok)

	// nothing is live after shutdown
	pruneFontNames(func(bridge.Font) bool { return false })
	test.ExpectEquality(t, len(cstrings.fontNames), 0)
}
