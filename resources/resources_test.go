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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/resources"
	"github.com/orlok/cinderbridge/test"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	test.DemandSuccess(t, os.MkdirAll(filepath.Dir(path), 0o700))
	test.DemandSuccess(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestSearchPaths(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	writeFile(t, filepath.Join(a, "shaders", "blur.vert"), "a")
	writeFile(t, filepath.Join(b, "shaders", "blur.vert"), "b")
	writeFile(t, filepath.Join(b, "ship.png"), "png")

	ldr := resources.NewLoader(a, b)

	// first search path wins
	data, err := ldr.ReadFile("shaders/blur.vert")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), "a")

	data, err = ldr.ReadFile("ship.png")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), "png")

	_, err = ldr.ReadFile("missing.png")
	test.ExpectSuccess(t, curated.Is(err, resources.NotFound))

	_, err = ldr.Resolve("")
	test.ExpectSuccess(t, curated.Is(err, resources.NotFound))
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "music", "theme.mp3"), "mp3")
	writeFile(t, filepath.Join(dir, "resources.yaml"), "resources:\n  theme: music/theme.mp3\n  gone: music/gone.mp3\n")

	ldr := resources.NewLoader()
	test.DemandSuccess(t, ldr.LoadManifest(filepath.Join(dir, "resources.yaml")))

	p, err := ldr.Resolve("theme")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(dir, "music", "theme.mp3"))

	// manifest entry pointing to a missing file
	_, err = ldr.Resolve("gone")
	test.ExpectSuccess(t, curated.Is(err, resources.NotFound))

	// missing manifest is not an error
	test.ExpectSuccess(t, ldr.LoadManifest(filepath.Join(dir, "none.yaml")))

	// malformed manifest is
	writeFile(t, filepath.Join(dir, "bad.yaml"), "resources: [1, 2")
	test.ExpectFailure(t, ldr.LoadManifest(filepath.Join(dir, "bad.yaml")))
}
