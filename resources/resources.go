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

package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/logger"
	"gopkg.in/yaml.v3"
)

// NotFound is the error pattern for a resource name that cannot be resolved.
const NotFound = "resources: not found: %s"

// manifest is the YAML structure of a manifest file.
type manifest struct {
	Resources map[string]string `yaml:"resources"`
}

// Loader resolves and loads named resources. It is safe for concurrent use.
type Loader struct {
	crit     sync.Mutex
	paths    []string
	manifest map[string]string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(paths ...string) *Loader {
	ldr := &Loader{
		manifest: make(map[string]string),
	}
	for _, p := range paths {
		ldr.AddPath(p)
	}
	return ldr
}

// AddPath adds a search path. Empty paths are ignored.
func (ldr *Loader) AddPath(path string) {
	if path == "" {
		return
	}
	ldr.crit.Lock()
	defer ldr.crit.Unlock()
	ldr.paths = append(ldr.paths, path)
}

// LoadManifest reads a manifest file. Entries are added to any existing
// entries, replacing those with the same name. A missing manifest is not an
// error.
func (ldr *Loader) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("resources: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("resources: manifest: %w", err)
	}

	dir := filepath.Dir(path)

	ldr.crit.Lock()
	defer ldr.crit.Unlock()

	for name, p := range m.Resources {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		ldr.manifest[name] = p
	}

	logger.Logf(logger.Allow, "resources", "manifest %s: %d entries", path, len(m.Resources))

	return nil
}

// Resolve returns the path of the named resource.
func (ldr *Loader) Resolve(name string) (string, error) {
	if name == "" {
		return "", curated.Errorf(NotFound, "(empty name)")
	}

	ldr.crit.Lock()
	defer ldr.crit.Unlock()

	if p, ok := ldr.manifest[name]; ok {
		if isFile(p) {
			return p, nil
		}
		return "", curated.Errorf(NotFound, name)
	}

	if isFile(name) {
		return name, nil
	}

	if !filepath.IsAbs(name) {
		for _, b := range ldr.paths {
			p := filepath.Join(b, name)
			if isFile(p) {
				return p, nil
			}
		}
	}

	return "", curated.Errorf(NotFound, name)
}

// ReadFile resolves the named resource and returns its contents.
func (ldr *Loader) ReadFile(name string) ([]byte, error) {
	p, err := ldr.Resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	return data, nil
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
