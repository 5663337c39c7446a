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
	"os"
	"path/filepath"
)

const configDir = "cinderbridge"

// ConfigPath returns the path rooted in the user's configuration directory.
// The directories leading to the final element are created if necessary. The
// final element is not touched.
//
// If the user configuration directory cannot be determined then the path is
// rooted in the current working directory, in a hidden directory.
func ConfigPath(path ...string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
		path = append([]string{"." + configDir}, path...)
	} else {
		path = append([]string{configDir}, path...)
	}

	p := filepath.Join(append([]string{base}, path...)...)

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}

	return p, nil
}
