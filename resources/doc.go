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

// Package resources resolves the resource names given to the load functions
// of the bridge (surfaces, fonts, sounds, music and shader sources) to files.
//
// A name is resolved in this order:
//
//  1. an entry in the manifest, if one has been loaded
//  2. the name as a path, if that file exists
//  3. the name joined to each search path, in the order they were added
//
// The manifest is a YAML file mapping names to paths. Relative paths in the
// manifest are relative to the directory containing the manifest:
//
//	resources:
//	  ship: images/ship.png
//	  theme: music/theme.mp3
//
// ConfigPath() returns paths in the user's configuration directory. It is
// used for the preferences file.
package resources
