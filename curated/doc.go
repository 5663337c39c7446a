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

// Package curated provides errors that are identified by the pattern used to
// create them rather than by a sentinel value.
//
// Curated errors are created with Errorf(). Formatting is deferred until the
// Error() function is called, so the pattern and the values remain available
// for inspection:
//
//	const NotFound = "resources: not found: %s"
//
//	err := curated.Errorf(NotFound, "ship.png")
//
//	if curated.Is(err, NotFound) {
//		// the resource is missing. the caller returns a null handle
//	}
//
// Has() looks for a pattern anywhere in a chain of curated errors. A chain is
// formed by passing one curated error as a value to another:
//
//	err := curated.Errorf("surface: %v", curated.Errorf(NotFound, "ship.png"))
//
//	curated.Has(err, NotFound) // true
//	curated.Is(err, NotFound)  // false
//
// IsAny() answers whether an error was created by Errorf() at all. Errors that
// are not curated are unexpected and the bridge logs them with more detail.
//
// The Error() string is normalised so that duplicate adjacent parts of the
// chain are collapsed. For example "gfx: gfx: shader compile: ..." is reported
// as "gfx: shader compile: ...". Parts are separated by the sub-string ": ".
package curated
