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

// Package vg is the vector graphics layer of the bridge. A Context draws into
// a surface.Surface using a path, a paint and stroke parameters, in the manner
// of a cairo context.
//
// Drawing is delegated to gogpu/gg. The Context keeps two gg contexts that
// share the surface's pixmap: one holds the user's path and transform and the
// other is used for Paint(), which fills the entire surface without
// disturbing the path.
//
// Gradients are built separately and then applied to a context as paint. The
// Selector type is the "active gradient" that the C interface mutates with
// its set-gradient and add-color-stop calls.
//
// Coordinates of gradients and surface paints are fixed in user space at the
// moment they are applied, using the context's transform at that time. A
// later call to SetMatrix() does not move a paint that has already been set.
package vg
