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

// Package statsview runs a local HTTP server with runtime statistics of the
// bridge process. It is launched when the debug.statsview preference is set.
//
// After launch, graphical statistics are at:
//
//	localhost:12600/debug/statsview
//
// And the standard Go pprof statistics are at:
//
//	localhost:12600/debug/pprof/
package statsview
