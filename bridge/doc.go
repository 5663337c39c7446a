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

// Package bridge is the service behind the exported cinder_* functions.
//
// A single Service owns every resource the host can refer to. Resources are
// kept in generation-checked arenas (see the handle package) and the host
// only ever sees the handle values. A handle that has been freed, or that was
// never issued, is reported as a stale handle error rather than reaching
// another resource.
//
// The Service also owns the state that the host shares between calls: the
// application, the active gradient selector and the last line width given to
// the device. All of it is guarded by a single mutex, so the Service can be
// used from the audio, frame limiter and statsview goroutines as well as from
// the thread running the application.
//
// Every operation returns an explicit error. Flattening errors to the null
// handle and diagnostic string convention of the C interface is left to the
// caller.
//
// Operations that need a rendering device return a NoDevice error until
// Run() has opened the window, unless the Environment supplied a device
// directly.
package bridge
