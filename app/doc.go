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

// Package app runs the application loop on behalf of the host.
//
// An App owns the single window of the process. Run() opens the window through
// a Platform, calls the setup hook and then the host's Startup callback,
// before entering the frame loop:
//
//	poll events -> Update -> Draw -> swap -> wait for next frame
//
// The loop ends after the frame in which Quit() was called, or in which the
// platform reported a quit event. The host's Shutdown callback is then called
// once, followed by the teardown hook.
//
// Run() can be called once per process. The state of the App is reported by
// State():
//
//	Uninitialized -> Running -> ShuttingDown -> Terminated
package app
