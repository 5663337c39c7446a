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

// Package logger is the central log for the bridge. Entries are kept in a
// ring of fixed size and can be written out, tailed or echoed as they arrive.
//
// Every call to Log() or Logf() takes a Permission. Use logger.Allow when the
// entry should always be recorded.
//
//	logger.Logf(logger.Allow, "glsl", "vendor: %s", vendor)
//
// Consecutive identical entries are collapsed into one entry with a repeat
// count. This keeps the log readable when the host calls a failing operation
// once per frame.
//
// The package level functions use a single central Logger. Other Logger
// instances can be created with NewLogger(), which is useful for testing.
package logger
