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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions use t.Fatalf() and should be used when later
// parts of a test depend on the value being correct, for example that a
// handle is non-null before it is passed to further operations.
//
// ExpectSuccess() and ExpectFailure() interpret their argument by type. A bool
// is a success if it is true and an error is a success if it is nil. An untyped
// nil is always a success, because that is how a nil error arrives once it is
// placed in an interface.
//
// The CompareWriter and CappedWriter types capture output written by the
// logger and the debugging dumps.
package test
