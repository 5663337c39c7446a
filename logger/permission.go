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

package logger

// Permission implementations decide whether a log entry is accepted.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow is the Permission to use when logging must always happen.
var Allow Permission = allow{}

// Toggle is a Permission that can be switched at runtime. The zero value
// allows logging. It is used for the noisier tags, such as per-call handle
// errors, so that a host can silence them.
type Toggle struct {
	Mute bool
}

func (t *Toggle) AllowLogging() bool {
	return !t.Mute
}
