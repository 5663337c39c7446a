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

package test

import "sync"

// CompareWriter is an io.Writer that keeps everything written to it so that
// it can be compared against an expected string. It is safe to use from the
// audio and limiter goroutines.
type CompareWriter struct {
	crit   sync.Mutex
	buffer []byte
}

// Write implements the io.Writer interface.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.buffer = w.buffer[:0]
}

// Compare buffered output with an expected string.
func (w *CompareWriter) Compare(s string) bool {
	return s == w.String()
}

func (w *CompareWriter) String() string {
	w.crit.Lock()
	defer w.crit.Unlock()
	return string(w.buffer)
}
