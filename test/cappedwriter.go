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

import (
	"fmt"
)

// CappedWriter is an io.Writer that stops buffering once a size limit is
// reached. Writes beyond the limit are dropped without error. Useful for
// checking the start of a large dump.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("capped writer: invalid size (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}

// Write implements the io.Writer interface.
func (w *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), w.size-len(w.buffer))
	w.buffer = append(w.buffer, p[:n]...)
	return n, nil
}
