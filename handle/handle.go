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

// Package handle issues generation-checked handles for objects that are
// referenced from outside of Go.
//
// An Arena is a table of slots. Inserting a value returns a Handle that
// encodes the slot index and the slot's generation. Removing the value bumps
// the generation, so the old Handle no longer matches and every later use of
// it fails with a stale handle error instead of reaching another object.
//
// The zero Handle is never issued and is used as the null value at the C
// boundary.
//
// Arenas are not safe for concurrent use. The owner is expected to guard
// them, along with any other state that must change in step with them.
package handle

import (
	"fmt"

	"github.com/orlok/cinderbridge/curated"
)

// Sentinal error patterns.
const (
	Null  = "handle: null %s handle"
	Stale = "handle: stale %s handle"
)

// Handle refers to a value of type T in an Arena[T]. The low 32 bits are the
// slot index and the high 32 bits are the slot generation.
type Handle[T any] uint64

func makeHandle[T any](index uint32, gen uint32) Handle[T] {
	return Handle[T](uint64(gen)<<32 | uint64(index))
}

// Index returns the slot index of the handle.
func (h Handle[T]) Index() uint32 {
	return uint32(h)
}

// Generation returns the generation of the handle.
func (h Handle[T]) Generation() uint32 {
	return uint32(h >> 32)
}

// IsNull returns true if the handle is the zero value.
func (h Handle[T]) IsNull() bool {
	return h == 0
}

func (h Handle[T]) String() string {
	if h.IsNull() {
		return "null"
	}
	return fmt.Sprintf("%d:%d", h.Index(), h.Generation())
}

type slot[T any] struct {
	gen   uint32
	live  bool
	value T
}

// Arena is a table of values of type T, addressed by Handle[T].
type Arena[T any] struct {
	kind  string
	slots []slot[T]
	free  []uint32
	live  int
}

// NewArena is the preferred method of initialisation for the Arena type. The
// kind is used in error messages.
func NewArena[T any](kind string) *Arena[T] {
	return &Arena[T]{
		kind: kind,
	}
}

// Kind returns the name given to the arena.
func (a *Arena[T]) Kind() string {
	return a.kind
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.live
}

// Insert a value and return its handle. Freed slots are reused before the
// table grows.
func (a *Arena[T]) Insert(v T) Handle[T] {
	var idx uint32

	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{gen: 1})
	}

	s := &a.slots[idx]
	s.live = true
	s.value = v
	a.live++

	return makeHandle[T](idx, s.gen)
}

func (a *Arena[T]) lookup(h Handle[T]) (*slot[T], error) {
	if h.IsNull() {
		return nil, curated.Errorf(Null, a.kind)
	}
	idx := h.Index()
	if int(idx) >= len(a.slots) {
		return nil, curated.Errorf(Stale, a.kind)
	}
	s := &a.slots[idx]
	if !s.live || s.gen != h.Generation() {
		return nil, curated.Errorf(Stale, a.kind)
	}
	return s, nil
}

// Get the value referred to by the handle.
func (a *Arena[T]) Get(h Handle[T]) (T, error) {
	s, err := a.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Valid returns true if the handle refers to a live value.
func (a *Arena[T]) Valid(h Handle[T]) bool {
	_, err := a.lookup(h)
	return err == nil
}

// Remove the value referred to by the handle and return it. The handle, and
// any copy of it, is stale after this call.
func (a *Arena[T]) Remove(h Handle[T]) (T, error) {
	s, err := a.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}

	v := s.value

	var zero T
	s.value = zero
	s.live = false

	// generation zero is never used so that a handle is never zero
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}

	a.free = append(a.free, h.Index())
	a.live--

	return v, nil
}

// Each calls f for every live value, in slot order.
func (a *Arena[T]) Each(f func(h Handle[T], v T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			f(makeHandle[T](uint32(i), s.gen), s.value)
		}
	}
}

// Clear removes every live value, calling f for each one first. f may be nil.
func (a *Arena[T]) Clear(f func(h Handle[T], v T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			h := makeHandle[T](uint32(i), s.gen)
			if f != nil {
				f(h, s.value)
			}
			_, _ = a.Remove(h)
		}
	}
}
