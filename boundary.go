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

package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/orlok/cinderbridge/bridge"
	"github.com/orlok/cinderbridge/curated"
	"github.com/orlok/cinderbridge/logger"
)

// guard must be deferred by every exported function. A panic is logged and
// the function returns its zero value.
func guard(fn string) {
	if r := recover(); r != nil {
		logger.Logf(logger.Allow, logTag, "%s: panic: %v", fn, r)
	}
}

// report logs the error, if there is one, and returns true if there was.
func report(fn string, err error) bool {
	if err == nil {
		return false
	}
	if curated.IsAny(err) {
		logger.Logf(logger.Allow, logTag, "%s: %v", fn, err)
	} else {
		logger.Logf(logger.Allow, logTag, "%s: unexpected error: %v", fn, err)
	}
	return true
}

// C strings that must outlive the call that created them.
var cstrings = struct {
	crit sync.Mutex

	// the most recent diagnostic. freed when the next one is set
	diagnostic *C.char

	// names of live fonts. freed with the font
	fontNames map[bridge.Font]*C.char
}{
	fontNames: make(map[bridge.Font]*C.char),
}

// setDiagnostic writes the error message to out. The message stays valid until
// the next diagnostic is written.
func setDiagnostic(out **C.char, msg string) {
	if out == nil {
		return
	}
	cstrings.crit.Lock()
	defer cstrings.crit.Unlock()
	if cstrings.diagnostic != nil {
		C.free(unsafe.Pointer(cstrings.diagnostic))
	}
	cstrings.diagnostic = C.CString(msg)
	*out = cstrings.diagnostic
}

// fontName returns a C string of the name that lives as long as the font.
func fontName(h bridge.Font, name string) *C.char {
	cstrings.crit.Lock()
	defer cstrings.crit.Unlock()
	if cs, ok := cstrings.fontNames[h]; ok {
		return cs
	}
	cs := C.CString(name)
	cstrings.fontNames[h] = cs
	return cs
}

func forgetFontName(h bridge.Font) {
	cstrings.crit.Lock()
	defer cstrings.crit.Unlock()
	if cs, ok := cstrings.fontNames[h]; ok {
		C.free(unsafe.Pointer(cs))
		delete(cstrings.fontNames, h)
	}
}

// pruneFontNames frees the names of fonts that are no longer live. Fonts the
// host did not free are released when the application shuts down.
func pruneFontNames(live func(bridge.Font) bool) {
	cstrings.crit.Lock()
	defer cstrings.crit.Unlock()
	for h, cs := range cstrings.fontNames {
		if !live(h) {
			C.free(unsafe.Pointer(cs))
			delete(cstrings.fontNames, h)
		}
	}
}

// handles cross the boundary as pointer sized integers. the host treats them
// as opaque void pointers. handles are 64 bits so the library must be built
// for a 64 bit platform

func toC(h uint64) C.uintptr_t {
	return C.uintptr_t(h)
}

func fromC(p C.uintptr_t) uint64 {
	return uint64(p)
}

func cbool(v C.int) bool {
	return v != 0
}

func boolC(v bool) C.int {
	if v {
		return 1
	}
	return 0
}
