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
#include <stdint.h>
*/
import "C"

import (
	"github.com/orlok/cinderbridge/bridge"
)

//export cinder_audio_get_master_volume
func cinder_audio_get_master_volume() C.float {
	defer guard("cinder_audio_get_master_volume")
	return C.float(service().MasterVolume())
}

//export cinder_audio_set_master_volume
func cinder_audio_set_master_volume(v C.float) {
	defer guard("cinder_audio_set_master_volume")
	service().SetMasterVolume(float32(v))
}

//export cinder_audio_load_sound
func cinder_audio_load_sound(name *C.char) C.uintptr_t {
	defer guard("cinder_audio_load_sound")
	h, err := service().LoadSound(C.GoString(name))
	if report("cinder_audio_load_sound", err) {
		return 0
	}
	return toC(uint64(h))
}

//export cinder_audio_free_sound
func cinder_audio_free_sound(snd C.uintptr_t) {
	defer guard("cinder_audio_free_sound")
	report("cinder_audio_free_sound", service().FreeSound(bridge.Sound(fromC(snd))))
}

//export cinder_audio_play_sound
func cinder_audio_play_sound(snd C.uintptr_t, volume C.float) {
	defer guard("cinder_audio_play_sound")
	report("cinder_audio_play_sound", service().PlaySound(bridge.Sound(fromC(snd)), float32(volume)))
}

//export cinder_audio_load_music
func cinder_audio_load_music(name *C.char) C.uintptr_t {
	defer guard("cinder_audio_load_music")
	h, err := service().LoadTrack(C.GoString(name))
	if report("cinder_audio_load_music", err) {
		return 0
	}
	return toC(uint64(h))
}

//export cinder_audio_free_music
func cinder_audio_free_music(trk C.uintptr_t) {
	defer guard("cinder_audio_free_music")
	report("cinder_audio_free_music", service().FreeTrack(bridge.Track(fromC(trk))))
}

//export cinder_audio_play_music
func cinder_audio_play_music(trk C.uintptr_t, loop C.int, restart C.int) {
	defer guard("cinder_audio_play_music")
	err := service().PlayTrack(bridge.Track(fromC(trk)), cbool(loop), cbool(restart))
	report("cinder_audio_play_music", err)
}

//export cinder_audio_stop_music
func cinder_audio_stop_music(trk C.uintptr_t) {
	defer guard("cinder_audio_stop_music")
	report("cinder_audio_stop_music", service().StopTrack(bridge.Track(fromC(trk))))
}

//export cinder_audio_set_music_volume
func cinder_audio_set_music_volume(trk C.uintptr_t, volume C.float) {
	defer guard("cinder_audio_set_music_volume")
	err := service().SetTrackVolume(bridge.Track(fromC(trk)), float32(volume))
	report("cinder_audio_set_music_volume", err)
}

//export cinder_audio_get_music_volume
func cinder_audio_get_music_volume(trk C.uintptr_t) C.float {
	defer guard("cinder_audio_get_music_volume")
	v, err := service().TrackVolume(bridge.Track(fromC(trk)))
	if report("cinder_audio_get_music_volume", err) {
		return 0
	}
	return C.float(v)
}
