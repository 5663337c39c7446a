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

// Package audio decodes sound files and mixes them for output.
//
// Decoded audio is always interleaved stereo float32 at SampleRate. Sounds are
// immutable sample data that can be played any number of times at once, each
// play creating an independent voice. A Track is a single playback position
// over a Sound with its own volume, loop flag and play/stop state. Tracks are
// used for music.
//
// The Mixer sums all voices and playing tracks. Output drivers, such as the
// sdlaudio package, call Mix() from their own goroutine.
package audio
