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

package app

// EventID identifies the type of event.
type EventID int

// List of valid EventID values.
const (
	EventKeyboard EventID = iota
	EventMouseButton
	EventMouseMotion
	EventResize
	EventQuit
)

// EventData represents the data that is associated with an event.
type EventData any

// Event is the structure passed from the Platform to the App.
type Event struct {
	ID   EventID
	Data EventData
}

// MouseButton is the button that caused a mouse button event.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonOther
)

// ID returns the button number reported to the host: left 0, right 1 and
// anything else 2.
func (b MouseButton) ID() int {
	switch b {
	case MouseButtonLeft:
		return 0
	case MouseButtonRight:
		return 1
	}
	return 2
}

// Buttons is the state of the three main mouse buttons.
type Buttons struct {
	Left   bool
	Right  bool
	Middle bool
}

// released returns the button state with the flag of the released button
// cleared. Some platforms still report the button as down in the release
// event itself.
func (b Buttons) released(btn MouseButton) Buttons {
	switch btn {
	case MouseButtonLeft:
		b.Left = false
	case MouseButtonRight:
		b.Right = false
	case MouseButtonMiddle:
		b.Middle = false
	}
	return b
}

// EventDataKeyboard is the data that accompanies EventKeyboard events.
type EventDataKeyboard struct {
	Code int
	Down bool
}

// EventDataMouseButton is the data that accompanies EventMouseButton events.
type EventDataMouseButton struct {
	Button  MouseButton
	Down    bool
	X       int
	Y       int
	Buttons Buttons
}

// EventDataMouseMotion is the data that accompanies EventMouseMotion events.
// Drag is true if any button was held during the motion.
type EventDataMouseMotion struct {
	X       int
	Y       int
	Buttons Buttons
	Drag    bool
}

// EventDataResize is the data that accompanies EventResize events.
type EventDataResize struct {
	Width  int
	Height int
}
