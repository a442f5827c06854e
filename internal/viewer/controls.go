package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/orbitcam/internal/engine/gesture"
	"github.com/Faultbox/orbitcam/internal/engine/input"
)

// action is what the main loop must do in response to an event, beyond
// feeding the gesture tracker.
type action int

const (
	actionNone action = iota
	actionQuit
	actionReset
	actionScreenshot
	actionResize
	actionFocus
	actionSavePose
)

// Key bindings.
const (
	keyQuit       = sdl.SCANCODE_ESCAPE
	keyReset      = sdl.SCANCODE_R
	keyScreenshot = sdl.SCANCODE_F12
	keySavePose   = sdl.SCANCODE_F5
)

// buttonGesture maps a mouse button to the drag it controls:
// left orbits, right and middle pan.
func buttonGesture(button uint8) gesture.Button {
	switch button {
	case input.ButtonLeft:
		return gesture.ButtonOrbit
	case input.ButtonRight, input.ButtonMiddle:
		return gesture.ButtonPan
	default:
		return gesture.ButtonNone
	}
}

// handleEvent routes pointer input into the tracker and reports any other
// action the event asks for.
func handleEvent(tracker *gesture.Tracker, ev input.Event) action {
	switch ev.Type {
	case input.EventQuit:
		return actionQuit

	case input.EventWindowResize:
		return actionResize

	case input.EventFocusLost:
		tracker.Cancel()

	case input.EventMouseDown:
		tracker.Press(buttonGesture(ev.Button), float32(ev.MouseX), float32(ev.MouseY))
		if ev.Button == input.ButtonLeft && ev.Clicks == 2 {
			return actionFocus
		}

	case input.EventMouseUp:
		tracker.Release(buttonGesture(ev.Button))

	case input.EventMouseMove:
		tracker.Move(float32(ev.MouseX), float32(ev.MouseY))

	case input.EventMouseWheel:
		tracker.Scroll(ev.Wheel)

	case input.EventKeyDown:
		switch ev.Key {
		case keyQuit:
			return actionQuit
		case keyReset:
			return actionReset
		case keyScreenshot:
			return actionScreenshot
		case keySavePose:
			return actionSavePose
		}
	}

	return actionNone
}
