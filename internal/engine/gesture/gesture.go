// Package gesture turns pointer drags and scroll steps into orbit camera motion.
package gesture

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitcam/internal/engine/camera"
)

// Button identifies which drag gesture a pointer button drives.
type Button int

const (
	ButtonNone Button = iota
	ButtonOrbit
	ButtonPan
)

// Settings scales each gesture before it reaches the camera.
type Settings struct {
	OrbitSensitivity float32
	PanSensitivity   float32
	DollySensitivity float32
	InvertY          bool
}

// DefaultSettings returns unit sensitivities.
func DefaultSettings() Settings {
	return Settings{
		OrbitSensitivity: 1,
		PanSensitivity:   1,
		DollySensitivity: 1,
	}
}

// Tracker accumulates pointer input between frames. Drag distances are
// measured in viewport heights, so a drag across the full height orbits one
// full turn at unit sensitivity.
type Tracker struct {
	settings Settings
	height   float32

	cursor   mgl32.Vec2
	orbiting bool
	panning  bool

	motion camera.Motion
}

// NewTracker creates a tracker for a viewport of the given pixel height.
func NewTracker(settings Settings, viewportHeight int) *Tracker {
	t := &Tracker{settings: settings}
	t.Resize(viewportHeight)
	return t
}

// Resize updates the viewport height used to normalize drags.
func (t *Tracker) Resize(viewportHeight int) {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	t.height = float32(viewportHeight)
}

// Press starts a drag at the given cursor position.
func (t *Tracker) Press(b Button, x, y float32) {
	t.cursor = mgl32.Vec2{x, y}
	switch b {
	case ButtonOrbit:
		t.orbiting = true
	case ButtonPan:
		t.panning = true
	}
}

// Release ends a drag.
func (t *Tracker) Release(b Button) {
	switch b {
	case ButtonOrbit:
		t.orbiting = false
	case ButtonPan:
		t.panning = false
	}
}

// Move records a cursor position, adding to any active drag.
func (t *Tracker) Move(x, y float32) {
	pos := mgl32.Vec2{x, y}
	delta := pos.Sub(t.cursor).Mul(1 / t.height)
	t.cursor = pos

	if t.orbiting {
		orbit := delta.Mul(t.settings.OrbitSensitivity)
		if t.settings.InvertY {
			orbit[1] = -orbit[1]
		}
		t.motion.Orbit = t.motion.Orbit.Add(orbit)
	}
	if t.panning {
		t.motion.Pan = t.motion.Pan.Add(delta.Mul(t.settings.PanSensitivity))
	}
}

// Scroll adds zoom steps; positive values move the camera toward its target.
func (t *Tracker) Scroll(steps float32) {
	t.motion.Dolly += steps * t.settings.DollySensitivity
}

// Dragging reports whether any drag is in progress.
func (t *Tracker) Dragging() bool {
	return t.orbiting || t.panning
}

// Flush returns the motion gathered since the last Flush and clears it.
// Drags stay active across frames.
func (t *Tracker) Flush() camera.Motion {
	m := t.motion
	t.motion = camera.Motion{}
	return m
}

// Cancel drops pending motion and ends all drags, e.g. when the window loses focus.
func (t *Tracker) Cancel() {
	t.orbiting = false
	t.panning = false
	t.motion = camera.Motion{}
}
