package gesture

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitcam/internal/engine/camera"
)

func approx(a, b mgl32.Vec2, eps float32) bool {
	return near(a[:], b[:], eps)
}

func approx3(a, b mgl32.Vec3, eps float32) bool {
	return near(a[:], b[:], eps)
}

func near(a, b []float32, eps float32) bool {
	for i := range a {
		if !(math.Abs(float64(a[i]-b[i])) <= float64(eps)) {
			return false
		}
	}
	return true
}

func TestMoveWithoutDragIsIgnored(t *testing.T) {
	tr := NewTracker(DefaultSettings(), 100)
	tr.Move(10, 10)
	tr.Move(50, 70)

	if m := tr.Flush(); !m.IsZero() {
		t.Errorf("Flush() = %+v, want zero motion", m)
	}
}

func TestOrbitDrag(t *testing.T) {
	tr := NewTracker(DefaultSettings(), 200)
	tr.Press(ButtonOrbit, 100, 100)
	tr.Move(150, 80)
	tr.Move(200, 60)

	m := tr.Flush()
	want := mgl32.Vec2{0.5, -0.2}
	if !approx(m.Orbit, want, 1e-5) {
		t.Errorf("Orbit = %v, want %v", m.Orbit, want)
	}
	if m.Pan != (mgl32.Vec2{}) || m.Dolly != 0 {
		t.Errorf("orbit drag leaked into pan/dolly: %+v", m)
	}
}

func TestPanDrag(t *testing.T) {
	settings := DefaultSettings()
	settings.PanSensitivity = 2
	tr := NewTracker(settings, 400)

	tr.Press(ButtonPan, 0, 0)
	tr.Move(40, -20)

	m := tr.Flush()
	want := mgl32.Vec2{0.2, -0.1}
	if !approx(m.Pan, want, 1e-5) {
		t.Errorf("Pan = %v, want %v", m.Pan, want)
	}
	if m.Orbit != (mgl32.Vec2{}) {
		t.Errorf("pan drag leaked into orbit: %v", m.Orbit)
	}
}

func TestInvertY(t *testing.T) {
	settings := DefaultSettings()
	settings.InvertY = true
	tr := NewTracker(settings, 100)

	tr.Press(ButtonOrbit, 0, 0)
	tr.Move(10, 10)

	m := tr.Flush()
	if !approx(m.Orbit, mgl32.Vec2{0.1, -0.1}, 1e-5) {
		t.Errorf("Orbit = %v, want (0.1, -0.1)", m.Orbit)
	}
}

func TestReleaseStopsDrag(t *testing.T) {
	tr := NewTracker(DefaultSettings(), 100)
	tr.Press(ButtonOrbit, 0, 0)
	tr.Move(10, 0)
	tr.Release(ButtonOrbit)
	tr.Move(90, 0)

	m := tr.Flush()
	if !approx(m.Orbit, mgl32.Vec2{0.1, 0}, 1e-5) {
		t.Errorf("Orbit = %v, want (0.1, 0)", m.Orbit)
	}
	if tr.Dragging() {
		t.Error("Dragging() should be false after release")
	}
}

func TestScroll(t *testing.T) {
	settings := DefaultSettings()
	settings.DollySensitivity = 0.5
	tr := NewTracker(settings, 100)

	tr.Scroll(1)
	tr.Scroll(3)

	if m := tr.Flush(); m.Dolly != 2 {
		t.Errorf("Dolly = %v, want 2", m.Dolly)
	}
}

func TestFlushResetsMotionButKeepsDrag(t *testing.T) {
	tr := NewTracker(DefaultSettings(), 100)
	tr.Press(ButtonPan, 0, 0)
	tr.Move(10, 0)
	tr.Scroll(1)
	tr.Flush()

	if m := tr.Flush(); !m.IsZero() {
		t.Errorf("second Flush() = %+v, want zero motion", m)
	}

	tr.Move(20, 0)
	if m := tr.Flush(); !approx(m.Pan, mgl32.Vec2{0.1, 0}, 1e-5) {
		t.Errorf("Pan after flush = %v, want (0.1, 0)", m.Pan)
	}
}

func TestCancel(t *testing.T) {
	tr := NewTracker(DefaultSettings(), 100)
	tr.Press(ButtonOrbit, 0, 0)
	tr.Press(ButtonPan, 0, 0)
	tr.Move(5, 5)
	tr.Cancel()

	if tr.Dragging() {
		t.Error("Dragging() should be false after Cancel")
	}
	if m := tr.Flush(); !m.IsZero() {
		t.Errorf("Flush() after Cancel = %+v, want zero", m)
	}
}

func TestResizeGuardsZeroHeight(t *testing.T) {
	tr := NewTracker(DefaultSettings(), 0)
	tr.Press(ButtonOrbit, 0, 0)
	tr.Move(1, 0)

	if m := tr.Flush(); m.Orbit.X() != 1 {
		t.Errorf("Orbit.X = %v, want 1 for a clamped 1px viewport", m.Orbit.X())
	}
}

func TestDragDrivesCamera(t *testing.T) {
	// A quarter-height drag to the left orbits the eye from +Z to +X.
	tr := NewTracker(DefaultSettings(), 400)
	cam := camera.New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 1)
	defer cam.Release()

	tr.Press(ButtonOrbit, 200, 200)
	tr.Move(100, 200)
	cam.Update(tr.Flush())

	if !approx3(cam.Position(), mgl32.Vec3{5, 0, 0}, 1e-4) {
		t.Errorf("Position() = %v, want (5, 0, 0)", cam.Position())
	}
}
