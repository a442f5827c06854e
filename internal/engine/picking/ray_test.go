package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if !(math.Abs(float64(a[i]-b[i])) <= float64(eps)) {
			return false
		}
	}
	return true
}

func lookingDown() mgl32.Mat4 {
	view := mgl32.LookAtV(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	proj := mgl32.Perspective(math.Pi/4, 1, 0.1, 100)
	return proj.Mul4(view).Inv()
}

func TestScreenToRayCenter(t *testing.T) {
	ray := ScreenToRay(50, 50, 100, 100, lookingDown())

	if !near(ray.Direction, mgl32.Vec3{0, -1, 0}, 1e-3) {
		t.Errorf("Direction = %v, want (0, -1, 0)", ray.Direction)
	}
	if !near(ray.Origin, mgl32.Vec3{0, 9.9, 0}, 1e-2) {
		t.Errorf("Origin = %v, want the near plane point (0, 9.9, 0)", ray.Origin)
	}
}

func TestScreenToRayCorners(t *testing.T) {
	inv := lookingDown()

	// Up is -Z, so the top of the screen maps to -Z and the right to +X.
	top := ScreenToRay(50, 0, 100, 100, inv)
	if top.Direction.Z() >= 0 {
		t.Errorf("top ray Direction = %v, want negative Z", top.Direction)
	}
	right := ScreenToRay(100, 50, 100, 100, inv)
	if right.Direction.X() <= 0 {
		t.Errorf("right ray Direction = %v, want positive X", right.Direction)
	}
	if l := right.Direction.Len(); math.Abs(float64(l-1)) > 1e-5 {
		t.Errorf("Direction length = %v, want 1", l)
	}
}

func TestIntersectPlaneY(t *testing.T) {
	tests := []struct {
		name string
		ray  Ray
		y    float32
		want mgl32.Vec3
		ok   bool
	}{
		{
			name: "straight down",
			ray:  Ray{Origin: mgl32.Vec3{1, 5, 2}, Direction: mgl32.Vec3{0, -1, 0}},
			want: mgl32.Vec3{1, 0, 2},
			ok:   true,
		},
		{
			name: "diagonal",
			ray:  Ray{Origin: mgl32.Vec3{0, 4, 0}, Direction: mgl32.Vec3{1, -1, 0}.Normalize()},
			want: mgl32.Vec3{4, 0, 0},
			ok:   true,
		},
		{
			name: "raised plane",
			ray:  Ray{Origin: mgl32.Vec3{0, 4, 0}, Direction: mgl32.Vec3{0, -1, 0}},
			y:    1,
			want: mgl32.Vec3{0, 1, 0},
			ok:   true,
		},
		{
			name: "parallel",
			ray:  Ray{Origin: mgl32.Vec3{0, 4, 0}, Direction: mgl32.Vec3{1, 0, 0}},
		},
		{
			name: "pointing away",
			ray:  Ray{Origin: mgl32.Vec3{0, 4, 0}, Direction: mgl32.Vec3{0, 1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectPlaneY(tt.y)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !near(got, tt.want, 1e-4) {
				t.Errorf("hit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScreenToRayHitsGround(t *testing.T) {
	ray := ScreenToRay(50, 50, 100, 100, lookingDown())
	hit, ok := ray.IntersectPlaneY(0)
	if !ok {
		t.Fatal("center ray should hit the ground")
	}
	if !near(hit, mgl32.Vec3{}, 1e-2) {
		t.Errorf("hit = %v, want origin", hit)
	}
}
