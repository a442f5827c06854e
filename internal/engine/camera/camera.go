// Package camera provides the orbit camera used to inspect a scene around a look-at target.
package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Projection and pose constants shared by every camera.
const (
	FovY    float32 = math.Pi / 4 // 45 degrees, vertical
	Near    float32 = 0.1
	Far     float32 = 1000
	Epsilon         = 1e-5

	// DollyFactor scales the orbit radius once per dolly step.
	DollyFactor = 0.95
)

// WorldUp returns the fixed world up direction.
func WorldUp() mgl32.Vec3 {
	return mgl32.Vec3{0, 1, 0}
}

// Motion is one frame of user input for an orbit camera.
type Motion struct {
	Pan   mgl32.Vec2 // Screen-space pan, in viewport heights
	Orbit mgl32.Vec2 // Azimuth (X) and polar (Y) rotation, in full turns
	Dolly float32    // Zoom steps; positive moves the eye toward the target
}

// IsZero reports whether the motion would leave the camera pose unchanged.
func (m Motion) IsZero() bool {
	return m == Motion{}
}

// OrbitCamera looks at a target point from a position expressed in spherical
// coordinates around it. It is owned by a single caller and is not safe for
// concurrent use.
type OrbitCamera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	aspect   float32

	released bool
}

// New creates an orbit camera. It panics if position and target are closer
// than Epsilon or if aspect is not positive.
func New(position, target mgl32.Vec3, aspect float32) *OrbitCamera {
	mustBeValidPose(position, target)
	mustBeValidAspect(aspect)

	return &OrbitCamera{
		position: position,
		target:   target,
		aspect:   aspect,
	}
}

// Release ends the camera's lifetime. Using the camera afterwards panics.
func (c *OrbitCamera) Release() {
	c.mustBeLive()
	*c = OrbitCamera{released: true}
}

// Update applies one frame of motion: pan moves the target, then the eye is
// placed around the new target using the orbited and dollied offset.
func (c *OrbitCamera) Update(m Motion) {
	c.mustBeLive()

	fromTarget := c.position.Sub(c.target)
	fromCamera := c.target.Sub(c.position)

	pan := panDisplacement(fromCamera, m.Pan)
	offset := orbitOffset(fromTarget, m)

	c.target = c.target.Add(pan)
	c.position = c.target.Add(offset)
}

// SetTransform moves the camera to a new pose, with the same preconditions as New.
func (c *OrbitCamera) SetTransform(position, target mgl32.Vec3) {
	c.mustBeLive()
	mustBeValidPose(position, target)

	c.position = position
	c.target = target
}

// SetAspect changes the projection aspect ratio (width / height).
func (c *OrbitCamera) SetAspect(aspect float32) {
	c.mustBeLive()
	mustBeValidAspect(aspect)

	c.aspect = aspect
}

// Position returns the eye position.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	c.mustBeLive()
	return c.position
}

// Target returns the look-at point.
func (c *OrbitCamera) Target() mgl32.Vec3 {
	c.mustBeLive()
	return c.target
}

// Aspect returns the projection aspect ratio.
func (c *OrbitCamera) Aspect() float32 {
	c.mustBeLive()
	return c.aspect
}

// Distance returns the distance between the eye and the target.
func (c *OrbitCamera) Distance() float32 {
	c.mustBeLive()
	return c.target.Sub(c.position).Len()
}

// Forward returns the unit view direction.
func (c *OrbitCamera) Forward() mgl32.Vec3 {
	c.mustBeLive()
	return c.target.Sub(c.position).Normalize()
}

// ViewMatrix returns the world-to-camera transform.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	c.mustBeLive()
	return mgl32.LookAtV(c.position, c.target, WorldUp())
}

// ProjectionMatrix returns the perspective projection for the camera aspect.
func (c *OrbitCamera) ProjectionMatrix() mgl32.Mat4 {
	c.mustBeLive()
	return mgl32.Perspective(FovY, c.aspect, Near, Far)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix.
func (c *OrbitCamera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// panDisplacement converts a screen-space pan into a world-space translation.
// The scale is the visible frame height at the target distance, so the same
// gesture covers the same share of the screen at any zoom level.
func panDisplacement(fromCamera mgl32.Vec3, pan mgl32.Vec2) mgl32.Vec3 {
	forward := fromCamera.Normalize()
	left := WorldUp().Cross(forward)
	up := forward.Cross(left)

	distance := fromCamera.Len()
	factor := distance * float32(math.Tan(float64(FovY)/2)) * 2

	deltaX := left.Mul(pan.X() * factor)
	deltaY := up.Mul(pan.Y() * factor)
	return deltaX.Add(deltaY)
}

// orbitOffset returns the new target-to-eye offset. The spherical round trip
// runs in float64 and only the result is narrowed back to float32.
func orbitOffset(fromTarget mgl32.Vec3, m Motion) mgl32.Vec3 {
	s := toSpherical(vec64(fromTarget))

	s.theta -= float64(m.Orbit.X()) * 2 * math.Pi
	s.phi -= float64(m.Orbit.Y()) * 2 * math.Pi
	s.phi = clamp(s.phi, Epsilon, math.Pi-Epsilon)

	// A dolly step that would collapse or overflow the float32 offset is
	// dropped, so zoom saturates the same way phi does.
	radius := s.radius
	s.radius *= math.Pow(DollyFactor, float64(m.Dolly))
	if offset := vec32(s.cartesian()); validOffset(offset) {
		return offset
	}
	s.radius = radius
	return vec32(s.cartesian())
}

// validOffset reports whether offset keeps the eye a finite distance of more
// than Epsilon from the target.
func validOffset(offset mgl32.Vec3) bool {
	d := float64(offset.Len())
	return d > Epsilon && !math.IsInf(d, 0) && !math.IsNaN(d)
}

func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func mustBeValidPose(position, target mgl32.Vec3) {
	if d := position.Sub(target).Len(); !(d > Epsilon) {
		panic(fmt.Sprintf("camera: position %v and target %v are %g apart, need more than %g",
			position, target, d, Epsilon))
	}
}

func mustBeValidAspect(aspect float32) {
	if !(aspect > 0) {
		panic(fmt.Sprintf("camera: aspect must be positive, got %g", aspect))
	}
}

func (c *OrbitCamera) mustBeLive() {
	if c.released {
		panic("camera: use of released OrbitCamera")
	}
}
