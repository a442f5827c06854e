package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// spherical is an offset in Y-up spherical coordinates.
// theta is the azimuth from +Z toward +X, phi the polar angle from +Y.
type spherical struct {
	radius float64
	theta  float64
	phi    float64
}

// toSpherical converts a non-zero offset to spherical coordinates.
func toSpherical(v mgl64.Vec3) spherical {
	radius := v.Len()

	// Rounding can push |y| a hair past radius; acos would return NaN there.
	cosPhi := clamp(v.Y()/radius, -1, 1)

	return spherical{
		radius: radius,
		theta:  math.Atan2(v.X(), v.Z()),
		phi:    math.Acos(cosPhi),
	}
}

// cartesian converts back to an offset vector.
func (s spherical) cartesian() mgl64.Vec3 {
	sinPhi, cosPhi := math.Sincos(s.phi)
	sinTheta, cosTheta := math.Sincos(s.theta)

	return mgl64.Vec3{
		s.radius * sinPhi * sinTheta,
		s.radius * cosPhi,
		s.radius * sinPhi * cosTheta,
	}
}

// clamp bounds value to [min, max]. It panics if min > max.
func clamp(value, min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("camera: invalid clamp range [%g, %g]", min, max))
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
