// Package debug provides reference geometry and capture utilities for the viewer.
package debug

import "github.com/go-gl/mathgl/mgl32"

// LineVertex is one endpoint of a line segment, laid out as [x y z r g b].
type LineVertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec3
}

// LineVertexStride is the size of a LineVertex in bytes.
const LineVertexStride = 6 * 4

// BoxVertexCount is the number of vertices in a wireframe box (12 edges x 2).
const BoxVertexCount = 24

// Palette used by the generators.
var (
	GridColor      = mgl32.Vec3{0.35, 0.35, 0.4}
	GridMajorColor = mgl32.Vec3{0.5, 0.5, 0.55}
	AxisXColor     = mgl32.Vec3{0.9, 0.2, 0.2}
	AxisYColor     = mgl32.Vec3{0.2, 0.9, 0.2}
	AxisZColor     = mgl32.Vec3{0.2, 0.4, 0.9}
	TargetColor    = mgl32.Vec3{1.0, 0.8, 0.1}
)

// Grid generates a square grid on the XZ plane centered at the origin.
// size is the number of cells per side, step the cell width. Every fifth line
// is drawn in the major color.
func Grid(size int, step float32) []LineVertex {
	if size <= 0 || step <= 0 {
		return nil
	}

	half := float32(size) * step / 2
	vertices := make([]LineVertex, 0, (size+1)*4)

	for i := 0; i <= size; i++ {
		offset := -half + float32(i)*step
		color := GridColor
		if (i-size/2)%5 == 0 {
			color = GridMajorColor
		}

		// Line parallel to Z
		vertices = append(vertices,
			LineVertex{mgl32.Vec3{offset, 0, -half}, color},
			LineVertex{mgl32.Vec3{offset, 0, half}, color},
		)
		// Line parallel to X
		vertices = append(vertices,
			LineVertex{mgl32.Vec3{-half, 0, offset}, color},
			LineVertex{mgl32.Vec3{half, 0, offset}, color},
		)
	}

	return vertices
}

// Axes generates the positive world axes from the origin, colored X=red, Y=green, Z=blue.
func Axes(length float32) []LineVertex {
	origin := mgl32.Vec3{}
	return []LineVertex{
		{origin, AxisXColor}, {mgl32.Vec3{length, 0, 0}, AxisXColor},
		{origin, AxisYColor}, {mgl32.Vec3{0, length, 0}, AxisYColor},
		{origin, AxisZColor}, {mgl32.Vec3{0, 0, length}, AxisZColor},
	}
}

// Box creates line vertices for a wireframe box between two corners.
// The corners may be given in any order.
func Box(a, b, color mgl32.Vec3) []LineVertex {
	lo := mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
	hi := mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}

	corner := func(x, y, z float32) LineVertex {
		return LineVertex{mgl32.Vec3{x, y, z}, color}
	}

	return []LineVertex{
		// Bottom face
		corner(lo[0], lo[1], lo[2]), corner(hi[0], lo[1], lo[2]),
		corner(hi[0], lo[1], lo[2]), corner(hi[0], lo[1], hi[2]),
		corner(hi[0], lo[1], hi[2]), corner(lo[0], lo[1], hi[2]),
		corner(lo[0], lo[1], hi[2]), corner(lo[0], lo[1], lo[2]),
		// Top face
		corner(lo[0], hi[1], lo[2]), corner(hi[0], hi[1], lo[2]),
		corner(hi[0], hi[1], lo[2]), corner(hi[0], hi[1], hi[2]),
		corner(hi[0], hi[1], hi[2]), corner(lo[0], hi[1], hi[2]),
		corner(lo[0], hi[1], hi[2]), corner(lo[0], hi[1], lo[2]),
		// Vertical edges
		corner(lo[0], lo[1], lo[2]), corner(lo[0], hi[1], lo[2]),
		corner(hi[0], lo[1], lo[2]), corner(hi[0], hi[1], lo[2]),
		corner(hi[0], lo[1], hi[2]), corner(hi[0], hi[1], hi[2]),
		corner(lo[0], lo[1], hi[2]), corner(lo[0], hi[1], hi[2]),
	}
}

// TargetMarker creates a small cube centered on the look-at point.
// size is the cube edge length.
func TargetMarker(target mgl32.Vec3, size float32) []LineVertex {
	h := size / 2
	extent := mgl32.Vec3{h, h, h}
	return Box(target.Sub(extent), target.Add(extent), TargetColor)
}

// Flatten packs vertices into the interleaved float layout uploaded to the GPU.
func Flatten(vertices []LineVertex) []float32 {
	out := make([]float32, 0, len(vertices)*6)
	for _, v := range vertices {
		out = append(out, v.Pos[0], v.Pos[1], v.Pos[2], v.Color[0], v.Color[1], v.Color[2])
	}
	return out
}
