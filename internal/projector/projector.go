// Package projector maps model-space points onto the screen.
package projector

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/wormhole-visualization/internal/geometry"
)

const (
	FOV         = 500.0
	DepthOffset = 200.0

	// MinDepth bounds the perspective denominator away from zero.
	MinDepth = 1.0
)

type Viewport struct {
	Width, Height int
}

// Project rotates p about the Y axis by angle, applies weak perspective and
// zoom, and centres the result in vp.
func Project(p geometry.Point3D, angle, zoom float64, vp Viewport) image.Point {
	// mgl64 rotates counter-clockwise looking down +Y; the view turns the other way.
	rotated := mgl64.Rotate3DY(-angle).Mul3x1(p)

	depth := FOV + rotated.Z() + DepthOffset
	if !(depth >= MinDepth) {
		depth = MinDepth
	}
	scale := FOV / depth

	return image.Point{
		X: int(math.Round(rotated.X()*scale*zoom)) + vp.Width/2,
		Y: int(math.Round(rotated.Y()*scale*zoom)) + vp.Height/2,
	}
}

// ProjectRing projects every point of a ring, preserving order.
func ProjectRing(points []geometry.Point3D, angle, zoom float64, vp Viewport) []image.Point {
	out := make([]image.Point, len(points))
	for i, p := range points {
		out[i] = Project(p, angle, zoom, vp)
	}
	return out
}
