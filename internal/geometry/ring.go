// Package geometry generates the ring cross-sections of the wormhole surface.
package geometry

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3D is a point in model space.
type Point3D = mgl64.Vec3

// ShapeParameters describe the surface. They are fixed for a session.
type ShapeParameters struct {
	ThroatRadius      float64
	HeightScale       float64
	RingCount         int
	AngularResolution int
}

var ErrInvalidShape = errors.New("invalid shape parameters")

// Validate rejects parameters that would produce degenerate geometry.
func (p ShapeParameters) Validate() error {
	switch {
	case !(p.ThroatRadius > 0):
		return fmt.Errorf("%w: throat radius must be > 0, got %v", ErrInvalidShape, p.ThroatRadius)
	case !(p.HeightScale > 0):
		return fmt.Errorf("%w: height scale must be > 0, got %v", ErrInvalidShape, p.HeightScale)
	case p.RingCount <= 0:
		return fmt.Errorf("%w: ring count must be > 0, got %d", ErrInvalidShape, p.RingCount)
	case p.AngularResolution < 3:
		return fmt.Errorf("%w: angular resolution must be >= 3, got %d", ErrInvalidShape, p.AngularResolution)
	}
	return nil
}

// IndexRange returns the half-open ring index interval [lo, hi).
// Odd counts put the extra ring on the negative side.
func (p ShapeParameters) IndexRange() (lo, hi int) {
	return -((p.RingCount + 1) / 2), p.RingCount / 2
}

// Ring is one circular cross-section. Rings are rebuilt every frame.
type Ring struct {
	Index         int
	AxialPosition float64
	Radius        float64
	Points        []Point3D
	Color         color.RGBA
}

// Squeeze is the profile multiplier: 0 at the throat, approaching 1 at the ends.
func Squeeze(normalizedZ float64) float64 {
	return 1 - math.Exp(-3*math.Abs(normalizedZ))
}

// RingRadius returns the radius of ring n. It is never below the throat radius.
func RingRadius(p ShapeParameters, n int) float64 {
	half := float64(p.RingCount) / 2
	squeeze := Squeeze(float64(n) / half)
	z := float64(n) * p.HeightScale
	s := z * (0.5 + 0.5*squeeze)
	return math.Sqrt(p.ThroatRadius*p.ThroatRadius + s*s)
}

// RingColor is the blue-grey flicker for ring n at animation time t.
func RingColor(n int, t float64) color.RGBA {
	return color.RGBA{
		R: clampChannel(120 + 50*math.Sin(t+float64(n)*0.3)),
		G: clampChannel(180 + 50*math.Sin(t+float64(n)*0.5)),
		B: 255,
		A: 255,
	}
}

// GenerateRing builds ring n at animation time t.
func GenerateRing(p ShapeParameters, n int, t float64) Ring {
	r := RingRadius(p, n)
	z := float64(n) * p.HeightScale

	points := make([]Point3D, p.AngularResolution)
	for j := range points {
		theta := 2 * math.Pi * float64(j) / float64(p.AngularResolution)
		sin, cos := math.Sincos(theta)
		points[j] = Point3D{r * cos, r * sin, z}
	}

	return Ring{
		Index:         n,
		AxialPosition: z,
		Radius:        r,
		Points:        points,
		Color:         RingColor(n, t),
	}
}

// GenerateRings builds every ring in index order.
func GenerateRings(p ShapeParameters, t float64) []Ring {
	lo, hi := p.IndexRange()
	rings := make([]Ring, 0, hi-lo)
	for n := lo; n < hi; n++ {
		rings = append(rings, GenerateRing(p, n, t))
	}
	return rings
}

func clampChannel(v float64) uint8 {
	return uint8(max(0, min(math.Round(v), 255)))
}
