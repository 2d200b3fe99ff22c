// Package geom holds the geometric primitives the stage, polygon and
// slice packages are built on: segments, parametric lines, and the
// approximate-equality tolerance the whole pipeline shares.
package geom

import (
	"math"

	"github.com/hexlattice/contourpress/vec3"
)

// Epsilon is the absolute tolerance used for vertex equality and Z
// comparisons throughout the pipeline. The domain is sub-millimeter
// 3D-printing coordinates, bounded well under 10^3, so a single
// absolute tolerance is adequate everywhere it's used.
const Epsilon = 1e-9

// ApproxEqualFloat reports whether a and b are within Epsilon.
func ApproxEqualFloat(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// ApproxEqualVertex reports whether a and b are within Epsilon on every
// axis.
func ApproxEqualVertex(a, b vec3.Vec) bool {
	return ApproxEqualFloat(a.X, b.X) && ApproxEqualFloat(a.Y, b.Y) && ApproxEqualFloat(a.Z, b.Z)
}

// Segment is a directed 3-D line segment carrying the surface normal of
// the triangle it was cut from.
type Segment struct {
	A, B   vec3.Vec
	Normal vec3.Vec
}

// Reverse swaps the segment's endpoints in place.
func (s *Segment) Reverse() {
	s.A, s.B = s.B, s.A
}

// Line is a 2-D line parametric in Z: at height h, the point is
// (Offset.X + Delta[0]*(h-Offset.Z), Offset.Y + Delta[1]*(h-Offset.Z), h).
type Line struct {
	Offset vec3.Vec
	Delta  [2]float64 // dx/dz, dy/dz
}

// LineFromSegment builds the parametric line for a non-horizontal
// segment. The caller must have already filtered out segments with
// |b.Z-a.Z| <= Epsilon; LineFromSegment does not guard against it.
func LineFromSegment(a, b vec3.Vec) Line {
	dz := b.Z - a.Z
	return Line{
		Offset: a,
		Delta:  [2]float64{(b.X - a.X) / dz, (b.Y - a.Y) / dz},
	}
}

// At evaluates the line at the given height.
func (l Line) At(height float64) vec3.Vec {
	dh := height - l.Offset.Z
	return vec3.Vec{
		X: l.Offset.X + l.Delta[0]*dh,
		Y: l.Offset.Y + l.Delta[1]*dh,
		Z: height,
	}
}
