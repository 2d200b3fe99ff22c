// Package polygon fuses the unordered segments a single slice height
// produces into ordered, correctly-wound closed contours. Each new
// segment is matched against every open chain's front and back
// endpoint; a segment can start a new chain, extend one chain, or
// bridge two chains into one, and the four ways an endpoint can meet a
// chain each have their own prepend/append/reverse handling.
package polygon

import (
	"github.com/hexlattice/contourpress/geom"
)

// Polygon is an ordered sequence of segments where consecutive segments
// share an endpoint within geom.Epsilon.
type Polygon struct {
	Segments []geom.Segment
}

// Front returns the polygon's first segment.
func (p *Polygon) Front() geom.Segment { return p.Segments[0] }

// Back returns the polygon's last segment.
func (p *Polygon) Back() geom.Segment { return p.Segments[len(p.Segments)-1] }

// Closed reports whether the polygon's last endpoint meets its first.
func (p *Polygon) Closed() bool {
	if len(p.Segments) == 0 {
		return false
	}
	return geom.ApproxEqualVertex(p.Back().B, p.Front().A)
}

// Reverse reverses traversal order in place: the segment sequence is
// reversed, and each segment's own A/B endpoints are swapped too.
// Reversing only the sequence and not each segment would leave
// consecutive segments no longer sharing an endpoint.
func (p *Polygon) Reverse() {
	segs := p.Segments
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	for i := range segs {
		segs[i].Reverse()
	}
}

// SignedArea returns the shoelace signed area of the polygon projected
// onto the XY plane (valid since every vertex in a slice shares one Z
// height). Positive is counter-clockwise.
func (p *Polygon) SignedArea() float64 {
	var area float64
	for _, s := range p.Segments {
		area += s.A.X*s.B.Y - s.B.X*s.A.Y
	}
	return area / 2
}

// Winding classifies a polygon's traversal direction.
type Winding int

const (
	// CW is clockwise, viewed from +Z looking down.
	CW Winding = iota
	// CCW is counter-clockwise, viewed from +Z looking down.
	CCW
)

// Winding reports the polygon's winding by signed area. Downstream
// code should use this, not position in Slice.Polygons, to tell outer
// contours from holes.
func (p *Polygon) Winding() Winding {
	if p.SignedArea() >= 0 {
		return CCW
	}
	return CW
}

// correctDirection flips a segment's A/B endpoints when the 2-D cross
// product of (B-A) and (Normal-A) is negative, taking Normal's X and Y
// as a point in the slice plane. Where that product is zero (for
// example a wall whose normal, read as a point, lies on the segment's
// own line) the segment is left as given, so segments of one contour
// can still arrive in opposite directions; Assemble's reversing match
// cases join them either way.
func correctDirection(s *geom.Segment) {
	det := (s.B.X-s.A.X)*(s.Normal.Y-s.A.Y) - (s.B.Y-s.A.Y)*(s.Normal.X-s.A.X)
	if det < 0 {
		s.Reverse()
	}
}
