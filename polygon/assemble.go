package polygon

import (
	"github.com/dhconnelly/rtreego"

	"github.com/hexlattice/contourpress/geom"
	"github.com/hexlattice/contourpress/slicerr"
	"github.com/hexlattice/contourpress/vec3"
)

// endSide identifies which end of a chain an index entry tracks.
type endSide int

const (
	sideFront endSide = iota
	sideBack
)

// endpointEntry is the Spatial rtreego indexes: the 2D location of one
// open chain's front or back endpoint.
type endpointEntry struct {
	owner *chain
	side  endSide
	point vec3.Vec
}

func (e *endpointEntry) Bounds() *rtreego.Rect {
	return rtreego.Point{e.point.X, e.point.Y}.ToRect(geom.Epsilon * 4)
}

// endpointIndex narrows endpoint matching from O(n) per segment to a
// spatial query, so assembly stays near-linear instead of quadratic as
// the segment count grows.
type endpointIndex struct {
	tree *rtreego.Rtree
}

func newEndpointIndex() *endpointIndex {
	return &endpointIndex{tree: rtreego.NewTree(2, 4, 16)}
}

func (ix *endpointIndex) insert(c *chain, side endSide, p vec3.Vec) *endpointEntry {
	e := &endpointEntry{owner: c, side: side, point: p}
	ix.tree.Insert(e)
	return e
}

func (ix *endpointIndex) remove(e *endpointEntry) {
	if e == nil {
		return
	}
	ix.tree.Delete(e)
}

func (ix *endpointIndex) search(p vec3.Vec) []*endpointEntry {
	hits := ix.tree.SearchIntersect(rtreego.Point{p.X, p.Y}.ToRect(geom.Epsilon * 4))
	out := make([]*endpointEntry, 0, len(hits))
	for _, h := range hits {
		e := h.(*endpointEntry)
		if geom.ApproxEqualVertex(e.point, p) {
			out = append(out, e)
		}
	}
	return out
}

// chain is a Polygon under construction, plus its current index entries
// so they can be retired when the chain grows or merges.
type chain struct {
	poly                  *Polygon
	frontEntry, backEntry *endpointEntry
}

// matchKind covers the four ways an arriving segment's endpoint can
// coincide with an existing chain's front or back, and whether the
// segment must be reversed to attach cleanly.
type matchKind int

const (
	matchFrontRevert matchKind = iota // s.A == chain.front.A: prepend reverse(s)
	matchFront                        // s.B == chain.front.A: prepend s
	matchBack                         // s.A == chain.back.B:  append s
	matchBackRevert                   // s.B == chain.back.B:  append reverse(s)
)

func sideOf(k matchKind) endSide {
	if k == matchFrontRevert || k == matchFront {
		return sideFront
	}
	return sideBack
}

func insertMatch(p *Polygon, s geom.Segment, k matchKind) {
	switch k {
	case matchFrontRevert:
		rev := s
		rev.Reverse()
		p.Segments = append([]geom.Segment{rev}, p.Segments...)
	case matchFront:
		p.Segments = append([]geom.Segment{s}, p.Segments...)
	case matchBack:
		p.Segments = append(p.Segments, s)
	case matchBackRevert:
		rev := s
		rev.Reverse()
		p.Segments = append(p.Segments, rev)
	}
}

// spliceOnto joins other onto base after base has already absorbed the
// bridging segment on baseSide, given other matched the same segment on
// otherSide. Each of the four side combinations may need to reverse one
// chain first so the two traversal directions agree before concatenating.
func spliceOnto(base *Polygon, baseSide endSide, other *Polygon, otherSide endSide) {
	switch {
	case baseSide == sideBack && otherSide == sideFront:
		base.Segments = append(base.Segments, other.Segments...)
	case baseSide == sideBack && otherSide == sideBack:
		other.Reverse()
		base.Segments = append(base.Segments, other.Segments...)
	case baseSide == sideFront && otherSide == sideFront:
		other.Reverse()
		base.Segments = append(append([]geom.Segment{}, other.Segments...), base.Segments...)
	case baseSide == sideFront && otherSide == sideBack:
		base.Segments = append(append([]geom.Segment{}, other.Segments...), base.Segments...)
	}
}

func removeChain(chains []*chain, target *chain) []*chain {
	out := chains[:0]
	for _, c := range chains {
		if c != target {
			out = append(out, c)
		}
	}
	return out
}

func (c *chain) reindex(ix *endpointIndex) {
	ix.remove(c.frontEntry)
	ix.remove(c.backEntry)
	c.frontEntry = ix.insert(c, sideFront, c.poly.Front().A)
	c.backEntry = ix.insert(c, sideBack, c.poly.Back().B)
}

// Assemble fuses an unordered bag of slice-plane segments into closed
// (or, for a non-manifold or clipped mesh, left open) polygons. Each
// segment is fed through correctDirection first, then matched against
// every open chain's front and back endpoint; zero matches starts a new
// chain, one match extends a chain, two matches bridges two chains into
// one. Returns every resulting polygon plus the indices of any that
// never closed.
func Assemble(segments []geom.Segment) ([]Polygon, []int) {
	ix := newEndpointIndex()
	var chains []*chain

	for _, raw := range segments {
		s := raw
		correctDirection(&s)

		matches := map[*chain]matchKind{}
		for _, e := range ix.search(s.A) {
			if e.side == sideFront {
				matches[e.owner] = matchFrontRevert
			} else {
				matches[e.owner] = matchBack
			}
		}
		for _, e := range ix.search(s.B) {
			if _, ok := matches[e.owner]; ok {
				continue
			}
			if e.side == sideFront {
				matches[e.owner] = matchFront
			} else {
				matches[e.owner] = matchBackRevert
			}
		}

		switch len(matches) {
		case 0:
			c := &chain{poly: &Polygon{Segments: []geom.Segment{s}}}
			c.frontEntry = ix.insert(c, sideFront, c.poly.Front().A)
			c.backEntry = ix.insert(c, sideBack, c.poly.Back().B)
			chains = append(chains, c)

		case 1:
			var target *chain
			var kind matchKind
			for c, k := range matches {
				target, kind = c, k
			}
			insertMatch(target.poly, s, kind)
			target.reindex(ix)

		default:
			var owners []*chain
			var kinds []matchKind
			for c, k := range matches {
				owners = append(owners, c)
				kinds = append(kinds, k)
			}
			base, other := owners[0], owners[1]
			baseKind, otherKind := kinds[0], kinds[1]

			insertMatch(base.poly, s, baseKind)
			spliceOnto(base.poly, sideOf(baseKind), other.poly, sideOf(otherKind))

			ix.remove(other.frontEntry)
			ix.remove(other.backEntry)
			base.reindex(ix)
			chains = removeChain(chains, other)
		}
	}

	polys := make([]Polygon, len(chains))
	var open []int
	for i, c := range chains {
		polys[i] = *c.poly
		if !c.poly.Closed() {
			open = append(open, i)
		}
	}
	return polys, open
}

// Warnings converts the open-polygon indices Assemble returns into the
// human-readable strings a Slice attaches to itself.
func Warnings(height float64, openIdx []int) []string {
	if len(openIdx) == 0 {
		return nil
	}
	out := make([]string, len(openIdx))
	for i, idx := range openIdx {
		out[i] = slicerr.OpenPolygonWarning{SliceHeight: height, PolygonIndex: idx}.String()
	}
	return out
}
