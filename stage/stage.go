// Package stage partitions a mesh's Z axis into slabs within which the
// triangle/plane intersection topology is invariant, and reduces each
// crossing triangle to the two parametric lines its plane intersection
// will interpolate along for any height in the slab.
package stage

import (
	"sort"

	"github.com/hexlattice/contourpress/geom"
	"github.com/hexlattice/contourpress/mesh"
	"github.com/hexlattice/contourpress/slicerr"
	"github.com/hexlattice/contourpress/vec3"
)

// Link is one triangle's contribution to a Stage: the two lines its
// crossing edges trace out, plus the triangle's normal.
type Link struct {
	A, B   geom.Line
	Normal vec3.Vec
}

// Stage is a maximal Z slab [Min,Max] together with every triangle that
// crosses it, reduced to Links.
type Stage struct {
	Min, Max float64
	Links    []Link
}

// Build computes the next slab strictly above lower. It returns
// (nil, false, nil) when the mesh's highest vertex has been reached:
// clean end of iteration, not an error. A NonFiniteCoordinateError is
// returned if any vertex used in this computation is non-finite.
func Build(m *mesh.Mesh, lower float64) (*Stage, bool, error) {
	highest, ok := m.Highest()
	if !ok {
		return nil, false, nil
	}
	if !m.IsFinite() {
		for i, v := range m.Vertices {
			if !v.IsFinite() {
				return nil, false, &slicerr.NonFiniteCoordinateError{VertexIndex: i}
			}
		}
	}
	if geom.ApproxEqualFloat(lower, highest) {
		return nil, false, nil
	}

	// Find the next distinct vertex altitude above lower.
	upper := highest
	for _, v := range m.Vertices {
		if v.Z <= upper && v.Z > lower {
			upper = v.Z
		}
	}
	if upper-lower < geom.Epsilon {
		// A slab thinner than epsilon carries no usable geometry;
		// skip it and recurse forward from the new floor instead of
		// stopping iteration outright.
		return Build(m, upper)
	}

	var links []Link
	for _, f := range m.Faces {
		fv := m.FaceVertices(f)

		var anyAbove, anyBelow bool
		for _, v := range fv {
			if v.Z >= upper {
				anyAbove = true
			}
			if v.Z <= lower {
				anyBelow = true
			}
		}
		if !anyAbove || !anyBelow {
			continue
		}

		verts := fv
		sort.Slice(verts[:], func(i, j int) bool { return verts[i].Z < verts[j].Z })
		a, b, c := verts[0], verts[1], verts[2]

		if geom.ApproxEqualFloat(a.Z, b.Z) && geom.ApproxEqualFloat(a.Z, c.Z) {
			// Flat triangle: contributes nothing.
			continue
		}

		var la, lb geom.Line
		if geom.ApproxEqualFloat(a.Z, b.Z) || b.Z <= lower {
			// Flat bottom, or the middle vertex sits at/below the
			// floor: only the top two edges (a,c) and (b,c) cross.
			la = geom.LineFromSegment(a, c)
			lb = geom.LineFromSegment(b, c)
		} else {
			// Generic or flat-top: edges (a,b) and (a,c) cross.
			la = geom.LineFromSegment(a, b)
			lb = geom.LineFromSegment(a, c)
		}

		links = append(links, Link{A: la, B: lb, Normal: f.Normal})
	}

	return &Stage{Min: lower, Max: upper, Links: links}, true, nil
}

// Iterator produces the ordered sequence of stages covering a mesh,
// bottom to top.
type Iterator struct {
	mesh *mesh.Mesh
	last float64
	done bool
}

// NewIterator starts an Iterator at the mesh's lowest vertex. If the
// mesh has no vertices, the returned iterator's Next reports done
// immediately. An empty result, not an error.
func NewIterator(m *mesh.Mesh) *Iterator {
	low, ok := m.Lowest()
	if !ok {
		return &Iterator{mesh: m, done: true}
	}
	return &Iterator{mesh: m, last: low}
}

// Next returns the next Stage in ascending order. ok is false once the
// mesh has been fully covered; err is non-nil only on a fatal condition.
func (it *Iterator) Next() (s *Stage, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}
	stage, ok, err := Build(it.mesh, it.last)
	if err != nil {
		it.done = true
		return nil, false, err
	}
	if !ok {
		it.done = true
		return nil, false, nil
	}
	it.last = stage.Max
	return stage, true, nil
}
