// Package stlio converts between an indexed mesh.Mesh and the
// triangle-soup STL representation github.com/krasin/stl reads and
// writes, the way krasin-steel's info/scale/slice/cut commands do.
// STL carries no index: every triangle repeats its three vertices, so
// reading welds coincident vertices and writing expands them back out.
package stlio

import (
	"io"

	"github.com/krasin/stl"

	"github.com/hexlattice/contourpress/mesh"
	"github.com/hexlattice/contourpress/slicerr"
	"github.com/hexlattice/contourpress/vec3"
)

// Read parses an STL file (binary or ASCII, stl.Read auto-detects)
// into a welded indexed mesh. It rejects an empty file and any
// non-finite coordinate at the boundary, so the rest of the pipeline
// never has to.
func Read(r io.Reader) (*mesh.Mesh, error) {
	triangles, err := stl.Read(r)
	if err != nil {
		return nil, err
	}
	if len(triangles) == 0 {
		return nil, slicerr.ErrEmptyMesh
	}

	m := &mesh.Mesh{}
	index := make(map[vec3.Vec]uint32, len(triangles)*3)

	weld := func(p stl.Point) uint32 {
		v := vec3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
		if i, ok := index[v]; ok {
			return i
		}
		i := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, v)
		index[v] = i
		return i
	}

	for i, tr := range triangles {
		face := mesh.Face{
			Normal:  vec3.Vec{X: float64(tr.N[0]), Y: float64(tr.N[1]), Z: float64(tr.N[2])},
			Indices: [3]uint32{weld(tr.V[0]), weld(tr.V[1]), weld(tr.V[2])},
		}
		m.Faces = append(m.Faces, face)
		if !face.Normal.IsFinite() {
			return nil, &slicerr.NonFiniteCoordinateError{VertexIndex: i}
		}
	}
	if !m.IsFinite() {
		for i, v := range m.Vertices {
			if !v.IsFinite() {
				return nil, &slicerr.NonFiniteCoordinateError{VertexIndex: i}
			}
		}
	}
	return m, nil
}

// WriteBinary expands m back into triangle soup and writes it as
// binary STL.
func WriteBinary(w io.Writer, m *mesh.Mesh) error {
	return stl.WriteBinary(w, toTriangles(m))
}

// WriteASCII is WriteBinary's ASCII-format counterpart.
func WriteASCII(w io.Writer, m *mesh.Mesh) error {
	return stl.WriteASCII(w, toTriangles(m))
}

func toTriangles(m *mesh.Mesh) []stl.Triangle {
	out := make([]stl.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		fv := m.FaceVertices(f)
		out[i] = stl.Triangle{
			N: toPoint(f.Normal),
			V: [3]stl.Point{toPoint(fv[0]), toPoint(fv[1]), toPoint(fv[2])},
		}
	}
	return out
}

func toPoint(v vec3.Vec) stl.Point {
	return stl.Point{v.X, v.Y, v.Z}
}
