// Package mesh defines the indexed triangle mesh the slicer core
// consumes, and the affine pre-transforms (translate, scale, rotate,
// center) applied to it before slicing.
package mesh

import (
	"github.com/hexlattice/contourpress/vec3"
)

// Face is one triangle: three indices into the owning Mesh's Vertices,
// plus the triangle's surface normal.
type Face struct {
	Normal  vec3.Vec
	Indices [3]uint32
}

// Mesh is an indexed triangulated surface, the core's only input type;
// STL/3MF readers (packages stlio, threemf) produce one.
type Mesh struct {
	Vertices []vec3.Vec
	Faces    []Face
}

// Lowest returns the minimum Z among all vertices, or false if the mesh
// has no vertices.
func (m *Mesh) Lowest() (float64, bool) {
	if len(m.Vertices) == 0 {
		return 0, false
	}
	low := m.Vertices[0].Z
	for _, v := range m.Vertices[1:] {
		if v.Z < low {
			low = v.Z
		}
	}
	return low, true
}

// Highest returns the maximum Z among all vertices, or false if the
// mesh has no vertices.
func (m *Mesh) Highest() (float64, bool) {
	if len(m.Vertices) == 0 {
		return 0, false
	}
	high := m.Vertices[0].Z
	for _, v := range m.Vertices[1:] {
		if v.Z > high {
			high = v.Z
		}
	}
	return high, true
}

// FaceVertices returns the three vertex positions of face f.
func (m *Mesh) FaceVertices(f Face) [3]vec3.Vec {
	return [3]vec3.Vec{
		m.Vertices[f.Indices[0]],
		m.Vertices[f.Indices[1]],
		m.Vertices[f.Indices[2]],
	}
}

// IsFinite reports whether every vertex coordinate is finite. Readers
// (stlio, threemf) check this at the I/O boundary; the core checks it
// again in stage.Build as a defense against mutation in between.
func (m *Mesh) IsFinite() bool {
	for _, v := range m.Vertices {
		if !v.IsFinite() {
			return false
		}
	}
	return true
}
