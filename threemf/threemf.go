// Package threemf reads a mesh out of a 3MF package via
// github.com/hpinc/go3mf. 3MF carries no per-triangle normal, so one is
// derived from each triangle's vertex winding the way mesh.Mesh expects.
package threemf

import (
	"io"
	"os"

	"github.com/hpinc/go3mf"

	"github.com/hexlattice/contourpress/mesh"
	"github.com/hexlattice/contourpress/slicerr"
	"github.com/hexlattice/contourpress/vec3"
)

// Read decodes the first mesh-bearing object in a 3MF package.
func Read(ra io.ReaderAt, size int64) (*mesh.Mesh, error) {
	var model go3mf.Model
	if err := go3mf.NewDecoder(ra, size).Decode(&model); err != nil {
		return nil, err
	}
	return convertModel(&model)
}

// convertModel pulls the first mesh-bearing object out of a decoded
// Model. Split out from Read so the conversion (vertex copy, normal
// derivation, finiteness checks) is testable without needing a real
// zipped 3MF package on disk.
func convertModel(model *go3mf.Model) (*mesh.Mesh, error) {
	var obj *go3mf.Object
	for _, o := range model.Resources.Objects {
		if o.Mesh != nil && len(o.Mesh.Triangles.Triangle) > 0 {
			obj = o
			break
		}
	}
	if obj == nil {
		return nil, slicerr.ErrEmptyMesh
	}

	out := &mesh.Mesh{
		Vertices: make([]vec3.Vec, len(obj.Mesh.Vertices.Vertex)),
	}
	for i, p := range obj.Mesh.Vertices.Vertex {
		out.Vertices[i] = vec3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
	}

	for _, tr := range obj.Mesh.Triangles.Triangle {
		i1, i2, i3 := uint32(tr.V1), uint32(tr.V2), uint32(tr.V3)
		a, b, c := out.Vertices[i1], out.Vertices[i2], out.Vertices[i3]
		normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
		out.Faces = append(out.Faces, mesh.Face{Normal: normal, Indices: [3]uint32{i1, i2, i3}})
	}

	if len(out.Vertices) == 0 {
		return nil, slicerr.ErrEmptyMesh
	}
	for i, v := range out.Vertices {
		if !v.IsFinite() {
			return nil, &slicerr.NonFiniteCoordinateError{VertexIndex: i}
		}
	}
	return out, nil
}

// ReadFile opens path and decodes its first mesh-bearing object.
func ReadFile(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return Read(f, info.Size())
}
