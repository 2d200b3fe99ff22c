package mesh

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hexlattice/contourpress/vec3"
)

// applyLinear maps every vertex through the 3x3 matrix vm, and every
// face normal through nm (then re-normalizes), building an entirely
// new Mesh. Both matrices read every vertex/normal before writing the
// first output, so rotating a vertex never mutates a coordinate that a
// later computation for that same vertex still needs to read.
func applyLinear(m Mesh, vm, nm *mat.Dense) Mesh {
	out := Mesh{
		Vertices: make([]vec3.Vec, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = matVec(vm, v)
	}
	for i, f := range m.Faces {
		out.Faces[i] = Face{
			Normal:  matVec(nm, f.Normal).Normalize(),
			Indices: f.Indices,
		}
	}
	return out
}

// applyAffine is applyLinear plus a uniform translation of every
// vertex (normals are unaffected by translation).
func applyAffine(m Mesh, vm *mat.Dense, offset vec3.Vec) Mesh {
	out := Mesh{
		Vertices: make([]vec3.Vec, len(m.Vertices)),
		Faces:    append([]Face(nil), m.Faces...),
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = matVec(vm, v).Add(offset)
	}
	return out
}

func matVec(m *mat.Dense, v vec3.Vec) vec3.Vec {
	var dst mat.VecDense
	dst.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return vec3.Vec{X: dst.AtVec(0), Y: dst.AtVec(1), Z: dst.AtVec(2)}
}

func identity3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// Translate adds (dx,dy,dz) to every vertex. Normals are unchanged.
func Translate(m Mesh, dx, dy, dz float64) Mesh {
	return applyAffine(m, identity3(), vec3.Vec{X: dx, Y: dy, Z: dz})
}

// Scale multiplies every vertex componentwise by (sx,sy,sz). Normals
// are transformed by the inverse-transpose of the scale matrix
// (diag(1/sx,1/sy,1/sz), which is its own transpose) and renormalized,
// so non-uniform scale doesn't tilt the apparent surface orientation.
func Scale(m Mesh, sx, sy, sz float64) Mesh {
	vm := mat.NewDense(3, 3, []float64{
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	})
	nm := mat.NewDense(3, 3, []float64{
		1 / sx, 0, 0,
		0, 1 / sy, 0,
		0, 0, 1 / sz,
	})
	return applyLinear(m, vm, nm)
}

// Homothety is a uniform scale by s.
func Homothety(m Mesh, s float64) Mesh {
	return Scale(m, s, s, s)
}

// RotateX rotates every vertex and normal around the X axis by theta
// radians, right-hand rule.
func RotateX(m Mesh, theta float64) Mesh {
	c, s := math.Cos(theta), math.Sin(theta)
	rm := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
	return applyLinear(m, rm, rm)
}

// RotateY rotates every vertex and normal around the Y axis by theta
// radians, right-hand rule.
func RotateY(m Mesh, theta float64) Mesh {
	c, s := math.Cos(theta), math.Sin(theta)
	rm := mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
	return applyLinear(m, rm, rm)
}

// RotateZ rotates every vertex and normal around the Z axis by theta
// radians, right-hand rule.
func RotateZ(m Mesh, theta float64) Mesh {
	c, s := math.Cos(theta), math.Sin(theta)
	rm := mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
	return applyLinear(m, rm, rm)
}

// Center translates the mesh by the negation of its vertex centroid.
// An empty mesh is returned unchanged.
func Center(m Mesh) Mesh {
	if len(m.Vertices) == 0 {
		return m
	}
	var sum vec3.Vec
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	n := float64(len(m.Vertices))
	centroid := vec3.Vec{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
	return Translate(m, -centroid.X, -centroid.Y, -centroid.Z)
}
