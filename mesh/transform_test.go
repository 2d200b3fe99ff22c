package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexlattice/contourpress/vec3"
)

func cube() Mesh {
	return Mesh{
		Vertices: []vec3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		Faces: []Face{
			{Normal: vec3.Vec{X: 0, Y: 0, Z: -1}, Indices: [3]uint32{0, 1, 2}},
		},
	}
}

func TestTranslateIdentity(t *testing.T) {
	m := cube()
	got := Translate(m, 0, 0, 0)
	assert.Equal(t, m.Vertices, got.Vertices)
}

func TestScaleIdentity(t *testing.T) {
	m := cube()
	got := Scale(m, 1, 1, 1)
	for i := range m.Vertices {
		assert.InDelta(t, m.Vertices[i].X, got.Vertices[i].X, 1e-12)
		assert.InDelta(t, m.Vertices[i].Y, got.Vertices[i].Y, 1e-12)
		assert.InDelta(t, m.Vertices[i].Z, got.Vertices[i].Z, 1e-12)
	}
}

func TestRotateZeroIdentity(t *testing.T) {
	m := cube()
	for _, rot := range []func(Mesh, float64) Mesh{RotateX, RotateY, RotateZ} {
		got := rot(m, 0)
		for i := range m.Vertices {
			assert.InDelta(t, m.Vertices[i].X, got.Vertices[i].X, 1e-9)
			assert.InDelta(t, m.Vertices[i].Y, got.Vertices[i].Y, 1e-9)
			assert.InDelta(t, m.Vertices[i].Z, got.Vertices[i].Z, 1e-9)
		}
	}
}

func TestRotateZComposition(t *testing.T) {
	m := cube()
	got := RotateZ(RotateZ(m, math.Pi), math.Pi)
	for i := range m.Vertices {
		assert.InDelta(t, m.Vertices[i].X, got.Vertices[i].X, 1e-9)
		assert.InDelta(t, m.Vertices[i].Y, got.Vertices[i].Y, 1e-9)
		assert.InDelta(t, m.Vertices[i].Z, got.Vertices[i].Z, 1e-9)
	}
}

func TestHomothetyAndTranslate(t *testing.T) {
	m := cube()
	got := Translate(Homothety(m, 2), 1, 1, 1)
	for _, v := range got.Vertices {
		assert.True(t, v.X >= 1 && v.X <= 3)
		assert.True(t, v.Y >= 1 && v.Y <= 3)
		assert.True(t, v.Z >= 1 && v.Z <= 3)
	}
}

func TestCenterEmptyMesh(t *testing.T) {
	var m Mesh
	got := Center(m)
	assert.Equal(t, m, got)
}

func TestCenterCube(t *testing.T) {
	got := Center(cube())
	var sum vec3.Vec
	for _, v := range got.Vertices {
		sum = sum.Add(v)
	}
	assert.InDelta(t, 0, sum.X, 1e-9)
	assert.InDelta(t, 0, sum.Y, 1e-9)
	assert.InDelta(t, 0, sum.Z, 1e-9)
}

func TestScaleNonUniformNormal(t *testing.T) {
	m := Mesh{
		Vertices: []vec3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Faces:    []Face{{Normal: vec3.Vec{X: 0, Y: 0, Z: 1}, Indices: [3]uint32{0, 1, 2}}},
	}
	got := Scale(m, 2, 1, 1)
	n := got.Faces[0].Normal
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
	assert.InDelta(t, 0, n.X, 1e-9)
	assert.InDelta(t, 0, n.Y, 1e-9)
	assert.InDelta(t, 1, n.Z, 1e-9)
}
