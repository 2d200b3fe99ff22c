package slice

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlattice/contourpress/geom"
	"github.com/hexlattice/contourpress/mesh"
	"github.com/hexlattice/contourpress/stage"
	"github.com/hexlattice/contourpress/transformlang"
	"github.com/hexlattice/contourpress/vec3"
)

func collect(t *testing.T, it *Iterator) []Slice {
	t.Helper()
	var out []Slice
	for {
		sl, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, *sl)
	}
}

func segmentLengths(segs []geom.Segment) []float64 {
	out := make([]float64, len(segs))
	for i, s := range segs {
		out[i] = s.B.Sub(s.A).Length()
	}
	sort.Float64s(out)
	return out
}

func unitTetrahedron() *mesh.Mesh {
	v := []vec3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	n := func(a, b, c vec3.Vec) vec3.Vec {
		return b.Sub(a).Cross(c.Sub(a)).Normalize()
	}
	faces := []mesh.Face{
		{Indices: [3]uint32{0, 2, 1}, Normal: n(v[0], v[2], v[1])},
		{Indices: [3]uint32{0, 1, 3}, Normal: n(v[0], v[1], v[3])},
		{Indices: [3]uint32{1, 2, 3}, Normal: n(v[1], v[2], v[3])},
		{Indices: [3]uint32{2, 0, 3}, Normal: n(v[2], v[0], v[3])},
	}
	return &mesh.Mesh{Vertices: v, Faces: faces}
}

func TestTetrahedronShrinkingTriangles(t *testing.T) {
	slices := collect(t, NewIterator(unitTetrahedron(), Config{LayerHeight: 0.25}))
	require.Len(t, slices, 3)

	for i, sl := range slices {
		assert.InDelta(t, 0.25*float64(i+1), sl.Height, 1e-12)
		require.Len(t, sl.Polygons, 1)
		assert.True(t, sl.Polygons[0].Closed())
		assert.Len(t, sl.Polygons[0].Segments, 3)
		for _, s := range sl.Polygons[0].Segments {
			assert.InDelta(t, sl.Height, s.A.Z, geom.Epsilon)
			assert.InDelta(t, sl.Height, s.B.Z, geom.Epsilon)
		}
	}

	// At h=0.5 the cross-section is a right triangle with legs 0.5 and
	// hypotenuse 0.5*sqrt(2).
	lengths := segmentLengths(slices[1].Polygons[0].Segments)
	assert.InDelta(t, 0.5, lengths[0], 1e-9)
	assert.InDelta(t, 0.5, lengths[1], 1e-9)
	assert.InDelta(t, 0.5*math.Sqrt2, lengths[2], 1e-9)
}

// quadFaces splits the quad a,b,c,d (in traversal order) into two
// triangles sharing the a-c diagonal.
func quadFaces(a, b, c, d uint32, n vec3.Vec) []mesh.Face {
	return []mesh.Face{
		{Indices: [3]uint32{a, b, c}, Normal: n},
		{Indices: [3]uint32{a, c, d}, Normal: n},
	}
}

// holedCube builds the side walls of a 10x10x10 cube centered on the Z
// axis with a vertical 16-gon bore of radius 2 through the middle. The
// horizontal top and bottom annuli would be dismissed as flat triangles
// anyway, so they are left out of the test mesh.
func holedCube() *mesh.Mesh {
	m := &mesh.Mesh{}
	for _, z := range []float64{0, 10} {
		m.Vertices = append(m.Vertices,
			vec3.Vec{X: -5, Y: -5, Z: z},
			vec3.Vec{X: 5, Y: -5, Z: z},
			vec3.Vec{X: 5, Y: 5, Z: z},
			vec3.Vec{X: -5, Y: 5, Z: z},
		)
	}
	m.Faces = append(m.Faces, quadFaces(0, 1, 5, 4, vec3.Vec{Y: -1})...)
	m.Faces = append(m.Faces, quadFaces(1, 2, 6, 5, vec3.Vec{X: 1})...)
	m.Faces = append(m.Faces, quadFaces(2, 3, 7, 6, vec3.Vec{Y: 1})...)
	m.Faces = append(m.Faces, quadFaces(3, 0, 4, 7, vec3.Vec{X: -1})...)

	const sides = 16
	base := uint32(len(m.Vertices))
	for _, z := range []float64{0, 10} {
		for i := 0; i < sides; i++ {
			th := 2 * math.Pi * float64(i) / sides
			m.Vertices = append(m.Vertices, vec3.Vec{X: 2 * math.Cos(th), Y: 2 * math.Sin(th), Z: z})
		}
	}
	for i := uint32(0); i < sides; i++ {
		j := (i + 1) % sides
		mid := 2 * math.Pi * (float64(i) + 0.5) / sides
		inward := vec3.Vec{X: -math.Cos(mid), Y: -math.Sin(mid)}
		// Wound opposite to the outer walls so the bore surface faces
		// the cavity.
		m.Faces = append(m.Faces, quadFaces(base+j, base+i, base+sides+i, base+sides+j, inward)...)
	}
	return m
}

func TestHoledCubeTwoRingsPerLayer(t *testing.T) {
	slices := collect(t, NewIterator(holedCube(), Config{LayerHeight: 1}))
	require.Len(t, slices, 9)

	sixteenGonArea := 0.5 * 16 * 4 * math.Sin(2*math.Pi/16)
	for _, sl := range slices {
		require.Len(t, sl.Polygons, 2, "height %g", sl.Height)
		assert.Empty(t, sl.Warnings)

		total := 0
		var areas []float64
		for _, p := range sl.Polygons {
			assert.True(t, p.Closed())
			total += len(p.Segments)
			areas = append(areas, math.Abs(p.SignedArea()))
			for _, s := range p.Segments {
				assert.InDelta(t, sl.Height, s.A.Z, geom.Epsilon)
				assert.InDelta(t, sl.Height, s.B.Z, geom.Epsilon)
			}
		}
		// 8 outer wall segments + 32 bore segments, no segment lost or
		// duplicated by assembly.
		assert.Equal(t, 40, total)
		sort.Float64s(areas)
		assert.InDelta(t, sixteenGonArea, areas[0], 1e-9)
		assert.InDelta(t, 100, areas[1], 1e-9)
	}
}

// wedge is a trapezoid-profile prism: a 4x3 base at z=0 narrowing to a
// flat horizontal 2x3 top at z=2.
func wedge() *mesh.Mesh {
	m := &mesh.Mesh{
		Vertices: []vec3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 0}, {X: 4, Y: 3, Z: 0}, {X: 0, Y: 3, Z: 0},
			{X: 1, Y: 0, Z: 2}, {X: 3, Y: 0, Z: 2}, {X: 3, Y: 3, Z: 2}, {X: 1, Y: 3, Z: 2},
		},
	}
	left := vec3.Vec{X: -2, Z: 1}.Normalize()
	right := vec3.Vec{X: 2, Z: 1}.Normalize()
	m.Faces = append(m.Faces, quadFaces(0, 3, 2, 1, vec3.Vec{Z: -1})...) // bottom
	m.Faces = append(m.Faces, quadFaces(4, 5, 6, 7, vec3.Vec{Z: 1})...)  // flat top
	m.Faces = append(m.Faces, quadFaces(0, 1, 5, 4, vec3.Vec{Y: -1})...)
	m.Faces = append(m.Faces, quadFaces(2, 3, 7, 6, vec3.Vec{Y: 1})...)
	m.Faces = append(m.Faces, quadFaces(3, 0, 4, 7, left)...)
	m.Faces = append(m.Faces, quadFaces(1, 2, 6, 5, right)...)
	return m
}

func TestWedgeFlatFacesContributeNothing(t *testing.T) {
	st, ok, err := stage.Build(wedge(), 0)
	require.NoError(t, err)
	require.True(t, ok)
	// 12 faces, minus the 2 bottom and 2 top flat triangles.
	assert.Len(t, st.Links, 8)

	mid, err := BuildSlice(st, 1)
	require.NoError(t, err)
	require.Len(t, mid.Polygons, 1)
	assert.True(t, mid.Polygons[0].Closed())
	assert.Len(t, mid.Polygons[0].Segments, 8)

	// Exactly at the top the slanted and end walls collapse onto the
	// flat top's outline.
	top, err := BuildSlice(st, 2)
	require.NoError(t, err)
	for _, p := range top.Polygons {
		for _, s := range p.Segments {
			for _, v := range []vec3.Vec{s.A, s.B} {
				assert.InDelta(t, 2, v.Z, geom.Epsilon)
				assert.GreaterOrEqual(t, v.X, 1-geom.Epsilon)
				assert.LessOrEqual(t, v.X, 3+geom.Epsilon)
				assert.GreaterOrEqual(t, v.Y, 0-geom.Epsilon)
				assert.LessOrEqual(t, v.Y, 3+geom.Epsilon)
			}
		}
	}
}

func TestTransformChainThenSlice(t *testing.T) {
	ops, err := transformlang.Parse("homothety(2); move(1,1,1)")
	require.NoError(t, err)
	m, err := mesh.Apply(*unitCube(), ops)
	require.NoError(t, err)

	low, _ := m.Lowest()
	high, _ := m.Highest()
	assert.InDelta(t, 1, low, 1e-12)
	assert.InDelta(t, 3, high, 1e-12)

	slices := collect(t, NewIterator(&m, Config{LayerHeight: 1}))
	require.Len(t, slices, 1)
	sl := slices[0]
	assert.InDelta(t, 2, sl.Height, 1e-12)
	require.Len(t, sl.Polygons, 1)
	assert.True(t, sl.Polygons[0].Closed())
	for _, s := range sl.Polygons[0].Segments {
		for _, v := range []vec3.Vec{s.A, s.B} {
			assert.GreaterOrEqual(t, v.X, 1-geom.Epsilon)
			assert.LessOrEqual(t, v.X, 3+geom.Epsilon)
			assert.GreaterOrEqual(t, v.Y, 1-geom.Epsilon)
			assert.LessOrEqual(t, v.Y, 3+geom.Epsilon)
			assert.InDelta(t, 2, v.Z, geom.Epsilon)
		}
	}
}
