package rasterslice

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlattice/contourpress/geom"
	"github.com/hexlattice/contourpress/polygon"
	"github.com/hexlattice/contourpress/slice"
	"github.com/hexlattice/contourpress/vec3"
)

func square() *slice.Slice {
	n := vec3.Vec{X: 0, Y: 0, Z: 1}
	pt := func(x, y float64) vec3.Vec { return vec3.Vec{X: x, Y: y} }
	return &slice.Slice{
		Height: 0.25,
		Polygons: []polygon.Polygon{{Segments: []geom.Segment{
			{A: pt(0, 0), B: pt(1, 0), Normal: n},
			{A: pt(1, 0), B: pt(1, 1), Normal: n},
			{A: pt(1, 1), B: pt(0, 1), Normal: n},
			{A: pt(0, 1), B: pt(0, 0), Normal: n},
		}}},
	}
}

func TestRenderProducesNonEmptyImage(t *testing.T) {
	img := Render(square(), Options{})
	b := img.Bounds()
	assert.Greater(t, b.Dx(), 0)
	assert.Greater(t, b.Dy(), 0)
}

func TestWritePNGEncodesBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, square(), Options{}))
	assert.Greater(t, buf.Len(), 0)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestRenderEmptySlice(t *testing.T) {
	img := Render(&slice.Slice{}, Options{})
	assert.NotNil(t, img)
}
