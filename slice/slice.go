// Package slice evaluates a Stage at a fixed height into the closed
// polygons that height's cross-section produces, and drives that
// evaluation across a whole mesh at a configured layer height.
package slice

import (
	"fmt"

	"github.com/hexlattice/contourpress/geom"
	"github.com/hexlattice/contourpress/polygon"
	"github.com/hexlattice/contourpress/stage"
)

// DefaultLayerHeight is the layer height, in mm, used when the caller
// doesn't pick one.
const DefaultLayerHeight = 0.1

// Config controls how a mesh is sliced.
type Config struct {
	LayerHeight float64
}

// Slice is one cross-section: every closed (or, exceptionally, open)
// polygon the mesh's surface traces at Height, plus any warnings raised
// while assembling them.
type Slice struct {
	Height   float64
	Polygons []polygon.Polygon
	Warnings []string
}

// BuildSlice evaluates every Link in st at height, turning each into a
// segment, then fuses the segments into polygons. height must fall
// within [st.Min, st.Max]; this is the one place the slice pipeline
// validates external input, since a caller driving BuildSlice directly
// (rather than through Iterator) can pass an arbitrary height.
func BuildSlice(st *stage.Stage, height float64) (*Slice, error) {
	if height < st.Min-geom.Epsilon || height > st.Max+geom.Epsilon {
		return nil, fmt.Errorf("slice: height %g outside stage [%g, %g]", height, st.Min, st.Max)
	}

	segs := make([]geom.Segment, 0, len(st.Links))
	for _, link := range st.Links {
		segs = append(segs, geom.Segment{
			A:      link.A.At(height),
			B:      link.B.At(height),
			Normal: link.Normal,
		})
	}

	polys, open := polygon.Assemble(segs)
	return &Slice{
		Height:   height,
		Polygons: polys,
		Warnings: polygon.Warnings(height, open),
	}, nil
}
