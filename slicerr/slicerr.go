// Package slicerr defines the error and warning types the pipeline
// surfaces: an empty mesh or a degenerate slab is not an error, an open
// polygon is a warning attached to the slice that produced it, and a
// non-finite coordinate is the one fatal, propagated condition.
package slicerr

import (
	"errors"
	"fmt"
)

// ErrEmptyMesh is not itself returned by the pipeline (an empty mesh
// simply yields a stage iterator with no stages) but it is exposed for
// callers (stlio, threemf) that want to reject an empty mesh explicitly
// at the I/O boundary.
var ErrEmptyMesh = errors.New("slicer: mesh has no vertices")

// NonFiniteCoordinateError is fatal: a NaN or infinite coordinate was
// found in a vertex the pipeline was about to use.
type NonFiniteCoordinateError struct {
	VertexIndex int
}

func (e *NonFiniteCoordinateError) Error() string {
	return fmt.Sprintf("slicer: non-finite coordinate at vertex %d", e.VertexIndex)
}

// OpenPolygonWarning records that a polygon in a slice did not close.
// It is collected, never returned as an error: the polygon is still
// emitted; downstream code may still use it.
type OpenPolygonWarning struct {
	SliceHeight  float64
	PolygonIndex int
}

func (w OpenPolygonWarning) String() string {
	return fmt.Sprintf("open polygon %d at height %g", w.PolygonIndex, w.SliceHeight)
}
