// Package svgslice previews a Slice as an SVG document, one <polygon>
// per ring, via github.com/ajstarks/svgo. Outer rings and holes get
// different fill styles by checking polygon.Polygon.Winding, so the
// classification comes from the polygon's own signed area rather than
// its position in Slice.Polygons.
package svgslice

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hexlattice/contourpress/polygon"
	"github.com/hexlattice/contourpress/slice"
)

// Scale converts model-space units to SVG pixels.
const Scale = 20.0

// Write renders sl to w as a standalone SVG document sized to fit the
// slice's bounding box with a small margin.
func Write(w io.Writer, sl *slice.Slice) {
	minX, minY, maxX, maxY := bounds(sl)
	margin := 10.0
	width := int((maxX-minX)*Scale + 2*margin)
	height := int((maxY-minY)*Scale + 2*margin)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	canvas.Gstyle("stroke:black;stroke-width:1")
	for _, p := range sl.Polygons {
		xs, ys := ringPoints(p, minX, minY, margin)
		style := "fill:lightgray"
		if p.Winding() != polygon.CCW {
			style = "fill:white"
		}
		canvas.Polygon(xs, ys, style)
	}
	canvas.Gend()
}

func bounds(sl *slice.Slice) (minX, minY, maxX, maxY float64) {
	first := true
	for _, p := range sl.Polygons {
		for _, s := range p.Segments {
			for _, v := range [2]struct{ X, Y float64 }{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}} {
				if first {
					minX, maxX = v.X, v.X
					minY, maxY = v.Y, v.Y
					first = false
					continue
				}
				if v.X < minX {
					minX = v.X
				}
				if v.X > maxX {
					maxX = v.X
				}
				if v.Y < minY {
					minY = v.Y
				}
				if v.Y > maxY {
					maxY = v.Y
				}
			}
		}
	}
	return
}

func ringPoints(p polygon.Polygon, minX, minY, margin float64) ([]int, []int) {
	xs := make([]int, len(p.Segments))
	ys := make([]int, len(p.Segments))
	for i, s := range p.Segments {
		xs[i] = int((s.A.X-minX)*Scale + margin)
		ys[i] = int((s.A.Y-minY)*Scale + margin)
	}
	return xs, ys
}
