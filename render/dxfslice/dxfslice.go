// Package dxfslice exports a Slice (or a whole run of slices) to DXF
// via github.com/yofu/dxf, one layer per slice height, the way a CAM
// tool would expect a multi-layer drawing to separate print layers.
package dxfslice

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/hexlattice/contourpress/slice"
)

// Writer accumulates slices into layers of a single DXF drawing.
type Writer struct {
	d *drawing.Drawing
}

// New starts an empty drawing.
func New() *Writer {
	return &Writer{d: dxf.NewDrawing()}
}

// AddSlice draws every polygon ring in sl as closed line segments on a
// layer named for its height.
func (w *Writer) AddSlice(sl *slice.Slice) error {
	layer := fmt.Sprintf("SLICE_%g", sl.Height)
	if _, err := w.d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, p := range sl.Polygons {
		for _, seg := range p.Segments {
			if _, err := w.d.Line(seg.A.X, seg.A.Y, seg.A.Z, seg.B.X, seg.B.Y, seg.B.Z); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveAs flushes the drawing to path.
func (w *Writer) SaveAs(path string) error {
	return w.d.SaveAs(path)
}
