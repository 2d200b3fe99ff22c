// Package gcodeio emits G-code for a slice sequence. Printer tracks
// extruder position and flow the way a real print driver would, travel
// moves separate from extruding moves, and walks a slice sequence one
// layer at a time, the whole body bracketed by a caller-supplied
// Preamble (DagomaDiscoUltimate supplies one set of start/end G-code
// as a ready-made default).
package gcodeio

import (
	"fmt"
	"io"
	"math"

	"github.com/hexlattice/contourpress/slice"
)

// FlowRate converts a travel distance to an extrusion length.
const FlowRate = 0.05

// Vec4 is a print-head position plus accumulated extrusion.
type Vec4 struct {
	X, Y, Z, E float64
}

func distance(a, b Vec4) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Preamble is the literal text written before and after the sliced
// body of a G-code file.
type Preamble struct {
	Start string
	End   string
}

// DagomaDiscoUltimate is the stock start/end G-code for a Dagoma
// DiscoUltimate, kept as the package default.
var DagomaDiscoUltimate = Preamble{Start: dagomaStart, End: dagomaEnd}

const dagomaStart = `M82 ;absolute extrusion mode
;Begin Start Gcode for Dagoma DiscoUltimate
G90 ;Absolute positioning
M106 S255 ;Fan on full
G28 X Y ;Home stop X Y
G1 X100 ;Centre back during cooldown in case of oozing
M109 R90 ;Cooldown in case too hot
G28 ;Centre
G29 ;Auto-level
M104 S215 ;Pre-heat
M107 ;Fan off
G0 X100 Y5 Z0.5 ;Front centre for degunk
M109 S215 ;Wait for initial temp
M83 ;E Relative
G1 E10 F200 ;Degunk
G1 E-3 F5000 ;Retract
G0 Z3 ;Withdraw
M82 ;E absolute
G92 E0 ;E reset
G1 F6000 ;Set feedrate`

const dagomaEnd = `M106 S255 ;Fan on full
M104 S0 ;Cool hotend
M140 S0 ;Cool heated bed
G91 ;Relative positioning
G1 E-3 F5000 ;Retract filament to stop oozing
G0 Z+3 ;Withdraw
G90 ;Absolute positioning
G28 X Y ;Home
M109 R90 ;Wait until head has cooled to standby temp
M107 ;Fan off
M18 ;Stepper motors off
;Finish End Gcode for Dagoma DiscoUltimate
M82 ;absolute extrusion mode
M104 S0`

// Printer holds the running position state of one G-code emission.
type Printer struct {
	w        io.Writer
	cur      Vec4
	offset   Vec4
	preamble Preamble
}

// NewPrinter builds a Printer that writes to w, bracketing the body
// with preamble.
func NewPrinter(w io.Writer, preamble Preamble) *Printer {
	return &Printer{w: w, preamble: preamble}
}

func (p *Printer) moveTo(x, y, z, e float64) error {
	p.cur = Vec4{X: x, Y: y, Z: z, E: e}
	_, err := fmt.Fprintf(p.w, "G1 X%g Y%g Z%g E%g\n", x, y, z, e)
	return err
}

func (p *Printer) moveBy(dx, dy, dz, de float64) error {
	return p.moveTo(p.cur.X+dx, p.cur.Y+dy, p.cur.Z+dz, p.cur.E+de)
}

func (p *Printer) printTo(x, y, z float64) error {
	e := distance(p.cur, Vec4{X: x, Y: y, Z: z}) * FlowRate
	return p.moveTo(x, y, z, p.cur.E+e)
}

func (p *Printer) printBy(dx, dy, dz float64) error {
	e := distance(Vec4{}, Vec4{X: dx, Y: dy, Z: dz}) * FlowRate
	return p.moveBy(dx, dy, dz, e)
}

// Print drains it, writing the start preamble, one ;LAYER: banner per
// slice, a G1 travel-then-extrude move per segment, then the end
// preamble. layerHeight sets the initial lift above the bed.
func (p *Printer) Print(it *slice.Iterator, layerHeight float64) error {
	if _, err := fmt.Fprintln(p.w, p.preamble.Start); err != nil {
		return err
	}

	firstLayerHeight := layerHeight / 2
	p.cur = Vec4{}
	p.offset = Vec4{}
	if err := p.moveBy(0, 0, 10, 0); err != nil {
		return err
	}
	if err := p.moveTo(100, 100, firstLayerHeight, 0); err != nil {
		return err
	}

	firstDraw := true
	layerNum := 0
	for {
		sl, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		layerNum++
		if _, err := fmt.Fprintf(p.w, ";LAYER:%d\n", layerNum); err != nil {
			return err
		}
		for _, poly := range sl.Polygons {
			for _, seg := range poly.Segments {
				first, second := seg.A, seg.B
				if firstDraw {
					p.offset = Vec4{X: first.X, Y: first.Y, Z: first.Z}
				} else {
					if err := p.moveBy(first.X-p.offset.X, first.Y-p.offset.Y, first.Z-p.offset.Z, 0); err != nil {
						return err
					}
					p.offset = Vec4{X: first.X, Y: first.Y, Z: first.Z}
				}
				if err := p.printBy(second.X-p.offset.X, second.Y-p.offset.Y, second.Z-p.offset.Z); err != nil {
					return err
				}
				p.offset = Vec4{X: second.X, Y: second.Y, Z: second.Z}
				firstDraw = false
			}
		}
	}
	_, err := fmt.Fprintln(p.w, p.preamble.End)
	return err
}
