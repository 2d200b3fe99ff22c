// Package rasterslice rasterizes a Slice to a PNG preview image via
// github.com/llgcode/draw2d, labeling it with the slice height. A
// caller-supplied TrueType font is drawn with github.com/golang/freetype;
// with no font supplied, the height label falls back to the fixed
// bitmap face in golang.org/x/image/font/basicfont via x/image/font's
// Drawer, the same fallback-label pattern draw2d/freetype-based tools
// in the pack reach for when no custom face is loaded.
package rasterslice

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hexlattice/contourpress/slice"
)

// Scale converts model-space units to raster pixels.
const Scale = 20.0

// Options controls the raster preview. Font may be nil, in which case
// the height label falls back to a fixed bitmap face instead of a
// TrueType one.
type Options struct {
	Font     *truetype.Font
	FontSize float64
}

// Render draws sl's polygons into a white-background RGBA image sized
// to its bounding box plus a margin. Every ring gets the same black
// stroke; outer rings and holes are not drawn differently.
func Render(sl *slice.Slice, opt Options) *image.RGBA {
	minX, minY, maxX, maxY := bounds(sl)
	margin := 10.0
	w := int((maxX-minX)*Scale + 2*margin)
	h := int((maxY-minY)*Scale + 2*margin)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	gc.Clear()

	for _, p := range sl.Polygons {
		gc.SetStrokeColor(color.Black)
		gc.SetLineWidth(1.5)
		if len(p.Segments) == 0 {
			continue
		}
		first := p.Segments[0].A
		gc.MoveTo((first.X-minX)*Scale+margin, (first.Y-minY)*Scale+margin)
		for _, seg := range p.Segments {
			gc.LineTo((seg.B.X-minX)*Scale+margin, (seg.B.Y-minY)*Scale+margin)
		}
		gc.Close()
		gc.Stroke()
	}

	label := fmt.Sprintf("z=%g", sl.Height)
	if opt.Font != nil {
		drawLabelTrueType(img, label, opt)
	} else {
		drawLabelFixed(img, label)
	}
	return img
}

func drawLabelTrueType(img *image.RGBA, text string, opt Options) {
	size := opt.FontSize
	if size <= 0 {
		size = 12
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(opt.Font)
	c.SetFontSize(size)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(color.Black))
	c.DrawString(text, freetype.Pt(5, 17))
}

func drawLabelFixed(img *image.RGBA, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(5, 13),
	}
	d.DrawString(text)
}

// WritePNG renders sl and encodes it as a PNG to w.
func WritePNG(w io.Writer, sl *slice.Slice, opt Options) error {
	return png.Encode(w, Render(sl, opt))
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
