// seehuhn.de/go/receipt - receipt and ticket panel outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package panel

import (
	"context"
	"fmt"
	stdcolor "image/color"

	"honnef.co/go/curve"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the receipt as a single page PDF file.  One layout unit
// maps to one PDF point.  Panel shapes and separators are written as
// vector paths; drop shadows are omitted.  Panels without area are
// skipped.
//
// If ctx is cancelled before all items are written, the incomplete file
// is closed and the context's error is returned.
func WritePDF(ctx context.Context, fname string, r *Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	pad := r.Padding()
	w := r.Width + 2*pad
	h := r.Height() + 2*pad
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if r.Background != nil {
		page.SetFillColor(pdfColor(r.Background))
		page.Rectangle(0, 0, w, h)
		page.Fill()
	}

	// PDF has the origin at the bottom-left corner, layout coordinates
	// have it at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	for i, y := range r.Layout() {
		if err := ctx.Err(); err != nil {
			page.Close()
			return err
		}
		at := vec.Vec2{X: pad, Y: pad + y}
		switch it := r.Items[i].(type) {
		case *Panel:
			outline := it.Shape.Outline(r.Width, it.Height)
			if len(outline.Cmds) == 0 {
				continue
			}
			col := it.Color
			if col == nil {
				col = DefaultPanelColor
			}
			page.SetFillColor(pdfColor(col))
			writePath(page, outline, at)
			page.Fill()

		case *DashedLine:
			band, line := it.geometry(r.Width)
			if it.GapColor != nil {
				page.SetFillColor(pdfColor(it.GapColor))
				writePath(page, band, at)
				page.Fill()
			}
			if line != nil && it.DashColor != nil {
				page.SetStrokeColor(pdfColor(it.DashColor))
				page.SetLineWidth(it.StrokeWidth)
				page.SetLineCap(graphics.LineCapButt)
				if dash := it.pattern(); dash != nil {
					page.SetLineDash(dash, 0)
				}
				writePath(page, line, at)
				page.Stroke()
			}

		default:
			page.Close()
			return fmt.Errorf("item %d: unsupported type %T", i+1, it)
		}
	}

	return page.Close()
}

// pathWriter is the subset of the PDF content stream writer used by
// writePath.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// writePath emits p, translated by at.  PDF has no quadratic Bézier
// operator, so quadratic segments are raised to cubics.
func writePath(w pathWriter, p *path.Data, at vec.Vec2) {
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			w.MoveTo(cur.X+at.X, cur.Y+at.Y)
			k++
		case path.CmdLineTo:
			cur = p.Coords[k]
			w.LineTo(cur.X+at.X, cur.Y+at.Y)
			k++
		case path.CmdQuadTo:
			q := curve.QuadBez{
				P0: curve.Pt(cur.X+at.X, cur.Y+at.Y),
				P1: curve.Pt(p.Coords[k].X+at.X, p.Coords[k].Y+at.Y),
				P2: curve.Pt(p.Coords[k+1].X+at.X, p.Coords[k+1].Y+at.Y),
			}
			c := q.Raise()
			w.CurveTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			c1, c2, c3 := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			w.CurveTo(c1.X+at.X, c1.Y+at.Y, c2.X+at.X, c2.Y+at.Y, c3.X+at.X, c3.Y+at.Y)
			cur = c3
			k += 3
		case path.CmdClose:
			w.ClosePath()
			cur = start
		}
	}
}

// pdfColor converts an image color to a DeviceRGB color.  Transparency
// is ignored.
func pdfColor(c stdcolor.Color) color.Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return color.DeviceRGB{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255}
}
