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
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/receipt"
)

// Default values for [DashedLine].
const (
	DefaultDashWidth   = 12.0
	DefaultDashGap     = 8.0
	DefaultStrokeWidth = 1.0
	DefaultDashInset   = 16.0
)

// DashedLine is a horizontal separator: a band of GapColor, one stroke
// width high, with a dashed line of DashColor along its centre.
type DashedLine struct {
	DashColor color.Color
	GapColor  color.Color

	DashWidth   float64
	DashGap     float64
	StrokeWidth float64

	// Inset is the distance between the band ends and the first and
	// last dash.
	Inset float64

	// Margin is the horizontal space left free on both sides of the band.
	Margin float64
}

// NewDashedLine returns a separator with the default dash geometry.
func NewDashedLine(dash, gap color.Color) *DashedLine {
	return &DashedLine{
		DashColor:   dash,
		GapColor:    gap,
		DashWidth:   DefaultDashWidth,
		DashGap:     DefaultDashGap,
		StrokeWidth: DefaultStrokeWidth,
		Inset:       DefaultDashInset,
	}
}

// Extent implements the [Item] interface.
func (d *DashedLine) Extent() float64 {
	return d.StrokeWidth
}

// Validate implements the [Item] interface.
func (d *DashedLine) Validate() error {
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"dash width", d.DashWidth},
		{"dash gap", d.DashGap},
		{"stroke width", d.StrokeWidth},
		{"inset", d.Inset},
		{"margin", d.Margin},
	} {
		if !finiteNonNegative(f.val) {
			return &receipt.InvalidError{Field: f.name, Value: f.val}
		}
	}
	return nil
}

// Draw paints the separator with its top-left corner at (x, y).
func (d *DashedLine) Draw(c *Canvas, x, y, width float64) {
	band, line := d.geometry(width)
	at := vec.Vec2{X: x, Y: y}
	if d.GapColor != nil {
		c.FillPath(band, at, d.GapColor)
	}
	if line == nil || d.DashColor == nil {
		return
	}
	c.StrokePath(line, at, d.DashColor, Stroke{
		Width: d.StrokeWidth,
		Cap:   graphics.LineCapButt,
		Dash:  d.pattern(),
	})
}

// pattern returns the dash array, or nil for a solid line.
func (d *DashedLine) pattern() []float64 {
	if d.DashWidth+d.DashGap <= 0 {
		return nil
	}
	return []float64{d.DashWidth, d.DashGap}
}

// geometry returns the background band and the centre line, relative to
// the top-left corner of the item.  The line is nil if the insets leave no
// room for it.
func (d *DashedLine) geometry(width float64) (band, line *path.Data) {
	x0 := d.Margin
	x1 := width - d.Margin
	if x1 < x0 {
		x1 = x0
	}
	h := d.StrokeWidth

	band = &path.Data{}
	band = band.MoveTo(vec.Vec2{X: x0, Y: 0})
	band = band.LineTo(vec.Vec2{X: x1, Y: 0})
	band = band.LineTo(vec.Vec2{X: x1, Y: h})
	band = band.LineTo(vec.Vec2{X: x0, Y: h})
	band = band.Close()

	l0, l1 := x0+d.Inset, x1-d.Inset
	if l1 <= l0 {
		return band, nil
	}
	line = &path.Data{}
	line = line.MoveTo(vec.Vec2{X: l0, Y: h / 2})
	line = line.LineTo(vec.Vec2{X: l1, Y: h / 2})
	return band, line
}
