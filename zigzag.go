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

package receipt

import "seehuhn.de/go/geom/path"

// Default zigzag dimensions.
const (
	DefaultZigzagDepth = 8.0
	DefaultZigzagWidth = 16.0
)

// ZigzagStyle describes a sharp-cornered ticket whose top and bottom edges
// are rows of triangular teeth.  The two edges are configured
// independently.
type ZigzagStyle struct {
	TopDepth    float64 // height of the teeth on the top edge
	TopWidth    float64 // requested width of one tooth on the top edge
	BottomDepth float64 // height of the teeth on the bottom edge
	BottomWidth float64 // requested width of one tooth on the bottom edge
}

// DefaultZigzagStyle returns identical top and bottom edges with 16 unit
// wide, 8 unit deep teeth.
func DefaultZigzagStyle() ZigzagStyle {
	return ZigzagStyle{
		TopDepth:    DefaultZigzagDepth,
		TopWidth:    DefaultZigzagWidth,
		BottomDepth: DefaultZigzagDepth,
		BottomWidth: DefaultZigzagWidth,
	}
}

// Validate checks that all lengths are finite and non-negative.
func (s ZigzagStyle) Validate() error {
	return checkLengths(
		param{"TopDepth", s.TopDepth},
		param{"TopWidth", s.TopWidth},
		param{"BottomDepth", s.BottomDepth},
		param{"BottomWidth", s.BottomWidth},
	)
}

// Outline implements the [Shape] interface.
func (s ZigzagStyle) Outline(width, height float64) *path.Data {
	return Zigzag(width, height, s)
}

// Teeth returns the tessellations of the top and bottom edges for the
// given width.
func (s ZigzagStyle) Teeth(width float64) (top, bottom Tessellation) {
	return Tessellate(width, s.TopWidth), Tessellate(width, s.BottomWidth)
}

// Zigzag returns the zigzag outline for a width×height rectangle.  The
// teeth on the top edge point up and are drawn left to right, the teeth on
// the bottom edge point down and are drawn right to left.
//
// Zigzag panics if the size or style contains negative, NaN or infinite
// values.  An empty path is returned for rectangles without area.
func Zigzag(width, height float64, style ZigzagStyle) *path.Data {
	mustCheck(param{"width", width}, param{"height", height})
	if err := style.Validate(); err != nil {
		panic(err)
	}
	if isEmpty(width, height) {
		return &path.Data{}
	}

	top, bottom := style.Teeth(width)
	base := height - style.BottomDepth

	p := (&path.Data{}).MoveTo(pt(0, style.TopDepth))
	for i := range top.Count {
		x := top.Offset(i)
		p = p.LineTo(pt(x+top.Width/2, 0)).
			LineTo(pt(top.Offset(i+1), style.TopDepth))
	}

	p = p.LineTo(pt(width, base))
	for i := bottom.Count - 1; i >= 0; i-- {
		x := bottom.Offset(i)
		p = p.LineTo(pt(x+bottom.Width/2, height)).
			LineTo(pt(x, base))
	}

	return p.LineTo(pt(0, style.TopDepth)).Close()
}
