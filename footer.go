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

// Default footer dimensions.
const (
	DefaultBottomCornerRadius = 25.0
	DefaultScallopDepth       = 18.0
	DefaultScallopWidth       = 24.0
	DefaultScallopGap         = 2.0
)

// FooterStyle describes the outline of a receipt footer: inward-notched
// top corners, rounded bottom corners, and a scalloped bottom edge.
type FooterStyle struct {
	// InwardCornerRadius is the radius of the two notched top corners.
	InwardCornerRadius float64

	// BottomCornerRadius is the radius of the two rounded bottom corners.
	BottomCornerRadius float64

	// ScallopDepth is how far each scallop reaches into the footer.
	ScallopDepth float64

	// ScallopWidth is the requested width of one scallop.  The actual
	// width is adjusted so that the scallops fill the bottom edge.
	ScallopWidth float64

	// ScallopGap is the length of the flat piece between two scallops.
	ScallopGap float64
}

// DefaultFooterStyle returns the standard footer style.
func DefaultFooterStyle() FooterStyle {
	return FooterStyle{
		InwardCornerRadius: DefaultInwardCornerRadius,
		BottomCornerRadius: DefaultBottomCornerRadius,
		ScallopDepth:       DefaultScallopDepth,
		ScallopWidth:       DefaultScallopWidth,
		ScallopGap:         DefaultScallopGap,
	}
}

// Validate checks that all lengths are finite and non-negative.
func (s FooterStyle) Validate() error {
	return checkLengths(
		param{"InwardCornerRadius", s.InwardCornerRadius},
		param{"BottomCornerRadius", s.BottomCornerRadius},
		param{"ScallopDepth", s.ScallopDepth},
		param{"ScallopWidth", s.ScallopWidth},
		param{"ScallopGap", s.ScallopGap},
	)
}

// Outline implements the [Shape] interface.
func (s FooterStyle) Outline(width, height float64) *path.Data {
	return ScallopedFooter(width, height, s)
}

// Scallops returns the tessellation of the bottom edge between the two
// rounded corners.
func (s FooterStyle) Scallops(width float64) Tessellation {
	return Tessellate(width-2*s.BottomCornerRadius, s.ScallopWidth)
}

// ScallopedFooter returns the footer outline for a width×height rectangle.
// The path runs clockwise from the top-left corner; the scallops are drawn
// from right to left.
//
// ScallopedFooter panics if the size or style contains negative, NaN or
// infinite values.  An empty path is returned for rectangles without area.
func ScallopedFooter(width, height float64, style FooterStyle) *path.Data {
	mustCheck(param{"width", width}, param{"height", height})
	if err := style.Validate(); err != nil {
		panic(err)
	}
	if isEmpty(width, height) {
		return &path.Data{}
	}

	in := style.InwardCornerRadius
	br := style.BottomCornerRadius
	halfGap := style.ScallopGap / 2
	bottom := height - style.ScallopDepth
	tt := style.Scallops(width)

	p := (&path.Data{}).
		MoveTo(pt(0, in)).
		QuadTo(pt(in, in), pt(in, 0)).
		LineTo(pt(width-in, 0)).
		QuadTo(pt(width-in, in), pt(width, in)).
		LineTo(pt(width, height-br)).
		QuadTo(pt(width, height), pt(width-br, height))

	for i := tt.Count - 1; i >= 0; i-- {
		start := br + tt.Offset(i+1) - halfGap
		end := br + tt.Offset(i) + halfGap
		p = p.LineTo(pt(start, height)).
			QuadTo(pt((start+end)/2, bottom), pt(end, height))
	}

	return p.LineTo(pt(br, height)).
		QuadTo(pt(0, height), pt(0, height-br)).
		LineTo(pt(0, in)).
		Close()
}
