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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

// basicCases are simple shapes with known coverage, used to check the
// fill rules independently of the panel outlines.
var basicCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "star_nonzero",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "rectangle",
		Path:   Rectangle(10.5, 10.25, 44, 43.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_evenodd",
		Path:   Ring(32, 32, 28, 18),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}

func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	p := &path.Data{}
	p = p.MoveTo(pt(x1, y1))
	p = p.LineTo(pt(x2, y2))
	p = p.LineTo(pt(x3, y3))
	p = p.Close()
	return p
}

// star builds a self-intersecting five-pointed star.  The centre pentagon
// has winding number 2.
func star(cx, cy, r float64) *path.Data {
	// vertices in the order 0, 2, 4, 1, 3 of a regular pentagon
	unit := [5][2]float64{
		{0, -1},
		{0.5878, 0.8090},
		{-0.9511, -0.3090},
		{0.9511, -0.3090},
		{-0.5878, 0.8090},
	}
	p := &path.Data{}
	for i, u := range unit {
		q := pt(cx+r*u[0], cy+r*u[1])
		if i == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	p = p.Close()
	return p
}

// Rectangle returns the axis-aligned rectangle with the given corners.
func Rectangle(x0, y0, x1, y1 float64) *path.Data {
	p := &path.Data{}
	p = p.MoveTo(pt(x0, y0))
	p = p.LineTo(pt(x1, y0))
	p = p.LineTo(pt(x1, y1))
	p = p.LineTo(pt(x0, y1))
	p = p.Close()
	return p
}

// Ring returns two concentric circles, each made of four cubic Bézier
// arcs.  The outer circle runs clockwise and the inner circle runs
// counter-clockwise.
func Ring(cx, cy, outer, inner float64) *path.Data {
	p := &path.Data{}
	p = circle(p, cx, cy, outer, false)
	p = circle(p, cx, cy, inner, true)
	return p
}

func circle(p *path.Data, cx, cy, r float64, reverse bool) *path.Data {
	const k = 0.5522847498
	kr := k * r
	s := 1.0
	if reverse {
		s = -1
	}
	p = p.MoveTo(pt(cx, cy-r))
	p = p.CubeTo(pt(cx+s*kr, cy-r), pt(cx+s*r, cy-kr), pt(cx+s*r, cy))
	p = p.CubeTo(pt(cx+s*r, cy+kr), pt(cx+s*kr, cy+r), pt(cx, cy+r))
	p = p.CubeTo(pt(cx-s*kr, cy+r), pt(cx-s*r, cy+kr), pt(cx-s*r, cy))
	p = p.CubeTo(pt(cx-s*r, cy-kr), pt(cx-s*kr, cy-r), pt(cx, cy-r))
	p = p.Close()
	return p
}
