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

import (
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// measureAccuracy is the arclength accuracy used by [Measure].
const measureAccuracy = 1e-6

// Metrics summarises the geometry of an outline.
type Metrics struct {
	// Bounds is the tight bounding box of the path, including the
	// extrema of curved segments.
	Bounds curve.Rect

	// Length is the total arclength of all subpaths, including the
	// closing segments.
	Length float64

	// Closed is true if every subpath ends with a close command and its
	// last explicit point coincides with its first point.
	Closed bool

	// Segments is the number of line and curve segments.
	Segments int
}

// Measure computes the metrics of p.  The zero Metrics is returned for an
// empty path.
func Measure(p *path.Data) Metrics {
	var m Metrics
	if len(p.Cmds) == 0 {
		return m
	}

	m.Closed = true
	first := true
	var cur, start vec.Vec2
	open := false
	add := func(bbox curve.Rect, length float64) {
		if first {
			m.Bounds = bbox
			first = false
		} else {
			m.Bounds = m.Bounds.Union(bbox)
		}
		m.Length += length
		m.Segments++
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				m.Closed = false
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			l := curve.Line{P0: toPoint(cur), P1: toPoint(p.Coords[k])}
			add(l.BoundingBox(), l.Length())
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			q := curve.QuadBez{P0: toPoint(cur), P1: toPoint(p.Coords[k]), P2: toPoint(p.Coords[k+1])}
			add(q.BoundingBox(), quadLength(q))
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			c := curve.CubicBez{
				P0: toPoint(cur),
				P1: toPoint(p.Coords[k]),
				P2: toPoint(p.Coords[k+1]),
				P3: toPoint(p.Coords[k+2]),
			}
			length := 0.0
			if c.P0 != c.P1 || c.P0 != c.P2 || c.P0 != c.P3 {
				length = c.Arclen(measureAccuracy)
			}
			add(c.BoundingBox(), length)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				m.Closed = false
			}
			cur = start
			open = false
		}
	}
	if open {
		m.Closed = false
	}
	return m
}

// quadLength returns the arclength of q.  Quadratics whose control point
// is the midpoint of the chord are measured as lines; the closed form in
// curve.QuadBez.Arclen is undefined for them when they have zero length.
func quadLength(q curve.QuadBez) float64 {
	mid := q.P0.Midpoint(q.P2)
	if q.P1 == mid {
		return q.P0.Distance(q.P2)
	}
	return q.Arclen(measureAccuracy)
}

func toPoint(v vec.Vec2) curve.Point {
	return curve.Pt(v.X, v.Y)
}
