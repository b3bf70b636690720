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

// Package raster converts panel outlines to anti-aliased pixel coverage.
//
// The Rasterizer computes exact per-pixel area coverage with a scanline
// sweep over an active edge list.  Curves are flattened to line segments
// with a device-space tolerance, so the output quality does not depend on
// the current transformation matrix.  Coverage is delivered one row at a
// time through a callback, which allows the caller to composite directly
// into an image without intermediate buffers.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage for one pixel row.  The slice
// coverage[i] holds the coverage of pixel (xMin+i, y).  The slice is only
// valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates, oriented so that y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float64 // +1 if the original segment pointed down, -1 otherwise
}

// Rasterizer converts vector paths to pixel coverage values.
// A Rasterizer can be reused for many paths; its internal buffers grow as
// needed but are never released.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.  Only pixels inside
	// this rectangle are reported.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the line cap style for open subpath ends.
	Cap graphics.LineCapStyle

	// Join is the line join style for stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the ratio of miter length to line width.
	MiterLimit float64

	// Dash is the dash pattern in user space units.  A nil or empty
	// pattern gives a solid line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which
	// each subpath starts.
	DashPhase float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	bbox      rect.Rect
	bboxEmpty bool
}

// NewRasterizer creates a new Rasterizer for the given clip rectangle.
// All other parameters are set to the PDF default values.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle.  Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0

	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero rasterizes the path using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, r.addEdge)
	r.sweep(integrateNonZero, emit)
}

// FillEvenOdd rasterizes the path using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, r.addEdge)
	r.sweep(integrateEvenOdd, emit)
}

// walk flattens p and reports every line segment, including the implicit
// closing segment of closed subpaths.  Coordinates are in user space.
func (r *Rasterizer) walk(p *path.Data, line func(a, b vec.Vec2)) {
	if p == nil {
		return
	}
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				line(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			line(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], line)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], line)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				line(cur, start)
			}
			cur = start
			open = false
		}
	}
	// Filling implicitly closes open subpaths.
	if open && cur != start {
		line(cur, start)
	}
}

// deviceLength returns the length of the user space vector v after
// applying the linear part of the CTM.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuadratic approximates a quadratic Bézier curve by n line
// segments, where n is chosen so that the device space error stays below
// the flatness tolerance.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, line func(a, b vec.Vec2)) {
	e := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if e > r.Flatness {
		n = int(math.Ceil(math.Sqrt(e / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		if i == n {
			q = p2
		}
		line(prev, q)
		prev = q
	}
}

// flattenCubic approximates a cubic Bézier curve using Wang's formula for
// the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		if i == n {
			q = p3
		}
		line(prev, q)
		prev = q
	}
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms a user space segment to device space and appends it
// to the edge list.  Horizontal segments carry no coverage and are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold || math.IsNaN(dy) {
		return
	}
	dir := 1.0
	if dy < 0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
		dir:  dir,
	})

	lo, hi := min(x0, x1), max(x0, x1)
	if r.bboxEmpty {
		r.bbox = rect.Rect{LLx: lo, LLy: y0, URx: hi, URy: y1}
		r.bboxEmpty = false
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, lo)
	r.bbox.URx = max(r.bbox.URx, hi)
	r.bbox.LLy = min(r.bbox.LLy, y0)
	r.bbox.URy = max(r.bbox.URy, y1)
}

// sweep converts the collected edges into coverage rows.
func (r *Rasterizer) sweep(integrate func(cover, area []float32), emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbox.LLx)), int(math.Floor(r.Clip.LLx)))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(math.Ceil(r.Clip.URx)))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(math.Floor(r.Clip.LLy)))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(math.Ceil(r.Clip.URy)))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin, width)
		}
		integrate(r.cover, r.area)

		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the contribution of e within the scanline [top, bot)
// to the cover and area buffers.  The part of the edge inside the row is
// split at every integer x so that each piece lies in a single pixel
// column.  Pieces left of the buffer act on the whole row; pieces right of
// the buffer have no effect.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, width int) {
	ya := max(top, e.y0)
	yEnd := min(bot, e.y1)
	if yEnd <= ya {
		return
	}
	xa := e.x0 + e.dxdy*(ya-e.y0)
	xEnd := e.x0 + e.dxdy*(yEnd-e.y0)
	if e.y1 == yEnd {
		xEnd = e.x1
	}

	left, right := float64(xMin), float64(xMin+width)
	switch {
	case xa <= left && xEnd <= left:
		c := float32(e.dir * (yEnd - ya))
		r.cover[0] += c
		r.area[0] += c
		return
	case xa >= right && xEnd >= right:
		return
	}

	yAt := func(x float64) float64 {
		return min(max(e.y0+(x-e.x0)/e.dxdy, ya), yEnd)
	}
	if xEnd >= xa {
		if xa < left {
			yl := yAt(left)
			c := float32(e.dir * (yl - ya))
			r.cover[0] += c
			r.area[0] += c
			xa, ya = left, yl
		}
		if xEnd > right {
			xEnd, yEnd = right, yAt(right)
		}
	} else {
		if xa > right {
			xa, ya = right, yAt(right)
		}
		if xEnd < left {
			yl := yAt(left)
			c := float32(e.dir * (yEnd - yl))
			r.cover[0] += c
			r.area[0] += c
			xEnd, yEnd = left, yl
		}
	}

	for {
		var col int
		var xb, yb float64
		last := false
		if xEnd >= xa {
			col = int(math.Floor(xa))
			bound := float64(col + 1)
			if xEnd <= bound {
				xb, yb, last = xEnd, yEnd, true
			} else {
				xb = bound
				yb = e.y0 + (bound-e.x0)/e.dxdy
			}
		} else {
			col = int(math.Ceil(xa)) - 1
			bound := float64(col)
			if xEnd >= bound {
				xb, yb, last = xEnd, yEnd, true
			} else {
				xb = bound
				yb = e.y0 + (bound-e.x0)/e.dxdy
			}
		}
		yb = min(max(yb, ya), yEnd)

		c := e.dir * (yb - ya)
		i := col - xMin
		switch {
		case i < 0:
			r.cover[0] += float32(c)
			r.area[0] += float32(c)
		case i < width:
			frac := (xa+xb)/2 - float64(col)
			r.cover[i] += float32(c)
			r.area[i] += float32(c * (1 - frac))
		}

		if last {
			return
		}
		xa, ya = xb, yb
	}
}

// integrateNonZero turns accumulated cover and area values into coverage
// using the nonzero winding rule.  The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd is like integrateNonZero, but folds the winding
// number modulo 2.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(math.Floor(float64(v/2)))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the part of row between the first and last non-zero
// entries, together with its offset.  If the row is all zero, nil is
// returned.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is 1/4 device pixel, below the threshold of visual
	// perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
)
