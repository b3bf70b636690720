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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// polyline is a flattened subpath in user space.
type polyline struct {
	pts    []vec.Vec2
	closed bool
}

// Stroke rasterizes the outline of p using the current line width, cap,
// join, miter limit and dash settings.
//
// The stroke is built as a union of simple polygons: one quadrilateral per
// line segment plus join and cap pieces.  All pieces are given the same
// orientation and filled with the nonzero rule, so that overlaps do not
// produce holes.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}
	lines := r.flattenSubpaths(p)
	if pattern, phase, ok := normalizeDash(r.Dash, r.DashPhase); ok {
		var dashed []polyline
		for _, pl := range lines {
			dashed = append(dashed, dashPolyline(pl, pattern, phase)...)
		}
		lines = dashed
	}

	r.beginEdges()
	for _, pl := range lines {
		r.strokePolyline(pl)
	}
	r.sweep(integrateNonZero, emit)
}

// flattenSubpaths converts p into polylines, one per subpath.  Repeated
// points are removed.  A subpath consisting of a lone MoveTo is dropped.
func (r *Rasterizer) flattenSubpaths(p *path.Data) []polyline {
	if p == nil {
		return nil
	}
	var res []polyline
	var cur *polyline
	drawn := false

	add := func(_, b vec.Vec2) {
		if cur.pts[len(cur.pts)-1] != b {
			cur.pts = append(cur.pts, b)
		}
		drawn = true
	}
	finish := func() {
		if cur != nil && drawn {
			res = append(res, *cur)
		}
		cur = nil
		drawn = false
	}

	k := 0
	var last vec.Vec2
	for _, cmd := range p.Cmds {
		if cmd != path.CmdMoveTo && cur == nil {
			// drawing after ClosePath starts at the previous start point
			cur = &polyline{pts: []vec.Vec2{last}}
		}
		switch cmd {
		case path.CmdMoveTo:
			finish()
			last = p.Coords[k]
			cur = &polyline{pts: []vec.Vec2{last}}
			k++
		case path.CmdLineTo:
			add(cur.pts[len(cur.pts)-1], p.Coords[k])
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur.pts[len(cur.pts)-1], p.Coords[k], p.Coords[k+1], add)
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur.pts[len(cur.pts)-1], p.Coords[k], p.Coords[k+1], p.Coords[k+2], add)
			k += 3
		case path.CmdClose:
			start := cur.pts[0]
			if len(cur.pts) > 1 && cur.pts[len(cur.pts)-1] != start {
				cur.pts = append(cur.pts, start)
			}
			cur.closed = len(cur.pts) > 2
			drawn = true
			last = start
			finish()
		}
	}
	finish()
	return res
}

// strokePolyline adds the stroke outline of a single polyline to the edge
// list.
func (r *Rasterizer) strokePolyline(pl polyline) {
	hw := r.Width / 2
	pts := pl.pts

	if len(pts) == 1 {
		// A zero-length subpath is painted only for round and square caps.
		c := pts[0]
		switch r.Cap {
		case graphics.LineCapRound:
			r.addCircle(c, hw)
		case graphics.LineCapSquare:
			r.addPolygon(
				c.Add(vec.Vec2{X: -hw, Y: -hw}),
				c.Add(vec.Vec2{X: hw, Y: -hw}),
				c.Add(vec.Vec2{X: hw, Y: hw}),
				c.Add(vec.Vec2{X: -hw, Y: hw}),
			)
		}
		return
	}

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		n := normal(b.Sub(a)).Mul(hw)
		r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	}

	for i := 1; i+1 < len(pts); i++ {
		r.addJoin(pts[i-1], pts[i], pts[i+1], hw)
	}
	if pl.closed {
		r.addJoin(pts[len(pts)-2], pts[0], pts[1], hw)
		return
	}

	r.addCap(pts[0], pts[0].Sub(pts[1]), hw)
	r.addCap(pts[len(pts)-1], pts[len(pts)-1].Sub(pts[len(pts)-2]), hw)
}

// addJoin adds the join piece at vertex v between the segments a-v and
// v-b.
func (r *Rasterizer) addJoin(a, v, b vec.Vec2, hw float64) {
	d1 := unit(v.Sub(a))
	d2 := unit(b.Sub(v))
	cross := d1.X*d2.Y - d1.Y*d2.X
	dot := d1.Dot(d2)
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(v, hw)
		return
	}

	// the join fills the gap on the outer side of the turn
	s := hw
	if cross > 0 {
		s = -hw
	}
	p1 := v.Add(normal(d1).Mul(s))
	p2 := v.Add(normal(d2).Mul(s))

	if r.Join == graphics.LineJoinMiter {
		sinHalf := math.Sqrt(max(0, (1+dot)/2))
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit {
			m := unit(p1.Sub(v).Add(p2.Sub(v)))
			tip := v.Add(m.Mul(hw / sinHalf))
			r.addPolygon(v, p1, tip, p2)
			return
		}
	}
	r.addPolygon(v, p1, p2)
}

// addCap adds the cap at end point c.  The vector out points away from
// the line.
func (r *Rasterizer) addCap(c, out vec.Vec2, hw float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(c, hw)
	case graphics.LineCapSquare:
		d := unit(out).Mul(hw)
		n := normal(unit(out)).Mul(hw)
		r.addPolygon(c.Add(n), c.Add(n).Add(d), c.Sub(n).Add(d), c.Sub(n))
	}
}

// addCircle adds a regular polygon approximating a circle.  The number of
// vertices is chosen so that the device space deviation stays below the
// flatness tolerance.
func (r *Rasterizer) addCircle(c vec.Vec2, radius float64) {
	dev := max(r.deviceLength(vec.Vec2{X: radius}), r.deviceLength(vec.Vec2{Y: radius}))
	n := minCircleVertices
	if dev > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/dev)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	n = min(n, maxCircleVertices)

	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = c.Add(vec.Vec2{X: radius * math.Cos(phi), Y: radius * math.Sin(phi)})
	}
	r.addPolygon(pts...)
}

// addPolygon adds a closed polygon to the edge list, reversing it if
// necessary so that all stroke pieces have the same orientation.
// Degenerate polygons are skipped.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	var area float64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - a.Y*b.X
	}
	switch {
	case math.Abs(area) < zeroAreaThreshold:
		return
	case area > 0:
		for i, a := range pts {
			r.addEdge(a, pts[(i+1)%len(pts)])
		}
	default:
		for i := len(pts) - 1; i >= 0; i-- {
			r.addEdge(pts[i], pts[(i+len(pts)-1)%len(pts)])
		}
	}
}

// normalizeDash prepares a dash pattern for use.  Odd-length patterns are
// repeated once, and the phase is reduced to the range [0, total).
// The boolean result is false if the pattern describes a solid line.
func normalizeDash(dash []float64, phase float64) ([]float64, float64, bool) {
	if len(dash) == 0 {
		return nil, 0, false
	}
	var total float64
	for _, d := range dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, 0, false
		}
		total += d
	}
	if total <= 0 {
		return nil, 0, false
	}

	pattern := dash
	if len(dash)%2 == 1 {
		pattern = make([]float64, 0, 2*len(dash))
		pattern = append(pattern, dash...)
		pattern = append(pattern, dash...)
		total *= 2
	}
	phase = math.Mod(phase, total)
	if phase < 0 {
		phase += total
	}
	return pattern, phase, true
}

// dashPolyline splits pl into the "on" pieces of the dash pattern.
// For closed polylines, a dash running through the start point is joined
// into a single piece.
func dashPolyline(pl polyline, pattern []float64, phase float64) []polyline {
	idx := 0
	for phase > 0 && phase >= pattern[idx] {
		phase -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	rem := pattern[idx] - phase
	on := idx%2 == 0
	startsOn := on
	toggled := false

	var res []polyline
	var cur []vec.Vec2
	if on {
		cur = []vec.Vec2{pl.pts[0]}
	}
	for i := 0; i+1 < len(pl.pts); i++ {
		a, b := pl.pts[i], pl.pts[i+1]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for {
			if rem > segLen-pos {
				rem -= segLen - pos
				if on {
					cur = append(cur, b)
				}
				break
			}
			pos += rem
			q := a.Add(b.Sub(a).Mul(pos / segLen))
			if on {
				res = append(res, polyline{pts: dedup(append(cur, q))})
				cur = nil
			} else {
				cur = []vec.Vec2{q}
			}
			on = !on
			toggled = true
			idx = (idx + 1) % len(pattern)
			rem = pattern[idx]
		}
	}

	if !toggled {
		if startsOn {
			return []polyline{pl}
		}
		return nil
	}
	if on && len(cur) > 0 {
		if pl.closed && startsOn && len(res) > 0 {
			res[0].pts = dedup(append(cur, res[0].pts...))
		} else {
			res = append(res, polyline{pts: dedup(cur)})
		}
	}
	return res
}

// dedup removes consecutive repeated points.  A piece of zero length
// becomes a single point.
func dedup(pts []vec.Vec2) []vec.Vec2 {
	out := pts[:1]
	for _, q := range pts[1:] {
		if q != out[len(out)-1] {
			out = append(out, q)
		}
	}
	return out
}

// normal returns the left unit normal of direction d.
func normal(d vec.Vec2) vec.Vec2 {
	d = unit(d)
	return vec.Vec2{X: -d.Y, Y: d.X}
}

func unit(d vec.Vec2) vec.Vec2 {
	l := d.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return d.Mul(1 / l)
}

const (
	collinearityThreshold = 1e-9
	zeroAreaThreshold     = 1e-12

	minCircleVertices = 16
	maxCircleVertices = 1024
)
