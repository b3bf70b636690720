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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floating point values up to rounding errors.
var approx = cmpopts.EquateApprox(0, 1e-9)

// seg is one path command together with its points, used to compare paths
// in tests.
type seg struct {
	Cmd path.Command
	Pts []vec.Vec2
}

func segments(p *path.Data) []seg {
	var res []seg
	k := 0
	for _, cmd := range p.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		}
		s := seg{Cmd: cmd}
		if n > 0 {
			s.Pts = append([]vec.Vec2(nil), p.Coords[k:k+n]...)
		}
		res = append(res, s)
		k += n
	}
	return res
}

func mv(x, y float64) seg { return seg{path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}}} }
func ln(x, y float64) seg { return seg{path.CmdLineTo, []vec.Vec2{{X: x, Y: y}}} }
func qd(cx, cy, x, y float64) seg {
	return seg{path.CmdQuadTo, []vec.Vec2{{X: cx, Y: cy}, {X: x, Y: y}}}
}

var cl = seg{Cmd: path.CmdClose}

// checkOutline verifies that p is a single closed subpath without NaN or
// negative coordinates.
func checkOutline(t *testing.T, p *path.Data) {
	t.Helper()
	if len(p.Cmds) == 0 {
		return
	}
	if p.Cmds[0] != path.CmdMoveTo {
		t.Fatalf("path starts with %v", p.Cmds[0])
	}
	if p.Cmds[len(p.Cmds)-1] != path.CmdClose {
		t.Fatalf("path ends with %v", p.Cmds[len(p.Cmds)-1])
	}
	for _, c := range p.Cmds[1 : len(p.Cmds)-1] {
		if c == path.CmdMoveTo || c == path.CmdClose {
			t.Fatalf("unexpected %v inside the outline", c)
		}
	}
	for i, v := range p.Coords {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || v.X < 0 || v.Y < 0 {
			t.Fatalf("invalid coordinate %d: %v", i, v)
		}
	}
	if first, last := p.Coords[0], p.Coords[len(p.Coords)-1]; first != last {
		t.Errorf("outline ends at %v, started at %v", last, first)
	}
}

// sizes are the rectangle dimensions used for property tests.
var sizes = []float64{0, 1, 100, 10000}

// levels returns style parameter values for a rectangle: zero, small, and
// half the smaller dimension.
func levels(width, height float64) []float64 {
	m := min(width, height)
	return []float64{0, m / 10, m / 2}
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("no panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic with %T, want error", r)
		}
		if !isInvalid(err) {
			t.Errorf("panic with %v, want ErrInvalid", err)
		}
	}()
	f()
}
