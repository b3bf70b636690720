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
)

func TestTessellate(t *testing.T) {
	cases := []struct {
		span, unit float64
		count      int
		width      float64
	}{
		{100, 16, 6, 100.0 / 6},
		{100, 28, 3, 100.0 / 3},
		{250, 24, 10, 25},
		{100, 100, 1, 100},
		{10, 16, 1, 10},   // shorter than one unit
		{0, 16, 1, 0},     // empty span
		{100, 0, 1, 100},  // no unit width
		{-20, 16, 1, -20}, // overlapping corners
		{1e9, 1e-9, MaxUnits, 1e9 / MaxUnits},
		// capped: the units grow wider than unit
		{2 * MaxUnits, 1, MaxUnits, 2},
		{MaxUnits + 0.5, 1, MaxUnits, 1 + 0.5/MaxUnits},
	}
	for _, c := range cases {
		got := Tessellate(c.span, c.unit)
		if got.Count != c.count || math.Abs(got.Width-c.width) > 1e-9 {
			t.Errorf("Tessellate(%g, %g) = %+v, want {%d %g}",
				c.span, c.unit, got, c.count, c.width)
		}
	}
}

func TestTessellateCoversSpan(t *testing.T) {
	for _, span := range []float64{0.5, 1, 7, 99.9, 100, 333.3, 10000} {
		for _, unit := range []float64{0.3, 1, 2.5, 16, 24, 28, 1000} {
			tt := Tessellate(span, unit)
			if tt.Count < 1 {
				t.Fatalf("Tessellate(%g, %g): count %d", span, unit, tt.Count)
			}
			total := float64(tt.Count) * tt.Width
			if math.Abs(total-span) > 1e-9*span {
				t.Errorf("Tessellate(%g, %g): %d × %g = %g",
					span, unit, tt.Count, tt.Width, total)
			}
			if tt.Count > 1 && tt.Width < unit {
				t.Errorf("Tessellate(%g, %g): units compressed to %g",
					span, unit, tt.Width)
			}
		}
	}
}

func TestTessellateMonotonic(t *testing.T) {
	const span = 360.0
	prev := 0
	for unit := 100.0; unit > 0.5; unit *= 0.9 {
		n := Tessellate(span, unit).Count
		if n < prev {
			t.Fatalf("count dropped from %d to %d at unit %g", prev, n, unit)
		}
		prev = n
	}
}

func TestTessellationOffset(t *testing.T) {
	tt := Tessellate(100, 16)
	if got := tt.Offset(0); got != 0 {
		t.Errorf("Offset(0) = %g", got)
	}
	if got := tt.Offset(tt.Count); math.Abs(got-100) > 1e-9 {
		t.Errorf("Offset(%d) = %g, want 100", tt.Count, got)
	}
}
