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

import "math"

// MaxUnits is the largest number of units [Tessellate] will place along a
// span.
const MaxUnits = 4096

// Tessellation describes how a span is divided into equal units.
type Tessellation struct {
	// Count is the number of units.  It is always at least 1.
	Count int

	// Width is the actual width of each unit.  Count*Width equals the
	// span.
	Width float64
}

// Tessellate divides span into a whole number of equal units whose width
// is as close as possible to unit, without exceeding the requested density.
// The units are stretched so that they cover the span exactly.
//
// At least one unit is always returned, even if span is shorter than unit
// or if unit is not positive.  At most [MaxUnits] units are returned; when
// span/unit exceeds MaxUnits the units are wider than unit, with Width
// equal to span/MaxUnits.
func Tessellate(span, unit float64) Tessellation {
	count := 1
	if span > 0 && unit > 0 {
		n := math.Floor(span / unit)
		switch {
		case n > MaxUnits:
			count = MaxUnits
		case n > 1:
			count = int(n)
		}
	}
	return Tessellation{
		Count: count,
		Width: span / float64(count),
	}
}

// Offset returns the start coordinate of unit i, relative to the start of
// the span.
func (t Tessellation) Offset(i int) float64 {
	return float64(i) * t.Width
}
