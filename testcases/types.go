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

// Package testcases is a catalogue of named rendering scenarios built
// from the receipt outlines.  Fill cases are compared against
// golang.org/x/image/vector, stroke cases are checked for plausible
// coverage, and all cases feed the benchmarks and the JSON export.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase is one path together with the way it is painted.
type TestCase struct {
	// Name identifies the case within its category.  It is used in
	// subtest names and file names, so it only contains a-z, 0-9 and _.
	Name string

	Path *path.Data

	// Width and Height give the size of the output image in pixels.
	Width, Height int

	Op Operation

	// CTM places the path on the image.  The zero matrix stands for the
	// identity, see [TestCase.Device].
	CTM matrix.Matrix
}

// Device returns the transformation from path coordinates to pixels.
func (tc TestCase) Device() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// Operation is either a [Fill] or a [Stroke].
type Operation interface {
	isOperation()
}

// FillRule decides which regions of a self-overlapping path are inside.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Fill paints the interior of the path.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke paints along the path with the given PDF line style.
type Stroke struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64 // nil for a solid line
	DashPhase  float64
}

func (Stroke) isOperation() {}

// Reach returns the largest distance from the path, in path
// coordinates, at which the stroke can paint.  Miter joins reach out to
// half the width times the miter limit, square caps to half the diagonal
// of the cap square.
func (s Stroke) Reach() float64 {
	f := 1.0
	if s.Cap == graphics.LineCapSquare {
		f = math.Sqrt2
	}
	if s.Join == graphics.LineJoinMiter {
		f = max(f, s.MiterLimit)
	}
	return s.Width / 2 * f
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
