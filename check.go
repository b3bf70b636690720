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
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is matched by all errors which report invalid sizes or style
// parameters.
var ErrInvalid = errors.New("invalid outline parameter")

// InvalidError reports a negative, NaN or infinite length.
type InvalidError struct {
	Field string
	Value float64
}

func (err *InvalidError) Error() string {
	return fmt.Sprintf("receipt: invalid %s %g", err.Field, err.Value)
}

// Is allows errors.Is(err, ErrInvalid) to succeed.
func (err *InvalidError) Is(target error) bool {
	return target == ErrInvalid
}

type param struct {
	name string
	val  float64
}

// checkLengths returns an error for the first parameter which is not a
// finite, non-negative number.
func checkLengths(params ...param) error {
	for _, p := range params {
		if p.val < 0 || math.IsNaN(p.val) || math.IsInf(p.val, 0) {
			return &InvalidError{Field: p.name, Value: p.val}
		}
	}
	return nil
}

// mustCheck panics if any of the parameters is invalid.
func mustCheck(params ...param) {
	if err := checkLengths(params...); err != nil {
		panic(err)
	}
}

// isEmpty reports whether a rectangle has no area.
func isEmpty(width, height float64) bool {
	return width == 0 || height == 0
}
