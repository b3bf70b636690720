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

package panel

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/receipt"
)

// Receipt is a vertical stack of items of equal width.
type Receipt struct {
	// Width is the width of all items, in layout units.
	Width float64

	// Gap is the vertical space between consecutive items.
	Gap float64

	// Background fills the whole image.  If nil, the background is
	// transparent.
	Background color.Color

	Items []Item
}

var errNoItems = errors.New("receipt has no items")

// Validate checks the receipt dimensions and every item.
func (r *Receipt) Validate() error {
	if len(r.Items) == 0 {
		return errNoItems
	}
	if !finiteNonNegative(r.Width) {
		return &receipt.InvalidError{Field: "width", Value: r.Width}
	}
	if !finiteNonNegative(r.Gap) {
		return &receipt.InvalidError{Field: "gap", Value: r.Gap}
	}
	for i, it := range r.Items {
		if it == nil {
			return fmt.Errorf("item %d: missing", i+1)
		}
		if err := it.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return nil
}

// Layout returns the vertical offset of every item, relative to the top
// of the receipt.
func (r *Receipt) Layout() []float64 {
	ys := make([]float64, len(r.Items))
	y := 0.0
	for i, it := range r.Items {
		if i > 0 {
			y += r.Gap
		}
		ys[i] = y
		y += it.Extent()
	}
	return ys
}

// Height returns the total height of the stacked items.
func (r *Receipt) Height() float64 {
	if len(r.Items) == 0 {
		return 0
	}
	ys := r.Layout()
	last := len(ys) - 1
	return ys[last] + r.Items[last].Extent()
}

// Padding returns the space needed around the receipt so that no drop
// shadow is cut off.
func (r *Receipt) Padding() float64 {
	var pad float64
	for _, it := range r.Items {
		if p, ok := it.(*Panel); ok {
			// offset e/2 plus three standard deviations of e/2
			pad = max(pad, 2*p.Shadow.Elevation)
		}
	}
	return math.Ceil(pad)
}

// Render draws the receipt into a new image.  One layout unit maps to
// scale pixels.  The receipt must be valid.
func (r *Receipt) Render(scale float64) *image.RGBA {
	img, _ := r.RenderContext(context.Background(), scale)
	return img
}

// RenderContext is like [Receipt.Render], but stops between items once
// ctx is cancelled and returns the context's error.
func (r *Receipt) RenderContext(ctx context.Context, scale float64) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pad := r.Padding()
	c := NewCanvas(r.Width+2*pad, r.Height()+2*pad, scale)
	if r.Background != nil {
		c.Clear(r.Background)
	}
	for i, y := range r.Layout() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.Items[i].Draw(c, pad, pad+y, r.Width)
	}
	return c.Image, nil
}
