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
	"errors"
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/receipt"
)

// Item is one entry in the vertical stack of a [Receipt].
type Item interface {
	// Extent returns the vertical size of the item in layout units.
	Extent() float64

	// Draw paints the item with its top-left corner at (x, y), spanning
	// the given width.
	Draw(c *Canvas, x, y, width float64)

	// Validate reports whether the item can be drawn.
	Validate() error
}

// Panel is a filled receipt section, such as a ticket or a footer.
type Panel struct {
	Shape  receipt.Shape
	Height float64
	Color  color.Color // nil means DefaultPanelColor
	Shadow Shadow
}

// Shadow describes the drop shadow under a panel.  An elevation of zero
// disables the shadow.
type Shadow struct {
	Elevation float64
	Color     color.Color // nil means DefaultShadowColor
}

// DefaultPanelColor is used for panels without an explicit color.
var DefaultPanelColor color.Color = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}

// DefaultShadowColor is used for shadows without an explicit color.
var DefaultShadowColor color.Color = color.NRGBA{A: 0x40}

var errNoShape = errors.New("panel has no shape")

// Extent implements the [Item] interface.
func (p *Panel) Extent() float64 {
	return p.Height
}

// Validate checks the panel height, the shadow elevation and, if the shape
// supports it, the shape parameters.
func (p *Panel) Validate() error {
	if p.Shape == nil {
		return errNoShape
	}
	if !finiteNonNegative(p.Height) {
		return &receipt.InvalidError{Field: "height", Value: p.Height}
	}
	if !finiteNonNegative(p.Shadow.Elevation) {
		return &receipt.InvalidError{Field: "elevation", Value: p.Shadow.Elevation}
	}
	if v, ok := p.Shape.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", shapeName(p.Shape), err)
		}
	}
	return nil
}

// Draw implements the [Item] interface.
func (p *Panel) Draw(c *Canvas, x, y, width float64) {
	outline := p.Shape.Outline(width, p.Height)
	at := vec.Vec2{X: x, Y: y}
	if p.Shadow.Elevation > 0 {
		col := p.Shadow.Color
		if col == nil {
			col = DefaultShadowColor
		}
		c.DropShadow(outline, at, p.Shadow.Elevation, col)
	}
	col := p.Color
	if col == nil {
		col = DefaultPanelColor
	}
	c.FillPath(outline, at, col)
}

func shapeName(s receipt.Shape) string {
	switch s.(type) {
	case receipt.TicketStyle, *receipt.TicketStyle:
		return receipt.KindTicket.String()
	case receipt.FooterStyle, *receipt.FooterStyle:
		return receipt.KindFooter.String()
	case receipt.ZigzagStyle, *receipt.ZigzagStyle:
		return receipt.KindZigzag.String()
	}
	return fmt.Sprintf("%T", s)
}

func finiteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}
