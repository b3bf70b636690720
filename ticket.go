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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/path"
)

// EdgeTreatment selects how the top edge of a ticket and its two corners
// are drawn.
type EdgeTreatment int

const (
	// Flat gives square top corners.
	Flat EdgeTreatment = iota

	// Rounded gives top corners which are rounded outwards.
	Rounded

	// Inward gives top corners with a notch curving into the ticket.
	Inward
)

func (e EdgeTreatment) String() string {
	switch e {
	case Flat:
		return "flat"
	case Rounded:
		return "rounded"
	case Inward:
		return "inward"
	default:
		return fmt.Sprintf("EdgeTreatment(%d)", int(e))
	}
}

// ParseEdgeTreatment converts "flat", "rounded" or "inward" into an
// EdgeTreatment.  Matching ignores case.
func ParseEdgeTreatment(s string) (EdgeTreatment, error) {
	for e := Flat; e <= Inward; e++ {
		if strings.EqualFold(s, e.String()) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("receipt: unknown edge treatment %q", s)
}

// Default ticket dimensions.
const (
	DefaultRoundedCornerRadius = 25.0
	DefaultInwardCornerRadius  = 8.0
)

// TicketStyle describes a ticket outline: a rectangle with a configurable
// top edge and inward-notched bottom corners.
type TicketStyle struct {
	// Top selects the treatment of the top edge.
	Top EdgeTreatment

	// RoundedCornerRadius is the radius of the top corners when Top is
	// Rounded.
	RoundedCornerRadius float64

	// InwardCornerRadius is the radius of the notched corners.  It is used
	// for the bottom corners, and for the top corners when Top is Inward.
	InwardCornerRadius float64
}

// DefaultTicketStyle returns a ticket with inward-notched corners all
// around.
func DefaultTicketStyle() TicketStyle {
	return TicketStyle{
		Top:                 Inward,
		RoundedCornerRadius: DefaultRoundedCornerRadius,
		InwardCornerRadius:  DefaultInwardCornerRadius,
	}
}

// Validate checks that all radii are finite and non-negative.
func (s TicketStyle) Validate() error {
	if s.Top < Flat || s.Top > Inward {
		return fmt.Errorf("receipt: invalid top edge %s: %w", s.Top, ErrInvalid)
	}
	return checkLengths(
		param{"RoundedCornerRadius", s.RoundedCornerRadius},
		param{"InwardCornerRadius", s.InwardCornerRadius},
	)
}

// Outline implements the [Shape] interface.
func (s TicketStyle) Outline(width, height float64) *path.Data {
	return Ticket(width, height, s)
}

// Ticket returns the ticket outline for a width×height rectangle.  The
// path runs clockwise, starting near the top-left corner.
//
// The bottom corners are always notched inwards, whatever the top edge
// treatment.  Radii which exceed half the rectangle make the corners
// overlap; they are not clamped.
//
// Ticket panics if the size or style contains negative, NaN or infinite
// values.  An empty path is returned for rectangles without area.
func Ticket(width, height float64, style TicketStyle) *path.Data {
	mustCheck(param{"width", width}, param{"height", height})
	if err := style.Validate(); err != nil {
		panic(err)
	}
	if isEmpty(width, height) {
		return &path.Data{}
	}

	r := style.RoundedCornerRadius
	in := style.InwardCornerRadius
	p := &path.Data{}

	switch style.Top {
	case Flat:
		p = p.MoveTo(pt(0, 0)).
			LineTo(pt(width, 0))
	case Rounded:
		p = p.MoveTo(pt(r, 0)).
			LineTo(pt(width-r, 0)).
			QuadTo(pt(width, 0), pt(width, r))
	case Inward:
		p = p.MoveTo(pt(0, in)).
			QuadTo(pt(in, in), pt(in, 0)).
			LineTo(pt(width-in, 0)).
			QuadTo(pt(width-in, in), pt(width, in))
	}

	p = p.LineTo(pt(width, height-in)).
		QuadTo(pt(width-in, height-in), pt(width-in, height)).
		LineTo(pt(in, height)).
		QuadTo(pt(in, height-in), pt(0, height-in))

	switch style.Top {
	case Flat:
		p = p.LineTo(pt(0, 0))
	case Rounded:
		p = p.LineTo(pt(0, r)).
			QuadTo(pt(0, 0), pt(r, 0))
	case Inward:
		p = p.LineTo(pt(0, in))
	}

	return p.Close()
}
