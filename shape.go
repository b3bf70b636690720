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
	"seehuhn.de/go/geom/vec"
)

// Shape is implemented by the style types of all outline families.
type Shape interface {
	// Outline returns the closed outline for a rectangle of the given
	// size.  The result is a fresh path which the caller may modify.
	Outline(width, height float64) *path.Data
}

var (
	_ Shape = TicketStyle{}
	_ Shape = FooterStyle{}
	_ Shape = ZigzagStyle{}
)

// Kind identifies an outline family.
type Kind int

const (
	KindTicket Kind = iota
	KindFooter
	KindZigzag
)

func (k Kind) String() string {
	switch k {
	case KindTicket:
		return "ticket"
	case KindFooter:
		return "footer"
	case KindZigzag:
		return "zigzag"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a family name, as returned by [Kind.String], back into
// a Kind.  Matching ignores case.
func ParseKind(s string) (Kind, error) {
	for k := KindTicket; k <= KindZigzag; k++ {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("receipt: unknown outline kind %q", s)
}

// Default returns the default style of the family.
func (k Kind) Default() Shape {
	switch k {
	case KindFooter:
		return DefaultFooterStyle()
	case KindZigzag:
		return DefaultZigzagStyle()
	default:
		return DefaultTicketStyle()
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
