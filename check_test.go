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
	"math"
	"testing"
)

func isInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		field string
	}{
		{"ticket ok", DefaultTicketStyle().Validate(), ""},
		{"footer ok", DefaultFooterStyle().Validate(), ""},
		{"zigzag ok", DefaultZigzagStyle().Validate(), ""},
		{"zero ok", TicketStyle{}.Validate(), ""},
		{"negative radius", TicketStyle{InwardCornerRadius: -1}.Validate(), "InwardCornerRadius"},
		{"nan depth", FooterStyle{ScallopDepth: math.NaN()}.Validate(), "ScallopDepth"},
		{"inf width", ZigzagStyle{BottomWidth: math.Inf(1)}.Validate(), "BottomWidth"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.field == "" {
				if c.err != nil {
					t.Fatalf("unexpected error: %v", c.err)
				}
				return
			}
			var inv *InvalidError
			if !errors.As(c.err, &inv) {
				t.Fatalf("got %v, want *InvalidError", c.err)
			}
			if inv.Field != c.field {
				t.Errorf("field = %q, want %q", inv.Field, c.field)
			}
			if !isInvalid(c.err) {
				t.Error("error does not match ErrInvalid")
			}
		})
	}

	if err := (TicketStyle{Top: 7}).Validate(); !isInvalid(err) {
		t.Errorf("unknown edge treatment: got %v", err)
	}
}

func TestBuildersPanic(t *testing.T) {
	mustPanic(t, func() { Ticket(-1, 10, DefaultTicketStyle()) })
	mustPanic(t, func() { Ticket(10, math.NaN(), DefaultTicketStyle()) })
	mustPanic(t, func() { Ticket(10, 10, TicketStyle{RoundedCornerRadius: -2}) })
	mustPanic(t, func() { ScallopedFooter(10, -10, DefaultFooterStyle()) })
	mustPanic(t, func() { ScallopedFooter(10, 10, FooterStyle{ScallopGap: -1}) })
	mustPanic(t, func() { Zigzag(math.Inf(1), 10, DefaultZigzagStyle()) })
	mustPanic(t, func() { Zigzag(10, 10, ZigzagStyle{TopWidth: -16}) })
}

func TestParse(t *testing.T) {
	for e := Flat; e <= Inward; e++ {
		got, err := ParseEdgeTreatment(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEdgeTreatment(%q) = %v, %v", e.String(), got, err)
		}
	}
	if e, err := ParseEdgeTreatment("ROUNDED"); err != nil || e != Rounded {
		t.Errorf("case-insensitive parse failed: %v, %v", e, err)
	}
	if _, err := ParseEdgeTreatment("wavy"); err == nil {
		t.Error("missing error for unknown edge treatment")
	}

	for k := KindTicket; k <= KindZigzag; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("circle"); err == nil {
		t.Error("missing error for unknown kind")
	}
}
