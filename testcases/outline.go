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

package testcases

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/receipt"
)

// outlineCases fill the panel shapes at the sizes used on screen.
var outlineCases = []TestCase{
	{
		Name:   "ticket_flat",
		Path:   receipt.Ticket(56, 40, receipt.TicketStyle{Top: receipt.Flat, InwardCornerRadius: 8}),
		Width:  64,
		Height: 48,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(4, 4),
	},
	{
		Name:   "ticket_rounded",
		Path:   receipt.Ticket(56, 40, receipt.TicketStyle{Top: receipt.Rounded, RoundedCornerRadius: 12, InwardCornerRadius: 8}),
		Width:  64,
		Height: 48,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(4, 4),
	},
	{
		Name:   "ticket_inward",
		Path:   receipt.Ticket(56, 40, receipt.DefaultTicketStyle()),
		Width:  64,
		Height: 48,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(4, 4),
	},
	{
		Name:   "ticket_overlapping_corners",
		Path:   receipt.Ticket(20, 20, receipt.TicketStyle{Top: receipt.Inward, InwardCornerRadius: 12}),
		Width:  32,
		Height: 32,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(6, 6),
	},
	{
		Name:   "footer_default",
		Path:   receipt.ScallopedFooter(120, 60, receipt.DefaultFooterStyle()),
		Width:  128,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(4, 2),
	},
	{
		Name: "footer_shallow",
		Path: receipt.ScallopedFooter(120, 40, receipt.FooterStyle{
			InwardCornerRadius: 4,
			BottomCornerRadius: 6,
			ScallopDepth:       5,
			ScallopWidth:       10,
			ScallopGap:         1,
		}),
		Width:  128,
		Height: 48,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(4, 4),
	},
	{
		Name:   "zigzag_default",
		Path:   receipt.Zigzag(120, 56, receipt.DefaultZigzagStyle()),
		Width:  128,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(4, 4),
	},
	{
		Name: "zigzag_asymmetric",
		Path: receipt.Zigzag(120, 56, receipt.ZigzagStyle{
			TopDepth:    4,
			TopWidth:    6,
			BottomDepth: 12,
			BottomWidth: 30,
		}),
		Width:  128,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(4, 4),
	},
	{
		Name:   "footer_scaled",
		Path: receipt.ScallopedFooter(60, 30, receipt.FooterStyle{
			InwardCornerRadius: 4,
			BottomCornerRadius: 8,
			ScallopDepth:       6,
			ScallopWidth:       12,
			ScallopGap:         1,
		}),
		Width:  128,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 2).Translate(4, 2),
	},
	{
		Name:   "ticket_rotated",
		Path:   receipt.Ticket(40, 24, receipt.DefaultTicketStyle()),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(-20, -12).RotateDeg(30).Translate(32, 32),
	},
}
