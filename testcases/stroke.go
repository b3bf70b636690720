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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/receipt"
)

// strokeCases cover the separator lines drawn between receipt panels and
// the outlines of the panel shapes.
var strokeCases = []TestCase{
	{
		Name:   "separator_solid",
		Path:   hline(16, 112, 16.5),
		Width:  128,
		Height: 32,
		Op: Stroke{
			Width:      1,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "separator_dashed",
		Path:   hline(16, 112, 16.5),
		Width:  128,
		Height: 32,
		Op: Stroke{
			Width:      1,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{12, 8},
		},
	},
	{
		Name:   "separator_dotted",
		Path:   hline(16, 112, 16),
		Width:  128,
		Height: 32,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
			Dash:       []float64{0, 8},
		},
	},
	{
		Name:   "separator_phase",
		Path:   hline(16, 112, 16),
		Width:  128,
		Height: 32,
		Op: Stroke{
			Width:      3,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{10},
			DashPhase:  5,
		},
	},
	{
		Name:   "zigzag_miter",
		Path:   receipt.Zigzag(112, 48, receipt.DefaultZigzagStyle()),
		Width:  128,
		Height: 64,
		Op: Stroke{
			Width:      2,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
		CTM: receiptOffset,
	},
	{
		Name:   "zigzag_bevel",
		Path:   receipt.Zigzag(112, 48, receipt.DefaultZigzagStyle()),
		Width:  128,
		Height: 64,
		Op: Stroke{
			Width:      2,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 10,
		},
		CTM: receiptOffset,
	},
	{
		Name:   "ticket_round",
		Path:   receipt.Ticket(112, 48, receipt.DefaultTicketStyle()),
		Width:  128,
		Height: 64,
		Op: Stroke{
			Width:      3,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		CTM: receiptOffset,
	},
	{
		Name:   "footer_dashed",
		Path:   receipt.ScallopedFooter(112, 48, receipt.DefaultFooterStyle()),
		Width:  128,
		Height: 64,
		Op: Stroke{
			Width:      1.5,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 4,
			Dash:       []float64{6, 3},
			DashPhase:  2,
		},
		CTM: receiptOffset,
	},
}

var receiptOffset = matrix.Identity.Translate(8, 8)

// hline returns a horizontal line from (x0, y) to (x1, y).
func hline(x0, x1, y float64) *path.Data {
	p := &path.Data{}
	p = p.MoveTo(pt(x0, y))
	p = p.LineTo(pt(x1, y))
	return p
}
