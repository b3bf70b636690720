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

package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/receipt"
)

type outlineOpts struct {
	kind   string
	width  float64
	height float64
	top    string
}

func newOutlineCmd() *cobra.Command {
	opts := outlineOpts{}

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Print the SVG path data of a panel outline",
		Long: `Print the SVG path data of a panel outline.

The shape is generated with the default style of the given kind (ticket,
footer or zigzag).  The output can be used as the "d" attribute of an
SVG path element.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "ticket", "shape family: ticket, footer or zigzag")
	cmd.Flags().Float64Var(&opts.width, "width", 360, "rectangle width")
	cmd.Flags().Float64Var(&opts.height, "height", 200, "rectangle height")
	cmd.Flags().StringVar(&opts.top, "top", "", "top edge of a ticket: flat, rounded or inward")
	return cmd
}

func runOutline(cmd *cobra.Command, opts outlineOpts) error {
	logger := loggerFromContext(cmd.Context())

	kind, err := receipt.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	shape := kind.Default()
	if opts.top != "" {
		ts, ok := shape.(receipt.TicketStyle)
		if !ok {
			return fmt.Errorf("--top is only valid for tickets")
		}
		if ts.Top, err = receipt.ParseEdgeTreatment(opts.top); err != nil {
			return err
		}
		shape = ts
	}
	for _, v := range []struct {
		name string
		val  float64
	}{{"width", opts.width}, {"height", opts.height}} {
		if !(v.val >= 0) || math.IsInf(v.val, 1) {
			return &receipt.InvalidError{Field: v.name, Value: v.val}
		}
	}

	p := shape.Outline(opts.width, opts.height)
	m := receipt.Measure(p)
	logger.Debug("outline", "kind", kind, "segments", m.Segments, "length", m.Length, "closed", m.Closed)

	return writeSVGPath(cmd.OutOrStdout(), p)
}

// writeSVGPath writes p in SVG path syntax, followed by a newline.
func writeSVGPath(w io.Writer, p *path.Data) error {
	var b strings.Builder
	num := func(x float64) {
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	k := 0
	for i, cmd := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		var op byte
		var n int
		switch cmd {
		case path.CmdMoveTo:
			op, n = 'M', 1
		case path.CmdLineTo:
			op, n = 'L', 1
		case path.CmdQuadTo:
			op, n = 'Q', 2
		case path.CmdCubeTo:
			op, n = 'C', 3
		case path.CmdClose:
			op = 'Z'
		}
		b.WriteByte(op)
		for j, pt := range p.Coords[k : k+n] {
			if j > 0 {
				b.WriteByte(' ')
			}
			num(pt.X)
			b.WriteByte(' ')
			num(pt.Y)
		}
		k += n
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
