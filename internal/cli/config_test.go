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
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/receipt"
	"seehuhn.de/go/receipt/panel"
)

const sampleConfig = `
background = "#f2f2f2"
gap = 1

[[item]]
kind = "ticket"
height = 200
top = "rounded"
color = "#ffffff"
elevation = 4

[[item]]
kind = "separator"
color = "#ffffff"
dash_width = 10

[[item]]
kind = "zigzag"
height = 60
top_depth = 5

[[item]]
kind = "footer"
height = 50
scallop_gap = 0
`

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != defaultWidth || cfg.Scale != defaultScale {
		t.Errorf("got width %g, scale %g", cfg.Width, cfg.Scale)
	}

	if _, err := cfg.Receipt(); err == nil {
		t.Error("a receipt without items was accepted")
	}
}

func TestConfigReceipt(t *testing.T) {
	cfg, err := parseConfig(sampleConfig)
	if err != nil {
		t.Fatal(err)
	}
	r, err := cfg.Receipt()
	if err != nil {
		t.Fatal(err)
	}

	if r.Width != defaultWidth || r.Gap != 1 {
		t.Errorf("got width %g, gap %g", r.Width, r.Gap)
	}
	if d := cmp.Diff(color.RGBA{0xf2, 0xf2, 0xf2, 0xff}, r.Background); d != "" {
		t.Errorf("background (-want +got):\n%s", d)
	}
	if len(r.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(r.Items))
	}

	ticket, ok := r.Items[0].(*panel.Panel)
	if !ok {
		t.Fatalf("item 1 is %T", r.Items[0])
	}
	wantTicket := receipt.DefaultTicketStyle()
	wantTicket.Top = receipt.Rounded
	if d := cmp.Diff(receipt.Shape(wantTicket), ticket.Shape); d != "" {
		t.Errorf("ticket style (-want +got):\n%s", d)
	}
	if ticket.Height != 200 || ticket.Shadow.Elevation != 4 {
		t.Errorf("got height %g, elevation %g", ticket.Height, ticket.Shadow.Elevation)
	}

	sep, ok := r.Items[1].(*panel.DashedLine)
	if !ok {
		t.Fatalf("item 2 is %T", r.Items[1])
	}
	if sep.DashWidth != 10 || sep.DashGap != panel.DefaultDashGap {
		t.Errorf("got dash %g, gap %g", sep.DashWidth, sep.DashGap)
	}
	if d := cmp.Diff(color.Color(color.RGBA{0xff, 0xff, 0xff, 0xff}), sep.GapColor); d != "" {
		t.Errorf("gap color (-want +got):\n%s", d)
	}

	zigzag := r.Items[2].(*panel.Panel)
	wantZigzag := receipt.DefaultZigzagStyle()
	wantZigzag.TopDepth = 5
	if d := cmp.Diff(receipt.Shape(wantZigzag), zigzag.Shape); d != "" {
		t.Errorf("zigzag style (-want +got):\n%s", d)
	}

	footer := r.Items[3].(*panel.Panel)
	wantFooter := receipt.DefaultFooterStyle()
	wantFooter.ScallopGap = 0
	if d := cmp.Diff(receipt.Shape(wantFooter), footer.Shape); d != "" {
		t.Errorf("footer style (-want +got):\n%s", d)
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"bad kind", "[[item]]\nkind = \"circle\"\n", false},
		{"bad color", "[[item]]\nkind = \"ticket\"\ncolor = \"red\"\n", false},
		{"bad background", "background = \"#12\"\n", false},
		{"bad top", "[[item]]\nkind = \"ticket\"\ntop = \"wavy\"\n", false},
		{"bad scale", "scale = -1\n", false},
		{"negative height", "[[item]]\nkind = \"footer\"\nheight = -5\n", true},
		{"negative radius", "[[item]]\nkind = \"ticket\"\ninward_corner_radius = -1\n", true},
		{"negative dash", "[[item]]\nkind = \"separator\"\ndash_width = -1\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfig(tt.data)
			if err != nil {
				t.Fatal(err)
			}
			_, err = cfg.Receipt()
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, receipt.ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestLoadConfigUnknown(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "receipt.toml")
	data := "width = 200\ncolour = \"#ffffff\"\n\n[[item]]\nkind = \"ticket\"\nheigth = 10\n"
	if err := os.WriteFile(fname, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, unknown, err := loadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 200 {
		t.Errorf("got width %g, want 200", cfg.Width)
	}
	if d := cmp.Diff([]string{"colour", "item.heigth"}, unknown); d != "" {
		t.Errorf("unknown keys (-want +got):\n%s", d)
	}
}
