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
	"fmt"
	"image/color"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/receipt"
	"seehuhn.de/go/receipt/panel"
)

// Default values for receipt files.
const (
	defaultWidth = 360.0
	defaultScale = 2.0
)

// Config is the contents of a receipt file.
//
// A minimal file looks like this:
//
//	width = 360
//	background = "#f2f2f2"
//
//	[[item]]
//	kind = "ticket"
//	height = 200
//	top = "rounded"
//
//	[[item]]
//	kind = "separator"
//
//	[[item]]
//	kind = "footer"
//	height = 50
type Config struct {
	Width      float64      `toml:"width"`
	Scale      float64      `toml:"scale"`
	Gap        float64      `toml:"gap"`
	Background string       `toml:"background"`
	Items      []ItemConfig `toml:"item"`
}

// ItemConfig describes one panel or separator.  Style fields which are
// not set take the default values of the shape.
type ItemConfig struct {
	Kind   string  `toml:"kind"` // ticket, footer, zigzag or separator
	Height float64 `toml:"height"`
	Color  string  `toml:"color"`

	Elevation   float64 `toml:"elevation"`
	ShadowColor string  `toml:"shadow_color"`

	// ticket
	Top                 string   `toml:"top"`
	RoundedCornerRadius *float64 `toml:"rounded_corner_radius"`
	InwardCornerRadius  *float64 `toml:"inward_corner_radius"`

	// footer
	BottomCornerRadius *float64 `toml:"bottom_corner_radius"`
	ScallopDepth       *float64 `toml:"scallop_depth"`
	ScallopWidth       *float64 `toml:"scallop_width"`
	ScallopGap         *float64 `toml:"scallop_gap"`

	// zigzag
	TopDepth    *float64 `toml:"top_depth"`
	TopWidth    *float64 `toml:"top_width"`
	BottomDepth *float64 `toml:"bottom_depth"`
	BottomWidth *float64 `toml:"bottom_width"`

	// separator
	DashColor   string   `toml:"dash_color"`
	DashWidth   *float64 `toml:"dash_width"`
	DashGap     *float64 `toml:"dash_gap"`
	StrokeWidth *float64 `toml:"stroke_width"`
	Inset       *float64 `toml:"inset"`
	Margin      *float64 `toml:"margin"`
}

const separatorKind = "separator"

// loadConfig reads a receipt file.  Keys which do not correspond to any
// configuration field are returned, so that the caller can warn about
// them.
func loadConfig(fname string) (*Config, []string, error) {
	cfg := &Config{}
	md, err := toml.DecodeFile(fname, cfg)
	if err != nil {
		return nil, nil, err
	}
	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	cfg.setDefaults()
	return cfg, unknown, nil
}

// parseConfig is like loadConfig, but reads the receipt from a string.
func parseConfig(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Width == 0 {
		c.Width = defaultWidth
	}
	if c.Scale == 0 {
		c.Scale = defaultScale
	}
}

var errScale = errors.New("scale must be positive")

// Receipt converts the configuration into a validated receipt.
func (c *Config) Receipt() (*panel.Receipt, error) {
	if !(c.Scale > 0) {
		return nil, errScale
	}
	r := &panel.Receipt{
		Width: c.Width,
		Gap:   c.Gap,
	}
	if c.Background != "" {
		bg, err := parseColor(c.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		r.Background = bg
	}

	for i, ic := range c.Items {
		it, err := ic.item()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		r.Items = append(r.Items, it)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (ic *ItemConfig) item() (panel.Item, error) {
	if strings.EqualFold(ic.Kind, separatorKind) {
		return ic.separator()
	}

	kind, err := receipt.ParseKind(ic.Kind)
	if err != nil {
		return nil, err
	}
	shape, err := ic.shape(kind)
	if err != nil {
		return nil, err
	}

	p := &panel.Panel{
		Shape:  shape,
		Height: ic.Height,
		Shadow: panel.Shadow{Elevation: ic.Elevation},
	}
	if ic.Color != "" {
		if p.Color, err = parseColor(ic.Color); err != nil {
			return nil, err
		}
	}
	if ic.ShadowColor != "" {
		if p.Shadow.Color, err = parseColor(ic.ShadowColor); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// shape builds the style for the given shape family, starting from the
// defaults and applying the fields set in the file.
func (ic *ItemConfig) shape(kind receipt.Kind) (receipt.Shape, error) {
	switch kind {
	case receipt.KindTicket:
		s := receipt.DefaultTicketStyle()
		if ic.Top != "" {
			top, err := receipt.ParseEdgeTreatment(ic.Top)
			if err != nil {
				return nil, err
			}
			s.Top = top
		}
		set(&s.RoundedCornerRadius, ic.RoundedCornerRadius)
		set(&s.InwardCornerRadius, ic.InwardCornerRadius)
		return s, nil

	case receipt.KindFooter:
		s := receipt.DefaultFooterStyle()
		set(&s.InwardCornerRadius, ic.InwardCornerRadius)
		set(&s.BottomCornerRadius, ic.BottomCornerRadius)
		set(&s.ScallopDepth, ic.ScallopDepth)
		set(&s.ScallopWidth, ic.ScallopWidth)
		set(&s.ScallopGap, ic.ScallopGap)
		return s, nil

	case receipt.KindZigzag:
		s := receipt.DefaultZigzagStyle()
		set(&s.TopDepth, ic.TopDepth)
		set(&s.TopWidth, ic.TopWidth)
		set(&s.BottomDepth, ic.BottomDepth)
		set(&s.BottomWidth, ic.BottomWidth)
		return s, nil
	}
	return nil, fmt.Errorf("unsupported shape %s", kind)
}

func (ic *ItemConfig) separator() (*panel.DashedLine, error) {
	dash, err := parseColorDefault(ic.DashColor, color.Gray{Y: 0x40})
	if err != nil {
		return nil, err
	}
	gap, err := parseColorDefault(ic.Color, panel.DefaultPanelColor)
	if err != nil {
		return nil, err
	}

	d := panel.NewDashedLine(dash, gap)
	set(&d.DashWidth, ic.DashWidth)
	set(&d.DashGap, ic.DashGap)
	set(&d.StrokeWidth, ic.StrokeWidth)
	set(&d.Inset, ic.Inset)
	set(&d.Margin, ic.Margin)
	return d, nil
}

func set(dst *float64, val *float64) {
	if val != nil {
		*dst = *val
	}
}

// parseColor parses a hex color of the form "#rrggbb".
func parseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func parseColorDefault(s string, def color.Color) (color.Color, error) {
	if s == "" {
		return def, nil
	}
	return parseColor(s)
}
