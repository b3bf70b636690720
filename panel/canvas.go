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

// Package panel composes receipt outlines into images and PDF files.
//
// A [Receipt] is a vertical stack of items: filled panels, whose outline
// is produced by a [receipt.Shape], and dashed separator lines.  Receipts
// can be rendered to an *image.RGBA at any scale, or written as vector
// graphics with [WritePDF].
package panel

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/receipt"
	"seehuhn.de/go/receipt/raster"
)

// Canvas is a raster image together with the scale from layout units to
// pixels.  A Canvas is not safe for concurrent use.
type Canvas struct {
	Image *image.RGBA
	Scale float64

	r *raster.Rasterizer
}

// NewCanvas allocates a transparent canvas large enough to hold a
// width×height layout area at the given scale.
func NewCanvas(width, height, scale float64) *Canvas {
	w := int(math.Ceil(width * scale))
	h := int(math.Ceil(height * scale))
	return &Canvas{
		Image: image.NewRGBA(image.Rect(0, 0, w, h)),
		Scale: scale,
		r:     raster.NewRasterizer(rect.Rect{}),
	}
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPath fills p, translated to the layout position at, with col.
func (c *Canvas) FillPath(p *path.Data, at vec.Vec2, col color.Color) {
	mask, b := c.mask(p, at, 0, func(r *raster.Rasterizer, emit raster.EmitFunc) {
		r.FillNonZero(p, emit)
	})
	if mask == nil {
		return
	}
	draw.DrawMask(c.Image, b, image.NewUniform(col), image.Point{}, mask, b.Min, draw.Over)
}

// Stroke describes the line style for [Canvas.StrokePath].
// Lengths are in layout units.
type Stroke struct {
	Width     float64
	Cap       graphics.LineCapStyle
	Dash      []float64
	DashPhase float64
}

// StrokePath draws the outline of p, translated to at, with col.
func (c *Canvas) StrokePath(p *path.Data, at vec.Vec2, col color.Color, s Stroke) {
	pad := int(math.Ceil(s.Width * c.Scale))
	mask, b := c.mask(p, at, pad, func(r *raster.Rasterizer, emit raster.EmitFunc) {
		r.Width = s.Width
		r.Cap = s.Cap
		r.Dash = s.Dash
		r.DashPhase = s.DashPhase
		r.Stroke(p, emit)
	})
	if mask == nil {
		return
	}
	draw.DrawMask(c.Image, b, image.NewUniform(col), image.Point{}, mask, b.Min, draw.Over)
}

// DropShadow paints a blurred copy of the area enclosed by p.  The shadow
// is offset downwards by half the elevation and blurred with a Gaussian
// of standard deviation elevation/2.
func (c *Canvas) DropShadow(p *path.Data, at vec.Vec2, elevation float64, col color.Color) {
	if !(elevation > 0) {
		return
	}
	sigma := elevation / 2 * c.Scale
	pad := int(math.Ceil(3*sigma)) + 1
	at = at.Add(vec.Vec2{Y: elevation / 2})

	mask, b := c.mask(p, at, pad, func(r *raster.Rasterizer, emit raster.EmitFunc) {
		r.FillNonZero(p, emit)
	})
	if mask == nil {
		return
	}
	blurred := imaging.Blur(mask, sigma)
	draw.DrawMask(c.Image, b, image.NewUniform(col), image.Point{}, blurred, image.Point{}, draw.Over)
}

// mask renders the coverage of p into an alpha image.  The mask covers
// the bounding box of p in device space, enlarged by pad pixels on every
// side.  If p covers no pixels, nil is returned.
func (c *Canvas) mask(p *path.Data, at vec.Vec2, pad int, paint func(*raster.Rasterizer, raster.EmitFunc)) (*image.Alpha, image.Rectangle) {
	m := receipt.Measure(p)
	if m.Segments == 0 {
		return nil, image.Rectangle{}
	}
	s := c.Scale
	b := image.Rect(
		int(math.Floor((at.X+m.Bounds.X0)*s))-pad,
		int(math.Floor((at.Y+m.Bounds.Y0)*s))-pad,
		int(math.Ceil((at.X+m.Bounds.X1)*s))+pad+1,
		int(math.Ceil((at.Y+m.Bounds.Y1)*s))+pad+1,
	)
	clip := c.Image.Bounds().Inset(-pad)
	b = b.Intersect(clip)
	if b.Empty() {
		return nil, image.Rectangle{}
	}

	r := c.r
	r.Reset(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	r.CTM = matrix.Scale(s, s).Translate(at.X*s, at.Y*s)

	mask := image.NewAlpha(b)
	paint(r, func(y, xMin int, coverage []float32) {
		row := mask.Pix[mask.PixOffset(xMin, y):]
		for i, cov := range coverage {
			row[i] = uint8(min(cov, 1)*255 + 0.5)
		}
	})
	return mask, b
}
