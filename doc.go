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

// Package receipt generates the outlines of receipt and ticket panels.
//
// Each outline is a closed path made of straight lines and quadratic Bézier
// segments which traces a rectangle of the given width and height, with
// decorated edges: rounded corners, inward-notched corners, scalloped edges
// and zigzag teeth.  Repeating decorations are fitted to the available space
// by [Tessellate], so that a whole number of units always covers an edge
// exactly.
//
// Coordinates use a top-left origin, with y increasing downwards.  All
// builders are pure functions of their arguments and are safe for concurrent
// use.  The returned paths can be filled with the rasterizer in
// [seehuhn.de/go/receipt/raster] or composed into images by
// [seehuhn.de/go/receipt/panel].
package receipt

//go:generate go run ./testcases/export
