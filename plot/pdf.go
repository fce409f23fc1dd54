// seehuhn.de/go/freespace - free-space diagrams of planar curves
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

package plot

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/freespace"
)

// figureStroke is the stroke width of PDF figures, in PDF points.
const figureStroke = 1.5

// WritePDF writes a single-page PDF file showing the curves. The page size
// is width×height PDF points. Curves which implement [freespace.Pather] are
// drawn exactly, other curves are approximated by line segments.
func WritePDF(fname string, curves []freespace.Curve, width, height float64) error {
	paper := &pdf.Rectangle{
		URx: width,
		URy: height,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	lines := make([][]vec.Vec2, len(curves))
	for i, c := range curves {
		lines[i] = flatten(c)
	}
	if len(curves) > 0 {
		// PDF user space has the y axis pointing up, no flip needed
		m := fit(bounds(lines), width, height, false)
		page.Transform(m)
		page.SetLineWidth(figureStroke / m[0])
	}
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for i, c := range curves {
		page.SetStrokeColor(color.DeviceGray(curveGray(i)))

		var p path.Path
		if pather, ok := c.(freespace.Pather); ok {
			p = pather.Path()
		} else {
			p = linePath(lines[i])
		}
		for cmd, pts := range p {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	freespace.Logger().Debug("curve figure written",
		"file", fname,
		"curves", len(curves))
	return nil
}

// curveGray returns the gray level used for curve i: the first curve is
// black, later curves get lighter.
func curveGray(i int) float64 {
	return min(0.6, 0.3*float64(i))
}

// linePath returns the path through the given points.
func linePath(pts []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, pts[i:i+1]) {
				return
			}
		}
	}
}
