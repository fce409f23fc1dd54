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

// Package plot draws the curves of a free-space diagram, for checking the
// input of a diagram by eye.
package plot

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/freespace"
)

// Colors are the stroke colors of the first curves.
// Further curves are drawn in gray.
var Colors = []color.RGBA{
	{R: 200, G: 40, B: 40, A: 255},
	{R: 40, G: 80, B: 200, A: 255},
}

const (
	// samples is the number of points used to flatten curves which are not
	// polylines.
	samples = 256

	// margin is the space around the curves, as a fraction of the smaller
	// image dimension.
	margin = 0.05

	// previewStroke is the stroke width of preview images, in pixels.
	previewStroke = 2.0
)

// Preview returns a width×height image showing the curves, in device
// coordinates with the y axis pointing up.
func Preview(curves []freespace.Curve, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	if len(curves) == 0 || width <= 0 || height <= 0 {
		return img
	}

	lines := make([][]vec.Vec2, len(curves))
	for i, c := range curves {
		lines[i] = flatten(c)
	}
	m := fit(bounds(lines), float64(width), float64(height), true)

	r := vector.NewRasterizer(width, height)
	for i, pts := range lines {
		r.Reset(width, height)
		dev := make([]vec.Vec2, len(pts))
		for j, p := range pts {
			dev[j] = apply(m, p)
		}
		strokeLine(r, dev, previewStroke/2)
		r.Draw(img, img.Bounds(), image.NewUniform(curveColor(i)), image.Point{})
	}

	freespace.Logger().Debug("curve preview drawn",
		"curves", len(curves),
		"width", width,
		"height", height)
	return img
}

// strokeLine adds the outline of a polyline with half width hw to r.
// Every segment is a separate quadrilateral and every vertex a small square,
// all with the same orientation, so that overlaps do not cancel under the
// nonzero winding rule.
//
// This is a rough stroke for inspection images only: there are no proper
// joins or caps, and the square vertices show at sharp corners.
func strokeLine(r *vector.Rasterizer, pts []vec.Vec2, hw float64) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)
		quad(r, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	}
	for _, p := range pts {
		quad(r,
			vec.Vec2{X: p.X - hw, Y: p.Y - hw},
			vec.Vec2{X: p.X - hw, Y: p.Y + hw},
			vec.Vec2{X: p.X + hw, Y: p.Y + hw},
			vec.Vec2{X: p.X + hw, Y: p.Y - hw})
	}
}

func quad(r *vector.Rasterizer, p0, p1, p2, p3 vec.Vec2) {
	r.MoveTo(float32(p0.X), float32(p0.Y))
	r.LineTo(float32(p1.X), float32(p1.Y))
	r.LineTo(float32(p2.X), float32(p2.Y))
	r.LineTo(float32(p3.X), float32(p3.Y))
	r.ClosePath()
}

func curveColor(i int) color.RGBA {
	if i < len(Colors) {
		return Colors[i]
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// flatten returns points along the curve. Polylines are returned exactly,
// other curves are sampled.
func flatten(c freespace.Curve) []vec.Vec2 {
	if pl, ok := c.(*freespace.Polyline); ok {
		return pl.Points()
	}
	ts := freespace.SampleParams(c.Domain(), samples, make([]float64, 0, samples))
	return c.EvalOrdered(make([]vec.Vec2, 0, samples), ts)
}

// bounds returns the bounding box of all points.
func bounds(lines [][]vec.Vec2) rect.Rect {
	bbox := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	for _, pts := range lines {
		for _, p := range pts {
			bbox.LLx = min(bbox.LLx, p.X)
			bbox.LLy = min(bbox.LLy, p.Y)
			bbox.URx = max(bbox.URx, p.X)
			bbox.URy = max(bbox.URy, p.Y)
		}
	}
	return bbox
}

// fit returns the transformation which maps bbox into the centre of a
// width×height canvas, keeping the aspect ratio. If flipY is set, the
// y axis of the canvas points down, as in images.
func fit(bbox rect.Rect, width, height float64, flipY bool) matrix.Matrix {
	pad := margin * min(width, height)
	dx := bbox.URx - bbox.LLx
	dy := bbox.URy - bbox.LLy

	s := 1.0
	if dx > 0 || dy > 0 {
		s = math.Inf(1)
		if dx > 0 {
			s = (width - 2*pad) / dx
		}
		if dy > 0 {
			s = min(s, (height-2*pad)/dy)
		}
	}

	cx := (bbox.LLx + bbox.URx) / 2
	cy := (bbox.LLy + bbox.URy) / 2
	if flipY {
		return matrix.Matrix{s, 0, 0, -s, width/2 - s*cx, height/2 + s*cy}
	}
	return matrix.Matrix{s, 0, 0, s, width/2 - s*cx, height/2 - s*cy}
}

// apply transforms a point by m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
