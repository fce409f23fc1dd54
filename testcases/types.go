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

package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/freespace"
)

// TestCase defines a single free-space diagram.
type TestCase struct {
	Name    string          // lowercase a-z and _ only
	A       freespace.Curve // sampled along the rows
	B       freespace.Curve // sampled along the columns
	Width   int             // canvas width in pixels (>= 2)
	Height  int             // canvas height in pixels (>= 2)
	Epsilon float64         // distance threshold
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// bezier builds a cubic Bézier curve from eight coordinates.
// It panics on invalid input, since test cases are static data.
func bezier(x0, y0, x1, y1, x2, y2, x3, y3 float64) *freespace.CubicBezier {
	c, err := freespace.NewCubicBezier(pt(x0, y0), pt(x1, y1), pt(x2, y2), pt(x3, y3))
	if err != nil {
		panic(err)
	}
	return c
}

// polyline builds a polyline from a flat list of x, y coordinates.
func polyline(coords ...float64) *freespace.Polyline {
	pts := make([]vec.Vec2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, pt(coords[i], coords[i+1]))
	}
	pl, err := freespace.NewPolyline(pts)
	if err != nil {
		panic(err)
	}
	return pl
}
