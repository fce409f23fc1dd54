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

package freespace

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// CubicBezier is a single cubic Bézier segment, parametrized over [0, 1].
type CubicBezier struct {
	p [4]vec.Vec2
}

var (
	_ Curve  = (*CubicBezier)(nil)
	_ Pather = (*CubicBezier)(nil)
)

// NewCubicBezier returns the cubic Bézier curve with control points p0, p1,
// p2 and p3. The curve starts at p0 and ends at p3.
func NewCubicBezier(p0, p1, p2, p3 vec.Vec2) (*CubicBezier, error) {
	if err := checkFinite(p0, p1, p2, p3); err != nil {
		return nil, err
	}
	return &CubicBezier{p: [4]vec.Vec2{p0, p1, p2, p3}}, nil
}

// ControlPoints returns the four control points of the curve.
func (c *CubicBezier) ControlPoints() [4]vec.Vec2 {
	return c.p
}

// Domain implements the [Curve] interface.
func (c *CubicBezier) Domain() Interval {
	return Interval{Lo: 0, Hi: 1}
}

// Eval implements the [Curve] interface.
func (c *CubicBezier) Eval(t float64) vec.Vec2 {
	checkDomain("cubic Bézier", c.Domain(), t)

	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t
	return c.p[0].Mul(omt3).
		Add(c.p[1].Mul(3 * omt2 * t)).
		Add(c.p[2].Mul(3 * omt * t2)).
		Add(c.p[3].Mul(t3))
}

// EvalOrdered implements the [Curve] interface.
// Bézier evaluation is closed-form, so the order of ts is not used.
func (c *CubicBezier) EvalOrdered(dst []vec.Vec2, ts []float64) []vec.Vec2 {
	for _, t := range ts {
		dst = append(dst, c.Eval(t))
	}
	return dst
}

// Path implements the [Pather] interface.
func (c *CubicBezier) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		buf[0] = c.p[0]
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = c.p[1], c.p[2], c.p[3]
		yield(path.CmdCubeTo, buf[:3])
	}
}
