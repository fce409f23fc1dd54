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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polyline is a chain of line segments, parametrized by arc length.
// The domain of a polyline is [0, L], where L is the total length.
type Polyline struct {
	points []vec.Vec2
	segLen []float64 // segLen[i] is the length of points[i]→points[i+1]
	length float64   // sum of segLen, accumulated in order
}

var (
	_ Curve  = (*Polyline)(nil)
	_ Pather = (*Polyline)(nil)
)

// NewPolyline returns the polyline through the given points.
// At least two points are required. The slice is copied.
func NewPolyline(points []vec.Vec2) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%d points given: %w", len(points), ErrTooFewPoints)
	}
	if err := checkFinite(points...); err != nil {
		return nil, err
	}

	pl := &Polyline{
		points: slices.Clone(points),
		segLen: make([]float64, len(points)-1),
	}
	for i := range pl.segLen {
		d := pl.points[i+1].Sub(pl.points[i])
		l := math.Sqrt(d.Dot(d))
		pl.segLen[i] = l
		pl.length += l
	}
	if !isFinite(pl.length) {
		return nil, fmt.Errorf("polyline length %g: %w", pl.length, ErrNonFinite)
	}
	return pl, nil
}

// Length returns the total arc length of the polyline.
func (pl *Polyline) Length() float64 {
	return pl.length
}

// Points returns a copy of the vertices of the polyline.
func (pl *Polyline) Points() []vec.Vec2 {
	return slices.Clone(pl.points)
}

// Domain implements the [Curve] interface.
func (pl *Polyline) Domain() Interval {
	return Interval{Lo: 0, Hi: pl.length}
}

// Eval implements the [Curve] interface.
// The point is found by walking the segments from the start of the polyline;
// use [Polyline.EvalOrdered] to evaluate many parameters.
func (pl *Polyline) Eval(t float64) vec.Vec2 {
	checkDomain("polyline", pl.Domain(), t)

	var traversed float64
	for i, l := range pl.segLen {
		if traversed+l >= t {
			return pl.interpolate(i, t-traversed)
		}
		traversed += l
	}
	panic(fmt.Sprintf("polyline: no segment contains t=%g (length %g)", t, pl.length))
}

// EvalOrdered implements the [Curve] interface.
//
// The segments and the parameters are traversed together, so that the total
// work is proportional to the number of segments plus len(ts). A parameter
// on the boundary between two segments is attributed to the earlier one.
func (pl *Polyline) EvalOrdered(dst []vec.Vec2, ts []float64) []vec.Vec2 {
	dom := pl.Domain()

	q := 0
	var traversed float64
	for i, l := range pl.segLen {
		if sweepStep != nil {
			sweepStep()
		}
		end := traversed + l
		for q < len(ts) && ts[q] <= end {
			if sweepStep != nil {
				sweepStep()
			}
			t := ts[q]
			checkDomain("polyline", dom, t)
			if q > 0 && t < ts[q-1] {
				panic(fmt.Sprintf("polyline: parameters not ordered: ts[%d]=%g < ts[%d]=%g",
					q, t, q-1, ts[q-1]))
			}
			dst = append(dst, pl.interpolate(i, t-traversed))
			q++
		}
		traversed = end
	}
	if q < len(ts) {
		// everything left over is beyond the end of the polyline
		checkDomain("polyline", dom, ts[q])
		panic(fmt.Sprintf("polyline: parameter %g not matched to a segment", ts[q]))
	}
	return dst
}

// sweepStep, if set, is called once per segment and once per parameter
// visited by [Polyline.EvalOrdered]. Only tests set it.
var sweepStep func()

// interpolate returns the point at distance offset from the start of
// segment i.
func (pl *Polyline) interpolate(i int, offset float64) vec.Vec2 {
	p1, p2 := pl.points[i], pl.points[i+1]
	l := pl.segLen[i]
	if l == 0 {
		return p1
	}
	frac := min(offset/l, 1)
	return p1.Mul(1 - frac).Add(p2.Mul(frac))
}

// Path implements the [Pather] interface.
func (pl *Polyline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pl.points[:1]) {
			return
		}
		for i := 1; i < len(pl.points); i++ {
			if !yield(path.CmdLineTo, pl.points[i:i+1]) {
				return
			}
		}
	}
}
