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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Errors returned by the curve constructors.
var (
	ErrTooFewPoints = errors.New("polyline needs at least two points")
	ErrNonFinite    = errors.New("coordinate is not a finite number")
)

// Interval is a closed interval [Lo, Hi] of curve parameters.
type Interval struct {
	Lo, Hi float64
}

// Contains reports whether t lies in the interval, including both ends.
func (iv Interval) Contains(t float64) bool {
	return iv.Lo <= t && t <= iv.Hi
}

// Size returns the length Hi-Lo of the interval.
func (iv Interval) Size() float64 {
	return iv.Hi - iv.Lo
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}

// Curve is a planar curve, parametrized over a bounded interval.
//
// Implementations must be immutable after construction, so that a single
// curve can be evaluated from several goroutines at once.
type Curve interface {
	// Domain returns the range of valid parameter values.
	Domain() Interval

	// Eval returns the point of the curve at parameter t.
	// Eval panics with a *DomainError if t is outside Domain().
	Eval(t float64) vec.Vec2

	// EvalOrdered appends the points at parameters ts to dst and returns
	// the extended slice. The values in ts must be non-decreasing and
	// inside Domain(). Exactly one point is appended for every element
	// of ts. The running time is linear in len(ts) plus the size of the
	// curve's internal representation.
	EvalOrdered(dst []vec.Vec2, ts []float64) []vec.Vec2
}

// Pather is implemented by curves which can describe their geometry
// exactly as a path.
type Pather interface {
	Path() path.Path
}

// DomainError is the panic value used when a curve is evaluated outside
// its domain.
type DomainError struct {
	Curve  string
	T      float64
	Domain Interval
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: parameter %g outside domain %s", e.Curve, e.T, e.Domain)
}

// checkDomain panics if t is outside of dom.
func checkDomain(kind string, dom Interval, t float64) {
	if !dom.Contains(t) {
		panic(&DomainError{Curve: kind, T: t, Domain: dom})
	}
}

// checkFinite returns an error if any coordinate of the points is NaN or
// infinite.
func checkFinite(pts ...vec.Vec2) error {
	for i, p := range pts {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("point %d (%g, %g): %w", i, p.X, p.Y, ErrNonFinite)
		}
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Bounds returns the bounding box of n+1 equally spaced samples of c.
// Polyline vertices between samples may lie outside the box.
func Bounds(c Curve, n int) rect.Rect {
	n = max(n, 1)
	ts := SampleParams(c.Domain(), n+1, nil)
	pts := c.EvalOrdered(make([]vec.Vec2, 0, len(ts)), ts)

	bbox := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	return bbox
}

// SampleParams appends n parameter values i*step, i = 0, ..., n-1, to buf
// and returns the result, where step divides dom into n-1 equal parts.
// Samples are capped at dom.Hi, so that rounding in i*step never leaves the
// domain. n must be at least 2.
func SampleParams(dom Interval, n int, buf []float64) []float64 {
	step := dom.Size() / float64(n-1)
	for i := range n {
		buf = append(buf, min(float64(i)*step, dom.Hi))
	}
	return buf
}
