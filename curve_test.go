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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestBezierEndpoints(t *testing.T) {
	c, err := NewCubicBezier(pt(1, 2), pt(-3, 7), pt(11, 0.5), pt(4, -6))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Eval(0); got != pt(1, 2) {
		t.Errorf("Eval(0) = %v, want (1, 2)", got)
	}
	if got := c.Eval(1); got != pt(4, -6) {
		t.Errorf("Eval(1) = %v, want (4, -6)", got)
	}
}

func TestBezierMidpoint(t *testing.T) {
	c, err := NewCubicBezier(pt(0, 0), pt(10, 10), pt(20, 10), pt(30, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pt(15, 7.5), c.Eval(0.5), approx)
}

// TestBezierBasis checks the Bernstein weights by evaluating curves where
// only one control point is non-zero.
func TestBezierBasis(t *testing.T) {
	weights := []func(t float64) float64{
		func(t float64) float64 { return (1 - t) * (1 - t) * (1 - t) },
		func(t float64) float64 { return 3 * (1 - t) * (1 - t) * t },
		func(t float64) float64 { return 3 * (1 - t) * t * t },
		func(t float64) float64 { return t * t * t },
	}
	for k, w := range weights {
		var p [4]vec.Vec2
		p[k] = pt(1, 0)
		c, err := NewCubicBezier(p[0], p[1], p[2], p[3])
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range []float64{0, 0.1, 0.25, 0.5, 0.8, 1} {
			got := c.Eval(s).X
			if want := w(s); math.Abs(got-want) > 1e-12 {
				t.Errorf("b%d(%g) = %g, want %g", k, s, got, want)
			}
		}
	}
}

func TestBezierDomain(t *testing.T) {
	c, err := NewCubicBezier(pt(0, 0), pt(1, 1), pt(2, 1), pt(3, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Interval{Lo: 0, Hi: 1}, c.Domain())

	for _, s := range []float64{-0.001, 1.0001, math.NaN(), math.Inf(1)} {
		expectDomainPanic(t, func() { c.Eval(s) })
	}
	expectDomainPanic(t, func() { c.EvalOrdered(nil, []float64{0, 0.5, 2}) })
}

func TestNewCubicBezierNonFinite(t *testing.T) {
	_, err := NewCubicBezier(pt(0, 0), pt(math.NaN(), 1), pt(2, 1), pt(3, 0))
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, want ErrNonFinite", err)
	}
	_, err = NewCubicBezier(pt(0, 0), pt(1, 1), pt(2, 1), pt(3, math.Inf(-1)))
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, want ErrNonFinite", err)
	}
}

func TestPolylineSimple(t *testing.T) {
	pl, err := NewPolyline([]vec.Vec2{pt(0, 0), pt(10, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if pl.Length() != 10 {
		t.Errorf("length = %g, want 10", pl.Length())
	}
	diff(t, Interval{Lo: 0, Hi: 10}, pl.Domain())
	diff(t, pt(5, 0), pl.Eval(5), approx)
	diff(t, pt(0, 0), pl.Eval(0), approx)
	diff(t, pt(10, 0), pl.Eval(10), approx)
}

func TestPolylineEndpoints(t *testing.T) {
	pts := []vec.Vec2{pt(1, 1), pt(4, 5), pt(4, 5), pt(-2, 0.5), pt(7, 3)}
	pl, err := NewPolyline(pts)
	if err != nil {
		t.Fatal(err)
	}

	// 5 + 0 + 7.5 + sqrt(87.25)
	want := 12.5 + math.Sqrt(87.25)
	if math.Abs(pl.Length()-want) > 1e-12 {
		t.Errorf("length = %g, want %g", pl.Length(), want)
	}
	diff(t, pts[0], pl.Eval(0), approx)
	diff(t, pts[len(pts)-1], pl.Eval(pl.Length()), approx)
}

// TestPolylineNormalized checks that the position inside a segment is
// scaled by the segment length.
func TestPolylineNormalized(t *testing.T) {
	pl, err := NewPolyline([]vec.Vec2{pt(0, 0), pt(0, 4), pt(3, 4)})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		t    float64
		want vec.Vec2
	}{
		{0, pt(0, 0)},
		{1, pt(0, 1)},
		{2, pt(0, 2)},
		{4, pt(0, 4)},
		{5.5, pt(1.5, 4)},
		{7, pt(3, 4)},
	}
	for _, c := range cases {
		diff(t, c.want, pl.Eval(c.t), approx)
	}
}

func TestPolylineOutOfDomain(t *testing.T) {
	pl, err := NewPolyline([]vec.Vec2{pt(0, 0), pt(3, 4)})
	if err != nil {
		t.Fatal(err)
	}
	expectDomainPanic(t, func() { pl.Eval(pl.Length() + 1) })
	expectDomainPanic(t, func() { pl.Eval(-1e-9) })
	expectDomainPanic(t, func() { pl.Eval(math.NaN()) })

	expectDomainPanic(t, func() { pl.EvalOrdered(nil, []float64{0, 1, 6}) })
	expectDomainPanic(t, func() { pl.EvalOrdered(nil, []float64{-1, 1}) })
}

func TestPolylineUnordered(t *testing.T) {
	pl, err := NewPolyline([]vec.Vec2{pt(0, 0), pt(4, 0), pt(4, 6)})
	if err != nil {
		t.Fatal(err)
	}
	expectPanic(t, func() { pl.EvalOrdered(nil, []float64{5, 3}) })
	expectPanic(t, func() { pl.EvalOrdered(nil, []float64{1, 0.5}) })
}

func TestNewPolylineErrors(t *testing.T) {
	for _, pts := range [][]vec.Vec2{nil, {pt(1, 1)}} {
		_, err := NewPolyline(pts)
		if !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("%d points: got error %v, want ErrTooFewPoints", len(pts), err)
		}
	}

	_, err := NewPolyline([]vec.Vec2{pt(0, 0), pt(math.Inf(1), 0)})
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, want ErrNonFinite", err)
	}

	// finite coordinates, but the length overflows
	_, err = NewPolyline([]vec.Vec2{pt(-math.MaxFloat64, 0), pt(math.MaxFloat64, 0)})
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, want ErrNonFinite", err)
	}
}

func TestPolylineCopiesPoints(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(1, 0)}
	pl, err := NewPolyline(pts)
	if err != nil {
		t.Fatal(err)
	}
	pts[1] = pt(100, 100)
	diff(t, pt(1, 0), pl.Eval(1))
	diff(t, []vec.Vec2{pt(0, 0), pt(1, 0)}, pl.Points())
}

func TestPolylineZeroLength(t *testing.T) {
	pl, err := NewPolyline([]vec.Vec2{pt(2, 3), pt(2, 3), pt(2, 3)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Interval{Lo: 0, Hi: 0}, pl.Domain())
	diff(t, pt(2, 3), pl.Eval(0))
	diff(t, []vec.Vec2{pt(2, 3), pt(2, 3)}, pl.EvalOrdered(nil, []float64{0, 0}))
}

// TestEvalOrderedMatchesEval checks that batched evaluation gives the same
// points as evaluating one parameter at a time.
func TestEvalOrderedMatchesEval(t *testing.T) {
	bez, err := NewCubicBezier(pt(0, 0), pt(10, 10), pt(20, 10), pt(30, 0))
	if err != nil {
		t.Fatal(err)
	}
	pl, err := NewPolyline([]vec.Vec2{pt(0, 0), pt(3, 4), pt(3, 4), pt(6, 0), pt(6, -2), pt(-1, -2)})
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []Curve{bez, pl} {
		dom := c.Domain()
		var ts []float64
		ts = SampleParams(dom, 97, ts)
		if c == Curve(pl) {
			// include the segment boundaries, some of them twice
			ts = append(ts, 0, 5, 5, 10, 12, 19, pl.Length())
		}
		slices.Sort(ts)

		got := c.EvalOrdered(nil, ts)
		if len(got) != len(ts) {
			t.Fatalf("%T: got %d points for %d parameters", c, len(got), len(ts))
		}
		for i, s := range ts {
			diff(t, c.Eval(s), got[i], approx)
		}
	}
}

func TestPolylineEvalOrderedLinear(t *testing.T) {
	defer func() { sweepStep = nil }()

	for _, n := range []int{2, 10, 100, 1000} {
		pl, err := NewPolyline(spiral(n))
		if err != nil {
			t.Fatal(err)
		}
		end := pl.Length()
		batches := map[string][]float64{
			"uniform": SampleParams(pl.Domain(), n, nil),
			"end":     slices.Repeat([]float64{end}, n),
			"start":   make([]float64, n),
		}
		for name, ts := range batches {
			steps := 0
			sweepStep = func() { steps++ }
			got := pl.EvalOrdered(nil, ts)
			sweepStep = nil

			if len(got) != len(ts) {
				t.Fatalf("n=%d %s: got %d points for %d parameters", n, name, len(got), len(ts))
			}
			if limit := len(pl.segLen) + len(ts); steps > limit {
				t.Errorf("n=%d %s: %d steps for %d segments and %d parameters",
					n, name, steps, len(pl.segLen), len(ts))
			}
		}
	}
}

func TestEvalOrderedAppends(t *testing.T) {
	pl, err := NewPolyline([]vec.Vec2{pt(0, 0), pt(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	dst := []vec.Vec2{pt(-1, -1)}
	dst = pl.EvalOrdered(dst, []float64{0, 1, 2})
	diff(t, []vec.Vec2{pt(-1, -1), pt(0, 0), pt(1, 0), pt(2, 0)}, dst, approx)
}

// TestPolylineMonotone checks that points at increasing parameters move
// forward along the chain of segments.
func TestPolylineMonotone(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(10, 5), pt(20, 0), pt(30, 5), pt(40, 0)}
	pl, err := NewPolyline(pts)
	if err != nil {
		t.Fatal(err)
	}

	ts := SampleParams(pl.Domain(), 200, nil)
	prev := -1.0
	for _, p := range pl.EvalOrdered(nil, ts) {
		s := arcPosition(pts, p)
		if s < prev-1e-9 {
			t.Fatalf("point %v at arc length %g comes before %g", p, s, prev)
		}
		prev = s
	}

	for _, s := range ts {
		if got := arcPosition(pts, pl.Eval(s)); math.Abs(got-s) > 1e-9 {
			t.Errorf("Eval(%g) is at arc length %g", s, got)
		}
	}
}

// arcPosition returns the arc length from the start of the chain to the
// first segment containing p.
func arcPosition(pts []vec.Vec2, p vec.Vec2) float64 {
	var traversed float64
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		l := b.Sub(a).Length()
		d := p.Sub(a).Length()
		if math.Abs(d+b.Sub(p).Length()-l) < 1e-9 {
			return traversed + d
		}
		traversed += l
	}
	return math.NaN()
}

func TestSampleParams(t *testing.T) {
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, SampleParams(Interval{Lo: 0, Hi: 1}, 5, nil), approx)

	// the last sample never exceeds the end of the domain
	for n := 2; n < 500; n++ {
		for _, hi := range []float64{0.1, 0.7, 1, 3.3, 1e6 / 7} {
			ts := SampleParams(Interval{Lo: 0, Hi: hi}, n, nil)
			if len(ts) != n {
				t.Fatalf("got %d samples, want %d", len(ts), n)
			}
			if last := ts[n-1]; last > hi {
				t.Fatalf("n=%d: last sample %g > %g", n, last, hi)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	pl, err := NewPolyline([]vec.Vec2{pt(0, 0), pt(4, 0), pt(4, 3)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, rect.Rect{LLx: 0, LLy: 0, URx: 4, URy: 3}, Bounds(pl, 7), approx)

	bez, err := NewCubicBezier(pt(0, 0), pt(10, 10), pt(20, 10), pt(30, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, rect.Rect{LLx: 0, LLy: 0, URx: 30, URy: 7.5}, Bounds(bez, 2), approx)
}

func TestPaths(t *testing.T) {
	type element struct {
		Cmd path.Command
		Pts []vec.Vec2
	}
	collect := func(p path.Path) []element {
		var res []element
		for cmd, pts := range p {
			res = append(res, element{cmd, append([]vec.Vec2(nil), pts...)})
		}
		return res
	}

	bez, err := NewCubicBezier(pt(0, 0), pt(1, 2), pt(3, 2), pt(4, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []element{
		{path.CmdMoveTo, []vec.Vec2{pt(0, 0)}},
		{path.CmdCubeTo, []vec.Vec2{pt(1, 2), pt(3, 2), pt(4, 0)}},
	}, collect(bez.Path()))

	pl, err := NewPolyline([]vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []element{
		{path.CmdMoveTo, []vec.Vec2{pt(0, 0)}},
		{path.CmdLineTo, []vec.Vec2{pt(1, 0)}},
		{path.CmdLineTo, []vec.Vec2{pt(1, 1)}},
	}, collect(pl.Path()))
}
