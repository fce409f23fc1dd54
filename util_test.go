package freespace

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"
)

// approx compares floating point values with a small absolute tolerance.
var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// expectDomainPanic checks that f panics with a *DomainError.
func expectDomainPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Error("expected a panic")
			return
		}
		err, ok := r.(error)
		var domErr *DomainError
		if !ok || !errors.As(err, &domErr) {
			t.Errorf("expected *DomainError, got %v", r)
		}
	}()
	f()
}

// expectPanic checks that f panics.
func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	f()
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
