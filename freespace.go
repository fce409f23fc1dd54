// Package freespace computes free-space diagrams of pairs of planar curves.
//
// For two curves A and B and a distance threshold ε, the free-space diagram
// is the set of parameter pairs (s, t) where A(s) and B(t) are less than ε
// apart. This package rasterizes the diagram onto a pixel grid: the rows of
// the grid sample the domain of A, the columns sample the domain of B, and
// each pixel is classified as free (closer than ε), boundary (exactly ε)
// or blocked (further than ε). Such diagrams are the basis of Fréchet
// distance computations between curves.
//
// Two kinds of curves are provided: [CubicBezier] and [Polyline]. Other
// curves can be used by implementing the [Curve] interface.
package freespace

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
