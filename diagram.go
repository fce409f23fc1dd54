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
	"image"
	"image/color"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/geom/vec"
)

// Class is the classification of one cell of a free-space diagram.
type Class uint8

// The three classes of diagram cells, for a distance d and threshold ε.
const (
	Free     Class = iota // d < ε
	Boundary              // d == ε
	Blocked               // d > ε
)

func (c Class) String() string {
	switch c {
	case Free:
		return "free"
	case Boundary:
		return "boundary"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// ClassifyDistance returns the class of a cell where the two curves are
// distance d apart. The comparison with eps is exact: only d == eps gives
// [Boundary].
func ClassifyDistance(d, eps float64) Class {
	switch {
	case d < eps:
		return Free
	case d == eps:
		return Boundary
	default:
		return Blocked
	}
}

// DefaultPalette maps [Free] to white, [Boundary] to black and [Blocked]
// to gray.
var DefaultPalette = [3]color.RGBA{
	Free:     {R: 255, G: 255, B: 255, A: 255},
	Boundary: {R: 0, G: 0, B: 0, A: 255},
	Blocked:  {R: 153, G: 153, B: 153, A: 255},
}

// Diagram computes free-space diagrams of pairs of curves.
//
// The first curve is sampled along the vertical axis (one parameter per
// row), the second curve along the horizontal axis (one parameter per
// column). Row and column parameters divide the curve domains into equal
// steps, so that the first and last row (column) correspond to the start
// and end of the curve.
//
// A Diagram can be used concurrently, as long as the fields are not
// modified.
type Diagram struct {
	// Epsilon is the distance threshold. Must be non-negative.
	Epsilon float64

	// Workers bounds the number of goroutines used to compute rows.
	// Zero or negative means GOMAXPROCS; 1 computes all rows on the
	// calling goroutine.
	Workers int

	// Palette gives the pixel color for each [Class], used by Render.
	// Entries left at the zero value are taken from DefaultPalette.
	Palette [3]color.RGBA
}

// NewDiagram returns a Diagram with threshold eps, the default palette, and
// one worker per CPU.
func NewDiagram(eps float64) *Diagram {
	return &Diagram{
		Epsilon: eps,
		Palette: DefaultPalette,
	}
}

// Classify computes the classes of a width×height diagram of curves a
// (rows) and b (columns). The emit callback receives the classes row by
// row. Rows are computed in parallel, so emit may be called concurrently
// for different rows; its slice argument is valid only during the call.
//
// Classify panics if width or height is less than 2.
func (d *Diagram) Classify(a, b Curve, width, height int, emit func(y int, row []Class)) {
	if width < 2 || height < 2 {
		panic(fmt.Sprintf("free diagram: grid %dx%d is smaller than 2x2", width, height))
	}
	start := time.Now()

	rowTs := SampleParams(a.Domain(), height, make([]float64, 0, height))
	colTs := SampleParams(b.Domain(), width, make([]float64, 0, width))

	// The row parameters are sorted as well, so the first curve is
	// evaluated in a single sweep before the rows are distributed.
	rowPts := a.EvalOrdered(make([]vec.Vec2, 0, height), rowTs)
	if len(rowPts) != height {
		panic(fmt.Sprintf("free diagram: %d points for %d parameters", len(rowPts), height))
	}

	workers := d.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, height)

	// Each block is a contiguous range of rows, owned by one task.
	blockSize := (height + workers - 1) / workers
	numBlocks := (height + blockSize - 1) / blockSize
	counts := make([][3]int, numBlocks)

	block := func(k int) {
		yMin := k * blockSize
		yMax := min(yMin+blockSize, height)

		pts := make([]vec.Vec2, 0, width)
		row := make([]Class, width)
		cnt := &counts[k]
		for y := yMin; y < yMax; y++ {
			p1 := rowPts[y]
			pts = b.EvalOrdered(pts[:0], colTs)
			if len(pts) != width {
				panic(fmt.Sprintf("free diagram: %d points for %d parameters", len(pts), width))
			}
			for x, p2 := range pts {
				c := ClassifyDistance(p1.Sub(p2).Length(), d.Epsilon)
				row[x] = c
				cnt[c]++
			}
			emit(y, row)
		}
	}

	if numBlocks == 1 {
		block(0)
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for k := range numBlocks {
			g.Go(func() error {
				block(k)
				return nil
			})
		}
		_ = g.Wait()
	}

	var total [3]int
	for _, cnt := range counts {
		for c := range total {
			total[c] += cnt[c]
		}
	}
	Logger().Debug("free diagram computed",
		"width", width,
		"height", height,
		"epsilon", d.Epsilon,
		"workers", workers,
		Free.String(), total[Free],
		Boundary.String(), total[Boundary],
		Blocked.String(), total[Blocked],
		"elapsed", time.Since(start))
}

// Render fills every pixel of img with the free-space diagram of curves a
// (rows) and b (columns). The image must be at least 2×2 pixels.
func (d *Diagram) Render(a, b Curve, img *image.RGBA) {
	palette := d.Palette
	for c, col := range palette {
		if col == (color.RGBA{}) {
			palette[c] = DefaultPalette[c]
		}
	}

	width := img.Bounds().Dx()
	d.Classify(a, b, width, img.Bounds().Dy(), func(y int, row []Class) {
		// rows are disjoint, so concurrent calls need no locking
		pix := img.Pix[y*img.Stride : y*img.Stride+4*width]
		for x, c := range row {
			col := palette[c]
			pix[4*x+0] = col.R
			pix[4*x+1] = col.G
			pix[4*x+2] = col.B
			pix[4*x+3] = col.A
		}
	})
}
