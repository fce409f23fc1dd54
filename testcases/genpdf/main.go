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

// Command genpdf writes the test cases to disk for visual inspection.
// For every test case it writes the free-space diagram as a PNG file and
// the two curves as a PDF file.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/freespace"
	"seehuhn.de/go/freespace/encode"
	"seehuhn.de/go/freespace/plot"
	"seehuhn.de/go/freespace/testcases"
)

const outDir = "testdata/cases"

func main() {
	// Create output directory
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pngPath := filepath.Join(outDir, name+".png")
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			// 4 PDF points per pixel keeps small cases readable
			curves := []freespace.Curve{tc.A, tc.B}
			w, h := 4*float64(tc.Width), 4*float64(tc.Height)
			if err := plot.WritePDF(pdfPath, curves, w, h); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePNG(tc testcases.TestCase, pngPath string) error {
	img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))

	// A single worker gives the sequential sweep order.
	d := freespace.NewDiagram(tc.Epsilon)
	d.Workers = 1
	d.Render(tc.A, tc.B, img)

	return encode.WriteFile(pngPath, img, encode.PNG)
}
