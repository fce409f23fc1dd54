// Command export writes test case definitions to JSON, for use by external
// tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/freespace"
	"seehuhn.de/go/freespace/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string    `json:"name"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Epsilon float64   `json:"epsilon"`
	A       jsonCurve `json:"a"`
	B       jsonCurve `json:"b"`
}

type jsonCurve struct {
	Kind   string      `json:"kind"`
	Points [][]float64 `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	return jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   tc.Width,
		Height:  tc.Height,
		Epsilon: tc.Epsilon,
		A:       curveToJSON(tc.A),
		B:       curveToJSON(tc.B),
	}
}

func curveToJSON(c freespace.Curve) jsonCurve {
	var jc jsonCurve
	var pts []vec.Vec2
	switch c := c.(type) {
	case *freespace.CubicBezier:
		jc.Kind = "bezier"
		cp := c.ControlPoints()
		pts = cp[:]
	case *freespace.Polyline:
		jc.Kind = "polyline"
		pts = c.Points()
	default:
		panic(fmt.Sprintf("unsupported curve type %T", c))
	}
	jc.Points = make([][]float64, len(pts))
	for i, p := range pts {
		jc.Points[i] = []float64{p.X, p.Y}
	}
	return jc
}
