package testcases

// arch is the cubic Bézier used by the example configuration.
var arch = bezier(0, 0, 10, 10, 20, 10, 30, 0)

// zigzag is a polyline without self-intersections.
var zigzag = polyline(0, 0, 10, 5, 20, 0, 30, 5, 40, 0)

// identicalCases compare a curve with itself. The diagonal of these
// diagrams has distance zero.
var identicalCases = []TestCase{
	{
		Name:    "bezier_zero",
		A:       arch,
		B:       arch,
		Width:   64,
		Height:  64,
		Epsilon: 0,
	},
	{
		Name:    "bezier_band",
		A:       arch,
		B:       arch,
		Width:   64,
		Height:  64,
		Epsilon: 4,
	},
	{
		Name:    "polyline_zero",
		A:       zigzag,
		B:       zigzag,
		Width:   80,
		Height:  80,
		Epsilon: 0,
	},
	{
		Name:    "polyline_band",
		A:       zigzag,
		B:       zigzag,
		Width:   80,
		Height:  80,
		Epsilon: 3,
	},
}
