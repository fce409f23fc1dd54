package testcases

var degenerateCases = []TestCase{
	// Minimal grid: only the end points of both curves are sampled.
	{
		Name:    "two_by_two",
		A:       arch,
		B:       polyline(0, 0, 30, 0),
		Width:   2,
		Height:  2,
		Epsilon: 1,
	},

	// A repeated vertex gives a zero-length segment.
	{
		Name:    "repeated_vertex",
		A:       polyline(0, 0, 10, 0, 10, 0, 10, 10),
		B:       polyline(0, 1, 10, 1, 10, 10),
		Width:   40,
		Height:  40,
		Epsilon: 1.5,
	},

	// All vertices coincide: the domain is [0, 0] and every row samples
	// the same point.
	{
		Name:    "single_point",
		A:       polyline(5, 5, 5, 5),
		B:       arch,
		Width:   50,
		Height:  8,
		Epsilon: 5,
	},

	// A Bézier whose control points all coincide.
	{
		Name:    "collapsed_bezier",
		A:       bezier(3, 4, 3, 4, 3, 4, 3, 4),
		B:       zigzag,
		Width:   50,
		Height:  10,
		Epsilon: 5,
	},
}
