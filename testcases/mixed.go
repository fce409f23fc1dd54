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

package testcases

var mixedCases = []TestCase{
	// The curves of the sample stuff.toml configuration: an arch and its
	// control polygon.
	{
		Name:    "arch_polygon",
		A:       arch,
		B:       polyline(0, 0, 10, 10, 20, 10, 30, 0),
		Width:   120,
		Height:  60,
		Epsilon: 2.5,
	},
	{
		Name:    "polygon_arch",
		A:       polyline(0, 0, 10, 10, 20, 10, 30, 0),
		B:       arch,
		Width:   60,
		Height:  120,
		Epsilon: 2.5,
	},

	// A straight line against a flattened arch, with a narrow band.
	{
		Name:    "line_arch",
		A:       polyline(0, 0, 30, 0),
		B:       arch,
		Width:   100,
		Height:  100,
		Epsilon: 1,
	},

	// Curves which never come closer than ε: all cells are blocked.
	{
		Name:    "far_apart",
		A:       bezier(0, 0, 1, 1, 2, 1, 3, 0),
		B:       polyline(100, 100, 110, 100, 110, 110),
		Width:   32,
		Height:  32,
		Epsilon: 10,
	},

	// A zigzag against a Bézier which crosses it several times.
	{
		Name:    "zigzag_wave",
		A:       zigzag,
		B:       bezier(0, 2.5, 13, 12, 27, -7, 40, 2.5),
		Width:   128,
		Height:  96,
		Epsilon: 1.5,
	},
}
