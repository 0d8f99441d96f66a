// seehuhn.de/go/skeleton - straight skeletons for 2D polygons
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

var reflexCases = []TestCase{
	{
		// the horizontal arm collapses at the same time as the split
		Name:   "l_shape",
		Path:   polygon(pt(8, 8), pt(56, 8), pt(56, 20), pt(32, 20), pt(32, 44), pt(8, 44)),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 12, MinSplits: 1},
	},
	{
		Name:   "notch",
		Path:   polygon(pt(8, 8), pt(56, 8), pt(56, 40), pt(32, 24), pt(8, 40)),
		Width:  64,
		Height: 64,
		Want:   Valid{MinSplits: 1},
	},
	{
		// four reflex corners, no two arms alike
		Name: "cross",
		Path: polygon(pt(27, 5), pt(37, 6), pt(40, 20), pt(58, 24), pt(57, 33), pt(40, 36),
			pt(38, 58), pt(26, 57), pt(24, 36), pt(6, 34), pt(7, 23), pt(24, 20)),
		Width:  64,
		Height: 64,
		Want:   Valid{MinSplits: 1},
	},
	{
		// tapered teeth of different lengths on a common base
		Name: "comb",
		Path: polygon(pt(6, 6), pt(58, 6), pt(57, 18), pt(50, 18), pt(48, 46), pt(43, 47),
			pt(40, 18), pt(34, 18), pt(32, 54), pt(26, 52), pt(24, 18), pt(18, 18),
			pt(16, 42), pt(10, 41), pt(8, 18)),
		Width:  64,
		Height: 64,
		Want:   Valid{MinSplits: 1},
	},
}
