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

var holeCases = []TestCase{
	{
		// outer and inner corners meet at the same point
		Name:   "square_hole",
		Path:   withHoles(rectangle(8, 8, 56, 56), rectangle(20, 20, 44, 44)),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 6, MinSplits: 1},
	},
	{
		// both holes split the bottom edge, the second one after the
		// first has merged its hole into the outer wavefront
		Name: "two_holes",
		Path: withHoles(rectangle(4, 4, 60, 60),
			polygon(pt(18, 7), pt(23, 12), pt(18, 17), pt(13, 12)),
			polygon(pt(44, 9), pt(50, 15), pt(44, 21), pt(38, 15))),
		Width:  64,
		Height: 64,
		Want:   Valid{MinSplits: 2},
	},
	{
		Name:   "offset_hole",
		Path:   withHoles(rectangle(4, 4, 60, 60), rectangle(14, 31, 40, 49)),
		Width:  64,
		Height: 64,
		Want:   Valid{MinSplits: 1},
	},
}
