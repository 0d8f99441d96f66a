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

var degenerateCases = []TestCase{
	{
		Name:   "two_points",
		Path:   polygon(pt(8, 8), pt(56, 56)),
		Width:  64,
		Height: 64,
		Want:   Invalid{},
	},
	{
		Name:   "repeated_point",
		Path:   polygon(pt(8, 8), pt(56, 8), pt(56, 8), pt(32, 40)),
		Width:  64,
		Height: 64,
		Want:   Invalid{},
	},
	{
		Name:   "collinear",
		Path:   polygon(pt(8, 8), pt(32, 8), pt(56, 8)),
		Width:  64,
		Height: 64,
		Want:   Invalid{},
	},
	{
		Name:   "bowtie",
		Path:   polygon(pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)),
		Width:  64,
		Height: 64,
		Want:   Invalid{},
	},
	{
		Name:   "self_intersecting",
		Path:   polygon(pt(8, 8), pt(56, 8), pt(8, 40), pt(56, 56), pt(20, 56)),
		Width:  64,
		Height: 64,
		Want:   Invalid{},
	},
	{
		Name:   "hole_outside",
		Path:   withHoles(rectangle(8, 8, 32, 32), rectangle(40, 40, 56, 56)),
		Width:  64,
		Height: 64,
		Want:   Invalid{},
	},
}
