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

var precisionCases = []TestCase{
	{
		Name:   "large_offset",
		Path:   rectangle(1e6+12, 1e6+12, 1e6+52, 1e6+52),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 20},
	},
	{
		Name:   "tiny_square",
		Path:   rectangle(0.5, 0.5, 0.501, 0.501),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 0.0005},
	},
	{
		Name:   "closing_point",
		Path:   polygon(pt(12, 12), pt(52, 12), pt(52, 52), pt(12, 52), pt(12, 12)),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 20},
	},
	{
		// a straight angle at (32, 12)
		Name:   "collinear_vertex",
		Path:   polygon(pt(12, 12), pt(32, 12), pt(52, 12), pt(52, 52), pt(12, 52)),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 20},
	},
}
