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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var convexCases = []TestCase{
	{
		Name:   "square",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 20},
	},
	{
		Name:   "square_clockwise",
		Path:   polygon(pt(12, 12), pt(12, 52), pt(52, 52), pt(52, 12)),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 20},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(8, 20, 56, 44),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 12},
	},
	{
		Name:   "right_triangle",
		Path:   polygon(pt(8, 8), pt(56, 8), pt(8, 44)),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 12},
	},
	{
		Name:   "hexagon",
		Path:   regular(32, 32, 24, 6, 0),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 24 * math.Cos(math.Pi/6)},
	},
	{
		Name:   "pentagon",
		Path:   regular(32, 32, 24, 5, -math.Pi/2),
		Width:  64,
		Height: 64,
		Want:   Valid{MaxHeight: 24 * math.Cos(math.Pi/5)},
	},
	{
		Name:   "trapezoid",
		Path:   polygon(pt(8, 12), pt(56, 12), pt(44, 48), pt(20, 48)),
		Width:  64,
		Height: 64,
		Want:   Valid{},
	},
}

// regular builds a regular polygon with n corners on a circle of radius r.
// The first corner is at angle phi.
func regular(cx, cy, r float64, n int, phi float64) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := phi + float64(i)*2*math.Pi/float64(n)
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return polygon(pts...)
}
