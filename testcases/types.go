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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single skeleton test.
type TestCase struct {
	Name   string     // lowercase a-z and _ only
	Path   *path.Data // outer contour, followed by the holes
	Width  int        // page width for plots
	Height int        // page height for plots
	Want   Outcome    // expected result of building the skeleton
}

// Outcome is the expected result of building the skeleton.
type Outcome interface {
	isOutcome()
}

// Valid means that the skeleton can be built.
type Valid struct {
	MaxHeight float64 // largest offset distance, or 0 if not checked
	MinSplits int     // minimal number of split and vertex events
}

func (Valid) isOutcome() {}

// Invalid means that building the skeleton fails with an input error.
type Invalid struct{}

func (Invalid) isOutcome() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// withHoles appends the holes to the outer contour p.
func withHoles(p *path.Data, holes ...*path.Data) *path.Data {
	res := &path.Data{
		Cmds:   append([]path.Command(nil), p.Cmds...),
		Coords: append([]vec.Vec2(nil), p.Coords...),
	}
	for _, h := range holes {
		res.Cmds = append(res.Cmds, h.Cmds...)
		res.Coords = append(res.Coords, h.Coords...)
	}
	return res
}

// rectangle builds an axis-aligned rectangle in counter-clockwise order.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}
