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

package skeleton

import (
	"fmt"
	"math"
	"slices"

	"github.com/peterstace/simplefeatures/geom"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// normalizeContours checks the input contours and brings them into the
// orientation required by the simulation: counter-clockwise for the outer
// contour, clockwise for the holes.
func normalizeContours(contours [][]vec.Vec2, eps float64) ([][]vec.Vec2, error) {
	rings := make([][]vec.Vec2, len(contours))
	for i, c := range contours {
		ring, err := cleanRing(i, c, eps)
		if err != nil {
			return nil, err
		}
		if ccw := signedArea(ring) > 0; ccw != (i == 0) {
			slices.Reverse(ring)
		}
		rings[i] = ring
	}

	if err := checkSimple(rings); err != nil {
		return nil, &InputError{Contour: -1, Reason: "not a valid polygon", Err: err}
	}

	// Rings do not cross, so one point decides containment.
	for i, hole := range rings[1:] {
		if !insidePolygon(hole[0], rings[0]) {
			return nil, &InputError{Contour: i + 1, Reason: "hole is outside the outer contour"}
		}
		for j, other := range rings[1:] {
			if j != i && insidePolygon(hole[0], other) {
				return nil, &InputError{Contour: i + 1, Reason: fmt.Sprintf("hole is inside hole %d", j)}
			}
		}
	}
	return rings, nil
}

// cleanRing returns a copy of the contour c, with a closing point removed.
func cleanRing(i int, c []vec.Vec2, eps float64) ([]vec.Vec2, error) {
	ring := slices.Clone(c)
	if n := len(ring); n > 1 && ring[0].Sub(ring[n-1]).Length() < eps {
		ring = ring[:n-1]
	}

	n := len(ring)
	if n < 3 {
		return nil, &InputError{
			Contour: i,
			Reason:  fmt.Sprintf("%d distinct points, need at least 3", n),
		}
	}
	for k, p := range ring {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, &InputError{Contour: i, Reason: fmt.Sprintf("point %d is not finite", k)}
		}
		if p.Sub(ring[(k+1)%n]).Length() < eps {
			return nil, &InputError{Contour: i, Reason: fmt.Sprintf("points %d and %d coincide", k, (k+1)%n)}
		}
	}
	if math.Abs(signedArea(ring)) < eps {
		return nil, &InputError{Contour: i, Reason: "contour has zero area"}
	}
	return ring, nil
}

// checkSimple verifies that the rings form a valid polygon: all rings are
// simple, the holes lie inside the outer contour and no two rings cross.
func checkSimple(rings [][]vec.Vec2) error {
	lss := make([]geom.LineString, len(rings))
	for i, ring := range rings {
		coords := make([]float64, 0, 2*len(ring)+2)
		for _, p := range ring {
			coords = append(coords, p.X, p.Y)
		}
		coords = append(coords, ring[0].X, ring[0].Y)
		ls, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
		if err != nil {
			return err
		}
		lss[i] = ls
	}
	_, err := geom.NewPolygonFromRings(lss)
	return err
}

// pathContours extracts the contours of a polygon from a path. Every
// subpath forms one contour.
func pathContours(p *path.Data) ([][]vec.Vec2, error) {
	var contours [][]vec.Vec2
	var cur []vec.Vec2
	var start vec.Vec2 // start point of the current subpath
	haveStart := false
	flush := func() {
		if len(cur) > 0 {
			contours = append(contours, cur)
			cur = nil
		}
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			start, haveStart = p.Coords[coordIdx], true
			cur = append(cur, start)
			coordIdx++

		case path.CmdLineTo:
			if len(cur) == 0 && haveStart {
				// A segment after ClosePath starts where the closed
				// subpath started.
				cur = append(cur, start)
			}
			cur = append(cur, p.Coords[coordIdx])
			coordIdx++

		case path.CmdQuadTo, path.CmdCubeTo:
			return nil, &InputError{
				Contour: len(contours),
				Reason:  "curved path segments are not supported",
			}

		case path.CmdClose:
			flush()
		}
	}
	flush()

	if len(contours) == 0 {
		return nil, &InputError{Contour: 0, Reason: "empty path"}
	}
	return contours, nil
}

// ParseWKT reads a polygon in WKT format, for example
//
//	POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,1 3,3 3,3 1,1 1))
//
// and returns its outer contour and holes.
func ParseWKT(wkt string) (outer []vec.Vec2, holes [][]vec.Vec2, err error) {
	g, err := geom.UnmarshalWKT(wkt)
	if err != nil {
		return nil, nil, &InputError{Contour: -1, Reason: "cannot parse WKT", Err: err}
	}
	if !g.IsPolygon() {
		return nil, nil, &InputError{
			Contour: -1,
			Reason:  fmt.Sprintf("expected a POLYGON, got %s", g.Type()),
		}
	}
	poly := g.AsPolygon()
	if poly.IsEmpty() {
		return nil, nil, &InputError{Contour: 0, Reason: "empty polygon"}
	}

	outer = ringPoints(poly.ExteriorRing())
	for i := range poly.NumInteriorRings() {
		holes = append(holes, ringPoints(poly.InteriorRingN(i)))
	}
	return outer, holes, nil
}

func ringPoints(ls geom.LineString) []vec.Vec2 {
	seq := ls.Coordinates()
	n := seq.Length()
	res := make([]vec.Vec2, n)
	for i := range n {
		xy := seq.GetXY(i)
		res[i] = vec.Vec2{X: xy.X, Y: xy.Y}
	}
	return res
}
