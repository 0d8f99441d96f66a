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
	"errors"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestNormalizeOrientation(t *testing.T) {
	outer := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}} // clockwise
	hole := []vec.Vec2{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}}      // counter-clockwise

	rings, err := normalizeContours([][]vec.Vec2{outer, hole}, 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if signedArea(rings[0]) <= 0 {
		t.Error("outer contour is not counter-clockwise")
	}
	if signedArea(rings[1]) >= 0 {
		t.Error("hole is not clockwise")
	}

	// the input is not modified
	if outer[1] != (vec.Vec2{X: 0, Y: 10}) || hole[1] != (vec.Vec2{X: 7, Y: 3}) {
		t.Error("input contours were modified")
	}
}

func TestCleanRing(t *testing.T) {
	closed := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	ring, err := cleanRing(0, closed, 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if len(ring) != 3 {
		t.Errorf("closing point not removed: %v", ring)
	}

	_, err = cleanRing(2, []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, 1e-10)
	var inputErr *InputError
	if !errors.As(err, &inputErr) || inputErr.Contour != 2 {
		t.Errorf("got %v, want error for contour 2", err)
	}
	if !strings.Contains(err.Error(), "hole 1") {
		t.Errorf("error message %q does not name the hole", err)
	}
}

func TestNestedHoles(t *testing.T) {
	outer := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	big := []vec.Vec2{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}
	small := []vec.Vec2{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}}

	_, err := normalizeContours([][]vec.Vec2{outer, big, small}, 1e-10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want invalid input error", err)
	}
}

func TestPathContours(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		Close().
		MoveTo(vec.Vec2{X: 6, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 4})

	contours, err := pathContours(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
	if len(contours[0]) != 3 || len(contours[1]) != 3 {
		t.Errorf("wrong contour sizes %d, %d", len(contours[0]), len(contours[1]))
	}
	if contours[1][0] != (vec.Vec2{X: 6, Y: 2}) {
		t.Errorf("hole starts at %v", contours[1][0])
	}
}

func TestPathContoursAfterClose(t *testing.T) {
	// the second subpath has no MoveTo and starts at (0, 0)
	p := &path.Data{
		Cmds: []path.Command{
			path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
			path.CmdLineTo, path.CmdLineTo, path.CmdClose,
		},
		Coords: []vec.Vec2{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
			{X: -4, Y: 0}, {X: -4, Y: -4},
		},
	}

	contours, err := pathContours(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: -4, Y: 0}, {X: -4, Y: -4}}
	if !slices.Equal(contours[1], want) {
		t.Errorf("got %v, want %v", contours[1], want)
	}
}

func TestParseWKT(t *testing.T) {
	outer, holes, err := ParseWKT("POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,1 3,3 3,3 1,1 1))")
	if err != nil {
		t.Fatal(err)
	}
	wantOuter := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}}
	if !slices.Equal(outer, wantOuter) {
		t.Errorf("outer contour %v", outer)
	}
	if len(holes) != 1 || len(holes[0]) != 5 {
		t.Errorf("holes %v", holes)
	}

	_, _, err = ParseWKT("LINESTRING(0 0,1 1)")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want invalid input error", err)
	}
}
