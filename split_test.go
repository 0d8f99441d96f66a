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
	"bytes"
	"log/slog"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// splitEdgeRun returns a run with a single LAV a, b, c, d in which both
// a-b and c-d are pieces of edge 0, the x axis from 0 to 20.
func splitEdgeRun() (*run, [4]int) {
	r := newTestRun()
	r.edges = make([]edge, 3)
	r.edges[0] = edge{
		begin: vec.Vec2{X: 0, Y: 0},
		end:   vec.Vec2{X: 20, Y: 0},
		dir:   vec.Vec2{X: 1, Y: 0},
	}

	var vs [4]int
	vs[0] = r.newVertex(vec.Vec2{X: 2, Y: 1}, 1, ray{}, 1, 0)
	vs[1] = r.newVertex(vec.Vec2{X: 6, Y: 1}, 1, ray{}, 0, 2)
	vs[2] = r.newVertex(vec.Vec2{X: 12, Y: 1}, 1, ray{}, 2, 0)
	vs[3] = r.newVertex(vec.Vec2{X: 16, Y: 1}, 1, ray{}, 0, 1)
	l := r.newLav()
	for _, v := range vs {
		r.appendVertex(l, v)
	}
	return r, vs
}

func TestFindOppositePiece(t *testing.T) {
	r, vs := splitEdgeRun()

	cases := []struct {
		p    vec.Vec2
		want int
	}{
		{vec.Vec2{X: 4, Y: 3}, vs[1]},
		{vec.Vec2{X: 14, Y: 3}, vs[3]},
		{vec.Vec2{X: 15.9, Y: 1.5}, vs[3]},
	}
	for _, c := range cases {
		if got := r.findOppositeLav(0, c.p); got != c.want {
			t.Errorf("opposite piece for %v: got %d, want %d", c.p, got, c.want)
		}
	}

	if got := r.findOppositeLav(2, vec.Vec2{X: 9, Y: 3}); got != vs[2] {
		t.Errorf("single piece: got %d, want %d", got, vs[2])
	}
	r.edges = append(r.edges, edge{})
	if got := r.findOppositeLav(3, vec.Vec2{X: 9, Y: 3}); got != -1 {
		t.Errorf("edge outside the wavefront: got %d, want -1", got)
	}
}

func TestFindOppositeAmbiguous(t *testing.T) {
	r, vs := splitEdgeRun()
	buf := &bytes.Buffer{}
	r.log = slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// x = 9 lies between the two pieces
	if got := r.findOppositeLav(0, vec.Vec2{X: 9, Y: 3}); got != vs[1] {
		t.Errorf("got %d, want %d", got, vs[1])
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"level":"WARN"`)) {
		t.Errorf("no warning logged, got %q", buf.String())
	}
}

func TestQueueSplitsLimit(t *testing.T) {
	r := newTestRun()
	r.edges = make([]edge, 1)
	v := r.newVertex(vec.Vec2{}, 0, ray{}, -1, -1)

	cands := []splitCandidate{
		{point: vec.Vec2{X: 10 + 0.5*r.eps}, distance: 10},
		{point: vec.Vec2{X: 10 + 1e-6}, distance: 10},
		{point: vec.Vec2{X: 9}, distance: 9, vertexHit: true},
	}
	r.queueSplits(v, cands, 10)

	if r.queue.Len() != 2 {
		t.Fatalf("got %d queued splits, want 2", r.queue.Len())
	}
	first := r.queue.next().(*splitEvent)
	if first.opposite != -1 {
		t.Errorf("vertex hit queued with opposite edge %d", first.opposite)
	}
	second := r.queue.next().(*splitEvent)
	if p, _ := second.position(); p.X != 10+0.5*r.eps {
		t.Errorf("wrong candidate kept: %v", p)
	}

	r.queueSplits(v, cands, -1)
	if r.queue.Len() != 3 {
		t.Errorf("got %d queued splits without limit, want 3", r.queue.Len())
	}
}
