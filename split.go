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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// splitCandidate is a point where the bisector of a vertex reaches the
// offset of some other edge.
type splitCandidate struct {
	point    vec.Vec2
	distance float64
	edge     int

	// vertexHit is set if the point lies on one of the bisectors bounding
	// the edge, so that the vertex meets an end point of the edge instead.
	vertexHit bool

	// parallel measures how close the edge is to being parallel to the
	// vertex edges; smaller is better.
	parallel float64
}

// computeEvents queues the events for the newly created vertex v.
func (r *run) computeEvents(v int) {
	if r.vertices[v].next == v {
		return
	}
	limit := r.closerEdgeEvent(v)
	r.queueSplits(v, r.splitCandidates(v), limit)
}

// closerEdgeEvent queues the edge event with the nearer neighbour of v, or
// both if they are equally near. It returns the distance from v to
// the queued event, or -1 if no neighbour bisector meets the bisector of v.
func (r *run) closerEdgeEvent(v int) float64 {
	vx := &r.vertices[v]
	prev, next := vx.prev, vx.next
	p := vx.point

	p1, ok1 := r.bisectorsMeet(v, next)
	p2, ok2 := r.bisectorsMeet(prev, v)
	if !ok1 && !ok2 {
		return -1
	}

	d1, d2 := math.Inf(1), math.Inf(1)
	if ok1 {
		d1 = p.Sub(p1).Length()
	}
	if ok2 {
		d2 = p.Sub(p2).Length()
	}

	if ok1 && d1-r.eps < d2 {
		r.queueEdgeEvent(p1, v, next)
	}
	if ok2 && d2-r.eps < d1 {
		r.queueEdgeEvent(p2, prev, v)
	}
	return min(d1, d2)
}

// bisectorsMeet returns the point where the bisectors of a and b meet,
// unless this is at one of the two vertices.
func (r *run) bisectorsMeet(a, b int) (vec.Vec2, bool) {
	va, vb := &r.vertices[a], &r.vertices[b]
	p, ok := intersectRays(va.bisector, vb.bisector)
	if !ok {
		return vec.Vec2{}, false
	}
	if p.Sub(va.point).Length() < r.eps || p.Sub(vb.point).Length() < r.eps {
		return vec.Vec2{}, false
	}
	return p, true
}

// queueEdgeEvent adds the edge event for the edge between prev and next.
func (r *run) queueEdgeEvent(p vec.Vec2, prev, next int) {
	e := &r.edges[r.vertices[prev].nextEdge]
	d := distanceToLine(p, e.begin, e.end)
	if d < max(r.vertices[prev].distance, r.vertices[next].distance)-r.eps {
		r.stats.Discarded++
		r.log.Debug("discarding edge event below its vertices",
			"prev", prev, "next", next, "distance", d)
		return
	}
	r.queue.add(&edgeEvent{
		eventBase: eventBase{point: p, distance: d},
		prev:      prev,
		next:      next,
	})
}

// queueSplits adds split events for the candidates of v. If limit is not
// negative, candidates further than limit from v are skipped.
func (r *run) queueSplits(v int, cands []splitCandidate, limit float64) {
	p := r.vertices[v].point
	for _, c := range cands {
		if limit >= 0 && p.Sub(c.point).Length() > limit+r.eps {
			continue
		}
		opposite := c.edge
		if c.vertexHit {
			opposite = -1
		}
		r.queue.add(&splitEvent{
			eventBase: eventBase{point: c.point, distance: c.distance},
			parent:    v,
			opposite:  opposite,
		})
	}
}

// splitCandidates lists the points where the bisector of v may hit an
// edge, sorted by distance. This only reads the run state, so that it can
// be used concurrently for different vertices.
func (r *run) splitCandidates(v int) []splitCandidate {
	vx := &r.vertices[v]
	var res []splitCandidate
	for e := range r.edges {
		if e == vx.prevEdge || e == vx.nextEdge {
			continue
		}
		if _, ok := vx.bisector.hit(r.edges[e].line, r.eps); !ok {
			continue // edge lies behind the bisector
		}
		c, ok := r.splitCandidate(v, e)
		if !ok {
			continue
		}
		if c.distance < vx.distance-r.eps {
			continue
		}
		res = append(res, c)
	}

	slices.SortStableFunc(res, func(a, b splitCandidate) int {
		if math.Abs(a.distance-b.distance) > r.eps {
			return cmp.Compare(a.distance, b.distance)
		}
		return cmp.Compare(a.parallel, b.parallel)
	})
	return res
}

// splitCandidate finds the point on the bisector of v which is equally far
// from the edges of v and from edge e.
func (r *run) splitCandidate(v, e int) (splitCandidate, bool) {
	vx := &r.vertices[v]
	oe := &r.edges[e]

	ve, parallel, ok := r.lessParallelEdge(v, e)
	if !ok {
		return splitCandidate{}, false
	}
	own := &r.edges[ve]

	corner, ok := own.line.intersect(oe.line)
	if !ok {
		return splitCandidate{}, false
	}
	axis := ray{origin: corner, dir: bisectorDirection(own.dir, oe.dir)}
	p, ok := vx.bisector.hit(axis.line(), r.eps)
	if !ok {
		return splitCandidate{}, false
	}

	if !oe.bisectorPrev.rightOf(p, r.eps) || !oe.bisectorNext.leftOf(p, r.eps) {
		return splitCandidate{}, false
	}

	return splitCandidate{
		point:     p,
		distance:  distanceToLine(p, oe.begin, oe.end),
		edge:      e,
		vertexHit: oe.bisectorPrev.leftOf(p, r.eps) || oe.bisectorNext.rightOf(p, r.eps),
		parallel:  parallel,
	}, true
}

// lessParallelEdge returns the edge of v which is less parallel to e.
// If both edges of v are parallel to e, no candidate exists.
func (r *run) lessParallelEdge(v, e int) (int, float64, bool) {
	vx := &r.vertices[v]
	dir := r.edges[e].dir
	dp := math.Abs(dir.Dot(r.edges[vx.prevEdge].dir))
	dn := math.Abs(dir.Dot(r.edges[vx.nextEdge].dir))
	if dp+dn >= 2-splitEpsilon {
		return 0, 0, false
	}
	if dp > dn {
		return vx.nextEdge, dn, true
	}
	return vx.prevEdge, dp, true
}

// findOppositeLav locates the LAV vertex which directly follows the
// wavefront edge e near the point p. Once e has been split, several pieces
// of it may survive, possibly within the same LAV. It returns -1 if edge e
// is no longer part of the wavefront.
func (r *run) findOppositeLav(e int, p vec.Vec2) int {
	var cands []int
	for _, l := range r.live {
		for v := range r.lavVertices(r.lavs[l].head) {
			if r.vertices[v].prevEdge == e {
				cands = append(cands, v)
			}
		}
	}
	switch len(cands) {
	case 0:
		return -1
	case 1:
		return cands[0]
	}

	// Several pieces of the edge survive; pick the one whose end points
	// enclose p.
	oe := &r.edges[e]
	t := oe.dir.Dot(p.Sub(oe.begin))
	for _, v := range cands {
		begin := r.vertices[r.vertices[v].prev].point
		end := r.vertices[v].point
		tb := oe.dir.Dot(begin.Sub(oe.begin))
		te := oe.dir.Dot(end.Sub(oe.begin))
		if tb < t && t < te {
			return v
		}
	}

	for _, v := range cands {
		var ring []vec.Vec2
		for w := range r.lavVertices(v) {
			ring = append(ring, r.vertices[w].point)
		}
		if insidePolygon(p, ring) {
			return v
		}
	}

	r.log.Warn("ambiguous opposite edge", "edge", e, "point", p, "candidates", len(cands))
	return cands[0]
}

