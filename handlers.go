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

// antiParallelLimit is the dot product of edge directions below which the
// bisector of a vertex created by a split is checked against the positions
// of its neighbours.
const antiParallelLimit = -0.97

// dispatch applies a resolved event to the wavefront.
func (r *run) dispatch(ev event) {
	switch e := ev.(type) {
	case *edgeEvent:
		r.stats.EdgeEvents++
		r.collapseEdges(e.point, e.distance, []*edgeEvent{e})
	case *multiEdgeEvent:
		r.stats.MultiEdgeEvents++
		r.collapseEdges(e.point, e.distance, e.chain.edges)
	case *pickEvent:
		r.stats.PickEvents++
		r.pick(e.point, e.distance, e.chain)
	case *splitEvent:
		if e.isVertexEvent() {
			r.stats.VertexEvents++
		} else {
			r.stats.SplitEvents++
		}
		r.split(e.point, e.distance, []*chain{{kind: chainSplit, split: e}})
	case *multiSplitEvent:
		r.stats.MultiSplitEvents++
		r.split(e.point, e.distance, e.chains)
	default:
		r.fail("event-kind", "unexpected event %T", ev)
	}
}

// collapseEdges handles a run of adjacent edges which shrink to the point
// p. The vertices of the run are replaced by a single new vertex.
func (r *run) collapseEdges(p vec.Vec2, distance float64, edges []*edgeEvent) {
	c := &chain{kind: chainEdge, edges: edges}
	first, last := c.first(), c.last()
	verts := c.vertices()
	for _, v := range verts {
		r.consume(v)
	}

	pe := r.vertices[first].prevEdge
	ne := r.vertices[last].nextEdge
	bis := ray{origin: p, dir: bisectorDirection(r.edges[pe].dir, r.edges[ne].dir)}
	nv := r.newVertex(p, distance, bis, pe, ne, verts...)

	r.addFaceLeft(nv, first)
	r.addFaceRight(nv, last)
	r.insertBefore(first, nv)
	for _, e := range edges {
		r.addFaceBack(nv, e.prev, e.next)
	}
	for _, v := range verts {
		r.detach(v)
		r.addRidge(v, nv)
	}

	r.computeEvents(nv)
}

// pick handles an edge chain which consumes a whole LAV. All faces of the
// LAV are closed at p and no new wavefront vertex is created.
func (r *run) pick(p vec.Vec2, distance float64, c *chain) {
	verts := c.vertices()
	for _, v := range verts {
		r.consume(v)
	}

	peak := r.newVertex(p, distance, ray{origin: p}, -1, -1, verts...)
	r.vertices[peak].processed = true

	for _, e := range c.edges {
		r.addFaceBack(peak, e.prev, e.next)
	}
	if c.kind == chainEdge {
		// close the edge whose event was not part of the chain
		r.addFaceBack(peak, c.last(), c.first())
	}
	for _, v := range verts {
		r.detach(v)
		r.addRidge(v, peak)
	}
}

// split handles a group of chains which meet at p, at least one of which
// splits the wavefront. One new vertex is created between every pair of
// consecutive chains, in the cyclic order around p.
func (r *run) split(p vec.Vec2, distance float64, chains []*chain) {
	chains = r.addOpposites(chains, p)
	if len(chains) == 0 {
		return
	}

	slices.SortStableFunc(chains, func(a, b *chain) int {
		return cmp.Compare(r.chainAngle(a, p), r.chainAngle(b, p))
	})

	var consumed []int
	for _, c := range chains {
		for _, v := range c.vertices() {
			if !slices.Contains(consumed, v) {
				consumed = append(consumed, v)
			}
		}
	}
	for _, v := range consumed {
		r.consume(v)
	}

	shared := make(map[*chain]int)
	var created []int
	n := len(chains)
	for i := range n {
		begin, end := chains[i], chains[(i+1)%n]

		ne := begin.nextEdge(r.vertices)
		pe := end.prevEdge(r.vertices)
		bis := ray{origin: p, dir: bisectorDirection(r.edges[pe].dir, r.edges[ne].dir)}
		nv := r.newVertex(p, distance, bis, pe, ne, consumed...)
		created = append(created, nv)

		beginNext := begin.outerNext(r.vertices)
		endPrev := end.outerPrev(r.vertices)
		r.correctBisector(nv, beginNext, endPrev)

		if r.sameLav(beginNext, endPrev) {
			part := r.cutLavPart(beginNext, endPrev)
			l := r.newLav()
			r.appendVertex(l, nv)
			for _, v := range part {
				r.appendVertex(l, v)
			}
		} else {
			r.mergeBefore(beginNext, endPrev)
			r.insertAfter(endPrev, nv)
		}

		r.computeEvents(nv)
		r.splitFaces(shared, begin, end, nv)
	}

	// Edge chains which are part of the group collapse at p.
	back := -1
	for _, c := range chains {
		if c.kind != chainEdge {
			continue
		}
		if back < 0 {
			back = r.newVertex(p, distance, ray{origin: p}, -1, -1, consumed...)
			r.vertices[back].processed = true
		}
		for _, e := range c.edges {
			r.addFaceBack(back, e.prev, e.next)
		}
	}

	for _, v := range consumed {
		r.detach(v)
		r.addRidge(v, created[0])
	}
}

// addOpposites adds a chain for every edge hit by a split event in chains.
// Split chains whose opposite edge is no longer part of the wavefront are
// dropped.
func (r *run) addOpposites(chains []*chain, p vec.Vec2) []*chain {
	var res, opposites []*chain
	seen := make(map[int]bool)
	for _, c := range chains {
		if c.kind == chainSplit && !c.split.isVertexEvent() && !seen[c.split.opposite] {
			e := c.split.opposite
			next := r.findOppositeLav(e, p)
			if next < 0 {
				r.stats.Discarded++
				r.log.Debug("opposite edge has collapsed",
					"vertex", c.split.parent, "edge", e)
				continue
			}
			seen[e] = true
			opposites = append(opposites, &chain{
				kind:     chainOpposite,
				opposite: e,
				oppPrev:  r.vertices[next].prev,
				oppNext:  next,
			})
		}
		res = append(res, c)
	}
	return append(res, opposites...)
}

// chainAngle gives the direction from p to the start of the edge entering
// the chain.
func (r *run) chainAngle(c *chain, p vec.Vec2) float64 {
	d := r.edges[c.prevEdge(r.vertices)].begin.Sub(p)
	return math.Atan2(d.Y, d.X)
}

// correctBisector flips the bisector of the new vertex nv if it lies
// between two nearly anti-parallel edges and points away from the path
// through its neighbours.
func (r *run) correctBisector(nv, beginNext, endPrev int) {
	vx := &r.vertices[nv]
	if r.vertices[beginNext].prevEdge != vx.nextEdge || r.vertices[endPrev].nextEdge != vx.prevEdge {
		r.fail("lav-edges", "neighbours %d and %d of new vertex %d do not share its edges",
			endPrev, beginNext, nv)
	}
	if r.edges[vx.nextEdge].dir.Dot(r.edges[vx.prevEdge].dir) >= antiParallelLimit {
		return
	}

	n1 := vx.point.Sub(r.vertices[endPrev].point)
	n2 := r.vertices[beginNext].point.Sub(vx.point)
	if n1.Length() < r.eps || n2.Length() < r.eps {
		return
	}
	predicted := bisectorDirection(normalize(n1), normalize(n2))
	if vx.bisector.dir.Dot(predicted) < 0 {
		vx.bisector.dir = vx.bisector.dir.Mul(-1)
	}
}

// splitFaces continues the faces on both sides of the new vertex nv, which
// lies between the chains begin and end.
//
// A chain for an opposite edge stands for an edge which is cut in two. The
// two new vertices next to such a chain share a single face node, kept in
// shared, which later joins the face of the edge.
func (r *run) splitFaces(shared map[*chain]int, begin, end *chain, nv int) {
	if begin.kind == chainOpposite {
		r.vertices[nv].rightFace = r.sharedFaceNode(shared, begin, nv)
	} else {
		r.addFaceRight(nv, begin.last())
	}

	if end.kind == chainOpposite {
		r.vertices[nv].leftFace = r.sharedFaceNode(shared, end, nv)
	} else {
		r.addFaceLeft(nv, end.first())
	}
}

func (r *run) sharedFaceNode(shared map[*chain]int, c *chain, nv int) int {
	if n, ok := shared[c]; ok {
		return n
	}
	n := r.splitFaceNode(nv)
	shared[c] = n
	return n
}

// collapseSmallLavs removes all LAVs with two vertices. The two vertices
// are joined by a ridge and the faces between them are closed.
func (r *run) collapseSmallLavs() {
	for _, l := range slices.Clone(r.live) {
		switch r.lavs[l].size {
		case 1:
			r.fail("lav-size", "LAV %d has a single vertex", l)
		case 2:
			a := r.lavs[l].head
			b := r.vertices[a].next
			r.connect(r.vertices[a].leftFace, r.vertices[b].rightFace)
			r.connect(r.vertices[a].rightFace, r.vertices[b].leftFace)
			r.consume(a)
			r.consume(b)
			if r.vertices[a].distance > r.vertices[b].distance {
				a, b = b, a
			}
			r.addRidge(a, b)
			r.detach(a)
			r.detach(b)
			r.stats.Collapsed++
		}
	}
}
