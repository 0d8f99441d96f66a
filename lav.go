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
	"iter"

	"seehuhn.de/go/geom/vec"
)

// edge is one original polygon edge, directed so that the polygon interior
// lies to its left.
type edge struct {
	begin, end vec.Vec2
	dir        vec.Vec2 // unit vector from begin to end
	line       line

	// bisectorPrev and bisectorNext are the bisectors at the two original
	// endpoints. Together they bound the region swept by the edge.
	bisectorPrev ray
	bisectorNext ray

	contour, index int
}

// vertex is a wavefront vertex. Vertices are stored in the vertices slice of
// a run and referred to by their index, which serves as the vertex id.
type vertex struct {
	point    vec.Vec2
	distance float64
	bisector ray

	prevEdge, nextEdge int // -1 for vertices which are not part of a LAV

	// leftFace and rightFace are the face nodes which currently end the
	// faces of prevEdge and nextEdge at this vertex.
	leftFace, rightFace int

	processed bool

	lav        int // -1 when detached
	prev, next int
}

// lav is a circular list of active vertices, forming one closed component
// of the wavefront.
type lav struct {
	head int // -1 for an empty LAV
	size int
}

// newVertex adds a vertex to the arena and returns its index.
// The distance is raised, if necessary, to the largest distance of any of
// the given parents, so that heights never decrease along the skeleton.
func (r *run) newVertex(p vec.Vec2, distance float64, bisector ray, prevEdge, nextEdge int, parents ...int) int {
	for _, v := range parents {
		distance = max(distance, r.vertices[v].distance)
	}
	r.vertices = append(r.vertices, vertex{
		point:     p,
		distance:  distance,
		bisector:  bisector,
		prevEdge:  prevEdge,
		nextEdge:  nextEdge,
		leftFace:  -1,
		rightFace: -1,
		lav:       -1,
		prev:      -1,
		next:      -1,
	})
	return len(r.vertices) - 1
}

// newLav creates an empty LAV and adds it to the live set.
func (r *run) newLav() int {
	r.lavs = append(r.lavs, lav{head: -1})
	l := len(r.lavs) - 1
	r.live = append(r.live, l)
	return l
}

// appendVertex adds the detached vertex v at the end of LAV l.
func (r *run) appendVertex(l, v int) {
	if r.lavs[l].head < 0 {
		if r.vertices[v].lav >= 0 {
			r.fail("lav-membership", "vertex %d is already in LAV %d", v, r.vertices[v].lav)
		}
		vx := &r.vertices[v]
		vx.lav = l
		vx.prev = v
		vx.next = v
		r.lavs[l].head = v
		r.lavs[l].size = 1
		return
	}
	r.insertBefore(r.lavs[l].head, v)
}

// insertAfter links the detached vertex v into the LAV of node, directly
// after node.
func (r *run) insertAfter(node, v int) {
	n := &r.vertices[node]
	nv := &r.vertices[v]
	if n.lav < 0 {
		r.fail("lav-membership", "vertex %d is not in a LAV", node)
	}
	if nv.lav >= 0 {
		r.fail("lav-membership", "vertex %d is already in LAV %d", v, nv.lav)
	}
	nv.lav = n.lav
	nv.prev = node
	nv.next = n.next
	r.vertices[n.next].prev = v
	n.next = v
	r.lavs[n.lav].size++
}

// insertBefore links the detached vertex v into the LAV of node, directly
// before node.
func (r *run) insertBefore(node, v int) {
	if r.vertices[node].lav < 0 {
		r.fail("lav-membership", "vertex %d is not in a LAV", node)
	}
	r.insertAfter(r.vertices[node].prev, v)
}

// detach removes v from its LAV. A LAV which becomes empty is removed from
// the live set.
func (r *run) detach(v int) {
	vx := &r.vertices[v]
	l := vx.lav
	if l < 0 {
		return
	}
	lv := &r.lavs[l]
	if lv.size == 1 {
		lv.head = -1
	} else {
		r.vertices[vx.prev].next = vx.next
		r.vertices[vx.next].prev = vx.prev
		if lv.head == v {
			lv.head = vx.next
		}
	}
	lv.size--
	vx.lav, vx.prev, vx.next = -1, -1, -1

	if lv.size == 0 {
		r.dropLav(l)
	}
}

func (r *run) dropLav(l int) {
	for i, k := range r.live {
		if k == l {
			r.live = append(r.live[:i], r.live[i+1:]...)
			return
		}
	}
}

// lavVertices iterates once around the LAV containing v, starting at v.
// The LAV must not be modified during iteration.
func (r *run) lavVertices(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if v < 0 || r.vertices[v].lav < 0 {
			return
		}
		n := r.lavs[r.vertices[v].lav].size
		for range n {
			if !yield(v) {
				return
			}
			v = r.vertices[v].next
		}
	}
}

func (r *run) sameLav(a, b int) bool {
	la := r.vertices[a].lav
	return la >= 0 && la == r.vertices[b].lav
}

// cutLavPart detaches the vertices from start up to and including end,
// walking forward, and returns them in order. At least one vertex always
// remains in the original LAV.
func (r *run) cutLavPart(start, end int) []int {
	l := r.vertices[start].lav
	if l < 0 {
		r.fail("lav-membership", "vertex %d is not in a LAV", start)
	}
	size := r.lavs[l].size
	var part []int
	cur := start
	for range size - 1 {
		next := r.vertices[cur].next
		r.detach(cur)
		part = append(part, cur)
		if cur == end {
			return part
		}
		cur = next
	}
	r.fail("lav-cut", "vertex %d does not follow vertex %d in its LAV", end, start)
	return nil
}

// mergeBefore moves every vertex of the LAV containing merged into the LAV
// of base, directly before base. The vertex after merged is moved first and
// merged itself last, so that merged ends up next to base.
func (r *run) mergeBefore(base, merged int) {
	l := r.vertices[merged].lav
	if l < 0 || l == r.vertices[base].lav {
		r.fail("lav-merge", "cannot merge LAV of vertex %d into LAV of vertex %d", merged, base)
	}
	size := r.lavs[l].size
	for range size {
		v := r.vertices[merged].next
		r.detach(v)
		r.insertBefore(base, v)
	}
}
