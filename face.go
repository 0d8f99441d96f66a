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

import "iter"

// faceNode is one corner of a face under construction.
type faceNode struct {
	vertex     int
	queue      int // -1 when not queued
	prev, next int
}

// faceQueue is a doubly linked list of face nodes. New nodes can only be
// added at either end. Queues with edge -1 are temporary pieces of a face
// which are not yet attached to any polygon edge.
type faceQueue struct {
	edge   int
	first  int
	size   int
	closed bool
}

func (r *run) newFaceNode(v int) int {
	r.nodes = append(r.nodes, faceNode{vertex: v, queue: -1, prev: -1, next: -1})
	return len(r.nodes) - 1
}

func (r *run) newFaceQueue(edge int) int {
	r.queues = append(r.queues, faceQueue{edge: edge, first: -1})
	return len(r.queues) - 1
}

func (r *run) isEndNode(n int) bool {
	nd := &r.nodes[n]
	return nd.prev < 0 || nd.next < 0
}

// addFirst inserts the unqueued node n at the start of queue q.
func (r *run) addFirst(q, n int) {
	r.checkPushable(q, n)
	fq := &r.queues[q]
	nd := &r.nodes[n]
	nd.queue = q
	nd.next = fq.first
	if fq.first >= 0 {
		r.nodes[fq.first].prev = n
	}
	fq.first = n
	fq.size++
}

// push attaches the unqueued node n to the queue of node, next to node.
// Node must be at one end of its queue.
func (r *run) push(node, n int) {
	q := r.nodes[node].queue
	if q < 0 {
		r.fail("face-queue", "face node %d is not queued", node)
	}
	r.checkPushable(q, n)
	if !r.isEndNode(node) {
		r.fail("face-queue", "face node %d is not at the end of its face", node)
	}

	nd := &r.nodes[node]
	nn := &r.nodes[n]
	nn.queue = q
	if nd.next < 0 {
		nn.prev = node
		nd.next = n
	} else {
		nn.next = node
		nd.prev = n
		r.queues[q].first = n
	}
	r.queues[q].size++
}

func (r *run) checkPushable(q, n int) {
	if r.queues[q].closed {
		r.fail("face-closed", "face of edge %d is already closed", r.queues[q].edge)
	}
	if r.nodes[n].queue >= 0 {
		r.fail("face-queue", "face node %d is already queued", n)
	}
}

// pop removes the end node n from its queue and returns the node which was
// adjacent to it, or -1 if the queue is now empty.
func (r *run) pop(n int) int {
	nd := &r.nodes[n]
	q := nd.queue
	if q < 0 || !r.isEndNode(n) {
		r.fail("face-queue", "face node %d is not the end of a face", n)
	}
	fq := &r.queues[q]

	neighbour := -1
	switch {
	case nd.next >= 0:
		neighbour = nd.next
		r.nodes[neighbour].prev = -1
	case nd.prev >= 0:
		neighbour = nd.prev
		r.nodes[neighbour].next = -1
	}
	if fq.first == n {
		fq.first = neighbour
	}
	fq.size--
	nd.queue, nd.prev, nd.next = -1, -1, -1
	return neighbour
}

// moveQueue moves all nodes of the queue containing other onto the end of
// the queue at node. Both nodes must be ends of their queues.
func (r *run) moveQueue(node, other int) {
	if r.nodes[node].queue == r.nodes[other].queue {
		return
	}
	cur := node
	for other >= 0 {
		after := r.pop(other)
		r.push(cur, other)
		cur = other
		other = after
	}
}

// connect joins the faces ending at nodes a and b.
//
// If both nodes belong to the same face, the face is closed. Otherwise the
// temporary face is merged into the one attached to a polygon edge.
func (r *run) connect(a, b int) {
	qa, qb := r.nodes[a].queue, r.nodes[b].queue
	if qa < 0 || qb < 0 {
		r.fail("face-queue", "cannot connect unqueued face nodes %d and %d", a, b)
	}

	if qa == qb {
		if !r.isEndNode(a) || !r.isEndNode(b) {
			r.fail("face-queue", "face nodes %d and %d are not face ends", a, b)
		}
		if r.queues[qa].edge < 0 {
			r.fail("face-unconnected", "closing a face which has no polygon edge")
		}
		r.queues[qa].closed = true
		return
	}

	edgeA := r.queues[qa].edge >= 0
	edgeB := r.queues[qb].edge >= 0
	switch {
	case edgeA && edgeB:
		r.fail("face-connect", "faces of edges %d and %d would be joined",
			r.queues[qa].edge, r.queues[qb].edge)
	case edgeA:
		r.moveQueue(a, b)
		r.queues[qb].closed = true
	default:
		r.moveQueue(b, a)
		r.queues[qa].closed = true
	}
}

// queueNodes iterates over the nodes of queue q, from one end to the other.
func (r *run) queueNodes(q int) iter.Seq[int] {
	return func(yield func(int) bool) {
		n := r.queues[q].first
		if n < 0 {
			return
		}
		for r.nodes[n].prev >= 0 {
			n = r.nodes[n].prev
		}
		for ; n >= 0; n = r.nodes[n].next {
			if !yield(n) {
				return
			}
		}
	}
}

// addFaceLeft continues the face of the previous edge of va at the new
// vertex nv.
func (r *run) addFaceLeft(nv, va int) {
	n := r.newFaceNode(nv)
	r.push(r.vertices[va].leftFace, n)
	r.vertices[nv].leftFace = n
}

// addFaceRight continues the face of the next edge of vb at the new vertex
// nv.
func (r *run) addFaceRight(nv, vb int) {
	n := r.newFaceNode(nv)
	r.push(r.vertices[vb].rightFace, n)
	r.vertices[nv].rightFace = n
}

// addFaceBack closes the face of the collapsed edge between va and vb at the
// vertex nv.
func (r *run) addFaceBack(nv, va, vb int) {
	n := r.newFaceNode(nv)
	r.push(r.vertices[va].rightFace, n)
	r.connect(n, r.vertices[vb].leftFace)
}

// splitFaceNode creates a face-only vertex at the position of nv, together
// with a temporary face holding it. The returned node is shared by the two
// new vertices which continue the face of an edge that was split in two.
func (r *run) splitFaceNode(nv int) int {
	src := r.vertices[nv]
	v := r.newVertex(src.point, src.distance, src.bisector, src.prevEdge, src.nextEdge)
	r.vertices[v].processed = true

	n := r.newFaceNode(v)
	r.addFirst(r.newFaceQueue(-1), n)
	r.vertices[v].leftFace = n
	r.vertices[v].rightFace = n
	return n
}
