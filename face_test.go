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
	"slices"
	"testing"
)

func faceNodes(r *run, n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = r.newFaceNode(i)
	}
	return res
}

func TestFaceQueuePush(t *testing.T) {
	r := newTestRun()
	addVertices(r, 4)
	ns := faceNodes(r, 4)
	q := r.newFaceQueue(0)

	r.addFirst(q, ns[0])
	r.push(ns[0], ns[1]) // appended
	r.push(ns[0], ns[2]) // prepended, since ns[0] is now the first node

	got := slices.Collect(r.queueNodes(q))
	if want := []int{ns[2], ns[0], ns[1]}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if r.queues[q].size != 3 {
		t.Errorf("size %d, want 3", r.queues[q].size)
	}

	expectFailure(t, "face-queue", func() { r.push(ns[0], ns[3]) })
	expectFailure(t, "face-queue", func() { r.push(ns[2], ns[1]) })

	if nb := r.pop(ns[1]); nb != ns[0] {
		t.Errorf("pop returned %d, want %d", nb, ns[0])
	}
	if nb := r.pop(ns[2]); nb != ns[0] {
		t.Errorf("pop returned %d, want %d", nb, ns[0])
	}
	if r.queues[q].first != ns[0] {
		t.Errorf("first node is %d, want %d", r.queues[q].first, ns[0])
	}
	if nb := r.pop(ns[0]); nb != -1 {
		t.Errorf("pop of last node returned %d", nb)
	}
	if r.queues[q].size != 0 || r.queues[q].first != -1 {
		t.Error("queue not empty")
	}
}

func TestFaceClose(t *testing.T) {
	r := newTestRun()
	addVertices(r, 4)
	ns := faceNodes(r, 4)
	q := r.newFaceQueue(0)
	r.addFirst(q, ns[0])
	r.push(ns[0], ns[1])
	r.push(ns[1], ns[2])

	expectFailure(t, "face-queue", func() { r.connect(ns[0], ns[1]) })

	r.connect(ns[0], ns[2])
	if !r.queues[q].closed {
		t.Fatal("face is not closed")
	}
	expectFailure(t, "face-closed", func() { r.push(ns[2], ns[3]) })
}

func TestFaceConnectTemporary(t *testing.T) {
	r := newTestRun()
	addVertices(r, 4)
	ns := faceNodes(r, 4)

	q := r.newFaceQueue(0)
	r.addFirst(q, ns[0])
	r.push(ns[0], ns[1])

	tmp := r.newFaceQueue(-1)
	r.addFirst(tmp, ns[2])
	r.push(ns[2], ns[3])

	// the temporary face is attached to the edge face, whichever side
	// is given first
	r.connect(ns[2], ns[1])

	got := slices.Collect(r.queueNodes(q))
	if want := []int{ns[0], ns[1], ns[2], ns[3]}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !r.queues[tmp].closed || r.queues[tmp].size != 0 {
		t.Error("temporary face not used up")
	}
	if r.queues[q].closed {
		t.Error("edge face closed early")
	}
}

func TestFaceConnectErrors(t *testing.T) {
	r := newTestRun()
	addVertices(r, 4)
	ns := faceNodes(r, 4)

	a := r.newFaceQueue(0)
	b := r.newFaceQueue(1)
	r.addFirst(a, ns[0])
	r.addFirst(b, ns[1])
	expectFailure(t, "face-connect", func() { r.connect(ns[0], ns[1]) })

	tmp := r.newFaceQueue(-1)
	r.addFirst(tmp, ns[2])
	r.push(ns[2], ns[3])
	expectFailure(t, "face-unconnected", func() { r.connect(ns[2], ns[3]) })
}

func TestSplitFaceNode(t *testing.T) {
	r := newTestRun()
	vs := addVertices(r, 1)
	n := r.splitFaceNode(vs[0])

	v := r.nodes[n].vertex
	if v == vs[0] {
		t.Fatal("face node reuses the wavefront vertex")
	}
	vx := r.vertices[v]
	if !vx.processed {
		t.Error("face-only vertex is not processed")
	}
	if vx.leftFace != n || vx.rightFace != n {
		t.Error("face-only vertex does not use the shared node on both sides")
	}
	if vx.point != r.vertices[vs[0]].point {
		t.Error("face-only vertex at wrong position")
	}
	q := r.nodes[n].queue
	if r.queues[q].edge != -1 || r.queues[q].size != 1 {
		t.Errorf("unexpected queue %+v", r.queues[q])
	}
}
