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
	"container/heap"

	"seehuhn.de/go/geom/vec"
)

// event is one of *edgeEvent, *splitEvent, *multiEdgeEvent, *pickEvent or
// *multiSplitEvent. Only edge and split events are ever queued; the other
// kinds are formed when the events of one level are grouped.
type event interface {
	position() (vec.Vec2, float64)

	// obsolete reports whether any vertex the event refers to has been
	// consumed by an earlier event.
	obsolete(vs []vertex) bool
}

type eventBase struct {
	point    vec.Vec2
	distance float64
}

func (e *eventBase) position() (vec.Vec2, float64) {
	return e.point, e.distance
}

// edgeEvent records that the edge between prev and next shrinks to a point.
type edgeEvent struct {
	eventBase
	prev, next int
}

func (e *edgeEvent) obsolete(vs []vertex) bool {
	return vs[e.prev].processed || vs[e.next].processed
}

// splitEvent records that the bisector of parent hits the opposite edge.
// For a vertex event, where the bisector hits the end point of an edge,
// opposite is -1.
type splitEvent struct {
	eventBase
	parent   int
	opposite int
}

func (e *splitEvent) obsolete(vs []vertex) bool {
	return vs[e.parent].processed
}

func (e *splitEvent) isVertexEvent() bool {
	return e.opposite < 0
}

// multiEdgeEvent collapses an open chain of adjacent edges to one point.
type multiEdgeEvent struct {
	eventBase
	chain *chain
}

func (e *multiEdgeEvent) obsolete(vs []vertex) bool {
	return e.chain.obsolete(vs)
}

// pickEvent collapses a whole LAV to a single point.
type pickEvent struct {
	eventBase
	chain *chain
}

func (e *pickEvent) obsolete(vs []vertex) bool {
	return e.chain.obsolete(vs)
}

// multiSplitEvent handles several chains meeting at one point, at least one
// of which splits the wavefront.
type multiSplitEvent struct {
	eventBase
	chains []*chain
}

func (e *multiSplitEvent) obsolete(vs []vertex) bool {
	for _, c := range e.chains {
		if c.obsolete(vs) {
			return true
		}
	}
	return false
}

// eventQueue is a min-heap of events ordered by distance. Events with equal
// distance are returned in insertion order.
type eventQueue struct {
	items []queueItem
	seq   uint64
}

type queueItem struct {
	ev       event
	distance float64
	seq      uint64
}

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	a, b := &q.items[i], &q.items[j]
	if a.distance != b.distance {
		return a.distance < b.distance
	}
	return a.seq < b.seq
}

func (q *eventQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *eventQueue) Push(x any) {
	q.items = append(q.items, x.(queueItem))
}

func (q *eventQueue) Pop() any {
	n := len(q.items) - 1
	it := q.items[n]
	q.items[n] = queueItem{}
	q.items = q.items[:n]
	return it
}

// add inserts ev into the queue.
func (q *eventQueue) add(ev event) {
	_, d := ev.position()
	q.seq++
	heap.Push(q, queueItem{ev: ev, distance: d, seq: q.seq})
}

// next removes and returns the event with the smallest distance.
func (q *eventQueue) next() event {
	return heap.Pop(q).(queueItem).ev
}

// peek returns the distance of the next event without removing it.
func (q *eventQueue) peek() (float64, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0].distance, true
}
