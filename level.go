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

	"github.com/peterstace/simplefeatures/rtree"
	"seehuhn.de/go/geom/vec"
)

type chainKind uint8

const (
	chainEdge       chainKind = iota // open run of adjacent edge events
	chainClosedEdge                  // edge events covering a whole LAV
	chainSplit                       // a single split or vertex event
	chainOpposite                    // the edge hit by a split event
)

// chain is a group of events of one level which act on one contiguous piece
// of the wavefront.
type chain struct {
	kind chainKind

	edges []*edgeEvent // chainEdge and chainClosedEdge
	split *splitEvent  // chainSplit

	// For chainOpposite: the edge which is hit, and the LAV neighbours
	// around it at the time the chain was formed.
	opposite         int
	oppPrev, oppNext int
}

func (c *chain) obsolete(vs []vertex) bool {
	switch c.kind {
	case chainEdge, chainClosedEdge:
		for _, e := range c.edges {
			if e.obsolete(vs) {
				return true
			}
		}
	case chainSplit:
		return c.split.obsolete(vs)
	}
	return false
}

// first returns the first vertex consumed by the chain, -1 for opposite
// chains.
func (c *chain) first() int {
	switch c.kind {
	case chainEdge, chainClosedEdge:
		return c.edges[0].prev
	case chainSplit:
		return c.split.parent
	}
	return -1
}

// last returns the last vertex consumed by the chain, -1 for opposite
// chains.
func (c *chain) last() int {
	switch c.kind {
	case chainEdge, chainClosedEdge:
		return c.edges[len(c.edges)-1].next
	case chainSplit:
		return c.split.parent
	}
	return -1
}

// vertices lists the vertices consumed by the chain, without repetitions.
func (c *chain) vertices() []int {
	switch c.kind {
	case chainEdge, chainClosedEdge:
		res := make([]int, 0, len(c.edges)+1)
		res = append(res, c.edges[0].prev)
		for _, e := range c.edges {
			if !slices.Contains(res, e.next) {
				res = append(res, e.next)
			}
		}
		return res
	case chainSplit:
		return []int{c.split.parent}
	}
	return nil
}

// prevEdge returns the wavefront edge entering the chain.
func (c *chain) prevEdge(vs []vertex) int {
	if c.kind == chainOpposite {
		return c.opposite
	}
	return vs[c.first()].prevEdge
}

// nextEdge returns the wavefront edge leaving the chain.
func (c *chain) nextEdge(vs []vertex) int {
	if c.kind == chainOpposite {
		return c.opposite
	}
	return vs[c.last()].nextEdge
}

// outerPrev returns the LAV vertex directly before the chain.
func (c *chain) outerPrev(vs []vertex) int {
	if c.kind == chainOpposite {
		return c.oppPrev
	}
	return vs[c.first()].prev
}

// outerNext returns the LAV vertex directly after the chain.
func (c *chain) outerNext(vs []vertex) int {
	if c.kind == chainOpposite {
		return c.oppNext
	}
	return vs[c.last()].next
}

// loadLevel removes all events from the queue which happen at the distance
// of the first non-obsolete event, up to eps. Obsolete events are dropped.
func (r *run) loadLevel() ([]event, float64) {
	var start event
	for r.queue.Len() > 0 {
		ev := r.queue.next()
		if !ev.obsolete(r.vertices) {
			start = ev
			break
		}
		r.stats.Obsolete++
	}
	if start == nil {
		return nil, 0
	}

	_, level := start.position()
	level0 := level
	res := []event{start}
	for {
		d, ok := r.queue.peek()
		if !ok || d-level0 >= r.eps {
			break
		}
		ev := r.queue.next()
		if ev.obsolete(r.vertices) {
			r.stats.Obsolete++
			continue
		}
		res = append(res, ev)
		level = max(level, d)
	}
	return res, level
}

// groupLevel partitions the events of one level into clusters of events
// which happen at the same point or share a vertex, and turns every cluster
// into a single resolved event.
func (r *run) groupLevel(events []event) []event {
	var tree rtree.RTree
	for i, ev := range events {
		p, _ := ev.position()
		tree.Insert(rtree.Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}, i)
	}

	taken := make([]bool, len(events))
	var res []event
	for i, seed := range events {
		if taken[i] {
			continue
		}
		taken[i] = true
		center, distance := seed.position()

		members := []int{i}
		parents := make(map[int]bool)
		addParents(parents, seed)

		box := rtree.Box{
			MinX: center.X - r.eps, MinY: center.Y - r.eps,
			MaxX: center.X + r.eps, MaxY: center.Y + r.eps,
		}
		_ = tree.RangeSearch(box, func(j int) error {
			if taken[j] {
				return nil
			}
			p, _ := events[j].position()
			if p.Sub(center).Length() < r.eps {
				taken[j] = true
				members = append(members, j)
				addParents(parents, events[j])
			}
			return nil
		})

		for grown := true; grown; {
			grown = false
			for j := i + 1; j < len(events); j++ {
				if taken[j] || !sharesParent(parents, events[j]) {
					continue
				}
				taken[j] = true
				members = append(members, j)
				addParents(parents, events[j])
				grown = true
			}
		}

		slices.Sort(members)
		cluster := make([]event, len(members))
		for k, j := range members {
			cluster[k] = events[j]
		}
		res = append(res, r.resolveCluster(center, distance, cluster)...)
	}
	return res
}

func addParents(parents map[int]bool, ev event) {
	switch e := ev.(type) {
	case *edgeEvent:
		parents[e.prev] = true
		parents[e.next] = true
	case *splitEvent:
		parents[e.parent] = true
	}
}

func sharesParent(parents map[int]bool, ev event) bool {
	switch e := ev.(type) {
	case *edgeEvent:
		return parents[e.prev] || parents[e.next]
	case *splitEvent:
		return parents[e.parent]
	}
	return false
}

// resolveCluster decides which events a cluster forms. A closed edge chain
// always becomes a pick event of its own, and the remaining chains are
// resolved together.
func (r *run) resolveCluster(center vec.Vec2, distance float64, cluster []event) []event {
	base := eventBase{point: center, distance: distance}

	var res []event
	var chains []*chain
	for _, c := range r.buildChains(cluster) {
		if c.kind == chainClosedEdge {
			res = append(res, &pickEvent{eventBase: base, chain: c})
			continue
		}
		chains = append(chains, c)
	}

	switch len(chains) {
	case 0:
		return res
	case 1:
		c := chains[0]
		switch c.kind {
		case chainEdge:
			if r.coversLav(c) {
				return append(res, &pickEvent{eventBase: base, chain: c})
			}
			if len(c.edges) == 1 {
				e := c.edges[0]
				return append(res, &edgeEvent{eventBase: base, prev: e.prev, next: e.next})
			}
			return append(res, &multiEdgeEvent{eventBase: base, chain: c})
		case chainSplit:
			s := c.split
			return append(res, &splitEvent{eventBase: base, parent: s.parent, opposite: s.opposite})
		}
	}
	return append(res, &multiSplitEvent{eventBase: base, chains: chains})
}

// coversLav reports whether an open edge chain consumes every vertex of its
// LAV. This happens when the event for the last remaining edge was never
// queued.
func (r *run) coversLav(c *chain) bool {
	l := r.vertices[c.first()].lav
	return l >= 0 && len(c.vertices()) == r.lavs[l].size &&
		r.vertices[c.last()].next == c.first()
}

// buildChains splits a cluster into edge chains and split chains.
func (r *run) buildChains(cluster []event) []*chain {
	var edges []*edgeEvent
	var splits []*splitEvent
	seenPair := make(map[[2]int]bool)
	splitParents := make(map[int]bool)

	for _, ev := range cluster {
		switch e := ev.(type) {
		case *edgeEvent:
			key := [2]int{e.prev, e.next}
			if !seenPair[key] {
				seenPair[key] = true
				edges = append(edges, e)
			}
		case *splitEvent:
			if !e.isVertexEvent() && !splitParents[e.parent] {
				splitParents[e.parent] = true
				splits = append(splits, e)
			}
		}
	}
	// At most one vertex event per parent, and only for parents without a
	// proper split.
	for _, ev := range cluster {
		if e, ok := ev.(*splitEvent); ok && e.isVertexEvent() && !splitParents[e.parent] {
			splitParents[e.parent] = true
			splits = append(splits, e)
		}
	}

	var chains []*chain
	inEdgeChain := make(map[int]bool)
	for len(edges) > 0 {
		var c *chain
		c, edges = edgeChain(edges)
		chains = append(chains, c)
		for _, v := range c.vertices() {
			inEdgeChain[v] = true
		}
	}
	for _, s := range splits {
		if inEdgeChain[s.parent] {
			continue
		}
		chains = append(chains, &chain{kind: chainSplit, split: s})
	}
	return chains
}

// edgeChain grows a chain of adjacent edge events from the first entry of
// edges and returns it, together with the unused events.
func edgeChain(edges []*edgeEvent) (*chain, []*edgeEvent) {
	list := []*edgeEvent{edges[0]}
	rest := slices.Clone(edges[1:])

	for {
		first, last := list[0], list[len(list)-1]
		if first.prev == last.next {
			break
		}
		found := false
		for k, e := range rest {
			switch {
			case e.prev == last.next:
				list = append(list, e)
			case e.next == first.prev:
				list = slices.Insert(list, 0, e)
			default:
				continue
			}
			rest = slices.Delete(rest, k, k+1)
			found = true
			break
		}
		if !found {
			break
		}
	}

	c := &chain{kind: chainEdge, edges: list}
	if list[0].prev == list[len(list)-1].next {
		c.kind = chainClosedEdge
	}
	return c, rest
}
