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
	"log/slog"
	"math"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// splitEpsilon is the default tolerance, and also the tolerance for
// comparing unit direction vectors.
const splitEpsilon = 1e-10

// parallelSeedThreshold is the smallest number of input vertices for which
// split candidates are computed concurrently.
const parallelSeedThreshold = 64

// Builder computes straight skeletons.
//
// The zero value is not usable; use [NewBuilder] to get a Builder with
// default settings. A Builder can be used by several goroutines at once, as
// long as its fields are not modified.
type Builder struct {
	// Epsilon is the base tolerance for comparing distances and positions.
	// It is scaled by the magnitude of the largest input coordinate, if
	// this is larger than 1.
	Epsilon float64

	// MaxIterations limits the number of event levels processed.
	// If this is zero, IterationFactor times the number of input vertices,
	// plus 100, is used.
	MaxIterations int

	// IterationFactor is used to compute the iteration limit when
	// MaxIterations is zero.
	IterationFactor int

	// Parallel enables concurrent computation of the initial split
	// candidates for large inputs.
	Parallel bool

	// Logger receives debug output. If this is nil, the package logger
	// set by [SetLogger] is used.
	Logger *slog.Logger
}

// NewBuilder returns a Builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		Epsilon:         splitEpsilon,
		IterationFactor: 10,
		Parallel:        true,
	}
}

// Build computes the straight skeleton of a polygon with optional holes.
//
// The outer contour may be given in either orientation; it is converted to
// counter-clockwise orientation, and holes are converted to clockwise
// orientation. A final point which repeats the first point is ignored.
func (b *Builder) Build(outer []vec.Vec2, holes ...[]vec.Vec2) (*Skeleton, error) {
	log := b.Logger
	if log == nil {
		log = Logger()
	}
	log = log.With("build", uuid.New().String())

	contours := make([][]vec.Vec2, 0, 1+len(holes))
	contours = append(contours, outer)
	contours = append(contours, holes...)

	eps := b.Epsilon
	if eps <= 0 {
		eps = splitEpsilon
	}
	eps *= max(1, maxAbsCoord(contours))

	rings, err := normalizeContours(contours, eps)
	if err != nil {
		log.Debug("invalid input", "error", err)
		return nil, err
	}

	r := &run{
		eps:      eps,
		log:      log,
		parallel: b.Parallel,
	}
	r.maxLevels = b.MaxIterations
	if r.maxLevels <= 0 {
		factor := b.IterationFactor
		if factor <= 0 {
			factor = 10
		}
		n := 0
		for _, ring := range rings {
			n += len(ring)
		}
		r.maxLevels = factor*n + 100
	}

	return r.build(rings)
}

// BuildPath computes the straight skeleton of the polygon described by p.
// The first subpath is the outer contour, all further subpaths are holes.
// Subpaths are implicitly closed. Curves are not supported.
func (b *Builder) BuildPath(p *path.Data) (*Skeleton, error) {
	contours, err := pathContours(p)
	if err != nil {
		return nil, err
	}
	return b.Build(contours[0], contours[1:]...)
}

// BuildWKT computes the straight skeleton of a polygon given in WKT format.
func (b *Builder) BuildWKT(wkt string) (*Skeleton, error) {
	outer, holes, err := ParseWKT(wkt)
	if err != nil {
		return nil, err
	}
	return b.Build(outer, holes...)
}

// Build computes a straight skeleton using the default settings.
func Build(outer []vec.Vec2, holes ...[]vec.Vec2) (*Skeleton, error) {
	return NewBuilder().Build(outer, holes...)
}

// BuildPath computes a straight skeleton using the default settings.
func BuildPath(p *path.Data) (*Skeleton, error) {
	return NewBuilder().BuildPath(p)
}

type buildState uint8

const (
	stateSeeding buildState = iota
	stateRunning
	stateDraining
	stateDone
)

func (s buildState) String() string {
	switch s {
	case stateSeeding:
		return "seeding"
	case stateRunning:
		return "running"
	case stateDraining:
		return "draining"
	case stateDone:
		return "done"
	}
	return fmt.Sprintf("buildState(%d)", uint8(s))
}

// run holds the state of one skeleton computation.
type run struct {
	eps       float64
	maxLevels int
	parallel  bool
	log       *slog.Logger
	state     buildState

	edges    []edge
	vertices []vertex
	lavs     []lav
	live     []int // LAVs which still have vertices, in creation order

	nodes  []faceNode
	queues []faceQueue // the first len(edges) queues belong to the edges

	queue  eventQueue
	ridges []Ridge
	stats  Stats
}

func (r *run) setState(s buildState) {
	r.log.Debug("state change", "from", r.state, "to", s)
	r.state = s
}

func (r *run) build(rings [][]vec.Vec2) (sk *Skeleton, err error) {
	defer func() {
		if p := recover(); p != nil {
			cp, ok := p.(consistencyPanic)
			if !ok {
				panic(p)
			}
			sk = nil
			err = cp.err
			r.log.Debug("build aborted", "state", r.state, "error", err)
		}
	}()

	r.setState(stateSeeding)
	r.seed(rings)

	r.setState(stateRunning)
	for len(r.live) > 0 && r.queue.Len() > 0 {
		if r.stats.Levels >= r.maxLevels {
			panic(consistencyPanic{&ConsistencyError{
				Invariant: "iteration-limit",
				Detail:    fmt.Sprintf("more than %d event levels", r.maxLevels),
				limit:     true,
			}})
		}

		events, level := r.loadLevel()
		if len(events) == 0 {
			break
		}
		r.stats.Levels++
		resolved := r.groupLevel(events)
		r.log.Debug("level",
			"distance", level, "events", len(events), "clusters", len(resolved))

		for _, ev := range resolved {
			if ev.obsolete(r.vertices) {
				r.stats.Obsolete++
				continue
			}
			r.dispatch(ev)
		}

		r.collapseSmallLavs()
		r.dropEventsUpTo(level)
	}

	r.setState(stateDraining)
	sk = r.assemble()
	r.setState(stateDone)

	if r.stats.Discarded > 0 {
		r.log.Debug("discarded degenerate events", "count", r.stats.Discarded)
	}
	return sk, nil
}

// seed builds edges, LAVs and faces for the normalized contours, and queues
// the initial events.
func (r *run) seed(rings [][]vec.Vec2) {
	for ci, ring := range rings {
		first := len(r.edges)
		n := len(ring)
		for i := range n {
			a, b := ring[i], ring[(i+1)%n]
			r.edges = append(r.edges, edge{
				begin:   a,
				end:     b,
				dir:     normalize(b.Sub(a)),
				line:    lineThrough(a, b),
				contour: ci,
				index:   i,
			})
		}
		for i := range n {
			cur := &r.edges[first+i]
			nxt := &r.edges[first+(i+1)%n]
			bis := ray{origin: cur.end, dir: bisectorDirection(cur.dir, nxt.dir)}
			cur.bisectorNext = bis
			nxt.bisectorPrev = bis
		}
	}

	for e := range r.edges {
		r.newFaceQueue(e)
	}

	first := 0
	for _, ring := range rings {
		n := len(ring)
		l := r.newLav()
		for i := range n {
			e := first + i
			next := first + (i+1)%n
			v := r.newVertex(r.edges[e].end, 0, r.edges[e].bisectorNext, e, next)
			r.appendVertex(l, v)
		}
		first += n
	}

	// The face of every edge starts with the two vertices at its ends.
	for v := range r.vertices {
		next := r.vertices[v].next
		q := r.vertices[v].nextEdge

		right := r.newFaceNode(v)
		r.addFirst(q, right)
		r.vertices[v].rightFace = right

		left := r.newFaceNode(next)
		r.push(right, left)
		r.vertices[next].leftFace = left
	}

	r.seedEvents()
	r.log.Debug("seeded",
		"contours", len(rings), "vertices", len(r.vertices), "events", r.queue.Len())
}

// seedEvents queues the split events of all vertices, and the edge events
// between all adjacent vertices. For convex vertices, split events describe
// contact with corners of other contours.
func (r *run) seedEvents() {
	n := len(r.vertices)
	cands := make([][]splitCandidate, n)
	if r.parallel && n >= parallelSeedThreshold {
		workers := min(runtime.GOMAXPROCS(0), n)
		var wg sync.WaitGroup
		for w := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for v := w; v < n; v += workers {
					cands[v] = r.splitCandidates(v)
				}
			}()
		}
		wg.Wait()
	} else {
		for v := range n {
			cands[v] = r.splitCandidates(v)
		}
	}
	for v := range n {
		r.queueSplits(v, cands[v], -1)
	}

	for _, l := range r.live {
		for v := range r.lavVertices(r.lavs[l].head) {
			next := r.vertices[v].next
			if p, ok := r.bisectorsMeet(v, next); ok {
				r.queueEdgeEvent(p, v, next)
			}
		}
	}
}

// dropEventsUpTo removes all events at or below the given level from the
// queue.
func (r *run) dropEventsUpTo(level float64) {
	for {
		d, ok := r.queue.peek()
		if !ok || d > level+r.eps {
			return
		}
		ev := r.queue.next()
		if ev.obsolete(r.vertices) {
			r.stats.Obsolete++
		} else {
			r.stats.Discarded++
			r.log.Debug("dropping event created at its own level", "distance", d)
		}
	}
}

// consume marks v as processed.
func (r *run) consume(v int) {
	if r.vertices[v].processed {
		r.fail("vertex-processed-once", "vertex %d is consumed a second time", v)
	}
	r.vertices[v].processed = true
}

// addRidge records the skeleton segment from vertex a to vertex b.
func (r *run) addRidge(a, b int) {
	va, vb := &r.vertices[a], &r.vertices[b]
	if va.point.Sub(vb.point).Length() < r.eps {
		return
	}
	r.ridges = append(r.ridges, Ridge{
		A:       va.point,
		B:       vb.point,
		HeightA: va.distance,
		HeightB: vb.distance,
	})
}

// consistencyPanic is used to unwind the stack when an internal invariant
// is violated. It is recovered in run.build.
type consistencyPanic struct {
	err *ConsistencyError
}

func (r *run) fail(invariant, format string, args ...any) {
	panic(consistencyPanic{&ConsistencyError{
		Invariant: invariant,
		Detail:    fmt.Sprintf(format, args...),
	}})
}

// maxAbsCoord returns the largest finite coordinate magnitude.
func maxAbsCoord(contours [][]vec.Vec2) float64 {
	var m float64
	for _, c := range contours {
		for _, p := range c {
			for _, x := range []float64{p.X, p.Y} {
				if !math.IsNaN(x) && !math.IsInf(x, 0) {
					m = max(m, math.Abs(x))
				}
			}
		}
	}
	return m
}
