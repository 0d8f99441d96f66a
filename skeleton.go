// Package skeleton computes straight skeletons of polygons with holes.
//
// The straight skeleton is traced out by the vertices of a polygon while all
// edges move inward at unit speed, each parallel to itself. Every edge sweeps
// a face of the skeleton until it vanishes. Seen as a roof over the polygon,
// with all faces sloping up at the same angle, the height of each point is
// the offset distance at which the wavefront passes it.
package skeleton

//go:generate go run ./testcases/export

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Skeleton is the straight skeleton of a polygon.
type Skeleton struct {
	// Faces contains one face for every edge of the input, outer contour
	// first, then the holes in the order given.
	Faces []*Face

	// Ridges are the interior segments of the skeleton.
	Ridges []Ridge

	// Heights maps every skeleton vertex to the offset distance at which
	// it is reached by the wavefront. Input vertices have height zero.
	Heights map[vec.Vec2]float64

	Stats Stats
}

// Face is the region swept by one input edge.
type Face struct {
	Edge EdgeRef

	// Points is the boundary of the face in counter-clockwise order,
	// without repeating the first point. Points[0] and Points[1] are the
	// begin and end of the input edge.
	Points []vec.Vec2

	// Heights gives the offset distance for each point in Points.
	Heights []float64
}

// EdgeRef identifies an edge of the input polygon.
type EdgeRef struct {
	Contour int // 0 for the outer contour, i+1 for hole i
	Index   int // index of the start point within the contour

	// Begin and End are the end points of the edge, in the normalized
	// orientation.
	Begin, End vec.Vec2
}

// Ridge is a segment of the skeleton from A to B. The height never
// decreases from A to B.
type Ridge struct {
	A, B             vec.Vec2
	HeightA, HeightB float64
}

// Stats counts the work done while computing a skeleton.
type Stats struct {
	Levels int // number of event levels processed

	EdgeEvents       int
	MultiEdgeEvents  int
	PickEvents       int
	SplitEvents      int
	VertexEvents     int
	MultiSplitEvents int

	Collapsed int // LAVs with two vertices which were closed
	Obsolete  int // queued events which were skipped
	Discarded int // degenerate events which were never applied
}

// Ring returns the boundary of the face as a closed ring, where the last
// point repeats the first one.
func (f *Face) Ring() []vec.Vec2 {
	if len(f.Points) == 0 {
		return nil
	}
	res := make([]vec.Vec2, len(f.Points)+1)
	copy(res, f.Points)
	res[len(f.Points)] = f.Points[0]
	return res
}

// Path returns the boundary of the face as a closed path.
func (f *Face) Path() *path.Data {
	p := &path.Data{}
	for i, pt := range f.Points {
		if i == 0 {
			p = p.MoveTo(pt)
		} else {
			p = p.LineTo(pt)
		}
	}
	if len(f.Points) > 0 {
		p = p.Close()
	}
	return p
}

// Area returns the area of the face.
func (f *Face) Area() float64 {
	return math.Abs(signedArea(f.Points)) / 2
}

// Bounds returns the smallest rectangle containing all faces.
func (s *Skeleton) Bounds() rect.Rect {
	var res rect.Rect
	first := true
	for _, f := range s.Faces {
		for _, p := range f.Points {
			if first {
				res = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				first = false
				continue
			}
			res.LLx = min(res.LLx, p.X)
			res.LLy = min(res.LLy, p.Y)
			res.URx = max(res.URx, p.X)
			res.URy = max(res.URy, p.Y)
		}
	}
	return res
}

// MaxHeight returns the largest offset distance of any skeleton vertex.
func (s *Skeleton) MaxHeight() float64 {
	var h float64
	for _, d := range s.Heights {
		h = max(h, d)
	}
	return h
}

// RidgePath returns the ridges as a path of unconnected line segments.
func (s *Skeleton) RidgePath() *path.Data {
	p := &path.Data{}
	for _, r := range s.Ridges {
		p = p.MoveTo(r.A).LineTo(r.B)
	}
	return p
}

// assemble collects the closed faces into a Skeleton.
func (r *run) assemble() *Skeleton {
	if len(r.live) > 0 {
		r.fail("open-wavefront", "%d LAVs remain when no more events are queued", len(r.live))
	}

	sk := &Skeleton{
		Faces:   make([]*Face, 0, len(r.edges)),
		Ridges:  r.ridges,
		Heights: make(map[vec.Vec2]float64),
		Stats:   r.stats,
	}

	for e := range r.edges {
		ed := &r.edges[e]
		if !r.queues[e].closed {
			r.fail("face-closed", "face of edge %d of contour %d is open", ed.index, ed.contour)
		}

		var pts []vec.Vec2
		var hs []float64
		for n := range r.queueNodes(e) {
			v := &r.vertices[r.nodes[n].vertex]
			if k := len(pts); k > 0 && pts[k-1].Sub(v.point).Length() < r.eps {
				hs[k-1] = max(hs[k-1], v.distance)
				continue
			}
			pts = append(pts, v.point)
			hs = append(hs, v.distance)
		}
		for len(pts) > 1 && pts[0].Sub(pts[len(pts)-1]).Length() < r.eps {
			pts = pts[:len(pts)-1]
			hs = hs[:len(hs)-1]
		}
		if len(pts) < 3 {
			r.fail("face-size", "face of edge %d of contour %d has %d points",
				ed.index, ed.contour, len(pts))
		}

		for k := range pts {
			if pts[k] == ed.begin && pts[(k+1)%len(pts)] == ed.end {
				pts = slices.Concat(pts[k:], pts[:k])
				hs = slices.Concat(hs[k:], hs[:k])
				break
			}
		}

		for k, p := range pts {
			if h, seen := sk.Heights[p]; !seen || hs[k] > h {
				sk.Heights[p] = hs[k]
			}
		}

		sk.Faces = append(sk.Faces, &Face{
			Edge: EdgeRef{
				Contour: ed.contour,
				Index:   ed.index,
				Begin:   ed.begin,
				End:     ed.end,
			},
			Points:  pts,
			Heights: hs,
		})
	}
	return sk
}
