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
	"math"

	"seehuhn.de/go/geom/vec"
)

// parallelThreshold is the smallest |sin θ| for which two bisector rays are
// treated as crossing rather than parallel.
const parallelThreshold = 1e-8

// line is a line in general form a*x + b*y + c = 0.
type line struct {
	a, b, c float64
}

// lineThrough returns the line through p and q.
func lineThrough(p, q vec.Vec2) line {
	return line{
		a: p.Y - q.Y,
		b: q.X - p.X,
		c: p.X*q.Y - q.X*p.Y,
	}
}

// intersect returns the intersection point of l and m.
// The second return value is false if the lines are parallel.
func (l line) intersect(m line) (vec.Vec2, bool) {
	w := l.a*m.b - m.a*l.b
	if w == 0 {
		return vec.Vec2{}, false
	}
	return vec.Vec2{
		X: (l.b*m.c - m.b*l.c) / w,
		Y: (l.c*m.a - m.c*l.a) / w,
	}, true
}

// ray is a half-line starting at origin. Dir has unit length, except for the
// zero ray used by vertices which never move again.
type ray struct {
	origin vec.Vec2
	dir    vec.Vec2
}

func (r ray) line() line {
	return lineThrough(r.origin, r.origin.Add(r.dir))
}

// hit returns the point where r meets l. Hits behind the origin, or closer
// than eps in front of it, do not count.
func (r ray) hit(l line, eps float64) (vec.Vec2, bool) {
	p, ok := r.line().intersect(l)
	if !ok {
		return vec.Vec2{}, false
	}
	if r.dir.Dot(p.Sub(r.origin)) < eps {
		return vec.Vec2{}, false
	}
	return p, true
}

// leftOf reports whether p lies on the left of r, or within eps of it.
func (r ray) leftOf(p vec.Vec2, eps float64) bool {
	return orthoRight(r.dir).Dot(p.Sub(r.origin)) < eps
}

// rightOf reports whether p lies on the right of r, or within eps of it.
func (r ray) rightOf(p vec.Vec2, eps float64) bool {
	return orthoRight(r.dir).Dot(p.Sub(r.origin)) > -eps
}

// intersectRays returns the point where r1 and r2 meet.
//
// Parallel rays only meet if they lie on a common line and point towards
// each other; in this case the midpoint between the two origins is returned.
func intersectRays(r1, r2 ray) (vec.Vec2, bool) {
	u, v := r1.dir, r2.dir
	w := r1.origin.Sub(r2.origin)
	d := cross(u, v)

	if math.Abs(d) < parallelThreshold {
		gap := w.Length()
		if gap == 0 {
			return r1.origin, true
		}
		if math.Abs(cross(u, w)) > parallelThreshold*gap {
			return vec.Vec2{}, false // parallel, distinct lines
		}
		if u.Dot(v) >= 0 || u.Dot(w) > 0 {
			return vec.Vec2{}, false // same direction, or moving apart
		}
		return r1.origin.Add(r2.origin).Mul(0.5), true
	}

	s := cross(v, w) / d
	if s < 0 {
		return vec.Vec2{}, false
	}
	t := cross(u, w) / d
	if t < 0 {
		return vec.Vec2{}, false
	}
	return r1.origin.Add(u.Mul(s)), true
}

// bisectorDirection returns the unit vector which halves the interior angle
// at a corner where an edge with direction d1 is followed by an edge with
// direction d2. The interior lies to the left of both edges.
func bisectorDirection(d1, d2 vec.Vec2) vec.Vec2 {
	n1 := orthoLeft(d1)
	n2 := orthoLeft(d2)

	if d1.Dot(d2) > 0 {
		return normalize(n1.Add(n2))
	}

	b := d2.Sub(d1)
	if n1.Dot(d2) < 0 {
		b = b.Mul(-1)
	}
	return normalize(b)
}

// distanceToLine returns the distance of p from the line through a and b.
func distanceToLine(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	return math.Abs(cross(d, p.Sub(a))) / d.Length()
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func orthoLeft(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

func orthoRight(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: v.Y, Y: -v.X}
}

func normalize(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// signedArea returns twice the signed area of the closed polygon pts.
// The result is positive for counter-clockwise polygons.
func signedArea(pts []vec.Vec2) float64 {
	var sum float64
	n := len(pts)
	for i := range n {
		sum += cross(pts[i], pts[(i+1)%n])
	}
	return sum
}

// insidePolygon reports whether p lies inside the closed polygon pts,
// using the even-odd rule.
func insidePolygon(p vec.Vec2, pts []vec.Vec2) bool {
	inside := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
