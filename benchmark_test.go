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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// BenchmarkRegular benchmarks convex regular polygons, where all vertices
// meet in a single pick event.
func BenchmarkRegular(b *testing.B) {
	sizes := []int{8, 64, 512}

	for _, n := range sizes {
		pts := make([]vec.Vec2, n)
		for i := range pts {
			phi := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = vec.Vec2{X: 100 * math.Cos(phi), Y: 100 * math.Sin(phi)}
		}
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			bld := NewBuilder()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := bld.Build(pts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkComb benchmarks a comb shape with many reflex vertices, with and
// without concurrent seeding.
func BenchmarkComb(b *testing.B) {
	teeth := []int{4, 32, 128}

	for _, n := range teeth {
		pts := makeComb(n)
		for _, parallel := range []bool{false, true} {
			b.Run(fmt.Sprintf("%d-parallel=%t", n, parallel), func(b *testing.B) {
				bld := NewBuilder()
				bld.Parallel = parallel
				b.ReportAllocs()
				for b.Loop() {
					if _, err := bld.Build(pts); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// makeComb returns a counter-clockwise comb with n teeth of different
// heights, standing on a base of height 3.
func makeComb(n int) []vec.Vec2 {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: float64(4 * n), Y: 0}}
	for i := n - 1; i >= 0; i-- {
		x := float64(4 * i)
		top := 10 + float64(i%3)
		pts = append(pts,
			vec.Vec2{X: x + 3, Y: 3},
			vec.Vec2{X: x + 3, Y: top},
			vec.Vec2{X: x + 1, Y: top},
			vec.Vec2{X: x + 1, Y: 3},
		)
	}
	return pts
}
