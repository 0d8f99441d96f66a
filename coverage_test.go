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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/skeleton/testcases"
)

// TestFaceCoverage checks that the faces of every skeleton tile the input
// polygon. The faces are rasterised one by one and their coverage is
// summed, which must reproduce the coverage of the polygon itself.
func TestFaceCoverage(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if _, ok := tc.Want.(testcases.Valid); !ok {
				continue
			}
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				contours, err := pathContours(tc.Path)
				if err != nil {
					t.Fatal(err)
				}
				sk, err := BuildPath(tc.Path)
				if err != nil {
					t.Fatal(err)
				}
				// holes must be clockwise to cancel the outer contour
				rings, err := normalizeContours(contours, splitEpsilon*max(1, maxAbsCoord(contours)))
				if err != nil {
					t.Fatal(err)
				}

				w, h := tc.Width, tc.Height
				tr := fitTransform(sk.Bounds(), w, h)

				expected := make([]int, w*h)
				r := vector.NewRasterizer(w, h)
				for _, ring := range rings {
					addRing(r, ring, tr)
				}
				accumulate(expected, r, w, h)

				actual := make([]int, w*h)
				for _, f := range sk.Faces {
					r.Reset(w, h)
					addRing(r, f.Points, tr)
					accumulate(actual, r, w, h)
				}

				if err := compareCoverage(name, expected, actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// fitTransform returns a function which maps the rectangle bbox into a
// w×h canvas, keeping a margin of 4 pixels on every side.
func fitTransform(bbox rect.Rect, w, h int) func(vec.Vec2) vec.Vec2 {
	const margin = 4
	scale := min(
		(float64(w)-2*margin)/(bbox.URx-bbox.LLx),
		(float64(h)-2*margin)/(bbox.URy-bbox.LLy),
	)
	return func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: margin + (p.X-bbox.LLx)*scale,
			Y: margin + (p.Y-bbox.LLy)*scale,
		}
	}
}

func addRing(r *vector.Rasterizer, pts []vec.Vec2, tr func(vec.Vec2) vec.Vec2) {
	for i, p := range pts {
		q := tr(p)
		if i == 0 {
			r.MoveTo(float32(q.X), float32(q.Y))
		} else {
			r.LineTo(float32(q.X), float32(q.Y))
		}
	}
	r.ClosePath()
}

// accumulate rasterises the path in r and adds the coverage to sum.
func accumulate(sum []int, r *vector.Rasterizer, w, h int) {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.DrawOp = draw.Src
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	for y := range h {
		for x := range w {
			sum[y*w+x] += int(dst.Pix[y*dst.Stride+x])
		}
	}
}

func compareCoverage(name string, expected, actual []int, w, h int) error {
	const tolerance = 6

	diffCount := 0
	maxDiff := 0
	for i := range expected {
		diff := expected[i] - actual[i]
		if diff < 0 {
			diff = -diff
		}
		maxDiff = max(maxDiff, diff)
		if diff > tolerance {
			diffCount++
		}
	}
	if diffCount > 0 {
		writeCoverageImage(name, expected, actual, w, h)
		return fmt.Errorf("%d pixels differ by >%d (max difference %d)",
			diffCount, tolerance, maxDiff)
	}
	return nil
}

func writeCoverageImage(name string, expected, actual []int, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			img.Set(x, y, color.RGBA{
				R: uint8(min(expected[i], 255)), // polygon in red
				G: uint8(min(actual[i], 255)),   // faces in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
