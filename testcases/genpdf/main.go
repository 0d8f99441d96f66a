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

// Command genpdf plots the skeletons of all test cases.
// It creates one PDF per test case and renders them to PNGs using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/skeleton"
	"seehuhn.de/go/skeleton/testcases"
)

const (
	plotDir = "testdata/plots"
	margin  = 4
)

func main() {
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if _, ok := tc.Want.(testcases.Valid); !ok {
				continue
			}
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(plotDir, name+".pdf")
			pngPath := filepath.Join(plotDir, name+".png")

			sk, err := skeleton.BuildPath(tc.Path)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePDF(tc, sk, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, sk *skeleton.Skeleton, pdfPath string) error {
	w := float64(tc.Width)
	h := float64(tc.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// Scale the skeleton to fit the page, keeping a margin on all sides.
	bbox := sk.Bounds()
	scale := 1.0
	if dx, dy := bbox.URx-bbox.LLx, bbox.URy-bbox.LLy; dx > 0 && dy > 0 {
		scale = min((w-2*margin)/dx, (h-2*margin)/dy)
	}
	page.Transform(matrix.Matrix{
		scale, 0, 0, scale,
		margin - scale*bbox.LLx, margin - scale*bbox.LLy,
	})

	// Faces are shaded in a repeating sequence of grays.
	for i, f := range sk.Faces {
		page.SetFillColor(color.DeviceGray(0.6 + 0.1*float64(i%4)))
		polyline(page, f.Points)
		page.ClosePath()
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5 / scale)
	for _, f := range sk.Faces {
		polyline(page, f.Points)
		page.ClosePath()
	}
	page.Stroke()

	page.SetLineWidth(1 / scale)
	for _, r := range sk.Ridges {
		polyline(page, []vec.Vec2{r.A, r.B})
	}
	page.Stroke()

	return page.Close()
}

func polyline(page *document.Page, pts []vec.Vec2) {
	for i, p := range pts {
		if i == 0 {
			page.MoveTo(p.X, p.Y)
		} else {
			page.LineTo(p.X, p.Y)
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r144: two pixels per point
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
