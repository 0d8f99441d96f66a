// Command export writes the test polygons and their skeletons to JSON, for
// comparison with other straight skeleton implementations.
// Run from the skeleton module root directory.
package main

import (
	"encoding/json"
	"errors"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/skeleton"
	"seehuhn.de/go/skeleton/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/skeletons.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Path   []jsonSegment `json:"path"`
	Valid  bool          `json:"valid"`
	Error  string        `json:"error,omitempty"`
	Faces  []jsonFace    `json:"faces,omitempty"`
	Ridges [][]float64   `json:"ridges,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonFace struct {
	Contour int         `json:"contour"`
	Edge    int         `json:"edge"`
	Points  [][]float64 `json:"points"`
	Heights []float64   `json:"heights"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path),
	}

	sk, err := skeleton.BuildPath(tc.Path)
	if err != nil {
		if !errors.Is(err, skeleton.ErrInvalidInput) {
			panic(err)
		}
		jtc.Error = err.Error()
		return jtc
	}

	jtc.Valid = true
	for _, f := range sk.Faces {
		jf := jsonFace{
			Contour: f.Edge.Contour,
			Edge:    f.Edge.Index,
			Heights: f.Heights,
		}
		for _, p := range f.Points {
			jf.Points = append(jf.Points, []float64{p.X, p.Y})
		}
		jtc.Faces = append(jtc.Faces, jf)
	}
	for _, r := range sk.Ridges {
		jtc.Ridges = append(jtc.Ridges,
			[]float64{r.A.X, r.A.Y, r.HeightA, r.B.X, r.B.Y, r.HeightB})
	}
	return jtc
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
