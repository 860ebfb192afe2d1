package bsp

import (
	"path/filepath"
	"testing"

	"github.com/coredelta/bsp3d/geom3"
	"github.com/coredelta/bsp3d/internal/fixture"
)

func TestScenarioFixtures(t *testing.T) {
	paths, err := filepath.Glob("../testdata/scenarios/*.yaml")
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no scenario fixtures found")
	}

	for _, path := range paths {
		path := path
		t.Run(path, func(t *testing.T) {
			scn, err := fixture.Load(path)
			if err != nil {
				t.Fatalf("load %s: %v", path, err)
			}

			points := make([]geom3.Point, len(scn.Points))
			for i, p := range scn.Points {
				points[i] = geom3.Point{X: p[0], Y: p[1], Z: p[2]}
			}

			triangles := make([]geom3.IDTriangle, len(scn.Triangles))
			for i, tr := range scn.Triangles {
				triangles[i] = geom3.IDTriangle{
					ID: i + 1,
					V:  [3]geom3.Point{points[tr[0]-1], points[tr[1]-1], points[tr[2]-1]},
				}
			}

			tree := Build(triangles)

			if len(scn.Segments) != len(scn.Expected) {
				t.Fatalf("scenario %s: segments/expected length mismatch", scn.Name)
			}

			for i, s := range scn.Segments {
				seg := geom3.Segment{
					P0: geom3.Point{X: s[0], Y: s[1], Z: s[2]},
					P1: geom3.Point{X: s[3], Y: s[4], Z: s[5]},
				}
				got := Query(tree, seg, geom3.DefaultPlaneEpsilon)
				want := scn.Expected[i]
				if len(got) != len(want) {
					t.Fatalf("scenario %s segment %d: got %v, want %v", scn.Name, i, got, want)
				}
				for j := range got {
					if got[j] != want[j] {
						t.Fatalf("scenario %s segment %d: got %v, want %v", scn.Name, i, got, want)
					}
				}
			}
		})
	}
}
