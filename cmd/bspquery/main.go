// Command bspquery reads a point/triangle/segment token stream from
// stdin, builds a BSP tree over the triangles, and writes one
// intersecting-triangle-id line per segment to stdout.
//
// The core contract takes no flags: stdin token stream in, per-segment
// result lines out. The optional --stl flag is pure plumbing layered
// on top, letting the triangle soup come from an STL file instead;
// segments are still read from stdin in token form since STL carries
// no segment data.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/coredelta/bsp3d/bsp"
	"github.com/coredelta/bsp3d/geom3"
	"github.com/coredelta/bsp3d/meshio"
)

var stlPath = flag.String("stl", "", "read the triangle soup from this STL file instead of stdin")

func main() {
	flag.Parse()

	var triangles []geom3.IDTriangle
	var segments []geom3.Segment

	if *stlPath != "" {
		f, err := os.Open(*stlPath)
		if err != nil {
			log.Fatalf("bspquery: failed to open %s: %v", *stlPath, err)
		}
		scene, err := meshio.ReadSTL(f)
		f.Close()
		if err != nil {
			log.Fatalf("bspquery: failed to read STL %s: %v", *stlPath, err)
		}
		triangles = scene.Triangles

		segments, err = meshio.ReadSegments(os.Stdin)
		if err != nil {
			log.Fatalf("bspquery: failed to read segments: %v", err)
		}
	} else {
		scene, err := meshio.ReadTokens(os.Stdin)
		if err != nil {
			log.Fatalf("bspquery: failed to read input: %v", err)
		}
		triangles = scene.Triangles
		segments = scene.Segments
	}

	tree := bsp.Build(triangles)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, seg := range segments {
		hits := bsp.Query(tree, seg, geom3.DefaultPlaneEpsilon)
		if err := meshio.WriteHits(out, hits); err != nil {
			log.Fatalf("bspquery: failed to write result: %v", err)
		}
	}
}
