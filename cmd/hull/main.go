// Command hull reads a point count and coordinate table from stdin,
// computes the 3D convex hull, and writes the compacted
// vertex/face-neighbor format to stdout.
//
// The core contract takes no flags. --stl-out is pure plumbing layered
// on top: alongside the text format it also writes the hull as a
// binary STL file.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/coredelta/bsp3d/hull"
	"github.com/coredelta/bsp3d/meshio"
)

var stlOut = flag.String("stl-out", "", "also write the computed hull to this STL file")

func main() {
	flag.Parse()

	points, err := meshio.ReadPoints(os.Stdin)
	if err != nil {
		log.Fatalf("hull: failed to read input: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	h, err := hull.Build(points)
	if err != nil {
		if _, werr := out.WriteString("0\n0\n"); werr != nil {
			log.Fatalf("hull: failed to write result: %v", werr)
		}
		return
	}

	if err := h.WriteText(out); err != nil {
		log.Fatalf("hull: failed to write result: %v", err)
	}

	if *stlOut != "" {
		f, err := os.Create(*stlOut)
		if err != nil {
			log.Fatalf("hull: failed to create %s: %v", *stlOut, err)
		}
		defer f.Close()

		if err := meshio.WriteSTLFaces(f, meshio.ToSTL(h)); err != nil {
			log.Fatalf("hull: failed to write STL %s: %v", *stlOut, err)
		}
	}
}
