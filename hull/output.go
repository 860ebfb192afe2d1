package hull

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/coredelta/bsp3d/geom3"
)

// CompactFace is a face in the compacted output numbering: 0-based
// vertex indices into the compacted vertex list, and 0-based neighbor
// face indices (-1 if the edge has no neighbor).
type CompactFace struct {
	Verts     [3]int
	Neighbors [3]int
}

// Compact reduces h to only the vertices its faces reference,
// renumbered 0-based in ascending order of original index, and
// renumbers face-neighbor pointers to 0-based face indices with -1
// standing in for "no neighbor" — the exact shape the hull program's
// output line format requires.
func (h *Hull) Compact() (points []geom3.Point, faces []CompactFace) {
	referenced := make(map[vertexIndex]bool)
	for _, f := range h.Faces {
		for _, v := range f.Verts {
			referenced[v] = true
		}
	}

	sorted := make([]int, 0, len(referenced))
	for v := range referenced {
		sorted = append(sorted, int(v))
	}
	sort.Ints(sorted)

	vertexMap := make(map[vertexIndex]int, len(sorted))
	points = make([]geom3.Point, len(sorted))
	for newIdx, oldIdx := range sorted {
		vertexMap[vertexIndex(oldIdx)] = newIdx
		points[newIdx] = h.Points[oldIdx]
	}

	faceIndex := make(map[*Face]int, len(h.Faces))
	for i, f := range h.Faces {
		faceIndex[f] = i
	}

	faces = make([]CompactFace, len(h.Faces))
	for i, f := range h.Faces {
		cf := CompactFace{}
		for j := 0; j < 3; j++ {
			cf.Verts[j] = vertexMap[f.Verts[j]]
			if f.Neighbors[j] == nil {
				cf.Neighbors[j] = -1
			} else {
				cf.Neighbors[j] = faceIndex[f.Neighbors[j]]
			}
		}
		faces[i] = cf
	}
	return points, faces
}

// WriteText renders h in the hull program's output format: vertex
// count and coordinates, then face count and each face's compacted
// vertex and neighbor indices.
func (h *Hull) WriteText(w io.Writer) error {
	points, faces := h.Compact()

	if _, err := fmt.Fprintf(w, "%d\n", len(points)); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", formatCoord(p.X), formatCoord(p.Y), formatCoord(p.Z)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%d\n", len(faces)); err != nil {
		return err
	}
	for _, f := range faces {
		if _, err := fmt.Fprintf(w, "%d %d %d  %d %d %d\n",
			f.Verts[0], f.Verts[1], f.Verts[2],
			f.Neighbors[0], f.Neighbors[1], f.Neighbors[2]); err != nil {
			return err
		}
	}
	return nil
}

// formatCoord renders a coordinate the way the original hull writer
// does: plain decimal, never scientific notation, even for the large
// magnitudes %g would otherwise switch over to.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
