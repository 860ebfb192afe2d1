// Package meshio handles the on-the-wire formats the query and hull
// programs read and write: the whitespace-token point/triangle/segment
// stream described by the BSP query contract, and standard STL meshes
// via github.com/krasin/stl for interoperating with ordinary tools.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coredelta/bsp3d/geom3"
)

// Scene is the decoded contents of a token stream: a point table, the
// triangles built from it (ids assigned 1-based in input order), and
// the query segments.
type Scene struct {
	Points    []geom3.Point
	Triangles []geom3.IDTriangle
	Segments  []geom3.Segment
}

// tokenReader pulls whitespace-delimited tokens off r one at a time.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

func (t *tokenReader) nextInt() (int, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, ErrMalformedTokenStream
	}
	return strconv.Atoi(t.scanner.Text())
}

// ReadTokens parses the N T L point/triangle/segment stream described
// by the query program's input contract.
func ReadTokens(r io.Reader) (Scene, error) {
	tr := newTokenReader(r)

	n, err := tr.nextInt()
	if err != nil {
		return Scene{}, err
	}
	numTriangles, err := tr.nextInt()
	if err != nil {
		return Scene{}, err
	}
	numSegments, err := tr.nextInt()
	if err != nil {
		return Scene{}, err
	}

	points := make([]geom3.Point, n)
	for i := 0; i < n; i++ {
		x, err := tr.nextInt()
		if err != nil {
			return Scene{}, err
		}
		y, err := tr.nextInt()
		if err != nil {
			return Scene{}, err
		}
		z, err := tr.nextInt()
		if err != nil {
			return Scene{}, err
		}
		points[i] = geom3.Point{X: float64(x), Y: float64(y), Z: float64(z)}
	}

	triangles := make([]geom3.IDTriangle, numTriangles)
	for i := 0; i < numTriangles; i++ {
		a, err := tr.nextInt()
		if err != nil {
			return Scene{}, err
		}
		b, err := tr.nextInt()
		if err != nil {
			return Scene{}, err
		}
		c, err := tr.nextInt()
		if err != nil {
			return Scene{}, err
		}
		triangles[i] = geom3.IDTriangle{
			ID: i + 1,
			V:  [3]geom3.Point{points[a-1], points[b-1], points[c-1]},
		}
	}

	segments := make([]geom3.Segment, numSegments)
	for i := 0; i < numSegments; i++ {
		coords := make([]float64, 6)
		for j := 0; j < 6; j++ {
			v, err := tr.nextInt()
			if err != nil {
				return Scene{}, err
			}
			coords[j] = float64(v)
		}
		segments[i] = geom3.Segment{
			P0: geom3.Point{X: coords[0], Y: coords[1], Z: coords[2]},
			P1: geom3.Point{X: coords[3], Y: coords[4], Z: coords[5]},
		}
	}

	return Scene{Points: points, Triangles: triangles, Segments: segments}, nil
}

// ReadSegments parses a bare "L" count followed by L six-integer
// segment lines, the portion of the token stream still read from
// stdin when triangles instead come from an STL file via --stl.
func ReadSegments(r io.Reader) ([]geom3.Segment, error) {
	tr := newTokenReader(r)

	numSegments, err := tr.nextInt()
	if err != nil {
		return nil, err
	}

	segments := make([]geom3.Segment, numSegments)
	for i := 0; i < numSegments; i++ {
		coords := make([]float64, 6)
		for j := 0; j < 6; j++ {
			v, err := tr.nextInt()
			if err != nil {
				return nil, err
			}
			coords[j] = float64(v)
		}
		segments[i] = geom3.Segment{
			P0: geom3.Point{X: coords[0], Y: coords[1], Z: coords[2]},
			P1: geom3.Point{X: coords[3], Y: coords[4], Z: coords[5]},
		}
	}
	return segments, nil
}

// ReadPoints parses the hull program's input: a point count followed
// by that many integer coordinate lines.
func ReadPoints(r io.Reader) ([]geom3.Point, error) {
	tr := newTokenReader(r)

	n, err := tr.nextInt()
	if err != nil {
		return nil, err
	}

	points := make([]geom3.Point, n)
	for i := 0; i < n; i++ {
		x, err := tr.nextInt()
		if err != nil {
			return nil, err
		}
		y, err := tr.nextInt()
		if err != nil {
			return nil, err
		}
		z, err := tr.nextInt()
		if err != nil {
			return nil, err
		}
		points[i] = geom3.Point{X: float64(x), Y: float64(y), Z: float64(z)}
	}
	return points, nil
}

// WriteHits writes one result line for a query: the hit count, a
// space, then the ascending hit ids space-separated. A miss is
// rendered as "0 " (count followed by a trailing space), matching the
// query program's output contract exactly.
func WriteHits(w io.Writer, ids []int) error {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.Itoa(id)
	}
	_, err := fmt.Fprintf(w, "%d %s\n", len(ids), strings.Join(strs, " "))
	return err
}
