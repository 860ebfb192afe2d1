package formatting

import (
	"bytes"
	"testing"

	"github.com/coredelta/bsp3d/geom3"
)

func TestFormattingHelpers(t *testing.T) {
	pt := geom3.Point{X: 1.2345, Y: -9.876, Z: 3.5}
	if s := PointString(pt); s == "" {
		t.Fatalf("point string should not be empty")
	}

	plane := geom3.Plane{A: 0, B: 0, C: 1, D: 0}
	if s := PlaneString(plane); s == "" {
		t.Fatalf("plane string should not be empty")
	}

	seg := geom3.Segment{P0: pt, P1: geom3.Point{X: 0, Y: 0, Z: 0}}
	if s := SegmentString(seg); s == "" {
		t.Fatalf("segment string should not be empty")
	}

	tri := geom3.IDTriangle{ID: 1, V: [3]geom3.Point{pt, pt, pt}}
	if s := TriangleString(tri); s == "" {
		t.Fatalf("triangle string should not be empty")
	}

	buf := &bytes.Buffer{}
	if err := WritePoint(buf, pt); err != nil {
		t.Fatalf("write point failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output for WritePoint")
	}
}
