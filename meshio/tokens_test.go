package meshio

import (
	"strings"
	"testing"
)

func TestReadTokens(t *testing.T) {
	input := "3 1 1\n" +
		"0 0 0\n" +
		"10 0 0\n" +
		"0 10 0\n" +
		"1 2 3\n" +
		"2 2 -5 2 2 5\n"

	scene, err := ReadTokens(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scene.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(scene.Points))
	}
	if len(scene.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(scene.Triangles))
	}
	if scene.Triangles[0].ID != 1 {
		t.Fatalf("expected triangle id 1, got %d", scene.Triangles[0].ID)
	}
	if len(scene.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(scene.Segments))
	}
}

func TestReadPoints(t *testing.T) {
	input := "2\n0 0 0\n1 1 1\n"
	points, err := ReadPoints(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
}

func TestWriteHits(t *testing.T) {
	var buf strings.Builder
	if err := WriteHits(&buf, []int{1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "2 1 2\n" {
		t.Fatalf("got %q, want %q", buf.String(), "2 1 2\n")
	}

	buf.Reset()
	if err := WriteHits(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "0 \n" {
		t.Fatalf("got %q, want %q", buf.String(), "0 \n")
	}
}

func TestReadTokensMalformed(t *testing.T) {
	if _, err := ReadTokens(strings.NewReader("3 0")); err == nil {
		t.Fatalf("expected an error on truncated input")
	}
}
