package formatting

import (
	"fmt"
	"io"

	"github.com/coredelta/bsp3d/geom3"
)

// TriangleString renders a triangle's id and vertex positions.
func TriangleString(t geom3.IDTriangle) string {
	return fmt.Sprintf("Triangle{id: %d, %s, %s, %s}", t.ID,
		PointString(t.V[0]), PointString(t.V[1]), PointString(t.V[2]))
}

// WriteTriangle writes a triangle to a writer.
func WriteTriangle(w io.Writer, t geom3.IDTriangle) error {
	_, err := io.WriteString(w, TriangleString(t))
	return err
}
