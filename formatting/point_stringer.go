// Package formatting renders the core geometric types as debug-
// friendly strings, one file per type.
package formatting

import (
	"fmt"
	"io"

	"github.com/coredelta/bsp3d/geom3"
)

// PointString returns a concise string representation of a point.
func PointString(p geom3.Point) string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", p.X, p.Y, p.Z)
}

// WritePoint writes a verbose representation of a point to a writer.
func WritePoint(w io.Writer, p geom3.Point) error {
	_, err := fmt.Fprintf(w, "Point{X: %v, Y: %v, Z: %v}", p.X, p.Y, p.Z)
	return err
}
