package formatting

import (
	"fmt"
	"io"

	"github.com/coredelta/bsp3d/geom3"
)

// PlaneString renders a plane's coefficients.
func PlaneString(p geom3.Plane) string {
	return fmt.Sprintf("Plane{%.6g x + %.6g y + %.6g z + %.6g = 0}", p.A, p.B, p.C, p.D)
}

// WritePlane writes a plane to a writer.
func WritePlane(w io.Writer, p geom3.Plane) error {
	_, err := io.WriteString(w, PlaneString(p))
	return err
}
