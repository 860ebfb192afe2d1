package formatting

import (
	"fmt"
	"io"

	"github.com/coredelta/bsp3d/geom3"
)

// SegmentString renders a query segment's endpoints.
func SegmentString(s geom3.Segment) string {
	return fmt.Sprintf("Segment{%s - %s}", PointString(s.P0), PointString(s.P1))
}

// WriteSegment writes a segment to a writer.
func WriteSegment(w io.Writer, s geom3.Segment) error {
	_, err := io.WriteString(w, SegmentString(s))
	return err
}
