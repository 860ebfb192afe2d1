package meshio

import (
	"io"

	"github.com/coredelta/bsp3d/geom3"
	"github.com/coredelta/bsp3d/hull"
	"github.com/krasin/stl"
)

// STLTriangle is a plain, id-free triangle suitable for writing out as
// a standard STL facet; unlike geom3.IDTriangle it carries no query id
// since the STL format has no concept of one.
type STLTriangle = stl.Triangle

// ReadSTL decodes an STL mesh into a triangle-soup Scene. Ids are
// assigned 1-based in the order the facets appear in the file, the
// same convention the token-stream reader uses.
func ReadSTL(r io.Reader) (Scene, error) {
	triangles, err := stl.Read(r)
	if err != nil {
		return Scene{}, err
	}

	scene := Scene{Triangles: make([]geom3.IDTriangle, len(triangles))}
	for i, t := range triangles {
		scene.Triangles[i] = geom3.IDTriangle{
			ID: i + 1,
			V: [3]geom3.Point{
				stlPointToGeom(t.V[0]),
				stlPointToGeom(t.V[1]),
				stlPointToGeom(t.V[2]),
			},
		}
	}
	return scene, nil
}

// WriteSTL writes triangles as a binary STL mesh.
func WriteSTL(w io.Writer, triangles []geom3.IDTriangle) error {
	out := make([]stl.Triangle, len(triangles))
	for i, t := range triangles {
		out[i] = stl.Triangle{V: [3]stl.Point{
			geomPointToSTL(t.V[0]),
			geomPointToSTL(t.V[1]),
			geomPointToSTL(t.V[2]),
		}}
	}
	return stl.WriteBinary(w, out)
}

// WriteSTLFaces writes a flat triangle list (e.g. from ToSTL) as a
// binary STL mesh.
func WriteSTLFaces(w io.Writer, faces []STLTriangle) error {
	return stl.WriteBinary(w, faces)
}

// ToSTL renders a computed hull as a flat STL-ready triangle list, one
// triangle per face in the hull's existing vertex order.
func ToSTL(h *hull.Hull) []STLTriangle {
	out := make([]STLTriangle, len(h.Faces))
	for i, f := range h.Faces {
		out[i] = stl.Triangle{V: [3]stl.Point{
			geomPointToSTL(h.Points[f.Verts[0]]),
			geomPointToSTL(h.Points[f.Verts[1]]),
			geomPointToSTL(h.Points[f.Verts[2]]),
		}}
	}
	return out
}

func stlPointToGeom(p stl.Point) geom3.Point {
	return geom3.Point{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

func geomPointToSTL(p geom3.Point) stl.Point {
	return stl.Point{float32(p.X), float32(p.Y), float32(p.Z)}
}
