package hull

import "github.com/coredelta/bsp3d/geom3"

// Hull is the result of Build: the input points alongside the faces of
// their convex hull. Not every point in Points is necessarily
// referenced by a face; interior points are never added to any face.
type Hull struct {
	Points []geom3.Point
	Faces  []*Face
}

// Build computes the convex hull of points using incremental
// insertion: an initial tetrahedron is seeded from four
// non-coplanar points, then every remaining point is inserted by
// removing the faces it can see and re-triangulating the resulting
// hole with a fan of new faces anchored at the horizon.
func Build(points []geom3.Point, opts ...Option) (*Hull, error) {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(points, &cfg)
}

func build(points []geom3.Point, cfg *config) (*Hull, error) {
	n := len(points)
	if n < 3 {
		return nil, ErrTooFewPoints
	}
	if n < 4 {
		return buildTriangle(points, cfg)
	}

	p0 := points[0]

	i1 := -1
	maxDist := -1.0
	for i := 1; i < n; i++ {
		d := geom3.Dist2(points[i], p0)
		if d > maxDist {
			maxDist, i1 = d, i
		}
	}
	if i1 == -1 || maxDist <= cfg.seedEps {
		return nil, ErrTooFewPoints
	}

	lineDir := points[i1].Sub(p0)
	i2 := -1
	maxDist = -1.0
	for i := 1; i < n; i++ {
		if i == i1 {
			continue
		}
		vec := points[i].Sub(p0)
		cross := lineDir.Cross(vec)
		d := cross.Dot(cross)
		if d > maxDist {
			maxDist, i2 = d, i
		}
	}
	if i2 == -1 || maxDist <= cfg.seedEps {
		return nil, ErrTooFewPoints
	}

	vec1 := points[i1].Sub(p0)
	vec2 := points[i2].Sub(p0)
	baseNormal := vec1.Cross(vec2)

	i3 := -1
	maxDist = -1.0
	for i := 0; i < n; i++ {
		if i == 0 || i == i1 || i == i2 {
			continue
		}
		vec3 := points[i].Sub(p0)
		volume := baseNormal.Dot(vec3)
		if abs(volume) > maxDist {
			maxDist, i3 = abs(volume), i
		}
	}
	if i3 == -1 || maxDist <= cfg.seedEps {
		return nil, ErrTooFewPoints
	}

	h := &Hull{Points: points}
	createFace := func(a, b, c, fourth vertexIndex) *Face {
		pa, pb, pc := points[a], points[b], points[c]
		normal := pb.Sub(pa).Cross(pc.Sub(pa))
		vecFourth := points[fourth].Sub(pa)
		if normal.Dot(vecFourth) > 0 {
			return &Face{Verts: [3]vertexIndex{c, b, a}}
		}
		return &Face{Verts: [3]vertexIndex{a, b, c}}
	}

	vi1, vi2, vi3 := vertexIndex(i1), vertexIndex(i2), vertexIndex(i3)
	face0 := createFace(0, vi1, vi2, vi3)
	face1 := createFace(0, vi1, vi3, vi2)
	face2 := createFace(0, vi2, vi3, vi1)
	face3 := createFace(vi1, vi2, vi3, 0)
	h.Faces = []*Face{face0, face1, face2, face3}

	stitchNewFaces(h.Faces)

	seeds := map[int]bool{0: true, i1: true, i2: true, i3: true}
	for idx := 0; idx < n; idx++ {
		if seeds[idx] {
			continue
		}
		insertPoint(h, vertexIndex(idx), cfg.visibilityEps)
	}

	return h, nil
}

// buildTriangle handles the n == 3 special case: a single flat face
// when the three points are not collinear, otherwise no hull at all.
func buildTriangle(points []geom3.Point, cfg *config) (*Hull, error) {
	p0, p1, p2 := points[0], points[1], points[2]
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	if normal.Dot(normal) <= cfg.seedEps {
		return nil, ErrTooFewPoints
	}
	return &Hull{
		Points: points,
		Faces:  []*Face{{Verts: [3]vertexIndex{0, 1, 2}}},
	}, nil
}

// stitchNewFaces connects every pair of faces in faces that share an
// edge, wiring each face's Neighbors slot for that edge.
func stitchNewFaces(faces []*Face) {
	type occurrence struct {
		face    *Face
		edgeIdx int
	}
	edges := make(map[edgeKey][]occurrence)
	for _, f := range faces {
		for e := 0; e < 3; e++ {
			u, v := f.Verts[e], f.Verts[(e+1)%3]
			key := newEdgeKey(u, v)
			edges[key] = append(edges[key], occurrence{face: f, edgeIdx: e})
		}
	}
	for _, occs := range edges {
		if len(occs) != 2 {
			continue
		}
		a, b := occs[0], occs[1]
		a.face.Neighbors[a.edgeIdx] = b.face
		b.face.Neighbors[b.edgeIdx] = a.face
	}
}

// isVisible reports whether point is on the outward side of face's
// plane, per the spec's ε = 1e-7 visibility test.
func isVisible(h *Hull, face *Face, point geom3.Point, eps float64) bool {
	p0 := h.Points[face.Verts[0]]
	p1 := h.Points[face.Verts[1]]
	p2 := h.Points[face.Verts[2]]
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	vec := point.Sub(p0)
	return normal.Dot(vec) > eps
}

type horizonEdge struct {
	u, v     vertexIndex
	faceVis  *Face
	neighbor *Face
	edgeIdx  int
}

// insertPoint inserts the point at idx into the hull, replacing every
// face visible from it with a fan of new faces anchored at idx and
// the horizon it shares with the invisible remainder of the hull.
func insertPoint(h *Hull, idx vertexIndex, eps float64) {
	point := h.Points[idx]

	visible := make([]*Face, 0)
	visibleSet := make(map[*Face]bool)
	for _, f := range h.Faces {
		if isVisible(h, f, point, eps) {
			visible = append(visible, f)
			visibleSet[f] = true
		}
	}
	if len(visible) == 0 {
		return
	}

	horizonSeen := make(map[edgeKey]bool)
	var horizon []horizonEdge
	for _, faceVis := range visible {
		for e := 0; e < 3; e++ {
			neighbor := faceVis.Neighbors[e]
			if neighbor != nil && visibleSet[neighbor] {
				continue
			}
			u, v := faceVis.Verts[(e+1)%3], faceVis.Verts[e]
			key := newEdgeKey(u, v)
			if horizonSeen[key] {
				continue
			}
			horizonSeen[key] = true
			horizon = append(horizon, horizonEdge{u: u, v: v, faceVis: faceVis, neighbor: neighbor, edgeIdx: e})
		}
	}

	newFaces := make([]*Face, 0, len(horizon))
	for _, he := range horizon {
		nf := &Face{Verts: [3]vertexIndex{he.v, he.u, idx}}
		nf.Neighbors[0] = he.neighbor
		if he.neighbor != nil {
			for k := 0; k < 3; k++ {
				if he.neighbor.Neighbors[k] == he.faceVis {
					he.neighbor.Neighbors[k] = nf
					break
				}
			}
		}
		newFaces = append(newFaces, nf)
	}

	type pending struct {
		face    *Face
		edgeIdx int
	}
	edgeMapNew := make(map[edgeKey]pending)
	for _, nf := range newFaces {
		for _, localIdx := range [2]int{1, 2} {
			aIdx := localIdx
			bIdx := (localIdx + 1) % 3
			a, b := nf.Verts[aIdx], nf.Verts[bIdx]
			key := newEdgeKey(a, b)
			if other, ok := edgeMapNew[key]; ok {
				nf.Neighbors[localIdx] = other.face
				other.face.Neighbors[other.edgeIdx] = nf
				delete(edgeMapNew, key)
			} else {
				edgeMapNew[key] = pending{face: nf, edgeIdx: localIdx}
			}
		}
	}

	kept := make([]*Face, 0, len(h.Faces)-len(visible)+len(newFaces))
	for _, f := range h.Faces {
		if !visibleSet[f] {
			kept = append(kept, f)
		}
	}
	kept = append(kept, newFaces...)
	h.Faces = kept
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
