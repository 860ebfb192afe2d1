// Package hull implements the incremental 3D convex hull builder:
// seed tetrahedron construction, horizon-edge detection against the
// visible-face set, and face-adjacency bookkeeping as new points are
// inserted.
package hull

// vertexIndex is an index into Hull.Points.
type vertexIndex int

// Face is an oriented triangular face of the hull.
//
// Neighbors[i] is the face sharing the edge (Verts[i], Verts[(i+1)%3]).
type Face struct {
	Verts     [3]vertexIndex
	Neighbors [3]*Face
}

// edgeKey is a canonical (undirected) edge between two vertex indices,
// adapted from the mesh toolkit's Edge type: stored with the smaller
// index first so that (u,v) and (v,u) hash identically.
type edgeKey struct {
	lo, hi vertexIndex
}

func newEdgeKey(u, v vertexIndex) edgeKey {
	if u < v {
		return edgeKey{lo: u, hi: v}
	}
	return edgeKey{lo: v, hi: u}
}
