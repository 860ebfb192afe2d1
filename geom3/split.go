package geom3

// SplitTriangle partitions a triangle straddling plane into 2 or 3
// sub-triangles, per spec:
//
//	|pos|=1 |neg|=2 |cop|=0: [P,I1,I2], [N1,I1,I2], [N1,I2,N2]
//	|pos|=2 |neg|=1 |cop|=0: [N,I1,I2], [I1,P1,I2], [I2,P1,P2]
//	|pos|=1 |neg|=1 |cop|=1: [P,C,I], [N,C,I]
//	otherwise: [triangle] unchanged
//
// Iᵢ is always the edge/plane intersection point between the lone
// vertex on one side and the corresponding vertex on the other side.
func SplitTriangle(tri [3]Point, plane Plane, eps float64) [][3]Point {
	var pos, neg, cop []Point
	for _, v := range tri {
		switch ClassifyPoint(plane, v, eps) {
		case Positive:
			pos = append(pos, v)
		case Negative:
			neg = append(neg, v)
		default:
			cop = append(cop, v)
		}
	}

	switch {
	case len(pos) == 1 && len(neg) == 2 && len(cop) == 0:
		P := pos[0]
		N1, N2 := neg[0], neg[1]
		I1 := IntersectEdgePlane(P, N1, plane, eps)
		I2 := IntersectEdgePlane(P, N2, plane, eps)
		return [][3]Point{
			{P, I1, I2},
			{N1, I1, I2},
			{N1, I2, N2},
		}
	case len(pos) == 2 && len(neg) == 1 && len(cop) == 0:
		N := neg[0]
		P1, P2 := pos[0], pos[1]
		I1 := IntersectEdgePlane(N, P1, plane, eps)
		I2 := IntersectEdgePlane(N, P2, plane, eps)
		return [][3]Point{
			{N, I1, I2},
			{I1, P1, I2},
			{I2, P1, P2},
		}
	case len(pos) == 1 && len(neg) == 1 && len(cop) == 1:
		P := pos[0]
		N := neg[0]
		C := cop[0]
		I := IntersectEdgePlane(P, N, plane, eps)
		return [][3]Point{
			{P, C, I},
			{N, C, I},
		}
	default:
		return [][3]Point{tri}
	}
}
