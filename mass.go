package polyface

// CentroidDedup returns the plain average of pts after discarding points that
// lie within eps (per axis) of a previously kept point. The first seen point
// wins. This ignores the geometry around each point and is only a rough
// estimate, useful as a cross-check of CentroidAndVolume.
// It panics if pts is empty.
func CentroidDedup[F Float](pts []V3[F], eps F) V3[F] {
	kept := make([]V3[F], 0, len(pts))
NEXT:
	for _, p := range pts {
		for _, k := range kept {
			if EqualWithin(p, k, eps) {
				continue NEXT
			}
		}
		kept = append(kept, p)
	}
	return Average3(kept)
}

// CentroidAndVolume computes the centroid and signed volume of a closed,
// consistently wound triangle mesh by decomposing it into tetrahedra with
// apex at the origin.
//
// The returned volume is six times the enclosed volume and is positive for
// outward facing (counter-clockwise) winding. Centroid components within eps
// of zero are snapped to zero. Open meshes give results with no physical
// meaning. If the accumulated volume is exactly zero the zero centroid is returned.
func CentroidAndVolume[F Float](faces []Face, vertices []V3[F], eps F) (centroid V3[F], vol F) {
	var moment V3[F]
	for _, f := range faces {
		for _, t := range f {
			a, b, c := vertices[t[0]], vertices[t[1]], vertices[t[2]]
			m := c.Dot(a.Cross(b))
			vol += m
			// Tetrahedron centroid is (origin+a+b+c)/4.
			moment = moment.Add(a.Add(b).Add(c).Scale(m / 4))
		}
	}
	if vol == 0 {
		return V3[F]{}, 0
	}
	return RoundToPrecision(moment.Scale(1/vol), V3[F]{}, eps), vol
}
