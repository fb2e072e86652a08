package polyface

// RecenterWithVolume computes the centroid and signed volume of the mesh
// described by faces and vertices, then subtracts the centroid from every
// vertex in place. The returned centroid is the value before subtraction.
func RecenterWithVolume[F Float](faces []Face, vertices []V3[F], eps F) (centroid V3[F], vol F) {
	centroid, vol = CentroidAndVolume(faces, vertices, eps)
	translate(vertices, centroid)
	return centroid, vol
}

// Recenter is RecenterWithVolume for callers that have no use for the volume.
// When the mesh encloses no volume (open surfaces) the deduplicated vertex
// average is used as best-effort center.
func Recenter[F Float](faces []Face, vertices []V3[F], eps F) V3[F] {
	centroid, vol := CentroidAndVolume(faces, vertices, eps)
	if vol == 0 && len(vertices) > 0 {
		centroid = RoundToPrecision(CentroidDedup(vertices, eps), V3[F]{}, eps)
	}
	translate(vertices, centroid)
	return centroid
}

func translate[F Float](vertices []V3[F], offset V3[F]) {
	if offset == (V3[F]{}) {
		return
	}
	for i := range vertices {
		vertices[i] = vertices[i].Sub(offset)
	}
}
