/*

Generic 2D/3D Vectors

*/

package polyface

// V2 is a 2D vector. For profiles index 0 is the axial offset and index 1 the radius.
type V2[F Float] [2]F

// V3 is a 3D vector.
type V3[F Float] [3]F

// Add adds two vectors. Return v = a + b.
func (a V2[F]) Add(b V2[F]) V2[F] {
	return V2[F]{a[0] + b[0], a[1] + b[1]}
}

// Sub subtracts two vectors. Return v = a - b.
func (a V2[F]) Sub(b V2[F]) V2[F] {
	return V2[F]{a[0] - b[0], a[1] - b[1]}
}

// Scale multiplies each component of the vector by k.
func (a V2[F]) Scale(k F) V2[F] {
	return V2[F]{k * a[0], k * a[1]}
}

// Add adds two vectors. Return v = a + b.
func (a V3[F]) Add(b V3[F]) V3[F] {
	return V3[F]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub subtracts two vectors. Return v = a - b.
func (a V3[F]) Sub(b V3[F]) V3[F] {
	return V3[F]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale multiplies each component of the vector by k.
func (a V3[F]) Scale(k F) V3[F] {
	return V3[F]{k * a[0], k * a[1], k * a[2]}
}

// Dot returns the dot product a.b
func (a V3[F]) Dot(b V3[F]) F {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product a x b.
func (a V3[F]) Cross(b V3[F]) V3[F] {
	return V3[F]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Sum2 returns the component-wise sum of pts.
func Sum2[F Float](pts []V2[F]) V2[F] {
	var s V2[F]
	for _, p := range pts {
		s = s.Add(p)
	}
	return s
}

// Average2 returns the component-wise mean of pts. It panics if pts is empty.
func Average2[F Float](pts []V2[F]) V2[F] {
	if len(pts) == 0 {
		panic("average of empty point set")
	}
	return Sum2(pts).Scale(1 / F(len(pts)))
}

// Sum3 returns the component-wise sum of pts.
func Sum3[F Float](pts []V3[F]) V3[F] {
	var s V3[F]
	for _, p := range pts {
		s = s.Add(p)
	}
	return s
}

// Average3 returns the component-wise mean of pts. It panics if pts is empty.
func Average3[F Float](pts []V3[F]) V3[F] {
	if len(pts) == 0 {
		panic("average of empty point set")
	}
	return Sum3(pts).Scale(1 / F(len(pts)))
}

// CentroidIndexed returns the average of the points of pts addressed by idx.
// Used to synthesize a face center vertex.
func CentroidIndexed[F Float](idx []int, pts []V3[F]) V3[F] {
	sub := make([]V3[F], len(idx))
	for i, k := range idx {
		sub[i] = pts[k]
	}
	return Average3(sub)
}
