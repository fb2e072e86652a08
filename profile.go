package polyface

// ProfileCentroidX locates the x position that splits the signed area under
// the polyline pts (measured against the x axis) in two equal halves. pts is
// a closed simple profile given without repeating the first point; y is the
// radius and x the axial offset.
//
// The position is searched on the first edge at which the cumulative area
// reaches half the total, by solving the area-fraction quadratic on that edge.
// If no root falls on the edge (flat edges make the quadratic degenerate) the
// result is the zero vector and found is false. The y component is never computed.
// The profile may be walked in either x direction. Profiles whose area
// contributions change sign are not supported.
func ProfileCentroidX[F Float](pts []V2[F]) (centroid V2[F], found bool) {
	if len(pts) < 2 {
		panic("profile needs at least two points")
	}
	type trapezoid struct {
		area F // signed area under the edge.
		cum  F // cumulative area of all edges up to and including this one.
	}
	acc := make([]trapezoid, len(pts)-1)
	var cum F
	for i := range acc {
		a, b := pts[i], pts[i+1]
		area := (b[0] - a[0]) * (b[1] + a[1]) / 2
		cum += area
		acc[i] = trapezoid{area: area, cum: cum}
	}
	target := cum / 2
	edge := len(acc) - 1
	for i, t := range acc {
		if abs(t.cum) >= abs(target) {
			edge = i
			break
		}
	}
	var prev F
	if edge > 0 {
		prev = acc[edge-1].cum
	}
	a, b := pts[edge], pts[edge+1]
	dx, dy := b[0]-a[0], b[1]-a[1]
	// Area under the edge from a to the point at fraction m:
	//  dx*a.y*m + dx*dy*m*m/2
	roots := Solve(dx*dy/2, dx*a[1], prev-target)
	xs := []F{a[0] + roots[0]*dx, a[0] + roots[1]*dx}
	lo, hi := a[0], b[0]
	if hi < lo {
		lo, hi = hi, lo
	}
	x, ok := PickRootInRange(xs, lo, hi)
	if !ok {
		return V2[F]{}, false
	}
	return V2[F]{x, 0}, true
}
