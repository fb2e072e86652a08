package polyface

// Caps selects which ends of a revolution are closed. A closed end gets one
// apex vertex on the axis and a fan of triangles joining it to the boundary
// ring. An open end gets neither.
type Caps struct {
	Bottom bool
	Top    bool
}

// ProfileFunc returns the axial offset and radius of ring n out of s rings.
type ProfileFunc[F Float] func(n, s int) (offset, radius F)

// grid addresses the vertices of a ring-major sweep of s rings of c vertices.
// Ring indices never wrap; angular indices wrap when the sweep is closed.
type grid struct {
	s, c int
	wrap bool
}

func (g grid) idx(n, m int) int { return n*g.c + m }

// nextAngle returns the angular index following m.
func (g grid) nextAngle(m int) int {
	m++
	if g.wrap && m == g.c {
		return 0
	}
	return m
}

// quads returns the angular divisions stitched between two rings.
func (g grid) quads() int {
	if g.wrap {
		return g.c
	}
	return g.c - 1
}

// side returns the two triangles of the quad joining ring n to ring n+1 at
// angular division m.
func (g grid) side(n, m int) Face {
	k, kc := g.idx(n, m), g.idx(n, g.nextAngle(m))
	ks, ksc := g.idx(n+1, m), g.idx(n+1, g.nextAngle(m))
	return Face{{k, kc, ksc}, {k, ksc, ks}}
}

// bottom returns the fan triangle joining the first ring to apex.
func (g grid) bottom(apex, m int) Face {
	return Face{{apex, g.idx(0, g.nextAngle(m)), g.idx(0, m)}}
}

// top returns the fan triangle joining the last ring to apex.
func (g grid) top(apex, m int) Face {
	return Face{{apex, g.idx(g.s-1, m), g.idx(g.s-1, g.nextAngle(m))}}
}

// Revolve sweeps a profile around the Y axis.
//
// There are s = 2p+1 rings along the axis and c = 4q divisions around it.
// Ring n is placed at axial offset r*offset with radius r*radius as returned
// by f(n, s). The resulting mesh is recentered on its centroid, which is
// returned along with it. Face groups are emitted per ring pair and angular
// division in the order bottom fan, side quad, top fan.
//
// It panics if p < 1 or q < 1.
func Revolve[F Float](r F, p, q int, caps Caps, f ProfileFunc[F]) (Mesh[F], V3[F]) {
	if p < 1 || q < 1 {
		panic("revolution needs p >= 1 and q >= 1")
	}
	g := grid{s: 2*p + 1, c: 4 * q, wrap: true}
	vtx := make([]V3[F], 0, g.s*g.c+2)
	for n := 0; n < g.s; n++ {
		offset, radius := f(n, g.s)
		w := r * radius
		for m := 0; m < g.c; m++ {
			th := tau * F(m) / F(g.c)
			vtx = append(vtx, V3[F]{w * sin(th), r * offset, w * cos(th)})
		}
	}
	bottom, top := -1, -1
	if caps.Bottom {
		offset, _ := f(0, g.s)
		bottom = len(vtx)
		vtx = append(vtx, V3[F]{0, r * offset, 0})
	}
	if caps.Top {
		offset, _ := f(g.s-1, g.s)
		top = len(vtx)
		vtx = append(vtx, V3[F]{0, r * offset, 0})
	}

	faces := make([]Face, 0, (g.s-1)*g.c+2*g.c)
	for n := 0; n < g.s-1; n++ {
		for m := 0; m < g.quads(); m++ {
			if caps.Bottom && n == 0 {
				faces = append(faces, g.bottom(bottom, m))
			}
			faces = append(faces, g.side(n, m))
			if caps.Top && n == g.s-2 {
				faces = append(faces, g.top(top, m))
			}
		}
	}
	mesh := Mesh[F]{Vertices: vtx, Faces: faces}
	cg, vol := RecenterWithVolume(mesh.Faces, mesh.Vertices, DefaultEpsilon)
	mesh.Volume = vol
	mesh.Centered = vol != 0
	return mesh, cg
}

// RevolveTable is Revolve with the profile read from tbl, where tbl[n] holds
// the (offset, radius) pair of ring n. It panics if len(tbl) != 2p+1.
func RevolveTable[F Float](r F, p, q int, caps Caps, tbl []V2[F]) (Mesh[F], V3[F]) {
	if len(tbl) != 2*p+1 {
		panic("profile table length != 2p+1")
	}
	return Revolve(r, p, q, caps, func(n, s int) (F, F) {
		v := tbl[n%s]
		return v[0], v[1]
	})
}

// RevolveArc sweeps a closed profile through arc radians around the Y axis,
// centered on the +Z axis, and closes both cut ends with a fan over the
// profile polygon. The profile must return to its first point at ring s-1,
// the way a closed table does. There are 4q angular divisions and 4q+1
// angular stations. The mesh is recentered on its centroid, which is returned.
//
// It panics if p < 1, q < 1 or arc is outside (0, 2*pi).
func RevolveArc[F Float](r F, p, q int, arc F, f ProfileFunc[F]) (Mesh[F], V3[F]) {
	if p < 1 || q < 1 {
		panic("revolution needs p >= 1 and q >= 1")
	}
	if arc <= 0 || arc >= tau {
		panic("arc must be in (0, 2*pi)")
	}
	c := 4 * q
	g := grid{s: 2*p + 1, c: c + 1}
	vtx := make([]V3[F], 0, g.s*g.c)
	for n := 0; n < g.s; n++ {
		offset, radius := f(n, g.s)
		w := r * radius
		for m := 0; m < g.c; m++ {
			th := arc*F(m)/F(c) - arc/2
			vtx = append(vtx, V3[F]{w * sin(th), r * offset, w * cos(th)})
		}
	}
	faces := make([]Face, 0, (g.s-1)*c+2)
	// Ring s-1 repeats ring 0 so the cut ends span rings 0..s-2.
	start, end := make(Face, 0, g.s-3), make(Face, 0, g.s-3)
	for n := 1; n < g.s-2; n++ {
		start = append(start, Tri{g.idx(0, 0), g.idx(n, 0), g.idx(n+1, 0)})
		end = append(end, Tri{g.idx(0, c), g.idx(n+1, c), g.idx(n, c)})
	}
	faces = append(faces, start)
	for n := 0; n < g.s-1; n++ {
		for m := 0; m < g.quads(); m++ {
			faces = append(faces, g.side(n, m))
		}
	}
	faces = append(faces, end)
	mesh := Mesh[F]{Vertices: vtx, Faces: faces}
	cg, vol := RecenterWithVolume(mesh.Faces, mesh.Vertices, DefaultEpsilon)
	mesh.Volume = vol
	mesh.Centered = vol != 0
	return mesh, cg
}
