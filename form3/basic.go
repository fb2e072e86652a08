package form3

import (
	"github.com/soypat/polyface"
	"github.com/soypat/polyface/form3/must3"
)

// Tube returns a tube mesh with outer diameter odm, inner diameter idm and length l.
func Tube[F polyface.Float](odm, idm, l F, q int) (m polyface.Mesh[F], err error) {
	defer catch(&err)
	return must3.Tube(odm, idm, l, q), err
}

// HalfPipe returns a tube mesh cut lengthwise to the arc angle a (radians).
func HalfPipe[F polyface.Float](a, odm, idm, l F, q int) (m polyface.Mesh[F], err error) {
	defer catch(&err)
	return must3.HalfPipe(a, odm, idm, l, q), err
}

// Pin returns the mesh of a pointed solid of revolution with the given radii
// spaced evenly over its length l.
func Pin[F polyface.Float](l F, radii []F, q int) (m polyface.Mesh[F], err error) {
	defer catch(&err)
	return must3.Pin(l, radii, q), err
}

// Sphere returns a sphere mesh.
func Sphere[F polyface.Float](radius F, q int) (m polyface.Mesh[F], err error) {
	defer catch(&err)
	return must3.Sphere(radius, q), err
}

// Torus returns a torus mesh built by rotating its circular section.
func Torus[F polyface.Float](c, r F, p, q int) (m polyface.Mesh[F], err error) {
	defer catch(&err)
	return must3.Torus(c, r, p, q), err
}

// RTorus returns a torus mesh built by revolution of its circular section.
func RTorus[F polyface.Float](c, r F, p, q int) (m polyface.Mesh[F], err error) {
	defer catch(&err)
	return must3.RTorus(c, r, p, q), err
}

// Ring returns the mesh of a torus with an elliptic section.
func Ring[F polyface.Float](c, d, e F, p, q int) (m polyface.Mesh[F], err error) {
	defer catch(&err)
	return must3.Ring(c, d, e, p, q), err
}

// Revolve returns the mesh of a profile table swept around the Y axis.
// The profile table must hold 2p+1 entries.
func Revolve[F polyface.Float](r F, p, q int, caps polyface.Caps, tbl []polyface.V2[F]) (m polyface.Mesh[F], err error) {
	defer catch(&err)
	m, _ = polyface.RevolveTable(r, p, q, caps, tbl)
	return m, err
}
