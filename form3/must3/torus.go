package must3

import (
	"math"

	"github.com/soypat/polyface"
	"github.com/soypat/polyface/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Torus (tube circle rotated around the Y axis)

// Torus returns the mesh of a torus with a circular section of radius r whose
// center lies at distance c from the Y axis. The section is sampled with 4q
// vertices and placed at 4p stations around the axis by rotating it about Y.
// Unlike RTorus no ring is duplicated to close the surface.
func Torus[F polyface.Float](c, r F, p, q int) polyface.Mesh[F] {
	if r <= 0 {
		panic("radius <= 0")
	}
	if c <= r {
		panic("center distance <= radius")
	}
	if p < 1 || q < 1 {
		panic("torus needs p >= 1 and q >= 1")
	}
	np, nq := 4*p, 4*q
	vtx := make([]polyface.V3[F], 0, np*nq)
	for pn := 0; pn < np; pn++ {
		pth := 2 * math.Pi * float64(pn) / float64(np)
		center := r3.Vec{X: float64(c) * math.Sin(pth), Z: float64(c) * math.Cos(pth)}
		// Rotate the section plane so its X axis points away from the Y axis.
		tr := d3.RotationY(pth - math.Pi/2).Translate(center)
		for qn := 0; qn < nq; qn++ {
			qth := 2 * math.Pi * float64(qn) / float64(nq)
			v := r3.Vec{X: float64(r) * math.Cos(qth), Y: float64(r) * math.Sin(qth)}
			vtx = append(vtx, d3.FromR3[F](tr.Transform(v)))
		}
	}
	e := np * nq
	faces := make([]polyface.Face, 0, e)
	for pn := 0; pn < np; pn++ {
		for qn := 0; qn < nq; qn++ {
			k := pn*nq + qn
			kq := pn*nq + (qn+1)%nq
			kp := (k + nq) % e
			kpq := (kq + nq) % e
			faces = append(faces, polyface.Face{{k, kpq, kq}, {k, kp, kpq}})
		}
	}
	m := polyface.Mesh[F]{Vertices: vtx, Faces: faces}
	_, m.Volume = polyface.RecenterWithVolume(m.Faces, m.Vertices, polyface.DefaultEpsilon)
	m.Centered = m.Volume != 0
	return m
}
