package must3

import (
	"math"
	"testing"

	"github.com/soypat/polyface"
	"gonum.org/v1/gonum/floats/scalar"
)

// polygonArea returns the area of a regular n-gon of unit circumradius.
func polygonArea(n int) float64 {
	return float64(n) / 2 * math.Sin(2*math.Pi/float64(n))
}

func TestTube(t *testing.T) {
	const (
		odm, idm, l = 4.0, 2.0, 3.0
		q           = 3
		c           = 4 * q
	)
	m := Tube(odm, idm, l, q)
	if len(m.Vertices) != 5*c {
		t.Errorf("got %d vertices, want %d", len(m.Vertices), 5*c)
	}
	if m.NumTriangles() != 2*4*c {
		t.Errorf("got %d triangles, want %d", m.NumTriangles(), 2*4*c)
	}
	want := 6 * polygonArea(c) * (odm*odm - idm*idm) / 4 * l
	if !scalar.EqualWithinRel(m.Volume, want, 1e-12) {
		t.Errorf("got volume %g, want %g", m.Volume, want)
	}
	if !m.Centered {
		t.Error("tube not centered")
	}
	solid := Tube(odm, 0, l, q)
	if solid.Volume <= m.Volume {
		t.Errorf("solid cylinder volume %g not larger than tube volume %g", solid.Volume, m.Volume)
	}
}

func TestHalfPipe(t *testing.T) {
	const (
		arc         = 2 * math.Pi / 3
		odm, idm, l = 6.0, 4.0, 2.0
		q           = 2
		c           = 4 * q
	)
	m := HalfPipe(arc, odm, idm, l, q)
	want := 6 * c * math.Sin(arc/c) * (odm*odm - idm*idm) / 8 * l
	if !scalar.EqualWithinRel(m.Volume, want, 1e-12) {
		t.Errorf("got volume %g, want %g", m.Volume, want)
	}
	// Cut end caps are the profile rectangle at the first and last stations.
	// The closing ring repeats the first one and must be discarded.
	capPoints := func(station int) []polyface.V3[float64] {
		pts := make([]polyface.V3[float64], 5)
		for n := range pts {
			pts[n] = m.Vertices[n*(c+1)+station]
		}
		return pts
	}
	start := polyface.CentroidDedup(capPoints(0), 1e-9)
	end := polyface.CentroidDedup(capPoints(c), 1e-9)
	if !scalar.EqualWithinAbs(start[1], 0, 1e-12) || !scalar.EqualWithinAbs(end[1], 0, 1e-12) {
		t.Errorf("caps not centered on the length: %v %v", start, end)
	}
	if !scalar.EqualWithinAbs(start[0], -end[0], 1e-12) || !scalar.EqualWithinAbs(start[2], end[2], 1e-12) {
		t.Errorf("caps not mirrored about the arc bisector: %v %v", start, end)
	}
	// Cap centers lie at the mid radius, shifted by the removed centroid.
	mid := (odm + idm) / 4
	if d := math.Hypot(start[0], start[2]+centroidZ(m, odm/2)); !scalar.EqualWithinAbs(d, mid, 1e-9) {
		t.Errorf("cap center at radius %g, want %g", d, mid)
	}
}

// centroidZ recovers the removed centroid offset of an arc centered on +Z
// from the mid-arc vertex of the outer bottom ring of radius ro.
func centroidZ(m polyface.Mesh[float64], ro float64) float64 {
	stations := len(m.Vertices) / 5
	return ro - m.Vertices[stations/2][2]
}

func TestPin(t *testing.T) {
	const q = 2
	radii := []float64{0.5, 1, 1.5, 1, 0.5}
	m := Pin(4.0, radii, q)
	if len(m.Vertices) != len(radii)*4*q+2 {
		t.Errorf("got %d vertices", len(m.Vertices))
	}
	if m.NumTriangles() != 2*(len(radii)-1)*4*q+2*4*q {
		t.Errorf("got %d triangles", m.NumTriangles())
	}
	if m.Volume <= 0 {
		t.Errorf("pin volume %g not positive", m.Volume)
	}
	if err := m.Validate(); err != nil {
		t.Error(err)
	}
}

func TestPinBalance(t *testing.T) {
	got, found := PinBalance(2.0, []float64{0, 1, 2})
	if !found {
		t.Fatal("balance not found")
	}
	if !scalar.EqualWithinAbs(got[0], math.Sqrt2-1, 1e-12) {
		t.Errorf("got balance %v, want %g", got, math.Sqrt2-1)
	}
}

func TestSphere(t *testing.T) {
	const r = 2.0
	prev := 0.0
	for _, q := range []int{2, 4, 8, 16} {
		m := Sphere(r, q)
		want := 6 * 4.0 / 3 * math.Pi * r * r * r
		if m.Volume <= prev || m.Volume >= want {
			t.Errorf("q=%d: inscribed sphere volume %g must grow towards %g", q, m.Volume, want)
		}
		prev = m.Volume
		for i, v := range m.Vertices {
			if d := math.Sqrt(v.Dot(v)); d > r+1e-9 {
				t.Fatalf("q=%d: vertex %d at distance %g outside sphere", q, i, d)
			}
		}
	}
	if !scalar.EqualWithinRel(prev, 6*4.0/3*math.Pi*r*r*r, 2e-2) {
		t.Errorf("fine sphere volume %g too far from exact", prev)
	}
}

func TestTori(t *testing.T) {
	const (
		center = 3.0
		r      = 1.0
		p, q   = 3, 2
	)
	rt := RTorus(center, r, p, q)
	// Section is a 2p-gon whose centroid travels on the 4q-gon of radius center.
	want := 6 * 2 * polygonArea(4*q) * polygonArea(2*p) * r * r * center
	if !scalar.EqualWithinRel(rt.Volume, want, 1e-12) {
		t.Errorf("RTorus got volume %g, want %g", rt.Volume, want)
	}
	if len(rt.Vertices) != (2*p+1)*4*q {
		t.Errorf("RTorus got %d vertices", len(rt.Vertices))
	}

	tt := Torus(center, r, p, q)
	want = 6 * 2 * polygonArea(4*p) * polygonArea(4*q) * r * r * center
	if !scalar.EqualWithinRel(tt.Volume, want, 1e-12) {
		t.Errorf("Torus got volume %g, want %g", tt.Volume, want)
	}
	if len(tt.Vertices) != 4*p*4*q || tt.NumTriangles() != 2*4*p*4*q {
		t.Errorf("Torus got %d vertices, %d triangles", len(tt.Vertices), tt.NumTriangles())
	}
	cg, _ := polyface.CentroidAndVolume(tt.Faces, tt.Vertices, 1e-9)
	if cg != (polyface.V3[float64]{}) {
		t.Errorf("Torus not centered: %v", cg)
	}

	ring := Ring(center, 0.5, r, p, q)
	want = 6 * 2 * polygonArea(4*q) * polygonArea(2*p) * 0.5 * r * center
	if !scalar.EqualWithinRel(ring.Volume, want, 1e-12) {
		t.Errorf("Ring got volume %g, want %g", ring.Volume, want)
	}
}

func TestBadParametersPanic(t *testing.T) {
	for name, build := range map[string]func(){
		"tube idm>=odm":  func() { Tube(1.0, 1, 1, 1) },
		"tube l<=0":      func() { Tube(2.0, 1, 0, 1) },
		"halfpipe arc":   func() { HalfPipe(7.0, 2, 1, 1, 1) },
		"pin even radii": func() { Pin(1.0, []float64{1, 1}, 1) },
		"sphere radius":  func() { Sphere(-1.0, 2) },
		"torus c<=r":     func() { Torus(1.0, 1, 1, 1) },
		"ring axis":      func() { Ring(2.0, 0, 1, 1, 1) },
		"rtorus q":       func() { RTorus(2.0, 1, 1, 0) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			build()
		}()
	}
}
