package must3

import (
	"math"

	"github.com/soypat/polyface"
)

// Tube (closed annular revolution)

// Tube returns the mesh of a tube with outer diameter odm, inner diameter idm
// and length l along the Y axis. The tube is centered on the origin.
// An inner diameter of zero gives a solid cylinder.
func Tube[F polyface.Float](odm, idm, l F, q int) polyface.Mesh[F] {
	if odm <= 0 {
		panic("outer diameter <= 0")
	}
	if idm < 0 {
		panic("inner diameter < 0")
	}
	if idm >= odm {
		panic("inner diameter >= outer diameter")
	}
	if l <= 0 {
		panic("length <= 0")
	}
	m, _ := polyface.RevolveTable(1, 2, q, polyface.Caps{}, annulus(odm/2, idm/2, l/2))
	return m
}

// annulus returns the closed rectangular profile of an annulus of length 2*h,
// walked so that the resulting solid has outward winding.
func annulus[F polyface.Float](ro, ri, h F) []polyface.V2[F] {
	return []polyface.V2[F]{
		{-h, ro},
		{h, ro},
		{h, ri},
		{-h, ri},
		{-h, ro},
	}
}

// HalfPipe (partial annular revolution)

// HalfPipe returns the mesh of a tube cut lengthwise to the arc angle a (radians),
// with outer diameter odm, inner diameter idm and length l along the Y axis.
// The arc is centered about the +Z axis before the mesh is moved to its centroid.
func HalfPipe[F polyface.Float](a, odm, idm, l F, q int) polyface.Mesh[F] {
	if a <= 0 || a >= 2*math.Pi {
		panic("arc angle must be in (0, 2*pi)")
	}
	if odm <= 0 {
		panic("outer diameter <= 0")
	}
	if idm < 0 {
		panic("inner diameter < 0")
	}
	if idm >= odm {
		panic("inner diameter >= outer diameter")
	}
	if l <= 0 {
		panic("length <= 0")
	}
	tbl := annulus(odm/2, idm/2, l/2)
	m, _ := polyface.RevolveArc(1, 2, q, a, func(n, s int) (F, F) {
		return tbl[n][0], tbl[n][1]
	})
	return m
}

// Pin (lathe profile with pointed ends)

// Pin returns the mesh of a solid of revolution of length l whose radius at
// evenly spaced stations along the Y axis is given by radii. Both ends are
// closed on the axis. len(radii) must be odd and at least 3.
func Pin[F polyface.Float](l F, radii []F, q int) polyface.Mesh[F] {
	p := pinSegments(l, radii)
	s := F(len(radii) - 1)
	m, _ := polyface.Revolve(1, p, q, polyface.Caps{Bottom: true, Top: true}, func(n, _ int) (F, F) {
		return l*F(n)/s - l/2, radii[n]
	})
	return m
}

// PinBalance returns the axial position that bisects the area of the pin
// profile. found is false when the profile centroid search fell back to zero.
func PinBalance[F polyface.Float](l F, radii []F) (balance polyface.V2[F], found bool) {
	pinSegments(l, radii)
	s := F(len(radii) - 1)
	profile := make([]polyface.V2[F], 0, len(radii)+2)
	profile = append(profile, polyface.V2[F]{-l / 2, 0})
	for n, r := range radii {
		profile = append(profile, polyface.V2[F]{l*F(n)/s - l/2, r})
	}
	profile = append(profile, polyface.V2[F]{l / 2, 0})
	return polyface.ProfileCentroidX(profile)
}

func pinSegments[F polyface.Float](l F, radii []F) (p int) {
	if l <= 0 {
		panic("length <= 0")
	}
	if len(radii) < 3 || len(radii)%2 == 0 {
		panic("pin needs an odd number of radii, at least 3")
	}
	for _, r := range radii {
		if r < 0 {
			panic("radius < 0")
		}
	}
	return (len(radii) - 1) / 2
}

// Sphere (revolution of a half circle)

// Sphere returns the mesh of a sphere of the given radius with 2q+1 rings and
// 4q divisions around the Y axis. The poles are rings of zero radius.
func Sphere[F polyface.Float](radius F, q int) polyface.Mesh[F] {
	if radius <= 0 {
		panic("radius <= 0")
	}
	m, _ := polyface.Revolve(radius, q, q, polyface.Caps{}, func(n, s int) (F, F) {
		switch n {
		case 0:
			return -1, 0
		case s - 1:
			return 1, 0
		}
		th := math.Pi * float64(n) / float64(s-1)
		return F(-math.Cos(th)), F(math.Sin(th))
	})
	return m
}

// RTorus and Ring (revolution of a closed conic section)

// RTorus returns the mesh of a torus built by revolution: a circle of radius r
// at distance c from the Y axis, sampled with 2p segments and swept through 4q divisions.
func RTorus[F polyface.Float](c, r F, p, q int) polyface.Mesh[F] {
	if r <= 0 {
		panic("radius <= 0")
	}
	if c <= r {
		panic("center distance <= radius")
	}
	return Ring(c, r, r, p, q)
}

// Ring returns the mesh of a torus with an elliptic section of axial
// semi-axis d and radial semi-axis e at distance c from the Y axis.
func Ring[F polyface.Float](c, d, e F, p, q int) polyface.Mesh[F] {
	if d <= 0 || e <= 0 {
		panic("semi-axis <= 0")
	}
	if c <= e {
		panic("center distance <= radial semi-axis")
	}
	m, _ := polyface.Revolve(1, p, q, polyface.Caps{}, func(n, s int) (F, F) {
		k := float64(n) / float64(s-1)
		if n == s-1 {
			k = 0 // Close the section on its first point.
		}
		th := 2 * math.Pi * k
		return d * F(math.Sin(th)), c + e*F(math.Cos(th))
	})
	return m
}
