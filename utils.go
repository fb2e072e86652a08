package polyface

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar type of every vertex, volume and profile value.
type Float interface {
	constraints.Float
}

const (
	pi  = math.Pi
	tau = 2 * pi
	// DefaultEpsilon is the snapping tolerance used by the solid constructors
	// when recentering a mesh.
	DefaultEpsilon = 1e-6
)

// Solve returns the real roots of a*x*x + b*x + c = 0 ordered (smaller, larger).
// The caller guarantees a != 0 and a non-negative discriminant, otherwise the
// result contains NaN or Inf values.
func Solve[F Float](a, b, c F) [2]F {
	d := sqrt(b*b - 4*a*c)
	return sortRoots((-b-d)/(2*a), (-b+d)/(2*a))
}

// SolveHalf is Solve with the linear coefficient given halved,
// a*x*x + 2*hb*x + c = 0.
func SolveHalf[F Float](a, hb, c F) [2]F {
	d := sqrt(hb*hb - a*c)
	return sortRoots((-hb-d)/a, (-hb+d)/a)
}

func sortRoots[F Float](x0, x1 F) [2]F {
	if x1 < x0 {
		return [2]F{x1, x0}
	}
	return [2]F{x0, x1}
}

// PickRootInRange returns the first root in enumeration order lying in
// the closed interval [low, high]. ok is false if no root qualifies, in which
// case the zero value is returned.
func PickRootInRange[F Float](roots []F, low, high F) (root F, ok bool) {
	for _, r := range roots {
		if r >= low && r <= high {
			return r, true
		}
	}
	return 0, false
}

// DivideInternally returns the point dividing the segment p->q in ratio m:n.
// It panics if m+n == 0.
func DivideInternally[F Float](p, q V3[F], m, n int) V3[F] {
	if m+n == 0 {
		panic("division ratio m+n == 0")
	}
	mf, nf := F(m), F(n)
	s := mf + nf
	return V3[F]{
		(nf*p[0] + mf*q[0]) / s,
		(nf*p[1] + mf*q[1]) / s,
		(nf*p[2] + mf*q[2]) / s,
	}
}

// DivideExternally returns the point dividing the segment p->q externally in
// ratio m:n. It panics if m == n, for which the point is at infinity.
func DivideExternally[F Float](p, q V3[F], m, n int) V3[F] {
	return DivideInternally(p, q, m, -n)
}

// RoundToPrecision returns v-reference per axis, with components closer than
// eps to the reference snapped to exactly zero.
func RoundToPrecision[F Float](v, reference V3[F], eps F) V3[F] {
	var r V3[F]
	for i := range v {
		d := v[i] - reference[i]
		if abs(d) >= eps {
			r[i] = d
		}
	}
	return r
}

// EqualWithin reports whether every component of a and b differ by less than eps.
func EqualWithin[F Float](a, b V3[F], eps F) bool {
	return abs(a[0]-b[0]) < eps && abs(a[1]-b[1]) < eps && abs(a[2]-b[2]) < eps
}

// DtoR converts degrees to radians
func DtoR[F Float](degrees F) F {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD[F Float](radians F) F {
	return (180 / pi) * radians
}

// ToF32 narrows a vector to single precision.
func ToF32[F Float](v V3[F]) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

// ToF64 widens a vector to double precision.
func ToF64[F Float](v V3[F]) [3]float64 {
	return [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
}

func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// The functions below dispatch to math32 when the scalar is float32 so
// single precision meshes are not silently computed through float64.

func sqrt[F Float](x F) F {
	if f, ok := any(x).(float32); ok {
		return F(math32.Sqrt(f))
	}
	return F(math.Sqrt(float64(x)))
}

func sin[F Float](x F) F {
	if f, ok := any(x).(float32); ok {
		return F(math32.Sin(f))
	}
	return F(math.Sin(float64(x)))
}

func cos[F Float](x F) F {
	if f, ok := any(x).(float32); ok {
		return F(math32.Cos(f))
	}
	return F(math.Cos(float64(x)))
}

