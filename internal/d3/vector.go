package d3

import (
	"math"

	"github.com/soypat/polyface"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bridge between the generic polyface vectors and gonum's r3 package,
// which carries the float64 rotation and transform math.

// ToR3 widens a generic vector to an r3.Vec.
func ToR3[F polyface.Float](v polyface.V3[F]) r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// FromR3 converts an r3.Vec to a generic vector, narrowing if F is float32.
func FromR3[F polyface.Float](v r3.Vec) polyface.V3[F] {
	return polyface.V3[F]{F(v.X), F(v.Y), F(v.Z)}
}

func Elem(sides float64) r3.Vec {
	return r3.Vec{
		X: sides,
		Y: sides,
		Z: sides,
	}
}

func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// TripleProduct returns c . (a x b), six times the signed volume of the
// tetrahedron (origin, a, b, c).
func TripleProduct(a, b, c r3.Vec) float64 {
	return r3.Dot(c, r3.Cross(a, b))
}
