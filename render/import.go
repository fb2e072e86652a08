package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/polyface"
)

// ImportMesh rebuilds an indexed mesh from a triangle soup such as the
// contents of an STL file. A vertex closer than tol along every axis to an
// already imported vertex is merged into the nearest such vertex. If tol is 0
// it is inferred from the shortest triangle edge. All triangles are put in a
// single face. The mesh is not recentered but its volume is computed.
func ImportMesh[F polyface.Float](model []ms3.Triangle, tol F) (polyface.Mesh[F], error) {
	if len(model) == 0 {
		return polyface.Mesh[F]{}, errors.New("no triangles to import")
	}
	if tol < 0 {
		return polyface.Mesh[F]{}, errors.New("negative vertex tolerance")
	}
	minDist2 := math.MaxFloat64
	maxDist2 := -math.MaxFloat64
	maxDim := 0.0
	for i := range model {
		for j, vert := range model[i] {
			side := float64(ms3.Norm(ms3.Sub(model[i][(j+1)%3], vert)))
			side2 := side * side
			if side2 > 0 {
				minDist2 = math.Min(minDist2, side2)
			}
			maxDist2 = math.Max(maxDist2, side2)
			maxDim = math.Max(maxDim, math.Max(math.Abs(float64(vert.X)),
				math.Max(math.Abs(float64(vert.Y)), math.Abs(float64(vert.Z)))))
		}
	}
	if maxDist2 <= 0 {
		return polyface.Mesh[F]{}, errors.New("all triangles are degenerate")
	}
	suggested := math.Sqrt(minDist2) / 256
	if float64(tol) > math.Sqrt(maxDist2)/2 {
		return polyface.Mesh[F]{}, fmt.Errorf("vertex tolerance is too large to generate appropiate mesh, suggested tolerance: %g", suggested)
	}
	if tol == 0 {
		tol = F(suggested)
	}
	ri := 1 / float64(tol)
	if maxDim*ri > math.MaxInt64/2 {
		return polyface.Mesh[F]{}, errors.New("tolerance too small. overflowed int64")
	}
	w := welder[F]{tol: tol, ri: ri, cells: make(map[[3]int64][]int)}
	face := make(polyface.Face, 0, len(model))
	for _, tri := range model {
		var t polyface.Tri
		for j, vert := range tri {
			t[j] = w.add(polyface.V3[F]{F(vert.X), F(vert.Y), F(vert.Z)})
		}
		if t[0] == t[1] || t[1] == t[2] || t[2] == t[0] {
			// Collapsed by the merge.
			continue
		}
		face = append(face, t)
	}
	m := polyface.Mesh[F]{Vertices: w.vertices, Faces: []polyface.Face{face}}
	_, m.Volume = polyface.CentroidAndVolume(m.Faces, m.Vertices, tol)
	return m, nil
}

// welder indexes vertices on a grid of cell size tol. Two vertices within tol
// of each other lie at most one cell apart on every axis.
type welder[F polyface.Float] struct {
	tol      F
	ri       float64
	cells    map[[3]int64][]int
	vertices []polyface.V3[F]
}

// add returns the index of the nearest vertex within tol of v, adding v as a
// new vertex if there is none.
func (w *welder[F]) add(v polyface.V3[F]) int {
	key := [3]int64{w.cell(v[0]), w.cell(v[1]), w.cell(v[2])}
	best, bestDist := -1, F(0)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, k := range w.cells[[3]int64{key[0] + dx, key[1] + dy, key[2] + dz}] {
					u := w.vertices[k]
					if !polyface.EqualWithin(u, v, w.tol) {
						continue
					}
					d := u.Sub(v)
					if dist := d.Dot(d); best < 0 || dist < bestDist {
						best, bestDist = k, dist
					}
				}
			}
		}
	}
	if best >= 0 {
		return best
	}
	idx := len(w.vertices)
	w.vertices = append(w.vertices, v)
	w.cells[key] = append(w.cells[key], idx)
	return idx
}

func (w *welder[F]) cell(x F) int64 {
	return int64(math.Round(float64(x) * w.ri))
}
