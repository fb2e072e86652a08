package matter

import "github.com/soypat/polyface"

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = Material{density: 1.24e-3, shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG prints tougher parts than PLA with slightly more shrinkage.
	PETG = Material{density: 1.27e-3, shrink: 0.4e-2, pullShrink: .45}
)

// Material describes the bulk properties of a printed part. Lengths are in
// millimeters and masses in grams.
type Material struct {
	// density in g/mm^3.
	density float64
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Mass returns the mass in grams of a solid mesh printed at full infill.
// Winding direction does not affect the result.
func Mass[F polyface.Float](mat Material, m polyface.Mesh[F]) float64 {
	v := float64(m.TrueVolume())
	if v < 0 {
		v = -v
	}
	return v * mat.density
}

// Compensate scales m about the origin so that it measures its nominal
// dimensions after shrinking. The stored volume is scaled accordingly.
func Compensate[F polyface.Float](mat Material, m *polyface.Mesh[F]) {
	scale := F(1 / (1 - mat.shrink))
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Scale(scale)
	}
	m.Volume *= scale * scale * scale
}

// InternalDimScale returns the dimension to model for a hole or slot so it
// measures real once printed.
func (mat Material) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(mat.shrink+1) + mat.pullShrink
}
