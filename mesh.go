package polyface

import (
	"errors"
	"fmt"
)

// Tri is a triangle of vertex indices. Winding is counter-clockwise when
// viewed from outside the solid.
type Tri [3]int

// Face is a group of triangles belonging to one logical surface patch.
type Face []Tri

// Mesh is a triangulated solid. It is built once by a constructor and only
// mutated by the recentering pass performed before it is returned.
type Mesh[F Float] struct {
	// Vertices are addressed by their index in the slice.
	Vertices []V3[F]
	// Faces groups triangles per surface patch.
	Faces []Face
	// UV holds per-face, per-triangle texture coordinates. Mesh constructors
	// leave it nil; it is filled by UV generators.
	UV [][][3]V2[F]
	// Volume is the signed volume times six, as accumulated by CentroidAndVolume.
	Volume F
	// Centered is set when the vertices were translated so that the
	// centroid of the solid lies on the origin.
	Centered bool
}

// NumTriangles returns the total number of triangles over all faces.
func (m *Mesh[F]) NumTriangles() (n int) {
	for _, f := range m.Faces {
		n += len(f)
	}
	return n
}

// Triangles returns the vertex positions of every triangle in face order.
func (m *Mesh[F]) Triangles() [][3]V3[F] {
	tris := make([][3]V3[F], 0, m.NumTriangles())
	for _, f := range m.Faces {
		for _, t := range f {
			tris = append(tris, [3]V3[F]{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]})
		}
	}
	return tris
}

// TrueVolume returns the enclosed volume. The sign follows the winding.
func (m *Mesh[F]) TrueVolume() F { return m.Volume / 6 }

// Validate checks every triangle index addresses an existing vertex.
func (m *Mesh[F]) Validate() error {
	if len(m.Vertices) == 0 {
		return errors.New("mesh has no vertices")
	}
	nv := len(m.Vertices)
	for fi, f := range m.Faces {
		for ti, t := range f {
			for _, k := range t {
				if k < 0 || k >= nv {
					return fmt.Errorf("face %d triangle %d: vertex index %d out of range [0,%d)", fi, ti, k, nv)
				}
			}
		}
	}
	if m.UV != nil && len(m.UV) != len(m.Faces) {
		return fmt.Errorf("uv face count %d does not match face count %d", len(m.UV), len(m.Faces))
	}
	return nil
}

// Recenter translates the mesh so its centroid lies on the origin without
// updating the stored volume. It returns the subtracted centroid.
func (m *Mesh[F]) Recenter(eps F) V3[F] {
	cg := Recenter(m.Faces, m.Vertices, eps)
	m.Centered = true
	return cg
}
