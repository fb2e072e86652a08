package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/polyface"
)

// Renderer streams single precision triangles. ReadTriangles returns io.EOF
// once all triangles have been read.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle) (n int, err error)
}

// meshRenderer reads the triangles of a mesh in face order.
type meshRenderer struct {
	tris []ms3.Triangle
}

// NewMeshRenderer returns a Renderer over the triangles of m narrowed to
// float32. Triangles with zero area, such as those touching a ring collapsed
// onto the axis, are skipped.
func NewMeshRenderer[F polyface.Float](m polyface.Mesh[F]) Renderer {
	return &meshRenderer{tris: Triangles(m)}
}

func (r *meshRenderer) ReadTriangles(dst []ms3.Triangle) (int, error) {
	if len(r.tris) == 0 {
		return 0, io.EOF
	}
	n := copy(dst, r.tris)
	r.tris = r.tris[n:]
	return n, nil
}

// Triangles converts the non degenerate triangles of m to ms3 triangles.
func Triangles[F polyface.Float](m polyface.Mesh[F]) []ms3.Triangle {
	tris := make([]ms3.Triangle, 0, m.NumTriangles())
	for _, t := range m.Triangles() {
		tri := ms3.Triangle{toMS3(t[0]), toMS3(t[1]), toMS3(t[2])}
		if ms3.Norm(normal(tri)) == 0 {
			continue
		}
		tris = append(tris, tri)
	}
	return tris
}

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.RenderAll implementation.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1<<12)
	buf := make([]ms3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

func toMS3[F polyface.Float](v polyface.V3[F]) ms3.Vec {
	f := polyface.ToF32(v)
	return ms3.Vec{X: f[0], Y: f[1], Z: f[2]}
}

// normal returns the non-normalized normal of t following its winding.
func normal(t ms3.Triangle) ms3.Vec {
	return ms3.Cross(ms3.Sub(t[1], t[0]), ms3.Sub(t[2], t[0]))
}
