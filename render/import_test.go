package render_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/polyface"
	"github.com/soypat/polyface/form3"
	"github.com/soypat/polyface/render"
)

func TestImportMesh(t *testing.T) {
	const p, q = 3, 4
	src, err := form3.RTorus[float32](3, 1, p, q)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	model := render.Triangles(src)
	_, err = render.WriteSTL(&buf, model)
	if err != nil {
		t.Fatal(err)
	}
	read, err := render.ReadSTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	m, err := render.ImportMesh[float64](read, 0)
	if err != nil {
		t.Fatal(err)
	}
	// The last ring repeats the first one.
	wantVerts := 2 * p * 4 * q
	if len(m.Vertices) != wantVerts {
		t.Errorf("got %d vertices, want %d", len(m.Vertices), wantVerts)
	}
	if m.NumTriangles() != len(model) {
		t.Errorf("got %d triangles, want %d", m.NumTriangles(), len(model))
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.Volume-float64(src.Volume)) > 1e-4*float64(src.Volume) {
		t.Errorf("imported volume %g, source volume %g", m.Volume, src.Volume)
	}
	cg, _ := polyface.CentroidAndVolume(m.Faces, m.Vertices, 1e-4)
	if cg != (polyface.V3[float64]{}) {
		t.Errorf("imported centroid %v not at origin", cg)
	}
}

func TestImportMeshErrors(t *testing.T) {
	_, err := render.ImportMesh[float32](nil, 0)
	if err == nil {
		t.Error("expected error for empty model")
	}
	tri := ms3.Triangle{{X: 0}, {X: 1}, {Y: 1}}
	_, err = render.ImportMesh[float32]([]ms3.Triangle{tri}, 10)
	if err == nil {
		t.Error("expected error for large tolerance")
	}
	_, err = render.ImportMesh[float32]([]ms3.Triangle{{}, {}}, 0)
	if err == nil {
		t.Error("expected error for degenerate model")
	}
	_, err = render.ImportMesh[float32]([]ms3.Triangle{tri}, -1)
	if err == nil {
		t.Error("expected error for negative tolerance")
	}
	// Grid cells this small do not fit in int64 coordinates.
	model := []ms3.Triangle{
		{{X: 1}, {X: 2}, {Y: 1}},
		{{X: 1}, {Y: 1}, {X: 1, Y: -1}},
	}
	m, err := render.ImportMesh[float64](model, 1e-30)
	if err == nil {
		t.Errorf("expected error for tiny tolerance, got %d vertices", len(m.Vertices))
	}
}

func TestImportMeshWeldAcrossCells(t *testing.T) {
	const tol = 1e-3
	// The shared vertex is written twice, a fraction of tol apart but on
	// either side of a grid cell boundary at x = tol/2.
	model := []ms3.Triangle{
		{{X: 0.00049}, {X: 1}, {Y: 1}},
		{{X: 0.00051}, {Y: 1}, {Z: 1}},
	}
	m, err := render.ImportMesh[float64](model, tol)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4: %v", len(m.Vertices), m.Vertices)
	}
	if m.NumTriangles() != 2 || m.Faces[0][0][0] != m.Faces[0][1][0] {
		t.Errorf("shared vertex not welded: %v", m.Faces)
	}
	if m.Vertices[0][0] != float64(float32(0.00049)) {
		t.Errorf("first written vertex must be kept, got %v", m.Vertices[0])
	}

	// Vertices farther apart than tol stay separate even in neighboring cells.
	model[1][0] = ms3.Vec{X: 0.0016}
	m, err = render.ImportMesh[float64](model, tol)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 5 {
		t.Errorf("got %d vertices, want 5", len(m.Vertices))
	}
}
