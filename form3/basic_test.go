package form3_test

import (
	"strings"
	"testing"

	"github.com/soypat/polyface"
	"github.com/soypat/polyface/form3"
)

func TestShapeErrors(t *testing.T) {
	_, err := form3.Tube(1.0, 2, 3, 4)
	if err == nil || !strings.Contains(err.Error(), "inner diameter") {
		t.Errorf("expected inner diameter error, got %v", err)
	}
	_, err = form3.Revolve(1.0, 2, 1, polyface.Caps{}, []polyface.V2[float64]{{0, 1}})
	if err == nil || !strings.Contains(err.Error(), "2p+1") {
		t.Errorf("expected profile length error, got %v", err)
	}
	_, err = form3.Pin(1.0, []float64{1, -1, 1}, 2)
	if err == nil {
		t.Error("expected negative radius error")
	}
}

func TestShapes(t *testing.T) {
	for name, build := range map[string]func() (polyface.Mesh[float32], error){
		"tube":     func() (polyface.Mesh[float32], error) { return form3.Tube[float32](2, 1, 3, 2) },
		"halfpipe": func() (polyface.Mesh[float32], error) { return form3.HalfPipe[float32](3, 2, 1, 3, 2) },
		"pin":      func() (polyface.Mesh[float32], error) { return form3.Pin[float32](3, []float32{0.2, 0.5, 0.3}, 2) },
		"sphere":   func() (polyface.Mesh[float32], error) { return form3.Sphere[float32](1, 3) },
		"torus":    func() (polyface.Mesh[float32], error) { return form3.Torus[float32](3, 1, 2, 2) },
		"rtorus":   func() (polyface.Mesh[float32], error) { return form3.RTorus[float32](3, 1, 2, 2) },
		"ring":     func() (polyface.Mesh[float32], error) { return form3.Ring[float32](3, 0.5, 1, 2, 2) },
	} {
		m, err := build()
		if err != nil {
			t.Errorf("%s: %s", name, err)
			continue
		}
		if err := m.Validate(); err != nil {
			t.Errorf("%s: %s", name, err)
		}
		if m.Volume <= 0 || !m.Centered {
			t.Errorf("%s: volume %g centered %v", name, m.Volume, m.Centered)
		}
	}
}
