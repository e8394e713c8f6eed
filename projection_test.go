package tilt

import (
	"math"
	"testing"
)

func TestProjector_IdentityKeepsPoints(t *testing.T) {
	box := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	p := newProjector(box, Transform3D{})
	x, y := p.project(10, 20)
	if x != 10 || y != 20 {
		t.Errorf("identity moved (10, 20) to (%v, %v)", x, y)
	}
}

func TestProjector_CenterIsFixed(t *testing.T) {
	box := Rect{X: 0, Y: 0, Width: 200, Height: 100}
	p := newProjector(box, Transform3D{Perspective: 1000, RotateX: 20, RotateY: -35, Scale: 1.2})
	x, y := p.project(100, 50)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("center moved to (%v, %v)", x, y)
	}
}

func TestProjector_RotateXPerspective(t *testing.T) {
	box := Rect{X: 0, Y: 0, Width: 200, Height: 200}
	q := projectQuad(box, Transform3D{Perspective: 1000, RotateX: 30, Scale: 1})

	// Positive rotateX tips the top edge away from the viewer: the top edge
	// gets shorter than the bottom edge.
	top := q[1].X - q[0].X
	bottom := q[2].X - q[3].X
	if top >= bottom {
		t.Errorf("top edge %v should be shorter than bottom edge %v", top, bottom)
	}
}

func TestProjector_EdgeOnDoesNotBlowUp(t *testing.T) {
	box := Rect{X: 0, Y: 0, Width: 4000, Height: 100}
	q := projectQuad(box, Transform3D{Perspective: 10, RotateY: 89, Scale: 1})
	for i, c := range q {
		if math.IsNaN(c.X) || math.IsInf(c.X, 0) || math.IsNaN(c.Y) || math.IsInf(c.Y, 0) {
			t.Errorf("corner %d is not finite: %+v", i, c)
		}
	}
}

func TestQuadBounds(t *testing.T) {
	q := quad{{X: 5, Y: 1}, {X: 9, Y: 3}, {X: 7, Y: 8}, {X: 2, Y: 6}}
	want := Rect{X: 2, Y: 1, Width: 7, Height: 7}
	if got := q.bounds(); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}
