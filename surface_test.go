package tilt

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// ---- Tree tests ------------------------------------------------------------

func TestSurface_AddRemoveChild(t *testing.T) {
	parent := NewSurface("parent", 100, 100)
	child := NewSurface("child", 10, 10)
	parent.AddChild(child)
	if child.Parent != parent || parent.NumChildren() != 1 {
		t.Fatal("child not attached")
	}

	other := NewSurface("other", 100, 100)
	other.AddChild(child)
	if child.Parent != other || parent.NumChildren() != 0 {
		t.Error("re-parenting should remove the child from its old parent")
	}

	child.RemoveFromParent()
	if child.Parent != nil || other.NumChildren() != 0 {
		t.Error("RemoveFromParent did not detach")
	}
	child.RemoveFromParent() // no-op
}

func TestSurface_AddChildCyclePanics(t *testing.T) {
	a := NewSurface("a", 1, 1)
	b := NewSurface("b", 1, 1)
	a.AddChild(b)
	defer func() {
		r := recover()
		if r == nil || !strings.Contains(fmt.Sprint(r), "cycle") {
			t.Errorf("expected cycle panic, got %v", r)
		}
	}()
	b.AddChild(a)
}

func TestSurface_AddNilChildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewSurface("a", 1, 1).AddChild(nil)
}

func TestSurface_Dispose(t *testing.T) {
	scene := NewScene(100, 100)
	parent := NewSurface("parent", 50, 50)
	child := NewSurface("child", 10, 10)
	parent.AddChild(child)
	scene.Root().AddChild(parent)
	parent.AddListener(EventTiltChange, func(Event) {})

	if !child.Attached() {
		t.Fatal("child should be attached")
	}
	parent.Dispose()
	parent.Dispose()
	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("Dispose should mark the subtree disposed")
	}
	if scene.Root().NumChildren() != 0 {
		t.Error("disposed surface still in the tree")
	}
	if parent.ListenerCount(EventTiltChange) != 0 {
		t.Error("Dispose should drop listeners")
	}
	if child.Attached() {
		t.Error("disposed child should not be attached")
	}
}

func TestSurface_DisposeKeepsListenerIDs(t *testing.T) {
	s := NewSurface("s", 10, 10)
	stale := s.AddListener(EventTiltChange, func(Event) {})
	s.Dispose()

	s.AddListener(EventTiltChange, func(Event) {})
	stale.Remove()
	if s.ListenerCount(EventTiltChange) != 1 {
		t.Error("handle from before Dispose removed a later listener")
	}
}

// ---- Selector tests --------------------------------------------------------

func TestSurface_Query(t *testing.T) {
	root := NewSurface("root", 100, 100)
	a := NewSurface("a", 10, 10)
	b := NewSurface("b", 10, 10)
	b.AddClass("marker")
	deep := NewSurface("deep", 5, 5)
	deep.AddClass("marker")
	a.AddChild(deep)
	root.AddChild(a)
	root.AddChild(b)

	if got := root.Query("#b"); got != b {
		t.Errorf("Query(#b) = %v", got)
	}
	if got := root.Query("deep"); got != deep {
		t.Errorf("Query(deep) = %v", got)
	}
	// Depth-first: a's subtree comes before b.
	if got := root.Query(".marker"); got != deep {
		t.Errorf("Query(.marker) = %v, want deep", got)
	}
	if root.Query("#missing") != nil || root.Query("  ") != nil {
		t.Error("unmatched selector should return nil")
	}
	if root.Query("#root") != nil {
		t.Error("Query should not match the receiver itself")
	}
}

func TestSurface_Classes(t *testing.T) {
	s := NewSurface("s", 1, 1)
	s.AddClass("x")
	s.AddClass("x")
	s.AddClass("")
	if len(s.Classes()) != 1 || !s.HasClass("x") {
		t.Errorf("Classes = %v", s.Classes())
	}
	s.RemoveClass("x")
	if s.HasClass("x") {
		t.Error("RemoveClass did not remove")
	}
}

// ---- Layout tests ----------------------------------------------------------

func TestSurface_Box(t *testing.T) {
	root := NewSurface("root", 800, 600)
	card := NewSurface("card", 200, 100)
	card.Anchor = Vec2{X: 0.5, Y: 0.5}
	card.Pivot = Vec2{X: 0.5, Y: 0.5}
	root.AddChild(card)

	want := Rect{X: 300, Y: 250, Width: 200, Height: 100}
	if got := card.Box(); got != want {
		t.Errorf("Box = %+v, want %+v", got, want)
	}

	fill := NewSurface("fill", 1, 1)
	fill.Fill = true
	card.AddChild(fill)
	if got := fill.Box(); got != want {
		t.Errorf("fill Box = %+v, want %+v", got, want)
	}
}

func TestSurface_BoundingClientRect(t *testing.T) {
	root := NewSurface("root", 800, 600)
	card := NewSurface("card", 200, 100)
	card.X, card.Y = 100, 100
	root.AddChild(card)

	if got, want := card.BoundingClientRect(), card.Box(); got != want {
		t.Errorf("untransformed rect = %+v, want %+v", got, want)
	}

	card.SetTransform(Transform3D{Perspective: 1000, Scale: 2})
	got := card.BoundingClientRect()
	want := Rect{X: 0, Y: 50, Width: 400, Height: 200}
	if !rectNear(got, want, 1e-9) {
		t.Errorf("scaled rect = %+v, want %+v", got, want)
	}

	// A rotation around Y narrows the box horizontally; perspective makes
	// the near edge taller than the far one.
	card.SetTransform(Transform3D{Perspective: 1000, RotateY: 30, Scale: 1})
	got = card.BoundingClientRect()
	if got.Width >= 200 || got.Height <= 100 {
		t.Errorf("rotated rect = %+v, want narrower and taller than the box", got)
	}
}

func rectNear(a, b Rect, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

func TestSurface_CornerRadiusInherit(t *testing.T) {
	card := NewSurface("card", 100, 100)
	card.CornerRadius = 12
	wrap := NewSurface("wrap", 0, 0)
	wrap.InheritCornerRadius = true
	card.AddChild(wrap)
	if wrap.cornerRadius() != 12 {
		t.Errorf("inherited radius = %v, want 12", wrap.cornerRadius())
	}
}

// ---- Style tests -----------------------------------------------------------

func TestSurface_StyleWithoutTransitionSnaps(t *testing.T) {
	s := NewSurface("s", 10, 10)
	s.SetTransform(Transform3D{Perspective: 500, RotateX: 10, RotateY: -5, Scale: 1.1})
	s.SetOpacity(0.4)
	r := s.Rendered()
	if r.Transform != s.Style().Transform || r.Opacity != 0.4 {
		t.Errorf("rendered = %+v, want written values", r)
	}
	if s.Animating() {
		t.Error("no transition set, nothing should animate")
	}
}
