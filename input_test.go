package tilt

import "testing"

type pointerLog struct {
	events []string
}

func (l *pointerLog) watch(s *Surface) {
	s.AddListener(EventPointerEnter, func(e Event) { l.events = append(l.events, s.Name+":enter") })
	s.AddListener(EventPointerLeave, func(e Event) { l.events = append(l.events, s.Name+":leave") })
	s.AddListener(EventPointerMove, func(e Event) { l.events = append(l.events, s.Name+":move") })
}

func (l *pointerLog) take() []string {
	ev := l.events
	l.events = nil
	return ev
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProcessPointer_EnterMoveLeave(t *testing.T) {
	s := NewScene(400, 400)
	outer := NewSurface("outer", 200, 200)
	inner := NewSurface("inner", 50, 50)
	inner.X, inner.Y = 10, 10
	outer.AddChild(inner)
	s.Root().AddChild(outer)

	var log pointerLog
	log.watch(outer)
	log.watch(inner)

	s.processPointer(20, 20, true)
	want := []string{"outer:enter", "inner:enter", "inner:move", "outer:move"}
	if got := log.take(); !equalStrings(got, want) {
		t.Errorf("entering inner: %v, want %v", got, want)
	}

	s.processPointer(150, 150, true)
	want = []string{"inner:leave", "outer:move"}
	if got := log.take(); !equalStrings(got, want) {
		t.Errorf("moving to outer only: %v, want %v", got, want)
	}

	s.processPointer(150, 150, true)
	if got := log.take(); len(got) != 0 {
		t.Errorf("unchanged position fired %v", got)
	}

	s.processPointer(150, 150, false)
	want = []string{"outer:leave"}
	if got := log.take(); !equalStrings(got, want) {
		t.Errorf("leaving window: %v, want %v", got, want)
	}
}

func TestProcessPointer_MoveCarriesTargetAndPosition(t *testing.T) {
	s := NewScene(400, 400)
	outer := NewSurface("outer", 200, 200)
	inner := NewSurface("inner", 50, 50)
	outer.AddChild(inner)
	s.Root().AddChild(outer)

	var got Event
	outer.AddListener(EventPointerMove, func(e Event) { got = e })
	s.processPointer(5, 7, true)
	if got.Target != inner {
		t.Errorf("Target = %v, want inner (bubbling from the hit surface)", got.Target)
	}
	if got.ClientX != 5 || got.ClientY != 7 {
		t.Errorf("client = (%v, %v), want (5, 7)", got.ClientX, got.ClientY)
	}
}

func TestHitTest_SkipsNonInteractableAndHidden(t *testing.T) {
	s := NewScene(400, 400)
	card := NewSurface("card", 100, 100)
	overlay := NewSurface("overlay", 100, 100)
	overlay.Interactable = false
	hidden := NewSurface("hidden", 100, 100)
	hidden.Visible = false
	s.Root().AddChild(card)
	s.Root().AddChild(overlay)
	s.Root().AddChild(hidden)

	if got := s.hitTest(50, 50); got != card {
		t.Errorf("hitTest = %v, want card", got)
	}
	if got := s.hitTest(300, 300); got != nil {
		t.Errorf("hitTest on empty space = %v, want nil", got)
	}
}

func TestHitTest_TopmostWins(t *testing.T) {
	s := NewScene(400, 400)
	a := NewSurface("a", 100, 100)
	b := NewSurface("b", 100, 100)
	b.X = 50
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	if got := s.hitTest(75, 50); got != b {
		t.Errorf("hitTest = %v, want the later sibling", got)
	}
}

func TestProcessPointer_DocumentAlwaysHovered(t *testing.T) {
	s := NewScene(400, 400)
	var log pointerLog
	log.watch(s.Root())
	s.processPointer(300, 300, true)
	want := []string{"document:enter", "document:move"}
	if got := log.take(); !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
