package tilt

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// surfaceIDCounter is a plain counter; surfaces are created on one goroutine.
var surfaceIDCounter uint32

func nextSurfaceID() uint32 {
	surfaceIDCounter++
	return surfaceIDCounter
}

// Gradient is a vertical linear gradient running from From at the bottom
// edge to To at the top edge (a 0deg CSS linear-gradient).
type Gradient struct {
	From, To Color

	texture *ebiten.Image
}

// Surface is a rectangular element in the scene tree: the thing a tilt
// Effect rotates, the glare overlay parts, and the document itself.
//
// Layout is a simple box model. A surface's top-left corner sits at
// parent + Anchor*parentSize + (X, Y) - Pivot*size, unless Fill is set, in
// which case it covers its parent exactly.
type Surface struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Surface
	children []*Surface
	classes  []string

	// Layout
	X, Y          float64
	Width, Height float64
	Anchor        Vec2 // fraction of the parent box the position is measured from
	Pivot         Vec2 // fraction of the own box placed at the position; also the 2-D rotation center
	Fill          bool // cover the parent box, ignoring position and size

	// Appearance
	Visible             bool
	Clip                bool // clip descendants to the box
	CornerRadius        float64
	InheritCornerRadius bool
	Color               Color
	Image               *ebiten.Image
	Gradient            *Gradient

	// Interaction
	Interactable bool

	// Metadata
	UserData any
	EntityID uint32

	style     Style
	anim      animator
	listeners listenerRegistry

	document bool
	disposed bool
	cache    drawCache
}

// NewSurface creates a visible, interactable surface of the given size.
func NewSurface(name string, width, height float64) *Surface {
	return &Surface{
		ID:           nextSurfaceID(),
		Name:         name,
		Width:        width,
		Height:       height,
		Visible:      true,
		Interactable: true,
		style:        defaultStyle(),
		anim:         newAnimator(),
	}
}

// --- Tree manipulation ---

// AddChild appends child to this surface's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this surface (cycle).
func (s *Surface) AddChild(child *Surface) {
	if child == nil {
		panic("tilt: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(s, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, s) {
		panic("tilt: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = s
	s.children = append(s.children, child)
}

// RemoveChild detaches child from this surface.
// Panics if child.Parent != s.
func (s *Surface) RemoveChild(child *Surface) {
	if child.Parent != s {
		panic("tilt: child's parent is not this surface")
	}
	s.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this surface from its parent.
// No-op if it has no parent.
func (s *Surface) RemoveFromParent() {
	if s.Parent == nil {
		return
	}
	s.Parent.RemoveChild(s)
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (s *Surface) Children() []*Surface {
	return s.children
}

// NumChildren returns the number of children.
func (s *Surface) NumChildren() int {
	return len(s.children)
}

// Dispose removes the surface from its parent, drops its listeners and
// offscreen buffer, and disposes all descendants.
func (s *Surface) Dispose() {
	if s.disposed {
		return
	}
	s.RemoveFromParent()
	s.dispose()
}

func (s *Surface) dispose() {
	s.disposed = true
	for _, c := range s.children {
		c.Parent = nil
		c.dispose()
	}
	s.children = nil
	s.listeners.clear()
	s.cache.release()
	s.Image = nil
	s.UserData = nil
}

// IsDisposed reports whether Dispose has been called.
func (s *Surface) IsDisposed() bool {
	return s.disposed
}

// Attached reports whether the surface is part of a scene's document tree.
func (s *Surface) Attached() bool {
	for p := s; p != nil; p = p.Parent {
		if p.document {
			return !p.disposed
		}
	}
	return false
}

func isAncestor(candidate, s *Surface) bool {
	for p := s; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (s *Surface) removeChildByPtr(child *Surface) {
	for i, c := range s.children {
		if c == child {
			copy(s.children[i:], s.children[i+1:])
			s.children[len(s.children)-1] = nil
			s.children = s.children[:len(s.children)-1]
			return
		}
	}
}

// --- Classes and selectors ---

// AddClass adds a class marker. Adding an existing class is a no-op.
func (s *Surface) AddClass(class string) {
	if class == "" || s.HasClass(class) {
		return
	}
	s.classes = append(s.classes, class)
}

// RemoveClass removes a class marker.
func (s *Surface) RemoveClass(class string) {
	for i, c := range s.classes {
		if c == class {
			s.classes = append(s.classes[:i], s.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the surface carries class.
func (s *Surface) HasClass(class string) bool {
	for _, c := range s.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the class list. The returned slice MUST NOT be mutated.
func (s *Surface) Classes() []string {
	return s.classes
}

// Query returns the first descendant, in depth-first order, matching the
// selector, or nil. Supported selectors are "#name", ".class" and a bare
// name.
func (s *Surface) Query(selector string) *Surface {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil
	}
	for _, c := range s.children {
		if c.matches(selector) {
			return c
		}
		if found := c.Query(selector); found != nil {
			return found
		}
	}
	return nil
}

func (s *Surface) matches(selector string) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		return s.Name == selector[1:]
	case strings.HasPrefix(selector, "."):
		return s.HasClass(selector[1:])
	default:
		return s.Name == selector
	}
}

// --- Events ---

// AddListener registers fn for events of type t dispatched on this surface.
func (s *Surface) AddListener(t EventType, fn func(Event)) ListenerHandle {
	return s.listeners.add(t, fn)
}

// Dispatch delivers e to this surface's listeners, with e.Target set to s.
func (s *Surface) Dispatch(e Event) {
	if s.disposed {
		return
	}
	e.Target = s
	s.listeners.dispatch(e)
}

// ListenerCount returns the number of listeners registered for t.
func (s *Surface) ListenerCount(t EventType) int {
	return s.listeners.count(t)
}

// --- Layout ---

// Size returns the laid-out size (the offset size, unaffected by transforms).
func (s *Surface) Size() Size {
	if s.Fill && s.Parent != nil {
		return s.Parent.Size()
	}
	return Size{Width: s.Width, Height: s.Height}
}

// Box returns the laid-out box in viewport coordinates, ignoring any
// transform.
func (s *Surface) Box() Rect {
	size := s.Size()
	if s.Parent == nil {
		return Rect{X: s.X, Y: s.Y, Width: size.Width, Height: size.Height}
	}
	pb := s.Parent.Box()
	if s.Fill {
		return Rect{X: pb.X, Y: pb.Y, Width: size.Width, Height: size.Height}
	}
	return Rect{
		X:      pb.X + s.Anchor.X*pb.Width + s.X - s.Pivot.X*size.Width,
		Y:      pb.Y + s.Anchor.Y*pb.Height + s.Y - s.Pivot.Y*size.Height,
		Width:  size.Width,
		Height: size.Height,
	}
}

// BoundingClientRect returns the axis-aligned bounds of the box after the
// currently rendered 3-D transform is applied.
func (s *Surface) BoundingClientRect() Rect {
	box := s.Box()
	t := s.anim.rendered.Transform
	if t.IsZero() {
		return box
	}
	q := projectQuad(box, t)
	return q.bounds()
}

// cornerRadius resolves InheritCornerRadius.
func (s *Surface) cornerRadius() float64 {
	if s.InheritCornerRadius && s.Parent != nil {
		return s.Parent.cornerRadius()
	}
	return s.CornerRadius
}

// --- Inline style ---

// Style returns the written inline style.
func (s *Surface) Style() Style {
	return s.style
}

// Rendered returns the style as currently displayed, which lags behind
// Style while a transition runs.
func (s *Surface) Rendered() Style {
	r := s.anim.rendered
	r.Transition = s.style.Transition
	r.WillChange = s.style.WillChange
	return r
}

// SetTransform writes the 3-D transform. A zero Transform3D clears it.
func (s *Surface) SetTransform(t Transform3D) {
	s.style.Transform = t
	s.anim.writeTransform(&s.style, s.style.Transition)
}

// SetRotate writes the 2-D rotation in degrees.
func (s *Surface) SetRotate(deg float64) {
	s.style.Rotate = deg
	s.anim.write(propRotate, &s.style, s.style.Transition)
}

// SetOpacity writes the opacity.
func (s *Surface) SetOpacity(v float64) {
	s.style.Opacity = v
	s.anim.write(propOpacity, &s.style, s.style.Transition)
}

// SetTransition writes the transition. Running tweens of properties the new
// transition no longer covers snap to their targets.
func (s *Surface) SetTransition(tr Transition) {
	s.style.Transition = tr
	if tr.IsZero() {
		s.anim.settle(&s.style)
		return
	}
	for p := styleProp(0); p < numStyleProps; p++ {
		if s.anim.tweens[p] != nil && !tr.covers(p.cssName()) {
			s.anim.snap(p, p.get(&s.style))
		}
	}
}

// SetWillChange writes the will-change hint.
func (s *Surface) SetWillChange(v string) {
	s.style.WillChange = v
}

// ClearInlineStyle removes the transform, transition and will-change hint.
// Rendered values snap; rotation and opacity are kept.
func (s *Surface) ClearInlineStyle() {
	s.SetWillChange("")
	s.SetTransition(Transition{})
	s.SetTransform(Transform3D{})
}

// Animating reports whether a transition is moving any rendered value.
func (s *Surface) Animating() bool {
	return s.anim.animating()
}

// advance steps the transitions of s and its descendants.
func (s *Surface) advance(dt float32) {
	s.anim.update(dt, &s.style)
	for _, c := range s.children {
		c.advance(dt)
	}
}
