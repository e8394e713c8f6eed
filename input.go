package tilt

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the pointer between updates.
type pointerState struct {
	known    bool
	inWindow bool
	x, y     float64
	hover    []*Surface // hovered chain, outermost first
	touchBuf []ebiten.TouchID
	hitBuf   []*Surface
}

// pollPointer reads the primary pointer from Ebitengine: the first active
// touch if any, else the mouse cursor.
func (s *Scene) pollPointer() {
	s.pointer.touchBuf = ebiten.AppendTouchIDs(s.pointer.touchBuf[:0])
	var x, y float64
	if len(s.pointer.touchBuf) > 0 {
		tx, ty := ebiten.TouchPosition(s.pointer.touchBuf[0])
		x, y = float64(tx), float64(ty)
	} else {
		cx, cy := ebiten.CursorPosition()
		x, y = float64(cx), float64(cy)
	}
	inWindow := ebiten.IsFocused() &&
		x >= 0 && y >= 0 && x < s.viewport.Width && y < s.viewport.Height
	s.processPointer(x, y, inWindow)
}

// processPointer runs the hover state machine for a pointer at (x, y).
// Leave fires on surfaces the pointer left (deepest first), enter on
// surfaces it entered (outermost first), then move on the hit surface and
// every ancestor.
func (s *Scene) processPointer(x, y float64, inWindow bool) {
	p := &s.pointer
	if p.known && p.inWindow == inWindow && (!inWindow || (p.x == x && p.y == y)) {
		return
	}

	var chain []*Surface
	if inWindow {
		chain = s.hoverChain(x, y)
	}

	for i := len(p.hover) - 1; i >= 0; i-- {
		h := p.hover[i]
		if !containsSurface(chain, h) {
			s.firePointer(h, h, EventPointerLeave, x, y)
		}
	}
	for _, h := range chain {
		if !containsSurface(p.hover, h) {
			s.firePointer(h, h, EventPointerEnter, x, y)
		}
	}

	if inWindow && len(chain) > 0 {
		hit := chain[len(chain)-1]
		for i := len(chain) - 1; i >= 0; i-- {
			s.firePointer(chain[i], hit, EventPointerMove, x, y)
		}
	}

	p.hover = append(p.hover[:0], chain...)
	p.known = true
	p.inWindow = inWindow
	p.x, p.y = x, y
}

func (s *Scene) firePointer(on, target *Surface, t EventType, x, y float64) {
	if on.disposed {
		return
	}
	s.events++
	on.listeners.dispatch(Event{Type: t, Target: target, ClientX: x, ClientY: y})
}

// hoverChain returns the topmost interactable surface under (x, y) and its
// ancestors, outermost first. The document is always part of the chain.
func (s *Scene) hoverChain(x, y float64) []*Surface {
	hit := s.hitTest(x, y)
	if hit == nil {
		hit = s.root
	}
	var chain []*Surface
	for n := hit; n != nil; n = n.Parent {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// hitTest finds the topmost interactable surface whose layout box contains
// (x, y). Painter order is depth-first, children after parents.
func (s *Scene) hitTest(x, y float64) *Surface {
	s.pointer.hitBuf = collectInteractable(s.root, s.pointer.hitBuf[:0])
	for i := len(s.pointer.hitBuf) - 1; i >= 0; i-- {
		n := s.pointer.hitBuf[i]
		if n.Box().Contains(x, y) {
			return n
		}
	}
	return nil
}

// collectInteractable appends visible, interactable surfaces in painter
// order. Hidden subtrees are skipped; a non-interactable surface is skipped
// but its children are still considered.
func collectInteractable(n *Surface, buf []*Surface) []*Surface {
	if !n.Visible {
		return buf
	}
	if n.Interactable && !n.document {
		buf = append(buf, n)
	}
	for _, c := range n.children {
		buf = collectInteractable(c, buf)
	}
	return buf
}

func containsSurface(list []*Surface, s *Surface) bool {
	for _, n := range list {
		if n == s {
			return true
		}
	}
	return false
}
