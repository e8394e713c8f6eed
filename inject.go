package tilt

// syntheticKind selects what an injected event does.
type syntheticKind uint8

const (
	injectMove syntheticKind = iota
	injectLeave
	injectOrientation
	injectResize
)

// syntheticEvent is one queued injected input event.
type syntheticEvent struct {
	kind        syntheticKind
	x, y        float64
	orientation Orientation
}

// InjectMove queues a pointer move to viewport coordinates (x, y). The
// event is consumed on a later Update in place of real pointer input.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectMove, x: x, y: y})
}

// InjectLeave queues the pointer leaving the window.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectLeave})
}

// InjectSweep queues a pointer path from (fromX, fromY) to (toX, toY),
// one move per frame. Minimum frames is 2 (both end points).
func (s *Scene) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// InjectOrientation queues a device-orientation sample.
func (s *Scene) InjectOrientation(o Orientation) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectOrientation, orientation: o})
}

// InjectResize queues a viewport resize.
func (s *Scene) InjectResize(width, height float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: injectResize, x: width, y: height})
}

// processInjectedInput pops one event from the inject queue and delivers
// it. Returns true if an event was consumed (real pointer input should be
// skipped this update).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case injectMove:
		inWindow := evt.x >= 0 && evt.y >= 0 && evt.x < s.viewport.Width && evt.y < s.viewport.Height
		s.processPointer(evt.x, evt.y, inWindow)
	case injectLeave:
		s.processPointer(s.pointer.x, s.pointer.y, false)
	case injectOrientation:
		s.DispatchOrientation(evt.orientation)
	case injectResize:
		s.Resize(evt.x, evt.y)
	}
	return true
}
