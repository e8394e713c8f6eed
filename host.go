package tilt

// Host is the environment an Effect runs in: the window-level event source,
// viewport metrics, document-wide selector lookup and scheduling. Scene is
// the Ebitengine implementation; anything else satisfying the interface can
// drive an Effect without a display.
type Host interface {
	ViewportMetrics
	Scheduler

	// AddListener registers window-level listeners (EventResize and
	// EventDeviceOrientation).
	AddListener(t EventType, fn func(Event)) ListenerHandle

	// Query looks up a surface anywhere in the document, or returns nil.
	Query(selector string) *Surface
}

// tiltChangeSink is implemented by hosts that forward tiltChange
// notifications somewhere beyond the surface's own listeners.
type tiltChangeSink interface {
	emitTiltChange(s *Surface, v Values)
}

// resolveListenerTarget picks where pointer listeners are bound: the
// document in full-page mode, else the alternate selector or element, else
// the surface itself.
func resolveListenerTarget(h Host, s *Surface, opts *Options) EventTarget {
	if opts.FullPageListening {
		if doc := h.Document(); doc != nil {
			return doc
		}
	}
	if opts.MouseEventSelector != "" {
		if t := h.Query(opts.MouseEventSelector); t != nil {
			return t
		}
	}
	if !isNilTarget(opts.MouseEventElement) {
		return opts.MouseEventElement
	}
	return s
}

// isNilTarget reports whether t is nil or holds a nil *Surface, as returned
// by a Query that matched nothing.
func isNilTarget(t EventTarget) bool {
	if t == nil {
		return true
	}
	if el, ok := t.(*Surface); ok && el == nil {
		return true
	}
	return false
}
