package tilt

// EventType identifies a kind of event delivered to listeners.
type EventType uint8

const (
	EventPointerEnter      EventType = iota // pointer entered the target's box
	EventPointerLeave                       // pointer left the target's box
	EventPointerMove                        // pointer moved over the target
	EventDeviceOrientation                  // device orientation sample (window)
	EventResize                             // viewport size changed (window)
	EventTiltChange                         // a tilt frame was applied (surface)

	numEventTypes
)

var eventTypeNames = [numEventTypes]string{
	"pointerenter", "pointerleave", "pointermove", "deviceorientation", "resize", "tiltChange",
}

// String returns the event name, e.g. "pointermove" or "tiltChange".
func (t EventType) String() string {
	if t < numEventTypes {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event carries event data. Which fields are meaningful depends on Type.
type Event struct {
	Type EventType
	// Target is the surface the event was dispatched on, nil for
	// window-level events.
	Target *Surface

	// Pointer events, viewport coordinates.
	ClientX, ClientY float64

	// EventDeviceOrientation.
	Orientation Orientation

	// EventResize.
	Viewport Size

	// EventTiltChange.
	Detail Values
}

// EventTarget is anything listeners can be bound to: a Surface, or the
// window-level events of a Host.
type EventTarget interface {
	AddListener(t EventType, fn func(Event)) ListenerHandle
}

type listener struct {
	id uint32
	fn func(Event)
}

// listenerRegistry stores listeners per event type. The zero value is ready
// to use.
type listenerRegistry struct {
	byType [numEventTypes][]listener
	nextID uint32
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id  uint32
	typ EventType
	reg *listenerRegistry
}

// Remove unregisters the listener so it no longer fires. Removing twice, or
// removing a zero handle, is a no-op.
func (h ListenerHandle) Remove() {
	if h.reg == nil || h.typ >= numEventTypes {
		return
	}
	s := h.reg.byType[h.typ]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			h.reg.byType[h.typ] = s[:len(s)-1]
			return
		}
	}
}

func (r *listenerRegistry) add(t EventType, fn func(Event)) ListenerHandle {
	if t >= numEventTypes || fn == nil {
		return ListenerHandle{}
	}
	r.nextID++
	r.byType[t] = append(r.byType[t], listener{id: r.nextID, fn: fn})
	return ListenerHandle{id: r.nextID, typ: t, reg: r}
}

// dispatch calls every listener registered for e.Type. Listeners removed by
// an earlier listener in the same dispatch do not fire.
func (r *listenerRegistry) dispatch(e Event) {
	if e.Type >= numEventTypes {
		return
	}
	list := r.byType[e.Type]
	if len(list) == 0 {
		return
	}
	ids := make([]uint32, len(list))
	for i, l := range list {
		ids[i] = l.id
	}
	for _, id := range ids {
		if fn := r.lookup(e.Type, id); fn != nil {
			fn(e)
		}
	}
}

func (r *listenerRegistry) lookup(t EventType, id uint32) func(Event) {
	for _, l := range r.byType[t] {
		if l.id == id {
			return l.fn
		}
	}
	return nil
}

// clear drops every listener. IDs keep counting up so stale handles cannot
// remove listeners registered afterwards.
func (r *listenerRegistry) clear() {
	r.byType = [numEventTypes][]listener{}
}

// count returns the number of listeners for t.
func (r *listenerRegistry) count(t EventType) int {
	if t >= numEventTypes {
		return 0
	}
	return len(r.byType[t])
}

// total returns the number of listeners of all types.
func (r *listenerRegistry) total() int {
	n := 0
	for _, l := range r.byType {
		n += len(l)
	}
	return n
}
