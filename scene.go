package tilt

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TiltChangeEvent is a tiltChange notification forwarded to an EntityStore.
type TiltChangeEvent struct {
	EntityID uint32
	Surface  string
	Values   Values
}

// EntityStore is the interface for optional ECS integration. When set on a
// Scene, tiltChange notifications of surfaces with a non-zero EntityID are
// forwarded to it.
type EntityStore interface {
	EmitEvent(event TiltChangeEvent)
}

// Scene is the Ebitengine host for tilt effects. It owns the document
// surface, the viewport, the frame loop and the pointer state, and
// implements Host.
type Scene struct {
	root     *Surface
	viewport Size
	loop     *FrameLoop
	window   listenerRegistry
	store    EntityStore
	debug    bool
	updates  uint64

	// ClearColor fills the screen before the document is drawn. A zero
	// alpha leaves the screen untouched.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	pointer     pointerState
	injectQueue []syntheticEvent
	testRunner  *TestRunner
	updateFunc  func() error
	events      int
}

// NewScene creates a scene whose document surface covers a viewport of the
// given size.
func NewScene(width, height float64) *Scene {
	root := NewSurface("document", width, height)
	root.document = true
	return &Scene{
		root:          root,
		viewport:      Size{Width: width, Height: height},
		loop:          NewFrameLoop(),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the document surface.
func (s *Scene) Root() *Surface {
	return s.root
}

// Loop returns the scene's frame loop.
func (s *Scene) Loop() *FrameLoop {
	return s.loop
}

// --- Host ---

// InnerSize returns the viewport size.
func (s *Scene) InnerSize() Size {
	return s.viewport
}

// Document returns the document surface.
func (s *Scene) Document() *Surface {
	return s.root
}

// RequestFrame schedules fn for the next update.
func (s *Scene) RequestFrame(fn func()) FrameHandle {
	return s.loop.RequestFrame(fn)
}

// AfterFunc schedules fn to run d from now, measured in update ticks.
func (s *Scene) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return s.loop.AfterFunc(d, fn)
}

// AddListener registers a window-level listener.
func (s *Scene) AddListener(t EventType, fn func(Event)) ListenerHandle {
	return s.window.add(t, fn)
}

// Query looks up a surface in the document, including the document itself.
func (s *Scene) Query(selector string) *Surface {
	if s.root.matches(selector) {
		return s.root
	}
	return s.root.Query(selector)
}

func (s *Scene) emitTiltChange(surface *Surface, v Values) {
	if s.store == nil || surface.EntityID == 0 {
		return
	}
	s.store.EmitEvent(TiltChangeEvent{EntityID: surface.EntityID, Surface: surface.Name, Values: v})
}

// --- Window events ---

// Resize sets the viewport size. The document surface follows it, and
// window listeners receive EventResize when the size actually changed.
func (s *Scene) Resize(width, height float64) {
	if s.viewport.Width == width && s.viewport.Height == height {
		return
	}
	s.viewport = Size{Width: width, Height: height}
	s.root.Width = width
	s.root.Height = height
	s.events++
	s.window.dispatch(Event{Type: EventResize, Viewport: s.viewport})
}

// DispatchOrientation delivers a device-orientation sample to window
// listeners. Ebitengine has no sensor API; platform bindings call this.
func (s *Scene) DispatchOrientation(o Orientation) {
	s.events++
	s.window.dispatch(Event{Type: EventDeviceOrientation, Orientation: o})
}

// --- Loop ---

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed
// surface use panics and effect and per-update activity is logged to
// stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Update processes input, runs due timers and frame callbacks, and advances
// transitions by one tick (1/TPS).
func (s *Scene) Update() error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() {
		s.pollPointer()
	}
	s.step(time.Second / time.Duration(ebiten.TPS()))
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// step advances the scheduler and transitions by dt.
func (s *Scene) step(dt time.Duration) {
	s.updates++
	s.loop.Tick(dt)
	s.root.advance(float32(dt.Seconds()))

	if s.debug {
		s.debugLog(debugStats{
			events:    s.events,
			frames:    s.loop.PendingFrames(),
			timers:    s.loop.PendingTimers(),
			animating: countAnimating(s.root),
		})
	}
	s.events = 0
}
