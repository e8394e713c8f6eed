package tilt

// session is the mutable per-effect state. It is owned by one Effect and
// only touched from its event handlers and scheduled callbacks.
type session struct {
	geo      Geometry
	viewport Size
	smoother *Smoother

	frame FrameHandle // at most one pending frame
	timer TimerHandle // at most one pending transition clear

	sample Sample
	values Values

	glareWrapper *Surface
	glare        *Surface
	ownsGlare    bool
}

// Effect is a tilt effect attached to one surface.
//
// All methods must be called from the goroutine that drives the host
// (Scene.Update for a Scene).
type Effect struct {
	host    Host
	surface *Surface
	opts    Options
	reverse float64
	state   State

	sess session

	target  EventTarget
	handles []ListenerHandle
}

// Attach starts a tilt effect on s. Listeners are bound, the glare overlay
// is built if enabled, and the surface is moved to its rest pose.
//
// A nil host or surface yields a detached Effect: nothing is set up and
// Detach is a no-op.
func Attach(h Host, s *Surface, opts Options) *Effect {
	opts.normalize()
	e := &Effect{opts: opts, reverse: opts.reverseSign()}
	if h == nil || s == nil || s.IsDisposed() {
		return e
	}
	e.host = h
	e.surface = s
	e.sess.smoother = NewSmoother(opts.GyroscopeSamples)

	e.target = resolveListenerTarget(h, s, &e.opts)
	e.listen(e.target, EventPointerEnter, e.onPointerEnter)
	e.listen(e.target, EventPointerLeave, e.onPointerLeave)
	e.listen(e.target, EventPointerMove, e.onPointerMove)

	if e.opts.Glare || e.opts.FullPageListening {
		e.listen(h, EventResize, e.onResize)
	}
	if e.opts.Gyroscope {
		e.listen(h, EventDeviceOrientation, e.onOrientation)
	}

	if e.opts.Glare {
		e.sess.glareWrapper, e.sess.glare = ensureOverlay(s, &e.opts)
		e.sess.ownsGlare = !e.opts.GlarePrerender
	}
	if e.opts.FullPageListening {
		e.sess.viewport = MeasureViewport(h)
	}

	e.state = StateIdle
	e.reset()

	// Only the initial reset honors the start pose when ResetToStart is off.
	if !e.opts.ResetToStart {
		e.opts.StartX = 0
		e.opts.StartY = 0
	}

	debugf("attach %q (glare=%t fullPage=%t gyroscope=%t listeners=%d)",
		s.Name, e.opts.Glare, e.opts.FullPageListening, e.opts.Gyroscope, len(e.handles))
	return e
}

func (e *Effect) listen(t EventTarget, typ EventType, fn func(Event)) {
	e.handles = append(e.handles, t.AddListener(typ, fn))
}

// Detach tears the effect down: pending frame and timer are cancelled,
// inline style is cleared, the glare is hidden (and removed if the effect
// created it), and every listener bound at attach is removed. Detaching
// twice is a no-op.
func (e *Effect) Detach() {
	if e.state == StateDetached {
		return
	}
	e.sess.timer.Cancel()
	e.sess.frame.Cancel()
	e.sess.timer = TimerHandle{}
	e.sess.frame = FrameHandle{}

	e.surface.ClearInlineStyle()

	if e.opts.Glare && e.sess.glare != nil {
		e.sess.glare.SetTransition(Transition{})
		glareRestPose(e.sess.glare)
		if e.sess.ownsGlare && e.sess.glareWrapper != nil {
			e.sess.glareWrapper.Dispose()
		}
	}

	for _, h := range e.handles {
		h.Remove()
	}
	e.handles = nil

	debugf("detach %q", e.surface.Name)
	e.state = StateDetached
	e.sess.glare = nil
	e.sess.glareWrapper = nil
	e.target = nil
	e.host = nil
}

// State returns the lifecycle state.
func (e *Effect) State() State {
	return e.state
}

// Values returns the values of the last applied frame.
func (e *Effect) Values() Values {
	return e.sess.values
}

// Surface returns the surface the effect was attached to, or nil.
func (e *Effect) Surface() *Surface {
	return e.surface
}

// Options returns the effective options. StartX and StartY read 0 after
// attach when ResetToStart is off.
func (e *Effect) Options() Options {
	return e.opts
}

// Glare returns the glare wrapper and inner surfaces, nil when glare is off.
func (e *Effect) Glare() (wrapper, inner *Surface) {
	return e.sess.glareWrapper, e.sess.glare
}

// Smoother returns the orientation smoother, nil when detached before
// setup.
func (e *Effect) Smoother() *Smoother {
	return e.sess.smoother
}

// setState records a state change.
func (e *Effect) setState(s State) {
	if e.state == s || e.state == StateDetached {
		return
	}
	debugf("%q: %s -> %s", e.surface.Name, e.state, s)
	e.state = s
}

// scheduleFrame replaces any pending frame with fn. Bursts of input between
// two frames coalesce into one run that sees only the latest sample.
func (e *Effect) scheduleFrame(fn func()) {
	e.sess.frame.Cancel()
	e.sess.frame = e.host.RequestFrame(func() {
		e.sess.frame = FrameHandle{}
		if e.state == StateDetached {
			return
		}
		fn()
	})
}

func (e *Effect) update() {
	e.applyFrame(e.opts.Scale)
}

// --- Handlers ---

func (e *Effect) onPointerEnter(Event) {
	e.sess.geo = Measure(e.surface)
	e.surface.SetWillChange("transform")
	e.armTransition()
	e.setState(StateTracking)
}

func (e *Effect) onPointerMove(ev Event) {
	e.sess.sample = PointerSample{ClientX: ev.ClientX, ClientY: ev.ClientY}
	e.scheduleFrame(e.update)
	e.setState(StateTracking)
}

func (e *Effect) onPointerLeave(Event) {
	e.armTransition()
	if !e.opts.Reset {
		e.setState(StateIdle)
		return
	}
	e.setState(StateResetting)
	e.scheduleFrame(func() {
		e.reset()
		e.setState(StateIdle)
	})
}

func (e *Effect) onOrientation(ev Event) {
	o := ev.Orientation
	if !o.complete() {
		return
	}
	e.sess.geo = Measure(e.surface)
	e.sess.smoother.Feed(o)
	x, y := e.sess.smoother.Position(o, e.sess.geo, &e.opts)
	e.sess.sample = SyntheticSample{ClientX: x, ClientY: y, Origin: OriginOrientation}
	e.scheduleFrame(e.update)
	e.setState(StateTracking)
}

func (e *Effect) onResize(Event) {
	if e.opts.Glare {
		sizeOverlay(e.surface, e.sess.glare)
	}
	if e.opts.FullPageListening {
		e.sess.viewport = MeasureViewport(e.host)
	}
}
