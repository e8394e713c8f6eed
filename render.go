package tilt

// applyFrame maps the current sample and writes the result to the surface
// and glare, then notifies observers. scale is the scale3d factor to write.
func (e *Effect) applyFrame(scale float64) Values {
	v := MapValues(e.sess.sample, e.sess.geo, e.sess.viewport, &e.opts, e.reverse)

	// tiltY drives rotateX and tiltX drives rotateY.
	rotX, rotY := v.TiltY, v.TiltX
	if e.opts.Axis == AxisX {
		rotX = 0
	}
	if e.opts.Axis == AxisY {
		rotY = 0
	}
	e.surface.SetTransform(Transform3D{
		Perspective: e.opts.Perspective,
		RotateX:     rotX,
		RotateY:     rotY,
		Scale:       scale,
	})

	if e.opts.Glare && e.sess.glare != nil {
		e.sess.glare.SetRotate(v.Angle)
		e.sess.glare.SetOpacity(v.PercentageY * e.opts.MaxGlare / 100)
	}

	e.sess.values = v
	e.notify(v)
	return v
}

// notify delivers v as a tiltChange event on the surface, to the OnChange
// callback, and to the host's sink if it has one.
func (e *Effect) notify(v Values) {
	e.surface.Dispatch(Event{Type: EventTiltChange, Detail: v})
	if e.opts.OnChange != nil {
		e.opts.OnChange(v)
	}
	if sink, ok := e.host.(tiltChangeSink); ok {
		sink.emitTiltChange(e.surface, v)
	}
}

// armTransition sets the surface (and glare opacity) transition and re-arms
// the timer that clears it after Speed. Continuous movement keeps pushing
// the timer back, so transitions only apply once movement settles.
func (e *Effect) armTransition() {
	e.sess.timer.Cancel()

	glare := e.opts.Glare && e.sess.glare != nil
	if e.opts.Transition {
		e.surface.SetTransition(Transition{Duration: e.opts.Speed, Easing: e.opts.Easing})
		if glare {
			e.sess.glare.SetTransition(Transition{Property: "opacity", Duration: e.opts.Speed, Easing: e.opts.Easing})
		}
	}

	e.sess.timer = e.host.AfterFunc(e.opts.Speed, func() {
		e.sess.timer = TimerHandle{}
		e.surface.SetTransition(Transition{})
		if glare {
			e.sess.glare.SetTransition(Transition{})
		}
	})
}

// reset re-measures the surface and moves it to the rest pose: the start
// position mapped like a real sample, at scale 1, with the glare hidden.
func (e *Effect) reset() {
	e.sess.geo = Measure(e.surface)
	e.surface.SetWillChange("transform")
	e.armTransition()

	fx := startFraction(e.opts.StartX, e.opts.Max)
	fy := startFraction(e.opts.StartY, e.opts.Max)
	if e.opts.FullPageListening {
		e.sess.sample = SyntheticSample{
			ClientX: fx * e.sess.viewport.Width,
			ClientY: fy * e.sess.viewport.Height,
			Origin:  OriginReset,
		}
	} else {
		e.sess.sample = SyntheticSample{
			ClientX: e.sess.geo.Left + fx*e.sess.geo.Width,
			ClientY: e.sess.geo.Top + fy*e.sess.geo.Height,
			Origin:  OriginReset,
		}
	}

	e.applyFrame(1)

	if e.opts.Glare && e.sess.glare != nil {
		glareRestPose(e.sess.glare)
	}
}

// startFraction maps a start tilt in [-max, max] to a position fraction in
// [0, 1]. A zero max puts the start at the center.
func startFraction(start, max float64) float64 {
	if max == 0 {
		return 0.5
	}
	return (start + max) / (2 * max)
}
