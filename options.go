package tilt

import "time"

// Options configures an Effect. Start from DefaultOptions and change the
// fields you need; a zero Options is not the default configuration because
// several switches default to true.
//
// Options are copied at Attach. Changing the caller's copy afterwards has no
// effect on a running Effect.
type Options struct {
	// Reverse inverts the tilt direction.
	Reverse bool
	// Max is the maximum tilt angle magnitude in degrees.
	Max float64
	// StartX and StartY are the rest-pose tilt, in the same units as Max.
	StartX, StartY float64
	// Perspective is the perspective distance in pixels.
	Perspective float64
	// Easing is the transition timing identifier, resolved by ResolveEasing.
	Easing string
	// Scale is applied to the surface while it tilts.
	Scale float64
	// Speed is the transition duration.
	Speed time.Duration
	// Transition enables style transitions.
	Transition bool
	// Axis locks rotation to a single axis.
	Axis Axis

	// Glare enables the glare overlay.
	Glare bool
	// MaxGlare is the peak glare opacity in [0, 1].
	MaxGlare float64
	// GlarePrerender means the glare surfaces already exist under the
	// surface, marked with GlareClass and GlareInnerClass, and are styled by
	// the caller.
	GlarePrerender bool

	// FullPageListening samples the pointer relative to the viewport
	// instead of the surface, and listens on the document.
	FullPageListening bool
	// MouseEventSelector names an alternate listener target ("#name",
	// ".class" or a bare name). A selector that matches nothing falls back
	// to MouseEventElement, then to the surface.
	MouseEventSelector string
	// MouseEventElement is an alternate listener target.
	MouseEventElement EventTarget

	// Reset animates back to the start pose when the pointer leaves.
	Reset bool
	// ResetToStart keeps StartX/StartY as the pose for every reset. When
	// false, only the initial reset honors them.
	ResetToStart bool

	// Gyroscope enables device-orientation input.
	Gyroscope bool
	// Orientation-to-position mapping range in degrees.
	GyroscopeMinAngleX float64
	GyroscopeMaxAngleX float64
	GyroscopeMinAngleY float64
	GyroscopeMaxAngleY float64
	// GyroscopeSamples is the number of samples used to settle the
	// orientation zero reference.
	GyroscopeSamples int

	// OnChange, if set, is called with the values of every applied frame.
	OnChange func(Values)
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Max:                15,
		Perspective:        1000,
		Easing:             DefaultEasing,
		Scale:              1,
		Speed:              300 * time.Millisecond,
		Transition:         true,
		MaxGlare:           1,
		Reset:              true,
		ResetToStart:       true,
		Gyroscope:          true,
		GyroscopeMinAngleX: -45,
		GyroscopeMaxAngleX: 45,
		GyroscopeMinAngleY: -45,
		GyroscopeMaxAngleY: 45,
		GyroscopeSamples:   10,
	}
}

// reverseSign returns -1 when Reverse is set, else 1.
func (o *Options) reverseSign() float64 {
	if o.Reverse {
		return -1
	}
	return 1
}

// normalize fixes values that have no meaningful interpretation.
func (o *Options) normalize() {
	if o.GyroscopeSamples < 0 {
		o.GyroscopeSamples = 0
	}
	if o.Speed < 0 {
		o.Speed = 0
	}
	if o.Easing == "" {
		o.Easing = DefaultEasing
	}
}
