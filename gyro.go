package tilt

import "math"

// Orientation is a device-orientation sample in degrees. Gamma is the
// left/right tilt, Beta the front/back tilt. Either may be missing.
type Orientation struct {
	Gamma, Beta       float64
	HasGamma, HasBeta bool
}

// NewOrientation returns a sample with both angles present.
func NewOrientation(gamma, beta float64) Orientation {
	return Orientation{Gamma: gamma, Beta: beta, HasGamma: true, HasBeta: true}
}

// complete reports whether both angles are present.
func (o Orientation) complete() bool {
	return o.HasGamma && o.HasBeta
}

// Smoother settles a zero reference for device orientation over a fixed
// sample budget. The first sample sets the reference; each later sample,
// while budget remains, moves it to the average of the sample and the
// previous reference. When the budget reaches zero the reference is frozen
// for the rest of the session.
type Smoother struct {
	gammaZero, betaZero         float64
	lastGammaZero, lastBetaZero float64
	initialized                 bool
	remaining                   int
}

// NewSmoother creates a smoother with the given sample budget (floor 0).
func NewSmoother(samples int) *Smoother {
	if samples < 0 {
		samples = 0
	}
	return &Smoother{remaining: samples}
}

// Feed consumes one sample. It returns false, without changing anything,
// when the sample lacks gamma or beta.
func (s *Smoother) Feed(o Orientation) bool {
	if !o.complete() {
		return false
	}
	if s.remaining <= 0 {
		return true
	}
	s.lastGammaZero = s.gammaZero
	s.lastBetaZero = s.betaZero
	if !s.initialized {
		s.gammaZero = o.Gamma
		s.betaZero = o.Beta
		s.initialized = true
	} else {
		s.gammaZero = (o.Gamma + s.lastGammaZero) / 2
		s.betaZero = (o.Beta + s.lastBetaZero) / 2
	}
	s.remaining--
	return true
}

// Zero returns the current zero reference. Before the first sample it is
// (0, 0).
func (s *Smoother) Zero() (gamma, beta float64) {
	return s.gammaZero, s.betaZero
}

// Remaining returns the sample budget left.
func (s *Smoother) Remaining() int {
	return s.remaining
}

// Frozen reports whether the zero reference can no longer change.
func (s *Smoother) Frozen() bool {
	return s.remaining <= 0
}

// Position converts a sample into an absolute viewport position over the
// surface described by geo. Each axis maps [min+zero, max+zero] degrees onto
// the surface dimension.
func (s *Smoother) Position(o Orientation, geo Geometry, opts *Options) (x, y float64) {
	totalX := opts.GyroscopeMaxAngleX - opts.GyroscopeMinAngleX
	totalY := opts.GyroscopeMaxAngleY - opts.GyroscopeMinAngleY

	angleX := o.Gamma - (opts.GyroscopeMinAngleX + s.gammaZero)
	angleY := o.Beta - (opts.GyroscopeMinAngleY + s.betaZero)

	x = pixelOffset(angleX, totalX, geo.Width) + geo.Left
	y = pixelOffset(angleY, totalY, geo.Height) + geo.Top
	return x, y
}

// pixelOffset divides an angle by the degrees-per-pixel ratio of an axis.
// A zero angle range resolves to the center of the dimension.
func pixelOffset(angle, totalAngle, dimension float64) float64 {
	degreesPerPixel := totalAngle / dimension
	off := angle / degreesPerPixel
	if totalAngle == 0 || math.IsNaN(off) || math.IsInf(off, 0) {
		debugf("zero orientation range, using surface center")
		return dimension / 2
	}
	return off
}
