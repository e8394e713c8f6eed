package tilt

import (
	"math"
	"strconv"
)

// Values are the mapped tilt values of one frame, delivered with every
// tiltChange notification.
type Values struct {
	TiltX       float64 // rotation driven by horizontal position, degrees
	TiltY       float64 // rotation driven by vertical position, degrees
	PercentageX float64 // horizontal position across the surface, 0-100
	PercentageY float64 // vertical position across the surface, 0-100
	Angle       float64 // glare streak direction, degrees clockwise from up
}

// MapValues maps a raw sample to tilt values. It is a pure function: equal
// inputs give bit-identical outputs. A nil sample yields zero Values.
//
// In full-page mode the sample is normalized against the viewport, otherwise
// against the surface geometry. The normalized position is clamped to
// [0, 1] on both axes, so tilt never exceeds opts.Max in magnitude.
func MapValues(sample Sample, geo Geometry, viewport Size, opts *Options, reverse float64) Values {
	if sample == nil {
		return Values{}
	}
	cx, cy := sample.clientPos()

	var x, y float64
	if opts.FullPageListening {
		x = normalize(cx, 0, viewport.Width)
		y = normalize(cy, 0, viewport.Height)
	} else {
		x = normalize(cx, geo.Left, geo.Width)
		y = normalize(cy, geo.Top, geo.Height)
	}

	tiltX := round2(reverse * (opts.Max - x*opts.Max*2))
	tiltY := round2(reverse * (y*opts.Max*2 - opts.Max))

	angle := math.Atan2(
		cx-(geo.Left+geo.Width/2),
		-(cy-(geo.Top+geo.Height/2)),
	) * (180 / math.Pi)

	return Values{
		TiltX:       tiltX,
		TiltY:       tiltY,
		PercentageX: x * 100,
		PercentageY: y * 100,
		Angle:       angle,
	}
}

// normalize maps v into [0, 1] relative to the span starting at origin.
// A zero or non-finite span resolves to the center.
func normalize(v, origin, span float64) float64 {
	n := (v - origin) / span
	if span == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		debugf("zero-sized span while mapping, using center")
		return 0.5
	}
	return math.Min(math.Max(n, 0), 1)
}

// round2 rounds to two decimals the way a fixed-point string conversion
// does, then parses the result back.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
