package tilt

import "math"

// Class markers of the glare overlay. Prerendered glare markup must carry
// them.
const (
	GlareClass      = "js-tilt-glare"
	GlareInnerClass = "js-tilt-glare-inner"
)

// glareRestAngle is the inner rotation of the hidden rest pose.
const glareRestAngle = 180

// ensureOverlay creates the glare wrapper and inner surfaces under s, or
// finds prerendered ones by class. Prerendered glare is not styled. Either
// return value is nil when it could not be found.
func ensureOverlay(s *Surface, opts *Options) (wrapper, inner *Surface) {
	if !opts.GlarePrerender {
		w := NewSurface("glare", 0, 0)
		w.AddClass(GlareClass)
		in := NewSurface("glare-inner", 0, 0)
		in.AddClass(GlareInnerClass)
		w.AddChild(in)
		s.AddChild(w)
	}

	wrapper = s.Query("." + GlareClass)
	inner = s.Query("." + GlareInnerClass)

	if opts.GlarePrerender {
		return wrapper, inner
	}

	if wrapper != nil {
		wrapper.Fill = true
		wrapper.X, wrapper.Y = 0, 0
		wrapper.Clip = true
		wrapper.Interactable = false
		wrapper.InheritCornerRadius = true
	}
	if inner != nil {
		inner.Anchor = Vec2{X: 0.5, Y: 0.5}
		inner.Pivot = Vec2{X: 0.5, Y: 0.5}
		inner.Interactable = false
		inner.Gradient = &Gradient{From: ColorTransparent, To: ColorWhite}
		glareRestPose(inner)
		sizeOverlay(s, inner)
	}
	return wrapper, inner
}

// sizeOverlay makes the inner glare a square twice the larger side of s,
// so it covers s at any rotation.
func sizeOverlay(s, inner *Surface) {
	if inner == nil {
		return
	}
	size := s.Size()
	side := math.Max(size.Width, size.Height) * 2
	inner.Width = side
	inner.Height = side
}

// glareRestPose turns the glare away and hides it.
func glareRestPose(inner *Surface) {
	inner.SetRotate(glareRestAngle)
	inner.SetOpacity(0)
}
