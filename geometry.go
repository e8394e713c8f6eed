package tilt

// Geometry is a measured surface: its layout size and the top-left corner
// of its bounding client rect.
type Geometry struct {
	Width, Height float64
	Left, Top     float64
}

// Measure reads the surface's current geometry. Width and Height are the
// layout size; Left and Top come from the bounding rect under the rendered
// transform, so they move while the surface is tilted, scrolled or laid out
// again. A nil or detached surface measures as zero.
func Measure(s *Surface) Geometry {
	if s == nil || !s.Attached() {
		return Geometry{}
	}
	size := s.Size()
	r := s.BoundingClientRect()
	return Geometry{
		Width:  size.Width,
		Height: size.Height,
		Left:   r.X,
		Top:    r.Y,
	}
}

// ViewportMetrics is the part of a Host the viewport measurement reads.
type ViewportMetrics interface {
	// InnerSize is the primary viewport size. Either component may be zero
	// when unknown.
	InnerSize() Size
	// Document is the root surface, or nil.
	Document() *Surface
}

// MeasureViewport returns the viewport size. Each axis falls back from the
// host's inner size to the document surface's size, then to the body (the
// document's first child).
func MeasureViewport(m ViewportMetrics) Size {
	if m == nil {
		return Size{}
	}
	inner := m.InnerSize()
	var doc, body Size
	if d := m.Document(); d != nil {
		doc = d.Size()
		if d.NumChildren() > 0 {
			body = d.children[0].Size()
		}
	}
	return Size{
		Width:  firstNonZero(inner.Width, doc.Width, body.Width),
		Height: firstNonZero(inner.Height, doc.Height, body.Height),
	}
}

func firstNonZero(vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
