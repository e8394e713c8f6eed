package tilt

// Sample is the raw input the value mapper consumes. It is either a
// PointerSample or a SyntheticSample; no other implementations exist.
type Sample interface {
	clientPos() (x, y float64)
}

// PointerSample is a real pointer position in viewport coordinates.
type PointerSample struct {
	ClientX, ClientY float64
}

func (p PointerSample) clientPos() (float64, float64) { return p.ClientX, p.ClientY }

// SampleOrigin tells where a SyntheticSample came from.
type SampleOrigin uint8

const (
	OriginReset       SampleOrigin = iota // rest pose computed from StartX/StartY
	OriginOrientation                     // device orientation converted to a position
)

// SyntheticSample is a position computed by the engine rather than reported
// by a pointer.
type SyntheticSample struct {
	ClientX, ClientY float64
	Origin           SampleOrigin
}

func (s SyntheticSample) clientPos() (float64, float64) { return s.ClientX, s.ClientY }
