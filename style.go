package tilt

import (
	"strconv"
	"strings"
	"time"
)

// Transform3D is the 3-D transform written to a tilted surface:
// perspective(Perspective) rotateX(RotateX) rotateY(RotateY) scale3d(Scale).
// The zero value means "no transform".
type Transform3D struct {
	Perspective float64 // pixels; 0 means no perspective
	RotateX     float64 // degrees
	RotateY     float64 // degrees
	Scale       float64
}

// IsZero reports whether t is unset.
func (t Transform3D) IsZero() bool {
	return t == Transform3D{}
}

// resolved returns t with an unset transform mapped to the identity.
func (t Transform3D) resolved() Transform3D {
	if t.IsZero() {
		return Transform3D{Scale: 1}
	}
	return t
}

// String returns the CSS text of the transform, or "" when unset.
func (t Transform3D) String() string {
	if t.IsZero() {
		return ""
	}
	s := formatNum(t.Scale)
	var b strings.Builder
	b.WriteString("perspective(")
	b.WriteString(formatNum(t.Perspective))
	b.WriteString("px) rotateX(")
	b.WriteString(formatNum(t.RotateX))
	b.WriteString("deg) rotateY(")
	b.WriteString(formatNum(t.RotateY))
	b.WriteString("deg) scale3d(")
	b.WriteString(s + ", " + s + ", " + s)
	b.WriteString(")")
	return b.String()
}

// Transition describes a style transition. The zero value means none.
type Transition struct {
	// Property restricts the transition to one property ("transform",
	// "opacity"). Empty means all properties.
	Property string
	Duration time.Duration
	Easing   string
}

// IsZero reports whether no transition is set.
func (t Transition) IsZero() bool {
	return t.Duration <= 0
}

// covers reports whether the transition animates the named property.
func (t Transition) covers(property string) bool {
	if t.IsZero() {
		return false
	}
	return t.Property == "" || t.Property == "all" || t.Property == property
}

// String returns the CSS text, e.g. "300ms ease" or "opacity 300ms ease".
func (t Transition) String() string {
	if t.IsZero() {
		return ""
	}
	ms := formatNum(float64(t.Duration) / float64(time.Millisecond))
	s := ms + "ms " + t.Easing
	if t.Property != "" {
		s = t.Property + " " + s
	}
	return strings.TrimSpace(s)
}

// Style is a surface's inline style. Values are the written targets; while a
// transition runs, the rendered values lag behind (see Surface.Rendered).
type Style struct {
	Transform  Transform3D
	Rotate     float64 // 2-D rotation in degrees around the pivot
	Opacity    float64
	Transition Transition
	WillChange string
}

// RotateString returns the CSS text of a glare-style rotation.
func (s Style) RotateString() string {
	return "rotate(" + formatNum(s.Rotate) + "deg) translate(-50%, -50%)"
}

// defaultStyle is the style of a fresh surface.
func defaultStyle() Style {
	return Style{Opacity: 1}
}

// formatNum formats a number the way it is written into style text:
// shortest representation, no exponent for ordinary values.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
