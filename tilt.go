package tilt

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is fully transparent white, the start stop of the glare gradient.
var ColorTransparent = Color{1, 1, 1, 0}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// lerp interpolates between c and o by t in [0, 1].
func (c Color) lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Vec2 is a 2D vector used for positions, anchors and pivots.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// whitePixel is a lazily created 1x1 white image used for solid fills.
// Not synchronized; all drawing happens on the game goroutine.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Axis locks the tilt to a single rotation axis.
type Axis uint8

const (
	AxisNone Axis = iota // tilt with both pointer axes
	AxisX                // follow horizontal movement only: rotateX is held at 0
	AxisY                // follow vertical movement only: rotateY is held at 0
)

// String returns "x", "y" or "" for AxisNone.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return ""
	}
}

// State is the lifecycle state of an Effect.
type State uint8

const (
	StateDetached  State = iota // not attached, or torn down
	StateIdle                   // attached, resting at the start pose
	StateTracking               // following pointer or orientation input
	StateResetting              // a reset frame is pending after pointer leave
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateResetting:
		return "resetting"
	default:
		return "detached"
	}
}
