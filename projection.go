package tilt

import "math"

// quad holds the four projected corners of a box: top-left, top-right,
// bottom-right, bottom-left.
type quad [4]Vec2

func (q quad) bounds() Rect {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// projector maps points of a box through a Transform3D whose origin is the
// box center (the default transform origin).
//
// Composition order, applied right to left as in the style text:
//
//	scale3d -> rotateY -> rotateX -> perspective
type projector struct {
	ox, oy      float64
	scale       float64
	sinX, cosX  float64
	sinY, cosY  float64
	perspective float64
}

func newProjector(box Rect, t Transform3D) projector {
	t = t.resolved()
	sx, cx := math.Sincos(t.RotateX * math.Pi / 180)
	sy, cy := math.Sincos(t.RotateY * math.Pi / 180)
	return projector{
		ox:          box.X + box.Width/2,
		oy:          box.Y + box.Height/2,
		scale:       t.Scale,
		sinX:        sx,
		cosX:        cx,
		sinY:        sy,
		cosY:        cy,
		perspective: t.Perspective,
	}
}

// minPerspectiveW keeps points behind the viewer from flipping sign.
const minPerspectiveW = 1e-3

// project maps a viewport point of the untransformed box to its projected
// viewport position.
func (p projector) project(x, y float64) (float64, float64) {
	// Relative to origin, scaled.
	px := (x - p.ox) * p.scale
	py := (y - p.oy) * p.scale
	var pz float64

	// rotateY
	px, pz = px*p.cosY+pz*p.sinY, -px*p.sinY+pz*p.cosY
	// rotateX
	py, pz = py*p.cosX-pz*p.sinX, py*p.sinX+pz*p.cosX

	if p.perspective > 0 {
		w := 1 - pz/p.perspective
		if w < minPerspectiveW {
			w = minPerspectiveW
		}
		px /= w
		py /= w
	}
	return px + p.ox, py + p.oy
}

// projectQuad projects the corners of box through t.
func projectQuad(box Rect, t Transform3D) quad {
	pr := newProjector(box, t)
	var q quad
	q[0].X, q[0].Y = pr.project(box.X, box.Y)
	q[1].X, q[1].Y = pr.project(box.X+box.Width, box.Y)
	q[2].X, q[2].Y = pr.project(box.X+box.Width, box.Y+box.Height)
	q[3].X, q[3].Y = pr.project(box.X, box.Y+box.Height)
	return q
}
