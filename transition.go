package tilt

import (
	"github.com/tanema/gween"
)

// styleProp indexes the animatable numeric style properties.
type styleProp uint8

const (
	propPerspective styleProp = iota
	propRotateX
	propRotateY
	propScale
	propRotate
	propOpacity

	numStyleProps
)

// cssName is the property name a Transition.Property must match.
func (p styleProp) cssName() string {
	if p == propOpacity {
		return "opacity"
	}
	return "transform"
}

func (p styleProp) get(s *Style) float64 {
	switch p {
	case propPerspective:
		return s.Transform.Perspective
	case propRotateX:
		return s.Transform.RotateX
	case propRotateY:
		return s.Transform.RotateY
	case propScale:
		return s.Transform.Scale
	case propRotate:
		return s.Rotate
	default:
		return s.Opacity
	}
}

func (p styleProp) set(s *Style, v float64) {
	switch p {
	case propPerspective:
		s.Transform.Perspective = v
	case propRotateX:
		s.Transform.RotateX = v
	case propRotateY:
		s.Transform.RotateY = v
	case propScale:
		s.Transform.Scale = v
	case propRotate:
		s.Rotate = v
	default:
		s.Opacity = v
	}
}

// animator tracks the rendered value of each animatable property of one
// surface and the gween tweens moving them towards the written style.
//
// There is no global animation manager; Scene advances every surface in its
// tree each update.
type animator struct {
	rendered Style
	tweens   [numStyleProps]*gween.Tween
	active   int
}

func newAnimator() animator {
	return animator{rendered: defaultStyle()}
}

// write moves property p to the value it has in target. If tr covers p the
// rendered value tweens there, otherwise it snaps.
func (a *animator) write(p styleProp, target *Style, tr Transition) {
	to := p.get(target)
	from := p.get(&a.rendered)
	if !tr.covers(p.cssName()) || from == to {
		a.snap(p, to)
		return
	}
	if a.tweens[p] == nil {
		a.active++
	}
	a.tweens[p] = gween.New(float32(from), float32(to), float32(tr.Duration.Seconds()), ResolveEasing(tr.Easing))
}

// writeTransform writes all transform components. Going from no transform
// to a transform snaps the perspective so the tween never passes through a
// degenerate perspective distance.
func (a *animator) writeTransform(target *Style, tr Transition) {
	if a.rendered.Transform.IsZero() {
		a.rendered.Transform = Transform3D{Scale: 1, Perspective: target.Transform.Perspective}
	}
	if target.Transform.IsZero() {
		// Clearing a transform never animates.
		for _, p := range []styleProp{propPerspective, propRotateX, propRotateY, propScale} {
			a.snap(p, p.get(target))
		}
		return
	}
	for _, p := range []styleProp{propPerspective, propRotateX, propRotateY, propScale} {
		a.write(p, target, tr)
	}
}

func (a *animator) snap(p styleProp, v float64) {
	if a.tweens[p] != nil {
		a.tweens[p] = nil
		a.active--
	}
	p.set(&a.rendered, v)
}

// settle snaps every running tween to its target, as removing a transition
// does.
func (a *animator) settle(target *Style) {
	if a.active == 0 {
		return
	}
	for p := styleProp(0); p < numStyleProps; p++ {
		if a.tweens[p] != nil {
			a.snap(p, p.get(target))
		}
	}
}

// update advances all tweens by dt seconds. Finished tweens land exactly on
// their targets.
func (a *animator) update(dt float32, target *Style) {
	if a.active == 0 {
		return
	}
	for p := styleProp(0); p < numStyleProps; p++ {
		tw := a.tweens[p]
		if tw == nil {
			continue
		}
		val, finished := tw.Update(dt)
		if finished {
			a.snap(p, p.get(target))
			continue
		}
		p.set(&a.rendered, float64(val))
	}
}

// animating reports whether any tween is running.
func (a *animator) animating() bool {
	return a.active > 0
}
