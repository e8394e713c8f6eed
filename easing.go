package tilt

import (
	"math"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEasing is the transition timing identifier used when Options.Easing
// is empty. It names a fast-out curve and resolves to ease.OutExpo.
const DefaultEasing = "cubic-bezier(.03,.98,.52,.99)"

// easings maps transition timing identifiers to gween curves. Keys are
// stored lowercase.
var easings = map[string]ease.TweenFunc{
	strings.ToLower(DefaultEasing): ease.OutExpo,

	// CSS keywords, mapped to the closest named curve.
	"linear":      ease.Linear,
	"ease":        ease.OutQuad,
	"ease-in":     ease.InCubic,
	"ease-out":    ease.OutCubic,
	"ease-in-out": ease.InOutCubic,

	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"outinquad":    ease.OutInQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"outincubic":   ease.OutInCubic,
	"inquart":      ease.InQuart,
	"outquart":     ease.OutQuart,
	"inoutquart":   ease.InOutQuart,
	"outinquart":   ease.OutInQuart,
	"inquint":      ease.InQuint,
	"outquint":     ease.OutQuint,
	"inoutquint":   ease.InOutQuint,
	"outinquint":   ease.OutInQuint,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"outinsine":    ease.OutInSine,
	"inexpo":       ease.InExpo,
	"outexpo":      ease.OutExpo,
	"inoutexpo":    ease.InOutExpo,
	"outinexpo":    ease.OutInExpo,
	"incirc":       ease.InCirc,
	"outcirc":      ease.OutCirc,
	"inoutcirc":    ease.InOutCirc,
	"outincirc":    ease.OutInCirc,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
	"outinelastic": ease.OutInElastic,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"outinback":    ease.OutInBack,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
	"outinbounce":  ease.OutInBounce,
}

// ResolveEasing returns the curve registered for name. Matching ignores case
// and surrounding whitespace. An unregistered "cubic-bezier(x1,y1,x2,y2)"
// with x1 and x2 in [0, 1] resolves to that curve. Anything else resolves to
// the DefaultEasing curve.
func ResolveEasing(name string) ease.TweenFunc {
	if fn, ok := lookupEasing(name); ok {
		return fn
	}
	if fn, ok := parseCubicBezier(name); ok {
		return fn
	}
	return easings[strings.ToLower(DefaultEasing)]
}

// RegisterEasing adds or replaces a named curve. Registering a nil curve
// removes the name.
func RegisterEasing(name string, fn ease.TweenFunc) {
	key := strings.ToLower(strings.TrimSpace(name))
	if fn == nil {
		delete(easings, key)
		return
	}
	easings[key] = fn
}

func lookupEasing(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, false
	}
	fn, ok := easings[key]
	return fn, ok
}

// parseCubicBezier parses a CSS cubic-bezier() timing function.
func parseCubicBezier(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(name), ""))
	if !strings.HasPrefix(key, "cubic-bezier(") || !strings.HasSuffix(key, ")") {
		return nil, false
	}
	parts := strings.Split(key[len("cubic-bezier("):len(key)-1], ",")
	if len(parts) != 4 {
		return nil, false
	}
	var p [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		p[i] = v
	}
	if p[0] < 0 || p[0] > 1 || p[2] < 0 || p[2] > 1 {
		return nil, false
	}
	return cubicBezier(p[0], p[1], p[2], p[3]), true
}

// cubicBezier returns a curve through (0,0), (x1,y1), (x2,y2), (1,1). For a
// progress x it solves the curve parameter with Newton steps, falling back
// to bisection, and returns the curve's y there.
func cubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	bez := func(s, a, b float64) float64 {
		r := 1 - s
		return 3*r*r*s*a + 3*r*s*s*b + s*s*s
	}
	slope := func(s, a, b float64) float64 {
		r := 1 - s
		return 3*r*r*a + 6*r*s*(b-a) + 3*s*s*(1-b)
	}
	solve := func(x float64) float64 {
		s := x
		for range 8 {
			d := slope(s, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			next := s - (bez(s, x1, x2)-x)/d
			if next < 0 || next > 1 {
				break
			}
			s = next
			if math.Abs(bez(s, x1, x2)-x) < 1e-7 {
				return s
			}
		}
		lo, hi := 0.0, 1.0
		s = x
		for range 40 {
			v := bez(s, x1, x2)
			if math.Abs(v-x) < 1e-7 {
				break
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		x := float64(t / d)
		switch {
		case x <= 0:
			return b
		case x >= 1:
			return b + c
		}
		return b + c*float32(bez(solve(x), y1, y2))
	}
}
