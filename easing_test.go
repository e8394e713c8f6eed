package tilt

import (
	"reflect"
	"testing"

	"github.com/tanema/gween/ease"
)

func sameFunc(a, b ease.TweenFunc) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestResolveEasing(t *testing.T) {
	if !sameFunc(ResolveEasing(DefaultEasing), ease.OutExpo) {
		t.Error("default easing should resolve to OutExpo")
	}
	if !sameFunc(ResolveEasing("  Linear "), ease.Linear) {
		t.Error("lookup should ignore case and whitespace")
	}
	if !sameFunc(ResolveEasing("InOutBack"), ease.InOutBack) {
		t.Error("gween names should resolve")
	}
	if !sameFunc(ResolveEasing("no-such-curve"), ease.OutExpo) {
		t.Error("unknown names should fall back to the default")
	}
	if !sameFunc(ResolveEasing(""), ease.OutExpo) {
		t.Error("empty name should fall back to the default")
	}
}

func TestRegisterEasing(t *testing.T) {
	RegisterEasing("Snappy", ease.OutBounce)
	defer RegisterEasing("snappy", nil)

	if !sameFunc(ResolveEasing("snappy"), ease.OutBounce) {
		t.Error("registered easing not resolved")
	}
	RegisterEasing("snappy", nil)
	if _, ok := lookupEasing("snappy"); ok {
		t.Error("registering nil should remove the name")
	}
}

func TestResolveEasing_CubicBezier(t *testing.T) {
	linear := ResolveEasing("cubic-bezier(0, 0, 1, 1)")
	for _, x := range []float32{0, 0.25, 0.5, 0.8, 1} {
		got := linear(x, 0, 10, 1)
		if diff := got - x*10; diff > 0.01 || diff < -0.01 {
			t.Errorf("linear bezier at %v = %v, want %v", x, got, x*10)
		}
	}

	fn := ResolveEasing("CUBIC-BEZIER(.25,.1,.25,1)")
	if sameFunc(fn, ease.OutExpo) {
		t.Fatal("parsed bezier should not fall back to the default")
	}
	if got := fn(0, 2, 8, 0.3); got != 2 {
		t.Errorf("start = %v, want 2", got)
	}
	if got := fn(0.3, 2, 8, 0.3); got != 10 {
		t.Errorf("end = %v, want 10", got)
	}
	// CSS "ease" is ahead of linear at the midpoint.
	if got := fn(0.15, 0, 1, 0.3); got <= 0.5 || got >= 1 {
		t.Errorf("midpoint = %v, want in (0.5, 1)", got)
	}
}

func TestResolveEasing_InvalidCubicBezier(t *testing.T) {
	for _, name := range []string{
		"cubic-bezier(0, 0, 1)",
		"cubic-bezier(a, 0, 1, 1)",
		"cubic-bezier(1.5, 0, 0.5, 1)",
		"cubic-bezier(0, 0, 1, 1",
	} {
		if !sameFunc(ResolveEasing(name), ease.OutExpo) {
			t.Errorf("%q should fall back to the default", name)
		}
	}
}
