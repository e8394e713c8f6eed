package tilt

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string   `json:"action"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Gamma  *float64 `json:"gamma,omitempty"`
	Beta   *float64 `json:"beta,omitempty"`
	Width  float64  `json:"width,omitempty"`
	Height float64  `json:"height,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Label  string   `json:"label,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"move": true, "sweep": true, "leave": true, "orientation": true, "resize": true, "wait": true,
	"screenshot": true,
}

// TestRunner sequences injected input across frames for scripted demos
// and automated checks. Attach to a Scene via SetTestRunner.
//
// Script actions: "move" (x, y), "sweep" (fromX, fromY, toX, toY, frames),
// "leave", "orientation" (gamma, beta; either may be omitted), "resize"
// (width, height), "wait" (frames) and "screenshot" (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step
// method is called from Scene.Update before input processing each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		s.InjectMove(st.X, st.Y)
	case "sweep":
		s.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "leave":
		s.InjectLeave()
	case "orientation":
		var o Orientation
		if st.Gamma != nil {
			o.Gamma, o.HasGamma = *st.Gamma, true
		}
		if st.Beta != nil {
			o.Beta, o.HasBeta = *st.Beta, true
		}
		s.InjectOrientation(o)
	case "resize":
		s.InjectResize(st.Width, st.Height)
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
