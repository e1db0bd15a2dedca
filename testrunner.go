package skilltree

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrEmptyScript is returned when a test script has no steps.
var ErrEmptyScript = errors.New("skilltree: test script has no steps")

// testStep is a single action in a test script.
type testStep struct {
	Action     string  `json:"action"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	FromX      float64 `json:"fromX,omitempty"`
	FromY      float64 `json:"fromY,omitempty"`
	ToX        float64 `json:"toX,omitempty"`
	ToY        float64 `json:"toY,omitempty"`
	Delta      float64 `json:"delta,omitempty"`
	Frames     int     `json:"frames,omitempty"`
	Node       string  `json:"node,omitempty"`
	DurationMS int     `json:"durationMs,omitempty"`
}

// testScript is the top-level JSON structure of a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input across frames for scripted
// interaction tests and replays. Attach it with Input.SetTestRunner.
//
// Supported actions: click, hover, drag, scroll, wait, focus.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "hover", "drag", "scroll", "wait", "focus":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether every step has run and all injected input drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the first error a step produced, such as focusing an unknown
// node. The runner keeps going after an error.
func (r *TestRunner) Err() error {
	return r.err
}

// Len returns the number of steps in the script.
func (r *TestRunner) Len() int { return len(r.steps) }

// step advances the runner by one frame. Called from Input.Feed.
func (r *TestRunner) step(in *Input) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(in.injectQueue) > 0 {
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
	case "click":
		in.InjectClick(st.X, st.Y)
	case "hover":
		in.InjectHover(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		in.InjectScroll(st.X, st.Y, st.Delta)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "focus":
		d := time.Duration(st.DurationMS) * time.Millisecond
		if err := in.vp.FocusNode(st.Node, d); err != nil && r.err == nil {
			r.err = fmt.Errorf("step %d: %w", r.cursor-1, err)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(in.injectQueue) == 0 {
		r.done = true
	}
}
