package skilltree

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "click", "x": 100, "y": 200},
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 50, "toY": 50, "frames": 4},
		{"action": "scroll", "x": 400, "y": 300, "delta": -2},
		{"action": "focus", "node": "b", "durationMs": 250},
		{"action": "wait", "frames": 3},
		{"action": "hover", "x": 10, "y": 10}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if runner.Len() != 6 {
		t.Errorf("expected 6 steps, got %d", runner.Len())
	}
	if runner.steps[3].Node != "b" || runner.steps[3].DurationMS != 250 {
		t.Errorf("focus step = %+v", runner.steps[3])
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad json", `{not json`, "parse test script"},
		{"unknown action", `{"steps": [{"action": "click"}, {"action": "teleport"}]}`, `step 1: unknown action "teleport"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if !errors.Is(err, ErrEmptyScript) {
		t.Errorf("error = %v, want ErrEmptyScript", err)
	}
}

func TestRunnerStep_Click(t *testing.T) {
	vp, _, _ := newTestViewport(t, 0, 0)
	in := NewInput(vp)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 400, "y": 300}]}`))
	if err != nil {
		t.Fatal(err)
	}

	// First step call: click queues press+release (2 events).
	runner.step(in)
	if in.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", in.Pending())
	}
	// Not done while injections are pending.
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	in.processInjectedInput()
	in.processInjectedInput()

	runner.step(in)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	vp, _, _ := newTestViewport(t, 0, 0)
	in := NewInput(vp)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "hover", "x": 400, "y": 300}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frames 1-3: wait counts down.
	for i := 1; i <= 3; i++ {
		runner.step(in)
		if runner.Done() || in.Pending() != 0 {
			t.Fatalf("frame %d: done=%v pending=%d during wait", i, runner.Done(), in.Pending())
		}
	}

	// Frame 4: hover queued; the runner finishes once it drains.
	runner.step(in)
	if in.Pending() != 1 {
		t.Fatalf("expected hover queued on frame 4, got %d events", in.Pending())
	}
	in.processInjectedInput()
	runner.step(in)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	vp, _, _ := newTestViewport(t, 0, 0)
	in := NewInput(vp)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(in)
	if in.Pending() != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", in.Pending())
	}
}

func TestRunnerStep_Focus(t *testing.T) {
	vp, _, _ := newTestViewport(t, 0, 0)
	in := NewInput(vp)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "focus", "node": "b"},
		{"action": "focus", "node": "nowhere"},
		{"action": "focus", "node": "also-missing"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(in)
	if vp.Camera().X() != -100 {
		t.Errorf("pan X = %d after focus, want -100", vp.Camera().X())
	}
	runner.step(in)
	runner.step(in)
	if !runner.Done() {
		t.Error("runner should be done")
	}
	err = runner.Err()
	if !errors.Is(err, ErrUnknownNode) || !strings.Contains(err.Error(), "step 1") {
		t.Errorf("Err = %v, want the first focus failure", err)
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	vp, _, _ := newTestViewport(t, 0, 0)
	in := NewInput(vp)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "scroll", "x": 400, "y": 300, "delta": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(in)
	if in.Pending() != 2 {
		t.Fatalf("expected 2 events, got %d", in.Pending())
	}

	// Does not advance until the inject queue drains.
	runner.step(in)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	in.injectQueue = in.injectQueue[:0]
	runner.step(in)
	if in.Pending() != 1 || in.injectQueue[0].wheel != 1 {
		t.Errorf("expected queued scroll, got %+v", in.injectQueue)
	}
}

func TestRunnerDrivesFeed(t *testing.T) {
	vp, g, _ := newTestViewport(t, 0, 0)
	vp.OnActivate(func(ctx ActivateContext) {
		if _, ok := g.Unlock(ctx.NodeID); ok {
			vp.Refresh()
		}
	})
	in := NewInput(vp)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 400, "y": 300}]}`))
	if err != nil {
		t.Fatal(err)
	}
	in.SetTestRunner(runner)

	for frame := 0; frame < 10 && !runner.Done(); frame++ {
		in.Feed(in.LastState())
	}
	if !runner.Done() {
		t.Fatal("runner not done after 10 frames")
	}
	if s, _ := g.State("a"); s != StateUnlocked {
		t.Errorf("a = %v, want unlocked", s)
	}
	if s, _ := g.State("b"); s != StateLocked {
		t.Errorf("b = %v, want locked (not connected)", s)
	}
}
