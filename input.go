package skilltree

// PointerState is the polled device state for one frame, in screen pixels.
type PointerState struct {
	X, Y    float64
	Pressed bool
	Wheel   float64
	// Inside is false when the cursor has left the window.
	Inside bool
}

// Input turns per-frame pointer polls into Viewport calls. It detects
// press/release edges and movement, and replays injected events before real
// device input.
type Input struct {
	vp *Viewport

	down         bool
	lastX, lastY float64
	seen         bool

	injectQueue []syntheticPointerEvent
	runner      *TestRunner
}

// NewInput creates an input adapter feeding vp.
func NewInput(vp *Viewport) *Input {
	return &Input{vp: vp}
}

// Viewport returns the viewport this input feeds.
func (in *Input) Viewport() *Viewport { return in.vp }

// SetTestRunner attaches a scripted runner. Its steps are taken before any
// input is processed each frame.
func (in *Input) SetTestRunner(r *TestRunner) {
	in.runner = r
}

// Feed processes one frame: test runner step, then one injected event if
// any are queued (real input is skipped that frame), otherwise the polled
// state. It finishes with Viewport.Update.
func (in *Input) Feed(state PointerState) {
	if in.runner != nil {
		in.runner.step(in)
	}
	if !in.processInjectedInput() {
		in.process(state)
	}
	in.vp.Update()
}

// LastState returns the most recent pointer state with no wheel movement,
// for headless loops that keep the pointer still between injected events.
func (in *Input) LastState() PointerState {
	return PointerState{X: in.lastX, Y: in.lastY, Pressed: in.down, Inside: in.seen}
}

// process runs the pointer state machine for one poll.
func (in *Input) process(st PointerState) {
	if !st.Inside && !in.down {
		in.vp.Leave()
		in.seen = false
		return
	}
	moved := !in.seen || st.X != in.lastX || st.Y != in.lastY

	if st.Wheel != 0 {
		in.vp.Scroll(st.X, st.Y, st.Wheel)
	}

	switch {
	case st.Pressed && !in.down:
		in.down = true
		in.vp.Press(st.X, st.Y)
	case !st.Pressed && in.down:
		in.down = false
		in.vp.Release(st.X, st.Y)
	case st.Pressed && in.down:
		if moved {
			in.vp.Drag(st.X, st.Y)
		}
	default:
		if moved {
			in.vp.Move(st.X, st.Y)
		}
	}
	in.lastX, in.lastY, in.seen = st.X, st.Y, true
}
