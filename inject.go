package skilltree

// syntheticPointerEvent is one injected pointer poll, in screen
// coordinates, identical to what a device poll would report.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	wheel            float64
}

// InjectPress queues a press at the given screen coordinates. The event is
// consumed on the next Feed.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a move with the button held. Use it between InjectPress
// and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectHover queues a move with no button held.
func (in *Input) InjectHover(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectRelease queues a release at the given screen coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). Minimum frames is 2.
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// InjectScroll queues a wheel event at the given screen coordinates.
func (in *Input) InjectScroll(x, y, delta float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, wheel: delta})
}

// Pending returns the number of queued injected events.
func (in *Input) Pending() int { return len(in.injectQueue) }

// processInjectedInput pops one queued event and runs it through the pointer
// state machine. Returns true if an event was consumed.
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.process(PointerState{
		X:       evt.screenX,
		Y:       evt.screenY,
		Pressed: evt.pressed,
		Wheel:   evt.wheel,
		Inside:  true,
	})
	return true
}
