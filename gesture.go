package skilltree

// DefaultDragThreshold is the accumulated movement, in pixels, above which a
// press turns into a drag.
const DefaultDragThreshold = 2.0

// DragState classifies a press/move/release sequence as a click or a drag.
//
// Movement is accumulated as Manhattan distance; it only needs to answer a
// threshold question. The start position is stored relative to an origin
// supplied by the caller (the camera pan), so a drag can be applied as an
// absolute pan: pan = pointer - start.
type DragState struct {
	threshold float64

	startX, startY float64
	distance       float64
	armed          bool
}

// NewDragState creates a disarmed gesture with the given threshold.
// A non-positive threshold uses DefaultDragThreshold.
func NewDragState(threshold float64) *DragState {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &DragState{threshold: threshold}
}

// Start arms the gesture at a viewport-local position.
func (d *DragState) Start(localX, localY, originX, originY float64) {
	d.startX = localX - originX
	d.startY = localY - originY
	d.distance = 0
	d.armed = true
}

// Update accumulates a pointer movement.
func (d *DragState) Update(dx, dy float64) {
	d.distance += abs(dx) + abs(dy)
}

// ShouldDrag reports whether the caller should pan with the pointer.
func (d *DragState) ShouldDrag() bool {
	return d.armed && d.distance > d.threshold
}

// IsClick reports whether a release now counts as a click.
func (d *DragState) IsClick() bool {
	return d.armed && d.distance <= d.threshold
}

// PreventDrag disarms the gesture after a click was already dispatched, so a
// tiny move before release does not start a pan.
func (d *DragState) PreventDrag() {
	d.armed = false
}

// End resets the gesture.
func (d *DragState) End() {
	d.armed = false
	d.distance = 0
}

// Armed reports whether the gesture can still become a drag or a click.
func (d *DragState) Armed() bool { return d.armed }

// Distance returns the accumulated Manhattan distance.
func (d *DragState) Distance() float64 { return d.distance }

// StartX returns the start position relative to the origin given to Start.
func (d *DragState) StartX() float64 { return d.startX }

// StartY returns the start position relative to the origin given to Start.
func (d *DragState) StartY() float64 { return d.startY }

// Threshold returns the drag threshold in pixels.
func (d *DragState) Threshold() float64 { return d.threshold }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
