package skilltree

import "time"

// DefaultHoverInterval is the minimum time between two hover evaluations.
const DefaultHoverInterval = 50 * time.Millisecond

// HoverEvent is the result of a HoverTracker poll. When Changed is false the
// caller must leave all visible UI untouched. When Changed is true, Hovered
// tells whether to show the tooltip for NodeID or to clear it.
type HoverEvent struct {
	Changed bool
	Hovered bool
	NodeID  string
}

// HoverTracker throttles hit testing and reports only hover transitions.
type HoverTracker struct {
	interval time.Duration
	lastEval time.Time
	lastID   string
	hasLast  bool
}

// NewHoverTracker creates a tracker that evaluates at most once per interval.
// A zero or negative interval evaluates on every poll.
func NewHoverTracker(interval time.Duration) *HoverTracker {
	if interval < 0 {
		interval = 0
	}
	return &HoverTracker{interval: interval}
}

// Poll runs a hit test at the world point unless the previous evaluation was
// less than the interval ago. A nil node list means nothing is hovered.
func (h *HoverTracker) Poll(world Point, nodes []GraphNode, now time.Time) HoverEvent {
	return h.PollFunc(now, func() (string, bool) {
		return HitTest(world, nodes)
	})
}

// PollFunc is Poll with a caller-supplied hit test. hit is not called when
// the evaluation is throttled.
func (h *HoverTracker) PollFunc(now time.Time, hit func() (string, bool)) HoverEvent {
	if !h.lastEval.IsZero() && now.Sub(h.lastEval) < h.interval {
		return HoverEvent{}
	}
	h.lastEval = now

	id, ok := hit()
	if ok == h.hasLast && id == h.lastID {
		return HoverEvent{}
	}
	h.lastID, h.hasLast = id, ok
	return HoverEvent{Changed: true, Hovered: ok, NodeID: id}
}

// Hovered returns the node id reported by the last Changed event.
func (h *HoverTracker) Hovered() (string, bool) {
	return h.lastID, h.hasLast
}

// Reset forgets the hovered node and the throttle timestamp, so the next
// poll evaluates and reports a hovered node as a change.
func (h *HoverTracker) Reset() {
	h.lastID, h.hasLast = "", false
	h.lastEval = time.Time{}
}

// Interval returns the minimum time between evaluations.
func (h *HoverTracker) Interval() time.Duration { return h.interval }
