package skilltree

import "fmt"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Node tint colors used by renderers for each NodeState.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorGray  = Color{0.25, 0.25, 0.25, 1}
	ColorRed   = Color{0.8, 0.4, 0.4, 1}
)

// Point is an integer 2D position in world or viewport space.
type Point struct {
	X, Y int
}

// NodeState is the progression state of a graph node. The engine only reads
// it; the graph data provider owns it.
type NodeState uint8

const (
	StateLocked     NodeState = iota // prerequisites missing
	StateAvailable                   // reachable but not affordable
	StateAffordable                  // reachable and affordable
	StateUnlocked                    // already activated
	StateExcluded                    // mutually excluded by another node
)

var nodeStateNames = [...]string{"locked", "available", "affordable", "unlocked", "excluded"}

// String returns the lower-case name of the state.
func (s NodeState) String() string {
	if int(s) < len(nodeStateNames) {
		return nodeStateNames[s]
	}
	return fmt.Sprintf("NodeState(%d)", uint8(s))
}

// ParseNodeState converts a state name back into a NodeState.
func ParseNodeState(name string) (NodeState, error) {
	for i, n := range nodeStateNames {
		if n == name {
			return NodeState(i), nil
		}
	}
	return StateLocked, fmt.Errorf("unknown node state %q", name)
}

// Tint returns the color a renderer multiplies a node frame by.
func (s NodeState) Tint() Color {
	switch s {
	case StateAffordable, StateUnlocked:
		return ColorWhite
	case StateAvailable:
		return ColorRed
	default:
		return ColorGray
	}
}

// EventType identifies a kind of viewport event.
type EventType uint8

const (
	EventHover    EventType = iota // hovered node changed (or cleared)
	EventActivate                  // user requested activation of a node
	EventAdvance                   // a path advance animation started
	EventPan                       // camera pan changed by a drag
	EventZoom                      // camera scale changed by the wheel
)

// String returns the name of the event type.
func (e EventType) String() string {
	switch e {
	case EventHover:
		return "hover"
	case EventActivate:
		return "activate"
	case EventAdvance:
		return "advance"
	case EventPan:
		return "pan"
	case EventZoom:
		return "zoom"
	default:
		return "unknown"
	}
}
