package skilltree

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownNode is returned when an operation names a node id the graph
// does not contain.
var ErrUnknownNode = errors.New("skilltree: unknown node")

// frameHalfSize is the hit-box half size of a node with size factor 1.
const frameHalfSize = 13

// GraphNode is the flat, read-only view of a node that the engine consumes
// every frame. Slice order is the hit-test precedence order.
type GraphNode struct {
	ID       string
	X, Y     int
	HalfSize float64
	Visible  bool
	State    NodeState
}

// Position returns the node position as a Point.
func (n GraphNode) Position() Point { return Point{n.X, n.Y} }

// Descriptor is the opaque tooltip content for a node.
type Descriptor struct {
	Title            string
	Description      string
	ExtraDescription string
}

// GraphSource supplies graph data to a Viewport. Implementations own the
// data; the engine never mutates what Nodes returns.
type GraphSource interface {
	Nodes() []GraphNode
	Describe(id string) (Descriptor, bool)
}

// NodeKind decides a node's visibility. Kinds live in a side table owned by
// the Graph rather than on the node records themselves.
type NodeKind uint8

const (
	KindSkill NodeKind = iota // regular tree node, always shown
	KindClass                 // shown only when granted by the active class
	KindNone                  // never shown
)

// ParseNodeKind converts a kind name ("none", "skill_tree", "class").
func ParseNodeKind(name string) (NodeKind, error) {
	switch name {
	case "", "skill_tree", "skill":
		return KindSkill, nil
	case "class":
		return KindClass, nil
	case "none":
		return KindNone, nil
	}
	return KindSkill, fmt.Errorf("unknown node kind %q", name)
}

// Definition is the shared presentation data of a node.
type Definition struct {
	Descriptor
	// Size scales the node frame; 1 means a 26px square.
	Size float64
}

// Connection links two nodes for rendering.
type Connection struct {
	A, B          string
	Bidirectional bool
}

// GraphEntry is one node as authored in configuration.
type GraphEntry struct {
	ID         string
	Definition string
	X, Y       int
	Kind       NodeKind
	State      NodeState
}

// Graph is the bundled GraphSource: an ordered node list with definitions,
// kinds, states, connections and the active class rewards.
type Graph struct {
	entries     []GraphEntry
	index       map[string]int
	definitions map[string]Definition
	connections []Connection
	exclusive   map[string][]Connection
	paths       map[string][]string

	// class reward definition id → level
	rewards map[string]int

	nodes []GraphNode
	dirty bool
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index:       make(map[string]int),
		definitions: make(map[string]Definition),
		exclusive:   make(map[string][]Connection),
		paths:       make(map[string][]string),
		rewards:     make(map[string]int),
		dirty:       true,
	}
}

// DefineNode registers presentation data under a definition id.
func (g *Graph) DefineNode(id string, def Definition) {
	if def.Size <= 0 {
		def.Size = 1
	}
	g.definitions[id] = def
	g.dirty = true
}

// AddNode appends a node. Declaration order is hit-test precedence.
// Re-adding an existing id replaces it in place.
func (g *Graph) AddNode(e GraphEntry) {
	if e.Definition == "" {
		e.Definition = e.ID
	}
	if i, ok := g.index[e.ID]; ok {
		g.entries[i] = e
	} else {
		g.index[e.ID] = len(g.entries)
		g.entries = append(g.entries, e)
	}
	g.dirty = true
}

// Connect adds a normal connection between two nodes.
func (g *Graph) Connect(a, b string, bidirectional bool) error {
	if err := g.requireNodes(a, b); err != nil {
		return err
	}
	g.connections = append(g.connections, Connection{A: a, B: b, Bidirectional: bidirectional})
	return nil
}

// ConnectExclusive adds a connection that is drawn only while owner is
// hovered.
func (g *Graph) ConnectExclusive(owner, a, b string, bidirectional bool) error {
	if err := g.requireNodes(owner, a, b); err != nil {
		return err
	}
	g.exclusive[owner] = append(g.exclusive[owner], Connection{A: a, B: b, Bidirectional: bidirectional})
	return nil
}

// SetPath stores a named linear path of node ids (see PathView).
func (g *Graph) SetPath(name string, ids []string) error {
	if err := g.requireNodes(ids...); err != nil {
		return err
	}
	g.paths[name] = append([]string(nil), ids...)
	return nil
}

// Path returns a named path.
func (g *Graph) Path(name string) ([]string, bool) {
	p, ok := g.paths[name]
	return p, ok
}

// PathNames returns the names of all stored paths in no particular order.
func (g *Graph) PathNames() []string {
	names := make([]string, 0, len(g.paths))
	for n := range g.paths {
		names = append(names, n)
	}
	return names
}

// SetState updates the progression state of a node.
func (g *Graph) SetState(id string, s NodeState) error {
	i, ok := g.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	g.entries[i].State = s
	g.dirty = true
	return nil
}

// State returns the progression state of a node.
func (g *Graph) State(id string) (NodeState, bool) {
	i, ok := g.index[id]
	if !ok {
		return StateLocked, false
	}
	return g.entries[i].State, true
}

// SetClassRewards replaces the active class rewards (definition id → level).
// Class-kind nodes are visible only when their definition is rewarded.
func (g *Graph) SetClassRewards(rewards map[string]int) {
	g.rewards = make(map[string]int, len(rewards))
	for k, v := range rewards {
		g.rewards[k] = v
	}
	g.dirty = true
}

// RewardLevel returns the class reward level for a node, if any.
func (g *Graph) RewardLevel(id string) (int, bool) {
	i, ok := g.index[id]
	if !ok {
		return 0, false
	}
	lvl, ok := g.rewards[g.entries[i].Definition]
	return lvl, ok
}

// Nodes returns the flattened node list. The slice is cached and must not be
// mutated by callers.
func (g *Graph) Nodes() []GraphNode {
	if !g.dirty {
		return g.nodes
	}
	// Rebuild into a fresh slice so lists handed out earlier stay intact.
	g.nodes = make([]GraphNode, 0, len(g.entries))
	for _, e := range g.entries {
		def, ok := g.definitions[e.Definition]
		size := 1.0
		if ok {
			size = def.Size
		}
		g.nodes = append(g.nodes, GraphNode{
			ID:       e.ID,
			X:        e.X,
			Y:        e.Y,
			HalfSize: math.Round(frameHalfSize * size),
			Visible:  ok && g.visible(e),
			State:    e.State,
		})
	}
	g.dirty = false
	return g.nodes
}

func (g *Graph) visible(e GraphEntry) bool {
	switch e.Kind {
	case KindSkill:
		return true
	case KindClass:
		_, ok := g.rewards[e.Definition]
		return ok
	default:
		return false
	}
}

// Describe returns tooltip content for a node.
func (g *Graph) Describe(id string) (Descriptor, bool) {
	i, ok := g.index[id]
	if !ok {
		return Descriptor{}, false
	}
	def, ok := g.definitions[g.entries[i].Definition]
	return def.Descriptor, ok
}

// Connections returns the normal connections whose endpoints are both
// visible.
func (g *Graph) Connections() []Connection {
	nodes := g.Nodes()
	out := make([]Connection, 0, len(g.connections))
	for _, c := range g.connections {
		if g.visibleID(nodes, c.A) && g.visibleID(nodes, c.B) {
			out = append(out, c)
		}
	}
	return out
}

// Unlock is a minimal progression rule for stand-alone viewers: an
// affordable node becomes unlocked, and locked or available nodes it leads
// to become affordable. It returns the ids that changed.
func (g *Graph) Unlock(id string) ([]string, bool) {
	if s, ok := g.State(id); !ok || s != StateAffordable {
		return nil, false
	}
	g.entries[g.index[id]].State = StateUnlocked
	changed := []string{id}
	for _, c := range g.connections {
		next := ""
		switch {
		case c.A == id:
			next = c.B
		case c.B == id && c.Bidirectional:
			next = c.A
		}
		i, ok := g.index[next]
		if !ok {
			continue
		}
		if s := g.entries[i].State; s == StateLocked || s == StateAvailable {
			g.entries[i].State = StateAffordable
			changed = append(changed, next)
		}
	}
	g.dirty = true
	return changed, true
}

// ExclusiveConnections returns the connections shown while id is hovered.
func (g *Graph) ExclusiveConnections(id string) []Connection {
	return g.exclusive[id]
}

// Node returns the flattened record for a node id.
func (g *Graph) Node(id string) (GraphNode, bool) {
	i, ok := g.index[id]
	if !ok {
		return GraphNode{}, false
	}
	return g.Nodes()[i], true
}

// Positions returns the positions of all visible nodes, the input for
// ComputeContentBounds.
func (g *Graph) Positions() []Point {
	return VisiblePositions(g.Nodes())
}

func (g *Graph) visibleID(nodes []GraphNode, id string) bool {
	i, ok := g.index[id]
	return ok && nodes[i].Visible
}

func (g *Graph) requireNodes(ids ...string) error {
	for _, id := range ids {
		if _, ok := g.index[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	return nil
}

// VisiblePositions collects the positions of the visible nodes.
func VisiblePositions(nodes []GraphNode) []Point {
	pts := make([]Point, 0, len(nodes))
	for _, n := range nodes {
		if n.Visible {
			pts = append(pts, n.Position())
		}
	}
	return pts
}
