package skilltree

import "time"

// Connection colours for path links, as 0xAARRGGBB.
const (
	linkFillUnlocked   uint32 = 0xFFB37D12
	linkStrokeUnlocked uint32 = 0xFFBF8C26
	linkGray           uint32 = 0xFF808080
	linkFillLocked     uint32 = 0xFF3A3A3A
	linkStrokeLocked   uint32 = 0xFF3D3D3D
)

// StateSource reports node progression states. *Graph implements it.
type StateSource interface {
	State(id string) (NodeState, bool)
}

// PathSlot is one laid-out path node, in viewport-local pixels.
type PathSlot struct {
	ID    string
	X, Y  int
	State NodeState
}

// PathLink is one laid-out connection between consecutive path nodes.
type PathLink struct {
	From, To     Point
	Fill, Stroke uint32
}

// PathLayout is everything a renderer needs to draw a path for one frame.
type PathLayout struct {
	Slots     []PathSlot
	Links     []PathLink
	Animating bool
}

// PathView is a vertical, linear progression of nodes centered on the
// current one. Activating the current node slides the column so the next
// node moves into the center.
type PathView struct {
	ids    []string
	states StateSource
	anim   *PathAnimator

	centerX, centerY int
	halfSize         float64

	last PathLayout
}

// NewPathView creates a path over ids. A nil animator uses the defaults.
func NewPathView(ids []string, states StateSource, anim *PathAnimator) *PathView {
	if anim == nil {
		anim = NewPathAnimator(0, 0)
	}
	return &PathView{
		ids:      append([]string(nil), ids...),
		states:   states,
		anim:     anim,
		halfSize: frameHalfSize,
	}
}

// SetCenter places the current node at (x, y) in viewport-local pixels.
func (p *PathView) SetCenter(x, y int) {
	p.centerX, p.centerY = x, y
}

// Center returns the position of the current node slot.
func (p *PathView) Center() Point { return Point{p.centerX, p.centerY} }

// IDs returns the node ids along the path.
func (p *PathView) IDs() []string { return p.ids }

// Animating reports whether an advance is in progress.
func (p *PathView) Animating() bool { return p.anim.Running() }

// CurrentIndex returns the first node that is available or affordable, or the
// last node when everything before it is done.
func (p *PathView) CurrentIndex() int {
	for i, id := range p.ids {
		s, ok := p.states.State(id)
		if !ok {
			continue
		}
		if s == StateAvailable || s == StateAffordable {
			return i
		}
	}
	return len(p.ids) - 1
}

// CurrentID returns the id of the current node.
func (p *PathView) CurrentID() (string, bool) {
	i := p.CurrentIndex()
	if i < 0 || i >= len(p.ids) {
		return "", false
	}
	return p.ids[i], true
}

// Click handles a press at viewport-local (x, y). It returns the activated
// node id when the press lands on the center node while that node is
// affordable. Unless the node is the last one, an advance animation starts.
// Clicks are ignored while animating.
func (p *PathView) Click(x, y int, now time.Time) (string, bool) {
	if p.anim.Running() || !p.overCenter(x, y) {
		return "", false
	}
	id, ok := p.CurrentID()
	if !ok {
		return "", false
	}
	if s, _ := p.states.State(id); s != StateAffordable {
		return "", false
	}
	if i := p.CurrentIndex(); i < len(p.ids)-1 {
		p.anim.Activate(i, now)
	}
	return id, true
}

// HoverAt returns the path node under viewport-local (x, y) in the most
// recent layout. Nothing is hovered while animating.
func (p *PathView) HoverAt(x, y int) (string, bool) {
	if p.anim.Running() {
		return "", false
	}
	for _, s := range p.last.Slots {
		n := GraphNode{X: s.X, Y: s.Y, HalfSize: p.halfSize, Visible: true}
		if n.Contains(x, y) {
			return s.ID, true
		}
	}
	return "", false
}

// Layout advances the animation to now and positions every node. Node i is
// drawn (renderIndex - i) slots below the center, shifted by the animation
// offset.
func (p *PathView) Layout(now time.Time) PathLayout {
	frame := p.anim.Poll(now)
	renderIndex := p.CurrentIndex()
	if frame.Running {
		renderIndex = frame.RenderIndex
	}
	spacing := int(p.anim.Spacing())
	offset := int(frame.Offset)

	out := PathLayout{
		Slots:     make([]PathSlot, 0, len(p.ids)),
		Links:     make([]PathLink, 0, max(len(p.ids)-1, 0)),
		Animating: frame.Running,
	}
	for i, id := range p.ids {
		state, _ := p.states.State(id)
		y := p.centerY + (renderIndex-i)*spacing + offset
		out.Slots = append(out.Slots, PathSlot{ID: id, X: p.centerX, Y: y, State: state})
	}
	for i := 0; i+1 < len(out.Slots); i++ {
		from, to := out.Slots[i], out.Slots[i+1]
		fill, stroke := LinkColors(from.State, to.State)
		out.Links = append(out.Links, PathLink{
			From:   Point{from.X, from.Y},
			To:     Point{to.X, to.Y},
			Fill:   fill,
			Stroke: stroke,
		})
	}
	p.last = out
	return out
}

func (p *PathView) overCenter(x, y int) bool {
	n := GraphNode{X: p.centerX, Y: p.centerY, HalfSize: p.halfSize, Visible: true}
	return n.Contains(x, y)
}

// LinkColors returns the fill and stroke colours of a connection going from
// a node in state from to a node in state to.
func LinkColors(from, to NodeState) (fill, stroke uint32) {
	switch {
	case to == StateUnlocked:
		return linkFillUnlocked, linkStrokeUnlocked
	case from == StateUnlocked && (to == StateAffordable || to == StateAvailable):
		return linkGray, linkGray
	case to == StateLocked || to == StateExcluded:
		return linkFillLocked, linkStrokeLocked
	}
	return linkGray, linkGray
}
