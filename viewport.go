package skilltree

import (
	"fmt"
	"log/slog"
	"time"
)

// ActivateSource tells which widget produced an activation.
type ActivateSource uint8

const (
	SourceCanvas ActivateSource = iota // click on the pannable graph
	SourcePath                         // click on the center node of a PathView
)

func (s ActivateSource) String() string {
	if s == SourcePath {
		return "path"
	}
	return "canvas"
}

// HoverContext describes a hover change. Hovered false means the tooltip must
// be cleared.
type HoverContext struct {
	NodeID      string
	Hovered     bool
	Descriptor  Descriptor
	RewardLevel int
	HasReward   bool
	ScreenX     float64
	ScreenY     float64
}

// ActivateContext describes an activation request for a node. The viewport
// never changes node state itself; handlers forward the request to whatever
// owns the game rules.
type ActivateContext struct {
	NodeID  string
	Source  ActivateSource
	ScreenX float64
	ScreenY float64
}

// AdvanceContext describes a path advance that just started.
type AdvanceContext struct {
	NodeID    string
	FromIndex int
}

// RewardSource is implemented by graph sources that know class reward
// levels. *Graph implements it.
type RewardSource interface {
	RewardLevel(id string) (int, bool)
}

// InteractionEvent carries viewport events into an EntityStore.
type InteractionEvent struct {
	Type      EventType
	NodeID    string
	Hovered   bool
	Source    ActivateSource
	ScreenX   float64
	ScreenY   float64
	PanX      int
	PanY      int
	Scale     float64
	PathIndex int
}

// EntityStore receives interaction events, typically to republish them
// into an ECS world. See the ecs submodule for a Donburi adapter.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// --- Handler registry ---

type hoverHandler struct {
	id uint32
	fn func(HoverContext)
}

type activateHandler struct {
	id uint32
	fn func(ActivateContext)
}

type advanceHandler struct {
	id uint32
	fn func(AdvanceContext)
}

type handlerRegistry struct {
	hover    []hoverHandler
	activate []activateHandler
	advance  []advanceHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered viewport callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventHover:
		h.reg.hover = removeHandler(h.reg.hover, func(x hoverHandler) bool { return x.id == h.id })
	case EventActivate:
		h.reg.activate = removeHandler(h.reg.activate, func(x activateHandler) bool { return x.id == h.id })
	case EventAdvance:
		h.reg.advance = removeHandler(h.reg.advance, func(x advanceHandler) bool { return x.id == h.id })
	}
}

func removeHandler[T any](s []T, match func(T) bool) []T {
	for i := range s {
		if match(s[i]) {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// Viewport is one interactive graph view: a rectangle on screen with its own
// camera, hover tracker, gesture state and optional path widget. Viewports
// share nothing; the graph source is only read.
type Viewport struct {
	originX, originY int

	camera *Camera
	hover  *HoverTracker
	drag   *DragState
	source GraphSource
	path   *PathView

	handlers handlerRegistry
	store    EntityStore

	logger *slog.Logger
	debug  bool

	// Clock supplies the time for throttling and animations.
	Clock func() time.Time

	pointerX, pointerY float64
	hasPointer         bool
	pressed            bool
	lastLX, lastLY     float64

	pathLayout PathLayout
}

// NewViewport creates a viewport of w x h pixels whose top-left corner is at
// screen position (x, y), showing src. Bounds are computed immediately.
func NewViewport(x, y, w, h int, src GraphSource, cfg Config) (*Viewport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cam, err := NewCamera(w, h, cfg.CameraOptions())
	if err != nil {
		return nil, err
	}
	v := &Viewport{
		originX: x,
		originY: y,
		camera:  cam,
		hover:   NewHoverTracker(cfg.HoverInterval()),
		drag:    NewDragState(cfg.Gesture.DragThreshold),
		source:  src,
		logger:  slog.New(slog.DiscardHandler),
		debug:   cfg.Log.Debug,
		Clock:   time.Now,
	}
	v.Refresh()
	return v, nil
}

// SetLogger sets the structured logger. nil discards all records.
func (v *Viewport) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	v.logger = l
}

// SetDebugMode enables per-event debug records.
func (v *Viewport) SetDebugMode(enabled bool) {
	v.debug = enabled
}

// SetEntityStore sets the optional ECS bridge.
func (v *Viewport) SetEntityStore(s EntityStore) {
	v.store = s
}

// SetSource replaces the graph source and recomputes bounds.
func (v *Viewport) SetSource(src GraphSource) {
	v.source = src
	v.hover.Reset()
	v.Refresh()
}

// AttachPath shows p inside this viewport. Its center is in
// viewport-local pixels. nil detaches.
func (v *Viewport) AttachPath(p *PathView) {
	v.path = p
	v.pathLayout = PathLayout{}
}

// Path returns the attached path widget, if any.
func (v *Viewport) Path() *PathView { return v.path }

// Camera returns the viewport's camera.
func (v *Viewport) Camera() *Camera { return v.camera }

// Source returns the graph source.
func (v *Viewport) Source() GraphSource { return v.source }

// Origin returns the screen position of the viewport's top-left corner.
func (v *Viewport) Origin() (x, y int) { return v.originX, v.originY }

// SetOrigin moves the viewport on screen without touching the camera.
func (v *Viewport) SetOrigin(x, y int) { v.originX, v.originY = x, y }

// Refresh recomputes the camera bounds from the visible node positions.
// Call it after the node list changes.
func (v *Viewport) Refresh() {
	var pts []Point
	if v.source != nil {
		pts = VisiblePositions(v.source.Nodes())
	}
	v.camera.SetBounds(BoxOf(pts))
	v.debugLog("bounds recomputed",
		slog.Int("nodes", len(pts)),
		slog.String("bounds", v.camera.Bounds().String()),
		slog.Float64("min_scale", v.camera.MinScale()))
}

// --- Event registration ---

// OnHover registers a callback for hover changes.
func (v *Viewport) OnHover(fn func(HoverContext)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.hover = append(v.handlers.hover, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventHover}
}

// OnActivate registers a callback for activation requests.
func (v *Viewport) OnActivate(fn func(ActivateContext)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.activate = append(v.handlers.activate, activateHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventActivate}
}

// OnAdvance registers a callback fired when a path advance starts.
func (v *Viewport) OnAdvance(fn func(AdvanceContext)) CallbackHandle {
	v.handlers.nextID++
	id := v.handlers.nextID
	v.handlers.advance = append(v.handlers.advance, advanceHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &v.handlers, event: EventAdvance}
}

// --- Input ---

// local converts screen coordinates to viewport-local ones.
func (v *Viewport) local(sx, sy float64) (float64, float64) {
	return sx - float64(v.originX), sy - float64(v.originY)
}

// Move records the pointer position without any button held.
func (v *Viewport) Move(sx, sy float64) {
	v.pointerX, v.pointerY, v.hasPointer = sx, sy, true
}

// Leave forgets the pointer, so the next hover poll clears the tooltip.
func (v *Viewport) Leave() {
	v.hasPointer = false
}

// Press starts a gesture at screen (sx, sy). Presses outside the viewport
// are ignored.
func (v *Viewport) Press(sx, sy float64) {
	v.Move(sx, sy)
	lx, ly := v.local(sx, sy)
	w, h := v.camera.ViewportSize()
	if !insideViewport(lx, ly, w, h) {
		return
	}
	v.pressed = true
	v.lastLX, v.lastLY = lx, ly
	v.drag.Start(lx, ly, float64(v.camera.X()), float64(v.camera.Y()))

	if v.path == nil {
		return
	}
	now := v.Clock()
	from := v.path.CurrentIndex()
	id, ok := v.path.Click(int(lx), int(ly), now)
	if !ok {
		return
	}
	v.drag.PreventDrag()
	v.fireActivate(id, SourcePath, sx, sy)
	if v.path.Animating() {
		v.fireAdvance(id, from)
	}
}

// Drag moves a held pointer to screen (sx, sy). Once the accumulated
// movement passes the threshold the camera follows the pointer.
func (v *Viewport) Drag(sx, sy float64) {
	v.Move(sx, sy)
	if !v.pressed {
		return
	}
	lx, ly := v.local(sx, sy)
	dx, dy := lx-v.lastLX, ly-v.lastLY
	v.lastLX, v.lastLY = lx, ly
	if !v.drag.Armed() {
		return
	}
	v.drag.Update(dx, dy)
	if !v.drag.ShouldDrag() {
		return
	}
	v.camera.SetPosition(roundInt(lx-v.drag.StartX()), roundInt(ly-v.drag.StartY()), v.camera.Scale())
	v.emit(InteractionEvent{Type: EventPan, ScreenX: sx, ScreenY: sy})
}

// Release ends a gesture at screen (sx, sy). A release that never passed the
// drag threshold is a click: the node under the pointer is activated.
func (v *Viewport) Release(sx, sy float64) {
	v.Move(sx, sy)
	if !v.pressed {
		return
	}
	v.pressed = false
	if v.drag.IsClick() {
		if _, onPath := v.pathHit(sx, sy); !onPath {
			if id, ok := v.canvasHit(sx, sy); ok {
				v.fireActivate(id, SourceCanvas, sx, sy)
			}
		}
	}
	v.drag.End()
}

// Scroll zooms around screen (sx, sy) by a wheel delta. Scrolling outside
// the viewport is ignored.
func (v *Viewport) Scroll(sx, sy, delta float64) {
	v.Move(sx, sy)
	lx, ly := v.local(sx, sy)
	w, h := v.camera.ViewportSize()
	if delta == 0 || !insideViewport(lx, ly, w, h) {
		return
	}
	before := v.camera.Scale()
	v.camera.ApplyZoom(lx, ly, delta)
	if v.camera.Scale() != before {
		v.emit(InteractionEvent{Type: EventZoom, ScreenX: sx, ScreenY: sy})
		v.debugLog("zoom", slog.Float64("scale", v.camera.Scale()))
	}
}

// Pressed reports whether a gesture is in progress.
func (v *Viewport) Pressed() bool { return v.pressed }

// Dragging reports whether the current gesture is panning the camera.
func (v *Viewport) Dragging() bool { return v.pressed && v.drag.ShouldDrag() }

// Update advances animations and then polls hover against the updated
// camera. Call it once per frame after feeding input and before drawing.
func (v *Viewport) Update() {
	now := v.Clock()
	v.camera.Update(now)
	if v.path != nil {
		v.pathLayout = v.path.Layout(now)
	}

	ev := v.hover.PollFunc(now, func() (string, bool) {
		if !v.hasPointer {
			return "", false
		}
		return v.hitAt(v.pointerX, v.pointerY)
	})
	if ev.Changed {
		v.fireHover(ev)
	}
}

// PathLayout returns the path layout computed by the last Update.
func (v *Viewport) PathLayout() PathLayout { return v.pathLayout }

// Hovered returns the currently hovered node.
func (v *Viewport) Hovered() (string, bool) { return v.hover.Hovered() }

// FocusNode scrolls the camera so node id ends up centered, over d. Hidden
// nodes, and every node when the viewport has no source, are unknown.
func (v *Viewport) FocusNode(id string, d time.Duration) error {
	var nodes []GraphNode
	if v.source != nil {
		nodes = v.source.Nodes()
	}
	for _, n := range nodes {
		if n.ID == id && n.Visible {
			v.camera.ScrollTo(n.X, n.Y, d, nil, v.Clock())
			v.debugLog("focus", slog.String("node", id))
			return nil
		}
	}
	return fmt.Errorf("focus: %w: %q", ErrUnknownNode, id)
}

// NodeAt returns the node under screen (sx, sy): a path slot first, then
// the graph.
func (v *Viewport) NodeAt(sx, sy float64) (string, bool) {
	return v.hitAt(sx, sy)
}

func (v *Viewport) hitAt(sx, sy float64) (string, bool) {
	if id, ok := v.pathHit(sx, sy); ok {
		return id, true
	}
	return v.canvasHit(sx, sy)
}

func (v *Viewport) pathHit(sx, sy float64) (string, bool) {
	if v.path == nil {
		return "", false
	}
	lx, ly := v.local(sx, sy)
	return v.path.HoverAt(int(lx), int(ly))
}

func (v *Viewport) canvasHit(sx, sy float64) (string, bool) {
	lx, ly := v.local(sx, sy)
	w, h := v.camera.ViewportSize()
	if v.source == nil || !insideViewport(lx, ly, w, h) {
		return "", false
	}
	wx, wy := v.camera.ViewToWorld(lx, ly)
	return HitTest(Point{wx, wy}, v.source.Nodes())
}

// --- Event dispatch ---

func (v *Viewport) fireHover(ev HoverEvent) {
	ctx := HoverContext{
		NodeID:  ev.NodeID,
		Hovered: ev.Hovered,
		ScreenX: v.pointerX,
		ScreenY: v.pointerY,
	}
	if ev.Hovered && v.source != nil {
		ctx.Descriptor, _ = v.source.Describe(ev.NodeID)
		if rs, ok := v.source.(RewardSource); ok {
			ctx.RewardLevel, ctx.HasReward = rs.RewardLevel(ev.NodeID)
		}
	}
	for _, h := range v.handlers.hover {
		h.fn(ctx)
	}
	v.emit(InteractionEvent{Type: EventHover, NodeID: ev.NodeID, Hovered: ev.Hovered,
		ScreenX: v.pointerX, ScreenY: v.pointerY})
	v.debugLog("hover", slog.String("node", ev.NodeID), slog.Bool("hovered", ev.Hovered))
}

func (v *Viewport) fireActivate(id string, src ActivateSource, sx, sy float64) {
	ctx := ActivateContext{NodeID: id, Source: src, ScreenX: sx, ScreenY: sy}
	for _, h := range v.handlers.activate {
		h.fn(ctx)
	}
	v.emit(InteractionEvent{Type: EventActivate, NodeID: id, Source: src, ScreenX: sx, ScreenY: sy})
	v.debugLog("activate", slog.String("node", id), slog.String("source", src.String()))
}

func (v *Viewport) fireAdvance(id string, from int) {
	ctx := AdvanceContext{NodeID: id, FromIndex: from}
	for _, h := range v.handlers.advance {
		h.fn(ctx)
	}
	v.emit(InteractionEvent{Type: EventAdvance, NodeID: id, PathIndex: from})
	v.debugLog("path advance", slog.String("node", id), slog.Int("from", from))
}

// emit fills in the camera state and forwards to the EntityStore, if any.
func (v *Viewport) emit(ev InteractionEvent) {
	if v.store == nil {
		return
	}
	ev.PanX, ev.PanY, ev.Scale = v.camera.X(), v.camera.Y(), v.camera.Scale()
	v.store.EmitEvent(ev)
}
