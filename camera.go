package skilltree

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ErrInvalidViewport is returned when a camera or viewport is created with a
// non-positive size.
var ErrInvalidViewport = errors.New("skilltree: viewport dimensions must be positive")

// CameraOptions tunes how a Camera derives and enforces its limits.
// Non-positive scale fields fall back to DefaultCameraOptions; the pixel
// fields are taken literally.
type CameraOptions struct {
	// ContentGrow is added on every side of the node extent before fitting.
	ContentGrow int
	// EdgePadding keeps the outermost nodes away from the content edge.
	EdgePadding int
	// DragPadding lets small content be dragged slightly past centered.
	DragPadding int
	// ScrollSensitivity scales wheel deltas: factor = 2^(delta*sensitivity).
	ScrollSensitivity float64
	// MinScaleMargin multiplies the fit-to-viewport scale to get MinScale.
	MinScaleMargin float64
	// MaxScale caps zoom-in.
	MaxScale float64
}

// DefaultCameraOptions returns the tuning used by the skill tree screen.
func DefaultCameraOptions() CameraOptions {
	return CameraOptions{
		ContentGrow:       32,
		EdgePadding:       20,
		DragPadding:       40,
		ScrollSensitivity: 0.25,
		MinScaleMargin:    0.75,
		MaxScale:          2.0,
	}
}

// withDefaults fills in the scale tuning, which has no meaningful zero.
// Paddings and growth are used as given, so zero disables them.
func (o CameraOptions) withDefaults() CameraOptions {
	d := DefaultCameraOptions()
	if o.ScrollSensitivity <= 0 {
		o.ScrollSensitivity = d.ScrollSensitivity
	}
	if o.MinScaleMargin <= 0 {
		o.MinScaleMargin = d.MinScaleMargin
	}
	if o.MaxScale <= 0 {
		o.MaxScale = d.MaxScale
	}
	return o
}

// scrollAnim holds an active scroll-to tween pair for the camera pan.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	start  time.Time
}

// Camera is a 2D pan/zoom camera over world space, rendered into a viewport
// of fixed pixel size. Pan is the view-space offset of the world origin from
// the viewport center; scale multiplies world coordinates.
//
// Every mutating method re-clamps scale to [MinScale, MaxScale] and pan to
// the range allowed for the resulting scale.
type Camera struct {
	panX, panY int
	scale      float64

	viewportW, viewportH int

	bounds   Box
	minScale float64
	maxScale float64

	opts   CameraOptions
	scroll *scrollAnim
}

// NewCamera creates a camera for a viewport of w x h pixels.
func NewCamera(w, h int, opts CameraOptions) (*Camera, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, w, h)
	}
	return &Camera{
		scale:     1.0,
		viewportW: w,
		viewportH: h,
		minScale:  0.75,
		maxScale:  2.0,
		opts:      opts.withDefaults(),
	}, nil
}

// SetBounds recomputes the clamping box and zoom limits from the raw node
// extent and re-clamps the current state. A zero box disables positional
// clamping.
func (c *Camera) SetBounds(content Box) {
	if content.IsZero() {
		c.bounds = Box{}
		c.applyChanges(c.panX, c.panY, c.scale)
		return
	}
	c.bounds = fitViewport(content.Grow(c.opts.ContentGrow), c.viewportW, c.viewportH, c.opts.EdgePadding)
	c.setScaleLimits()
	c.applyChanges(c.panX, c.panY, c.scale)
}

// SetContentBounds installs an already computed content box (see
// ComputeContentBounds) without growing or fitting it again.
func (c *Camera) SetContentBounds(b Box) {
	c.bounds = b
	if !b.IsZero() {
		c.setScaleLimits()
	}
	c.applyChanges(c.panX, c.panY, c.scale)
}

// setScaleLimits derives the zoom range from the current bounds. Content
// small enough to need more than MaxScale to fill the viewport pins the
// scale at MaxScale.
func (c *Camera) setScaleLimits() {
	c.maxScale = c.opts.MaxScale
	c.minScale = min(MinScaleFor(c.bounds, c.viewportW, c.viewportH, c.opts.MinScaleMargin), c.maxScale)
}

// SetPosition sets pan and scale, clamped. Cancels any running ScrollTo.
func (c *Camera) SetPosition(x, y int, scale float64) {
	c.scroll = nil
	c.applyChanges(x, y, scale)
}

// Pan offsets the current position by (dx, dy) view pixels. Cancels any
// running ScrollTo.
func (c *Camera) Pan(dx, dy int) {
	c.scroll = nil
	c.applyChanges(c.panX+dx, c.panY+dy, c.scale)
}

// ApplyZoom zooms by a wheel delta while keeping the world point under the
// cursor (viewport-local coordinates) stationary. Positive delta zooms in.
func (c *Camera) ApplyZoom(cursorX, cursorY, wheelDelta float64) {
	c.scroll = nil
	factor := math.Pow(2, wheelDelta*c.opts.ScrollSensitivity)
	newScale := clampFloat(c.scale*factor, c.minScale, c.maxScale)
	actual := newScale / c.scale

	halfW := float64(c.viewportW) / 2
	halfH := float64(c.viewportH) / 2
	newX := c.panX - roundInt((actual-1)*(cursorX-float64(c.panX)-halfW))
	newY := c.panY - roundInt((actual-1)*(cursorY-float64(c.panY)-halfH))

	c.applyChanges(newX, newY, newScale)
}

// applyChanges clamps and stores a candidate pan/scale.
func (c *Camera) applyChanges(x, y int, scale float64) {
	scale = clampFloat(scale, c.minScale, c.maxScale)
	if c.bounds.IsZero() {
		c.panX, c.panY, c.scale = 0, 0, scale
		return
	}
	minX, maxX, minY, maxY := c.panRange(scale)
	c.panX = clampInt(x, minX, maxX)
	c.panY = clampInt(y, minY, maxY)
	c.scale = scale
}

// panRange computes the legal pan range for a given scale. Content smaller
// than the viewport is centered with DragPadding slack; larger content keeps
// its edges out of the viewport interior.
func (c *Camera) panRange(scale float64) (minX, maxX, minY, maxY int) {
	b := c.bounds
	pad := c.opts.DragPadding

	scaledW := int(float64(b.Width()) * scale)
	scaledH := int(float64(b.Height()) * scale)

	if scaledW < c.viewportW {
		off := (c.viewportW - scaledW) / 2
		minX, maxX = -off-pad, off+pad
	} else {
		halfW := float64(c.viewportW / 2)
		minX = int(math.Ceil(halfW - float64(b.MaxX)*scale))
		maxX = int(math.Floor(-halfW - float64(b.MinX)*scale))
	}

	if scaledH < c.viewportH {
		off := (c.viewportH - scaledH) / 2
		minY, maxY = -off-pad, off+pad
	} else {
		halfH := float64(c.viewportH / 2)
		minY = int(math.Ceil(halfH - float64(b.MaxY)*scale))
		maxY = int(math.Floor(-halfH - float64(b.MinY)*scale))
	}

	// Content within a pixel of the viewport size can round to an empty
	// range; pin it to a single position.
	if minX > maxX {
		minX = maxX
	}
	if minY > maxY {
		minY = maxY
	}
	return
}

// PanRange returns the legal pan range at the given scale. With no bounds
// the range collapses to the origin.
func (c *Camera) PanRange(scale float64) (minX, maxX, minY, maxY int) {
	if c.bounds.IsZero() {
		return 0, 0, 0, 0
	}
	return c.panRange(clampFloat(scale, c.minScale, c.maxScale))
}

// ViewToWorld converts viewport-local coordinates to world coordinates.
func (c *Camera) ViewToWorld(vx, vy float64) (wx, wy int) {
	wx = roundInt((vx - float64(c.panX) - float64(c.viewportW)/2) / c.scale)
	wy = roundInt((vy - float64(c.panY) - float64(c.viewportH)/2) / c.scale)
	return
}

// WorldToView converts world coordinates to viewport-local coordinates.
func (c *Camera) WorldToView(wx, wy int) (vx, vy int) {
	x, y := TransformPoint(c.ViewMatrix(), float64(wx), float64(wy))
	return roundInt(x), roundInt(y)
}

// ViewMatrix returns the world→viewport affine matrix,
// Translate(pan + viewport center) * Scale(scale). WorldToView rounds its
// output; renderers can use the matrix directly for sub-pixel placement.
func (c *Camera) ViewMatrix() [6]float64 {
	t := translateAffine(float64(c.panX)+float64(c.viewportW)/2, float64(c.panY)+float64(c.viewportH)/2)
	return multiplyAffine(t, scaleAffine(c.scale))
}

// ScrollTo animates the pan so that world point (wx, wy) ends up at the
// viewport center, over d, starting at now. Each step is clamped. A
// non-positive d jumps immediately.
func (c *Camera) ScrollTo(wx, wy int, d time.Duration, fn ease.TweenFunc, now time.Time) {
	if fn == nil {
		fn = ease.OutCubic
	}
	toX := -float64(wx) * c.scale
	toY := -float64(wy) * c.scale
	if d <= 0 {
		c.scroll = nil
		c.applyChanges(roundInt(toX), roundInt(toY), c.scale)
		return
	}
	ms := float32(d.Milliseconds())
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(c.panX), float32(toX), ms, fn),
		tweenY: gween.New(float32(c.panY), float32(toY), ms, fn),
		start:  now,
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// Update advances a running ScrollTo animation to now.
func (c *Camera) Update(now time.Time) {
	if c.scroll == nil {
		return
	}
	elapsed := float32(now.Sub(c.scroll.start).Milliseconds())
	x, doneX := c.scroll.tweenX.Set(elapsed)
	y, doneY := c.scroll.tweenY.Set(elapsed)
	c.applyChanges(roundInt(float64(x)), roundInt(float64(y)), c.scale)
	if doneX && doneY {
		c.scroll = nil
	}
}

// X returns the horizontal pan in view pixels.
func (c *Camera) X() int { return c.panX }

// Y returns the vertical pan in view pixels.
func (c *Camera) Y() int { return c.panY }

// Scale returns the current zoom (1.0 = 100%).
func (c *Camera) Scale() float64 { return c.scale }

// MinScale returns the smallest allowed zoom.
func (c *Camera) MinScale() float64 { return c.minScale }

// MaxScale returns the largest allowed zoom.
func (c *Camera) MaxScale() float64 { return c.maxScale }

// ViewportSize returns the viewport width and height in pixels.
func (c *Camera) ViewportSize() (w, h int) { return c.viewportW, c.viewportH }

// Bounds returns the fitted content box in world space.
func (c *Camera) Bounds() Box { return c.bounds }

// HasBounds reports whether positional clamping is active.
func (c *Camera) HasBounds() bool { return !c.bounds.IsZero() }

// Copy returns an independent copy of the camera. A running scroll animation
// is not copied.
func (c *Camera) Copy() *Camera {
	cp := *c
	cp.scroll = nil
	return &cp
}

func (c *Camera) String() string {
	return fmt.Sprintf("Camera[x=%d, y=%d, scale=%.2f, bounds=%s, viewport=%dx%d]",
		c.panX, c.panY, c.scale, c.bounds, c.viewportW, c.viewportH)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
