package ebitenview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/skilltree"
)

const (
	connectionWidth = 3
	frameStroke     = 2
	tooltipPadding  = 6
	pathHalfSize    = 13
	// ebitenutil's debug font is 6x16 per glyph.
	glyphW = 6
	glyphH = 16
)

var (
	backgroundColor  = color.RGBA{0x1A, 0x17, 0x22, 0xFF}
	connectionColor  = color.RGBA{0x80, 0x80, 0x80, 0xFF}
	exclusiveColor   = color.RGBA{0xB3, 0x7D, 0x12, 0xFF}
	frameColor       = color.RGBA{0x3A, 0x3A, 0x3A, 0xFF}
	hoverColor       = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	tooltipFillColor = color.RGBA{0x10, 0x00, 0x10, 0xF0}
	tooltipEdgeColor = color.RGBA{0x50, 0x00, 0xFF, 0x50}
)

// Connected is implemented by graph sources that know their connections.
// *skilltree.Graph implements it.
type Connected interface {
	Node(id string) (skilltree.GraphNode, bool)
	Connections() []skilltree.Connection
	ExclusiveConnections(id string) []skilltree.Connection
}

// Renderer draws a Viewport: connections, node frames, the attached path
// and the hover tooltip. It keeps the tooltip content it was given by the
// viewport's hover events.
type Renderer struct {
	tooltip    skilltree.HoverContext
	hasTooltip bool
	handle     skilltree.CallbackHandle

	// ShowDebug prints the camera state in the viewport corner.
	ShowDebug bool
}

// NewRenderer creates a renderer subscribed to vp's hover events.
func NewRenderer(vp *skilltree.Viewport) *Renderer {
	r := &Renderer{}
	r.handle = vp.OnHover(r.onHover)
	return r
}

// Close unsubscribes from hover events.
func (r *Renderer) Close() {
	r.handle.Remove()
}

func (r *Renderer) onHover(ctx skilltree.HoverContext) {
	r.tooltip = ctx
	r.hasTooltip = ctx.Hovered
}

// Draw renders vp onto screen, clipped to the viewport rectangle.
func (r *Renderer) Draw(screen *ebiten.Image, vp *skilltree.Viewport) {
	ox, oy := vp.Origin()
	w, h := vp.Camera().ViewportSize()
	rect := image.Rect(ox, oy, ox+w, oy+h)
	dst, ok := screen.SubImage(rect).(*ebiten.Image)
	if !ok {
		return
	}
	dst.Fill(backgroundColor)

	cam := vp.Camera()
	src := vp.Source()
	hovered, isHovered := vp.Hovered()
	geo := viewGeoM(cam.ViewMatrix(), ox, oy)
	lineWidth := float32(connectionWidth * cam.Scale())

	if c, ok := src.(Connected); ok {
		for _, conn := range c.Connections() {
			drawConnection(dst, c, geo, conn, lineWidth, connectionColor)
		}
		if isHovered {
			for _, conn := range c.ExclusiveConnections(hovered) {
				drawConnection(dst, c, geo, conn, lineWidth, exclusiveColor)
			}
		}
	}

	if src != nil {
		for _, n := range src.Nodes() {
			if !n.Visible {
				continue
			}
			x, y := geo.Apply(float64(n.X), float64(n.Y))
			half := n.HalfSize * cam.Scale()
			drawFrame(dst, x, y, half, n.State,
				isHovered && n.ID == hovered)
		}
	}

	if vp.Path() != nil {
		r.drawPath(dst, ox, oy, vp.PathLayout(), hovered)
	}

	if r.hasTooltip {
		r.drawTooltip(dst, rect, r.tooltip)
	}
	if r.ShowDebug {
		ebitenutil.DebugPrintAt(dst, cam.String(), ox+4, oy+h-glyphH-4)
	}
}

// viewGeoM turns a camera view matrix into screen-space GeoM for a
// viewport whose top-left corner is at (ox, oy).
func viewGeoM(m [6]float64, ox, oy int) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	g.Translate(float64(ox), float64(oy))
	return g
}

func drawConnection(dst *ebiten.Image, src Connected, geo ebiten.GeoM, c skilltree.Connection, width float32, clr color.Color) {
	a, okA := src.Node(c.A)
	b, okB := src.Node(c.B)
	if !okA || !okB || !a.Visible || !b.Visible {
		return
	}
	ax, ay := geo.Apply(float64(a.X), float64(a.Y))
	bx, by := geo.Apply(float64(b.X), float64(b.Y))
	vector.StrokeLine(dst, float32(ax), float32(ay), float32(bx), float32(by), width, clr, true)
}

func (r *Renderer) drawPath(dst *ebiten.Image, ox, oy int, layout skilltree.PathLayout, hovered string) {
	for _, l := range layout.Links {
		x0, y0 := float32(ox+l.From.X), float32(oy+l.From.Y)
		x1, y1 := float32(ox+l.To.X), float32(oy+l.To.Y)
		vector.StrokeLine(dst, x0, y0, x1, y1, connectionWidth+2, ARGB(l.Stroke), true)
		vector.StrokeLine(dst, x0, y0, x1, y1, connectionWidth, ARGB(l.Fill), true)
	}
	for _, s := range layout.Slots {
		drawFrame(dst, float64(ox+s.X), float64(oy+s.Y), pathHalfSize, s.State,
			!layout.Animating && s.ID == hovered)
	}
}

// drawFrame draws a node square of half size half centered on (cx, cy),
// tinted by state.
func drawFrame(dst *ebiten.Image, cx, cy, half float64, state skilltree.NodeState, hovered bool) {
	x := float32(cx - half)
	y := float32(cy - half)
	size := float32(2 * half)
	vector.DrawFilledRect(dst, x, y, size, size, frameColor, false)
	edge := RGBA(state.Tint())
	if hovered {
		edge = hoverColor
	}
	vector.StrokeRect(dst, x, y, size, size, frameStroke, edge, false)
}

func (r *Renderer) drawTooltip(dst *ebiten.Image, bounds image.Rectangle, ctx skilltree.HoverContext) {
	lines := TooltipLines(ctx)
	if len(lines) == 0 {
		return
	}
	w, h := tooltipSize(lines)
	x, y := placeTooltip(int(ctx.ScreenX)+12, int(ctx.ScreenY)+12, w, h, bounds)

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), tooltipFillColor, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, tooltipEdgeColor, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, x+tooltipPadding, y+tooltipPadding+i*glyphH)
	}
}

// TooltipLines returns the text lines of a node tooltip: title, reward
// level, description and extra description, skipping empty parts.
func TooltipLines(ctx skilltree.HoverContext) []string {
	if !ctx.Hovered {
		return nil
	}
	var lines []string
	title := ctx.Descriptor.Title
	if title == "" {
		title = ctx.NodeID
	}
	lines = append(lines, title)
	if ctx.HasReward {
		lines = append(lines, fmt.Sprintf("lvl %d", ctx.RewardLevel))
	}
	for _, part := range []string{ctx.Descriptor.Description, ctx.Descriptor.ExtraDescription} {
		if part == "" {
			continue
		}
		lines = append(lines, strings.Split(part, "\n")...)
	}
	return lines
}

func tooltipSize(lines []string) (w, h int) {
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	return longest*glyphW + 2*tooltipPadding, len(lines)*glyphH + 2*tooltipPadding
}

// placeTooltip keeps a w x h box at (x, y) inside bounds, flipping it to
// the other side of the cursor when it would overflow.
func placeTooltip(x, y, w, h int, bounds image.Rectangle) (int, int) {
	if x+w > bounds.Max.X {
		x = max(bounds.Min.X, x-w-24)
	}
	if y+h > bounds.Max.Y {
		y = max(bounds.Min.Y, y-h-24)
	}
	return x, y
}

// RGBA converts an engine colour to an 8-bit color.RGBA.
func RGBA(c skilltree.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// ARGB converts a packed 0xAARRGGBB colour to a premultiplied color.RGBA.
func ARGB(v uint32) color.RGBA {
	a := uint8(v >> 24)
	scale := func(c uint8) uint8 { return uint8(uint32(c) * uint32(a) / 255) }
	return color.RGBA{
		R: scale(uint8(v >> 16)),
		G: scale(uint8(v >> 8)),
		B: scale(uint8(v)),
		A: a,
	}
}
