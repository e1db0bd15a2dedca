package skilltree

import "fmt"

// Box is an integer axis-aligned box. Max is inclusive of the content edge,
// so Width is MaxX-MinX.
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Box) Height() int { return b.MaxY - b.MinY }

// IsZero reports whether the box has no area and therefore cannot be used
// for clamping.
func (b Box) IsZero() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Grow returns the box expanded by n on every side.
func (b Box) Grow(n int) Box {
	return Box{MinX: b.MinX - n, MinY: b.MinY - n, MaxX: b.MaxX + n, MaxY: b.MaxY + n}
}

// Extend returns the smallest box containing both b and the point (x, y).
func (b Box) Extend(x, y int) Box {
	return Box{
		MinX: min(b.MinX, x),
		MinY: min(b.MinY, y),
		MaxX: max(b.MaxX, x),
		MaxY: max(b.MaxY, y),
	}
}

// Contains reports whether (x, y) lies inside the box. Edges are inside.
func (b Box) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b Box) String() string {
	return fmt.Sprintf("[%d,%d]-[%d,%d]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// BoxOf returns the box enclosing all points. An empty slice yields the zero
// box.
func BoxOf(points []Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		b = b.Extend(p.X, p.Y)
	}
	return b
}

// ComputeContentBounds derives the clamping box for a set of node positions
// shown in a viewport of w x h pixels.
//
// The enclosing box is grown by grow, then extended around the origin so its
// aspect ratio covers the viewport's, plus pad so the outermost nodes are
// never flush with the edge. No positions yields the zero box.
func ComputeContentBounds(positions []Point, w, h, grow, pad int) Box {
	if len(positions) == 0 || w <= 0 || h <= 0 {
		return Box{}
	}
	return fitViewport(BoxOf(positions).Grow(grow), w, h, pad)
}

// fitViewport extends a grown content box for the viewport aspect ratio.
func fitViewport(b Box, w, h, pad int) Box {
	halfW := ceilDiv(b.Height()*w, h*2) + pad
	halfH := ceilDiv(b.Width()*h, w*2) + pad
	return b.Extend(-halfW, -halfH).Extend(halfW, halfH)
}

// MinScaleFor returns the smallest zoom at which box still covers a w x h
// viewport, multiplied by margin.
func MinScaleFor(b Box, w, h int, margin float64) float64 {
	if b.IsZero() {
		return 0
	}
	sx := float64(w) / float64(b.Width())
	sy := float64(h) / float64(b.Height())
	return max(sx, sy) * margin
}

// ceilDiv divides rounding toward positive infinity.
func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
