package skilltree

// Contains reports whether the world point (x, y) lies in the node's hit
// square [pos-half, pos+half). Right and bottom edges are outside.
func (n GraphNode) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	left := float64(n.X) - n.HalfSize
	top := float64(n.Y) - n.HalfSize
	right := float64(n.X) + n.HalfSize
	bottom := float64(n.Y) + n.HalfSize
	return fx >= left && fy >= top && fx < right && fy < bottom
}

// HitTest returns the first visible node, in slice order, whose hit square
// contains the world point. Overlaps resolve by declaration order, not by
// distance.
func HitTest(world Point, nodes []GraphNode) (string, bool) {
	for i := range nodes {
		n := &nodes[i]
		if !n.Visible {
			continue
		}
		if n.Contains(world.X, world.Y) {
			return n.ID, true
		}
	}
	return "", false
}

// insideViewport reports whether a viewport-local point lies within a
// w x h viewport. Right and bottom edges are outside.
func insideViewport(x, y float64, w, h int) bool {
	return x >= 0 && y >= 0 && x < float64(w) && y < float64(h)
}
