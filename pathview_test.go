package skilltree

import (
	"testing"
	"time"
)

type stateMap map[string]NodeState

func (m stateMap) State(id string) (NodeState, bool) {
	s, ok := m[id]
	return s, ok
}

func newTestPath(states stateMap) *PathView {
	p := NewPathView([]string{"a", "b", "c", "d"}, states, NewPathAnimator(300*time.Millisecond, 36))
	p.SetCenter(700, 300)
	return p
}

func TestPathViewCurrentIndex(t *testing.T) {
	tests := []struct {
		name   string
		states stateMap
		want   int
	}{
		{"first affordable", stateMap{"a": StateUnlocked, "b": StateAffordable, "c": StateLocked, "d": StateLocked}, 1},
		{"available counts", stateMap{"a": StateUnlocked, "b": StateUnlocked, "c": StateAvailable, "d": StateLocked}, 2},
		{"all unlocked", stateMap{"a": StateUnlocked, "b": StateUnlocked, "c": StateUnlocked, "d": StateUnlocked}, 3},
		{"nothing reachable", stateMap{"a": StateLocked, "b": StateLocked, "c": StateLocked, "d": StateLocked}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newTestPath(tt.states).CurrentIndex(); got != tt.want {
				t.Errorf("CurrentIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPathViewLayout(t *testing.T) {
	states := stateMap{"a": StateUnlocked, "b": StateAffordable, "c": StateLocked, "d": StateLocked}
	p := newTestPath(states)
	layout := p.Layout(time.Unix(0, 0))

	wantY := []int{336, 300, 264, 228}
	if len(layout.Slots) != len(wantY) {
		t.Fatalf("len(Slots) = %d, want %d", len(layout.Slots), len(wantY))
	}
	for i, s := range layout.Slots {
		if s.X != 700 || s.Y != wantY[i] {
			t.Errorf("slot %s at (%d,%d), want (700,%d)", s.ID, s.X, s.Y, wantY[i])
		}
	}
	if len(layout.Links) != 3 {
		t.Fatalf("len(Links) = %d, want 3", len(layout.Links))
	}
	if l := layout.Links[0]; l.Fill != linkGray || l.From != (Point{700, 336}) || l.To != (Point{700, 300}) {
		t.Errorf("link a->b = %+v", l)
	}
	if l := layout.Links[1]; l.Fill != linkFillLocked || l.Stroke != linkStrokeLocked {
		t.Errorf("link b->c colours = %#x/%#x, want locked", l.Fill, l.Stroke)
	}
	if layout.Animating {
		t.Error("Animating = true while idle")
	}
}

func TestPathViewClickAdvances(t *testing.T) {
	states := stateMap{"a": StateUnlocked, "b": StateAffordable, "c": StateLocked, "d": StateLocked}
	p := newTestPath(states)
	t0 := time.Unix(0, 0)
	p.Layout(t0)

	if id, ok := p.HoverAt(700, 264); id != "c" || !ok {
		t.Errorf("HoverAt(700,264) = (%q, %v), want (c, true)", id, ok)
	}
	if _, ok := p.Click(700, 336, t0); ok {
		t.Error("Click off center activated")
	}

	id, ok := p.Click(705, 295, t0)
	if !ok || id != "b" {
		t.Fatalf("Click center = (%q, %v), want (b, true)", id, ok)
	}
	if !p.Animating() {
		t.Fatal("Animating = false after click")
	}
	if _, ok := p.Click(700, 300, t0.Add(10*time.Millisecond)); ok {
		t.Error("Click while animating activated")
	}

	mid := p.Layout(t0.Add(150 * time.Millisecond))
	if !mid.Animating || mid.Slots[1].Y != 331 {
		t.Errorf("mid layout: animating=%v b.Y=%d, want true, 331", mid.Animating, mid.Slots[1].Y)
	}
	if _, ok := p.HoverAt(700, 331); ok {
		t.Error("HoverAt while animating hit a node")
	}

	// The activation sink applies the unlock.
	states["b"] = StateUnlocked
	states["c"] = StateAffordable

	done := p.Layout(t0.Add(300 * time.Millisecond))
	if done.Animating {
		t.Error("Animating after duration")
	}
	if done.Slots[2].Y != 300 || done.Slots[1].Y != 336 {
		t.Errorf("settled: c.Y=%d b.Y=%d, want 300, 336", done.Slots[2].Y, done.Slots[1].Y)
	}
	if l := done.Links[0]; l.Fill != linkFillUnlocked || l.Stroke != linkStrokeUnlocked {
		t.Errorf("link a->b colours = %#x/%#x, want unlocked", l.Fill, l.Stroke)
	}
}

func TestPathViewClickRequiresAffordable(t *testing.T) {
	p := newTestPath(stateMap{"a": StateUnlocked, "b": StateAvailable, "c": StateLocked, "d": StateLocked})
	p.Layout(time.Unix(0, 0))
	if _, ok := p.Click(700, 300, time.Unix(0, 0)); ok {
		t.Error("Click on available node activated")
	}
}

func TestPathViewLastNodeDoesNotAnimate(t *testing.T) {
	p := newTestPath(stateMap{"a": StateUnlocked, "b": StateUnlocked, "c": StateUnlocked, "d": StateAffordable})
	id, ok := p.Click(700, 300, time.Unix(0, 0))
	if !ok || id != "d" {
		t.Fatalf("Click = (%q, %v), want (d, true)", id, ok)
	}
	if p.Animating() {
		t.Error("Animating after activating the last node")
	}
}

func TestLinkColors(t *testing.T) {
	tests := []struct {
		from, to     NodeState
		fill, stroke uint32
	}{
		{StateLocked, StateUnlocked, 0xFFB37D12, 0xFFBF8C26},
		{StateUnlocked, StateUnlocked, 0xFFB37D12, 0xFFBF8C26},
		{StateUnlocked, StateAffordable, 0xFF808080, 0xFF808080},
		{StateUnlocked, StateAvailable, 0xFF808080, 0xFF808080},
		{StateAffordable, StateLocked, 0xFF3A3A3A, 0xFF3D3D3D},
		{StateUnlocked, StateExcluded, 0xFF3A3A3A, 0xFF3D3D3D},
		{StateLocked, StateAvailable, 0xFF808080, 0xFF808080},
	}
	for _, tt := range tests {
		fill, stroke := LinkColors(tt.from, tt.to)
		if fill != tt.fill || stroke != tt.stroke {
			t.Errorf("LinkColors(%v, %v) = %#x/%#x, want %#x/%#x", tt.from, tt.to, fill, stroke, tt.fill, tt.stroke)
		}
	}
}
