package ebitenview

import (
	"image"
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/phanxgames/skilltree"
)

func TestTooltipLines(t *testing.T) {
	tests := []struct {
		name string
		ctx  skilltree.HoverContext
		want []string
	}{
		{
			name: "cleared",
			ctx:  skilltree.HoverContext{NodeID: "a"},
			want: nil,
		},
		{
			name: "title falls back to id",
			ctx:  skilltree.HoverContext{NodeID: "a", Hovered: true},
			want: []string{"a"},
		},
		{
			name: "full",
			ctx: skilltree.HoverContext{
				NodeID:  "fire",
				Hovered: true,
				Descriptor: skilltree.Descriptor{
					Title:            "Fireball",
					Description:      "Hurls fire.\nBurns.",
					ExtraDescription: "Costs 2 points",
				},
				RewardLevel: 3,
				HasReward:   true,
			},
			want: []string{"Fireball", "lvl 3", "Hurls fire.", "Burns.", "Costs 2 points"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TooltipLines(tt.ctx)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TooltipLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTooltipSize(t *testing.T) {
	w, h := tooltipSize([]string{"abc", "abcdef"})
	if w != 6*glyphW+2*tooltipPadding {
		t.Errorf("w = %d, want %d", w, 6*glyphW+2*tooltipPadding)
	}
	if h != 2*glyphH+2*tooltipPadding {
		t.Errorf("h = %d, want %d", h, 2*glyphH+2*tooltipPadding)
	}
}

func TestPlaceTooltip(t *testing.T) {
	bounds := image.Rect(0, 0, 800, 600)
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"fits", 100, 100, 100, 100},
		{"flips left", 750, 100, 750 - 100 - 24, 100},
		{"flips up", 100, 580, 100, 580 - 50 - 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := placeTooltip(tt.x, tt.y, 100, 50, bounds)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("placeTooltip = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestARGB(t *testing.T) {
	got := ARGB(0xFFB37D12)
	want := color.RGBA{R: 0xB3, G: 0x7D, B: 0x12, A: 0xFF}
	if got != want {
		t.Errorf("ARGB = %v, want %v", got, want)
	}
	half := ARGB(0x80FF0000)
	if half.A != 0x80 || half.R != 0x80 {
		t.Errorf("ARGB half alpha = %v, want premultiplied red 0x80", half)
	}
}

func TestRGBA(t *testing.T) {
	if got := RGBA(skilltree.ColorWhite); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("RGBA(white) = %v", got)
	}
	if got := RGBA(skilltree.ColorRed); got != (color.RGBA{204, 102, 102, 255}) {
		t.Errorf("RGBA(red) = %v", got)
	}
}

func TestInsideScreen(t *testing.T) {
	if !insideScreen(0, 0, 10, 10) || insideScreen(10, 5, 10, 10) || insideScreen(-1, 5, 10, 10) {
		t.Error("insideScreen edges wrong")
	}
}

func TestViewGeoM(t *testing.T) {
	cam, err := skilltree.NewCamera(800, 600, skilltree.DefaultCameraOptions())
	if err != nil {
		t.Fatal(err)
	}
	cam.SetBounds(skilltree.BoxOf([]skilltree.Point{{X: -1000, Y: -1000}, {X: 1000, Y: 1000}}))

	tests := []struct {
		name   string
		x, y   int
		scale  float64
		ox, oy int
	}{
		{"centered", 0, 0, 1, 0, 0},
		{"panned and zoomed", 30, -20, 1.5, 10, 20},
		{"zoomed out", -120, 85, 0.63, 250, 40},
	}
	points := [][2]int{{0, 0}, {100, 40}, {-333, 718}, {1000, -1000}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam.SetPosition(tt.x, tt.y, tt.scale)
			geo := viewGeoM(cam.ViewMatrix(), tt.ox, tt.oy)
			for _, p := range points {
				gx, gy := geo.Apply(float64(p[0]), float64(p[1]))
				vx, vy := cam.WorldToView(p[0], p[1])
				wantX, wantY := float64(tt.ox+vx), float64(tt.oy+vy)
				if math.Abs(gx-wantX) > 0.5 || math.Abs(gy-wantY) > 0.5 {
					t.Errorf("Apply(%v) = (%v,%v), want (%v,%v) within half a pixel", p, gx, gy, wantX, wantY)
				}
			}
		})
	}
}
