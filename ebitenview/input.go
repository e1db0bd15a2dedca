package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/skilltree"
)

// PollPointer reads the mouse for one frame. Only the left button drives
// gestures; the vertical wheel drives zoom. Inside is false once the cursor
// leaves a screen of w x h pixels.
func PollPointer(w, h int) skilltree.PointerState {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return skilltree.PointerState{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Wheel:   wy,
		Inside:  insideScreen(mx, my, w, h),
	}
}

func insideScreen(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}
