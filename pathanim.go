package skilltree

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultAdvanceDuration is how long a path advance animation runs.
	DefaultAdvanceDuration = 300 * time.Millisecond
	// DefaultNodeSpacing is the distance between two path slots: one
	// 26px frame plus a 10px gap.
	DefaultNodeSpacing = 2*frameHalfSize + 10
)

// PathFrame is what a renderer needs for one frame of a path: the index the
// layout is anchored on and the extra offset, in pixels, toward the next
// slot.
type PathFrame struct {
	Running     bool
	Offset      float64
	RenderIndex int
}

// PathAnimator plays the short eased transition that moves a path's focus
// from one node to the next.
//
// Idle --Activate--> Running --elapsed >= duration--> Idle. Activating while
// running is ignored; advances are neither queued nor restarted.
type PathAnimator struct {
	duration time.Duration
	spacing  float64

	running   bool
	start     time.Time
	fromIndex int
	progress  float64
	tween     *gween.Tween
}

// NewPathAnimator creates an idle animator. Non-positive arguments use
// DefaultAdvanceDuration and DefaultNodeSpacing.
func NewPathAnimator(duration time.Duration, spacing float64) *PathAnimator {
	if duration <= 0 {
		duration = DefaultAdvanceDuration
	}
	if spacing <= 0 {
		spacing = DefaultNodeSpacing
	}
	return &PathAnimator{
		duration:  duration,
		spacing:   spacing,
		fromIndex: -1,
		tween:     gween.New(0, 1, float32(duration.Milliseconds()), ease.OutCubic),
	}
}

// Activate starts an advance away from fromIndex. It returns false, and
// changes nothing, when an advance is already running.
func (a *PathAnimator) Activate(fromIndex int, now time.Time) bool {
	if a.running {
		return false
	}
	a.running = true
	a.start = now
	a.fromIndex = fromIndex
	a.progress = 0
	a.tween.Reset()
	return true
}

// Poll advances the animation to now and reports the frame to draw. The
// first poll at or past the duration reports the settled frame
// (RenderIndex = fromIndex+1, Offset 0) and returns the animator to idle.
func (a *PathAnimator) Poll(now time.Time) PathFrame {
	if !a.running {
		return PathFrame{RenderIndex: a.fromIndex}
	}
	elapsed := now.Sub(a.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= a.duration {
		a.running = false
		a.progress = 0
		a.fromIndex++
		return PathFrame{RenderIndex: a.fromIndex}
	}
	eased, _ := a.tween.Set(float32(elapsed.Milliseconds()))
	a.progress = float64(eased)
	return PathFrame{
		Running:     true,
		Offset:      a.progress * a.spacing,
		RenderIndex: a.fromIndex,
	}
}

// Running reports whether an advance is in progress.
func (a *PathAnimator) Running() bool { return a.running }

// Progress returns the eased progress of the last poll in [0, 1).
func (a *PathAnimator) Progress() float64 { return a.progress }

// Spacing returns the slot spacing in pixels.
func (a *PathAnimator) Spacing() float64 { return a.spacing }

// Duration returns the advance duration.
func (a *PathAnimator) Duration() time.Duration { return a.duration }
