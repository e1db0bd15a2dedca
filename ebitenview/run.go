package ebitenview

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/skilltree"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool

	// Config tunes the viewport. The zero value uses skilltree.DefaultConfig.
	Config *skilltree.Config
	// Logger receives structured records; nil discards them.
	Logger *slog.Logger
	// Path, when set, names a graph path shown as a column on the right.
	Path string
	// Script, when set, replays scripted input and quits once it is done.
	Script *skilltree.TestRunner
	// OnActivate receives activation requests. When nil, activating an
	// affordable node unlocks it directly so the viewer is usable on its own.
	OnActivate func(skilltree.ActivateContext)
}

// Game is an ebiten.Game showing one graph viewport. Use it directly to
// embed the viewer into a larger game loop, or call Run.
type Game struct {
	vp       *skilltree.Viewport
	input    *skilltree.Input
	renderer *Renderer
	width    int
	height   int
	showFPS  bool
	script   *skilltree.TestRunner
}

// NewGame builds the viewport, input and renderer for g.
func NewGame(g *skilltree.Graph, cfg RunConfig) (*Game, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", skilltree.ErrInvalidViewport, cfg.Width, cfg.Height)
	}
	conf := skilltree.DefaultConfig()
	if cfg.Config != nil {
		conf = *cfg.Config
	}

	vp, err := skilltree.NewViewport(0, 0, cfg.Width, cfg.Height, g, conf)
	if err != nil {
		return nil, err
	}
	vp.SetLogger(cfg.Logger)

	if cfg.Path != "" {
		ids, ok := g.Path(cfg.Path)
		if !ok {
			return nil, fmt.Errorf("path %q: %w", cfg.Path, skilltree.ErrUnknownNode)
		}
		pv := skilltree.NewPathView(ids, g,
			skilltree.NewPathAnimator(conf.AdvanceDuration(), conf.Path.Spacing))
		pv.SetCenter(cfg.Width-60, cfg.Height/2)
		vp.AttachPath(pv)
	}

	onActivate := cfg.OnActivate
	if onActivate == nil {
		onActivate = func(ctx skilltree.ActivateContext) { unlock(g, vp, ctx.NodeID) }
	}
	vp.OnActivate(onActivate)

	in := skilltree.NewInput(vp)
	if cfg.Script != nil {
		in.SetTestRunner(cfg.Script)
	}

	return &Game{
		vp:       vp,
		input:    in,
		renderer: NewRenderer(vp),
		width:    cfg.Width,
		height:   cfg.Height,
		showFPS:  cfg.ShowFPS,
		script:   cfg.Script,
	}, nil
}

// Viewport returns the game's viewport.
func (g *Game) Viewport() *skilltree.Viewport { return g.vp }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.ShowDebug = !g.renderer.ShowDebug
	}
	g.input.Feed(PollPointer(g.width, g.height))
	if g.script != nil && g.script.Done() {
		if err := g.script.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.vp)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window showing g and blocks until it is closed.
func Run(g *skilltree.Graph, cfg RunConfig) error {
	game, err := NewGame(g, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(game)
}

// unlock applies the stand-alone activation rule.
func unlock(g *skilltree.Graph, vp *skilltree.Viewport, id string) {
	if _, ok := g.Unlock(id); ok {
		vp.Refresh()
	}
}
