package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/skilltree"
)

// frameTime is the fake clock step of a headless replay (60 TPS).
const frameTime = time.Second / 60

func replayCmd(opts *options) *cobra.Command {
	var (
		width, height int
		path          string
		maxFrames     int
	)
	cmd := &cobra.Command{
		Use:   "replay <graph.toml> <script.json>",
		Short: "Run an input script headless and print the events it produces",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			g, err := skilltree.LoadGraph(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			runner, err := skilltree.LoadTestScript(data)
			if err != nil {
				return err
			}

			vp, err := skilltree.NewViewport(0, 0, width, height, g, cfg)
			if err != nil {
				return err
			}
			vp.SetLogger(newLogger(cfg.Log))
			vp.SetDebugMode(cfg.Log.Debug)
			if path != "" {
				ids, ok := g.Path(path)
				if !ok {
					return fmt.Errorf("path %q: %w", path, skilltree.ErrUnknownNode)
				}
				pv := skilltree.NewPathView(ids, g,
					skilltree.NewPathAnimator(cfg.AdvanceDuration(), cfg.Path.Spacing))
				pv.SetCenter(width-60, height/2)
				vp.AttachPath(pv)
			}

			frames, err := replay(g, vp, runner, maxFrames)
			fmt.Printf("\n  %s after %d frames: %s\n", subtle.Sprint("camera"), frames, vp.Camera())
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 800, "Viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "Viewport height in pixels")
	cmd.Flags().StringVar(&path, "path", "", "Attach the named path as a column")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 10000, "Give up after this many frames")
	return cmd
}

// replay drives vp with runner on a fake 60 TPS clock, printing events as
// they fire. Activations unlock nodes with the stand-alone rule.
func replay(g *skilltree.Graph, vp *skilltree.Viewport, runner *skilltree.TestRunner, maxFrames int) (int, error) {
	now := time.Unix(0, 0)
	vp.Clock = func() time.Time { return now }

	frame := 0
	vp.OnHover(func(ctx skilltree.HoverContext) {
		if ctx.Hovered {
			fmt.Printf("  %5d  %s %s\n", frame, info.Sprint("hover   "), ctx.NodeID)
		} else {
			fmt.Printf("  %5d  %s\n", frame, subtle.Sprint("hover   (none)"))
		}
	})
	vp.OnActivate(func(ctx skilltree.ActivateContext) {
		changed, ok := g.Unlock(ctx.NodeID)
		mark := bad.Sprint("refused")
		if ok {
			mark = good.Sprintf("unlocked %d", len(changed))
		}
		fmt.Printf("  %5d  %s %s (%s) %s\n", frame, brand.Sprint("activate"), ctx.NodeID, ctx.Source, mark)
	})
	vp.OnAdvance(func(ctx skilltree.AdvanceContext) {
		fmt.Printf("  %5d  %s from %d\n", frame, info.Sprint("advance "), ctx.FromIndex)
	})

	in := skilltree.NewInput(vp)
	in.SetTestRunner(runner)
	for ; frame < maxFrames; frame++ {
		if runner.Done() {
			return frame, runner.Err()
		}
		in.Feed(in.LastState())
		now = now.Add(frameTime)
	}
	return frame, fmt.Errorf("script not finished after %d frames", maxFrames)
}
