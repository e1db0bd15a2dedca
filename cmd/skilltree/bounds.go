package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/skilltree"
)

func boundsCmd(opts *options) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "bounds <graph.toml>",
		Short: "Print the camera limits a graph produces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			g, err := skilltree.LoadGraph(args[0])
			if err != nil {
				return err
			}
			vp, err := skilltree.NewViewport(0, 0, width, height, g, cfg)
			if err != nil {
				return err
			}
			vp.SetLogger(newLogger(cfg.Log))
			vp.SetDebugMode(cfg.Log.Debug)
			report(g, vp)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 800, "Viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "Viewport height in pixels")
	return cmd
}

func report(g *skilltree.Graph, vp *skilltree.Viewport) {
	cam := vp.Camera()
	w, h := cam.ViewportSize()
	nodes := g.Nodes()
	pts := skilltree.VisiblePositions(nodes)

	fmt.Printf("%s %s\n\n", brand.Sprint("skilltree"), subtle.Sprintf("viewport %dx%d", w, h))
	fmt.Printf("  %s  %d (%d visible)\n", info.Sprintf("%-12s", "Nodes"), len(nodes), len(pts))
	if !cam.HasBounds() {
		fmt.Printf("  %s  %s\n", info.Sprintf("%-12s", "Bounds"), bad.Sprint("none (camera pinned to origin)"))
		return
	}
	fmt.Printf("  %s  %s\n", info.Sprintf("%-12s", "Extent"), skilltree.BoxOf(pts))
	fmt.Printf("  %s  %s\n", info.Sprintf("%-12s", "Bounds"), cam.Bounds())
	fmt.Printf("  %s  %.3f .. %.3f\n", info.Sprintf("%-12s", "Scale"), cam.MinScale(), cam.MaxScale())
	fmt.Println()

	rows := make([][]string, 0, 3)
	for _, s := range []float64{cam.MinScale(), 1, cam.MaxScale()} {
		minX, maxX, minY, maxY := cam.PanRange(s)
		rows = append(rows, []string{
			strconv.FormatFloat(s, 'f', 3, 64),
			fmt.Sprintf("%d .. %d", minX, maxX),
			fmt.Sprintf("%d .. %d", minY, maxY),
		})
	}
	table([]string{"SCALE", "PAN X", "PAN Y"}, rows)
	fmt.Println()

	states := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		vis := "hidden"
		if n.Visible {
			vis = "visible"
		}
		states = append(states, []string{n.ID, fmt.Sprintf("%d,%d", n.X, n.Y), stateColor(n.State).Sprint(n.State), vis})
	}
	table([]string{"NODE", "POS", "STATE", "SHOWN"}, states)
}
