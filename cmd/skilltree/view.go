package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/skilltree"
	"github.com/phanxgames/skilltree/ebitenview"
)

func viewCmd(opts *options) *cobra.Command {
	var (
		width, height int
		path          string
		script        string
		showFPS       bool
	)
	cmd := &cobra.Command{
		Use:   "view <graph.toml>",
		Short: "Open a window showing a graph",
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
			logger := newLogger(cfg.Log)

			rc := ebitenview.RunConfig{
				Title:   fmt.Sprintf("skilltree - %s", args[0]),
				Width:   width,
				Height:  height,
				ShowFPS: showFPS,
				Config:  &cfg,
				Logger:  logger,
				Path:    path,
			}
			if script != "" {
				data, err := os.ReadFile(script)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				if rc.Script, err = skilltree.LoadTestScript(data); err != nil {
					return err
				}
			}
			logger.Info("opening viewer", "graph", args[0], "width", width, "height", height)
			return ebitenview.Run(g, rc)
		},
	}
	cmd.Flags().IntVar(&width, "width", 800, "Window width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "Window height in pixels")
	cmd.Flags().StringVar(&path, "path", "", "Show the named path as a column")
	cmd.Flags().StringVar(&script, "script", "", "Replay a JSON input script, then exit")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "Show FPS counter")
	return cmd
}
