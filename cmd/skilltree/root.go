package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/skilltree"
)

var version = "0.1.0"

// options shared by every subcommand.
type options struct {
	configPath string
	debug      bool
}

func rootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "skilltree",
		Short:        "skilltree - pan, zoom and click through node graphs",
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate("skilltree {{ .Version }}\n")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log per-event debug records")

	root.AddCommand(
		viewCmd(opts),
		boundsCmd(opts),
		replayCmd(opts),
	)
	return root
}

// loadConfig returns the defaults when no config file was given.
func (o *options) loadConfig() (skilltree.Config, error) {
	cfg := skilltree.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = skilltree.LoadConfig(o.configPath); err != nil {
			return skilltree.Config{}, err
		}
	}
	if o.debug {
		cfg.Log.Debug = true
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the slog logger described by the [log] section.
func newLogger(cfg skilltree.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: skilltree.ParseLogLevel(cfg.Level)}
	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, opts)
	default:
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h)
}
