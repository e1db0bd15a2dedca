package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/skilltree"
)

const twoNodeGraph = `
[[definition]]
id = "root"
title = "Root"

[[definition]]
id = "child"
title = "Child"

[[node]]
id = "root"
x = 0
y = 0
state = "affordable"

[[node]]
id = "child"
x = 100
y = 100

[[connection]]
a = "root"
b = "child"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReplayUnlocksAlongConnection(t *testing.T) {
	g, err := skilltree.LoadGraph(writeFile(t, "tree.toml", twoNodeGraph))
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	vp, err := skilltree.NewViewport(0, 0, 800, 600, g, skilltree.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	// Tiny content pins the zoom at max scale 2: root at the center, child
	// 200px right and down.
	if got := vp.Camera().Scale(); got != 2 {
		t.Fatalf("Scale = %v, want 2", got)
	}

	runner, err := skilltree.LoadTestScript([]byte(`{"steps":[
		{"action":"click","x":400,"y":300},
		{"action":"click","x":600,"y":500}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := replay(g, vp, runner, 100); err != nil {
		t.Fatalf("replay: %v", err)
	}
	for _, id := range []string{"root", "child"} {
		if s, _ := g.State(id); s != skilltree.StateUnlocked {
			t.Errorf("State(%s) = %v, want unlocked", id, s)
		}
	}
}

func TestReplayFrameLimit(t *testing.T) {
	g, err := skilltree.DecodeGraph([]byte(twoNodeGraph))
	if err != nil {
		t.Fatal(err)
	}
	vp, err := skilltree.NewViewport(0, 0, 800, 600, g, skilltree.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	runner, err := skilltree.LoadTestScript([]byte(`{"steps":[{"action":"wait","frames":50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := replay(g, vp, runner, 10); err == nil {
		t.Error("expected frame limit error")
	}
}

func TestLoadConfigFlag(t *testing.T) {
	path := writeFile(t, "config.toml", "[gesture]\ndrag_threshold = 5\n")
	opts := &options{configPath: path, debug: true}
	cfg, err := opts.loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gesture.DragThreshold != 5 {
		t.Errorf("DragThreshold = %v, want 5", cfg.Gesture.DragThreshold)
	}
	if !cfg.Log.Debug || cfg.Log.Level != "debug" {
		t.Errorf("Log = %+v, want debug enabled", cfg.Log)
	}

	bad := &options{configPath: filepath.Join(t.TempDir(), "missing.toml")}
	if _, err := bad.loadConfig(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing config error = %v, want ErrNotExist", err)
	}
}

func TestBoundsCommand(t *testing.T) {
	path := writeFile(t, "tree.toml", twoNodeGraph)
	cmd := rootCmd()
	cmd.SetArgs([]string{"bounds", "--width", "640", "--height", "480", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("bounds: %v", err)
	}

	cmd = rootCmd()
	cmd.SetArgs([]string{"bounds", filepath.Join(t.TempDir(), "missing.toml")})
	if err := cmd.Execute(); err == nil {
		t.Error("bounds on a missing file succeeded")
	}
}

func TestStateColor(t *testing.T) {
	if stateColor(skilltree.StateUnlocked) != brand || stateColor(skilltree.StateExcluded) != subtle {
		t.Error("unexpected state colours")
	}
}
