package skilltree

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.name); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDebugMode_LogsActivation(t *testing.T) {
	vp, _, _ := newTestViewport(t, 0, 0)
	var buf bytes.Buffer
	vp.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	vp.SetDebugMode(true)

	vp.Press(400, 300)
	vp.Release(400, 300)

	out := buf.String()
	for _, want := range []string{"msg=activate", "node=a", "source=canvas", "pan_x=0", "scale=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestReleaseMode_NoDebugRecords(t *testing.T) {
	vp, _, _ := newTestViewport(t, 0, 0)
	var buf bytes.Buffer
	vp.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	vp.Press(400, 300)
	vp.Release(400, 300)
	vp.Scroll(400, 300, 1)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output:\n%s", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	vp, _, _ := newTestViewport(t, 0, 0)
	vp.SetLogger(nil)
	vp.SetDebugMode(true)
	vp.Refresh()
}
