package skilltree

import (
	"context"
	"log/slog"
	"strings"
)

// debugLog writes a debug record when debug mode is on. Release builds pay
// only the flag check.
func (v *Viewport) debugLog(msg string, attrs ...slog.Attr) {
	if !v.debug {
		return
	}
	attrs = append(attrs,
		slog.Int("pan_x", v.camera.X()),
		slog.Int("pan_y", v.camera.Y()),
		slog.Float64("scale", v.camera.Scale()))
	v.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// ParseLogLevel converts a level name to a slog.Level. Unknown names map to
// info.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
