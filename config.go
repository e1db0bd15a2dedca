package skilltree

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable of a Viewport and the tools built around it.
// It decodes from TOML; keys missing from a file keep their defaults.
type Config struct {
	Camera  CameraConfig  `toml:"camera"`
	Hover   HoverConfig   `toml:"hover"`
	Gesture GestureConfig `toml:"gesture"`
	Path    PathConfig    `toml:"path"`
	Log     LogConfig     `toml:"log"`
}

// CameraConfig mirrors CameraOptions.
type CameraConfig struct {
	ContentGrow       int     `toml:"content_grow"`
	EdgePadding       int     `toml:"edge_padding"`
	DragPadding       int     `toml:"drag_padding"`
	ScrollSensitivity float64 `toml:"scroll_sensitivity"`
	MinScaleMargin    float64 `toml:"min_scale_margin"`
	MaxScale          float64 `toml:"max_scale"`
}

// HoverConfig controls hover throttling.
type HoverConfig struct {
	IntervalMS int `toml:"interval_ms"`
}

// GestureConfig controls click/drag classification.
type GestureConfig struct {
	DragThreshold float64 `toml:"drag_threshold"`
}

// PathConfig controls the path advance animation.
type PathConfig struct {
	DurationMS int     `toml:"duration_ms"`
	Spacing    float64 `toml:"spacing"`
}

// LogConfig selects the slog handler built by the CLI.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
	Debug  bool   `toml:"debug"`
}

// DefaultConfig returns the configuration the skill tree screen ships with.
func DefaultConfig() Config {
	o := DefaultCameraOptions()
	return Config{
		Camera: CameraConfig{
			ContentGrow:       o.ContentGrow,
			EdgePadding:       o.EdgePadding,
			DragPadding:       o.DragPadding,
			ScrollSensitivity: o.ScrollSensitivity,
			MinScaleMargin:    o.MinScaleMargin,
			MaxScale:          o.MaxScale,
		},
		Hover:   HoverConfig{IntervalMS: int(DefaultHoverInterval / time.Millisecond)},
		Gesture: GestureConfig{DragThreshold: DefaultDragThreshold},
		Path: PathConfig{
			DurationMS: int(DefaultAdvanceDuration / time.Millisecond),
			Spacing:    DefaultNodeSpacing,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// DecodeConfig parses TOML over the defaults and validates the result.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return DecodeConfig(data)
}

// Validate rejects values that would break the camera or the gesture
// classifier.
func (c Config) Validate() error {
	var errs []error
	if c.Camera.ContentGrow < 0 || c.Camera.EdgePadding < 0 || c.Camera.DragPadding < 0 {
		errs = append(errs, errors.New("camera paddings must not be negative"))
	}
	if c.Camera.ScrollSensitivity <= 0 {
		errs = append(errs, errors.New("camera.scroll_sensitivity must be positive"))
	}
	if c.Camera.MinScaleMargin <= 0 {
		errs = append(errs, errors.New("camera.min_scale_margin must be positive"))
	}
	if c.Camera.MaxScale <= 0 {
		errs = append(errs, errors.New("camera.max_scale must be positive"))
	}
	if c.Hover.IntervalMS < 0 {
		errs = append(errs, errors.New("hover.interval_ms must not be negative"))
	}
	if c.Gesture.DragThreshold <= 0 {
		errs = append(errs, errors.New("gesture.drag_threshold must be positive"))
	}
	if c.Path.DurationMS <= 0 {
		errs = append(errs, errors.New("path.duration_ms must be positive"))
	}
	if c.Path.Spacing <= 0 {
		errs = append(errs, errors.New("path.spacing must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// CameraOptions converts the camera section.
func (c Config) CameraOptions() CameraOptions {
	return CameraOptions{
		ContentGrow:       c.Camera.ContentGrow,
		EdgePadding:       c.Camera.EdgePadding,
		DragPadding:       c.Camera.DragPadding,
		ScrollSensitivity: c.Camera.ScrollSensitivity,
		MinScaleMargin:    c.Camera.MinScaleMargin,
		MaxScale:          c.Camera.MaxScale,
	}
}

// HoverInterval returns the hover throttle interval.
func (c Config) HoverInterval() time.Duration {
	return time.Duration(c.Hover.IntervalMS) * time.Millisecond
}

// AdvanceDuration returns the path advance duration.
func (c Config) AdvanceDuration() time.Duration {
	return time.Duration(c.Path.DurationMS) * time.Millisecond
}
