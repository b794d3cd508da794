// Package config loads the settings of the chaikin command from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the host settings. The refinement and interaction constants
// are fixed and not part of it.
type Config struct {
	// Modifier is the mouse modifier that acts as the drag modifier: ctrl,
	// alt or shift.
	Modifier string `yaml:"modifier"`
	// ToggleKey flips the drag modifier for terminals that don't report
	// modified clicks.
	ToggleKey string `yaml:"toggle_key"`
	// LogFile receives the log output. Empty disables logging, since the
	// terminal belongs to the canvas.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
	Colors   Colors `yaml:"colors"`
}

// Colors are hex colours, as accepted by gg.Hex. Curve, Marker and
// Background apply to exported images.
type Colors struct {
	Curve      string `yaml:"curve"`
	Marker     string `yaml:"marker"`
	Background string `yaml:"background"`
	// Canvas is the foreground of the terminal canvas. Empty keeps the
	// terminal's default.
	Canvas string `yaml:"canvas"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Modifier:  "ctrl",
		ToggleKey: "m",
		LogLevel:  "info",
		Colors: Colors{
			Curve:      "#000000",
			Marker:     "#000000",
			Background: "#ffffff",
		},
	}
}

// DefaultPath returns the path of the per-user config file
// (~/.config/chaikin/config.yaml on Linux).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "chaikin", "config.yaml"), nil
}

// Load reads the file at path over the defaults and validates the result.
// An empty path loads DefaultPath if it exists and returns the defaults
// otherwise. A path that was given explicitly has to exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Modifier {
	case "ctrl", "alt", "shift":
	default:
		return fmt.Errorf("modifier must be ctrl, alt or shift, got %q", c.Modifier)
	}
	if len([]rune(c.ToggleKey)) != 1 {
		return fmt.Errorf("toggle_key must be a single character, got %q", c.ToggleKey)
	}
	switch c.ToggleKey {
	case "r", "q":
		return fmt.Errorf("toggle_key %q is already bound", c.ToggleKey)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	for name, v := range map[string]string{
		"curve":      c.Colors.Curve,
		"marker":     c.Colors.Marker,
		"background": c.Colors.Background,
	} {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("colors.%s: invalid hex colour %q", name, v)
		}
	}
	if c.Colors.Canvas != "" && !hexColor.MatchString(c.Colors.Canvas) {
		return fmt.Errorf("colors.canvas: invalid hex colour %q", c.Colors.Canvas)
	}
	return nil
}

// Level returns the configured log level. It must only be called on a
// validated config.
func (c Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
