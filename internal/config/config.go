// Package config loads cubeanim settings: built-in defaults, then an
// optional YAML file, then CUBEANIM_* environment variables.
package config

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	gocube "github.com/SeamusWaldron/gocube_animator"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CUBEANIM_"

// Config is the full application configuration.
type Config struct {
	Animation AnimationConfig `yaml:"animation" envPrefix:"ANIMATION_"`
	Palette   PaletteConfig   `yaml:"palette" envPrefix:"PALETTE_"`
	Solver    SolverConfig    `yaml:"solver" envPrefix:"SOLVER_"`
	Logging   LoggingConfig   `yaml:"logging" envPrefix:"LOG_"`
	BLE       BLEConfig       `yaml:"ble" envPrefix:"BLE_"`
}

// AnimationConfig controls move playback.
type AnimationConfig struct {
	Duration     time.Duration `yaml:"duration" env:"DURATION"`
	TickInterval time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	StrictMoves  bool          `yaml:"strict_moves" env:"STRICT_MOVES"`
}

// PaletteConfig holds one hex color per face plus the hidden color.
type PaletteConfig struct {
	Up     string `yaml:"up" env:"UP"`
	Right  string `yaml:"right" env:"RIGHT"`
	Front  string `yaml:"front" env:"FRONT"`
	Down   string `yaml:"down" env:"DOWN"`
	Left   string `yaml:"left" env:"LEFT"`
	Back   string `yaml:"back" env:"BACK"`
	Hidden string `yaml:"hidden" env:"HIDDEN"`
}

// SolverConfig describes the external solver executable. The facelet
// string is passed as the last argument, followed by the pattern if set.
type SolverConfig struct {
	Command string        `yaml:"command" env:"COMMAND"`
	Args    []string      `yaml:"args" env:"ARGS" envSeparator:" "`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
	Pattern string        `yaml:"pattern" env:"PATTERN"`
}

// LoggingConfig selects log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
	Output string `yaml:"output" env:"OUTPUT"`
}

// BLEConfig controls device discovery.
type BLEConfig struct {
	ScanTimeout time.Duration `yaml:"scan_timeout" env:"SCAN_TIMEOUT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Animation: AnimationConfig{
			Duration:     gocube.DefaultDuration,
			TickInterval: 33 * time.Millisecond,
		},
		Palette: PaletteConfig{
			Up:     "#ffffff",
			Right:  "#ff0000",
			Front:  "#00ff00",
			Down:   "#ffff00",
			Left:   "#ff8000",
			Back:   "#0000ff",
			Hidden: "#333333",
		},
		Solver: SolverConfig{
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		BLE: BLEConfig{
			ScanTimeout: 5 * time.Second,
		},
	}
}

// Load builds the configuration. An empty path skips the file layer; a
// path that cannot be read is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Animation.Duration < 0 {
		errs = append(errs, "animation.duration must not be negative")
	}
	if c.Animation.TickInterval <= 0 {
		errs = append(errs, "animation.tick_interval must be positive")
	}

	// Faces are told apart by color, so no two palette entries may match.
	byName := c.Palette.byName()
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	seen := make(map[color.RGBA]string, len(names))
	for _, name := range names {
		hex := byName[name]
		rgba, err := parseHex(hex)
		if err != nil {
			errs = append(errs, fmt.Sprintf("palette.%s: invalid hex color %q", name, hex))
			continue
		}
		if other, ok := seen[rgba]; ok {
			errs = append(errs, fmt.Sprintf("palette.%s: color %q already used by palette.%s", name, hex, other))
			continue
		}
		seen[rgba] = name
	}

	if c.Solver.Timeout <= 0 {
		errs = append(errs, "solver.timeout must be positive")
	}
	if c.Solver.Pattern != "" {
		if err := gocube.ValidateFacelets(c.Solver.Pattern); err != nil {
			errs = append(errs, fmt.Sprintf("solver.pattern: %v", err))
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level: unknown level %q", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format: unknown format %q", c.Logging.Format))
	}

	if c.BLE.ScanTimeout <= 0 {
		errs = append(errs, "ble.scan_timeout must be positive")
	}

	if len(errs) > 0 {
		// Map iteration above is unordered.
		sort.Strings(errs)
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (p PaletteConfig) byName() map[string]string {
	return map[string]string{
		"up":     p.Up,
		"right":  p.Right,
		"front":  p.Front,
		"down":   p.Down,
		"left":   p.Left,
		"back":   p.Back,
		"hidden": p.Hidden,
	}
}

// Build converts the hex palette into a puzzle palette.
func (p PaletteConfig) Build() (gocube.Palette, error) {
	faces := map[gocube.Face]string{
		gocube.FaceU: p.Up,
		gocube.FaceR: p.Right,
		gocube.FaceF: p.Front,
		gocube.FaceD: p.Down,
		gocube.FaceL: p.Left,
		gocube.FaceB: p.Back,
	}

	out := gocube.Palette{Colors: make(map[gocube.Face]color.RGBA, len(faces))}
	for face, hex := range faces {
		c, err := parseHex(hex)
		if err != nil {
			return gocube.Palette{}, fmt.Errorf("palette %s: %w", face, err)
		}
		out.Colors[face] = c
	}

	hidden, err := parseHex(p.Hidden)
	if err != nil {
		return gocube.Palette{}, fmt.Errorf("palette hidden: %w", err)
	}
	out.Hidden = hidden
	return out, nil
}

func parseHex(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
