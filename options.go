package gocube

import (
	"io"
	"log/slog"
	"time"
)

// DefaultDuration is how long one move animates.
const DefaultDuration = 2 * time.Second

// Option configures a Cube, Tracker or Scheduler.
type Option func(*config)

type config struct {
	palette     Palette
	logger      *slog.Logger
	duration    time.Duration
	strictMoves bool
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		palette:     DefaultPalette(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		duration:    DefaultDuration,
		strictMoves: false,
		moveHistory: true,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithPalette sets the colors used for decoding and encoding facelets.
func WithPalette(p Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithLogger sets the logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDuration sets how long each move animates. Zero or less commits a
// move on the tick after it starts.
func WithDuration(d time.Duration) Option {
	return func(c *config) {
		c.duration = d
	}
}

// WithStrictMoves makes notation parsing fail on the first malformed token
// instead of skipping it.
func WithStrictMoves(enabled bool) Option {
	return func(c *config) {
		c.strictMoves = enabled
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), committed moves are stored and accessible via Moves().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
