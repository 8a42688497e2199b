// Package cli implements the command-line interface for cubeanim.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_animator"
	"github.com/SeamusWaldron/gocube_animator/internal/config"
	"github.com/SeamusWaldron/gocube_animator/internal/logging"
)

const version = "0.2.0"

var (
	// Global flags
	configPath string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg     *config.Config
	logger  *slog.Logger
	palette gocube.Palette
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeanim",
	Short: "3x3 puzzle state engine and move animator",
	Long: `cubeanim keeps the state of a 3x3x3 puzzle, applies moves to it and
animates them one at a time in the terminal.

States are read and written as 54-character facelet strings in U R F D L B
order. Moves use standard notation: R, R', R2 and so on.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Logging.Level = "debug"
	}

	p, err := loaded.Palette.Build()
	if err != nil {
		return err
	}

	cfg = loaded
	palette = p
	logger = logging.New(cfg.Logging, version)
	logger.Debug("config loaded", "path", configPath, "duration", cfg.Animation.Duration)
	return nil
}

// cubeOptions returns the library options implied by the loaded config.
func cubeOptions() []gocube.Option {
	return []gocube.Option{
		gocube.WithPalette(palette),
		gocube.WithLogger(logger),
		gocube.WithDuration(cfg.Animation.Duration),
		gocube.WithStrictMoves(cfg.Animation.StrictMoves),
	}
}

// newCube creates a solved cube, or one painted from facelets when given.
func newCube(facelets string) (*gocube.Cube, error) {
	if facelets == "" {
		return gocube.NewCube(cubeOptions()...), nil
	}
	return gocube.NewCubeFromFacelets(facelets, cubeOptions()...)
}
