// pixelsnake runs Snake on a simulated square LED panel.
//
// Usage:
//
//	pixelsnake play          - Play on the simulated panel in the terminal
//	pixelsnake sim           - Run a scripted input sequence and print the frames
//	pixelsnake list          - List available game variants
//
// Global flags:
//
//	--config <path>     - Panel config YAML (default search: ~/.pixelsnake/configs, ./configs)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--fps <rate>        - Override the configured frame rate
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelsnake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/pixelsnake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint64
	flagFPS      int
	flagLogLevel string
	flagGame     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelsnake",
	Short: "Snake on a simulated LED panel",
	Long: `pixelsnake runs Snake on a small square pixel grid, the way it runs on
an 8x8 LED matrix with five buttons. The game restarts by itself after
every win or loss.

Available commands:
  play     - Play on the simulated panel
  sim      - Run scripted input and print frames
  list     - Show available game variants

Examples:
  pixelsnake play
  pixelsnake play --seed 42 --fps 8
  pixelsnake sim --script "R*3 D*2" --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to panel config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagGame, "game", "snake", "Game variant to run")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger creates the command logger at the configured level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixelsnake",
		Level:           level,
	}), nil
}

// loadConfig loads the panel config and applies flag overrides.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	return cfg, cfg.Validate()
}
