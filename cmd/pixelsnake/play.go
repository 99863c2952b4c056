package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixelsnake/internal/platform/tui"
	"github.com/vovakirdan/pixelsnake/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the simulated panel",
	Long: `Start the panel host loop in the terminal.

Controls:
  Arrows/WASD  - Up, down, left, right buttons
  Space/Enter  - Center button
  Q/Esc        - Quit

The terminal owns the screen while playing, so logs are only written
when --log-file is given.

Examples:
  pixelsnake play
  pixelsnake play --seed 42
  pixelsnake play --config ./big-panel.yaml --log-file /tmp/pixelsnake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagGame) {
		return fmt.Errorf("unknown game %q, run 'pixelsnake list' to see available games", flagGame)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal, use 'pixelsnake sim' instead")
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		GameID: flagGame,
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
}
