package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelsnake/internal/platform/headless"
	"github.com/vovakirdan/pixelsnake/internal/rng"
)

var (
	flagScript string
	flagLast   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run scripted input and print frames",
	Long: `Drive the panel with a scripted button sequence and print every frame
as text ('.' off, '*' apple, '#' snake).

Script steps are separated by spaces or commas. Each step is a set of
buttons (U, D, L, R, C), or '.' for no input, with an optional repeat
count: "R*3 UR . D*2".

Examples:
  pixelsnake sim --script "R*3" --seed 1
  pixelsnake sim --script "R*10 D*10" --last`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Button script to run (required)")
	simCmd.Flags().BoolVar(&flagLast, "last", false, "Print only the final frame")
	//nolint:errcheck // flag is defined above
	simCmd.MarkFlagRequired("script")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	steps, err := headless.ParseScript(flagScript)
	if err != nil {
		return err
	}

	seed := rng.Seed(flagSeed)
	logger.Info("starting simulation", "game", flagGame, "seed", seed, "steps", len(steps))

	runner, err := headless.NewRunner(flagGame, cfg.Runtime(seed), seed, logger)
	if err != nil {
		return err
	}

	frames, err := runner.Run(steps)
	if err != nil {
		return err
	}

	grid := runner.Session().Grid()
	out := cmd.OutOrStdout()
	for i, f := range frames {
		if flagLast && i != len(frames)-1 {
			continue
		}
		fmt.Fprintln(out, headless.Render(f, grid))
		fmt.Fprintln(out)
	}

	st := runner.Session().Stats()
	logger.Info("simulation finished", "frames", len(frames), "wins", st.Wins, "losses", st.Losses, "best", st.BestScore)
	return nil
}
