// flappy is a terminal flappy-bird: guide the bird through gaps in the
// pipes for as long as you can. Intended for an 80x24 (or larger)
// terminal.
//
// Controls:
//
//	Space/Up/W - flap
//	Q/Ctrl+C   - quit
//	Any key    - restart after a crash
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hmukelyan/flappy-term/internal/config"
	"github.com/hmukelyan/flappy-term/internal/core"
	"github.com/hmukelyan/flappy-term/internal/game"
	"github.com/hmukelyan/flappy-term/internal/platform/tui"
)

var (
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagLog    string
)

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird in your terminal.

Guide the bird through the gaps in the pipes. Each pipe passed scores a
point; the best score is kept until the program exits.

Examples:
  flappy
  flappy --fps 30
  flappy --seed 42 --config ./my-flappy.yaml`,
	RunE: runGame,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = config value)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Path to debug log file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	world, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "err", err)
		return err
	}

	tickRate := world.World.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	// The playfield is a fixed grid; abort before the UI starts if the
	// terminal cannot hold it.
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		if w < world.World.Cols || h < world.World.Rows {
			logger.Error("terminal too small",
				"have", fmt.Sprintf("%dx%d", w, h),
				"need", fmt.Sprintf("%dx%d", world.World.Cols, world.World.Rows))
			return fmt.Errorf("terminal is %dx%d, need at least %dx%d",
				w, h, world.World.Cols, world.World.Rows)
		}
	}

	cfg := core.RuntimeConfig{
		ScreenW:  world.World.Cols,
		ScreenH:  world.World.Rows,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	logger.Debug("starting game", "tick_rate", tickRate, "seed", flagSeed)

	if err := tui.Run(game.New(world), world, cfg); err != nil {
		logger.Error("game loop failed", "err", err)
		return err
	}
	return nil
}

// newLogger builds the debug logger. Stdout belongs to the TUI, so logs go
// to the --log file when given and are discarded otherwise.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
