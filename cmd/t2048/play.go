package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/grid"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/session"
	"github.com/vovakirdan/term2048/internal/storage"
)

var flagSeed int64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  C/Enter          - Keep playing after 2048
  R/N              - New game
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --driver memory`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	keeper := storage.NewKeeper(a.backend, a.cfg.Storage.BestKey, a.logger)
	game := session.Start(
		session.WithSource(grid.NewSource(seed)),
		session.WithBestScoreStore(keeper),
		session.WithLogger(a.logger),
	)
	a.logger.Info("game started", "seed", seed, "best", game.Snapshot().BestScore)

	return tui.Run(tui.Options{
		Session:  game,
		Recorder: a.backend,
		Logger:   a.logger,
		ShowHelp: a.cfg.UI.ShowHelp,
		Color:    a.cfg.UI.Color,
		Width:    width,
		Height:   height,
	})
}
