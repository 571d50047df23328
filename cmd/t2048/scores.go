package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and finished games",
	Long: `Display the best score and the highest finished games.

Output is an interactive table in a terminal and plain text otherwise.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --plain`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 0, "Number of games to show (0 = config history_limit)")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	limit := flagLimit
	if limit <= 0 {
		limit = a.cfg.Storage.HistoryLimit
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	best, scores, err := loadScores(ctx, a.backend, a.cfg.Storage.BestKey, limit)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		printScores(cmd.OutOrStdout(), best, scores)
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}
	return tui.RunScoreboard(best, scores, width, height)
}

func loadScores(ctx context.Context, backend storage.Backend, key string, limit int) (int, []storage.ScoreEntry, error) {
	best, err := backend.LoadBest(ctx, key)
	if err != nil {
		return 0, nil, err
	}
	scores, err := backend.TopScores(ctx, limit)
	if err != nil {
		return 0, nil, err
	}
	return best, scores, nil
}

func printScores(w io.Writer, best int, scores []storage.ScoreEntry) {
	fmt.Fprintln(w, "High Scores - 2048")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048' to set the first high score!")
	} else {
		fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-6s  %s\n", "Rank", "Score", "Max", "Moves", "Date")
		fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-6s  %s\n", "----", "-----", "---", "-----", "----")
		for i, e := range scores {
			date := "-"
			if !e.CreatedAt.IsZero() {
				date = e.CreatedAt.Local().Format("2006-01-02 15:04")
			}
			fmt.Fprintf(w, "  %-4d  %-8d  %-8d  %-6d  %s\n", i+1, e.Score, e.MaxTile, e.Moves, date)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
}
