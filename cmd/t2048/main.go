// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                 - Play a game
//	t2048 play            - Play a game
//	t2048 scores          - Show the best score and finished games
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--driver <name>     - Score storage: sqlite, redis or memory
//	--db <path>         - SQLite database path (default: ~/.t2048/scores.db)
//	--redis <url>       - Redis URL for the redis driver
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDriver   string
	flagDBPath   string
	flagRedisURL string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board to merge equal tiles. Reach 2048 to win, then keep
going for a higher score.

Available commands:
  play     - Play a game (default)
  scores   - View the best score and finished games

Examples:
  t2048
  t2048 play --seed 42
  t2048 scores
  t2048 --driver redis --redis redis://localhost:6379/0`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "Score storage driver: sqlite, redis, memory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagRedisURL, "redis", "", "Redis URL for the redis driver")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
