package session

import "github.com/vovakirdan/term2048/internal/grid"

// State is the coarse game state shown to players.
type State string

const (
	StatePlaying  State = "playing"
	StateWon      State = "won"
	StateGameOver State = "game_over"
)

// Snapshot is an immutable view of a session after an operation.
// Grid is an array, so callers hold their own copy.
type Snapshot struct {
	Grid            grid.Grid
	Score           int
	BestScore       int
	GameOver        bool
	Won             bool
	BannerDismissed bool // presentation only; Won stays true
	Moves           int
	LastGain        int // score gained by the last accepted move
	MaxTile         uint32
}

// State reports the overlay the presentation layer should show.
// Game over wins over a win, matching the terminal nature of a lost board.
func (s Snapshot) State() State {
	switch {
	case s.GameOver:
		return StateGameOver
	case s.Won:
		return StateWon
	default:
		return StatePlaying
	}
}

// ShowWinBanner reports whether the win overlay should be displayed.
func (s Snapshot) ShowWinBanner() bool {
	return s.Won && !s.BannerDismissed && !s.GameOver
}
