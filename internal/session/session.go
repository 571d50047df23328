// Package session owns the mutable state of one 2048 game: the committed
// grid, score, best score and win/loss flags. Every operation runs under the
// session lock, so a move is observed either fully applied or not at all.
package session

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/grid"
)

// WinTile is the tile value that marks a game as won.
const WinTile = 2048

// BestScoreStore persists the best score between sessions.
// Implementations swallow their own failures; LoadBestScore returns 0 when
// nothing is stored.
type BestScoreStore interface {
	LoadBestScore() int
	SaveBestScore(score int)
}

// nopBestScore keeps the best score in memory only.
type nopBestScore struct{}

func (nopBestScore) LoadBestScore() int { return 0 }
func (nopBestScore) SaveBestScore(int)  {}

// Option configures a Session.
type Option func(*Session)

// WithSource sets the randomness used for tile spawns.
func WithSource(src grid.Source) Option {
	return func(s *Session) {
		s.src = src
	}
}

// WithBestScoreStore sets the best-score collaborator.
func WithBestScoreStore(store BestScoreStore) Option {
	return func(s *Session) {
		s.best = store
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// state is the committed game state. It is replaced wholesale on every move.
type state struct {
	grid            grid.Grid
	score           int
	bestScore       int
	gameOver        bool
	won             bool
	bannerDismissed bool
	moves           int
	lastGain        int
}

// Session is a single-player 2048 game.
type Session struct {
	mu     sync.Mutex
	src    grid.Source
	best   BestScoreStore
	logger *log.Logger
	st     state
}

// Start creates a session with two spawned tiles and the persisted best score.
func Start(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = grid.NewSource(time.Now().UnixNano())
	}
	if s.best == nil {
		s.best = nopBestScore{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.st = s.freshState(max(s.best.LoadBestScore(), 0))
	return s
}

// freshState builds the opening position. Two spawns on an empty grid
// always succeed.
func (s *Session) freshState(best int) state {
	st := state{bestScore: best}
	grid.Spawn(&st.grid, s.src)
	grid.Spawn(&st.grid, s.src)
	return st
}

// ApplyMove slides the board in direction d and returns the resulting snapshot.
// Moves after game over and moves that change nothing leave the state untouched.
func (s *Session) ApplyMove(d grid.Direction) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.gameOver {
		return s.snapshot()
	}

	out := grid.Apply(s.st.grid, d)
	if !out.Changed {
		s.logger.Debug("move ignored", "direction", d)
		return s.snapshot()
	}

	b := newMove(s.st)
	b.slide(out)
	b.spawn(s.src)
	next, raised := b.finish()

	s.st = next
	s.logger.Debug("move applied",
		"direction", d,
		"gain", out.ScoreGained,
		"score", next.score,
		"moves", next.moves,
	)

	if raised {
		s.best.SaveBestScore(next.bestScore)
		s.logger.Info("best score raised", "best", next.bestScore)
	}
	if next.won && !b.prevWon {
		s.logger.Info("win tile reached", "tile", WinTile, "moves", next.moves)
	}
	if next.gameOver {
		s.logger.Info("game over", "score", next.score, "max_tile", grid.MaxTile(next.grid))
	}

	return s.snapshot()
}

// Restart discards the current game and starts a new one, keeping the best score.
func (s *Session) Restart() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("restart", "score", s.st.score, "moves", s.st.moves)
	s.st = s.freshState(s.st.bestScore)
	return s.snapshot()
}

// DismissWinBanner hides the win overlay. It never alters the grid, score,
// the won flag or game over.
func (s *Session) DismissWinBanner() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.won {
		s.st.bannerDismissed = true
	}
	return s.snapshot()
}

// Snapshot returns a read-only copy of the committed state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Grid:            s.st.grid,
		Score:           s.st.score,
		BestScore:       s.st.bestScore,
		GameOver:        s.st.gameOver,
		Won:             s.st.won,
		BannerDismissed: s.st.bannerDismissed,
		Moves:           s.st.moves,
		LastGain:        s.st.lastGain,
		MaxTile:         grid.MaxTile(s.st.grid),
	}
}
