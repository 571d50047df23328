package storage

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/session"
)

// keeperTimeout bounds every backend call made on behalf of the game.
const keeperTimeout = 2 * time.Second

// Keeper adapts a Backend to session.BestScoreStore for one best-score key.
// Backend failures are logged and swallowed so the game keeps running.
type Keeper struct {
	backend Backend
	key     string
	logger  *log.Logger
}

var _ session.BestScoreStore = (*Keeper)(nil)

// NewKeeper binds backend and key. A nil logger discards warnings.
func NewKeeper(backend Backend, key string, logger *log.Logger) *Keeper {
	if key == "" {
		key = DefaultBestKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keeper{backend: backend, key: key, logger: logger}
}

// LoadBestScore returns the stored best score, or 0 on any failure.
func (k *Keeper) LoadBestScore() int {
	if k.backend == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), keeperTimeout)
	defer cancel()

	score, err := k.backend.LoadBest(ctx, k.key)
	if err != nil {
		k.logger.Warn("could not load best score", "key", k.key, "error", err)
		return 0
	}
	return score
}

// SaveBestScore persists score. Failures are logged only.
func (k *Keeper) SaveBestScore(score int) {
	if k.backend == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), keeperTimeout)
	defer cancel()

	if err := k.backend.SaveBest(ctx, k.key, score); err != nil {
		k.logger.Warn("could not save best score", "key", k.key, "score", score, "error", err)
	}
}
