// Package storage persists best scores and finished games.
// Store is backed by SQLite through the pure-Go modernc.org/sqlite driver;
// Memory keeps everything in process. Both satisfy Backend.
package storage

import (
	"context"
	"time"
)

// DefaultBestKey is the best-score slot used when none is configured.
const DefaultBestKey = "default"

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	Score     int
	MaxTile   uint32
	Moves     int
	CreatedAt time.Time
}

// Backend is the persistence surface the game needs.
type Backend interface {
	// LoadBest returns the best score stored under key, or 0 if absent.
	LoadBest(ctx context.Context, key string) (int, error)
	// SaveBest stores score under key unless a higher score is already stored.
	SaveBest(ctx context.Context, key string, score int) error
	// RecordScore appends a finished game to the history.
	RecordScore(ctx context.Context, entry ScoreEntry) error
	// TopScores returns up to limit finished games, highest score first.
	TopScores(ctx context.Context, limit int) ([]ScoreEntry, error)
	Close() error
}
