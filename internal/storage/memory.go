package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is an in-process Backend. Nothing survives the process.
type Memory struct {
	mu     sync.Mutex
	best   map[string]int
	scores []ScoreEntry
	nextID int64
}

var _ Backend = (*Memory)(nil)

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{best: make(map[string]int)}
}

// LoadBest returns the best score for key.
func (m *Memory) LoadBest(_ context.Context, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best[key], nil
}

// SaveBest keeps the higher of the stored and given score.
func (m *Memory) SaveBest(_ context.Context, key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.best[key] {
		m.best[key] = score
	}
	return nil
}

// RecordScore appends a finished game.
func (m *Memory) RecordScore(_ context.Context, entry ScoreEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	entry.ID = m.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.scores = append(m.scores, entry)
	return nil
}

// TopScores returns the highest scores first.
func (m *Memory) TopScores(_ context.Context, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	entries := append([]ScoreEntry(nil), m.scores...)
	m.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
