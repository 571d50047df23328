// Package redisstore implements storage.Backend on Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/term2048/internal/storage"
)

// raiseBest sets KEYS[1] to ARGV[1] only when it is higher than the stored value.
var raiseBest = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local new = tonumber(ARGV[1])
if new > cur then
	redis.call('SET', KEYS[1], ARGV[1])
	return new
end
return cur
`)

// Store is a Redis-backed implementation of storage.Backend
type Store struct {
	client *redis.Client
	cfg    Config
}

// Ensure Store implements the interface
var _ storage.Backend = (*Store)(nil)

// New creates a new Redis store and verifies the connection.
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redisstore: invalid url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redisstore: cannot connect: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// LoadBest returns the best score under key, or 0 when unset.
func (s *Store) LoadBest(ctx context.Context, key string) (int, error) {
	score, err := s.client.Get(ctx, s.bestKey(key)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redisstore: cannot load best score: %w", err)
	}
	return score, nil
}

// SaveBest raises the best score under key atomically.
func (s *Store) SaveBest(ctx context.Context, key string, score int) error {
	if err := raiseBest.Run(ctx, s.client, []string{s.bestKey(key)}, score).Err(); err != nil {
		return fmt.Errorf("redisstore: cannot save best score: %w", err)
	}
	return nil
}

// RecordScore stores a finished game and ranks it by score.
func (s *Store) RecordScore(ctx context.Context, entry storage.ScoreEntry) error {
	id, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("redisstore: cannot allocate id: %w", err)
	}
	entry.ID = id
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("redisstore: cannot encode entry: %w", err)
	}

	// Use pipeline for atomic save + rank update
	member := gameMember(id)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.gamesKey(), member, data)
	pipe.ZAdd(ctx, s.rankKey(), redis.Z{Score: float64(entry.Score), Member: member})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redisstore: cannot save score: %w", err)
	}
	return nil
}

// TopScores returns up to limit games, highest score first. Equal scores
// come back newest first.
func (s *Store) TopScores(ctx context.Context, limit int) ([]storage.ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	members, err := s.client.ZRevRange(ctx, s.rankKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redisstore: cannot query ranking: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	raw, err := s.client.HMGet(ctx, s.gamesKey(), members...).Result()
	if err != nil {
		return nil, fmt.Errorf("redisstore: cannot load games: %w", err)
	}

	entries := make([]storage.ScoreEntry, 0, len(raw))
	for i, v := range raw {
		data, ok := v.(string)
		if !ok {
			// Ranked without a body; skip rather than fail the listing.
			continue
		}
		var e storage.ScoreEntry
		if err := json.Unmarshal([]byte(data), &e); err != nil {
			return nil, fmt.Errorf("redisstore: cannot decode game %s: %w", members[i], err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
