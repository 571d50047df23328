package redisstore

import "fmt"

func (s *Store) bestKey(key string) string {
	return fmt.Sprintf("%s:best:%s", s.cfg.KeyPrefix, key)
}

// gamesKey is the hash of finished games by id.
func (s *Store) gamesKey() string {
	return s.cfg.KeyPrefix + ":games"
}

// rankKey is the sorted set of game ids scored by final score.
func (s *Store) rankKey() string {
	return s.cfg.KeyPrefix + ":rank"
}

func (s *Store) seqKey() string {
	return s.cfg.KeyPrefix + ":seq"
}

// gameMember zero-pads ids so equal scores order by id.
func gameMember(id int64) string {
	return fmt.Sprintf("%020d", id)
}
