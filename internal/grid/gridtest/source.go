// Package gridtest provides a scripted grid.Source for deterministic tests.
package gridtest

import "github.com/vovakirdan/term2048/internal/grid"

// Source replays queued results. When a queue runs dry it returns 0.
type Source struct {
	ints   []int
	floats []float64
}

var _ grid.Source = (*Source)(nil)

// NewSource creates an empty scripted source.
func NewSource() *Source {
	return &Source{}
}

// QueueIntn appends values returned by Intn. Each value is reduced modulo n.
func (s *Source) QueueIntn(values ...int) *Source {
	s.ints = append(s.ints, values...)
	return s
}

// QueueFloat64 appends values returned by Float64.
func (s *Source) QueueFloat64(values ...float64) *Source {
	s.floats = append(s.floats, values...)
	return s
}

// QueueTile scripts one spawn: the index into the empty-cell list and the
// tile value (2 or 4).
func (s *Source) QueueTile(index int, value uint32) *Source {
	s.QueueIntn(index)
	if value == 4 {
		return s.QueueFloat64(0.95)
	}
	return s.QueueFloat64(0.5)
}

// Intn returns the next queued int modulo n.
func (s *Source) Intn(n int) int {
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// Float64 returns the next queued float.
func (s *Source) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}
