package grid

import "math/rand"

// twoProbability is the chance that a spawned tile is a 2 rather than a 4.
const twoProbability = 0.9

// Source is the randomness the engine consumes. Implementations must be
// safe to call from a single goroutine; the session serialises access.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// NewSource returns a math/rand backed Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Spawn places a new tile on a uniformly chosen empty cell of g:
// a 2 with probability 0.9, otherwise a 4.
// It returns false and leaves g untouched when the grid is full.
func Spawn(g *Grid, src Source) (Cell, uint32, bool) {
	empty := EmptyCells(*g)
	if len(empty) == 0 {
		return Cell{}, 0, false
	}

	cell := empty[src.Intn(len(empty))]
	value := uint32(2)
	if src.Float64() >= twoProbability {
		value = 4
	}

	g[cell.Row][cell.Col] = value
	return cell, value, true
}
