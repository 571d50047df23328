package session

import "github.com/vovakirdan/term2048/internal/grid"

// move builds the next state from a copy of the committed one. Nothing it
// does is visible until the session assigns the finished state.
type move struct {
	next     state
	prevWon  bool
	prevBest int
}

func newMove(committed state) *move {
	return &move{
		next:     committed,
		prevWon:  committed.won,
		prevBest: committed.bestScore,
	}
}

// slide takes the engine result as the new grid and books the score.
func (m *move) slide(out grid.MoveOutcome) {
	m.next.grid = out.Grid
	m.next.score += out.ScoreGained
	m.next.lastGain = out.ScoreGained
	m.next.moves++
}

// spawn drops one tile onto the building grid. A full grid is tolerated.
func (m *move) spawn(src grid.Source) {
	grid.Spawn(&m.next.grid, src)
}

// finish evaluates best score and flags and returns the state to commit,
// plus whether the best score went up.
func (m *move) finish() (state, bool) {
	m.next.bestScore = max(m.next.bestScore, m.next.score)
	m.next.won = m.next.won || grid.Contains(m.next.grid, WinTile)
	m.next.gameOver = !grid.HasAnyMove(m.next.grid)
	return m.next, m.next.bestScore > m.prevBest
}
