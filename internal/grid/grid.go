// Package grid implements the pure 2048 board engine: line merging,
// directional moves, tile spawning and terminal-state detection.
// Nothing here holds state between calls; boards are arrays and travel by value.
package grid

// Size is the board dimension. The engine only supports 4x4 boards.
const Size = 4

// Grid is a 4x4 board. A zero cell is empty; any other value is a power of two >= 2.
type Grid [Size][Size]uint32

// Line is a single row or column read in slide order.
type Line [Size]uint32

// Cell addresses one board position.
type Cell struct {
	Row int
	Col int
}

// MoveOutcome is the result of applying one direction to one grid.
type MoveOutcome struct {
	Grid        Grid
	ScoreGained int
	Changed     bool
}

// EmptyCells returns every empty cell in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasAnyMove reports whether at least one direction would change the grid:
// an empty cell exists, or two orthogonal neighbours hold the same value.
func HasAnyMove(g Grid) bool {
	for r := range Size {
		for c := range Size {
			v := g[r][c]
			if v == 0 {
				return true
			}
			if c+1 < Size && g[r][c+1] == v {
				return true
			}
			if r+1 < Size && g[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest value on the board.
func MaxTile(g Grid) uint32 {
	var best uint32
	for r := range Size {
		for c := range Size {
			best = max(best, g[r][c])
		}
	}
	return best
}

// Contains reports whether any cell holds exactly v.
func Contains(g Grid, v uint32) bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == v {
				return true
			}
		}
	}
	return false
}

// Valid reports whether every non-empty cell is a power of two >= 2.
func Valid(g Grid) bool {
	for r := range Size {
		for c := range Size {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return false
			}
		}
	}
	return true
}

// Sum returns the total of all tile values.
func Sum(g Grid) uint64 {
	var total uint64
	for r := range Size {
		for c := range Size {
			total += uint64(g[r][c])
		}
	}
	return total
}
