package grid

import (
	"math/rand"
	"testing"
)

func TestCompactAndMergeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
		score    int
	}{
		{"empty line", Line{0, 0, 0, 0}, Line{0, 0, 0, 0}, 0},
		{"single tile slides", Line{0, 0, 4, 0}, Line{4, 0, 0, 0}, 0},
		{"simple merge", Line{2, 2, 0, 0}, Line{4, 0, 0, 0}, 4},
		{"merge across gap", Line{2, 0, 0, 2}, Line{4, 0, 0, 0}, 4},
		{"triple run merges first pair", Line{2, 2, 2, 0}, Line{4, 2, 0, 0}, 4},
		{"no double merge", Line{2, 2, 2, 2}, Line{4, 4, 0, 0}, 8},
		{"two distinct pairs", Line{4, 4, 8, 8}, Line{8, 16, 0, 0}, 24},
		{"merged cell does not merge again", Line{4, 4, 8, 0}, Line{8, 8, 0, 0}, 8},
		{"no merge possible", Line{2, 4, 8, 16}, Line{2, 4, 8, 16}, 0},
		{"already packed", Line{4, 2, 0, 0}, Line{4, 2, 0, 0}, 0},
		{"pair after blocker", Line{2, 8, 8, 0}, Line{2, 16, 0, 0}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score := CompactAndMergeLine(tt.input)
			if got != tt.expected {
				t.Errorf("CompactAndMergeLine(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if score != tt.score {
				t.Errorf("CompactAndMergeLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestApplyDirections(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected Grid
		score    int
	}{
		{
			dir: Left,
			expected: Grid{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 20,
		},
		{
			dir: Right,
			expected: Grid{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 20,
		},
		{
			dir: Up,
			expected: Grid{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 8,
		},
		{
			dir: Down,
			expected: Grid{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			score: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			out := Apply(board, tt.dir)
			if out.Grid != tt.expected {
				t.Errorf("Apply(%s): got\n%v\nwant\n%v", tt.dir, out.Grid, tt.expected)
			}
			if out.ScoreGained != tt.score {
				t.Errorf("Apply(%s) score = %d, want %d", tt.dir, out.ScoreGained, tt.score)
			}
			if !out.Changed {
				t.Errorf("Apply(%s) should report a change", tt.dir)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := board

	Apply(board, Left)

	if board != before {
		t.Errorf("Apply mutated its input:\n%v", board)
	}
}

func TestApplyScenarioLeftTwice(t *testing.T) {
	board := Grid{{2, 2, 0, 0}}

	first := Apply(board, Left)
	if first.Grid[0] != [Size]uint32{4, 0, 0, 0} {
		t.Fatalf("row0 after Left = %v, want [4 0 0 0]", first.Grid[0])
	}
	if first.ScoreGained != 4 || !first.Changed {
		t.Fatalf("first Left: score=%d changed=%v, want 4 true", first.ScoreGained, first.Changed)
	}

	second := Apply(first.Grid, Left)
	if second.Changed {
		t.Error("second Left on a packed row should not change the grid")
	}
	if second.ScoreGained != 0 {
		t.Errorf("second Left score = %d, want 0", second.ScoreGained)
	}
}

func TestApplyNoOpIsIdempotent(t *testing.T) {
	board := Grid{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	for range 3 {
		out := Apply(board, Left)
		if out.Changed {
			t.Fatal("Left on a left-packed board should never report a change")
		}
		if out.Grid != board {
			t.Fatalf("no-op move altered the grid:\n%v", out.Grid)
		}
	}
}

func TestApplyUnknownDirection(t *testing.T) {
	board := Grid{{2, 2, 0, 0}}
	out := Apply(board, Direction(42))
	if out.Changed || out.Grid != board || out.ScoreGained != 0 {
		t.Errorf("unknown direction should yield an unchanged outcome, got %+v", out)
	}
}

func TestApplyGameOverBoard(t *testing.T) {
	board := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	if HasAnyMove(board) {
		t.Fatal("checkerboard should have no moves")
	}
	for _, d := range Directions {
		if Apply(board, d).Changed {
			t.Errorf("Apply(%s) changed a terminal board", d)
		}
	}
}

// randomGrid fills a grid with small powers of two and gaps so that both
// movable and terminal boards show up often.
func randomGrid(rng *rand.Rand, emptyChance float64, kinds int) Grid {
	values := make([]uint32, kinds)
	for i := range values {
		values[i] = 2 << i
	}
	var g Grid
	for r := range Size {
		for c := range Size {
			if rng.Float64() < emptyChance {
				continue
			}
			g[r][c] = values[rng.Intn(len(values))]
		}
	}
	return g
}

func TestTerminalEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	terminal := 0

	for i := range 5000 {
		g := randomGrid(rng, 0, 8)
		if i%2 == 0 {
			g = randomGrid(rng, 0.2, 4)
		}

		anyChanged := false
		for _, d := range Directions {
			if Apply(g, d).Changed {
				anyChanged = true
				break
			}
		}

		if HasAnyMove(g) != anyChanged {
			t.Fatalf("HasAnyMove=%v but some direction changed=%v for\n%v", HasAnyMove(g), anyChanged, g)
		}
		if !anyChanged {
			terminal++
		}
	}

	if terminal == 0 {
		t.Error("generator produced no terminal boards; property was not exercised")
	}
}

func TestMoveConservesTileSum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for range 2000 {
		g := randomGrid(rng, 0.4, 4)
		for _, d := range Directions {
			out := Apply(g, d)
			if Sum(out.Grid) != Sum(g) {
				t.Fatalf("Apply(%s) changed tile sum from %d to %d", d, Sum(g), Sum(out.Grid))
			}
			if !Valid(out.Grid) {
				t.Fatalf("Apply(%s) produced invalid values:\n%v", d, out.Grid)
			}
			// every merge of two v tiles into 2v removes exactly one tile
			merges := len(EmptyCells(out.Grid)) - len(EmptyCells(g))
			if merges < 0 {
				t.Fatalf("Apply(%s) created tiles out of nothing", d)
			}
			if merges == 0 && out.ScoreGained != 0 {
				t.Fatalf("Apply(%s) scored %d without merging", d, out.ScoreGained)
			}
			if merges > 0 && out.ScoreGained == 0 {
				t.Fatalf("Apply(%s) merged %d tiles without scoring", d, merges)
			}
		}
	}
}
