package grid

import "testing"

func TestEmptyCells(t *testing.T) {
	board := Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(board)
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Cell{Row: 0, Col: 1}) {
		t.Errorf("first empty cell = %+v, want row-major order starting at (0,1)", cells[0])
	}
	for _, c := range cells {
		if board[c.Row][c.Col] != 0 {
			t.Errorf("cell %+v is not empty", c)
		}
	}

	if got := EmptyCells(Grid{{2, 4, 8, 16}, {4, 8, 16, 32}, {8, 16, 32, 64}, {16, 32, 64, 128}}); len(got) != 0 {
		t.Errorf("full grid has %d empty cells, want 0", len(got))
	}
}

func TestHasAnyMove(t *testing.T) {
	tests := []struct {
		name     string
		board    Grid
		expected bool
	}{
		{
			name: "no empty cells and no merges",
			board: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name: "horizontal merge",
			board: Grid{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "vertical merge in last column",
			board: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 4096},
			},
			expected: true,
		},
		{
			name: "single empty cell",
			board: Grid{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name:     "empty grid",
			board:    Grid{},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAnyMove(tt.board); got != tt.expected {
				t.Errorf("HasAnyMove() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMaxTileAndContains(t *testing.T) {
	board := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(board); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if !Contains(board, 2048) {
		t.Error("Contains(2048) should be true")
	}
	if Contains(board, 4096) {
		t.Error("Contains(4096) should be false")
	}
	if MaxTile(Grid{}) != 0 {
		t.Error("MaxTile of empty grid should be 0")
	}
}

func TestValid(t *testing.T) {
	if !Valid(Grid{{2, 4, 0, 2048}}) {
		t.Error("powers of two should be valid")
	}
	if Valid(Grid{{1}}) {
		t.Error("1 is below the minimum tile value")
	}
	if Valid(Grid{{6}}) {
		t.Error("6 is not a power of two")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"up", Up},
		{"Down", Down},
		{" left ", Left},
		{"R", Right},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.input, got, tt.expected)
		}
		if roundTrip, _ := ParseDirection(got.String()); roundTrip != got {
			t.Errorf("String/Parse round trip failed for %s", got)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}
