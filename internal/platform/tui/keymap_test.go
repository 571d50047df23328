package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/grid"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirection(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want grid.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, grid.Up},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, grid.Down},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, grid.Left},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, grid.Right},
		{"w", runeKey('w'), grid.Up},
		{"s", runeKey('s'), grid.Down},
		{"a", runeKey('a'), grid.Left},
		{"d", runeKey('d'), grid.Right},
		{"k", runeKey('k'), grid.Up},
		{"j", runeKey('j'), grid.Down},
		{"h", runeKey('h'), grid.Left},
		{"l", runeKey('l'), grid.Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Direction(tt.msg)
			if !ok {
				t.Fatalf("Direction(%q) not mapped", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("Direction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapNonDirection(t *testing.T) {
	keys := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey('r'), runeKey('q'), runeKey('?'), {Type: tea.KeyEnter}} {
		if d, ok := keys.Direction(msg); ok {
			t.Errorf("Direction(%q) = %v, want unmapped", msg.String(), d)
		}
	}
}
