package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/grid/gridtest"
	"github.com/vovakirdan/term2048/internal/session"
	"github.com/vovakirdan/term2048/internal/storage"
)

type recorderStub struct {
	entries []storage.ScoreEntry
	err     error
}

func (r *recorderStub) RecordScore(_ context.Context, e storage.ScoreEntry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, e)
	return nil
}

// scriptedSession starts a game whose opening tiles are two 2s in the top row.
func scriptedSession() *session.Session {
	src := gridtest.NewSource()
	src.QueueTile(0, 2) // (0,0)
	src.QueueTile(0, 2) // first empty after (0,0) is (0,1)
	return session.Start(session.WithSource(src))
}

func newTestModel(rec Recorder) Model {
	return NewModel(Options{
		Session:  scriptedSession(),
		Recorder: rec,
		ShowHelp: true,
		Color:    true,
		Width:    80,
		Height:   30,
	})
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelMoveUpdatesSnapshot(t *testing.T) {
	m := newTestModel(nil)
	if m.Snapshot().Grid[0][0] != 2 || m.Snapshot().Grid[0][1] != 2 {
		t.Fatalf("unexpected opening grid %v", m.Snapshot().Grid)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})

	snap := m.Snapshot()
	if snap.Grid[0][0] != 4 || snap.Score != 4 || snap.Moves != 1 {
		t.Errorf("after left: grid %v score %d moves %d", snap.Grid, snap.Score, snap.Moves)
	}
	if !strings.Contains(m.View(), "SCORE 4") {
		t.Errorf("view does not show the new score:\n%s", m.View())
	}
}

func TestModelRestartRecordsFinishedGame(t *testing.T) {
	rec := &recorderStub{}
	m := newTestModel(rec)

	// Nothing to record before any points are scored
	m, _ = press(m, runeKey('r'))
	if len(rec.entries) != 0 {
		t.Fatalf("empty game recorded: %+v", rec.entries)
	}

	m = NewModel(Options{Session: scriptedSession(), Recorder: rec, Width: 80, Height: 30})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, runeKey('r'))

	if len(rec.entries) != 1 {
		t.Fatalf("recorded %d games, want 1", len(rec.entries))
	}
	if e := rec.entries[0]; e.Score != 4 || e.MaxTile != 4 || e.Moves != 1 {
		t.Errorf("recorded %+v", e)
	}
	if m.Snapshot().Score != 0 || m.Snapshot().Moves != 0 {
		t.Errorf("restart did not reset the game: %+v", m.Snapshot())
	}
}

func TestModelQuitRecordsOnce(t *testing.T) {
	rec := &recorderStub{}
	m := newTestModel(rec)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := press(m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if len(rec.entries) != 1 {
		t.Errorf("recorded %d games, want 1", len(rec.entries))
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelRecordErrorIsTolerated(t *testing.T) {
	rec := &recorderStub{err: errors.New("disk full")}
	m := newTestModel(rec)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, runeKey('r'))

	if m.Snapshot().Score != 0 {
		t.Error("restart should proceed when recording fails")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(nil)
	short := m.View()

	m, _ = press(m, runeKey('?'))
	full := m.View()

	if !strings.Contains(full, "keep playing") {
		t.Errorf("full help should list the continue binding:\n%s", full)
	}
	if strings.Contains(short, "keep playing") {
		t.Errorf("short help should not list the continue binding:\n%s", short)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = next.(Model)
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("expected resize notice:\n%s", m.View())
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = next.(Model)
	if strings.Contains(m.View(), "too small") {
		t.Errorf("notice should go away after growing:\n%s", m.View())
	}
}

func TestModelContinueDismissesBanner(t *testing.T) {
	src := gridtest.NewSource()
	src.QueueTile(0, 2)
	src.QueueTile(0, 2)
	s := session.Start(session.WithSource(src))

	m := NewModel(Options{Session: s, Width: 80, Height: 30})
	m, _ = press(m, runeKey('c'))
	if m.Snapshot().BannerDismissed {
		t.Error("continue without a win should not set the dismissed flag")
	}

	if m.Snapshot().Moves != 0 {
		t.Error("continue must not count as a move")
	}
}
