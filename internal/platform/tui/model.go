package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/session"
	"github.com/vovakirdan/term2048/internal/storage"
)

const recordTimeout = 2 * time.Second

// Recorder stores finished games.
type Recorder interface {
	RecordScore(ctx context.Context, entry storage.ScoreEntry) error
}

// Options configures the game screen.
type Options struct {
	Session  *session.Session
	Recorder Recorder // optional
	Logger   *log.Logger
	ShowHelp bool
	Color    bool
	Width    int
	Height   int
}

// Model is the Bubble Tea model for a 2048 game.
type Model struct {
	game     *session.Session
	recorder Recorder
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	snap     session.Snapshot
	showHelp bool
	color    bool
	width    int
	height   int
	recorded bool // finished game already stored
	quitting bool
}

// NewModel creates the game model over an already started session.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:     opts.Session,
		recorder: opts.Recorder,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     h,
		snap:     opts.Session.Snapshot(),
		showHelp: opts.ShowHelp,
		color:    opts.Color,
		width:    opts.Width,
		height:   opts.Height,
	}
	m.screen = core.NewScreen(m.width, m.canvasHeight())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.canvasHeight())
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordFinished()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.showHelp = true
		m.screen.Resize(m.width, m.canvasHeight())
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.recordFinished()
		m.snap = m.game.Restart()
		m.recorded = false
		return m, nil

	case key.Matches(msg, m.keys.Continue):
		m.snap = m.game.DismissWinBanner()
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.snap = m.game.ApplyMove(d)
		if m.snap.GameOver {
			m.recordFinished()
		}
	}
	return m, nil
}

// recordFinished stores the current game once. Empty games are skipped.
func (m *Model) recordFinished() {
	if m.recorded || m.snap.Score == 0 {
		return
	}
	m.recorded = true
	if m.recorder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	entry := storage.ScoreEntry{
		Score:   m.snap.Score,
		MaxTile: m.snap.MaxTile,
		Moves:   m.snap.Moves,
	}
	if err := m.recorder.RecordScore(ctx, entry); err != nil {
		m.logger.Warn("could not record game", "score", entry.Score, "error", err)
		return
	}
	m.logger.Info("game recorded", "score", entry.Score, "max_tile", entry.MaxTile, "moves", entry.Moves)
}

func (m Model) helpHeight() int {
	if !m.showHelp {
		return 0
	}
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0]) + 1
	}
	return 2
}

func (m Model) canvasHeight() int {
	return max(m.height-m.helpHeight(), 0)
}

// Snapshot returns the last snapshot the model drew from.
func (m Model) Snapshot() session.Snapshot {
	return m.snap
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.snap, m.color)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// Run starts the Bubble Tea program for a game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
