package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/picodino/internal/core"
	"github.com/vovakirdan/picodino/internal/display"
	"github.com/vovakirdan/picodino/internal/games/dino"
	"github.com/vovakirdan/picodino/internal/storage"
)

// BackendID is the name runs are recorded under.
const BackendID = "tui"

// Rows taken by the status and help lines below the panel.
const chromeRows = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	game       *dino.Game
	fb         *display.Framebuffer
	screen     *core.Screen
	mode       display.CellMode
	ink        core.Color
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	fps        int
	width      int
	height     int
	runStart   time.Time
	quitting   bool
}

// ModelOptions configures NewModel.
type ModelOptions struct {
	Mode   display.CellMode
	Ink    core.Color
	FPS    int
	Store  *storage.Store
	Logger *log.Logger
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *dino.Game, opts ModelOptions) Model {
	cfg := game.Config()
	cols, rows := opts.Mode.GridSize(cfg.Display.Width, cfg.Display.Height)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		fb:         display.NewFramebuffer(cfg.Display.Width, cfg.Display.Height),
		screen:     core.NewScreen(cols, rows),
		mode:       opts.Mode,
		ink:        opts.Ink,
		store:      opts.Store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		fps:        opts.FPS,
		runStart:   time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
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
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Presses are collected into the
// input frame and applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one game tick with the collected input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionPause) {
		m.game.TogglePause()
		m.logger.Debug("pause toggled", "paused", m.game.State().Paused)
	}

	result := m.game.Tick(m.inputFrame, m.fb)
	m.gameState = result.State

	for _, e := range result.Events {
		switch e.Kind {
		case dino.EventReset:
			m.runStart = time.Now()
			m.logger.Debug("reset", "high", result.State.HighScore)
		case dino.EventCollision:
			m.recordRun(result.State)
		default:
			m.logger.Debug(e.Kind.String(), "x", e.X)
		}
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.fps)
}

// recordRun logs a finished run and stores it in the session log.
func (m Model) recordRun(state core.GameState) {
	elapsed := time.Since(m.runStart)
	m.logger.Info("game over",
		"points", state.Score,
		"high", state.HighScore,
		"distance", state.Distance,
		"duration", elapsed.Round(time.Millisecond),
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(BackendID, state.Score, state.Distance, elapsed); err != nil {
		m.logger.Warn("cannot record run", "error", err)
	}
}

// saveScreenshot writes the current panel as text.
func (m Model) saveScreenshot() (string, error) {
	Blit(m.screen, m.fb, m.mode)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".picodino", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dino_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the panel, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && (m.width < m.screen.Width() || m.height < m.screen.Height()+chromeRows) {
		return alertStyle.Render(fmt.Sprintf(
			"Terminal too small: %dx%d, need %dx%d",
			m.width, m.height, m.screen.Width(), m.screen.Height()+chromeRows,
		))
	}

	Blit(m.screen, m.fb, m.mode)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, InkStyle(m.ink, m.fb.Contrast())))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	s := m.gameState
	switch {
	case s.GameOver:
		return alertStyle.Render(fmt.Sprintf("GAME OVER  %d points, press r", s.Score))
	case s.Paused:
		return alertStyle.Render("PAUSED")
	}
	return statusStyle.Render(fmt.Sprintf("points %d  best %d  distance %d", s.Score, s.HighScore, s.Distance))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}
