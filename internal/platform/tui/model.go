package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-floodfill/internal/core"
	"github.com/vovakirdan/tui-floodfill/internal/registry"
	"github.com/vovakirdan/tui-floodfill/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a puzzle.
// The game only moves when the player does something, so there is no tick loop:
// every key or mouse message becomes one Step.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	width      int // Terminal size; the game gets what the help footer leaves
	height     int
	gameState  core.GameState
	runID      string // Identifies the current run in the score table
	notice     string // One-off message shown in the footer
	quitting   bool
	scoreSaved bool // Whether score has been saved for the current run
}

// NewModel creates a new Bubble Tea model and starts a puzzle in game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		store:  store,
		logger: logger,
		keys:   NewKeyMapper(),
		help:   help.New(),
		config: cfg,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		runID:  storage.NewRunID(),
	}
	m.help.Width = cfg.ScreenW

	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	return m
}

// Init implements tea.Model. The puzzle is already running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		frame := core.NewInputFrame()
		if m.keys.MapMouseToFrame(msg, &frame) {
			m.step(frame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	}

	frame := core.NewInputFrame()
	if m.keys.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if !frame.Empty() {
		m.step(frame)
	}
	return m, nil
}

// handleResize gives the game the terminal minus the help footer.
// Unlike a restart, a resize keeps the puzzle in progress.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.config.ScreenW = width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)

	return m, nil
}

// gameHeight is the number of rows left for the game above the footer.
func (m Model) gameHeight() int {
	return max(m.height-lipgloss.Height(m.footer()), 0)
}

// step feeds one input event to the game and records a finished run.
func (m *Model) step(frame core.InputFrame) {
	m.notice = ""
	result := m.game.Step(frame)
	m.gameState = result.State

	// A restart replays the puzzle as a new run
	if frame.Has(core.ActionRestart) {
		m.runID = storage.NewRunID()
		m.scoreSaved = false
		m.logger.Debug("run restarted", "run", m.runID)
		return
	}

	// Save score on game over (once per run)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		m.saveScore()
		m.scoreSaved = true
	}
}

// saveScore records the finished run. Storage problems never stop play.
func (m *Model) saveScore() {
	m.logger.Info("puzzle solved",
		"game", m.game.ID(),
		"score", m.gameState.Score,
		"moves", m.gameState.Moves,
		"run", m.runID,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.runID, m.gameState.Score, m.gameState.Moves); err != nil {
		m.logger.Warn("cannot save score", "err", err)
		m.notice = "score not saved"
		return
	}

	high, err := m.store.HighScore(m.game.ID())
	if err == nil && high == m.gameState.Score {
		m.notice = "new high score!"
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".floodfill", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.notice = "saved " + path
}

// footer renders the notice line above the help bar.
// The notice line is always present so the game area keeps its height.
func (m Model) footer() string {
	return m.notice + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// State returns the game state after the latest input.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flood cells and pick colors
	)

	_, err := p.Run()
	return err
}
