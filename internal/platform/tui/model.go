package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a flappy session. The Update goroutine
// is the only one touching the game.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	store    *storage.Store
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	shotsDir string

	tickInterval  time.Duration
	frameInterval time.Duration

	savedRun int // Run whose result is already stored
	status   string
	quitting bool
}

// NewModel creates a Bubble Tea model for game. store may be nil, in which
// case finished runs are not recorded.
func NewModel(game *flappy.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, sceneHeight(cfg.ScreenH)),
		store:         store,
		keys:          NewKeyMapper(),
		help:          help.New(),
		logger:        logger,
		shotsDir:      filepath.Join(config.HomeDir(), "screenshots"),
		tickInterval:  rateInterval(cfg.TickRate, game.TickInterval()),
		frameInterval: rateInterval(cfg.FrameRate, game.FrameInterval()),
	}
}

// rateInterval converts a per-second rate into a period. A non-positive
// rate falls back to def.
func rateInterval(rate int, def time.Duration) time.Duration {
	if rate <= 0 {
		return def
	}
	return time.Second / time.Duration(rate)
}

// sceneHeight leaves the last row to the help bar.
func sceneHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init shows the splash screen and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Splash()
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), frameCmd(m.frameInterval))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg, m.onReplayButton(msg.X, msg.Y)))

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, sceneHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case simTickMsg:
		return m.handleSimTick(msg)

	case frameMsg:
		m.game.Advance()
		m.recordRun()
		return m, frameCmd(m.frameInterval)
	}

	return m, nil
}

// handleAction applies one input action to the game.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	epoch := m.game.LoopEpoch()

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionTouch, core.ActionTap:
		m.game.ScreenTouched(action.FromKeyboard())
	case core.ActionReplay:
		m.game.Replay()
	default:
		return m, nil
	}

	// A touch on the splash screen starts a new loop.
	if m.game.Looping() && m.game.LoopEpoch() != epoch {
		return m, simTickCmd(m.tickInterval, m.game.LoopEpoch())
	}
	return m, nil
}

// handleSimTick runs one simulation step if the tick belongs to the
// running loop.
func (m Model) handleSimTick(msg simTickMsg) (tea.Model, tea.Cmd) {
	if !m.game.Looping() || msg.epoch != m.game.LoopEpoch() {
		return m, nil
	}
	m.game.Tick()
	if !m.game.Looping() || msg.epoch != m.game.LoopEpoch() {
		return m, nil
	}
	return m, simTickCmd(m.tickInterval, msg.epoch)
}

// onReplayButton reports whether the cell (x, y) is on a visible replay
// button.
func (m Model) onReplayButton(x, y int) bool {
	snap := m.game.Snapshot()
	if !snap.ReplayVisible {
		return false
	}
	_, button := scoreboardLayout(m.screen.Width(), m.screen.Height(), snap.ScoreboardLeaving)
	return button.contains(x, y)
}

// recordRun stores a finished run once, when the score screen is reached.
func (m *Model) recordRun() {
	if m.game.State() != flappy.StateScoreScreen || m.savedRun == m.game.Run() {
		return
	}
	m.savedRun = m.game.Run()
	if m.store == nil {
		return
	}
	entry, err := m.store.SaveRun(m.game.Score(), m.game.Medal().String(), m.game.EasyMode())
	if err != nil {
		m.logger.Warn("run not saved", "score", m.game.Score(), "err", err)
		return
	}
	m.logger.Debug("run saved", "run_id", entry.RunID, "score", entry.Score, "medal", entry.Medal)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawScene(m.screen, m.game.Snapshot())

	if err := os.MkdirAll(m.shotsDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.status = "screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotsDir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawScene(m.screen, m.game.Snapshot())

	footer := m.help.View(m.keys.Keys())
	if m.status != "" {
		footer += "  " + m.status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game *flappy.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
