package tui

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type modelHarness struct {
	m     Model
	clock *flappy.ManualClock
	store *storage.Store
}

func newModelHarness(t *testing.T) *modelHarness {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	clock := flappy.NewManualClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	game, err := flappy.New(config.DefaultFlappyConfig(), flappy.Options{}, flappy.Deps{
		Scores: storage.NewHighScores(store, nil),
		Clock:  clock,
		Rand:   rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("flappy.New failed: %v", err)
	}

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
	m.shotsDir = t.TempDir()
	return &modelHarness{m: m, clock: clock, store: store}
}

func (h *modelHarness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	h.m = m
	return cmd
}

func (h *modelHarness) key(t *testing.T, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	return h.send(t, msg)
}

func (h *modelHarness) click(t *testing.T, x, y int) tea.Cmd {
	t.Helper()
	return h.send(t, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// playUntilDeath feeds simulation ticks until the bird hits something.
func (h *modelHarness) playUntilDeath(t *testing.T) {
	t.Helper()
	g := h.m.game
	for i := 0; i < 1000 && g.State() == flappy.StatePlaying; i++ {
		h.clock.Advance(g.TickInterval())
		h.send(t, simTickMsg{epoch: g.LoopEpoch()})
	}
	if g.State() != flappy.StatePlayerDying {
		t.Fatalf("state = %v, want PlayerDying", g.State())
	}
}

// waitFor feeds frames until the game reaches want.
func (h *modelHarness) waitFor(t *testing.T, want flappy.State) {
	t.Helper()
	g := h.m.game
	for i := 0; i < 200 && g.State() != want; i++ {
		h.clock.Advance(50 * time.Millisecond)
		h.send(t, frameMsg(h.clock.Now()))
	}
	if g.State() != want {
		t.Fatalf("state = %v, want %v", g.State(), want)
	}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelInitShowsSplash(t *testing.T) {
	h := newModelHarness(t)

	if cmd := h.m.Init(); cmd == nil {
		t.Error("Init should start the frame loop")
	}
	if got := h.m.game.State(); got != flappy.StateSplashScreen {
		t.Errorf("state = %v, want SplashScreen", got)
	}
	if view := h.m.View(); !strings.Contains(view, "Get Ready!") || !strings.Contains(view, "flap") {
		t.Errorf("splash view missing text:\n%s", view)
	}
}

func TestModelTouchStartsLoopOnce(t *testing.T) {
	h := newModelHarness(t)
	h.m.Init()

	if cmd := h.key(t, spaceKey); cmd == nil {
		t.Fatal("first touch should schedule a simulation tick")
	}
	if !h.m.game.Looping() || h.m.game.State() != flappy.StatePlaying {
		t.Fatalf("state = %v looping = %v", h.m.game.State(), h.m.game.Looping())
	}
	if cmd := h.key(t, spaceKey); cmd != nil {
		t.Error("a flap while playing should not start another loop")
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	h := newModelHarness(t)
	h.m.Init()
	h.key(t, spaceKey)

	g := h.m.game
	before := g.Snapshot().BirdPosition
	if cmd := h.send(t, simTickMsg{epoch: g.LoopEpoch() - 1}); cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if got := g.Snapshot().BirdPosition; got != before {
		t.Errorf("stale tick moved the bird from %g to %g", before, got)
	}

	h.clock.Advance(g.TickInterval())
	if cmd := h.send(t, simTickMsg{epoch: g.LoopEpoch()}); cmd == nil {
		t.Error("current tick should reschedule")
	}
	if got := g.Snapshot().BirdPosition; got == before {
		t.Error("current tick should move the bird")
	}
}

func TestModelLoopStopsOnDeath(t *testing.T) {
	h := newModelHarness(t)
	h.m.Init()
	h.key(t, spaceKey)
	h.playUntilDeath(t)

	if cmd := h.send(t, simTickMsg{epoch: h.m.game.LoopEpoch()}); cmd != nil {
		t.Error("ticks after death should not reschedule")
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	h := newModelHarness(t)
	h.m.Init()
	h.key(t, spaceKey)
	h.playUntilDeath(t)
	h.waitFor(t, flappy.StateScoreScreen)

	for range 5 {
		h.clock.Advance(50 * time.Millisecond)
		h.send(t, frameMsg(h.clock.Now()))
	}

	runs, err := h.store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("stored %d runs, want 1", len(runs))
	}
	if runs[0].Score != h.m.game.Score() || runs[0].Medal != h.m.game.Medal().String() || runs[0].Easy {
		t.Errorf("stored run = %+v", runs[0])
	}
}

func TestModelReplayByClick(t *testing.T) {
	h := newModelHarness(t)
	h.m.Init()
	h.key(t, spaceKey)
	h.playUntilDeath(t)
	h.waitFor(t, flappy.StateScoreScreen)

	h.click(t, 0, 0)
	if got := h.m.game.State(); got != flappy.StateScoreScreen {
		t.Fatalf("click outside the button changed state to %v", got)
	}

	_, button := scoreboardLayout(h.m.screen.Width(), h.m.screen.Height(), false)
	h.click(t, button.x+1, button.y)
	if got := h.m.game.State(); got != flappy.StateLoading {
		t.Fatalf("state after replay click = %v, want Loading", got)
	}
	h.waitFor(t, flappy.StateSplashScreen)

	h.key(t, spaceKey)
	h.playUntilDeath(t)
	h.waitFor(t, flappy.StateScoreScreen)

	runs, err := h.store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("stored %d runs, want 2", len(runs))
	}
}

func TestModelReplayByKey(t *testing.T) {
	h := newModelHarness(t)
	h.m.Init()
	h.key(t, spaceKey)
	h.playUntilDeath(t)
	h.waitFor(t, flappy.StateScoreScreen)

	h.key(t, tea.KeyMsg{Type: tea.KeyEnter})
	if got := h.m.game.State(); got != flappy.StateLoading {
		t.Fatalf("state after enter = %v, want Loading", got)
	}
}

func TestModelScreenshot(t *testing.T) {
	h := newModelHarness(t)
	h.m.Init()

	h.key(t, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(h.m.shotsDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(h.m.shotsDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "Get Ready!") {
		t.Errorf("screenshot does not hold the splash screen:\n%s", data)
	}
	if name := entries[0].Name(); !strings.HasPrefix(name, "flappy_") {
		t.Errorf("screenshot name = %q", name)
	}
	if !strings.HasPrefix(h.m.status, "saved ") {
		t.Errorf("status = %q", h.m.status)
	}
}

func TestModelQuit(t *testing.T) {
	h := newModelHarness(t)
	h.m.Init()

	cmd := h.key(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if h.m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	h := newModelHarness(t)

	h.send(t, tea.WindowSizeMsg{Width: 100, Height: 30})

	if h.m.screen.Width() != 100 || h.m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", h.m.screen.Width(), h.m.screen.Height())
	}
}

func TestModelWithoutStore(t *testing.T) {
	game, err := flappy.New(config.DefaultFlappyConfig(), flappy.Options{}, flappy.Deps{})
	if err != nil {
		t.Fatalf("flappy.New failed: %v", err)
	}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12}, nil)
	m.recordRun()
	if m.View() == "" {
		t.Error("view should render without a store")
	}
}

func TestModelIntervals(t *testing.T) {
	game, err := flappy.New(config.DefaultFlappyConfig(), flappy.Options{}, flappy.Deps{})
	if err != nil {
		t.Fatalf("flappy.New failed: %v", err)
	}

	tests := []struct {
		name      string
		cfg       core.RuntimeConfig
		wantTick  time.Duration
		wantFrame time.Duration
	}{
		{"configured rates", core.RuntimeConfig{TickRate: 120, FrameRate: 20}, time.Second / 120, time.Second / 20},
		{"zero falls back to game", core.RuntimeConfig{}, game.TickInterval(), game.FrameInterval()},
		{"defaults", core.DefaultConfig(), time.Second / 60, time.Second / 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(game, nil, tt.cfg, nil)
			if m.tickInterval != tt.wantTick {
				t.Errorf("tickInterval = %v, want %v", m.tickInterval, tt.wantTick)
			}
			if m.frameInterval != tt.wantFrame {
				t.Errorf("frameInterval = %v, want %v", m.frameInterval, tt.wantFrame)
			}
		})
	}
}
