package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Scene glyphs.
const (
	birdBodyChar  = '█'
	pipeBodyChar  = '█'
	pipeCapChar   = '▓'
	landFillChar  = '░'
	debugMarkChar = '+'
)

// landPattern scrolls along the top row of the land.
var landPattern = []rune("▀▀▀▄")

// Scoreboard panel size in cells.
const (
	panelWidth  = 28
	panelHeight = 7
	replayLabel = "[ REPLAY ]"
)

// rect is an area of screen cells.
type rect struct {
	x, y, w, h int
}

// contains reports whether the cell (x, y) lies inside r.
func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// scoreboardLayout places the scoreboard panel and the replay button on a
// w×h screen. A leaving panel is drawn two rows higher.
func scoreboardLayout(w, h int, leaving bool) (panel, button rect) {
	pw := core.Min(panelWidth, w)
	panel = rect{
		x: (w - pw) / 2,
		y: (h-panelHeight)/2 - 1,
		w: pw,
		h: panelHeight,
	}
	if leaving {
		panel.y -= 2
	}
	label := len([]rune(replayLabel))
	button = rect{
		x: (w - label) / 2,
		y: panel.y + panel.h + 1,
		w: label,
		h: 1,
	}
	return panel, button
}

// viewport maps world pixels onto screen cells. The flight area and the
// land below it are stretched over the whole screen.
type viewport struct {
	world  core.Box
	sx, sy float64 // world pixels per cell
}

func newViewport(cols, rows int, snap flappy.Snapshot) viewport {
	fa := snap.FlightArea
	bottom := math.Max(fa.Bottom(), snap.LandBox.Bottom())
	world := core.NewBox(fa.X, fa.Y, fa.W, bottom-fa.Y)
	return viewport{
		world: world,
		sx:    world.W / float64(core.Max(cols, 1)),
		sy:    world.H / float64(core.Max(rows, 1)),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.world.X) / v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor((y - v.world.Y) / v.sy))
}

// cells returns the cells covered by b. A non-empty box covers at least
// one cell in each direction.
func (v viewport) cells(b core.Box) rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := int(math.Ceil((b.Right() - v.world.X) / v.sx))
	y1 := int(math.Ceil((b.Bottom() - v.world.Y) / v.sy))
	return rect{x: x0, y: y0, w: core.Max(x1-x0, 1), h: core.Max(y1-y0, 1)}
}

// DrawScene draws a game snapshot onto the screen.
func DrawScene(s *core.Screen, snap flappy.Snapshot) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 {
		return
	}
	v := newViewport(s.Width(), s.Height(), snap)

	drawLand(s, v, snap)
	for _, p := range snap.Pipes {
		drawPipe(s, v, p)
	}
	drawBird(s, v, snap)

	if !snap.SplashVisible && !snap.ScoreboardVisible && snap.State != flappy.StateLoading {
		s.DrawTextCentered(1, fmt.Sprintf(" %d ", snap.Score), core.ColorScore)
	}
	if snap.SplashVisible {
		drawSplash(s, snap)
	}
	if snap.ScoreboardVisible {
		drawScoreboard(s, snap)
	}
	if snap.Debug {
		drawDebug(s, v, snap)
	}
}

func drawLand(s *core.Screen, v viewport, snap flappy.Snapshot) {
	// The grass row stays on screen however short the terminal is.
	top := core.Clamp(v.cells(snap.LandBox).y, 0, s.Height()-1)
	offset := int(snap.Scrolled / v.sx)
	for x := 0; x < s.Width(); x++ {
		s.SetColored(x, top, landPattern[(x+offset)%len(landPattern)], core.ColorBrightGreen)
	}
	s.DrawRect(0, top+1, s.Width(), s.Height()-top-1, landFillChar, core.ColorLand)
}

func drawPipe(s *core.Screen, v viewport, p flappy.PipeBoxes) {
	upper := v.cells(p.Upper)
	lower := v.cells(p.Lower)
	s.DrawRect(upper.x, upper.y, upper.w, upper.h, pipeBodyChar, core.ColorPipe)
	s.DrawRect(lower.x, lower.y, lower.w, lower.h, pipeBodyChar, core.ColorPipe)
	s.DrawHLine(upper.x, upper.y+upper.h-1, upper.w, pipeCapChar, core.ColorBrightGreen)
	s.DrawHLine(lower.x, lower.y, lower.w, pipeCapChar, core.ColorBrightGreen)
}

// birdHead picks the head glyph for a nose-down rotation in degrees.
func birdHead(rotation float64) rune {
	switch {
	case rotation < 30:
		return '▶'
	case rotation < 75:
		return '◢'
	default:
		return '▼'
	}
}

func drawBird(s *core.Screen, v viewport, snap flappy.Snapshot) {
	r := v.cells(snap.BirdBox)
	s.DrawRect(r.x, r.y, r.w, r.h, birdBodyChar, core.ColorBird)
	_, cy := snap.BirdBox.Center()
	s.SetColored(r.x+r.w-1, v.row(cy), birdHead(snap.BirdRotation), core.ColorBrightRed)
}

func drawSplash(s *core.Screen, snap flappy.Snapshot) {
	y := s.Height() / 3
	s.DrawTextCentered(y, "F L A P P Y   B I R D", core.ColorBrightYellow)
	s.DrawTextCentered(y+2, "Get Ready!", core.ColorBrightWhite)
	s.DrawTextCentered(y+4, "press space or click to flap", core.ColorGray)
	if snap.EasyMode {
		s.DrawTextCentered(y+5, "easy mode", core.ColorCyan)
	}
}

// medalColor returns the display color of a medal.
func medalColor(m flappy.Medal) core.Color {
	switch m {
	case flappy.MedalBronze:
		return core.ColorBronze
	case flappy.MedalSilver:
		return core.ColorSilver
	case flappy.MedalGold:
		return core.ColorGold
	case flappy.MedalPlatinum:
		return core.ColorPlatinum
	default:
		return core.ColorGray
	}
}

func drawScoreboard(s *core.Screen, snap flappy.Snapshot) {
	panel, button := scoreboardLayout(s.Width(), s.Height(), snap.ScoreboardLeaving)

	s.DrawRect(panel.x, panel.y, panel.w, panel.h, ' ', core.ColorDefault)
	s.DrawBox(panel.x, panel.y, panel.w, panel.h, core.ColorPanel)
	s.DrawTextCentered(panel.y-1, "GAME OVER", core.ColorBrightRed)

	left := panel.x + 2
	s.DrawTextColored(left, panel.y+1, "MEDAL", core.ColorPanel)
	s.DrawTextColored(left, panel.y+3, "SCORE", core.ColorPanel)
	s.DrawTextColored(left, panel.y+5, "BEST", core.ColorPanel)

	value := func(y int, text string, c core.Color) {
		s.DrawTextColored(panel.x+panel.w-2-len([]rune(text)), y, text, c)
	}
	value(panel.y+1, strings.ToUpper(snap.Medal.String()), medalColor(snap.Medal))
	value(panel.y+3, fmt.Sprint(snap.Score), core.ColorScore)
	best := fmt.Sprint(snap.HighScore)
	if snap.Score > 0 && snap.Score == snap.HighScore {
		best = "NEW " + best
	}
	value(panel.y+5, best, core.ColorScore)

	if snap.ReplayVisible {
		s.DrawTextColored(button.x, button.y, replayLabel, core.ColorBrightWhite)
	}
}

func drawDebug(s *core.Screen, v viewport, snap flappy.Snapshot) {
	mark := func(b core.Box) {
		r := v.cells(b)
		s.SetColored(r.x, r.y, debugMarkChar, core.ColorDebug)
		s.SetColored(r.x+r.w-1, r.y, debugMarkChar, core.ColorDebug)
		s.SetColored(r.x, r.y+r.h-1, debugMarkChar, core.ColorDebug)
		s.SetColored(r.x+r.w-1, r.y+r.h-1, debugMarkChar, core.ColorDebug)
	}
	mark(snap.BirdBox)
	for _, p := range snap.Pipes {
		mark(p.Upper)
		mark(p.Lower)
	}

	status := fmt.Sprintf("%s run=%d pipes=%d pos=%.0f rot=%.0f",
		snap.State, snap.Run, len(snap.Pipes), snap.BirdPosition, snap.BirdRotation)
	if snap.Paused {
		status += " paused"
	}
	if snap.NextStep != "" {
		status += " next=" + snap.NextStep
	}
	s.DrawTextColored(0, 0, status, core.ColorDebug)
}
