package guardian

import (
	"fmt"

	"github.com/vovakirdan/guardian-arcade/internal/core"
)

// Glyphs for game elements.
const (
	playerChar      = '◆'
	allyChar        = '●'
	threatLeftChar  = '<'
	threatRightChar = '>'
	obstacleChar    = '░'
)

// Render draws the game to the screen through the camera transform.
// The simulation knows nothing about cells beyond the configured
// world-units-per-cell scale.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)
	g.renderObstacles(dst)
	g.renderThreats(dst)
	g.renderEntity(dst, g.ally.Body, allyChar, core.ColorBrightGreen)
	g.renderEntity(dst, g.player.Body, playerChar, core.ColorBrightCyan)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, fmt.Sprintf("Game Over — Score: %d", g.score), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// worldToScreen converts world coordinates to screen cells.
// The boolean reports whether the cell lies inside the play area.
func (g *Game) worldToScreen(wx, wy float64) (int, int, bool) {
	x := int((wx - g.camera.X) / g.cfg.Render.CellWidth)
	y := hudHeight + int((wy-g.camera.Y)/g.cfg.Render.CellHeight)
	if x < 0 || x >= g.runtime.ScreenW || y < hudHeight || y >= g.runtime.ScreenH {
		return 0, 0, false
	}
	return x, y, true
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Guardian — Score: %d  High: %d  Lives: %d", g.score, g.highScore, g.lives)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderObstacles draws the visible portion of every obstacle.
func (g *Game) renderObstacles(dst *core.Screen) {
	cellW := g.cfg.Render.CellWidth
	cellH := g.cfg.Render.CellHeight

	for _, obs := range g.world.Obstacles {
		x0 := int((obs.X - g.camera.X) / cellW)
		x1 := int((obs.Right() - g.camera.X) / cellW)
		y0 := hudHeight + int((obs.Y-g.camera.Y)/cellH)
		y1 := hudHeight + int((obs.Bottom()-g.camera.Y)/cellH)

		x0 = core.Clamp(x0, 0, dst.Width()-1)
		x1 = core.Clamp(x1, 0, dst.Width()-1)
		y0 = core.Clamp(y0, hudHeight, dst.Height()-1)
		y1 = core.Clamp(y1, hudHeight, dst.Height()-1)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, obstacleChar, core.ColorGray)
			}
		}
	}
}

// renderThreats draws threats with a facing-aware glyph.
func (g *Game) renderThreats(dst *core.Screen) {
	for _, t := range g.threats {
		x, y, ok := g.worldToScreen(t.Body.X, t.Body.Y)
		if !ok {
			continue
		}

		ch := threatLeftChar
		if t.FacingRight {
			ch = threatRightChar
		}
		color := core.ColorRed
		if t.Kind == ThreatFast {
			color = core.ColorBrightRed
		}
		dst.SetColored(x, y, ch, color)
	}
}

// renderEntity draws a single circular entity at its center cell.
func (g *Game) renderEntity(dst *core.Screen, body core.Circle, ch rune, color core.Color) {
	x, y, ok := g.worldToScreen(body.X, body.Y)
	if !ok {
		return
	}
	dst.SetColored(x, y, ch, color)
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	drawCentered(dst, line1, boxY+1)
	drawCentered(dst, line2, boxY+3)
}

// drawCentered draws text centered horizontally.
func drawCentered(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	i := 0
	for _, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
		i++
	}
}
