package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Rendering geometry. Each board cell is two characters wide so the
// playfield looks square in a terminal.
const (
	cellW      = 2
	hudHeight  = 2
	frameW     = BoardWidth*cellW + 2 // playfield plus border
	frameH     = BoardHeight + 2
	panelW     = 14 // next-piece preview and help column
	minScreenW = frameW + panelW + 2
	minScreenH = frameH + hudHeight
)

// Render draws the full game view: HUD, framed playfield with ghost and
// flashing rows, next-piece preview and phase overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Center the playfield-plus-panel block.
	originX := (dst.Width() - frameW - panelW) / 2
	originY := hudHeight

	g.renderBoard(dst, originX, originY)
	g.renderPanel(dst, originX+frameW+2, originY)

	switch g.phase {
	case PhaseIdle:
		g.renderOverlay(dst, "T E T R I S", "Press Space to start")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Space starts a new game")
	}
}

// renderHUD draws the score/level/lines readouts on the top line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris | Score: %d  Level: %d  Lines: %d", g.score, g.level, g.lines)
	if g.combo > 1 {
		hud += fmt.Sprintf("  Combo: x%d", g.combo)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the framed playfield: settled cells, flashing rows,
// the ghost landing preview and the current piece.
func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	dst.DrawBox(core.NewRect(originX, originY, frameW, frameH))

	flashing := make(map[int]bool)
	for _, row := range g.board.FlashRows() {
		flashing[row] = true
	}

	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			cell := g.board.Cell(x, y)
			switch {
			case flashing[y]:
				g.drawCell(dst, originX, originY, x, y, '▓', core.ColorBrightWhite)
			case cell.Occupied:
				g.drawCell(dst, originX, originY, x, y, '█', cell.Color)
			}
		}
	}

	if g.phase == PhaseRunning || g.phase == PhasePaused {
		// Ghost first so the piece draws over it when they overlap.
		ghost := g.current
		ghost.Y += g.board.DropOffset(g.current)
		for x, y := range ghost.Cells() {
			if y >= 0 {
				g.drawCell(dst, originX, originY, x, y, '░', core.ColorGray)
			}
		}
		for x, y := range g.current.Cells() {
			if y >= 0 {
				g.drawCell(dst, originX, originY, x, y, '█', g.current.Color)
			}
		}
	}
}

// drawCell paints one board cell (cellW characters wide) inside the frame.
func (g *Game) drawCell(dst *core.Screen, originX, originY, x, y int, r rune, c core.Color) {
	sx := originX + 1 + x*cellW
	sy := originY + 1 + y
	for i := 0; i < cellW; i++ {
		dst.SetCell(sx+i, sy, r, c)
	}
}

// renderPanel draws the next-piece preview box and the key help.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "Next")

	previewBox := core.NewRect(x, y+1, maskSize*cellW+2, maskSize+2)
	dst.DrawBox(previewBox)

	// Center the piece in the preview using its bounding box.
	if box, ok := g.next.BoundingBox(); ok {
		offX := (maskSize - box.W) * cellW / 2
		offY := (maskSize - box.H) / 2
		for py := 0; py < maskSize; py++ {
			for px := 0; px < maskSize; px++ {
				if !g.next.Mask[py][px] {
					continue
				}
				sx := previewBox.X + 1 + offX + (px-box.X)*cellW
				sy := previewBox.Y + 1 + offY + (py - box.Y)
				for i := 0; i < cellW; i++ {
					dst.SetCell(sx+i, sy, '█', g.next.Color)
				}
			}
		}
	}

	helpY := previewBox.Bottom() + 1
	help := []string{
		"←/→  move",
		"↑    rotate",
		"↓    soft drop",
		"space drop",
		"p    pause",
		"r    restart",
	}
	for i, line := range help {
		dst.DrawTextColored(x, helpY+i, line, core.ColorGray)
	}
}

// renderOverlay draws a centered boxed message over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
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

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
