package engine

import (
	"fmt"

	"github.com/averyhale/tetrion/internal/core"
)

// sidePanelWidth is the width reserved on each side of the playfield for
// the hold box and the next queue.
const sidePanelWidth = 14

// Render draws the playfield, side panels and overlays. Each board cell is
// two runes wide so the field reads roughly square on most terminal fonts.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderField(dst)
	g.renderPanels(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over",
			fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris — Score: %d  Level: %d  Lines: %d", g.score, g.level, g.lines)
	if g.scorer.BackToBack() {
		hud += "  [B2B]"
	}
	dst.DrawText(0, 0, hud)
}

func (g *Game) renderField(dst *core.Screen) {
	fieldW := BoardWidth*2 + 2
	fieldH := VisibleRows + 2
	dst.DrawBox(core.NewRect(g.fieldX, g.fieldY, fieldW, fieldH))

	// Settled cells. Rows above the visible area stay hidden.
	for y := BufferRows; y < TotalRows; y++ {
		for x := 0; x < BoardWidth; x++ {
			if kind := g.board.At(x, y); kind != KindNone {
				g.drawCell(dst, x, y, '█', kind.Color())
			}
		}
	}

	if g.gameOver {
		return
	}

	if g.tuning.GhostEnabled {
		ghost := g.GhostPiece()
		if ghost.Y != g.active.Y {
			for _, c := range ghost.Cells() {
				g.drawCell(dst, c.X, c.Y, '░', core.ColorGray)
			}
		}
	}

	for _, c := range g.active.Cells() {
		g.drawCell(dst, c.X, c.Y, '█', g.active.Kind.Color())
	}
}

// drawCell paints one board cell as a two-rune block. Cells in the hidden
// buffer rows are skipped.
func (g *Game) drawCell(dst *core.Screen, x, y int, r rune, color core.Color) {
	if y < BufferRows {
		return
	}
	sx := g.fieldX + 1 + x*2
	sy := g.fieldY + 1 + (y - BufferRows)
	dst.SetColored(sx, sy, r, color)
	dst.SetColored(sx+1, sy, r, color)
}

func (g *Game) renderPanels(dst *core.Screen) {
	leftX := g.fieldX - sidePanelWidth
	rightX := g.fieldX + BoardWidth*2 + 2 + 2

	dst.DrawText(leftX, g.fieldY+1, "HOLD")
	if g.holdKind != KindNone {
		g.drawMini(dst, g.holdKind, leftX, g.fieldY+3)
	}

	dst.DrawText(leftX, g.fieldY+8, fmt.Sprintf("SCORE %d", g.score))
	dst.DrawText(leftX, g.fieldY+9, fmt.Sprintf("LEVEL %d", g.level))
	dst.DrawText(leftX, g.fieldY+10, fmt.Sprintf("LINES %d", g.lines))
	if g.lastSpin != SpinNone {
		dst.DrawText(leftX, g.fieldY+12, g.lastSpin.String())
	}

	dst.DrawText(rightX, g.fieldY+1, "NEXT")
	for i, kind := range g.bag.Peek(g.tuning.NextPreview) {
		g.drawMini(dst, kind, rightX, g.fieldY+3+i*3)
	}
}

// drawMini paints a piece's spawn shape at its natural size for the hold
// and next boxes.
func (g *Game) drawMini(dst *core.Screen, kind Kind, x, y int) {
	for _, c := range pieceCells[kind][0] {
		sx := x + c.X*2
		sy := y + c.Y
		dst.SetColored(sx, sy, '█', kind.Color())
		dst.SetColored(sx+1, sy, '█', kind.Color())
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
