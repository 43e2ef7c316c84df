package floodfill

import (
	"fmt"

	"github.com/vovakirdan/tui-floodfill/internal/core"
)

const (
	hudHeight    = 2 // Title and score rows above the board frame
	footerHeight = 4 // Frame bottom, gap, palette bar, status line
	swatchWidth  = 3
)

// fallbackCell is the smallest cell the board shrinks to on narrow terminals.
var fallbackCell = [2]int{2, 1}

// layout fits the board on screen, shrinking cells if the configured size does not fit.
func (g *Game) layout() {
	size := g.ctrl.Size()

	fits := func(cw, ch int) bool {
		return size*cw+2 <= g.screenW && size*ch+2+hudHeight+footerHeight <= g.screenH
	}

	g.cellW, g.cellH = g.cfg.Display.CellWidth, g.cfg.Display.CellHeight
	if g.cellW <= 0 || g.cellH <= 0 {
		g.cellW, g.cellH = 4, 2
	}
	if !fits(g.cellW, g.cellH) {
		g.cellW, g.cellH = fallbackCell[0], fallbackCell[1]
	}
	g.tooSmall = !fits(g.cellW, g.cellH) || g.screenW < g.paletteWidth()
	g.ctrl.SetCellSize(g.cellW, g.cellH)

	boardW, boardH := size*g.cellW, size*g.cellH
	g.boardR = core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	// Swatches sit in a row under the board frame, each followed by its slot number
	y := g.boardR.Bottom() + 2
	x := (g.screenW - g.paletteWidth()) / 2
	g.swatches = g.swatches[:0]
	for range g.ctrl.Palette() {
		g.swatches = append(g.swatches, core.NewRect(x, y, swatchWidth, 1))
		x += swatchWidth + 3
	}
}

// paletteWidth is the width of the palette bar: "███ 1 " per color.
func (g *Game) paletteWidth() int {
	return len(g.ctrl.Palette())*(swatchWidth+3) - 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPalette(dst)
	g.renderStatus(dst)

	if g.ctrl.Solved() {
		g.renderSolved(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score, move count and selected color.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "FLOOD FILL")

	left := fmt.Sprintf("Score: %.0f/%.0f", g.score, g.ctrl.MaximumScore())
	dst.DrawText(g.boardR.X-1, 1, left)

	right := fmt.Sprintf("Moves: %d  Color: %s", g.ctrl.Moves(), g.ctrl.Color().Name)
	x := max(g.boardR.Right()+1-len(right), g.boardR.X-1+len(left)+2)
	dst.DrawText(x, 1, right)
}

// renderBoard paints every cell as a filled block and marks the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	frame := core.NewRect(g.boardR.X-1, g.boardR.Y-1, g.boardR.W+2, g.boardR.H+2)
	dst.DrawBox(frame)

	for row := 0; row < g.board.Size; row++ {
		for col := 0; col < g.board.Size; col++ {
			c := g.board.At(Coordinate{Row: row, Column: col})
			cell := core.NewRect(g.boardR.X+col*g.cellW, g.boardR.Y+row*g.cellH, g.cellW, g.cellH)
			dst.FillRect(cell, toScreen(c))
		}
	}

	if !g.board.InBounds(g.cursor) {
		return
	}
	bg := toScreen(g.board.At(g.cursor))
	cx := g.boardR.X + g.cursor.Column*g.cellW + (g.cellW-1)/2
	cy := g.boardR.Y + g.cursor.Row*g.cellH + (g.cellH-1)/2
	dst.SetCell(cx, cy, core.Cell{Rune: '◆', FG: bg.Contrast(), BG: bg})
}

// renderPalette draws the swatches with their slot numbers, marking the selected one.
func (g *Game) renderPalette(dst *core.Screen) {
	selected := g.ctrl.Color().Name
	for i, nc := range g.ctrl.Palette() {
		r := g.swatches[i]
		bg := toScreen(nc.Color)
		dst.FillRect(r, bg)
		if nc.Name == selected {
			dst.SetCell(r.X+r.W/2, r.Y, core.Cell{Rune: '●', FG: bg.Contrast(), BG: bg})
		}
		dst.DrawText(r.Right()+1, r.Y, fmt.Sprintf("%d", i+1))
	}
}

// renderStatus shows the last flood area or the last rejected input.
func (g *Game) renderStatus(dst *core.Screen) {
	y := g.boardR.Bottom() + 3
	var msg string
	switch {
	case g.lastErr != nil:
		msg = g.lastErr.Error()
	case g.ctrl.Moves() > 0:
		msg = fmt.Sprintf("Last flood: %d cells", g.ctrl.Area())
	default:
		msg = "Pick a color, then a cell"
	}
	dst.DrawTextCentered(y, msg)
}

// renderSolved draws the solved banner over the middle of the board.
func (g *Game) renderSolved(dst *core.Screen) {
	_, cy := g.boardR.Center()
	lines := []string{
		" SOLVED ",
		fmt.Sprintf(" Score %.0f in %d moves ", g.score, g.ctrl.Moves()),
		" R to replay, Q to quit ",
	}
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	box := core.NewRect((g.screenW-w-2)/2, cy-2, w+2, len(lines)+2)
	dst.FillRect(box, core.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawText(box.X+1+(w-len(l))/2, box.Y+1+i, l)
	}
}

// toScreen converts a puzzle color to a screen color.
func toScreen(c Color) core.Color {
	return core.RGB(c.R, c.G, c.B)
}
