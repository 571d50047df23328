package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/grid"
	"github.com/vovakirdan/term2048/internal/session"
)

const (
	tileW     = 7
	tileH     = 3
	tileGap   = 1
	hudHeight = 3

	boardW = tileGap + grid.Size*(tileW+tileGap)
	boardH = tileGap + grid.Size*(tileH+tileGap)

	// MinWidth and MinHeight are the smallest canvas the board fits on.
	MinWidth  = boardW
	MinHeight = hudHeight + boardH
)

// DrawGame renders the snapshot onto dst: HUD, board and any overlay.
func DrawGame(dst *core.Screen, snap session.Snapshot, color bool) {
	dst.Clear()
	p := palette{color: color}

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		drawTooSmall(dst)
		return
	}

	area := core.Centered(dst.Width(), dst.Height(), boardW, MinHeight)
	board := core.NewRect(area.X, area.Y+hudHeight, boardW, boardH)

	drawHUD(dst, area, snap, p)
	drawBoard(dst, board, snap.Grid, p)

	switch snap.State() {
	case session.StateGameOver:
		drawOverlay(dst, board, p,
			"GAME OVER",
			fmt.Sprintf("Max tile %d", snap.MaxTile),
			"r: new game  q: quit",
		)
	case session.StateWon:
		if snap.ShowWinBanner() {
			drawOverlay(dst, board, p,
				"YOU WIN!",
				fmt.Sprintf("%d reached", session.WinTile),
				"c: keep playing  r: new game",
			)
		}
	}
}

func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.Plain)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight), core.Plain)
}

func drawHUD(dst *core.Screen, area core.Rect, snap session.Snapshot, p palette) {
	dst.DrawText(area.X, area.Y, "2048", p.pen(accentPen))

	scores := fmt.Sprintf("SCORE %d  BEST %d", snap.Score, snap.BestScore)
	dst.DrawText(area.Right()-len(scores), area.Y, scores, core.Plain)

	if snap.LastGain > 0 {
		dst.DrawText(area.X, area.Y+1, "+"+strconv.Itoa(snap.LastGain), p.pen(accentPen))
	}
	moves := fmt.Sprintf("moves %d", snap.Moves)
	dst.DrawText(area.Right()-len(moves), area.Y+1, moves, p.pen(dimPen))
}

// drawBoard paints filled tiles when colour is on, boxed tiles otherwise.
func drawBoard(dst *core.Screen, board core.Rect, g grid.Grid, p palette) {
	if p.color {
		dst.FillRect(board, core.Cell{Rune: ' ', Pen: boardPen})
	}

	for row := range grid.Size {
		for col := range grid.Size {
			r := tileRect(board, row, col)
			v := g[row][col]

			label := "·"
			if v != 0 {
				label = strconv.FormatUint(uint64(v), 10)
			}

			pen := p.tile(v)
			if p.color {
				dst.FillRect(r, core.Cell{Rune: ' ', Pen: pen})
				if v == 0 {
					continue
				}
			} else {
				dst.DrawBox(r, core.Plain)
			}
			dst.DrawTextIn(r, r.Y+tileH/2, label, pen)
		}
	}
}

func tileRect(board core.Rect, row, col int) core.Rect {
	return core.NewRect(
		board.X+tileGap+col*(tileW+tileGap),
		board.Y+tileGap+row*(tileH+tileGap),
		tileW,
		tileH,
	)
}

// drawOverlay draws a framed message box centred on the board.
func drawOverlay(dst *core.Screen, board core.Rect, p palette, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	width += 4
	height := len(lines) + 2

	cx, cy := board.Center()
	box := core.NewRect(cx-width/2, cy-height/2, width, height)

	pen := p.pen(overlayPen)
	dst.FillRect(box, core.Cell{Rune: ' ', Pen: pen})
	dst.DrawBox(box, pen)
	for i, line := range lines {
		dst.DrawTextIn(box, box.Y+1+i, line, pen)
	}
}
