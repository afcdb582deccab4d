package ui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/minedots/game"
)

const (
	boardTop  = 2
	boardLeft = 2
	// Screen columns per cell, dot included
	cellWidth = 4
	// Frames per blink period of flashing lines
	flashPeriod = 30
)

var (
	textStyle     = tcell.StyleDefault
	dimStyle      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle    = tcell.StyleDefault.Bold(true)
	selectedStyle = tcell.StyleDefault.Reverse(true)
	mineStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	cursorStyle   = tcell.StyleDefault.Background(tcell.ColorDarkCyan)
	explodedStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
)

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func playerStyle(player game.Player) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(player.Color))
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Draw renders the current controller state
func (view *View) Draw(screen tcell.Screen) {
	screen.Clear()
	drawText(screen, boardLeft, 0, titleStyle, "Mined Dots and Boxes")

	switch {
	case view.controller.State() == game.Configuring && view.controller.IsPickingColor():
		view.drawPicker(screen)
	case view.controller.State() == game.Configuring:
		view.drawSettings(screen)
	default:
		view.clampCursor()
		view.drawBoard(screen)
	}
}

func (view *View) drawSettings(screen tcell.Screen) {
	settings := view.controller.Settings()
	y := boardTop

	for i, field := range game.SettingFields {
		style := textStyle
		if i == view.field {
			style = selectedStyle
		}
		drawText(screen, boardLeft, y, style, fmt.Sprintf("%-8s < %2d >", field, settings.Value(field)))
		y++
	}
	y++

	x := drawText(screen, boardLeft, y, textStyle, "colors  ")
	for player := 0; player < settings.NumPlayers(); player++ {
		style := tcell.StyleDefault.Foreground(tcellColor(settings.Color(player)))
		x = drawText(screen, x, y, style, fmt.Sprintf("P%d ", player+1))
	}
	y += 2

	drawText(screen, boardLeft, y, dimStyle, "up/down select  left/right change  c colors  enter start  q quit")
}

func (view *View) drawPicker(screen tcell.Screen) {
	settings := view.controller.Settings()
	player := settings.ColorEdit()
	current := settings.Color(player)

	style := tcell.StyleDefault.Foreground(tcellColor(current))
	drawText(screen, boardLeft, boardTop, style, fmt.Sprintf("Select color for Player %d: %s", player+1, game.ColorName(current)))

	y := boardTop + 2
	for _, named := range game.Palette {
		entryStyle := tcell.StyleDefault.Foreground(tcellColor(named.Color))
		marker := "  "
		if named.Color == current {
			marker = "> "
			entryStyle = entryStyle.Reverse(true)
		}
		drawText(screen, boardLeft, y, textStyle, marker)
		drawText(screen, boardLeft+2, y, entryStyle, named.Name)
		y++
	}
	y++

	drawText(screen, boardLeft, y, dimStyle, "left/right player  up/down color  enter done")
}

func (view *View) lineStyle(session *game.Session, edge game.Edge, line game.Line) tcell.Style {
	style := dimStyle
	if line.Drawn && line.Owner != game.NoOwner {
		style = playerStyle(session.Player(line.Owner))
	}
	if line.Drawn && line.Flashing && view.frame%flashPeriod < flashPeriod/2 {
		style = style.Bold(true).Reverse(true)
	}
	if !line.Drawn && line.MineAdjacent && view.controller.ShowMines() {
		style = mineStyle
	}
	if view.isCursor(edge) {
		style = style.Background(tcell.ColorDarkCyan)
	}
	return style
}

func (view *View) isCursor(edge game.Edge) bool {
	cursor, ok := view.CursorEdge()
	return ok && cursor == edge && view.controller.State() == game.Playing
}

func (view *View) drawBoard(screen tcell.Screen) {
	session := view.controller.Session()
	board := session.Board()

	for y := 0; y <= 2*board.Rows(); y++ {
		screenY := boardTop + y
		for x := 0; x <= 2*board.Cols(); x++ {
			screenX := boardLeft + (x/2)*cellWidth

			switch {
			case y%2 == 0 && x%2 == 0:
				style := textStyle
				if y == view.cursorY && x == view.cursorX {
					style = cursorStyle
				}
				screen.SetContent(screenX, screenY, '•', nil, style)

			case y%2 == 0:
				edge := game.H(y/2, x/2)
				line, _ := board.LineAt(edge)
				glyph := ' '
				if line.Drawn {
					glyph = '─'
				} else if view.isCursor(edge) {
					glyph = '·'
				}
				style := view.lineStyle(session, edge, line)
				for i := 1; i < cellWidth; i++ {
					screen.SetContent(screenX+i, screenY, glyph, nil, style)
				}

			case x%2 == 0:
				edge := game.V(y/2, x/2)
				line, _ := board.LineAt(edge)
				glyph := ' '
				if line.Drawn {
					glyph = '│'
				} else if view.isCursor(edge) {
					glyph = '·'
				}
				screen.SetContent(screenX, screenY, glyph, nil, view.lineStyle(session, edge, line))

			default:
				view.drawCell(screen, session, board.CellAt(y/2, x/2), screenX+1, screenY)
			}
		}
	}

	view.drawStatus(screen, session, boardTop+2*board.Rows()+2)
}

func (view *View) drawCell(screen tcell.Screen, session *game.Session, cell *game.Cell, x, y int) {
	switch {
	case cell.IsExploded():
		drawText(screen, x, y, explodedStyle, " X ")
	case cell.IsOwned():
		player := session.Player(cell.Owner())
		style := tcell.StyleDefault.Background(tcellColor(player.Color)).Foreground(tcell.ColorBlack)
		drawText(screen, x, y, style, fmt.Sprintf(" %d ", cell.Owner()+1))
	case cell.IsMine() && view.controller.ShowMines():
		drawText(screen, x, y, mineStyle, " * ")
	}
}

func (view *View) drawStatus(screen tcell.Screen, session *game.Session, y int) {
	for _, player := range session.Players() {
		marker := "  "
		if player.Index == session.Current() && !session.IsOver() {
			marker = "> "
		}
		status := ""
		if !player.Alive {
			status = "  BOOM"
		}
		drawText(screen, boardLeft, y, playerStyle(player), fmt.Sprintf("%sPlayer %d: %d%s", marker, player.Index+1, player.Score, status))
		y++
	}
	y++

	if session.IsOver() {
		result := "Draw!"
		if winner := session.Winner(); winner != game.NoWinner {
			result = fmt.Sprintf("Player %d wins!", winner+1)
		}
		drawText(screen, boardLeft, y, titleStyle, "Game Over - "+result)
		drawText(screen, boardLeft, y+1, dimStyle, "r restart  esc settings  q quit")
		return
	}

	help := "arrows move  space draw  d mines  q quit"
	if view.controller.ShowMines() {
		help = fmt.Sprintf("%s  [%d mines shown]", help, session.Board().NumMines())
	}
	drawText(screen, boardLeft, y, dimStyle, help)
}
