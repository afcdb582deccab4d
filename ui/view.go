// Package ui is a terminal front end for the game Controller: it renders
// the controller state with tcell and turns key presses into actions.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/minedots/game"
)

type View struct {
	controller *game.Controller

	// Cursor on the dot lattice: (2*rows+1) x (2*cols+1)
	cursorY, cursorX int

	// Selected row of the settings screen
	field int

	frame int
	quit  bool
}

func NewView(controller *game.Controller) *View {
	return &View{
		controller: controller,
		cursorY:    0,
		cursorX:    1,
	}
}

func (view *View) Quit() bool {
	return view.quit
}

// CursorEdge returns the edge under the cursor, false when the cursor rests
// on a dot or a cell
func (view *View) CursorEdge() (game.Edge, bool) {
	switch {
	case view.cursorY%2 == 0 && view.cursorX%2 == 1:
		return game.H(view.cursorY/2, view.cursorX/2), true
	case view.cursorY%2 == 1 && view.cursorX%2 == 0:
		return game.V(view.cursorY/2, view.cursorX/2), true
	default:
		return game.Edge{}, false
	}
}

func (view *View) moveCursor(dy, dx int) {
	session := view.controller.Session()
	if session == nil {
		return
	}
	board := session.Board()

	y, x := view.cursorY+dy, view.cursorX+dx
	if y < 0 || y > 2*board.Rows() || x < 0 || x > 2*board.Cols() {
		return
	}
	view.cursorY, view.cursorX = y, x
}

// clampCursor keeps the cursor on the board after a restart with a
// smaller size
func (view *View) clampCursor() {
	session := view.controller.Session()
	if session == nil {
		return
	}
	board := session.Board()
	if view.cursorY > 2*board.Rows() {
		view.cursorY = 2 * board.Rows()
	}
	if view.cursorX > 2*board.Cols() {
		view.cursorX = 2 * board.Cols()
	}
}

func (view *View) HandleEvent(ev tcell.Event) {
	if key, ok := ev.(*tcell.EventKey); ok {
		view.HandleKey(key)
	}
}

// HandleKey maps a key press to cursor movement or controller actions
func (view *View) HandleKey(key *tcell.EventKey) {
	if key.Key() == tcell.KeyCtrlC || (key.Key() == tcell.KeyRune && key.Rune() == 'q') {
		view.quit = true
		return
	}
	if key.Key() == tcell.KeyRune && key.Rune() == 'd' {
		view.controller.Dispatch(game.Simple(game.ToggleDebugMines))
		return
	}

	switch view.controller.State() {
	case game.Configuring:
		if view.controller.IsPickingColor() {
			view.handlePickerKey(key)
		} else {
			view.handleSettingsKey(key)
		}
	default:
		view.handleBoardKey(key)
	}
}

func direction(key *tcell.EventKey) (dy, dx int) {
	switch key.Key() {
	case tcell.KeyUp:
		return -1, 0
	case tcell.KeyDown:
		return 1, 0
	case tcell.KeyLeft:
		return 0, -1
	case tcell.KeyRight:
		return 0, 1
	case tcell.KeyRune:
		switch key.Rune() {
		case 'k':
			return -1, 0
		case 'j':
			return 1, 0
		case 'h':
			return 0, -1
		case 'l':
			return 0, 1
		}
	}
	return 0, 0
}

func isConfirm(key *tcell.EventKey) bool {
	return key.Key() == tcell.KeyEnter || (key.Key() == tcell.KeyRune && key.Rune() == ' ')
}

func (view *View) handleBoardKey(key *tcell.EventKey) {
	if dy, dx := direction(key); dy != 0 || dx != 0 {
		view.moveCursor(dy, dx)
		return
	}

	switch {
	case isConfirm(key):
		if edge, ok := view.CursorEdge(); ok {
			view.controller.Dispatch(game.Claim(edge))
		}
	case key.Key() == tcell.KeyEscape:
		view.controller.Dispatch(game.Simple(game.OpenSettings))
	case key.Key() == tcell.KeyRune && key.Rune() == 'r':
		view.controller.Dispatch(game.Simple(game.Restart))
	}
}

func (view *View) handleSettingsKey(key *tcell.EventKey) {
	dy, dx := direction(key)
	switch {
	case dy != 0:
		view.field = (view.field + dy + len(game.SettingFields)) % len(game.SettingFields)
	case dx != 0:
		view.controller.Dispatch(game.Adjust(game.SettingFields[view.field], dx))
	case key.Key() == tcell.KeyRune && key.Rune() == 'c':
		view.controller.Dispatch(game.Simple(game.OpenColorPicker))
	case isConfirm(key):
		view.controller.Dispatch(game.Simple(game.ApplySettings))
	}
}

func (view *View) handlePickerKey(key *tcell.EventKey) {
	settings := view.controller.Settings()
	dy, dx := direction(key)

	switch {
	case dx < 0:
		view.controller.Dispatch(game.Simple(game.PrevColorEdit))
	case dx > 0:
		view.controller.Dispatch(game.Simple(game.NextColorEdit))
	case dy != 0:
		player := settings.ColorEdit()
		i := game.PaletteIndex(settings.Color(player))
		if i < 0 {
			i = 0
		} else {
			i = (i + dy + len(game.Palette)) % len(game.Palette)
		}
		view.controller.Dispatch(game.Pick(player, game.Palette[i].Color))
	case isConfirm(key), key.Key() == tcell.KeyEscape:
		view.controller.Dispatch(game.Simple(game.CloseColorPicker))
	}
}
