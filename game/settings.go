package game

import (
	"fmt"
	"image/color"
)

type SettingField int

const (
	RowsField SettingField = iota
	ColsField
	MinesField
	PlayersField
)

var SettingFields = []SettingField{RowsField, ColsField, MinesField, PlayersField}

func (field SettingField) String() string {
	switch field {
	case RowsField:
		return "rows"
	case ColsField:
		return "cols"
	case MinesField:
		return "mines"
	case PlayersField:
		return "players"
	default:
		return fmt.Sprintf("field(%d)", int(field))
	}
}

// Settings holds the pending values edited on the settings screen. Nothing
// changes for a running game until Apply.
type Settings struct {
	rows, cols int
	numMines   int
	numPlayers int
	colors     []color.RGBA

	// Player whose color the picker is editing
	colorEdit int
}

func NewSettings(config Config) *Settings {
	config = config.Normalized()
	return &Settings{
		rows:       config.Rows,
		cols:       config.Cols,
		numMines:   config.NumMines,
		numPlayers: config.NumPlayers,
		colors:     append([]color.RGBA(nil), config.Colors...),
	}
}

func (settings *Settings) Value(field SettingField) int {
	switch field {
	case RowsField:
		return settings.rows
	case ColsField:
		return settings.cols
	case MinesField:
		return settings.numMines
	case PlayersField:
		return settings.numPlayers
	}
	return 0
}

// Adjust moves a field by delta, clamped to its range. Changing the board
// size re-clamps the mine count.
func (settings *Settings) Adjust(field SettingField, delta int) {
	switch field {
	case RowsField:
		settings.rows = clamp(settings.rows+delta, MinDimension, MaxDimension)
		settings.numMines = clamp(settings.numMines, 0, settings.MaxMines())
	case ColsField:
		settings.cols = clamp(settings.cols+delta, MinDimension, MaxDimension)
		settings.numMines = clamp(settings.numMines, 0, settings.MaxMines())
	case MinesField:
		settings.numMines = clamp(settings.numMines+delta, 0, settings.MaxMines())
	case PlayersField:
		settings.numPlayers = clamp(settings.numPlayers+delta, MinPlayers, MaxPlayers)
		if settings.colorEdit >= settings.numPlayers {
			settings.colorEdit = settings.numPlayers - 1
		}
	}
}

func (settings *Settings) MaxMines() int {
	return MaxMines(settings.rows, settings.cols)
}

func (settings *Settings) NumPlayers() int {
	return settings.numPlayers
}

// Color returns the pending color of a player, falling back to the default
// palette for slots never picked
func (settings *Settings) Color(player int) color.RGBA {
	if player >= 0 && player < len(settings.colors) {
		return settings.colors[player]
	}
	return defaultPlayerColor(player)
}

// SetColor records a color for player, growing the palette with defaults
// when the player has no slot yet
func (settings *Settings) SetColor(player int, c color.RGBA) error {
	if player < 0 || player >= MaxPlayers {
		return fmt.Errorf("set color for player %d: %w", player, ErrInvalidPlayer)
	}
	for len(settings.colors) <= player {
		settings.colors = append(settings.colors, defaultPlayerColor(len(settings.colors)))
	}
	settings.colors[player] = c
	return nil
}

func (settings *Settings) ColorEdit() int {
	return settings.colorEdit
}

func (settings *Settings) NextColorEdit() {
	settings.colorEdit = (settings.colorEdit + 1) % settings.numPlayers
}

func (settings *Settings) PrevColorEdit() {
	settings.colorEdit--
	if settings.colorEdit < 0 {
		settings.colorEdit = settings.numPlayers - 1
	}
}

// Config materializes the pending values
func (settings *Settings) Config() Config {
	config := Config{
		Rows:       settings.rows,
		Cols:       settings.cols,
		NumMines:   settings.numMines,
		NumPlayers: settings.numPlayers,
		Colors:     append([]color.RGBA(nil), settings.colors...),
	}
	return config.Normalized()
}

// Apply builds a fresh Session from the pending values
func (settings *Settings) Apply(seed int64) *Session {
	config := settings.Config()
	config.Seed = seed
	return NewSession(config)
}
