package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 5, config.Rows)
	assert.Equal(t, 5, config.Cols)
	assert.Equal(t, 3, config.NumMines)
	assert.Equal(t, 2, config.NumPlayers)
	assert.Equal(t, PlayerColors[:2], config.Colors)
}

func TestConfigNormalized(t *testing.T) {
	config := Config{Rows: 1, Cols: 40, NumMines: 100, NumPlayers: 12}.Normalized()

	assert.Equal(t, MinDimension, config.Rows)
	assert.Equal(t, MaxDimension, config.Cols)
	assert.Equal(t, 10, config.NumMines)
	assert.Equal(t, MaxPlayers, config.NumPlayers)
	assert.Len(t, config.Colors, MaxPlayers)

	config = Config{Rows: 3, Cols: 3, NumMines: -2, NumPlayers: 0, Colors: []color.RGBA{colornames.Gold}}.Normalized()
	assert.Zero(t, config.NumMines)
	assert.Equal(t, MinPlayers, config.NumPlayers)
	assert.Equal(t, colornames.Gold, config.Colors[0])
	assert.Equal(t, PlayerColors[1], config.Colors[1])
}

func TestSettingsAdjustBounds(t *testing.T) {
	settings := NewSettings(DefaultConfig())

	settings.Adjust(RowsField, 20)
	assert.Equal(t, MaxDimension, settings.Value(RowsField))
	settings.Adjust(ColsField, -20)
	assert.Equal(t, MinDimension, settings.Value(ColsField))
	settings.Adjust(PlayersField, 1)
	assert.Equal(t, 3, settings.Value(PlayersField))
	settings.Adjust(PlayersField, 10)
	assert.Equal(t, MaxPlayers, settings.Value(PlayersField))
	settings.Adjust(PlayersField, -10)
	assert.Equal(t, MinPlayers, settings.Value(PlayersField))
	settings.Adjust(MinesField, -10)
	assert.Zero(t, settings.Value(MinesField))
}

func TestSettingsReclampMines(t *testing.T) {
	settings := NewSettings(Config{Rows: 6, Cols: 6, NumMines: 18, NumPlayers: 2})
	require.Equal(t, 18, settings.Value(MinesField))

	settings.Adjust(RowsField, -4)
	assert.Equal(t, 2, settings.Value(RowsField))
	assert.Equal(t, 6, settings.Value(MinesField))

	settings.Adjust(ColsField, -4)
	assert.Equal(t, 2, settings.Value(MinesField))

	settings.Adjust(RowsField, 8)
	assert.Equal(t, 2, settings.Value(MinesField), "growing never adds mines")

	settings.Adjust(MinesField, 100)
	assert.Equal(t, settings.MaxMines(), settings.Value(MinesField))
	assert.Equal(t, 10, settings.MaxMines())
}

func TestSettingsColors(t *testing.T) {
	settings := NewSettings(DefaultConfig())

	require.NoError(t, settings.SetColor(5, colornames.Gold))
	assert.Equal(t, colornames.Gold, settings.Color(5))
	assert.Equal(t, PlayerColors[3], settings.Color(3), "gap filled with defaults")

	assert.ErrorIs(t, settings.SetColor(MaxPlayers, colornames.Gold), ErrInvalidPlayer)
	assert.ErrorIs(t, settings.SetColor(-1, colornames.Gold), ErrInvalidPlayer)

	config := settings.Config()
	assert.Len(t, config.Colors, 2, "only the pending player count is materialized")

	settings.Adjust(PlayersField, 4)
	config = settings.Config()
	require.Len(t, config.Colors, 6)
	assert.Equal(t, colornames.Gold, config.Colors[5])
}

func TestSettingsColorEdit(t *testing.T) {
	settings := NewSettings(Config{Rows: 3, Cols: 3, NumPlayers: 3})

	settings.PrevColorEdit()
	assert.Equal(t, 2, settings.ColorEdit())
	settings.NextColorEdit()
	assert.Equal(t, 0, settings.ColorEdit())
	settings.NextColorEdit()
	settings.NextColorEdit()
	assert.Equal(t, 2, settings.ColorEdit())

	settings.Adjust(PlayersField, -1)
	assert.Equal(t, 1, settings.ColorEdit(), "cursor follows the player count")
}

func TestSettingsApply(t *testing.T) {
	settings := NewSettings(DefaultConfig())
	settings.Adjust(RowsField, -1)
	settings.Adjust(PlayersField, 2)

	session := settings.Apply(77)
	assert.Equal(t, 4, session.Board().Rows())
	assert.Equal(t, 5, session.Board().Cols())
	assert.Equal(t, 4, session.NumPlayers())
	assert.Equal(t, int64(77), session.Config().Seed)

	// Later edits do not reach the running session
	settings.Adjust(ColsField, 3)
	assert.Equal(t, 5, session.Board().Cols())
}

func TestPalette(t *testing.T) {
	for _, c := range PlayerColors {
		assert.GreaterOrEqual(t, PaletteIndex(c), 0, "default colors are pickable")
	}
	assert.Equal(t, "gold", ColorName(colornames.Gold))
	assert.Equal(t, -1, PaletteIndex(colornames.Aliceblue))
	assert.Equal(t, "aliceblue", ColorName(colornames.Aliceblue))
}
