package game

import (
	"image/color"
	"math/rand"
	"time"
)

// Config holds the settings a Session is created from. It is passed by
// value; a running Session keeps its own copy.
type Config struct {
	Rows, Cols int
	NumMines   int
	NumPlayers int

	Colors []color.RGBA

	// Seed for mine placement; 0 picks one from the clock
	Seed int64
}

func DefaultConfig() Config {
	config := Config{
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		NumMines:   DefaultMines,
		NumPlayers: DefaultPlayers,
	}
	return config.Normalized()
}

// MaxMines is the most mines a rows x cols board accepts
func MaxMines(rows, cols int) int {
	return rows * cols / 2
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Normalized returns a copy with every field clamped into range and one
// color per player. Out-of-range values are never rejected.
func (config Config) Normalized() Config {
	config.Rows = clamp(config.Rows, MinDimension, MaxDimension)
	config.Cols = clamp(config.Cols, MinDimension, MaxDimension)
	config.NumMines = clamp(config.NumMines, 0, MaxMines(config.Rows, config.Cols))
	config.NumPlayers = clamp(config.NumPlayers, MinPlayers, MaxPlayers)

	colors := make([]color.RGBA, config.NumPlayers)
	for i := range colors {
		if i < len(config.Colors) {
			colors[i] = config.Colors[i]
		} else {
			colors[i] = defaultPlayerColor(i)
		}
	}
	config.Colors = colors

	return config
}

// seeded fills in a clock-based seed when none was given, so the session
// records the seed it actually played with
func (config Config) seeded() Config {
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return config
}

func (config Config) rand() *rand.Rand {
	return rand.New(rand.NewSource(config.Seed))
}
