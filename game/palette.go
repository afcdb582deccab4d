package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

type NamedColor struct {
	Name  string
	Color color.RGBA
}

// Default line colors, one per player slot
var PlayerColors = []color.RGBA{
	colornames.Red,
	colornames.Blue,
	colornames.Green,
	colornames.Orange,
	colornames.Purple,
	colornames.Teal,
	colornames.Olive,
	colornames.Magenta,
}

// Palette offered by the color picker
var Palette = []NamedColor{
	{"red", colornames.Red},
	{"crimson", colornames.Crimson},
	{"orange", colornames.Orange},
	{"gold", colornames.Gold},
	{"olive", colornames.Olive},
	{"green", colornames.Green},
	{"lime", colornames.Limegreen},
	{"teal", colornames.Teal},
	{"cyan", colornames.Darkcyan},
	{"blue", colornames.Blue},
	{"navy", colornames.Navy},
	{"purple", colornames.Purple},
	{"magenta", colornames.Magenta},
	{"pink", colornames.Hotpink},
	{"brown", colornames.Saddlebrown},
	{"gray", colornames.Dimgray},
}

func defaultPlayerColor(player int) color.RGBA {
	return PlayerColors[player%len(PlayerColors)]
}

// PaletteIndex returns the position of c in Palette, or -1
func PaletteIndex(c color.RGBA) int {
	for i, named := range Palette {
		if named.Color == c {
			return i
		}
	}
	return -1
}

func ColorName(c color.RGBA) string {
	if i := PaletteIndex(c); i >= 0 {
		return Palette[i].Name
	}
	for name, named := range colornames.Map {
		if named == c {
			return name
		}
	}
	return "custom"
}
