package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Edge addresses a line between two adjacent dots. Horizontal edges range
// over (rows+1) x cols, vertical edges over rows x (cols+1).
type Edge struct {
	Kind     EdgeKind
	Row, Col int
}

func H(row, col int) Edge {
	return Edge{Kind: Horizontal, Row: row, Col: col}
}

func V(row, col int) Edge {
	return Edge{Kind: Vertical, Row: row, Col: col}
}

func (edge Edge) String() string {
	return fmt.Sprintf("%s %d %d", edge.Kind, edge.Row, edge.Col)
}

// ParseEdge reads the "h R C" / "v R C" form produced by String. Commas
// may be used in place of spaces.
func ParseEdge(in string) (Edge, error) {
	fields := strings.Fields(strings.ReplaceAll(in, ",", " "))
	if len(fields) != 3 {
		return Edge{}, fmt.Errorf("parse edge %q: expected kind, row and col", in)
	}

	var edge Edge
	switch strings.ToLower(fields[0]) {
	case "h":
		edge.Kind = Horizontal
	case "v":
		edge.Kind = Vertical
	default:
		return Edge{}, fmt.Errorf("parse edge %q: unknown kind %q", in, fields[0])
	}

	var err error
	if edge.Row, err = strconv.Atoi(fields[1]); err != nil {
		return Edge{}, fmt.Errorf("parse edge %q: %w", in, err)
	}
	if edge.Col, err = strconv.Atoi(fields[2]); err != nil {
		return Edge{}, fmt.Errorf("parse edge %q: %w", in, err)
	}
	return edge, nil
}

// Line is the state of one edge on the board
type Line struct {
	Drawn bool
	Owner int

	// Borders at least one mined cell
	MineAdjacent bool
	// Drawn next to a mine or closed a cell; blinked by the presentation
	Flashing bool
}

func newLineGrid(rows, cols int) [][]Line {
	grid := make([][]Line, rows)
	for row := range grid {
		grid[row] = make([]Line, cols)
		for col := range grid[row] {
			grid[row][col].Owner = NoOwner
		}
	}
	return grid
}
