package game

import (
	"fmt"
	"math/rand"
)

type Board struct {
	rows, cols int // in number of cells
	numMines   int

	hLines [][]Line // (rows+1) x cols
	vLines [][]Line // rows x (cols+1)
	cells  [][]Cell
}

func newBoard(rows, cols int) *Board {
	board := &Board{
		rows:   rows,
		cols:   cols,
		hLines: newLineGrid(rows+1, cols),
		vLines: newLineGrid(rows, cols+1),
		cells:  make([][]Cell, rows),
	}

	for row := 0; row < rows; row++ {
		board.cells[row] = make([]Cell, cols)
		for col := 0; col < cols; col++ {
			board.cells[row][col] = Cell{
				pos:   CellPos{Row: row, Col: col},
				owner: NoOwner,
			}
		}
	}

	return board
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumSafeCells() int {
	return board.NumCells() - board.numMines
}

func (board *Board) CellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < board.rows && col < board.cols {
		return &board.cells[row][col]
	}
	return nil
}

// EachCell visits every cell in row-major order
func (board *Board) EachCell(visit func(*Cell)) {
	for row := range board.cells {
		for col := range board.cells[row] {
			visit(&board.cells[row][col])
		}
	}
}

func (board *Board) Valid(edge Edge) bool {
	return board.line(edge) != nil
}

func (board *Board) line(edge Edge) *Line {
	var grid [][]Line
	switch edge.Kind {
	case Horizontal:
		grid = board.hLines
	case Vertical:
		grid = board.vLines
	default:
		return nil
	}

	if edge.Row < 0 || edge.Row >= len(grid) {
		return nil
	}
	if edge.Col < 0 || edge.Col >= len(grid[edge.Row]) {
		return nil
	}
	return &grid[edge.Row][edge.Col]
}

// LineAt returns a copy of the line state, and false for an invalid edge
func (board *Board) LineAt(edge Edge) (Line, bool) {
	line := board.line(edge)
	if line == nil {
		return Line{Owner: NoOwner}, false
	}
	return *line, true
}

func (board *Board) IsDrawn(edge Edge) bool {
	line := board.line(edge)
	return line != nil && line.Drawn
}

func (board *Board) IsMineAdjacent(edge Edge) bool {
	line := board.line(edge)
	return line != nil && line.MineAdjacent
}

func (board *Board) IsFlashing(edge Edge) bool {
	line := board.line(edge)
	return line != nil && line.Flashing
}

// Edges calls visit for every edge of the board, horizontal edges first
func (board *Board) Edges(visit func(Edge, Line)) {
	for row := range board.hLines {
		for col, line := range board.hLines[row] {
			visit(H(row, col), line)
		}
	}
	for row := range board.vLines {
		for col, line := range board.vLines[row] {
			visit(V(row, col), line)
		}
	}
}

func (board *Board) NumEdges() int {
	return (board.rows+1)*board.cols + board.rows*(board.cols+1)
}

func (board *Board) isComplete(row, col int) bool {
	cell := board.CellAt(row, col)
	if cell == nil {
		return false
	}
	for _, edge := range cell.Edges() {
		if !board.IsDrawn(edge) {
			return false
		}
	}
	return true
}

// adjacentCells returns the (up to two) cells bordered by the edge
func (board *Board) adjacentCells(edge Edge) []*Cell {
	cells := make([]*Cell, 0, 2)
	add := func(row, col int) {
		if cell := board.CellAt(row, col); cell != nil {
			cells = append(cells, cell)
		}
	}

	switch edge.Kind {
	case Horizontal:
		add(edge.Row-1, edge.Col)
		add(edge.Row, edge.Col)
	case Vertical:
		add(edge.Row, edge.Col-1)
		add(edge.Row, edge.Col)
	}
	return cells
}

// PlaceMines clears any existing mines and marks count distinct cells as
// mined, picking uniformly at random and retrying on collision.
func (board *Board) PlaceMines(count int, rng *rand.Rand) {
	if count > board.NumCells() {
		count = board.NumCells()
	}
	if count < 0 {
		count = 0
	}

	board.EachCell(func(cell *Cell) {
		cell.isMine = false
	})
	board.numMines = 0

	for board.numMines < count {
		cell := board.CellAt(rng.Intn(board.rows), rng.Intn(board.cols))
		if !cell.isMine {
			cell.isMine = true
			board.numMines++
		}
	}

	board.updateMineAdjacentLines()
}

func (board *Board) setMine(row, col int, isMine bool) {
	cell := board.CellAt(row, col)
	if cell == nil || cell.isMine == isMine {
		return
	}
	cell.isMine = isMine
	if isMine {
		board.numMines++
	} else {
		board.numMines--
	}
	board.updateMineAdjacentLines()
}

func (board *Board) updateMineAdjacentLines() {
	board.Edges(func(edge Edge, _ Line) {
		board.line(edge).MineAdjacent = false
	})

	board.EachCell(func(cell *Cell) {
		if !cell.isMine {
			return
		}
		for _, edge := range cell.Edges() {
			board.line(edge).MineAdjacent = true
		}
	})
}

// MineAdjacentEdges lists every edge bordering a mined cell
func (board *Board) MineAdjacentEdges() []Edge {
	edges := make([]Edge, 0)
	board.Edges(func(edge Edge, line Line) {
		if line.MineAdjacent {
			edges = append(edges, edge)
		}
	})
	return edges
}

func (board *Board) allSafeCellsOwned() bool {
	owned := true
	board.EachCell(func(cell *Cell) {
		if !cell.isMine && !cell.IsOwned() {
			owned = false
		}
	})
	return owned
}

// Verify checks that every cell is complete exactly when it is owned
func (board *Board) Verify() error {
	var err error
	board.EachCell(func(cell *Cell) {
		if err != nil {
			return
		}
		complete := board.isComplete(cell.Row(), cell.Col())
		if complete != cell.IsOwned() {
			err = fmt.Errorf("%v: complete=%v owner=%d", cell, complete, cell.owner)
		}
	})
	return err
}
