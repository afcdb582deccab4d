package game

import "fmt"

type CellPos struct {
	Row, Col int
}

func (pos CellPos) String() string {
	return fmt.Sprintf("Cell(%d, %d)", pos.Row, pos.Col)
}

type Cell struct {
	pos CellPos

	owner    int
	isMine   bool
	exploded bool
}

func (cell *Cell) String() string {
	return cell.pos.String()
}

func (cell *Cell) Pos() CellPos {
	return cell.pos
}

func (cell *Cell) Row() int {
	return cell.pos.Row
}

func (cell *Cell) Col() int {
	return cell.pos.Col
}

func (cell *Cell) Owner() int {
	return cell.owner
}

func (cell *Cell) IsOwned() bool {
	return cell.owner != NoOwner
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsExploded() bool {
	return cell.exploded
}

// Edges returns the four lines bounding the cell: top, bottom, left, right
func (cell *Cell) Edges() [4]Edge {
	row, col := cell.pos.Row, cell.pos.Col
	return [4]Edge{
		H(row, col),
		H(row+1, col),
		V(row, col),
		V(row, col+1),
	}
}
