package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// SessionSnapshot captures a session as a text grid of (2*rows+1) lines of
// (2*cols+1) characters:
//
//	'+'            dot
//	' '            undrawn line
//	'0'..'7'       line drawn by that player
//	'-', '|'       drawn line of unknown owner
//	'.'            empty cell
//	'm'            empty mined cell
//	'0'..'7'       cell owned by that player
//	'a'..'h'       mined cell exploded by player 0..7
//
// Scores, alive flags and exploded cells are derived from the grid. The grid
// does not record which line closed a cell, so a rebuilt session flashes
// only the drawn lines bordering a mine.
type SessionSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Players         int    `yaml:"players"`
	Current         int    `yaml:"current"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *SessionSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*SessionSnapshot, error) {
	var snapshot SessionSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

func (session *Session) Snapshot() *SessionSnapshot {
	return &SessionSnapshot{
		Seed:            session.config.Seed,
		Players:         len(session.players),
		Current:         session.current,
		SerializedBoard: session.board.String(),
	}
}

func ownerRune(owner int, unknown rune) rune {
	if owner == NoOwner {
		return unknown
	}
	return rune('0' + owner)
}

// String renders the board grid in snapshot form
func (board *Board) String() string {
	var out strings.Builder

	for row := 0; row <= board.rows; row++ {
		for col := 0; col < board.cols; col++ {
			out.WriteRune('+')
			line := board.hLines[row][col]
			if line.Drawn {
				out.WriteRune(ownerRune(line.Owner, '-'))
			} else {
				out.WriteRune(' ')
			}
		}
		out.WriteString("+\n")

		if row == board.rows {
			break
		}

		for col := 0; col <= board.cols; col++ {
			line := board.vLines[row][col]
			if line.Drawn {
				out.WriteRune(ownerRune(line.Owner, '|'))
			} else {
				out.WriteRune(' ')
			}
			if col == board.cols {
				break
			}
			out.WriteRune(board.cells[row][col].serialize())
		}
		out.WriteRune('\n')
	}

	return out.String()
}

func (cell *Cell) serialize() rune {
	switch {
	case cell.isMine && cell.IsOwned():
		return rune('a' + cell.owner)
	case cell.isMine:
		return 'm'
	case cell.IsOwned():
		return rune('0' + cell.owner)
	default:
		return '.'
	}
}

func (cell *Cell) deserialize(c rune, numPlayers int) bool {
	switch {
	case c == '.':
	case c == 'm':
		cell.isMine = true
	case c >= '0' && c < rune('0'+numPlayers):
		cell.owner = int(c - '0')
	case c >= 'a' && c < rune('a'+numPlayers):
		cell.isMine = true
		cell.exploded = true
		cell.owner = int(c - 'a')
	default:
		return false
	}
	return true
}

func (line *Line) deserialize(c rune, drawnUnknown rune, numPlayers int) bool {
	switch {
	case c == ' ':
	case c == drawnUnknown:
		line.Drawn = true
	case c >= '0' && c < rune('0'+numPlayers):
		line.Drawn = true
		line.Owner = int(c - '0')
	default:
		return false
	}
	return true
}

// Session rebuilds the session the snapshot describes
func (snapshot *SessionSnapshot) Session() (*Session, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	if len(rows) < 3 || len(rows)%2 == 0 {
		return nil, fmt.Errorf("%w: board needs an odd number of at least 3 lines, got %d", ErrInvalidSnapshot, len(rows))
	}
	width := len(strings.TrimRight(rows[0], " "))
	if width < 3 || width%2 == 0 {
		return nil, fmt.Errorf("%w: board lines need an odd width of at least 3, got %d", ErrInvalidSnapshot, width)
	}
	if snapshot.Players < MinPlayers || snapshot.Players > MaxPlayers {
		return nil, fmt.Errorf("%w: %d players", ErrInvalidSnapshot, snapshot.Players)
	}

	config := Config{
		Rows:       (len(rows) - 1) / 2,
		Cols:       (width - 1) / 2,
		NumPlayers: snapshot.Players,
		Seed:       snapshot.Seed,
	}
	// Dimensions come from the grid, which may be outside the settings range
	normalized := config.Normalized()
	config.Colors = normalized.Colors

	board := newBoard(config.Rows, config.Cols)
	for y, text := range rows {
		if len(text) > width {
			return nil, fmt.Errorf("%w: line %d is wider than %d", ErrInvalidSnapshot, y, width)
		}
		text += strings.Repeat(" ", width-len(text))

		for x, c := range text {
			ok := true
			switch {
			case y%2 == 0 && x%2 == 0:
				ok = c == '+'
			case y%2 == 0:
				ok = board.hLines[y/2][x/2].deserialize(c, '-', config.NumPlayers)
			case x%2 == 0:
				ok = board.vLines[y/2][x/2].deserialize(c, '|', config.NumPlayers)
			default:
				cell := board.CellAt(y/2, x/2)
				ok = cell.deserialize(c, config.NumPlayers)
				if cell.isMine {
					board.numMines++
				}
			}
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at line %d column %d", ErrInvalidSnapshot, c, y, x)
			}
		}
	}
	board.updateMineAdjacentLines()
	board.Edges(func(edge Edge, line Line) {
		if line.Drawn && line.MineAdjacent {
			board.line(edge).Flashing = true
		}
	})

	if err := board.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	config.NumMines = board.numMines
	session := newSession(config, board)
	board.EachCell(func(cell *Cell) {
		if !cell.IsOwned() {
			return
		}
		session.players[cell.owner].Score++
		if cell.exploded {
			session.exploded.Add(cell.pos)
			session.eliminate(cell.owner)
		}
	})

	if snapshot.Current < 0 || snapshot.Current >= config.NumPlayers {
		return nil, fmt.Errorf("%w: current player %d", ErrInvalidSnapshot, snapshot.Current)
	}
	session.current = snapshot.Current
	session.checkGameOver()
	if !session.over && !session.players[session.current].Alive {
		return nil, fmt.Errorf("%w: current player %d is eliminated", ErrInvalidSnapshot, snapshot.Current)
	}

	return session, nil
}
