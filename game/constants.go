package game

type EdgeKind int
type State int

const (
	Horizontal EdgeKind = iota
	Vertical
)

const (
	Configuring State = iota
	Playing
	GameOver
)

const (
	// No owner, for lines and cells alike
	NoOwner = -1
	// Winner of a tied game, or of a game nobody survived
	NoWinner = -1
)

const (
	MinDimension = 2
	MaxDimension = 10
	MinPlayers   = 2
	MaxPlayers   = 8
)

const (
	DefaultRows    = 5
	DefaultCols    = 5
	DefaultMines   = 3
	DefaultPlayers = 2
)

func (kind EdgeKind) String() string {
	switch kind {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	default:
		return "?"
	}
}

func (state State) String() string {
	switch state {
	case Configuring:
		return "configuring"
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}
