package game

import "errors"

var (
	ErrInvalidEdge       = errors.New("edge out of range")
	ErrEdgeDrawn         = errors.New("edge already drawn")
	ErrGameOver          = errors.New("game is over")
	ErrNotYourTurn       = errors.New("not the player's turn")
	ErrInvalidTransition = errors.New("action not allowed in current state")
	ErrInvalidPlayer     = errors.New("no such player")
	ErrInvalidSnapshot   = errors.New("invalid snapshot")
)
