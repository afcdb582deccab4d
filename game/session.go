package game

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/they4kman/minedots/util/collections"
)

type Player struct {
	Index int
	Alive bool
	// Cells owned, mined or not
	Score int
	Color color.RGBA
}

// ClaimResult describes the outcome of a single claimed edge
type ClaimResult struct {
	Edge   Edge
	Player int

	// Cells completed by this edge, in adjacency order
	Completed []CellPos
	// The acting player completed a mined cell and is out
	Eliminated bool

	// Player to move after this claim
	Next     int
	GameOver bool
	Winner   int
}

func (result ClaimResult) CompletedAny() bool {
	return len(result.Completed) > 0
}

// Session is a single game, from the first edge to game over. Restarting
// or reconfiguring replaces the Session wholesale.
type Session struct {
	id     uuid.UUID
	config Config
	board  *Board
	rand   *rand.Rand

	players []Player
	current int

	over   bool
	winner int

	eliminated       collections.Set[int]
	eliminationOrder []int
	exploded         collections.Set[CellPos]
}

// NewSession creates a board from config, places its mines and seats the
// players, player 0 to move
func NewSession(config Config) *Session {
	config = config.Normalized()
	session := newSession(config, newBoard(config.Rows, config.Cols))
	session.board.PlaceMines(config.NumMines, session.rand)

	log.WithFields(log.Fields{
		"session": session.id,
		"rows":    config.Rows,
		"cols":    config.Cols,
		"mines":   config.NumMines,
		"players": config.NumPlayers,
	}).Debug("new session")

	return session
}

func newSession(config Config, board *Board) *Session {
	config = config.seeded()
	session := &Session{
		id:         uuid.New(),
		config:     config,
		board:      board,
		rand:       config.rand(),
		players:    make([]Player, config.NumPlayers),
		winner:     NoWinner,
		eliminated: make(collections.Set[int]),
		exploded:   make(collections.Set[CellPos]),
	}

	for i := range session.players {
		session.players[i] = Player{
			Index: i,
			Alive: true,
			Color: config.Colors[i],
		}
	}

	return session
}

func (session *Session) ID() uuid.UUID {
	return session.id
}

func (session *Session) Config() Config {
	return session.config
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) NumPlayers() int {
	return len(session.players)
}

func (session *Session) Player(i int) Player {
	return session.players[i]
}

func (session *Session) Players() []Player {
	return append([]Player(nil), session.players...)
}

func (session *Session) Current() int {
	return session.current
}

func (session *Session) IsOver() bool {
	return session.over
}

// Winner is the winning player index, or NoWinner for a tie or while the
// game is still going
func (session *Session) Winner() int {
	return session.winner
}

// Alive lists the players still in the game in seat order
func (session *Session) Alive() []int {
	seated := collections.NewSet[int]()
	for i := range session.players {
		seated.Add(i)
	}
	return collections.Sorted(seated.Difference(session.eliminated))
}

func (session *Session) NumAlive() int {
	return len(session.players) - len(session.eliminated)
}

func (session *Session) IsEliminated(player int) bool {
	return session.eliminated.Contains(player)
}

// Eliminated lists eliminated players in the order they hit a mine
func (session *Session) Eliminated() []int {
	return append([]int(nil), session.eliminationOrder...)
}

func (session *Session) IsExploded(pos CellPos) bool {
	return session.exploded.Contains(pos)
}

// NextSeed draws a seed for the next game from this session's rng
func (session *Session) NextSeed() int64 {
	return session.rand.Int63()
}

// ClaimCurrent claims edge on behalf of the player to move
func (session *Session) ClaimCurrent(edge Edge) (ClaimResult, error) {
	return session.Claim(edge, session.current)
}

// Claim draws edge for player. Completing a cell keeps the turn unless the
// cell was mined; drawing without completing passes the turn to the next
// living player. Errors leave the session untouched.
func (session *Session) Claim(edge Edge, player int) (ClaimResult, error) {
	result := ClaimResult{Edge: edge, Player: player, Next: session.current, Winner: session.winner}

	if session.over {
		return result, fmt.Errorf("claim %v: %w", edge, ErrGameOver)
	}
	if player < 0 || player >= len(session.players) {
		return result, fmt.Errorf("claim %v by player %d: %w", edge, player, ErrInvalidPlayer)
	}
	if player != session.current {
		return result, fmt.Errorf("claim %v by player %d: %w", edge, player, ErrNotYourTurn)
	}

	line := session.board.line(edge)
	if line == nil {
		return result, fmt.Errorf("claim %v: %w", edge, ErrInvalidEdge)
	}
	if line.Drawn {
		return result, fmt.Errorf("claim %v: %w", edge, ErrEdgeDrawn)
	}

	line.Drawn = true
	line.Owner = player
	if line.MineAdjacent {
		line.Flashing = true
	}

	for _, cell := range session.board.adjacentCells(edge) {
		if !session.board.isComplete(cell.Row(), cell.Col()) {
			continue
		}

		cell.owner = player
		session.players[player].Score++
		result.Completed = append(result.Completed, cell.pos)

		if cell.isMine {
			cell.exploded = true
			session.exploded.Add(cell.pos)
			session.eliminate(player)
			result.Eliminated = true
		}
	}

	if result.CompletedAny() {
		line.Flashing = true
	}

	if !result.CompletedAny() || result.Eliminated {
		session.advance()
	}
	session.checkGameOver()

	result.Next = session.current
	result.GameOver = session.over
	result.Winner = session.winner
	return result, nil
}

func (session *Session) eliminate(player int) {
	if session.eliminated.Contains(player) {
		return
	}
	session.players[player].Alive = false
	session.eliminated.Add(player)
	session.eliminationOrder = append(session.eliminationOrder, player)

	log.WithFields(log.Fields{
		"session": session.id,
		"player":  player,
	}).Info("player hit a mine")
}

// advance passes the turn to the next living player, ending the game when
// nobody is left
func (session *Session) advance() {
	n := len(session.players)
	for i := 1; i <= n; i++ {
		next := (session.current + i) % n
		if session.players[next].Alive {
			session.current = next
			return
		}
	}
	session.endGame()
}

func (session *Session) checkGameOver() {
	if session.over {
		return
	}
	safeCellsDone := session.board.NumSafeCells() > 0 && session.board.allSafeCellsOwned()
	if safeCellsDone || session.NumAlive() <= 1 {
		session.endGame()
	}
}

func (session *Session) endGame() {
	session.over = true
	session.winner = session.determineWinner()

	log.WithFields(log.Fields{
		"session": session.id,
		"winner":  session.winner,
	}).Info("game over")
}

// determineWinner picks the unique top scorer among living players.
// Eliminated players never win, whatever they scored.
func (session *Session) determineWinner() int {
	maxScore := -1
	winner := NoWinner
	tie := false

	for _, player := range session.players {
		if !player.Alive {
			continue
		}
		switch {
		case player.Score > maxScore:
			maxScore = player.Score
			winner = player.Index
			tie = false
		case player.Score == maxScore:
			tie = true
		}
	}

	if tie {
		return NoWinner
	}
	return winner
}
