package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSession builds a session on a board of any size with mines at fixed
// positions
func testSession(rows, cols, players int, mines ...CellPos) *Session {
	config := Config{Rows: rows, Cols: cols, NumPlayers: players, Seed: 1}
	config.Colors = Config{NumPlayers: players}.Normalized().Colors

	board := newBoard(rows, cols)
	for _, pos := range mines {
		board.setMine(pos.Row, pos.Col, true)
	}
	config.NumMines = board.NumMines()

	return newSession(config, board)
}

// play claims each edge for the player to move, failing on any error
func play(t *testing.T, session *Session, edges ...Edge) ClaimResult {
	t.Helper()
	var result ClaimResult
	for _, edge := range edges {
		var err error
		result, err = session.ClaimCurrent(edge)
		require.NoError(t, err, "claim %v", edge)
		require.NoError(t, session.Board().Verify())
	}
	return result
}

func TestNewSession(t *testing.T) {
	session := NewSession(Config{Rows: 4, Cols: 3, NumMines: 2, NumPlayers: 3, Seed: 5})

	assert.Equal(t, 4, session.Board().Rows())
	assert.Equal(t, 3, session.Board().Cols())
	assert.Equal(t, 2, session.Board().NumMines())
	assert.Equal(t, 3, session.NumPlayers())
	assert.Equal(t, 0, session.Current())
	assert.Equal(t, NoWinner, session.Winner())
	assert.False(t, session.IsOver())
	for i, player := range session.Players() {
		assert.True(t, player.Alive)
		assert.Zero(t, player.Score)
		assert.Equal(t, PlayerColors[i], player.Color)
	}
}

func TestNewSessionRecordsSeed(t *testing.T) {
	session := NewSession(Config{Rows: 3, Cols: 3, NumMines: 4, NumPlayers: 2})
	assert.NotZero(t, session.Config().Seed)

	replay := NewSession(session.Config())
	assert.Equal(t, session.Board().String(), replay.Board().String())
	assert.NotEqual(t, session.ID(), replay.ID())
}

func TestClaimWithoutCompletionAdvances(t *testing.T) {
	session := testSession(2, 2, 3)

	result := play(t, session, H(0, 0))
	assert.False(t, result.CompletedAny())
	assert.Equal(t, 0, result.Player)
	assert.Equal(t, 1, result.Next)

	line, ok := session.Board().LineAt(H(0, 0))
	require.True(t, ok)
	assert.True(t, line.Drawn)
	assert.Equal(t, 0, line.Owner)

	play(t, session, H(0, 1), H(1, 0))
	assert.Equal(t, 0, session.Current(), "turn wraps around")
}

func TestClaimCompletionKeepsTurn(t *testing.T) {
	session := testSession(2, 2, 2)

	result := play(t, session, H(0, 0), V(0, 0), V(0, 1), H(1, 0))
	assert.Equal(t, 1, result.Player)
	assert.Equal(t, []CellPos{{0, 0}}, result.Completed)
	assert.False(t, result.Eliminated)
	assert.Equal(t, 1, result.Next)
	assert.Equal(t, 1, session.Current())
	assert.Equal(t, 1, session.Player(1).Score)
	assert.Equal(t, 1, session.Board().CellAt(0, 0).Owner())
	assert.True(t, session.Board().IsFlashing(H(1, 0)))
}

func TestClaimDrawnEdgeIsNoop(t *testing.T) {
	session := testSession(2, 2, 2, CellPos{0, 0})
	play(t, session, H(0, 0))

	before := session.Snapshot().Serialize()
	result, err := session.ClaimCurrent(H(0, 0))

	assert.ErrorIs(t, err, ErrEdgeDrawn)
	assert.Equal(t, 1, result.Next)
	assert.Equal(t, 1, session.Current())
	assert.Equal(t, before, session.Snapshot().Serialize())

	line, _ := session.Board().LineAt(H(0, 0))
	assert.Equal(t, 0, line.Owner, "owner unchanged")
}

func TestClaimInvalid(t *testing.T) {
	session := testSession(2, 2, 2)

	_, err := session.ClaimCurrent(H(3, 0))
	assert.ErrorIs(t, err, ErrInvalidEdge)
	_, err = session.ClaimCurrent(V(0, 3))
	assert.ErrorIs(t, err, ErrInvalidEdge)
	_, err = session.Claim(H(0, 0), 1)
	assert.ErrorIs(t, err, ErrNotYourTurn)
	_, err = session.Claim(H(0, 0), 2)
	assert.ErrorIs(t, err, ErrInvalidPlayer)

	assert.Equal(t, 0, session.Current())
	assert.Equal(t, testSession(2, 2, 2).Board().String(), session.Board().String())
}

func TestMinedCellEliminatesAndAdvances(t *testing.T) {
	session := testSession(2, 2, 3, CellPos{0, 0})

	result := play(t, session, H(0, 0), V(0, 0), V(0, 1), H(1, 0))
	assert.Equal(t, 0, result.Player)
	assert.Equal(t, []CellPos{{0, 0}}, result.Completed)
	assert.True(t, result.Eliminated)
	assert.Equal(t, 1, result.Next)
	assert.False(t, result.GameOver, "two players left")

	assert.False(t, session.Player(0).Alive)
	assert.Equal(t, 1, session.Player(0).Score, "mined cells still score")
	assert.True(t, session.IsEliminated(0))
	assert.Equal(t, []int{0}, session.Eliminated())
	assert.Equal(t, []int{1, 2}, session.Alive())
	assert.Equal(t, 2, session.NumAlive())
	assert.True(t, session.IsExploded(CellPos{0, 0}))
	assert.True(t, session.Board().CellAt(0, 0).IsExploded())
	assert.Equal(t, 0, session.Board().CellAt(0, 0).Owner())
}

func TestEliminatedPlayerIsSkipped(t *testing.T) {
	session := testSession(2, 2, 3, CellPos{0, 0})
	play(t, session, H(0, 0), V(0, 0), V(0, 1), H(1, 0))

	result := play(t, session, H(0, 1))
	assert.Equal(t, 1, result.Player)
	assert.Equal(t, 2, result.Next)

	result = play(t, session, H(2, 0))
	assert.Equal(t, 2, result.Player)
	assert.Equal(t, 1, result.Next, "player 0 is out")
}

func TestMinedAndSafeCellInOneClaim(t *testing.T) {
	session := testSession(1, 2, 3, CellPos{0, 1})

	// Every edge but the shared V(0, 1)
	play(t, session, H(0, 0), H(1, 0), V(0, 0), H(0, 1), H(1, 1), V(0, 2))
	require.Equal(t, 0, session.Current())

	result := play(t, session, V(0, 1))
	assert.ElementsMatch(t, []CellPos{{0, 0}, {0, 1}}, result.Completed)
	assert.True(t, result.Eliminated)
	assert.Equal(t, 2, session.Player(0).Score)
	assert.Equal(t, 1, result.Next)
	assert.True(t, result.GameOver, "only safe cell owned")
	assert.Equal(t, NoWinner, result.Winner, "players 1 and 2 tie at zero")
}

func TestLastAliveWinsByDefault(t *testing.T) {
	session := testSession(1, 1, 2, CellPos{0, 0})

	result := play(t, session, H(0, 0))
	assert.False(t, result.GameOver, "no safe cells does not end the game")

	result = play(t, session, H(1, 0), V(0, 0), V(0, 1))
	assert.Equal(t, 1, result.Player)
	assert.True(t, result.Eliminated)
	assert.True(t, result.GameOver)
	assert.Equal(t, 0, result.Winner)
	assert.Equal(t, 0, session.Winner())
	assert.Zero(t, session.Player(0).Score)
	assert.Equal(t, 1, session.Player(1).Score)
	assert.Equal(t, 1, session.NumAlive())

	_, err := session.ClaimCurrent(H(0, 0))
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestFullGameNoMines(t *testing.T) {
	session := testSession(2, 2, 2)

	// Eight edges without closing a box, alternating players
	play(t, session, H(0, 0), H(0, 1), H(2, 0), H(2, 1), V(0, 0), V(1, 2), V(0, 2), V(1, 0))
	require.Equal(t, 0, session.Current())

	result := play(t, session, H(1, 0), H(1, 1))
	assert.False(t, result.CompletedAny())
	require.Equal(t, 0, session.Current())

	result = play(t, session, V(0, 1))
	assert.Len(t, result.Completed, 2)
	assert.Equal(t, 0, result.Next)
	assert.False(t, result.GameOver)

	result = play(t, session, V(1, 1))
	assert.Len(t, result.Completed, 2)
	assert.True(t, result.GameOver)
	assert.Equal(t, 0, result.Winner)
	assert.Equal(t, 4, session.Player(0).Score)
	assert.Zero(t, session.Player(1).Score)
}

func TestFullGameTie(t *testing.T) {
	snapshot := &SessionSnapshot{
		Players: 2,
		Current: 1,
		SerializedBoard: `+-+-+
|0|1|
+-+-+
|0|.
+-+-+
`,
	}
	session, err := snapshot.Session()
	require.NoError(t, err)
	require.False(t, session.IsOver())

	result := play(t, session, V(1, 2))
	assert.True(t, result.GameOver)
	assert.Equal(t, NoWinner, result.Winner)
	assert.Equal(t, 2, session.Player(0).Score)
	assert.Equal(t, 2, session.Player(1).Score)
}

func TestDetermineWinner(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		alive  []bool
		winner int
	}{
		{"unique top", []int{3, 1}, []bool{true, true}, 0},
		{"tie", []int{2, 2}, []bool{true, true}, NoWinner},
		{"tie below top", []int{1, 1, 2}, []bool{true, true, true}, 2},
		{"eliminated high scorer ignored", []int{5, 1, 0}, []bool{false, true, true}, 1},
		{"eliminated high scorer cannot break a tie", []int{5, 1, 1}, []bool{false, true, true}, NoWinner},
		{"last alive with zero", []int{4, 0}, []bool{false, true}, 1},
		{"nobody alive", []int{1, 1}, []bool{false, false}, NoWinner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := testSession(2, 2, len(tt.scores))
			for i := range tt.scores {
				session.players[i].Score = tt.scores[i]
				session.players[i].Alive = tt.alive[i]
			}
			assert.Equal(t, tt.winner, session.determineWinner())
		})
	}
}

func TestAdvanceWithNobodyAliveEndsGame(t *testing.T) {
	session := testSession(2, 2, 2)
	session.players[0].Alive = false
	session.players[1].Alive = false

	session.advance()
	assert.True(t, session.IsOver())
	assert.Equal(t, NoWinner, session.Winner())
}

// Random games on random boards: after every claim the completion invariant
// holds and the game is over exactly when its end condition is met.
func TestRandomGamesKeepInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		config := Config{
			Rows:       2 + rng.Intn(4),
			Cols:       2 + rng.Intn(4),
			NumPlayers: 2 + rng.Intn(3),
			Seed:       seed,
		}
		config.NumMines = rng.Intn(MaxMines(config.Rows, config.Cols) + 1)
		session := NewSession(config)
		board := session.Board()

		var edges []Edge
		board.Edges(func(edge Edge, _ Line) { edges = append(edges, edge) })
		rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

		for _, edge := range edges {
			if session.IsOver() {
				break
			}
			actor := session.Current()
			require.True(t, session.Player(actor).Alive, "seed %d", seed)

			result, err := session.ClaimCurrent(edge)
			require.NoError(t, err, "seed %d", seed)
			require.NoError(t, board.Verify(), "seed %d", seed)

			for _, pos := range result.Completed {
				assert.Equal(t, actor, board.CellAt(pos.Row, pos.Col).Owner())
			}
			if result.CompletedAny() && !result.Eliminated && !result.GameOver {
				assert.Equal(t, actor, result.Next, "seed %d: chain rule", seed)
			}
			if !result.CompletedAny() && !result.GameOver {
				assert.NotEqual(t, actor, result.Next, "seed %d: turn passes", seed)
			}

			ended := (board.NumSafeCells() > 0 && board.allSafeCellsOwned()) || session.NumAlive() <= 1
			assert.Equal(t, ended, session.IsOver(), "seed %d", seed)
		}
		require.True(t, session.IsOver(), "seed %d: all edges drawn", seed)

		owned := 0
		board.EachCell(func(cell *Cell) {
			if cell.IsOwned() {
				owned++
			}
		})
		total := 0
		for _, player := range session.Players() {
			total += player.Score
		}
		assert.Equal(t, owned, total, "seed %d", seed)
	}
}
