package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/minedots/game"
)

// Script describes a headless game: a board, either random from the
// settings or given as a snapshot grid, and the moves to play on it
type Script struct {
	Rows    int   `yaml:"rows"`
	Cols    int   `yaml:"cols"`
	Mines   *int  `yaml:"mines"`
	Players int   `yaml:"players"`
	Seed    int64 `yaml:"seed"`

	// Optional snapshot grid; overrides rows, cols and mines. Current is
	// the player to move on it and requires a board.
	Board   string `yaml:"board"`
	Current *int   `yaml:"current"`

	Moves []string `yaml:"moves"`
}

var printSnapshot = false

var errCurrentWithoutBoard = errors.New("current is only valid with a board")

var replayCmd = &cobra.Command{
	Use:   "replay SCRIPT",
	Short: "Play a scripted game and print the result",
	Long: `replay reads a yaml script and plays its moves in order, each for
the player to move.

	rows: 2
	cols: 2
	mines: 1
	seed: 42
	moves: ["h 0 0", "h 0 1", "v 0 0"]

A board grid may be given instead of rows/cols/mines (see --snapshot for the
format), with current naming the player to move on it. Without a board the
game starts fresh and player 1 moves first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		script, err := LoadScript(in)
		if err != nil {
			return err
		}
		return Replay(script, cmd.OutOrStdout(), printSnapshot)
	},
}

func LoadScript(in []byte) (*Script, error) {
	var script Script
	if err := yaml.UnmarshalStrict(in, &script); err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	if script.Current != nil && script.Board == "" {
		return nil, fmt.Errorf("load script: %w", errCurrentWithoutBoard)
	}
	return &script, nil
}

func (script *Script) config() game.Config {
	config := game.DefaultConfig()
	if script.Rows != 0 {
		config.Rows = script.Rows
	}
	if script.Cols != 0 {
		config.Cols = script.Cols
	}
	if script.Mines != nil {
		config.NumMines = *script.Mines
	}
	if script.Players != 0 {
		config.NumPlayers = script.Players
	}
	config.Seed = script.Seed
	return config.Normalized()
}

func (script *Script) controller() (*game.Controller, error) {
	controller := game.NewController(script.config())
	controller.OnGameEnd = logGameEnd

	if script.Board == "" {
		controller.Dispatch(game.Simple(game.ApplySettings))
		controller.Tick()
		return controller, nil
	}

	snapshot := &game.SessionSnapshot{
		Seed:            script.Seed,
		Players:         script.config().NumPlayers,
		SerializedBoard: script.Board,
	}
	if script.Current != nil {
		snapshot.Current = *script.Current
	}
	session, err := snapshot.Session()
	if err != nil {
		return nil, err
	}
	return controller, controller.Load(session)
}

// Replay plays the script's moves as a single tick of input and writes the
// final position to out
func Replay(script *Script, out io.Writer, asSnapshot bool) error {
	controller, err := script.controller()
	if err != nil {
		return err
	}

	for i, move := range script.Moves {
		edge, err := game.ParseEdge(move)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		controller.Dispatch(game.Claim(edge))
	}
	controller.Tick()

	session := controller.Session()
	if asSnapshot {
		_, err := io.WriteString(out, session.Snapshot().Serialize())
		return err
	}
	return writeSummary(out, session)
}

func writeSummary(out io.Writer, session *game.Session) error {
	if _, err := io.WriteString(out, session.Board().String()); err != nil {
		return err
	}

	for _, player := range session.Players() {
		status := ""
		if !player.Alive {
			status = " (eliminated)"
		}
		if _, err := fmt.Fprintf(out, "Player %d: %d%s\n", player.Index+1, player.Score, status); err != nil {
			return err
		}
	}

	var result string
	switch {
	case !session.IsOver():
		result = fmt.Sprintf("In progress, Player %d to move", session.Current()+1)
	case session.Winner() == game.NoWinner:
		result = "Draw"
	default:
		result = fmt.Sprintf("Player %d wins", session.Winner()+1)
	}
	_, err := fmt.Fprintf(out, "Result: %s\n", result)
	return err
}

func init() {
	replayCmd.Flags().BoolVar(&printSnapshot, "snapshot", false, "Print the final position as a yaml snapshot")
	rootCmd.AddCommand(replayCmd)
}
