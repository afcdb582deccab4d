package cmd

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/minedots/game"
	"github.com/they4kman/minedots/ui"
)

var gameConfig = game.DefaultConfig()
var skipSettings = false
var logLevel = "info"
var logFile = ""

var rootCmd = &cobra.Command{
	Use:   "minedots",
	Short: "Play Dots and Boxes with hidden mines",
	Long: `minedots is a terminal Dots and Boxes game for 2 to 8 players.
Some boxes hide mines: whoever closes a mined box is out.

Run with no arguments to pick settings and play
	minedots

Skip the settings screen
	minedots --rows 4 --cols 6 --mines 5 --players 3 --skip-settings
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd.Parent() == nil)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		controller := game.NewController(gameConfig)
		controller.OnGameEnd = logGameEnd
		if skipSettings {
			controller.Dispatch(game.Simple(game.ApplySettings))
		}
		return ui.Run(controller)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setupLogging applies the log flags. The interactive game owns the
// terminal, so without a log file its logs are discarded.
func setupLogging(interactive bool) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	switch {
	case logFile != "":
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		log.SetOutput(file)
	case interactive:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return nil
}

func logGameEnd(session *game.Session) {
	log.WithFields(log.Fields{
		"session": session.ID(),
		"winner":  session.Winner(),
	}).Debugf("final position:\n%s", session.Snapshot().Serialize())
}

func init() {
	rootCmd.Flags().IntVarP(&gameConfig.Rows, "rows", "r", game.DefaultRows, "Number of box rows")
	rootCmd.Flags().IntVarP(&gameConfig.Cols, "cols", "c", game.DefaultCols, "Number of box columns")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", game.DefaultMines, "Number of mined boxes, at most half the boxes")
	rootCmd.Flags().IntVarP(&gameConfig.NumPlayers, "players", "p", game.DefaultPlayers, "Number of players")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&skipSettings, "skip-settings", "s", false, "Start playing without the settings screen")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file")
}
