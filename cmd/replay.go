package cmd

import (
	"fmt"

	"github.com/tim-parisi/100-dice-simulation/internal/engine"
	"github.com/tim-parisi/100-dice-simulation/internal/persistence"

	"github.com/spf13/cobra"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay [game_name]",
	Short: "Replay a recorded game and print its standings",
	Long: `Reads the log.jsonl of a recorded game and rebuilds the final
GameState from its events. Without a name, lists the recorded games.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		file, _ := cmd.Flags().GetString("file")
		showEvents, _ := cmd.Flags().GetBool("events")
		archive := persistence.NewArchive(gamesDir())

		var (
			store *persistence.Store
			err   error
		)
		switch {
		case file != "":
			store, err = persistence.NewStore(file)
		case len(args) == 1:
			store, err = archive.Open(args[0])
		default:
			names, err := archive.List()
			if err != nil {
				return fmt.Errorf("failed to list games in %s: %w", archive.Dir, err)
			}
			if len(names) == 0 {
				fmt.Fprintf(out, "No recorded games in %s\n", archive.Dir)
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		}
		if err != nil {
			return err
		}
		defer store.Close()

		events, err := store.Load()
		if err != nil {
			return fmt.Errorf("error reading game record: %w", err)
		}

		projector := engine.NewProjector()
		if showEvents {
			projector.Observe = func(evt engine.Event, _ *engine.GameState) {
				fmt.Fprintln(out, evt.Message())
			}
		}
		state, err := projector.Build(events)
		if err != nil {
			return fmt.Errorf("error building state: %w", err)
		}

		fmt.Fprintf(out, "Processed %d events over %d turns.\n", len(events), state.TurnIndex)
		for i, s := range state.Scores {
			fmt.Fprintf(out, "- Player %d: %d\n", i+1, s)
		}
		if state.Phase == engine.PhaseOver {
			fmt.Fprintf(out, "Player %d wins!\n", state.Winner+1)
		} else {
			fmt.Fprintf(out, "Game unfinished (%s phase).\n", state.Phase)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringP("file", "f", "", "Path to a game record outside the games directory")
	replayCmd.Flags().BoolP("events", "e", false, "Print every recorded event")
}
