package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdrill/internal/deckfile"
	"github.com/abhisek/flashdrill/internal/runner"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <deck-file>",
	Short: "Practice a previously saved deck snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		deck, err := deckfile.Load(path)
		if err != nil {
			return err
		}

		// A fresh session starts with empty mastery state.
		keep, _ := cmd.Flags().GetBool("keep-history")
		if !keep {
			deck.ResetHistory()
		}

		st := openStoreBestEffort(cmd)
		var rec runner.Recorder
		if st != nil {
			defer st.Close()
			rec = st
		}

		r := &runner.Runner{
			Deck:      deck,
			Profile:   "Custom",
			Operation: "custom",
			In:        cmd.InOrStdin(),
			Out:       cmd.OutOrStdout(),
			Recorder:  rec,
		}
		summary, err := r.Run(cmd.Context())
		if err != nil {
			return err
		}

		if !summary.Complete {
			fmt.Fprintf(cmd.OutOrStdout(), "\nSession abandoned (%d of %d cards mastered).\n",
				summary.Completed, summary.Total)
			return nil
		}

		if err := deckfile.Save(path, deck); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated deck snapshot %s\n", path)
		return nil
	},
}

func init() {
	resumeCmd.Flags().Bool("keep-history", false, "Keep the snapshot's recorded responses instead of starting fresh")
}
