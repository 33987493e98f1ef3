package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdrill/internal/deckfile"
	"github.com/abhisek/flashdrill/internal/drill"
	"github.com/abhisek/flashdrill/internal/generate"
	"github.com/abhisek/flashdrill/internal/profile"
	"github.com/abhisek/flashdrill/internal/runner"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		name, _ := cmd.Flags().GetString("profile")
		prof, err := profile.Load(name, cmd.Flags())
		if err != nil {
			return err
		}

		opName, _ := cmd.Flags().GetString("op")
		op, err := generate.ParseOp(opName)
		if err != nil {
			return err
		}

		// Persist the resolved settings so the next run starts from them.
		if err := profile.Save(prof); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}

		deck := generate.NewDeck(op, generate.Range{Start: prof.MinVal, Stop: prof.MaxVal}, prof.MasteryTime)

		st := openStoreBestEffort(cmd)
		var rec runner.Recorder
		if st != nil {
			defer st.Close()
			rec = st
		}

		r := &runner.Runner{
			Deck:      deck,
			Profile:   prof.Name,
			Operation: op.String(),
			In:        cmd.InOrStdin(),
			Out:       cmd.OutOrStdout(),
			Recorder:  rec,
		}
		summary, err := r.Run(ctx)
		if err != nil {
			return err
		}

		if !summary.Complete {
			fmt.Fprintf(cmd.OutOrStdout(), "\nSession abandoned (%d of %d cards mastered).\n",
				summary.Completed, summary.Total)
			return nil
		}
		return saveSessionArtifacts(cmd, prof, deck, summary)
	},
}

func init() {
	def := profile.Default()
	playCmd.Flags().StringP("profile", "p", def.Name, "Profile to load and update")
	playCmd.Flags().StringP("op", "o", generate.Addition.String(),
		"Operation: addition, subtraction, multiplication, division, sqrt")
	playCmd.Flags().Float64("mastery-time", def.MasteryTime, "Seconds a correct answer must beat to count as mastered")
	playCmd.Flags().Int("min", def.MinVal, "Minimum operand value")
	playCmd.Flags().Int("max", def.MaxVal, "Maximum operand value")
	playCmd.Flags().String("log-dir", def.LogFileDir, "Directory for session logs and deck snapshots")
}

// saveSessionArtifacts writes the worst-first report and the deck snapshot to
// the profile's log directory using timestamped names.
func saveSessionArtifacts(cmd *cobra.Command, prof profile.Profile, deck *drill.Deck, summary *runner.Summary) error {
	ts := time.Now().Format("20060102T150405")

	logPath := filepath.Join(prof.LogFileDir, fmt.Sprintf("FlashCardsLog_%s_%s.txt", prof.Name, ts))
	if err := os.WriteFile(logPath, []byte(summary.Report), 0o644); err != nil {
		return fmt.Errorf("write session log: %w", err)
	}

	deckPath := filepath.Join(prof.LogFileDir, fmt.Sprintf("FlashCardDeck_%s_%s.json", prof.Name, ts))
	if err := deckfile.Save(deckPath, deck); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved session log to %s\nSaved deck snapshot to %s\n", logPath, deckPath)
	return nil
}
