package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		sessions, err := st.RecentSessions(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STARTED\tPROFILE\tOPERATION\tMASTERED\tTIME")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%.1fs\n",
				s.StartedAt.Local().Format("2006-01-02 15:04"),
				s.Profile, s.Operation, s.CardsMastered, s.CardsTotal, s.DurationSecs)
		}
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Number of sessions to show")
}
