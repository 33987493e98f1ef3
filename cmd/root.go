package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "flashdrill",
	Short: "Adaptive arithmetic flashcards for kids",
	Long: "Flashdrill — terminal flashcards that concentrate practice time on weak " +
		"cards and stop once every card is answered quickly and reliably.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite history database (overrides FLASHDRILL_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FLASHDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStoreBestEffort opens the history store, warning instead of failing: a
// practice session works fine without recording.
func openStoreBestEffort(cmd *cobra.Command) *store.Store {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: history recording unavailable:", err)
		return nil
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: history recording unavailable:", err)
		return nil
	}
	return st
}
