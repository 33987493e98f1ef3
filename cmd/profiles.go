package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashdrill/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage saved practice profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := profile.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved profiles; 'play' creates one.")
			return nil
		}
		for _, name := range names {
			p, err := profile.Load(name, nil)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (unreadable: %v)\n", name, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: values %d-%d, mastery time %.1fs\n",
				p.Name, p.MinVal, p.MaxVal, p.MasteryTime)
		}
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := profile.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}
