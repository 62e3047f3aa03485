package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pagesync/internal/application/commands"
)

var parentsCmd = &cobra.Command{
	Use:   "parents",
	Short: "List the configured parent pages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range commands.NewListParentsCommand(cfg.Parents).Execute() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.Label(), p.ID, p.Dir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parentsCmd)
}
