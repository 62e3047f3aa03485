package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pagesync/internal/application/commands"
)

var childrenCmd = &cobra.Command{
	Use:   "children <parent-id>",
	Short: "List the child pages of a parent page",
	Long: `List the child pages of a parent page, one per line: title, then URL.

Examples:
  pagesync children 3132484b-84ae-81b8-a2cb-deff086bb4d0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(logger)
		if err != nil {
			return err
		}

		children, err := commands.NewListChildrenCommand(client, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, c := range children {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Title, c.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(childrenCmd)
}
