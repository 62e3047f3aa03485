package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pagesync/internal/application"
	"pagesync/internal/application/commands"
	"pagesync/internal/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded sync runs",
	Long: `Without arguments, list the most recent sync runs. With a run ID, list
every outcome of that run.

Examples:
  pagesync history
  pagesync history --limit 3
  pagesync history 6f1c2a4e-0d4b-4b8e-9f59-2f4f0d3c9a10`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.LedgerPath == "" {
			return &application.ConfigurationError{Setting: "ledger", Reason: "is not set (use --ledger or PAGESYNC_LEDGER)"}
		}
		ledger, closeLedger, err := openLedger()
		if err != nil {
			return err
		}
		defer closeLedger()

		out := cmd.OutOrStdout()
		ctx := cmd.Context()

		if len(args) == 0 {
			runs, err := commands.NewListRunsCommand(ledger, historyLimit).Execute(ctx)
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Fprintf(out, "%s\t%s\tcreated=%d skipped=%d errored=%d\n",
					r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Created, r.Skipped, r.Errored)
			}
			return nil
		}

		run, err := commands.NewShowRunCommand(ledger, args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		for _, o := range run.Outcomes {
			detail := ""
			switch o.Kind {
			case domain.OutcomeCreated:
				detail = o.URL
			case domain.OutcomeErrored:
				detail = o.Err
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", o.Key(), o.Kind, detail)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultHistoryLimit, "number of runs to list")
}
