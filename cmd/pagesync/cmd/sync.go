package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pagesync/internal/adapters/pacing"
	"pagesync/internal/adapters/tui"
	"pagesync/internal/application/commands"
	"pagesync/internal/config"
	"pagesync/internal/domain"
)

var (
	syncDelay    time.Duration
	syncSamples  int
	syncTUI      bool
	syncCopyURLs bool
	syncStrict   bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Create missing child pages for every parent and source file",
	Long: `Create a child page under every configured parent for every configured
source file, unless a child page with exactly the same title already exists.

All source files are read before the first request; a missing file aborts the
run. Failed requests are reported per page and do not stop the run.

Examples:
  pagesync sync
  pagesync sync --workspace ./out --samples 10
  pagesync sync --config pagesync.toml --tui`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		log := syncLogger()

		client, err := newClient(log)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("delay") {
			cfg.Delay = syncDelay
		}
		if cmd.Flags().Changed("samples") {
			cfg.SampleSize = syncSamples
		}

		opts := []commands.SyncOption{
			commands.WithParents(cfg.Parents),
			commands.WithFiles(cfg.Files),
			commands.WithSampleSize(cfg.SampleSize),
			commands.WithLogger(log),
		}

		ledger, closeLedger, err := openLedger()
		if err != nil {
			log.Warn("run ledger unavailable", zap.String("path", cfg.LedgerPath), zap.Error(err))
		} else {
			defer closeLedger()
			if ledger != nil {
				opts = append(opts, commands.WithLedger(ledger))
			}
		}

		reader := newReader()
		pacer := pacing.NewFixed(cfg.Delay)

		var result *commands.SyncResult
		if syncTUI {
			run := func(ctx context.Context, progress func(domain.SyncOutcome)) (*commands.SyncResult, error) {
				return commands.NewSyncCommand(client, reader, pacer, append(opts, commands.WithProgress(progress))...).Execute(ctx)
			}
			result, err = runTUI(run, len(cfg.Parents)*len(cfg.Files))
		} else {
			result, err = commands.NewSyncCommand(client, reader, pacer, opts...).Execute(ctx)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !syncTUI {
			if err := domain.WriteReport(out, result.Summary); err != nil {
				return err
			}
		}
		if result.RunID != "" {
			fmt.Fprintf(out, "Run: %s\n", result.RunID)
		}

		if syncCopyURLs && len(result.Summary.SampleURLs) > 0 {
			if err := clipboard.WriteAll(strings.Join(result.Summary.SampleURLs, "\n")); err != nil {
				logger.Warn("failed to copy URLs", zap.Error(err))
			} else {
				fmt.Fprintln(out, "Sample URLs copied to clipboard")
			}
		}

		if syncStrict && result.Summary.Errored > 0 {
			return errStrict
		}
		return nil
	},
}

// syncLogger returns the logger for the sync and its client. With --tui both
// are silenced, since stderr output would tear the progress view.
func syncLogger() *zap.Logger {
	if syncTUI {
		return zap.NewNop()
	}
	return logger
}

func runTUI(run tui.RunFunc, total int) (*commands.SyncResult, error) {
	app := tui.NewApp(run, total)
	if _, err := tea.NewProgram(app).Run(); err != nil {
		return nil, err
	}
	if !app.Done() {
		return nil, errors.New("sync aborted")
	}
	return app.Result()
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().DurationVar(&syncDelay, "delay", config.DefaultDelay, "pause after every request")
	syncCmd.Flags().IntVar(&syncSamples, "samples", domain.DefaultSampleSize, "number of created page URLs to show")
	syncCmd.Flags().BoolVar(&syncTUI, "tui", false, "show live progress")
	syncCmd.Flags().BoolVar(&syncCopyURLs, "copy-urls", false, "copy the sample URLs to the clipboard")
	syncCmd.Flags().BoolVar(&syncStrict, "strict", false, "exit non-zero when any page failed")
}
