package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pagesync/internal/adapters/filesystem"
	"pagesync/internal/adapters/notion"
	"pagesync/internal/adapters/sqlite"
	"pagesync/internal/config"
	"pagesync/internal/logging"
	"pagesync/internal/ports"
)

var (
	configPath string
	workspace  string
	ledgerPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pagesync",
	Short: "Sync local text files into child pages of Notion parent pages",
	Long: `pagesync creates a child page under each configured parent page for every
configured source file, embedding the file's text in a plain-text code block.
Pages whose title already exists under a parent are skipped, so running it
again is safe.

The integration token is read from NOTION_API_KEY (or NOTION_KEY). A .env file
in the working directory is loaded first if present.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if workspace != "" {
			cfg.Workspace = workspace
		}
		if ledgerPath != "" {
			cfg.LedgerPath = ledgerPath
		}

		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// errStrict signals a completed run that should still exit non-zero
var errStrict = errors.New("run finished with errored pairs")

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errStrict) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.toml or .yaml); defaults to $PAGESYNC_CONFIG")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "workspace directory holding the source files")
	rootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", "", "record runs in this SQLite database (off unless set)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every service call")
}

// newClient builds the Notion client, failing before any network call when
// no token is configured
func newClient(log *zap.Logger) (*notion.Client, error) {
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}
	return notion.NewClient(cfg.Token,
		notion.WithBaseURL(cfg.BaseURL),
		notion.WithVersion(cfg.NotionVersion),
		notion.WithLogger(log),
	)
}

func newReader() *filesystem.SourceReader {
	return filesystem.NewSourceReader(cfg.Workspace)
}

// openLedger opens the configured ledger. It returns a nil ledger and a no-op
// close when no ledger path is set.
func openLedger() (ports.RunLedger, func(), error) {
	if cfg.LedgerPath == "" {
		return nil, func() {}, nil
	}
	ledger := sqlite.NewLedger()
	if err := ledger.Open(cfg.LedgerPath); err != nil {
		return nil, nil, err
	}
	return ledger, func() {
		if err := ledger.Close(); err != nil {
			logger.Warn("failed to close ledger", zap.Error(err))
		}
	}, nil
}
